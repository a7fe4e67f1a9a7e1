package calc

import (
	"fmt"

	"github.com/2beens/gymtrack/internal/gymstats/training"
	"github.com/2beens/gymtrack/pkg"

	"github.com/spf13/cobra"
)

func newOneRMCmd() *cobra.Command {
	var weight float64
	var reps int

	cmd := &cobra.Command{
		Use:   "onerm",
		Short: "Estimate a one rep max from a single set",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := positive("weight", weight); err != nil {
				return err
			}
			if reps < 1 || reps > training.MaxEstimableReps {
				return fmt.Errorf("--reps must be in [1, %d]", training.MaxEstimableReps)
			}

			e1RM := training.EstimateOneRM(weight, reps)
			fmt.Fprintf(cmd.OutOrStdout(), "e1RM: %.2f\n", e1RM)
			fmt.Fprintf(cmd.OutOrStdout(), "effective reps: %.2f\n", training.EffectiveReps(reps))
			return nil
		},
	}

	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight lifted")
	cmd.Flags().IntVar(&reps, "reps", 0, "Reps done")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("reps")

	return cmd
}

func newRepRangeCmd() *cobra.Command {
	var weight, oneRM float64

	cmd := &cobra.Command{
		Use:   "reprange",
		Short: "Estimate the rep range doable at a weight",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := positive("weight", weight); err != nil {
				return err
			}
			if err := positive("onerm", oneRM); err != nil {
				return err
			}

			repRange := training.EstimateRepRange(weight, oneRM)
			if repRange.Max == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "rep range: none, weight at or above the one rep max")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rep range: %d-%d\n", repRange.Min, repRange.Max)
			return nil
		},
	}

	cmd.Flags().Float64Var(&weight, "weight", 0, "Working weight")
	cmd.Flags().Float64Var(&oneRM, "onerm", 0, "One rep max")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("onerm")

	return cmd
}

func newWeightCmd() *cobra.Command {
	var params training.WeightParams

	cmd := &cobra.Command{
		Use:   "weight",
		Short: "Suggest the working weight of a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			for name, v := range map[string]float64{
				"onerm":     params.OneRM,
				"min-range": params.MinRepRange,
				"max-range": params.MaxRepRange,
				"stack":     params.MaxWeightStack,
				"rounding":  params.Rounding,
			} {
				if err := positive(name, v); err != nil {
					return err
				}
			}
			if params.MinRepRange > params.MaxRepRange {
				return fmt.Errorf("--min-range greater than --max-range")
			}

			deload := training.IsDeloadTime(params.BlockNumber, params.DeloadFrequency)
			params.DeloadFrequency = training.ParamsDeloadFrequency(params.DeloadFrequency)
			weight := training.SuggestedWeight(params)
			fmt.Fprintf(cmd.OutOrStdout(), "weight: %.2f\n", weight)
			fmt.Fprintf(cmd.OutOrStdout(), "deload: %t\n", deload)
			if repRange := training.EstimateRepRange(weight, params.OneRM); repRange.Max > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "rep range: %d-%d\n", repRange.Min, repRange.Max)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&params.OneRM, "onerm", 0, "One rep max")
	cmd.Flags().Float64Var(&params.MinRepRange, "min-range", 0.8, "Bottom of the weight band, fraction of the one rep max")
	cmd.Flags().Float64Var(&params.MaxRepRange, "max-range", 0.85, "Top of the weight band, fraction of the one rep max")
	cmd.Flags().Float64Var(&params.MaxWeightStack, "stack", 0, "Heaviest weight available")
	cmd.Flags().Float64Var(&params.Rounding, "rounding", 2.5, "Weight increment")
	cmd.Flags().Float64Var(&params.PrevWeight, "prev", 0, "Weight used last session")
	cmd.Flags().IntVar(&params.BlockNumber, "block", 1, "Program position, see the deload command")
	cmd.Flags().IntVar(&params.DeloadFrequency, "deload-frequency", training.DefaultDeloadFrequency, "Weeks between deloads, 0 disables them")
	_ = cmd.MarkFlagRequired("onerm")
	_ = cmd.MarkFlagRequired("stack")

	return cmd
}

func newSetsCmd() *cobra.Command {
	var (
		rawSets         []string
		level           string
		startingEffReps float64
		multiplier      float64
		maxSets         int
		blockNumber     int
		deloadFrequency int
	)

	cmd := &cobra.Command{
		Use:   "sets",
		Short: "Suggest the number of sets given the sets done so far",
		RunE: func(cmd *cobra.Command, args []string) error {
			volumeLevel, ok := training.ParseVolumeLevel(level)
			if !ok {
				return fmt.Errorf("--level must be Low or Moderate")
			}
			sets, err := parseSets(rawSets)
			if err != nil {
				return err
			}

			deload := training.IsDeloadTime(blockNumber, deloadFrequency)
			summary := training.SummarizeSets(sets)
			suggested := training.SuggestedSets(training.SetsParams{
				Sets:                  sets,
				BlockNumber:           blockNumber,
				StartingEffectiveReps: startingEffReps,
				GoalMultiplier:        multiplier,
				VolumeLevel:           volumeLevel,
				MaxSets:               maxSets,
				DeloadFrequency:       training.ParamsDeloadFrequency(deloadFrequency),
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "completed sets: %d\n", summary.CompletedSets)
			fmt.Fprintf(out, "effective reps: %.2f\n", summary.TotalEffectiveReps)
			fmt.Fprintf(out, "goal: %.2f\n", training.EffectiveRepsGoal(volumeLevel, multiplier, deload))
			fmt.Fprintf(out, "suggested sets: %d\n", suggested)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&rawSets, "set", nil, "Set done as reps@weight, repeatable")
	cmd.Flags().StringVar(&level, "level", string(training.VolumeModerate), "Volume level [Low | Moderate]")
	cmd.Flags().Float64Var(&startingEffReps, "starting", 0, "Effective reps already done elsewhere")
	cmd.Flags().Float64Var(&multiplier, "multiplier", 1, "Goal multiplier in (0, 1]")
	cmd.Flags().IntVar(&maxSets, "max-sets", training.MaxSetsCeiling, "Max sets")
	cmd.Flags().IntVar(&blockNumber, "block", 1, "Program position, see the deload command")
	cmd.Flags().IntVar(&deloadFrequency, "deload-frequency", training.DefaultDeloadFrequency, "Weeks between deloads, 0 disables them")

	return cmd
}

func newDeloadCmd() *cobra.Command {
	var block, week, frequency int

	cmd := &cobra.Command{
		Use:   "deload",
		Short: "Tell whether a program week is a deload week",
		RunE: func(cmd *cobra.Command, args []string) error {
			if block < 1 || week < 1 || week > training.WeeksPerBlock {
				return fmt.Errorf("--block must be >= 1 and --week in [1, %d]", training.WeeksPerBlock)
			}

			counter := training.DeloadCounter(block, week)
			fmt.Fprintf(cmd.OutOrStdout(), "position: %d\n", counter)
			fmt.Fprintf(cmd.OutOrStdout(), "deload: %t\n", training.IsDeloadTime(counter, frequency))
			return nil
		},
	}

	cmd.Flags().IntVar(&block, "block", 1, "Training block")
	cmd.Flags().IntVar(&week, "week", 1, "Week within the block")
	cmd.Flags().IntVar(&frequency, "frequency", training.DefaultDeloadFrequency, "Weeks between deloads, 0 disables them")

	return cmd
}

func newTokenCmd() *cobra.Command {
	var length, cost int

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generate an app token and the hash to configure the service with",
		RunE: func(cmd *cobra.Command, args []string) error {
			// bcrypt only uses the first 72 bytes
			if length < 16 || length > 72 {
				return fmt.Errorf("--length must be in [16, 72]")
			}

			token, err := pkg.GenerateRandomString(length)
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}
			hash, err := pkg.HashPasswordWithCost(token, cost)
			if err != nil {
				return fmt.Errorf("hash token: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "token: %s\n", token)
			fmt.Fprintf(cmd.OutOrStdout(), "GYMTRACK_APP_TOKEN_HASH=%s\n", hash)
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", 32, "Token length")
	cmd.Flags().IntVar(&cost, "cost", pkg.DefaultHashCost, "bcrypt cost of the printed hash")

	return cmd
}
