package calc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/gymtrack/internal/gymstats/training"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "gymtrack-calc" command. The subcommands
// run the load engine locally, without the service.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gymtrack-calc",
		Short:         "Training load calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newOneRMCmd(),
		newRepRangeCmd(),
		newWeightCmd(),
		newSetsCmd(),
		newDeloadCmd(),
		newTokenCmd(),
	)

	return root
}

// parseSets reads sets given as reps@weight, e.g. 8@80 or 10@0.
func parseSets(raw []string) ([]training.LoggedSet, error) {
	sets := make([]training.LoggedSet, 0, len(raw))
	for _, r := range raw {
		repsStr, weightStr, found := strings.Cut(r, "@")
		if !found {
			return nil, fmt.Errorf("invalid set [%s], expected reps@weight", r)
		}
		reps, err := strconv.ParseFloat(strings.TrimSpace(repsStr), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid reps in set [%s]: %w", r, err)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(weightStr), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight in set [%s]: %w", r, err)
		}
		if weight < 0 {
			return nil, fmt.Errorf("invalid weight in set [%s]: negative", r)
		}
		sets = append(sets, training.LoggedSet{
			Reps:   training.RoundReps(reps),
			Weight: weight,
		})
	}
	return sets, nil
}

func positive(name string, v float64) error {
	if _, ok := training.NewPositiveFinite(v); !ok {
		return fmt.Errorf("--%s must be a positive number", name)
	}
	return nil
}
