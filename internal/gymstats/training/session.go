package training

import "time"

// DateLayout is the format of session dates, sessions are merged by it.
const DateLayout = "2006-01-02"

type SessionExercise struct {
	Weight float64     `json:"weight"`
	Sets   []LoggedSet `json:"sets"`
}

// SessionState is the in-progress training session. Its methods never modify
// the receiver and return an updated copy instead.
type SessionState struct {
	ID        string                  `json:"id"`
	Date      string                  `json:"date"`
	Block     int                     `json:"block"`
	Week      int                     `json:"week"`
	StartedAt time.Time               `json:"startedAt"`
	Exercises map[int]SessionExercise `json:"exercises"`
}

type SessionStatus string

const (
	SessionReady      SessionStatus = "ready"
	SessionInProgress SessionStatus = "in_progress"
	SessionComplete   SessionStatus = "complete"
)

func NewSessionState(id string, startedAt time.Time, block, week int) SessionState {
	return SessionState{
		ID:        id,
		Date:      startedAt.Format(DateLayout),
		Block:     block,
		Week:      week,
		StartedAt: startedAt,
		Exercises: map[int]SessionExercise{},
	}
}

func (s SessionState) clone() SessionState {
	exercises := make(map[int]SessionExercise, len(s.Exercises))
	for id, ex := range s.Exercises {
		sets := make([]LoggedSet, len(ex.Sets))
		copy(sets, ex.Sets)
		exercises[id] = SessionExercise{
			Weight: ex.Weight,
			Sets:   sets,
		}
	}
	s.Exercises = exercises
	return s
}

func (s SessionState) Exercise(exerciseID int) (SessionExercise, bool) {
	ex, ok := s.Exercises[exerciseID]
	return ex, ok
}

// Sets returns a copy of the logged sets of an exercise.
func (s SessionState) Sets(exerciseID int) []LoggedSet {
	ex, ok := s.Exercises[exerciseID]
	if !ok {
		return nil
	}
	sets := make([]LoggedSet, len(ex.Sets))
	copy(sets, ex.Sets)
	return sets
}

// DeloadCounter is the program position of the session, see DeloadCounter.
func (s SessionState) DeloadCounter() int {
	return DeloadCounter(s.Block, s.Week)
}

func (s SessionState) AppendSet(exerciseID int, set LoggedSet) SessionState {
	next := s.clone()
	ex := next.Exercises[exerciseID]
	ex.Sets = append(ex.Sets, set)
	if ex.Weight == 0 && set.Weight > 0 {
		ex.Weight = set.Weight
	}
	next.Exercises[exerciseID] = ex
	return next
}

// RemoveSet drops the set at index. It reports false when there is no such set.
func (s SessionState) RemoveSet(exerciseID, index int) (SessionState, bool) {
	ex, ok := s.Exercises[exerciseID]
	if !ok || index < 0 || index >= len(ex.Sets) {
		return s, false
	}

	next := s.clone()
	nextEx := next.Exercises[exerciseID]
	nextEx.Sets = append(nextEx.Sets[:index], nextEx.Sets[index+1:]...)
	next.Exercises[exerciseID] = nextEx
	return next, true
}

func (s SessionState) SetWeight(exerciseID int, weight float64) SessionState {
	next := s.clone()
	ex := next.Exercises[exerciseID]
	ex.Weight = weight
	next.Exercises[exerciseID] = ex
	return next
}

func (s SessionState) WithoutExercise(exerciseID int) SessionState {
	next := s.clone()
	delete(next.Exercises, exerciseID)
	return next
}

func (s SessionState) IsEmpty() bool {
	return len(s.Exercises) == 0
}

// Status classifies the logged sets of an exercise against its goals: complete once
// the effective reps goal or the max sets are reached.
func Status(sets []LoggedSet, cfg ExerciseConfig, blockNumber, deloadFrequency int) SessionStatus {
	summary := SummarizeSets(sets)
	if summary.CompletedSets == 0 {
		return SessionReady
	}

	deload := IsDeloadTime(blockNumber, deloadFrequency)
	goal := EffectiveRepsGoal(cfg.VolumeLevel, cfg.VolumeMultiplier, deload)
	if summary.TotalEffectiveReps >= goal || summary.CompletedSets >= normalizeMaxSets(cfg.MaxSets) {
		return SessionComplete
	}
	return SessionInProgress
}
