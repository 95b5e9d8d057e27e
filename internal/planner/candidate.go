package planner

import (
	"fmt"

	"github.com/nhle/dayflow/internal/model"
)

// CandidateKind tags the variant a Candidate represents.
type CandidateKind string

const (
	KindGoal    CandidateKind = "goal"
	KindSubgoal CandidateKind = "subgoal"
	KindReward  CandidateKind = "reward"
)

// Candidate is the ephemeral scheduling-time representation of a goal,
// subgoal, or reward block. It exists only during one planning run.
type Candidate struct {
	Kind CandidateKind

	// GoalID is the owning goal's id for goal/subgoal kinds, or the
	// reward block's id for the reward kind.
	GoalID    string
	SubgoalID string

	Goal  *model.Goal
	Block *model.RewardBlock

	Title       string
	DurationMin int
	Difficulty  string
	CategoryID  string

	// Score is the static urgency computed by the eligibility filter.
	Score float64

	// FixedStart is the pinned start in minutes from midnight, or -1
	// for flexible candidates.
	FixedStart int

	// Scheduling-time-only fields, recomputed every gap-fill pass.
	ContextScore float64
	Hobby        bool
	Revision     bool
	Adaptive     bool
	Resurrected  bool
	NeglectScore float64
	NeglectDays  int
}

// ID returns the identity used for frozen ordering and deduplication:
// the subgoal id when the candidate stands in for a subgoal, else the
// goal or block id.
func (c *Candidate) ID() string {
	if c.SubgoalID != "" {
		return c.SubgoalID
	}
	return c.GoalID
}

// SlotKind classifies an emitted schedule slot.
type SlotKind string

const (
	SlotTask    SlotKind = "task"
	SlotBreak   SlotKind = "break"
	SlotFixed   SlotKind = "fixed"
	SlotFree    SlotKind = "free"
	SlotPassed  SlotKind = "passed"
	SlotOverlap SlotKind = "overlap"
	SlotReward  SlotKind = "reward"
	SlotOngoing SlotKind = "ongoing"
)

// ScheduleSlot is one entry of the generated agenda. Start and End are
// zero-padded "HH:MM" strings; consumers render them as-is.
type ScheduleSlot struct {
	ID        string
	Start     string
	End       string
	Kind      SlotKind
	Candidate *Candidate
	Reason    string
	Fixed     bool
}

// HobbyStatus reports the hobby rotator's outcome for one day.
type HobbyStatus string

const (
	HobbyNone     HobbyStatus = "none"
	HobbySelected HobbyStatus = "selected"
	HobbyRest     HobbyStatus = "rest"
)

// clockString renders minutes-from-midnight as a zero-padded "HH:MM"
// string. Minutes beyond midnight wrap for display.
func clockString(min int) string {
	if min < 0 {
		min = 0
	}
	return fmt.Sprintf("%02d:%02d", (min/60)%24, min%60)
}
