package engine

import (
	"errors"
	"fmt"
)

// ErrNotOnboarded is returned by operations that require a configured
// journey before onboarding has completed.
var ErrNotOnboarded = errors.New("journey not configured; run onboarding first")

// UnknownBlockError indicates a block id with no entry in the active
// timetable. This is a caller/catalog mismatch, not user input.
type UnknownBlockError struct {
	ID int
}

func (e UnknownBlockError) Error() string {
	return fmt.Sprintf("unknown time block %d", e.ID)
}

// UnknownTaskError indicates a weekend task id outside the catalog.
type UnknownTaskError struct {
	ID int
}

func (e UnknownTaskError) Error() string {
	return fmt.Sprintf("unknown weekend task %d", e.ID)
}

// ChallengeRangeError indicates a (week, index) address outside the quest
// catalog.
type ChallengeRangeError struct {
	Week  int
	Index int
}

func (e ChallengeRangeError) Error() string {
	return fmt.Sprintf("challenge %d out of range for week %d", e.Index, e.Week)
}
