package commissions

import (
	"errors"
	"fmt"
	"time"
)

type Status string

const (
	StatusPending        Status = "pending"
	StatusAccepted       Status = "accepted"
	StatusInProgress     Status = "in_progress"
	StatusRevision       Status = "revision"
	StatusCompleted      Status = "completed"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
	StatusRejected       Status = "rejected"
)

var allStatuses = []Status{
	StatusPending, StatusAccepted, StatusInProgress, StatusRevision, StatusCompleted,
	StatusOutForDelivery, StatusDelivered, StatusCancelled, StatusRejected,
}

var transitions = map[Status][]Status{
	StatusPending:        {StatusAccepted, StatusRejected, StatusCancelled},
	StatusAccepted:       {StatusInProgress, StatusCancelled},
	StatusInProgress:     {StatusRevision, StatusCompleted},
	StatusRevision:       {StatusInProgress, StatusCompleted},
	StatusCompleted:      {StatusOutForDelivery},
	StatusOutForDelivery: {StatusDelivered},
}

var (
	ErrInvalidTransition = errors.New("Invalid status transition")
	ErrUnknownStatus     = errors.New("Invalid status")
)

func (s Status) Valid() bool {
	for _, v := range allStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func AllowedTargets(from Status) []Status {
	return append([]Status(nil), transitions[from]...)
}

func CanTransition(from, to Status) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s has no outgoing edge.
func IsTerminal(s Status) bool {
	return s.Valid() && len(transitions[s]) == 0
}

// Mode selects how Apply treats the transition table.
type Mode int

const (
	// Validated only follows edges of the transition table.
	Validated Mode = iota
	// Override lets an administrator set any declared status. Side effects
	// still apply.
	Override
)

// Effects describes what a transition changed beyond the status itself.
type Effects struct {
	From        Status
	To          Status
	StartedWork bool
	Completed   bool
}

func (e Effects) Changed() bool { return e.From != e.To }

// Apply moves c to target and stamps the lifecycle timestamps. Every status
// change in the system goes through here.
func Apply(c *Commission, target Status, now time.Time, mode Mode) (Effects, error) {
	fx := Effects{From: c.Status, To: c.Status}

	if !target.Valid() {
		if mode == Validated {
			return fx, fmt.Errorf("%w from %s to %s", ErrInvalidTransition, c.Status, target)
		}
		return fx, ErrUnknownStatus
	}

	if mode == Override && target == c.Status {
		return fx, nil
	}
	if mode == Validated && !CanTransition(c.Status, target) {
		return fx, fmt.Errorf("%w from %s to %s", ErrInvalidTransition, c.Status, target)
	}

	c.Status = target
	fx.To = target

	if target == StatusInProgress && c.StartedAt == nil {
		started := now
		c.StartedAt = &started
		fx.StartedWork = true
	}
	if target == StatusCompleted {
		if c.CompletedAt == nil {
			completed := now
			c.CompletedAt = &completed
		}
		fx.Completed = true
	}
	return fx, nil
}
