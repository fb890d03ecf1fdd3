package pool

import "errors"

// Sentinel errors the pool feature (and the features that gate on pool state)
// translate into response codes at the controller boundary.
var (
	ErrPoolNotFound        = errors.New("pool not found")
	ErrPoolLocked          = errors.New("pool is locked")
	ErrPoolCompleted       = errors.New("pool is completed")
	ErrPoolNotLocked       = errors.New("pool is not locked")
	ErrPoolNotOpen         = errors.New("pool is not open")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrUnauthorized        = errors.New("invalid or missing pool secret")
	ErrNameTaken           = errors.New("display name already taken in this pool")
	ErrCodeTaken           = errors.New("invite code already taken")
	ErrParticipantNotFound = errors.New("participant not found")
)

// CanTransition reports whether a pool may move between the two statuses.
// Transitions are forward-only and single-step; completed is terminal.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusDraft:
		return to == StatusOpen
	case StatusOpen:
		return to == StatusLocked
	case StatusLocked:
		return to == StatusCompleted
	default:
		return false
	}
}

// TransitionError classifies an illegal transition attempt. The caller has
// already established that CanTransition returned false.
func TransitionError(from Status) error {
	if from == StatusCompleted {
		return ErrPoolCompleted
	}
	return ErrInvalidTransition
}

// EnsureEditable gates operations permitted only while the pool is still
// being set up: editing pool details, adding/editing/reordering/deleting
// props. Allowed at draft and open.
func (p *Pool) EnsureEditable() error {
	switch p.Status {
	case StatusCompleted:
		return ErrPoolCompleted
	case StatusLocked:
		return ErrPoolLocked
	default:
		return nil
	}
}

// EnsureOpen gates joining and pick submission, which require an open pool.
// Locked pools no longer accept picks; draft pools are not yet joinable.
func (p *Pool) EnsureOpen() error {
	switch p.Status {
	case StatusOpen:
		return nil
	case StatusLocked:
		return ErrPoolLocked
	case StatusCompleted:
		return ErrPoolCompleted
	default: // draft
		return ErrPoolNotOpen
	}
}

// EnsureLocked gates resolution, which is only legal while the pool is
// locked: not before betting closes, and not after completion.
func (p *Pool) EnsureLocked() error {
	switch p.Status {
	case StatusLocked:
		return nil
	case StatusCompleted:
		return ErrPoolCompleted
	default:
		return ErrPoolNotLocked
	}
}
