package items

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Action is a workflow action applied to a generated item.
type Action string

// Valid workflow actions.
const (
	ActionReview   Action = "review"
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
	ActionRevision Action = "request_revision"
)

var actions = []Action{ActionReview, ActionApprove, ActionReject, ActionRevision}

// transitions defines the legal source statuses and target status per action.
// Approve accepts approved as a source so that re-approving is an idempotent
// success that still appends an audit entry.
var transitions = map[Action]struct {
	sources []string
	target  string
}{
	ActionReview:   {sources: []string{StatusPending, StatusReviewed, StatusRevision}, target: StatusReviewed},
	ActionApprove:  {sources: []string{StatusPending, StatusReviewed, StatusApproved}, target: StatusApproved},
	ActionReject:   {sources: []string{StatusPending, StatusReviewed}, target: StatusRejected},
	ActionRevision: {sources: []string{StatusPending, StatusReviewed}, target: StatusRevision},
}

// notesRequired lists actions that must carry reviewer notes.
var notesRequired = map[Action]bool{
	ActionReject:   true,
	ActionRevision: true,
}

// UnmarshalJSON validates that the decoded string is a known action.
func (a *Action) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Action(raw)
	if !slices.Contains(actions, v) {
		return ErrInvalidAction
	}
	*a = v
	return nil
}

// CanTransition reports whether the action is legal from the given status.
func CanTransition(action Action, from string) bool {
	t, ok := transitions[action]
	if !ok {
		return false
	}
	return slices.Contains(t.sources, from)
}

// TargetStatus returns the status an action transitions to.
func TargetStatus(action Action) (string, error) {
	t, ok := transitions[action]
	if !ok {
		return "", ErrInvalidAction
	}
	return t.target, nil
}

// PlanAction validates a workflow action against the item's current state
// and produces the target status plus the audit entry that must be recorded
// with the status change. The two are a single unit of work: callers commit
// both or neither. The entry snapshots the item's current quality score.
func PlanAction(item *Item, action Action, cmd ActionCommand) (string, HistoryEntry, error) {
	if err := ValidateAction(action, cmd); err != nil {
		return "", HistoryEntry{}, err
	}

	if !CanTransition(action, item.Status) {
		return "", HistoryEntry{}, fmt.Errorf("%w: %s from %s", ErrInvalidStatus, action, item.Status)
	}

	target, err := TargetStatus(action)
	if err != nil {
		return "", HistoryEntry{}, err
	}

	entry := HistoryEntry{
		ItemID:               item.ID,
		Action:               action,
		FromStatus:           item.Status,
		ToStatus:             target,
		Actor:                cmd.Actor,
		Notes:                cmd.Notes,
		QualityScoreSnapshot: item.Score,
	}

	return target, entry, nil
}

// ValidateAction checks the command against the action's requirements
// before any database work: a non-empty actor always, and non-empty notes
// for reject and revision requests.
func ValidateAction(action Action, cmd ActionCommand) error {
	if _, ok := transitions[action]; !ok {
		return ErrInvalidAction
	}
	if cmd.Actor == "" {
		return ErrActorRequired
	}
	if notesRequired[action] && (cmd.Notes == nil || *cmd.Notes == "") {
		return fmt.Errorf("%w: %s", ErrNotesRequired, action)
	}
	return nil
}
