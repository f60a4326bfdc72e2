package service

import (
	"bytes"
	"slices"

	"scripturesketch/internal/storage"
)

// olderFirst orders records by creation date, then ID.
func olderFirst(a, b storage.SketchRecord) int {
	if c := a.CreationDate.Compare(b.CreationDate); c != 0 {
		return c
	}
	return bytes.Compare(a.ID[:], b.ID[:])
}

// ResolveMaster returns the record whose artwork represents the group: the
// oldest record with image data, or the oldest record overall when none has
// any. It returns nil only for an empty group.
func ResolveMaster(group []storage.SketchRecord) *storage.SketchRecord {
	var oldest, oldestWithImage *storage.SketchRecord
	for i := range group {
		rec := &group[i]
		if oldest == nil || olderFirst(*rec, *oldest) < 0 {
			oldest = rec
		}
		if rec.HasImage() && (oldestWithImage == nil || olderFirst(*rec, *oldestWithImage) < 0) {
			oldestWithImage = rec
		}
	}
	if oldestWithImage != nil {
		return oldestWithImage
	}
	return oldest
}

// DeletionAction is the branch PlanDeletion selected.
type DeletionAction int

const (
	// DeleteDirectly removes the target; the group keeps its artwork elsewhere.
	DeleteDirectly DeletionAction = iota
	// TransferThenDelete moves the target's artwork to a sibling before removing it.
	TransferThenDelete
	// ConfirmLastCopy removes the last member of the group, and with it the artwork.
	ConfirmLastCopy
)

func (a DeletionAction) String() string {
	switch a {
	case DeleteDirectly:
		return "delete"
	case TransferThenDelete:
		return "transfer-then-delete"
	case ConfirmLastCopy:
		return "confirm-last-copy"
	}
	return "unknown"
}

// DeletionPlan describes how deleting Target affects its group.
type DeletionPlan struct {
	Action    DeletionAction
	Target    storage.SketchRecord
	Recipient *storage.SketchRecord // Set for TransferThenDelete
}

// RequiresConfirmation reports whether the user must confirm the deletion.
func (p DeletionPlan) RequiresConfirmation() bool {
	return p.Action == ConfirmLastCopy
}

// PlanDeletion decides how to delete target from group. group may or may not
// include target itself.
func PlanDeletion(target storage.SketchRecord, group []storage.SketchRecord) DeletionPlan {
	siblings := make([]storage.SketchRecord, 0, len(group))
	for _, rec := range group {
		if rec.ID != target.ID {
			siblings = append(siblings, rec)
		}
	}

	if len(siblings) == 0 {
		return DeletionPlan{Action: ConfirmLastCopy, Target: target}
	}

	if !target.HasImage() || slices.ContainsFunc(siblings, storage.SketchRecord.HasImage) {
		return DeletionPlan{Action: DeleteDirectly, Target: target}
	}

	// The newest sibling inherits the only copy.
	recipient := slices.MaxFunc(siblings, olderFirst)
	return DeletionPlan{Action: TransferThenDelete, Target: target, Recipient: &recipient}
}
