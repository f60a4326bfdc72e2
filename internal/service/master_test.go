package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"scripturesketch/internal/storage"
)

var t0 = time.Date(2025, 12, 12, 9, 0, 0, 0, time.UTC)

// sketchAt builds a group member created offset after t0.
func sketchAt(offset time.Duration, image string) storage.SketchRecord {
	rec := storage.SketchRecord{
		ID:           uuid.New(),
		CreationDate: t0.Add(offset),
		BookName:     "Hebrews",
		Chapter:      11,
		Verse:        1,
		BookOrder:    58,
		CenterWord:   "Faith",
		TextPosition: storage.TextBelow,
	}
	if image != "" {
		rec.ImageData = []byte(image)
		rec.DrawingData = []byte("drawing-" + image)
	}
	return rec
}

func TestResolveMaster(t *testing.T) {
	r1 := sketchAt(0, "")
	r2 := sketchAt(time.Minute, "X")
	r3 := sketchAt(2*time.Minute, "Y")
	r4 := sketchAt(3*time.Minute, "")

	tests := []struct {
		name   string
		group  []storage.SketchRecord
		wantID uuid.UUID
		isNil  bool
	}{
		{
			name:  "empty group",
			group: nil,
			isNil: true,
		},
		{
			name:   "oldest record with image wins over older linked record",
			group:  []storage.SketchRecord{r4, r3, r1, r2},
			wantID: r2.ID,
		},
		{
			name:   "falls back to oldest when nobody has an image",
			group:  []storage.SketchRecord{r4, r1},
			wantID: r1.ID,
		},
		{
			name:   "single record",
			group:  []storage.SketchRecord{r3},
			wantID: r3.ID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveMaster(tt.group)
			if tt.isNil {
				if got != nil {
					t.Errorf("ResolveMaster() = %v, want nil", got.ID)
				}
				return
			}
			if got == nil {
				t.Fatal("ResolveMaster() = nil")
			}
			if got.ID != tt.wantID {
				t.Errorf("ResolveMaster() = %v, want %v", got.ID, tt.wantID)
			}
		})
	}
}

func TestResolveMaster_SameCreationDate(t *testing.T) {
	a := sketchAt(0, "A")
	b := sketchAt(0, "B")
	want := a.ID
	if olderFirst(b, a) < 0 {
		want = b.ID
	}

	for _, group := range [][]storage.SketchRecord{{a, b}, {b, a}} {
		if got := ResolveMaster(group); got.ID != want {
			t.Errorf("ResolveMaster() = %v, want %v regardless of input order", got.ID, want)
		}
	}
}

func TestResolveMaster_StableWhenReferenceAdded(t *testing.T) {
	groups := [][]storage.SketchRecord{
		{sketchAt(0, "X"), sketchAt(time.Minute, "")},
		{sketchAt(0, ""), sketchAt(time.Minute, "X"), sketchAt(2*time.Minute, "Y")},
		{sketchAt(0, ""), sketchAt(time.Minute, "")},
	}

	for i, group := range groups {
		before := ResolveMaster(group).ID
		linked := sketchAt(time.Hour, "")
		after := ResolveMaster(append(group, linked)).ID
		if before != after {
			t.Errorf("group %d: master changed from %v to %v after linking a reference", i, before, after)
		}
	}
}

func TestPlanDeletion(t *testing.T) {
	a := sketchAt(0, "X")
	b := sketchAt(time.Minute, "")
	c := sketchAt(2*time.Minute, "")
	d := sketchAt(3*time.Minute, "Y")

	tests := []struct {
		name          string
		target        storage.SketchRecord
		group         []storage.SketchRecord
		wantAction    DeletionAction
		wantRecipient uuid.UUID
	}{
		{
			name:       "last member needs confirmation",
			target:     a,
			group:      []storage.SketchRecord{a},
			wantAction: ConfirmLastCopy,
		},
		{
			name:       "last member without image still needs confirmation",
			target:     b,
			group:      []storage.SketchRecord{b},
			wantAction: ConfirmLastCopy,
		},
		{
			name:       "group without the target itself",
			target:     a,
			group:      nil,
			wantAction: ConfirmLastCopy,
		},
		{
			name:          "only image copy moves to newest sibling",
			target:        a,
			group:         []storage.SketchRecord{a, c, b},
			wantAction:    TransferThenDelete,
			wantRecipient: c.ID,
		},
		{
			name:       "another sibling has an image",
			target:     a,
			group:      []storage.SketchRecord{a, b, d},
			wantAction: DeleteDirectly,
		},
		{
			name:       "linked reference",
			target:     b,
			group:      []storage.SketchRecord{a, b, c},
			wantAction: DeleteDirectly,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanDeletion(tt.target, tt.group)
			if plan.Action != tt.wantAction {
				t.Fatalf("PlanDeletion() action = %v, want %v", plan.Action, tt.wantAction)
			}
			if plan.Target.ID != tt.target.ID {
				t.Errorf("PlanDeletion() target = %v, want %v", plan.Target.ID, tt.target.ID)
			}
			if plan.RequiresConfirmation() != (tt.wantAction == ConfirmLastCopy) {
				t.Errorf("RequiresConfirmation() = %v", plan.RequiresConfirmation())
			}
			if tt.wantAction != TransferThenDelete {
				if plan.Recipient != nil {
					t.Errorf("PlanDeletion() recipient = %v, want none", plan.Recipient.ID)
				}
				return
			}
			if plan.Recipient == nil || plan.Recipient.ID != tt.wantRecipient {
				t.Errorf("PlanDeletion() recipient = %v, want %v", plan.Recipient, tt.wantRecipient)
			}
		})
	}
}

func TestDeletionAction_String(t *testing.T) {
	tests := map[DeletionAction]string{
		DeleteDirectly:     "delete",
		TransferThenDelete: "transfer-then-delete",
		ConfirmLastCopy:    "confirm-last-copy",
		DeletionAction(42): "unknown",
	}
	for action, want := range tests {
		if got := action.String(); got != want {
			t.Errorf("DeletionAction(%d).String() = %q, want %q", int(action), got, want)
		}
	}
}
