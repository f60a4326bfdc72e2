package migration

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"scripturesketch/internal/service"
	"scripturesketch/internal/storage"
)

// FlagKey marks the word-group backfill as completed in the settings store.
const FlagKey = "word_group_migration_v1"

// Result summarizes one RunIfNeeded call.
type Result struct {
	Skipped bool // Flag was already set
	Groups  int  // Groups assigned
	Records int  // Records updated
}

// Runner backfills shared drawing IDs on records created before artwork
// sharing existed. Records with the same case-insensitive center word end
// up in the same group.
type Runner struct {
	sketches storage.SketchStore
	settings storage.SettingsStore
	newID    func() uuid.UUID
	logger   *slog.Logger
}

// NewRunner creates a new migration Runner.
func NewRunner(sketches storage.SketchStore, settings storage.SettingsStore) *Runner {
	return &Runner{
		sketches: sketches,
		settings: settings,
		newID:    uuid.New,
		logger:   slog.Default(),
	}
}

// RunIfNeeded performs the backfill unless a previous run completed.
// The completion flag is only set after every assignment is saved, so a
// failed run is retried on the next start.
func (r *Runner) RunIfNeeded(ctx context.Context) (Result, error) {
	done, err := r.settings.Bool(ctx, FlagKey)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read migration flag: %w: %w", service.ErrStorageFailure, err)
	}
	if done {
		r.logger.DebugContext(ctx, "word group migration already completed")
		return Result{Skipped: true}, nil
	}

	pending, err := r.sketches.Fetch(ctx, storage.Query{
		Where: storage.IsNull(storage.FieldSharedDrawingID),
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to load ungrouped sketches: %w: %w", service.ErrStorageFailure, err)
	}

	if len(pending) == 0 {
		if err := r.markDone(ctx); err != nil {
			return Result{}, err
		}
		r.logger.InfoContext(ctx, "word group migration not needed")
		return Result{}, nil
	}

	groups := make(map[string][]int)
	for i, rec := range pending {
		key := service.WordKey(rec.CenterWord)
		groups[key] = append(groups[key], i)
	}

	// Assign IDs in key order so a run is deterministic for a given generator.
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	err = r.sketches.Atomic(ctx, func(tx storage.SketchStore) error {
		for _, k := range keys {
			id := uuid.NullUUID{UUID: r.newID(), Valid: true}
			for _, i := range groups[k] {
				// Only the group ID changes; artwork stays on every record.
				pending[i].SharedDrawingID = id
				if err := tx.Update(ctx, &pending[i]); err != nil {
					return fmt.Errorf("failed to assign group to sketch %s: %w", pending[i].ID, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "word group migration failed, will retry on next start", "error", err)
		return Result{}, fmt.Errorf("word group migration: %w: %w", service.ErrStorageFailure, err)
	}

	if err := r.markDone(ctx); err != nil {
		return Result{}, err
	}

	res := Result{Groups: len(keys), Records: len(pending)}
	r.logger.InfoContext(ctx, "word group migration completed", "groups", res.Groups, "records", res.Records)
	return res, nil
}

func (r *Runner) markDone(ctx context.Context) error {
	if err := r.settings.SetBool(ctx, FlagKey, true); err != nil {
		return fmt.Errorf("failed to set migration flag: %w: %w", service.ErrStorageFailure, err)
	}
	return nil
}
