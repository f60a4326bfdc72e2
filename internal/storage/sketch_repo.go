package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_sketch_store.go -package=mocks scripturesketch/internal/storage SketchStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// SketchStore defines the interface for sketch storage operations.
type SketchStore interface {
	// Insert persists a new record. A nil ID or zero CreationDate is filled in.
	Insert(ctx context.Context, rec *SketchRecord) error
	// Fetch returns all records matching the query.
	// Returns an empty slice (not an error) when nothing matches.
	Fetch(ctx context.Context, q Query) ([]SketchRecord, error)
	// Get gets a record by ID. Returns ErrNotFound if not found.
	Get(ctx context.Context, id uuid.UUID) (*SketchRecord, error)
	// Update writes every mutable field of rec. Returns ErrNotFound if the record is gone.
	Update(ctx context.Context, rec *SketchRecord) error
	// Delete removes a record. Returns ErrNotFound if not found.
	Delete(ctx context.Context, id uuid.UUID) error
	// Atomic runs fn against a store whose writes commit together when fn
	// returns nil and are rolled back otherwise.
	Atomic(ctx context.Context, fn func(SketchStore) error) error
}

// executor is satisfied by both *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SketchRepo provides methods for sketch operations.
// It implements the SketchStore interface.
type SketchRepo struct {
	db   *sql.DB
	exec executor
	inTx bool
}

// NewSketchRepo creates a new SketchRepo.
func NewSketchRepo(db *sql.DB) *SketchRepo {
	return &SketchRepo{db: db, exec: db}
}

const sketchColumns = `id, creation_date, book_name, chapter, verse, book_order, center_word,
	text_position, drawing_data, image_data, image_data_dark, shared_drawing_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSketch(s rowScanner) (SketchRecord, error) {
	var rec SketchRecord
	var created int64
	var position string
	err := s.Scan(&rec.ID, &created, &rec.BookName, &rec.Chapter, &rec.Verse, &rec.BookOrder,
		&rec.CenterWord, &position, &rec.DrawingData, &rec.ImageData, &rec.ImageDataDark, &rec.SharedDrawingID)
	if err != nil {
		return SketchRecord{}, err
	}
	rec.CreationDate = time.Unix(0, created).UTC()
	rec.TextPosition = TextPosition(position)
	return rec, nil
}

// blob maps empty byte slices to SQL NULL.
func blob(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}

// Insert inserts a new sketch.
// If rec.ID is unset a new UUID is generated; if CreationDate is unset it is set to now.
func (r *SketchRepo) Insert(ctx context.Context, rec *SketchRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreationDate.IsZero() {
		rec.CreationDate = time.Now().UTC()
	}
	if rec.TextPosition == "" {
		rec.TextPosition = TextBelow
	}

	_, err := r.exec.ExecContext(ctx,
		`INSERT INTO sketches (`+sketchColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CreationDate.UnixNano(), rec.BookName, rec.Chapter, rec.Verse, rec.BookOrder,
		rec.CenterWord, string(rec.TextPosition), blob(rec.DrawingData), blob(rec.ImageData),
		blob(rec.ImageDataDark), rec.SharedDrawingID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sketch: %w", err)
	}
	return nil
}

// Fetch returns all sketches matching q.
func (r *SketchRepo) Fetch(ctx context.Context, q Query) ([]SketchRecord, error) {
	tail, args, err := q.build()
	if err != nil {
		return nil, fmt.Errorf("failed to build sketch query: %w", err)
	}

	rows, err := r.exec.QueryContext(ctx, "SELECT "+sketchColumns+" FROM sketches"+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sketches: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	records := []SketchRecord{}
	for rows.Next() {
		rec, err := scanSketch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sketch: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return records, nil
}

// Get gets a sketch by its ID. Returns ErrNotFound if not found.
func (r *SketchRepo) Get(ctx context.Context, id uuid.UUID) (*SketchRecord, error) {
	rec, err := scanSketch(r.exec.QueryRowContext(ctx,
		"SELECT "+sketchColumns+" FROM sketches WHERE id = ?", id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query sketch: %w", err)
	}
	return &rec, nil
}

// Update writes the mutable fields of rec. ID and CreationDate never change.
func (r *SketchRepo) Update(ctx context.Context, rec *SketchRecord) error {
	res, err := r.exec.ExecContext(ctx,
		`UPDATE sketches SET
			book_name = ?, chapter = ?, verse = ?, book_order = ?, center_word = ?,
			text_position = ?, drawing_data = ?, image_data = ?, image_data_dark = ?,
			shared_drawing_id = ?
		 WHERE id = ?`,
		rec.BookName, rec.Chapter, rec.Verse, rec.BookOrder, rec.CenterWord,
		string(rec.TextPosition), blob(rec.DrawingData), blob(rec.ImageData), blob(rec.ImageDataDark),
		rec.SharedDrawingID, rec.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update sketch: %w", err)
	}
	return requireRow(res)
}

// Delete deletes a sketch by its ID. Returns ErrNotFound if not found.
func (r *SketchRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.exec.ExecContext(ctx, "DELETE FROM sketches WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete sketch: %w", err)
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Atomic runs fn inside a transaction. Calls made through the store passed
// to fn are committed together, or not at all if fn returns an error or panics.
// A nested Atomic joins the enclosing transaction.
func (r *SketchRepo) Atomic(ctx context.Context, fn func(SketchStore) error) error {
	if r.inTx {
		return fn(r)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&SketchRepo{db: r.db, exec: tx, inTx: true}); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
