package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
)

var baseTime = time.Date(2025, 12, 12, 9, 0, 0, 0, time.UTC)

func newSketch(word string, offset time.Duration, group uuid.NullUUID, image []byte) *SketchRecord {
	return &SketchRecord{
		ID:              uuid.New(),
		CreationDate:    baseTime.Add(offset),
		BookName:        "John",
		Chapter:         3,
		Verse:           16,
		BookOrder:       43,
		CenterWord:      word,
		TextPosition:    TextBelow,
		ImageData:       image,
		SharedDrawingID: group,
	}
}

func group(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: true}
}

func ids(records []SketchRecord) []uuid.UUID {
	out := make([]uuid.UUID, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestSketchRepo_InsertAndGet(t *testing.T) {
	repo := NewSketchRepo(newTestDB(t))
	ctx := context.Background()

	rec := &SketchRecord{
		ID:              uuid.New(),
		CreationDate:    baseTime,
		BookName:        "Hebrews",
		Chapter:         11,
		Verse:           1,
		BookOrder:       58,
		CenterWord:      "Faith",
		TextPosition:    TextTop,
		DrawingData:     []byte("strokes"),
		ImageData:       []byte("light-png"),
		ImageDataDark:   []byte("dark-png"),
		SharedDrawingID: group(uuid.New()),
	}
	if err := repo.Insert(ctx, rec); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := repo.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if diff := cmp.Diff(rec, got); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}
}

func TestSketchRepo_InsertFillsDefaults(t *testing.T) {
	repo := NewSketchRepo(newTestDB(t))
	ctx := context.Background()

	rec := &SketchRecord{BookName: "Ruth", Chapter: 1, Verse: 16, BookOrder: 8, CenterWord: "Loyalty"}
	if err := repo.Insert(ctx, rec); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if rec.ID == uuid.Nil {
		t.Error("Insert() should assign an ID")
	}
	if rec.CreationDate.IsZero() {
		t.Error("Insert() should assign a creation date")
	}
	if rec.TextPosition != TextBelow {
		t.Errorf("Insert() text position = %q, want %q", rec.TextPosition, TextBelow)
	}

	got, err := repo.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.SharedDrawingID.Valid {
		t.Error("legacy record should have no group")
	}
	if got.DrawingData != nil || got.ImageData != nil || got.ImageDataDark != nil {
		t.Error("absent blobs should read back as nil")
	}
}

func TestSketchRepo_EmptyBlobStoredAsNull(t *testing.T) {
	db := newTestDB(t)
	repo := NewSketchRepo(db)
	ctx := context.Background()

	rec := newSketch("Hope", 0, uuid.NullUUID{}, []byte{})
	if err := repo.Insert(ctx, rec); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	var isNull bool
	if err := db.QueryRow("SELECT image_data IS NULL FROM sketches WHERE id = ?", rec.ID).Scan(&isNull); err != nil {
		t.Fatalf("query: %v", err)
	}
	if !isNull {
		t.Error("empty image data should be stored as NULL")
	}
}

func TestSketchRepo_Get_NotFound(t *testing.T) {
	repo := NewSketchRepo(newTestDB(t))

	_, err := repo.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestSketchRepo_Fetch(t *testing.T) {
	repo := NewSketchRepo(newTestDB(t))
	ctx := context.Background()

	faithGroup := uuid.New()
	r1 := newSketch("Faith", 0, group(faithGroup), []byte("x"))
	r2 := newSketch("faith", time.Minute, group(faithGroup), nil)
	r3 := newSketch("FAITH", 2*time.Minute, uuid.NullUUID{}, nil)
	r4 := newSketch("Grace", 3*time.Minute, uuid.NullUUID{}, []byte("y"))
	r5 := newSketch("Éternité", 4*time.Minute, uuid.NullUUID{}, nil)
	r4.BookName, r4.BookOrder, r4.Chapter, r4.Verse = "Ephesians", 49, 2, 8

	for _, r := range []*SketchRecord{r4, r2, r1, r3, r5} {
		if err := repo.Insert(ctx, r); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	tests := []struct {
		name  string
		query Query
		want  []uuid.UUID
	}{
		{
			name:  "all records oldest first",
			query: Query{},
			want:  []uuid.UUID{r1.ID, r2.ID, r3.ID, r4.ID, r5.ID},
		},
		{
			name:  "exact match is case sensitive",
			query: Query{Where: Eq(FieldCenterWord, "faith")},
			want:  []uuid.UUID{r2.ID},
		},
		{
			name:  "case-insensitive match",
			query: Query{Where: EqFold(FieldCenterWord, "fAiTh")},
			want:  []uuid.UUID{r1.ID, r2.ID, r3.ID},
		},
		{
			name:  "case-insensitive match beyond ASCII",
			query: Query{Where: EqFold(FieldCenterWord, "ÉTERNITÉ")},
			want:  []uuid.UUID{r5.ID},
		},
		{
			name:  "ungrouped records",
			query: Query{Where: IsNull(FieldSharedDrawingID)},
			want:  []uuid.UUID{r3.ID, r4.ID, r5.ID},
		},
		{
			name:  "group members",
			query: Query{Where: Eq(FieldSharedDrawingID, faithGroup)},
			want:  []uuid.UUID{r1.ID, r2.ID},
		},
		{
			name:  "records with image",
			query: Query{Where: NotNull(FieldImageData)},
			want:  []uuid.UUID{r1.ID, r4.ID},
		},
		{
			name: "and of clauses",
			query: Query{Where: And(
				EqFold(FieldCenterWord, "faith"),
				IsNull(FieldSharedDrawingID),
			)},
			want: []uuid.UUID{r3.ID},
		},
		{
			name:  "numeric equality",
			query: Query{Where: And(Eq(FieldBookOrder, 49), Eq(FieldChapter, 2), Eq(FieldVerse, 8))},
			want:  []uuid.UUID{r4.ID},
		},
		{
			name:  "creation date equality",
			query: Query{Where: Eq(FieldCreationDate, baseTime.Add(time.Minute))},
			want:  []uuid.UUID{r2.ID},
		},
		{
			name:  "newest first with limit",
			query: Query{OrderBy: []Order{Desc(FieldCreationDate)}, Limit: 2},
			want:  []uuid.UUID{r5.ID, r4.ID},
		},
		{
			name:  "no match is empty",
			query: Query{Where: Eq(FieldCenterWord, "Peace")},
			want:  []uuid.UUID{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Fetch(ctx, tt.query)
			if err != nil {
				t.Fatalf("Fetch() error = %v", err)
			}
			if got == nil {
				t.Fatal("Fetch() returned nil slice")
			}
			if diff := cmp.Diff(tt.want, ids(got), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Fetch() ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSketchRepo_Fetch_UnknownField(t *testing.T) {
	repo := NewSketchRepo(newTestDB(t))

	_, err := repo.Fetch(context.Background(), Query{Where: Eq(Field("1=1; DROP TABLE sketches; --"), 1)})
	if err == nil {
		t.Fatal("Fetch() with unknown field should fail")
	}

	_, err = repo.Fetch(context.Background(), Query{OrderBy: []Order{Asc(Field("nope"))}})
	if err == nil {
		t.Fatal("Fetch() with unknown order field should fail")
	}
}

func TestSketchRepo_Update(t *testing.T) {
	repo := NewSketchRepo(newTestDB(t))
	ctx := context.Background()

	rec := newSketch("Faith", 0, uuid.NullUUID{}, []byte("x"))
	rec.DrawingData = []byte("strokes")
	if err := repo.Insert(ctx, rec); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	updated := *rec
	updated.SharedDrawingID = group(uuid.New())
	updated.ImageDataDark = []byte("dark")
	updated.CreationDate = baseTime.Add(time.Hour) // immutable, ignored
	if err := repo.Update(ctx, &updated); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !got.CreationDate.Equal(rec.CreationDate) {
		t.Errorf("Update() changed creation date to %v", got.CreationDate)
	}
	if got.SharedDrawingID != updated.SharedDrawingID {
		t.Errorf("SharedDrawingID = %v, want %v", got.SharedDrawingID, updated.SharedDrawingID)
	}
	if string(got.ImageData) != "x" || string(got.DrawingData) != "strokes" || string(got.ImageDataDark) != "dark" {
		t.Errorf("Update() blobs = %q/%q/%q", got.ImageData, got.DrawingData, got.ImageDataDark)
	}

	missing := newSketch("Ghost", 0, uuid.NullUUID{}, nil)
	if err := repo.Update(ctx, missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() missing record error = %v, want ErrNotFound", err)
	}
}

func TestSketchRepo_Delete(t *testing.T) {
	repo := NewSketchRepo(newTestDB(t))
	ctx := context.Background()

	rec := newSketch("Faith", 0, uuid.NullUUID{}, nil)
	if err := repo.Insert(ctx, rec); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if err := repo.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.Get(ctx, rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestSketchRepo_Atomic(t *testing.T) {
	ctx := context.Background()
	errBoom := errors.New("boom")

	tests := []struct {
		name      string
		fn        func(s SketchStore, a, b *SketchRecord) error
		wantErr   error
		wantImage string // image data of b afterwards
		wantA     bool   // a still exists
	}{
		{
			name: "commit",
			fn: func(s SketchStore, a, b *SketchRecord) error {
				b.ImageData = a.ImageData
				if err := s.Update(ctx, b); err != nil {
					return err
				}
				return s.Delete(ctx, a.ID)
			},
			wantImage: "x",
			wantA:     false,
		},
		{
			name: "rollback on error",
			fn: func(s SketchStore, a, b *SketchRecord) error {
				b.ImageData = a.ImageData
				if err := s.Update(ctx, b); err != nil {
					return err
				}
				return errBoom
			},
			wantErr:   errBoom,
			wantImage: "",
			wantA:     true,
		},
		{
			name: "nested joins outer transaction",
			fn: func(s SketchStore, a, b *SketchRecord) error {
				err := s.Atomic(ctx, func(inner SketchStore) error {
					return inner.Delete(ctx, a.ID)
				})
				if err != nil {
					return err
				}
				return errBoom
			},
			wantErr:   errBoom,
			wantImage: "",
			wantA:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewSketchRepo(newTestDB(t))
			gid := group(uuid.New())
			a := newSketch("Faith", 0, gid, []byte("x"))
			b := newSketch("Faith", time.Minute, gid, nil)
			for _, r := range []*SketchRecord{a, b} {
				if err := repo.Insert(ctx, r); err != nil {
					t.Fatalf("Insert() error = %v", err)
				}
			}

			err := repo.Atomic(ctx, func(s SketchStore) error {
				return tt.fn(s, a, b)
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Atomic() error = %v, want %v", err, tt.wantErr)
			}

			gotB, err := repo.Get(ctx, b.ID)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if string(gotB.ImageData) != tt.wantImage {
				t.Errorf("b.ImageData = %q, want %q", gotB.ImageData, tt.wantImage)
			}

			_, err = repo.Get(ctx, a.ID)
			if exists := err == nil; exists != tt.wantA {
				t.Errorf("a exists = %v, want %v (err %v)", exists, tt.wantA, err)
			}
		})
	}
}

func TestSketchRepo_Atomic_Panic(t *testing.T) {
	repo := NewSketchRepo(newTestDB(t))
	ctx := context.Background()

	rec := newSketch("Faith", 0, uuid.NullUUID{}, nil)
	if err := repo.Insert(ctx, rec); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("Atomic() should re-panic")
			}
		}()
		_ = repo.Atomic(ctx, func(s SketchStore) error {
			if err := s.Delete(ctx, rec.ID); err != nil {
				return err
			}
			panic("boom")
		})
	}()

	if _, err := repo.Get(ctx, rec.ID); err != nil {
		t.Errorf("record should survive a panicking transaction: %v", err)
	}
}
