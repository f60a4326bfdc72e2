package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_artwork_service.go -package=mocks -mock_names=ArtworkService=MockArtworkService scripturesketch/internal/service ArtworkService

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"scripturesketch/internal/bible"
	"scripturesketch/internal/contextutil"
	"scripturesketch/internal/storage"
)

// Variant selects the light or dark raster snapshot of an artwork.
type Variant string

const (
	VariantLight Variant = "light"
	VariantDark  Variant = "dark"
)

// ParseVariant parses "light" or "dark". An empty string means light.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(s)) {
	case "", VariantLight:
		return VariantLight, nil
	case VariantDark:
		return VariantDark, nil
	}
	return "", &ValidationError{Field: "variant", Message: fmt.Sprintf("unknown variant %q", s)}
}

func (v Variant) field() storage.Field {
	if v == VariantDark {
		return storage.FieldImageDataDark
	}
	return storage.FieldImageData
}

func (v Variant) of(rec *storage.SketchRecord) []byte {
	if v == VariantDark {
		return rec.ImageDataDark
	}
	return rec.ImageData
}

// NewSketch is a freshly finalized drawing for a verse reference.
type NewSketch struct {
	BookName      string
	Chapter       int
	Verse         int
	CenterWord    string
	TextPosition  storage.TextPosition
	DrawingData   []byte
	ImageData     []byte
	ImageDataDark []byte
}

// Artwork is the redrawn content of an existing sketch.
type Artwork struct {
	DrawingData   []byte
	ImageData     []byte
	ImageDataDark []byte
}

// LinkRequest attaches another verse reference to an existing artwork group.
type LinkRequest struct {
	Word            string // Defaults to the group's word when empty
	SharedDrawingID uuid.UUID
	BookName        string
	Chapter         int
	Verse           int
	TextPosition    storage.TextPosition
}

// DeletionResult reports what DeleteSketch did.
type DeletionResult struct {
	Deleted              bool
	ConfirmationRequired bool
	TransferredTo        uuid.NullUUID
}

// ArtworkService implements the shared-artwork semantics: one master copy,
// many linked references.
type ArtworkService interface {
	// CreateSketch stores a new drawing as the first member of a fresh group.
	CreateSketch(ctx context.Context, in NewSketch) (*storage.SketchRecord, error)
	// UpdateArtwork replaces the drawing and snapshots of one record.
	UpdateArtwork(ctx context.Context, id uuid.UUID, art Artwork) (*storage.SketchRecord, error)
	// LinkReference adds an artwork-less reference to an existing group.
	LinkReference(ctx context.Context, req LinkRequest) (*storage.SketchRecord, error)
	// EffectiveImage returns the record's own snapshot or the one inherited from its group.
	EffectiveImage(ctx context.Context, rec *storage.SketchRecord, v Variant) ([]byte, error)
	// DisplayImage resolves the image to show for a record, falling back from dark to light.
	DisplayImage(ctx context.Context, id uuid.UUID, v Variant) ([]byte, error)
	// DeleteSketch deletes a record, moving its artwork to a sibling when it holds the only copy.
	// Deleting the last member of a group requires confirmed to be true.
	DeleteSketch(ctx context.Context, id uuid.UUID, confirmed bool) (DeletionResult, error)
}

// artworkService implements ArtworkService.
type artworkService struct {
	sketches storage.SketchStore
	now      func() time.Time
	newID    func() uuid.UUID
}

// NewArtworkService creates a new ArtworkService.
func NewArtworkService(sketches storage.SketchStore) ArtworkService {
	return &artworkService{
		sketches: sketches,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.New,
	}
}

// validateReference checks a reference against the canonical table.
func validateReference(book string, chapter, verse int) (bible.Book, error) {
	b, err := bible.Validate(book, chapter, verse)
	if err == nil {
		return b, nil
	}
	field := "book"
	switch {
	case errors.Is(err, bible.ErrChapterOutOfRange):
		field = "chapter"
	case errors.Is(err, bible.ErrVerseOutOfRange):
		field = "verse"
	}
	return bible.Book{}, &ValidationError{Field: field, Message: err.Error(), Kind: ErrInvalidReference}
}

func normalizePosition(p storage.TextPosition) (storage.TextPosition, error) {
	if p == "" {
		return storage.TextBelow, nil
	}
	if !p.Valid() {
		return "", &ValidationError{Field: "text_position", Message: fmt.Sprintf("unknown text position %q", p)}
	}
	return p, nil
}

// CreateSketch validates the reference and stores the drawing under a new group ID.
func (s *artworkService) CreateSketch(ctx context.Context, in NewSketch) (*storage.SketchRecord, error) {
	logger := contextutil.LoggerFromContext(ctx)

	book, err := validateReference(in.BookName, in.Chapter, in.Verse)
	if err != nil {
		logger.WarnContext(ctx, "rejected sketch reference", "error", err)
		return nil, err
	}
	word := strings.TrimSpace(in.CenterWord)
	if word == "" {
		return nil, &ValidationError{Field: "center_word", Message: "cannot be empty"}
	}
	if len(in.ImageData) == 0 {
		return nil, &ValidationError{Field: "image_data", Message: "a new sketch needs a rendered image"}
	}
	position, err := normalizePosition(in.TextPosition)
	if err != nil {
		return nil, err
	}

	rec := &storage.SketchRecord{
		ID:              s.newID(),
		CreationDate:    s.now(),
		BookName:        book.Name,
		Chapter:         in.Chapter,
		Verse:           in.Verse,
		BookOrder:       book.Order,
		CenterWord:      word,
		TextPosition:    position,
		DrawingData:     in.DrawingData,
		ImageData:       in.ImageData,
		ImageDataDark:   in.ImageDataDark,
		SharedDrawingID: uuid.NullUUID{UUID: s.newID(), Valid: true},
	}
	if err := s.sketches.Insert(ctx, rec); err != nil {
		logger.ErrorContext(ctx, "failed to save sketch", "error", err)
		return nil, storageError(err, "failed to save sketch")
	}

	logger.InfoContext(ctx, "sketch created", "id", rec.ID, "word", rec.CenterWord, "group", rec.SharedDrawingID.UUID)
	return rec, nil
}

// UpdateArtwork redraws a record. Only the edited record changes.
func (s *artworkService) UpdateArtwork(ctx context.Context, id uuid.UUID, art Artwork) (*storage.SketchRecord, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if len(art.ImageData) == 0 {
		return nil, &ValidationError{Field: "image_data", Message: "a redrawn sketch needs a rendered image"}
	}

	rec, err := s.get(ctx, s.sketches, id)
	if err != nil {
		return nil, err
	}
	rec.DrawingData = art.DrawingData
	rec.ImageData = art.ImageData
	rec.ImageDataDark = art.ImageDataDark

	if err := s.sketches.Update(ctx, rec); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, WrapError(ErrNotFound, "sketch "+id.String())
		}
		logger.ErrorContext(ctx, "failed to update artwork", "id", id, "error", err)
		return nil, storageError(err, "failed to update artwork")
	}

	logger.InfoContext(ctx, "artwork updated", "id", id)
	return rec, nil
}

// LinkReference creates a pure reference record inheriting the group's artwork.
func (s *artworkService) LinkReference(ctx context.Context, req LinkRequest) (*storage.SketchRecord, error) {
	logger := contextutil.LoggerFromContext(ctx)

	book, err := validateReference(req.BookName, req.Chapter, req.Verse)
	if err != nil {
		logger.WarnContext(ctx, "rejected linked reference", "error", err)
		return nil, err
	}
	if req.SharedDrawingID == uuid.Nil {
		return nil, &ValidationError{Field: "shared_drawing_id", Message: "cannot be empty"}
	}
	position, err := normalizePosition(req.TextPosition)
	if err != nil {
		return nil, err
	}

	members, err := s.sketches.Fetch(ctx, storage.Query{
		Where: storage.Eq(storage.FieldSharedDrawingID, req.SharedDrawingID),
		Limit: 1,
	})
	if err != nil {
		return nil, storageError(err, "failed to load artwork group")
	}
	if len(members) == 0 {
		return nil, WrapError(ErrNotFound, "artwork group "+req.SharedDrawingID.String())
	}

	word := strings.TrimSpace(req.Word)
	if word == "" {
		word = members[0].CenterWord
	}

	rec := &storage.SketchRecord{
		ID:              s.newID(),
		CreationDate:    s.now(),
		BookName:        book.Name,
		Chapter:         req.Chapter,
		Verse:           req.Verse,
		BookOrder:       book.Order,
		CenterWord:      word,
		TextPosition:    position,
		SharedDrawingID: uuid.NullUUID{UUID: req.SharedDrawingID, Valid: true},
		// Linked records own no drawing; they reference the master's.
		DrawingData:   nil,
		ImageData:     nil,
		ImageDataDark: nil,
	}
	if err := s.sketches.Insert(ctx, rec); err != nil {
		logger.ErrorContext(ctx, "failed to save linked reference", "error", err)
		return nil, storageError(err, "failed to save linked reference")
	}

	logger.InfoContext(ctx, "reference linked", "id", rec.ID, "group", req.SharedDrawingID, "reference", fmt.Sprintf("%s %d:%d", rec.BookName, rec.Chapter, rec.Verse))
	return rec, nil
}

// EffectiveImage returns rec's own snapshot for v, or the snapshot of the
// oldest group member that has one. Returns nil when the group has none.
func (s *artworkService) EffectiveImage(ctx context.Context, rec *storage.SketchRecord, v Variant) ([]byte, error) {
	if own := v.of(rec); len(own) > 0 {
		return own, nil
	}
	if !rec.SharedDrawingID.Valid {
		return nil, nil
	}

	holders, err := s.sketches.Fetch(ctx, storage.Query{
		Where: storage.And(
			storage.Eq(storage.FieldSharedDrawingID, rec.SharedDrawingID.UUID),
			storage.NotNull(v.field()),
		),
		OrderBy: []storage.Order{storage.Asc(storage.FieldCreationDate)},
		Limit:   1,
	})
	if err != nil {
		return nil, storageError(err, "failed to load group artwork")
	}
	if len(holders) == 0 {
		return nil, nil
	}
	return v.of(&holders[0]), nil
}

// DisplayImage loads a record and resolves its image. A dark request with no
// dark snapshot anywhere in the group falls back to the light one.
func (s *artworkService) DisplayImage(ctx context.Context, id uuid.UUID, v Variant) ([]byte, error) {
	rec, err := s.get(ctx, s.sketches, id)
	if err != nil {
		return nil, err
	}

	img, err := s.EffectiveImage(ctx, rec, v)
	if err != nil {
		return nil, err
	}
	if img == nil && v == VariantDark {
		img, err = s.EffectiveImage(ctx, rec, VariantLight)
		if err != nil {
			return nil, err
		}
	}
	if img == nil {
		return nil, WrapError(ErrNotFound, "no artwork for sketch "+id.String())
	}
	return img, nil
}

// errNeedsConfirmation aborts the deletion unit without writing anything.
var errNeedsConfirmation = errors.New("confirmation required")

// DeleteSketch plans and executes a deletion as one atomic unit.
func (s *artworkService) DeleteSketch(ctx context.Context, id uuid.UUID, confirmed bool) (DeletionResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	var result DeletionResult
	err := s.sketches.Atomic(ctx, func(tx storage.SketchStore) error {
		target, err := s.get(ctx, tx, id)
		if err != nil {
			return err
		}
		group, err := groupOf(ctx, tx, target)
		if err != nil {
			return err
		}

		plan := PlanDeletion(*target, group)
		if plan.RequiresConfirmation() && !confirmed {
			return errNeedsConfirmation
		}

		if plan.Recipient != nil {
			recipient := *plan.Recipient
			recipient.DrawingData = target.DrawingData
			recipient.ImageData = target.ImageData
			if target.HasDarkImage() {
				recipient.ImageDataDark = target.ImageDataDark
			}
			if err := tx.Update(ctx, &recipient); err != nil {
				return storageError(err, "failed to transfer artwork")
			}
			result.TransferredTo = uuid.NullUUID{UUID: recipient.ID, Valid: true}
		}

		if err := tx.Delete(ctx, target.ID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return WrapError(ErrNotFound, "sketch "+id.String())
			}
			return storageError(err, "failed to delete sketch")
		}
		result.Deleted = true
		return nil
	})

	switch {
	case errors.Is(err, errNeedsConfirmation):
		logger.InfoContext(ctx, "deletion of last artwork copy needs confirmation", "id", id)
		return DeletionResult{ConfirmationRequired: true}, nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrStorageFailure):
		logger.ErrorContext(ctx, "failed to delete sketch", "id", id, "error", err)
		return DeletionResult{}, err
	case err != nil:
		logger.ErrorContext(ctx, "failed to delete sketch", "id", id, "error", err)
		return DeletionResult{}, storageError(err, "failed to delete sketch")
	}

	if result.TransferredTo.Valid {
		logger.InfoContext(ctx, "sketch deleted after artwork transfer", "id", id, "recipient", result.TransferredTo.UUID)
	} else {
		logger.InfoContext(ctx, "sketch deleted", "id", id)
	}
	return result, nil
}

// get loads a record, mapping storage errors to service errors.
func (s *artworkService) get(ctx context.Context, store storage.SketchStore, id uuid.UUID) (*storage.SketchRecord, error) {
	rec, err := store.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, WrapError(ErrNotFound, "sketch "+id.String())
	}
	if err != nil {
		return nil, storageError(err, "failed to load sketch")
	}
	return rec, nil
}

// groupOf returns every record sharing rec's artwork: its group ID members,
// or for an ungrouped legacy record, the ungrouped records with the same word.
func groupOf(ctx context.Context, store storage.SketchStore, rec *storage.SketchRecord) ([]storage.SketchRecord, error) {
	var where storage.Predicate
	if rec.SharedDrawingID.Valid {
		where = storage.Eq(storage.FieldSharedDrawingID, rec.SharedDrawingID.UUID)
	} else {
		where = storage.And(
			storage.EqFold(storage.FieldCenterWord, rec.CenterWord),
			storage.IsNull(storage.FieldSharedDrawingID),
		)
	}

	group, err := store.Fetch(ctx, storage.Query{Where: where})
	if err != nil {
		return nil, storageError(err, "failed to load artwork group")
	}
	return group, nil
}
