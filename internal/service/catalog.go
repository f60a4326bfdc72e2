package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_catalog_service.go -package=mocks -mock_names=CatalogService=MockCatalogService scripturesketch/internal/service CatalogService

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"scripturesketch/internal/bible"
	"scripturesketch/internal/contextutil"
	"scripturesketch/internal/storage"
)

// UnknownWord is the group name for records without a center word.
const UnknownWord = "unknown"

// WordKey normalizes a center word into its grouping key.
func WordKey(word string) string {
	if strings.TrimSpace(word) == "" {
		return UnknownWord
	}
	return strings.ToLower(word)
}

// VerseGroup is one Scripture Mode row: every word drawn for a single verse.
type VerseGroup struct {
	Reference bible.Reference
	Sketches  []storage.SketchRecord // Newest first
}

// WordGroup is one Word Mode row: every verse linked to a single word.
type WordGroup struct {
	Word     string                 // Spelling of the oldest record
	Sketches []storage.SketchRecord // Canonical order
}

// WordDetail is the album for a word: its master artwork and references.
type WordDetail struct {
	Word            string
	SharedDrawingID uuid.NullUUID // Group to link new references to
	Master          *storage.SketchRecord
	References      []storage.SketchRecord // Canonical order
}

// CatalogService provides the browsing views over the catalog.
type CatalogService interface {
	// ScriptureIndex groups records by verse in canonical order.
	ScriptureIndex(ctx context.Context, search string) ([]VerseGroup, error)
	// WordIndex groups records by case-insensitive center word.
	WordIndex(ctx context.Context, search string) ([]WordGroup, error)
	// WordDetail returns the album for a word. Returns ErrNotFound for unknown words.
	WordDetail(ctx context.Context, word string) (*WordDetail, error)
	// ExportMarkdown renders the whole catalog as a markdown document.
	ExportMarkdown(ctx context.Context) ([]byte, error)
}

// catalogService implements CatalogService.
type catalogService struct {
	sketches storage.SketchStore
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(sketches storage.SketchStore) CatalogService {
	return &catalogService{sketches: sketches}
}

func referenceOf(rec storage.SketchRecord) bible.Reference {
	return bible.Reference{
		Book:      rec.BookName,
		BookOrder: rec.BookOrder,
		Chapter:   rec.Chapter,
		Verse:     rec.Verse,
	}
}

// canonicalOrder sorts by reference, then by age.
func canonicalOrder(a, b storage.SketchRecord) int {
	if c := bible.Compare(referenceOf(a), referenceOf(b)); c != 0 {
		return c
	}
	return olderFirst(a, b)
}

// matches reports whether rec satisfies a catalog search: the word or book
// contains the text ignoring case, or "chapter:verse" contains it.
func matches(rec storage.SketchRecord, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(rec.CenterWord), needle) ||
		strings.Contains(strings.ToLower(rec.BookName), needle) ||
		strings.Contains(fmt.Sprintf("%d:%d", rec.Chapter, rec.Verse), search)
}

func (s *catalogService) all(ctx context.Context, search string) ([]storage.SketchRecord, error) {
	records, err := s.sketches.Fetch(ctx, storage.Query{})
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to load catalog", "error", err)
		return nil, storageError(err, "failed to load catalog")
	}
	search = strings.TrimSpace(search)
	if search == "" {
		return records, nil
	}
	return slices.DeleteFunc(records, func(rec storage.SketchRecord) bool {
		return !matches(rec, search)
	}), nil
}

// ScriptureIndex returns one group per verse, sorted canonically.
func (s *catalogService) ScriptureIndex(ctx context.Context, search string) ([]VerseGroup, error) {
	records, err := s.all(ctx, search)
	if err != nil {
		return nil, err
	}

	type verseKey struct {
		order, chapter, verse int
	}
	index := make(map[verseKey]int)
	groups := []VerseGroup{}
	for _, rec := range records {
		k := verseKey{rec.BookOrder, rec.Chapter, rec.Verse}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, VerseGroup{Reference: referenceOf(rec)})
		}
		groups[i].Sketches = append(groups[i].Sketches, rec)
	}

	for i := range groups {
		slices.SortFunc(groups[i].Sketches, func(a, b storage.SketchRecord) int {
			return olderFirst(b, a)
		})
	}
	slices.SortFunc(groups, func(a, b VerseGroup) int {
		return bible.Compare(a.Reference, b.Reference)
	})
	return groups, nil
}

// WordIndex returns one group per case-insensitive word, sorted alphabetically.
func (s *catalogService) WordIndex(ctx context.Context, search string) ([]WordGroup, error) {
	records, err := s.all(ctx, search)
	if err != nil {
		return nil, err
	}

	// Records arrive oldest first, so the first one seen names the group.
	index := make(map[string]int)
	groups := []WordGroup{}
	for _, rec := range records {
		k := WordKey(rec.CenterWord)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			word := rec.CenterWord
			if k == UnknownWord {
				word = UnknownWord
			}
			groups = append(groups, WordGroup{Word: word})
		}
		groups[i].Sketches = append(groups[i].Sketches, rec)
	}

	for i := range groups {
		slices.SortFunc(groups[i].Sketches, canonicalOrder)
	}
	slices.SortFunc(groups, func(a, b WordGroup) int {
		if c := cmp.Compare(strings.ToLower(a.Word), strings.ToLower(b.Word)); c != 0 {
			return c
		}
		return cmp.Compare(a.Word, b.Word)
	})
	return groups, nil
}

// WordDetail loads every record for word and derives the master.
func (s *catalogService) WordDetail(ctx context.Context, word string) (*WordDetail, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, &ValidationError{Field: "word", Message: "cannot be empty"}
	}

	records, err := s.sketches.Fetch(ctx, storage.Query{
		Where:   storage.EqFold(storage.FieldCenterWord, word),
		OrderBy: []storage.Order{storage.Asc(storage.FieldCreationDate)},
	})
	if err != nil {
		return nil, storageError(err, "failed to load word")
	}
	if len(records) == 0 {
		return nil, WrapError(ErrNotFound, "word "+word)
	}

	// Copy the master before sorting moves records around.
	master := *ResolveMaster(records)
	slices.SortFunc(records, canonicalOrder)

	return &WordDetail{
		Word:            master.CenterWord,
		SharedDrawingID: master.SharedDrawingID,
		Master:          &master,
		References:      records,
	}, nil
}

// ExportMarkdown writes one section per word with its linked references.
func (s *catalogService) ExportMarkdown(ctx context.Context) ([]byte, error) {
	groups, err := s.WordIndex(ctx, "")
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.WriteString("# Scripture Sketch catalog\n\n")
	if len(groups) == 0 {
		b.WriteString("_No sketches yet._\n")
		return b.Bytes(), nil
	}

	for _, g := range groups {
		master := ResolveMaster(g.Sketches)
		fmt.Fprintf(&b, "## %s\n\n", g.Word)
		for _, rec := range g.Sketches {
			fmt.Fprintf(&b, "- %s", referenceOf(rec))
			switch {
			case rec.ID == master.ID:
				b.WriteString(" (artwork)")
			case rec.HasImage():
				b.WriteString(" (own drawing)")
			}
			fmt.Fprintf(&b, " _added %s_\n", rec.CreationDate.Format("Jan 2, 2006"))
		}
		b.WriteString("\n")
	}
	return b.Bytes(), nil
}
