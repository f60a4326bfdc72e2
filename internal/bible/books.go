package bible

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBook is returned when a book name is not one of the 66 canonical books.
	ErrUnknownBook = errors.New("unknown book")
	// ErrChapterOutOfRange is returned when a chapter does not exist in the book.
	ErrChapterOutOfRange = errors.New("chapter out of range")
	// ErrVerseOutOfRange is returned when a verse number cannot exist.
	ErrVerseOutOfRange = errors.New("verse out of range")
)

// MaxVerse is the largest verse number of any chapter (Psalm 119).
const MaxVerse = 176

// Book is one entry of the canonical Protestant canon.
type Book struct {
	Order        int    `json:"order"` // Canonical order (1-66)
	Name         string `json:"name"`
	ChapterCount int    `json:"chapter_count"`
}

// NewTestament reports whether the book belongs to the New Testament.
func (b Book) NewTestament() bool {
	return b.Order >= 40
}

var books = []Book{
	// Old Testament
	{1, "Genesis", 50},
	{2, "Exodus", 40},
	{3, "Leviticus", 27},
	{4, "Numbers", 36},
	{5, "Deuteronomy", 34},
	{6, "Joshua", 24},
	{7, "Judges", 21},
	{8, "Ruth", 4},
	{9, "1 Samuel", 31},
	{10, "2 Samuel", 24},
	{11, "1 Kings", 22},
	{12, "2 Kings", 25},
	{13, "1 Chronicles", 29},
	{14, "2 Chronicles", 36},
	{15, "Ezra", 10},
	{16, "Nehemiah", 13},
	{17, "Esther", 10},
	{18, "Job", 42},
	{19, "Psalms", 150},
	{20, "Proverbs", 31},
	{21, "Ecclesiastes", 12},
	{22, "Song of Solomon", 8},
	{23, "Isaiah", 66},
	{24, "Jeremiah", 52},
	{25, "Lamentations", 5},
	{26, "Ezekiel", 48},
	{27, "Daniel", 12},
	{28, "Hosea", 14},
	{29, "Joel", 3},
	{30, "Amos", 9},
	{31, "Obadiah", 1},
	{32, "Jonah", 4},
	{33, "Micah", 7},
	{34, "Nahum", 3},
	{35, "Habakkuk", 3},
	{36, "Zephaniah", 3},
	{37, "Haggai", 2},
	{38, "Zechariah", 14},
	{39, "Malachi", 4},

	// New Testament
	{40, "Matthew", 28},
	{41, "Mark", 16},
	{42, "Luke", 24},
	{43, "John", 21},
	{44, "Acts", 28},
	{45, "Romans", 16},
	{46, "1 Corinthians", 16},
	{47, "2 Corinthians", 13},
	{48, "Galatians", 6},
	{49, "Ephesians", 6},
	{50, "Philippians", 4},
	{51, "Colossians", 4},
	{52, "1 Thessalonians", 5},
	{53, "2 Thessalonians", 3},
	{54, "1 Timothy", 6},
	{55, "2 Timothy", 4},
	{56, "Titus", 3},
	{57, "Philemon", 1},
	{58, "Hebrews", 13},
	{59, "James", 5},
	{60, "1 Peter", 5},
	{61, "2 Peter", 3},
	{62, "1 John", 5},
	{63, "2 John", 1},
	{64, "3 John", 1},
	{65, "Jude", 1},
	{66, "Revelation", 22},
}

var byName = func() map[string]Book {
	m := make(map[string]Book, len(books))
	for _, b := range books {
		m[b.Name] = b
	}
	return m
}()

// Books returns a copy of the canonical table in canonical order.
func Books() []Book {
	out := make([]Book, len(books))
	copy(out, books)
	return out
}

// Lookup returns the book with the exact canonical name.
func Lookup(name string) (Book, bool) {
	b, ok := byName[name]
	return b, ok
}

// Validate checks a (book, chapter, verse) triple against the canonical table
// and returns the matching book.
func Validate(name string, chapter, verse int) (Book, error) {
	b, ok := Lookup(name)
	if !ok {
		return Book{}, fmt.Errorf("%w: %q", ErrUnknownBook, name)
	}
	if chapter < 1 || chapter > b.ChapterCount {
		return Book{}, fmt.Errorf("%w: %s has %d chapters, got %d", ErrChapterOutOfRange, b.Name, b.ChapterCount, chapter)
	}
	if verse < 1 || verse > MaxVerse {
		return Book{}, fmt.Errorf("%w: %d", ErrVerseOutOfRange, verse)
	}
	return b, nil
}
