package bible

import (
	"cmp"
	"fmt"
)

// Reference is a single verse position in canonical order.
type Reference struct {
	Book      string `json:"book"`
	BookOrder int    `json:"book_order"`
	Chapter   int    `json:"chapter"`
	Verse     int    `json:"verse"`
}

// String formats the reference as "Book chapter:verse".
func (r Reference) String() string {
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
}

// Compare orders references by book order, then chapter, then verse.
func Compare(a, b Reference) int {
	if c := cmp.Compare(a.BookOrder, b.BookOrder); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Chapter, b.Chapter); c != 0 {
		return c
	}
	return cmp.Compare(a.Verse, b.Verse)
}
