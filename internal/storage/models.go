package storage

import (
	"time"

	"github.com/google/uuid"
)

// TextPosition controls where the center word is drawn relative to the artwork.
type TextPosition string

const (
	// TextBelow places the word under the drawing.
	TextBelow TextPosition = "below"
	// TextTop places the word over the drawing.
	TextTop TextPosition = "top"
)

// Valid reports whether p is a known text position.
func (p TextPosition) Valid() bool {
	return p == TextBelow || p == TextTop
}

// SketchRecord is one catalog entry: a keyword icon tied to a verse reference.
// Records sharing a SharedDrawingID depict the same artwork; only the
// artwork owner carries DrawingData and ImageData.
type SketchRecord struct {
	ID              uuid.UUID     // Assigned at creation, immutable
	CreationDate    time.Time     // Assigned at creation, immutable
	BookName        string        // One of the 66 canonical book names
	Chapter         int           // 1-based
	Verse           int           // 1-based
	BookOrder       int           // Canonical book order (1-66)
	CenterWord      string        // Grouping key, compared case-insensitively
	TextPosition    TextPosition  // Presentation only
	DrawingData     []byte        // Serialized freehand input, nil for linked records
	ImageData       []byte        // Light raster snapshot, nil for linked records
	ImageDataDark   []byte        // Dark raster snapshot, nil for linked records
	SharedDrawingID uuid.NullUUID // Group identifier, invalid for legacy records
}

// HasImage reports whether the record owns a light raster snapshot.
func (r SketchRecord) HasImage() bool {
	return len(r.ImageData) > 0
}

// HasDarkImage reports whether the record owns a dark raster snapshot.
func (r SketchRecord) HasDarkImage() bool {
	return len(r.ImageDataDark) > 0
}
