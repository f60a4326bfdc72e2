package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"scripturesketch/internal/contextutil"
	"scripturesketch/internal/service"
	"scripturesketch/internal/storage"
)

// ErrorResponse represents an error response.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// SketchResponse is the JSON form of a sketch. Artwork bytes are served by
// the image endpoint, not inlined.
//
// swagger:model SketchResponse
type SketchResponse struct {
	ID              string    `json:"id"`
	CreationDate    time.Time `json:"creation_date"`
	Reference       string    `json:"reference"`
	BookName        string    `json:"book_name"`
	BookOrder       int       `json:"book_order"`
	Chapter         int       `json:"chapter"`
	Verse           int       `json:"verse"`
	CenterWord      string    `json:"center_word"`
	TextPosition    string    `json:"text_position"`
	SharedDrawingID *string   `json:"shared_drawing_id,omitempty"`
	HasDrawing      bool      `json:"has_drawing"`
	HasImage        bool      `json:"has_image"`
	HasDarkImage    bool      `json:"has_dark_image"`
}

func toSketchResponse(rec storage.SketchRecord) SketchResponse {
	resp := SketchResponse{
		ID:           rec.ID.String(),
		CreationDate: rec.CreationDate,
		Reference:    fmt.Sprintf("%s %d:%d", rec.BookName, rec.Chapter, rec.Verse),
		BookName:     rec.BookName,
		BookOrder:    rec.BookOrder,
		Chapter:      rec.Chapter,
		Verse:        rec.Verse,
		CenterWord:   rec.CenterWord,
		TextPosition: string(rec.TextPosition),
		HasDrawing:   len(rec.DrawingData) > 0,
		HasImage:     rec.HasImage(),
		HasDarkImage: rec.HasDarkImage(),
	}
	if rec.SharedDrawingID.Valid {
		id := rec.SharedDrawingID.UUID.String()
		resp.SharedDrawingID = &id
	}
	return resp
}

func toSketchResponses(records []storage.SketchRecord) []SketchResponse {
	out := make([]SketchResponse, len(records))
	for i, rec := range records {
		out[i] = toSketchResponse(rec)
	}
	return out
}

// parseID parses a UUID path parameter, writing a 400 on failure.
func parseID(w http.ResponseWriter, raw, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid %s", name))
		return uuid.Nil, false
	}
	return id, true
}

// writeJSON encodes v with the given status code.
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// handleServiceError maps service errors to appropriate HTTP status codes and responses.
func handleServiceError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		logger.WarnContext(ctx, "request rejected", "error", err)
		if errors.Is(err, service.ErrInvalidReference) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid scripture reference: %s", validationErr.Message))
			return
		}
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error()))
		return
	}

	// Check for wrapped errors
	if errors.Is(err, service.ErrInvalidReference) {
		writeError(w, http.StatusBadRequest, "Invalid scripture reference")
		return
	}

	if errors.Is(err, service.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Resource not found")
		return
	}

	logger.ErrorContext(ctx, "service error", "error", err)

	if errors.Is(err, service.ErrStorageFailure) {
		writeError(w, http.StatusInternalServerError, defaultMsg+": the catalog could not be saved or read, please try again")
		return
	}

	// Default to internal server error
	writeError(w, http.StatusInternalServerError, defaultMsg)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}
