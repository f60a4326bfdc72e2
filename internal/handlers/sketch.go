package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"scripturesketch/internal/contextutil"
	"scripturesketch/internal/service"
	"scripturesketch/internal/storage"
)

// SketchHandler handles HTTP requests that create, redraw, link and delete sketches.
type SketchHandler struct {
	artwork service.ArtworkService
}

// NewSketchHandler creates a new SketchHandler.
func NewSketchHandler(artwork service.ArtworkService) *SketchHandler {
	return &SketchHandler{artwork: artwork}
}

// CreateSketchRequest represents the HTTP request payload for a new drawing.
// Binary fields are base64 encoded.
//
// swagger:model CreateSketchRequest
type CreateSketchRequest struct {
	BookName      string `json:"book_name"`
	Chapter       int    `json:"chapter"`
	Verse         int    `json:"verse"`
	CenterWord    string `json:"center_word"`
	TextPosition  string `json:"text_position,omitempty"`
	DrawingData   []byte `json:"drawing_data,omitempty"`
	ImageData     []byte `json:"image_data"`
	ImageDataDark []byte `json:"image_data_dark,omitempty"`
}

// ArtworkRequest represents the HTTP request payload for a redraw.
//
// swagger:model ArtworkRequest
type ArtworkRequest struct {
	DrawingData   []byte `json:"drawing_data,omitempty"`
	ImageData     []byte `json:"image_data"`
	ImageDataDark []byte `json:"image_data_dark,omitempty"`
}

// LinkReferenceRequest represents the HTTP request payload for linking a verse to an artwork group.
//
// swagger:model LinkReferenceRequest
type LinkReferenceRequest struct {
	Word         string `json:"word,omitempty"`
	BookName     string `json:"book_name"`
	Chapter      int    `json:"chapter"`
	Verse        int    `json:"verse"`
	TextPosition string `json:"text_position,omitempty"`
}

// DeleteResponse represents the outcome of a delete request.
//
// swagger:model DeleteResponse
type DeleteResponse struct {
	Deleted              bool    `json:"deleted"`
	ConfirmationRequired bool    `json:"confirmation_required,omitempty"`
	TransferredTo        *string `json:"transferred_to,omitempty"`
	Message              string  `json:"message,omitempty"`
}

// Create handles POST /api/sketches.
func (h *SketchHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req CreateSketchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.artwork.CreateSketch(ctx, service.NewSketch{
		BookName:      req.BookName,
		Chapter:       req.Chapter,
		Verse:         req.Verse,
		CenterWord:    req.CenterWord,
		TextPosition:  storage.TextPosition(req.TextPosition),
		DrawingData:   req.DrawingData,
		ImageData:     req.ImageData,
		ImageDataDark: req.ImageDataDark,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to save sketch")
		return
	}

	writeJSON(ctx, w, http.StatusCreated, toSketchResponse(*rec))
}

// UpdateArtwork handles PUT /api/sketches/{id}/artwork.
func (h *SketchHandler) UpdateArtwork(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id, ok := parseID(w, chi.URLParam(r, "id"), "sketch id")
	if !ok {
		return
	}

	var req ArtworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.artwork.UpdateArtwork(ctx, id, service.Artwork{
		DrawingData:   req.DrawingData,
		ImageData:     req.ImageData,
		ImageDataDark: req.ImageDataDark,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to save artwork")
		return
	}

	writeJSON(ctx, w, http.StatusOK, toSketchResponse(*rec))
}

// LinkReference handles POST /api/groups/{groupID}/references.
func (h *SketchHandler) LinkReference(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	groupID, ok := parseID(w, chi.URLParam(r, "groupID"), "group id")
	if !ok {
		return
	}

	var req LinkReferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.artwork.LinkReference(ctx, service.LinkRequest{
		Word:            req.Word,
		SharedDrawingID: groupID,
		BookName:        req.BookName,
		Chapter:         req.Chapter,
		Verse:           req.Verse,
		TextPosition:    storage.TextPosition(req.TextPosition),
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to link reference")
		return
	}

	writeJSON(ctx, w, http.StatusCreated, toSketchResponse(*rec))
}

// Delete handles DELETE /api/sketches/{id}. Deleting the last member of a
// group answers 409 until the request carries confirm=true.
func (h *SketchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(w, chi.URLParam(r, "id"), "sketch id")
	if !ok {
		return
	}

	confirmed := false
	if raw := r.URL.Query().Get("confirm"); raw != "" {
		var err error
		if confirmed, err = strconv.ParseBool(raw); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid confirm parameter")
			return
		}
	}

	res, err := h.artwork.DeleteSketch(ctx, id, confirmed)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to delete sketch")
		return
	}

	if res.ConfirmationRequired {
		writeJSON(ctx, w, http.StatusConflict, DeleteResponse{
			ConfirmationRequired: true,
			Message:              "This is the last copy of the artwork. Repeat the request with confirm=true to delete it.",
		})
		return
	}

	resp := DeleteResponse{Deleted: res.Deleted}
	if res.TransferredTo.Valid {
		to := res.TransferredTo.UUID.String()
		resp.TransferredTo = &to
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// Image handles GET /api/sketches/{id}/image?variant=light|dark and writes
// the PNG snapshot the record displays.
func (h *SketchHandler) Image(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id, ok := parseID(w, chi.URLParam(r, "id"), "sketch id")
	if !ok {
		return
	}

	variant, err := service.ParseVariant(r.URL.Query().Get("variant"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load image")
		return
	}

	img, err := h.artwork.DisplayImage(ctx, id, variant)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load image")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(img)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(img); err != nil {
		logger.ErrorContext(ctx, "failed to write image", "id", id, "error", err)
	}
}
