package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"scripturesketch/internal/bible"
	"scripturesketch/internal/contextutil"
	"scripturesketch/internal/service"
)

// CatalogHandler handles the read-only browsing and export endpoints.
type CatalogHandler struct {
	catalog  service.CatalogService
	parser   goldmark.Markdown
	template *template.Template
}

type exportPageData struct {
	Title   string
	Content template.HTML
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	tmpl := template.Must(template.New("export").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 900px;
      line-height: 1.7;
    }
    h2 {
      border-bottom: 1px solid #ddd;
      padding-bottom: 0.25rem;
    }
    em {
      color: #777;
      font-size: 0.9rem;
    }
  </style>
</head>
<body>
  <article>{{.Content}}</article>
</body>
</html>`))

	return &CatalogHandler{
		catalog: catalog,
		parser: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		template: tmpl,
	}
}

// VerseGroupResponse is one Scripture Mode row.
//
// swagger:model VerseGroupResponse
type VerseGroupResponse struct {
	Reference string           `json:"reference"`
	BookName  string           `json:"book_name"`
	Chapter   int              `json:"chapter"`
	Verse     int              `json:"verse"`
	Count     int              `json:"count"`
	Sketches  []SketchResponse `json:"sketches"`
}

// WordGroupResponse is one Word Mode row.
//
// swagger:model WordGroupResponse
type WordGroupResponse struct {
	Word     string           `json:"word"`
	Count    int              `json:"count"`
	Sketches []SketchResponse `json:"sketches"`
}

// WordDetailResponse is the album for one word.
//
// swagger:model WordDetailResponse
type WordDetailResponse struct {
	Word            string           `json:"word"`
	SharedDrawingID *string          `json:"shared_drawing_id,omitempty"`
	Master          SketchResponse   `json:"master"`
	References      []SketchResponse `json:"references"`
}

// Books handles GET /api/books.
func (h *CatalogHandler) Books(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, bible.Books())
}

// Verses handles GET /api/verses?q=.
func (h *CatalogHandler) Verses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	groups, err := h.catalog.ScriptureIndex(ctx, r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load verses")
		return
	}

	resp := make([]VerseGroupResponse, len(groups))
	for i, g := range groups {
		resp[i] = VerseGroupResponse{
			Reference: g.Reference.String(),
			BookName:  g.Reference.Book,
			Chapter:   g.Reference.Chapter,
			Verse:     g.Reference.Verse,
			Count:     len(g.Sketches),
			Sketches:  toSketchResponses(g.Sketches),
		}
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// Words handles GET /api/words?q=.
func (h *CatalogHandler) Words(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	groups, err := h.catalog.WordIndex(ctx, r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load words")
		return
	}

	resp := make([]WordGroupResponse, len(groups))
	for i, g := range groups {
		resp[i] = WordGroupResponse{
			Word:     g.Word,
			Count:    len(g.Sketches),
			Sketches: toSketchResponses(g.Sketches),
		}
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// Word handles GET /api/words/{word}.
func (h *CatalogHandler) Word(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	word, err := url.PathUnescape(chi.URLParam(r, "word"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid word")
		return
	}

	detail, err := h.catalog.WordDetail(ctx, word)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load word")
		return
	}

	resp := WordDetailResponse{
		Word:       detail.Word,
		Master:     toSketchResponse(*detail.Master),
		References: toSketchResponses(detail.References),
	}
	if detail.SharedDrawingID.Valid {
		id := detail.SharedDrawingID.UUID.String()
		resp.SharedDrawingID = &id
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// Export handles GET /export?format=markdown|html.
func (h *CatalogHandler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "markdown"
	}
	if format != "markdown" && format != "html" {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unknown export format %q", format))
		return
	}

	md, err := h.catalog.ExportMarkdown(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to export catalog")
		return
	}

	if format == "markdown" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(md); err != nil {
			logger.ErrorContext(ctx, "failed to write export", "error", err)
		}
		return
	}

	var buf bytes.Buffer
	if err := h.parser.Convert(md, &buf); err != nil {
		logger.ErrorContext(ctx, "failed to render markdown", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render export")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, exportPageData{
		Title:   "Scripture Sketch catalog",
		Content: template.HTML(buf.String()),
	}); err != nil {
		logger.ErrorContext(ctx, "failed to execute export template", "error", err)
	}
}
