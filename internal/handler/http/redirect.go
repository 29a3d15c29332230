package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/cleservice/storefront-resolver/pkg/httputil"

	"github.com/cleservice/storefront-resolver/internal/event"
	"github.com/cleservice/storefront-resolver/internal/redirect"
)

// RedirectHandler serves the static redirect table.
type RedirectHandler struct {
	table    *redirect.Table
	producer *event.Producer
	logger   *slog.Logger
}

// NewRedirectHandler creates a new redirect HTTP handler.
func NewRedirectHandler(table *redirect.Table, producer *event.Producer, logger *slog.Logger) *RedirectHandler {
	return &RedirectHandler{
		table:    table,
		producer: producer,
		logger:   logger,
	}
}

// LookupResponse is the JSON response for a redirect table lookup.
type LookupResponse struct {
	SourcePath     string `json:"source_path"`
	DestinationURL string `json:"destination_url"`
}

// Lookup handles GET /api/v1/redirects/lookup?path=
func (h *RedirectHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_PARAMETER", Message: "path query parameter is required"},
		})
		return
	}

	dest, ok := h.table.Resolve(path)
	if !ok {
		httputil.WriteJSON(w, http.StatusNotFound, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "NOT_FOUND", Message: "no redirect registered for path"},
		})
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: LookupResponse{SourcePath: path, DestinationURL: dest},
	})
}

// Legacy handles GET /r/* and issues a permanent redirect for registered
// legacy order URLs. Table entries are stored percent-encoded, so the path
// is taken from EscapedPath rather than the decoded wildcard.
func (h *RedirectHandler) Legacy(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.EscapedPath(), "/r")
	if r.URL.RawQuery != "" {
		path += "?" + r.URL.RawQuery
	}

	dest, ok := h.table.Resolve(path)
	if !ok {
		httputil.WriteJSON(w, http.StatusNotFound, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "NOT_FOUND", Message: "no redirect registered for path"},
		})
		return
	}

	h.publishRedirectHit(r, path, dest)

	http.Redirect(w, r, dest, http.StatusMovedPermanently)
}

func (h *RedirectHandler) publishRedirectHit(r *http.Request, path, dest string) {
	if h.producer == nil {
		return
	}
	err := h.producer.PublishRedirectHit(r.Context(), event.RedirectHitData{
		SourcePath:     path,
		DestinationURL: dest,
	})
	if err != nil {
		h.logger.WarnContext(r.Context(), "publish redirect.hit failed",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
	}
}
