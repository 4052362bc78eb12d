package http

import (
	"errors"
	"fmt"
	"html"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/globalnotes/notes-workspace/internal/api/respond"
	"github.com/globalnotes/notes-workspace/internal/share"
	"github.com/globalnotes/notes-workspace/internal/share/render"
)

// PageHandler serves the root path: either the app shell or, when the URL
// carries a share payload, the rendered shared-note page. Opening a share
// link never touches the persistence layer.
type PageHandler struct {
	compressor share.Compressor
	company    string
}

func NewPageHandler(c share.Compressor, company string) *PageHandler {
	return &PageHandler{compressor: c, company: company}
}

// Root GET /
func (h *PageHandler) Root(w http.ResponseWriter, r *http.Request) {
	payload, sharedBy, err := share.DecodeQuery(r.URL.Query(), h.compressor)
	if err != nil {
		// a failed share link falls back to the normal app, with a notice
		switch {
		case errors.Is(err, share.ErrCompressorUnavailable):
			log.Error().Err(err).Msg("Cannot open shared note, compressor unavailable")
			respond.WriteHTML(w, http.StatusServiceUnavailable,
				h.appShellWithNotice("Cannot open this shared note: the decompression component is unavailable."))
		default:
			log.Warn().Err(err).Msg("Rejected corrupted share link")
			respond.WriteHTML(w, http.StatusBadRequest,
				h.appShellWithNotice("This share link appears to be corrupted or incomplete. Ask the sender for a fresh link."))
		}
		return
	}
	if payload == nil {
		respond.WriteHTML(w, http.StatusOK, h.appShellWithNotice(""))
		return
	}

	body, rerr := render.SharedNote(*payload, sharedBy, h.company)
	if rerr != nil {
		log.Error().Err(rerr).Msg("Failed to render shared note")
		respond.WriteInternalError(w, "failed to render shared note")
		return
	}
	respond.WriteHTML(w, http.StatusOK, body)
}

func (h *PageHandler) appShellWithNotice(notice string) string {
	banner := ""
	if notice != "" {
		banner = fmt.Sprintf(`<div class="notice" role="alert">%s</div>`, html.EscapeString(notice))
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>%s</title></head>
<body>%s<h1>%s</h1><p>Open the app client or use the API under /api.</p></body>
</html>`, html.EscapeString(h.company), banner, html.EscapeString(h.company))
}
