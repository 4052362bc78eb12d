package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/globalnotes/notes-workspace/internal/api/respond"
	"github.com/globalnotes/notes-workspace/internal/model"
	"github.com/globalnotes/notes-workspace/internal/share"
	"github.com/globalnotes/notes-workspace/internal/share/qr"
)

// ShareHandler provides HTTP transport for share-link generation and QR
// rendering.
type ShareHandler struct {
	encoder  *share.Encoder
	renderer share.QRRenderer
}

func NewShareHandler(enc *share.Encoder, renderer share.QRRenderer) *ShareHandler {
	return &ShareHandler{encoder: enc, renderer: renderer}
}

// CreateLink POST /api/share
// Runs the encode cascade for a note and reports the result plus whether a
// QR code can be rendered for it.
func (h *ShareHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Note       model.Note `json:"note"`
		User       string     `json:"user,omitempty"`
		CustomHost string     `json:"customHost,omitempty"`
		Compact    bool       `json:"compact,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if req.Note.Title == "" && req.Note.Content == "" {
		respond.WriteBadRequest(w, "note has no content to share")
		return
	}

	res := h.encoder.Encode(req.Note, req.User, req.CustomHost, req.Compact)
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"url":         res.URL,
		"mode":        res.Mode,
		"truncated":   res.Truncated,
		"compressed":  res.Compressed,
		"overBudget":  res.OverBudget,
		"qrAvailable": !res.OverBudget && h.renderer != nil,
	})
}

// RenderQR GET /api/share/qr?text=...
// Renders the given share URL as a PNG. Text beyond QR capacity is rejected;
// the client falls back to copy-link.
func (h *ShareHandler) RenderQR(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if text == "" {
		respond.WriteBadRequest(w, "text parameter is required")
		return
	}
	if h.renderer == nil {
		respond.WriteError(w, http.StatusServiceUnavailable, "QR rendering is not available")
		return
	}
	png, err := h.renderer.Render(text)
	if err != nil {
		if errors.Is(err, qr.ErrTooLong) {
			respond.WriteError(w, http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WritePNG(w, png)
}
