package share

import (
	"encoding/json"
	"net"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/globalnotes/notes-workspace/internal/model"
)

const (
	// MaxURLLen is the share-URL budget. A version-40 QR code at Low error
	// correction holds ~2953 bytes; 2900 leaves headroom.
	MaxURLLen = 2900

	// TruncateContentAt is the aggressive cut applied by the last cascade
	// tier so the encoded URL fits a QR code.
	TruncateContentAt = 1500

	// TruncationNotice is appended to truncated content so the reader can
	// tell the shared copy is partial.
	TruncationNotice = "\n\n[...Note truncated for QR Code. Use Copy Link for full version...]"
)

var (
	markupPattern   = regexp.MustCompile(`<[^>]*>?`)
	blankRunPattern = regexp.MustCompile(`\n\s*\n`)
)

// StripMarkup converts HTML-bearing rich text to plain text: tag spans become
// newlines and runs of blank lines collapse. Used by compact mode, where it
// shrinks the payload substantially.
func StripMarkup(s string) string {
	s = markupPattern.ReplaceAllString(s, "\n")
	s = blankRunPattern.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// Mode labels which cascade tier produced a share URL.
type Mode string

const (
	ModeFull      Mode = "full"
	ModeCompact   Mode = "compact"
	ModeTruncated Mode = "truncated"
)

// Result is the outcome of the encode cascade. OverBudget means the URL
// still exceeds MaxURLLen after every fallback tier; callers must skip QR
// rendering and offer copy-link only.
type Result struct {
	URL        string `json:"url"`
	Mode       Mode   `json:"mode"`
	Truncated  bool   `json:"truncated"`
	Compressed bool   `json:"compressed"`
	OverBudget bool   `json:"overBudget"`
}

// Encoder assembles bounded-length share URLs for notes. The zero value is
// not usable; fill Origin at least. A nil Compressor degrades to plain
// percent-encoding.
type Encoder struct {
	Compressor Compressor
	Origin     string // scheme://host[:port]
	Path       string // app path, usually "/"
	Company    string // branding parameter for non-compact links
}

// Encode runs the full capacity cascade for one note and returns the final
// URL with its provenance. Same inputs produce the same URL; the timestamp
// comes from the note, not the clock, unless the note has none.
func (e *Encoder) Encode(note model.Note, username, customHost string, compact bool) Result {
	res := Result{Mode: ModeFull}
	if compact {
		res.Mode = ModeCompact
	}

	u, compressed := e.build(note, username, customHost, compact)
	res.Compressed = compressed

	// Tier 1: force compact mode when the full link blows the budget.
	if len(u) > MaxURLLen && !compact {
		log.Warn().Int("length", len(u)).Msg("Share link too long, switching to compact mode")
		compact = true
		res.Mode = ModeCompact
		u, compressed = e.build(note, username, customHost, true)
		res.Compressed = compressed
	}

	// Tier 2: lossy last resort — truncate the content and flag it.
	if len(u) > MaxURLLen {
		log.Warn().Int("length", len(u)).Msg("Share link still too long, truncating content")
		truncated := note
		if len(truncated.Content) > TruncateContentAt {
			truncated.Content = cutAtRuneBoundary(truncated.Content, TruncateContentAt) + TruncationNotice
		}
		res.Mode = ModeTruncated
		res.Truncated = true
		u, compressed = e.build(truncated, username, customHost, true)
		res.Compressed = compressed
	}

	res.URL = u
	res.OverBudget = len(u) > MaxURLLen
	return res
}

// BuildPayload produces the minimal wire object for a note. Compact mode
// strips markup; a missing updatedAt falls back to the current time.
func BuildPayload(note model.Note, compact bool) model.SharePayload {
	content := note.Content
	if compact {
		content = StripMarkup(content)
	}
	date := note.UpdatedAt
	if date == "" {
		date = time.Now().UTC().Format(time.RFC3339)
	}
	return model.SharePayload{Title: note.Title, Content: content, Date: date}
}

// build serializes, compresses and assembles one candidate URL. The second
// return reports whether the payload is compression-encoded.
func (e *Encoder) build(note model.Note, username, customHost string, compact bool) (string, bool) {
	payload := BuildPayload(note, compact)

	raw, err := json.Marshal(payload)
	if err != nil {
		// cannot happen for this payload shape, but keep the cascade total
		log.Error().Err(err).Msg("Failed to serialize share payload")
		raw = []byte("{}")
	}

	var encoded string
	compressed := false
	if e.Compressor != nil {
		if encoded, err = e.Compressor.Compress(string(raw)); err == nil {
			compressed = true
		}
	}
	if !compressed {
		log.Warn().Msg("Compressor unavailable, falling back to percent-encoding")
		encoded = url.QueryEscape(string(raw))
	}

	base := e.baseURL(customHost)

	params := url.Values{}
	// Metadata rides along only outside compact mode; compact drops it all
	// to save space.
	if !compact {
		if username != "" {
			params.Set("user", username)
		}
		title := note.Title
		if title == "" {
			title = "Untitled"
		}
		params.Set("title", title)
		params.Set("company", e.Company)
	}
	params.Set("share_data", encoded)
	if compressed {
		params.Set("compressed", "true")
	} else {
		params.Set("compressed", "false")
	}

	return base + "?" + params.Encode(), compressed
}

// baseURL resolves origin+path, with the hostname optionally overridden by a
// user-supplied custom host for local-network sharing. An unparseable origin
// is used as-is.
func (e *Encoder) baseURL(customHost string) string {
	base := strings.TrimSuffix(e.Origin, "/") + e.Path
	if customHost == "" {
		return strings.TrimSuffix(base, "/")
	}
	u, err := url.Parse(base)
	if err != nil {
		log.Error().Err(err).Str("host", customHost).Msg("Invalid share origin, ignoring custom host")
		return strings.TrimSuffix(base, "/")
	}
	if port := u.Port(); port != "" {
		u.Host = net.JoinHostPort(customHost, port)
	} else {
		u.Host = customHost
	}
	return strings.TrimSuffix(u.String(), "/")
}

// cutAtRuneBoundary slices s to at most n bytes without splitting a rune.
func cutAtRuneBoundary(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
