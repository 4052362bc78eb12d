package share

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/globalnotes/notes-workspace/internal/model"
)

// Decode reverses the share encoding: decompression (or percent-decoding)
// followed by JSON parsing. It distinguishes the capability-missing condition
// (ErrCompressorUnavailable) from every data-level failure (ErrCorruptLink)
// and never panics on hostile input.
func Decode(shareData string, compressed bool, c Compressor) (*model.SharePayload, error) {
	if shareData == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrCorruptLink)
	}

	var jsonStr string
	if compressed {
		if c == nil {
			return nil, ErrCompressorUnavailable
		}
		s, err := c.Decompress(shareData)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptLink, err)
		}
		if s == "" {
			return nil, fmt.Errorf("%w: decompression returned nothing", ErrCorruptLink)
		}
		jsonStr = s
	} else {
		s, err := url.QueryUnescape(shareData)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptLink, err)
		}
		jsonStr = s
	}

	var payload model.SharePayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptLink, err)
	}
	return &payload, nil
}

// DecodeQuery is the page-load entry point: it inspects already-parsed query
// parameters for the payload marker and decodes when present. A nil payload
// with nil error means the URL carries no shared note at all.
func DecodeQuery(query url.Values, c Compressor) (*model.SharePayload, string, error) {
	raw := query.Get("share_data")
	if raw == "" {
		return nil, "", nil
	}
	compressed := query.Get("compressed") == "true"
	payload, err := Decode(raw, compressed, c)
	if err != nil {
		return nil, "", err
	}
	return payload, query.Get("user"), nil
}
