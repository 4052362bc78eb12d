package share

import "errors"

var (
	// ErrCompressorUnavailable is the capability-missing condition: the link
	// says compressed but no decompressor is wired. Distinct from corruption
	// so the user sees "library missing", not "bad link".
	ErrCompressorUnavailable = errors.New("share link is compressed but no decompressor is available")

	// ErrCorruptLink covers every data-level decode failure: bad base64,
	// failed decompression, invalid percent-encoding, malformed JSON.
	ErrCorruptLink = errors.New("share link is corrupted or incomplete")
)
