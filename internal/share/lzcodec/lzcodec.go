// Package lzcodec implements the share.Compressor capability with DEFLATE
// and URL-safe base64, giving a compact self-inverse transform that can ride
// in a query parameter untouched.
package lzcodec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// Codec compresses with DEFLATE at best compression; share payloads are tiny
// and encode latency is irrelevant next to URL length.
type Codec struct {
	level int
}

func New() *Codec {
	return &Codec{level: flate.BestCompression}
}

// Compress deflates s and encodes it with unpadded URL-safe base64.
func (c *Codec) Compress(s string) (string, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, c.level)
	if err != nil {
		return "", fmt.Errorf("init deflate: %w", err)
	}
	if _, err := w.Write([]byte(s)); err != nil {
		return "", fmt.Errorf("deflate: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("flush deflate: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// Decompress reverses Compress. Any malformed input yields an error, never a
// panic; the caller classifies it as link corruption.
func (c *Codec) Decompress(s string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}
	r := flate.NewReader(bytes.NewReader(raw))
	defer func() { _ = r.Close() }()
	out, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("inflate: %w", err)
	}
	return string(out), nil
}
