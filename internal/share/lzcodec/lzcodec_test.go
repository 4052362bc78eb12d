package lzcodec

import (
	"net/url"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	c := New()

	inputs := []string{
		`{"t":"T","c":"<b>Hi</b>","d":"2024-01-01T00:00:00Z"}`,
		"",
		"plain text with unicode: héllo wörld ✓",
		strings.Repeat("repetitive content ", 500),
	}
	for _, in := range inputs {
		enc, err := c.Compress(in)
		if err != nil {
			t.Fatalf("compress %q: %v", in, err)
		}
		out, err := c.Decompress(enc)
		if err != nil {
			t.Fatalf("decompress: %v", err)
		}
		if out != in {
			t.Fatalf("round trip mismatch: got %q want %q", out, in)
		}
	}
}

func TestCompress_OutputIsURLSafe(t *testing.T) {
	c := New()
	enc, err := c.Compress(strings.Repeat(`{"k":"v+/= &?"}`, 100))
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	if url.QueryEscape(enc) != enc {
		t.Fatalf("encoded output requires escaping: %q", enc)
	}
}

func TestCompress_ShrinksRepetitiveText(t *testing.T) {
	c := New()
	in := strings.Repeat("the same sentence over and over. ", 100)
	enc, err := c.Compress(in)
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	if len(enc) >= len(in) {
		t.Fatalf("expected compression win, got %d -> %d", len(in), len(enc))
	}
}

func TestDecompress_MalformedInput(t *testing.T) {
	c := New()
	for _, in := range []string{"!!!not base64!!!", "AAAA", "deadbeef"} {
		if _, err := c.Decompress(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
