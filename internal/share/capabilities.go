package share

// Compressor is the URL-safe text-compression capability the encoder and
// decoder depend on. Implementations must be self-inverse and produce output
// that is safe to embed in a query parameter without further escaping.
// A nil Compressor is a legal degraded state: the encoder falls back to plain
// percent-encoding and the decoder refuses compressed payloads with a
// distinct capability-missing error.
type Compressor interface {
	Compress(s string) (string, error)
	Decompress(s string) (string, error)
}

// QRRenderer renders a final share URL as a scannable code. Implementations
// own the capacity check; the encoder only reports whether the URL fits.
type QRRenderer interface {
	Render(text string) ([]byte, error)
}
