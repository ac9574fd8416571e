package broodrep

import (
	"bytes"
	"compress/zlib"
	"testing"
)

func mustZlibCompress(t *testing.T, raw []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(raw); err != nil {
		t.Fatalf("zlib write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zlib close: %v", err)
	}
	return buf.Bytes()
}

func TestZlibDecompress_RoundTrip(t *testing.T) {
	raw := []byte("the quick brown fox jumps over the lazy dog, repeatedly, repeatedly")
	compressed := mustZlibCompress(t, raw)

	cfg := DefaultConfig()
	sink := newGuardedSink(newGuard(cfg), 0)
	if err := zlibDecompress(compressed, sink); err != nil {
		t.Fatalf("zlibDecompress: %v", err)
	}
	if string(sink.out) != string(raw) {
		t.Fatalf("got %q, want %q", sink.out, raw)
	}
}

func TestZlibDecompress_InvalidStream(t *testing.T) {
	cfg := DefaultConfig()
	sink := newGuardedSink(newGuard(cfg), 0)
	err := zlibDecompress([]byte{0x00, 0x01, 0x02}, sink)
	assertDecodeErrKind(t, err, CodecError)
}
