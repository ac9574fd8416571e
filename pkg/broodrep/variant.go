package broodrep

import (
	"bytes"
	"errors"
)

// detectVariant classifies the buffer and returns the variant
// tag along with the byte slice the section walker should read from: for
// Legacy and Modern118 this is data itself (the walker reads sections
// starting at offset 0); for Modern121 this is the inner, already-unwrapped
// Legacy-framed byte stream.
func detectVariant(data []byte, cfg Config) (ReplayVariant, []byte, error) {
	// A buffer too short to even hold the variant magic is an EOF, not a
	// classification failure: there isn't enough data yet to say the
	// format is unrecognized, only that it ran out.
	if len(data) < 4 {
		return 0, nil, newErr(UnexpectedEOF, "buffer too short to read the variant magic")
	}

	if bytes.Equal(data[:4], Modern121OuterMagic) {
		return detectModern121(data, cfg)
	}
	if bytes.Equal(data[:4], LegacyMagicHint) {
		return Legacy, data, nil
	}

	if len(data) < 8 {
		return 0, nil, newErr(UnknownFormat, "buffer too short to classify")
	}

	if probeLegacy(data, cfg) {
		return Legacy, data, nil
	}
	return Modern118, data, nil
}

func detectModern121(data []byte, cfg Config) (ReplayVariant, []byte, error) {
	r := newByteReader(data)
	if err := r.skip(4); err != nil {
		return 0, nil, err
	}
	claimed, err := r.u32()
	if err != nil {
		return 0, nil, err
	}
	outer, err := r.bytes(r.remaining())
	if err != nil {
		return 0, nil, err
	}

	g := newGuard(cfg)
	sink := newGuardedSink(g, sinkCapacityHint(claimed, cfg))
	if err := g.addConsumed(len(outer)); err != nil {
		return 0, nil, err
	}
	if err := zlibDecompress(outer, sink); err != nil {
		return 0, nil, err
	}
	if uint64(len(sink.out)) != uint64(claimed) {
		return 0, nil, newErr(SizeMismatch, "modern121 outer block produced unexpected length")
	}

	inner := sink.out
	innerVariant, _, err := detectVariant(inner, cfg)
	if err != nil {
		return 0, nil, err
	}
	if innerVariant != Legacy {
		return 0, nil, newErr(UnknownFormat, "modern121 inner stream did not classify as legacy")
	}
	return Modern121, inner, nil
}

// probeLegacy disambiguates Legacy from Modern118: read the candidate
// (claimed_size, block_count) header and the first block, then attempt the
// legacy codec on it. A clean InvalidHeader or InvalidCode failure means the
// first block's bytes are not a legacy stream (almost certainly a zlib
// header instead), so classification falls back to Modern118. Any other
// outcome, including success, is treated as Legacy; the real decode in the
// section walker will surface a precise error if the guess was wrong.
func probeLegacy(data []byte, cfg Config) bool {
	r := newByteReader(data)

	claimed, err := r.u32()
	if err != nil {
		return false
	}
	blockCount, err := r.u32()
	if err != nil {
		return false
	}
	if blockCount == 0 || blockCount > maxSaneBlockCount {
		return false
	}
	if uint64(claimed) > cfg.MaxDecompressedSize {
		return false
	}

	blockSize, err := r.u32()
	if err != nil {
		return false
	}
	block, err := r.bytes(int(blockSize))
	if err != nil {
		return false
	}

	g := newGuard(cfg)
	sink := newGuardedSink(g, sinkCapacityHint(claimed, cfg))
	if err := g.addConsumed(len(block)); err != nil {
		return false
	}

	err = explodeDecompress(block, sink)
	if err == nil {
		return true
	}
	var de *DecodeError
	if errors.As(err, &de) {
		switch de.Kind {
		case InvalidHeader, InvalidCode:
			return false
		}
	}
	return true
}
