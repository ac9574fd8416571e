package broodrep

// Legacy codec: an implementation of the PKWARE Data Compression Library
// "Implode" algorithm, the same bit-oriented literal +
// length/distance scheme used by .mpq archives and documented by Mark
// Adler's blast.c. The three prefix-code tables below are fixed constants
// of the format, not learned from the compressed stream; init builds
// canonical Huffman decode tables from them once, via construct.

const maxPrefixBits = 13 // longest prefix code in any of the three tables

type huffmanTable struct {
	count  []int16 // count[l] = number of symbols of length l
	symbol []int16 // symbols in canonical order
}

// construct builds a canonical Huffman decode table from a list of
// run-length-compacted code lengths: each byte in rep packs a repeat count
// (high nibble + 1) and a code length (low nibble).
func construct(rep []byte, nsymbols int) *huffmanTable {
	length := make([]int16, 0, nsymbols)
	for _, b := range rep {
		count := int(b>>4) + 1
		codeLen := int16(b & 0x0f)
		for i := 0; i < count; i++ {
			length = append(length, codeLen)
		}
	}

	h := &huffmanTable{
		count:  make([]int16, maxPrefixBits+1),
		symbol: make([]int16, len(length)),
	}
	for _, l := range length {
		h.count[l]++
	}

	var offs [maxPrefixBits + 2]int16
	for l := 1; l <= maxPrefixBits; l++ {
		offs[l+1] = offs[l] + h.count[l]
	}
	for sym, l := range length {
		if l != 0 {
			h.symbol[offs[l]] = int16(sym)
			offs[l]++
		}
	}
	return h
}

// literalBitLength, lengthBitLength, and distanceBitLength are the fixed,
// run-length-compacted code lengths for the three prefix tables, taken from
// the canonical PKWARE DCL description (each byte: high nibble = repeat
// count - 1, low nibble = code length).
var (
	literalBitLength = []byte{
		11, 124, 8, 7, 28, 7, 188, 13, 76, 4, 10, 8, 12, 10, 12, 10, 8, 23, 8,
		9, 7, 6, 7, 8, 7, 6, 55, 8, 23, 24, 12, 11, 7, 9, 11, 12, 6, 7, 22, 5,
		7, 24, 6, 11, 9, 6, 7, 22, 7, 11, 38, 7, 9, 8, 25, 11, 8, 11, 9, 12,
		8, 12, 5, 38, 5, 38, 5, 11, 7, 5, 6, 21, 6, 10, 53, 8, 7, 24, 10, 27,
		44, 253, 253, 253, 252, 252, 252, 13, 12, 45, 12, 45, 12, 61, 12, 45,
		44, 173,
	}
	lengthBitLength   = []byte{2, 35, 36, 53, 38, 23}
	distanceBitLength = []byte{2, 20, 53, 230, 247, 151, 248}

	// lengthBase and lengthExtra give, per length-code symbol (0..15), the
	// base copy length and the number of little-endian extra bits to add
	// to it. Symbol 15 with all-ones extra bits yields the 519 end-of-
	// stream sentinel (264 + 255).
	lengthBase  = [16]int{3, 2, 4, 5, 6, 7, 8, 9, 10, 12, 16, 24, 40, 72, 136, 264}
	lengthExtra = [16]uint{0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8}
)

var (
	literalTable  *huffmanTable
	lengthTable   *huffmanTable
	distanceTable *huffmanTable
)

func init() {
	literalTable = construct(literalBitLength, 256)
	lengthTable = construct(lengthBitLength, 16)
	distanceTable = construct(distanceBitLength, 64)
}

// decodeSymbol decodes one prefix-coded symbol from r using h, following
// the canonical left-justified Huffman walk: accumulate one bit at a time,
// comparing the running code against the first code of each length until a
// length whose range contains it is found.
func decodeSymbol(r *bitReader, h *huffmanTable) (int16, error) {
	code := 0
	first := 0
	index := 0
	length := uint(1)
	nextLen := 1

	for {
		bit, err := r.bits(1)
		if err != nil {
			return 0, err
		}
		code |= int(bit^1) & 1
		count := int(h.count[nextLen])
		nextLen++
		if code < first+count {
			return h.symbol[index+(code-first)], nil
		}
		index += count
		first += count
		first <<= 1
		code <<= 1
		length++
		if length > maxPrefixBits {
			return 0, newErr(InvalidCode, "no prefix table entry matched")
		}
	}
}

// explodePrelude is the decoded 2-byte PKWARE DCL stream header.
type explodePrelude struct {
	asciiLiterals bool
	dictSizeCode  uint8
	// distExtraBits is the number of extra low distance bits read for
	// copy tokens of length > 2, which (per the canonical DCL algorithm)
	// is the raw dict_size_code value itself (4, 5, or 6), not the
	// sliding-window byte size it separately denotes.
	distExtraBits uint
}

func readExplodePrelude(r *bitReader) (explodePrelude, error) {
	literalMode, err := r.bits(8)
	if err != nil {
		return explodePrelude{}, err
	}
	if literalMode > 1 {
		return explodePrelude{}, newErr(InvalidHeader, "literal_mode must be 0 or 1")
	}
	dictSizeCode, err := r.bits(8)
	if err != nil {
		return explodePrelude{}, err
	}
	if _, ok := legacyDictSizes[uint8(dictSizeCode)]; !ok {
		return explodePrelude{}, newErr(InvalidHeader, "dict_size_code must be 4, 5, or 6")
	}
	return explodePrelude{
		asciiLiterals: literalMode == 1,
		dictSizeCode:  uint8(dictSizeCode),
		distExtraBits: uint(dictSizeCode),
	}, nil
}

// explodeDecompress decodes a PKWARE DCL ("Implode") compressed stream,
// writing produced bytes into sink (which enforces the decompression guard
// at token granularity) until the end-of-stream sentinel is decoded, which
// returns nil. Running out of input returns UnexpectedEOF; readBlocks, which
// knows the section's claimed size, accepts that as success on a section's
// final block when the produced length already equals the claimed size.
func explodeDecompress(data []byte, sink *guardedSink) error {
	r := newBitReader(data)

	prelude, err := readExplodePrelude(r)
	if err != nil {
		return err
	}

	for {
		flag, err := r.bits(1)
		if err != nil {
			return err
		}

		if flag == 0 {
			var b byte
			if prelude.asciiLiterals {
				sym, err := decodeSymbol(r, literalTable)
				if err != nil {
					return err
				}
				b = byte(sym)
			} else {
				raw, err := r.bits(8)
				if err != nil {
					return err
				}
				b = byte(raw)
			}
			if err := sink.writeByte(b); err != nil {
				return err
			}
			continue
		}

		lenSym, err := decodeSymbol(r, lengthTable)
		if err != nil {
			return err
		}
		length := lengthBase[lenSym]
		if extra := lengthExtra[lenSym]; extra > 0 {
			bits, err := r.bits(extra)
			if err != nil {
				return err
			}
			length += int(bits)
		}
		if length == endOfStreamLength {
			return nil
		}

		var distExtraBits uint
		if length == 2 {
			distExtraBits = 2
		} else {
			distExtraBits = prelude.distExtraBits
		}

		distSym, err := decodeSymbol(r, distanceTable)
		if err != nil {
			return err
		}
		distBits, err := r.bits(distExtraBits)
		if err != nil {
			return err
		}
		distance := (int(distSym)<<distExtraBits | int(distBits)) + 1

		if distance > len(sink.out) || distance <= 0 {
			return newErr(BadDistance, "back-reference precedes start of output")
		}
		if err := sink.copyFrom(distance, length); err != nil {
			return err
		}
	}
}
