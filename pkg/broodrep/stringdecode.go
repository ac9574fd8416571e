package broodrep

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
)

// decodeCP949Field decodes a fixed-width on-disk string field as code page
// 949 (Korean), the encoding used for every textual field in the replay
// format (title, host name, map name, player name): it stops at the first
// NUL byte, discarding everything after it, and never fails: any byte
// sequence without a defined mapping decodes to the Unicode replacement
// character instead of raising an error.
//
// Decoding uses golang.org/x/text/encoding/korean's EUCKR decoder, which
// also decodes the CP949 (Unified Hangul Code) extension of EUC-KR; byte
// sequences with no mapping decode to the replacement character.
func decodeCP949Field(raw []byte) string {
	if i := indexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return decodeCP949Lossy(raw)
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

func decodeCP949Lossy(src []byte) string {
	var out strings.Builder
	dec := korean.EUCKR.NewDecoder()
	buf := make([]byte, 8)

	for len(src) > 0 {
		nDst, nSrc, err := dec.Transform(buf, src, true)
		if nDst > 0 {
			out.Write(buf[:nDst])
		}
		if nSrc == 0 {
			// No progress possible on this byte under the table; emit a
			// replacement character and skip it so decoding always
			// terminates instead of failing.
			out.WriteRune(utf8.RuneError)
			src = src[1:]
			continue
		}
		_ = err
		src = src[nSrc:]
	}
	return out.String()
}
