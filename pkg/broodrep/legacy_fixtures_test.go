package broodrep

import (
	"encoding/binary"
	"testing"
)

// packLiteralExplode encodes payload as a PKWARE DCL ("explode") stream
// using only literal tokens in binary (uncompressed) literal mode: no
// Huffman-coded length/distance tokens and no end-of-stream sentinel are
// emitted. The stream simply runs out of input once the last literal byte
// is produced, which is the fallback success path that readBlocks
// recognizes on a section's final block. dictCode must be 4, 5, or 6.
func packLiteralExplode(dictCode byte, payload []byte) []byte {
	var bitbuf uint64
	var bitcnt uint
	var out []byte

	push := func(v uint32, n uint) {
		bitbuf |= uint64(v) << bitcnt
		bitcnt += n
		for bitcnt >= 8 {
			out = append(out, byte(bitbuf&0xff))
			bitbuf >>= 8
			bitcnt -= 8
		}
	}

	push(0, 8)                // literal_mode = 0 (binary/uncompressed literals)
	push(uint32(dictCode), 8) // dict_size_code
	for _, b := range payload {
		push(0, 1)         // flag bit: literal token
		push(uint32(b), 8) // raw literal byte
	}
	if bitcnt > 0 {
		out = append(out, byte(bitbuf&0xff)) // trailing partial byte, zero-padded
	}
	return out
}

// buildLegacyReplayBody builds a full Legacy-framed replay body (component
// G's ordered section sequence, no custom sections): the 633-byte header
// section with the 12-slot player table embedded in it, then the 4-byte
// map-data-length record, the map-data region, and the command stream,
// each section its own single-block explode-literal stream.
func buildLegacyReplayBody(t *testing.T, mapData, commands []byte) []byte {
	t.Helper()

	headerRegion := buildHeaderRegion(t, buildPlayerTable(t,
		buildPlayerRecord(0, 1, PlayerTypeHuman, RaceTerran, 0, "alice"),
		buildPlayerRecord(1, 2, PlayerTypeHuman, RaceZerg, 1, "host-player"),
		buildPlayerRecord(2, 128, PlayerTypeObserver, RaceRandom, 0, "watcher"),
	))

	var body []byte
	body = appendBlockSection(body, uint32(len(headerRegion)), [][]byte{packLiteralExplode(4, headerRegion)})

	record := make([]byte, mapDataLengthRecordSize)
	record[0] = 3
	binary.LittleEndian.PutUint16(record[2:4], uint16(len(mapData)))
	body = appendBlockSection(body, uint32(len(record)), [][]byte{packLiteralExplode(4, record)})

	body = appendBlockSection(body, uint32(len(mapData)), [][]byte{packLiteralExplode(4, mapData)})
	body = appendBlockSection(body, uint32(len(commands)), [][]byte{packLiteralExplode(4, commands)})

	return body
}

func TestParse_LegacyRoundTrip(t *testing.T) {
	mapData := []byte("fake CHK bytes for the legacy variant")
	commands := []byte("fake legacy command stream bytes")
	body := buildLegacyReplayBody(t, mapData, commands)

	r, err := Parse(body)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if r.Format() != Legacy {
		t.Fatalf("Format() = %v, want Legacy", r.Format())
	}
	if r.Header().Title != "Test Game Title" {
		t.Fatalf("Header().Title = %q", r.Header().Title)
	}
	if r.Header().MapName != "Fighting Spirit" {
		t.Fatalf("Header().MapName = %q", r.Header().MapName)
	}

	players := r.Players()
	if len(players) != 2 {
		t.Fatalf("Players() = %d, want 2", len(players))
	}
	host, ok := r.HostPlayer()
	if !ok || host.Name != "host-player" {
		t.Fatalf("HostPlayer() = %+v, %v", host, ok)
	}

	gotMapData, ok := r.RawSection(SectionMapData)
	if !ok || string(gotMapData) != string(mapData) {
		t.Fatalf("RawSection(SectionMapData) = %q, %v", gotMapData, ok)
	}
	gotCommands, ok := r.RawSection(SectionCommands)
	if !ok || string(gotCommands) != string(commands) {
		t.Fatalf("RawSection(SectionCommands) = %q, %v", gotCommands, ok)
	}
}

func TestParse_Modern121RoundTrip(t *testing.T) {
	body := buildLegacyReplayBody(t, []byte("modern121 map bytes"), []byte("modern121 command bytes"))

	var data []byte
	data = append(data, Modern121OuterMagic...)
	sizeBuf := make([]byte, 4)
	binary.LittleEndian.PutUint32(sizeBuf, uint32(len(body)))
	data = append(data, sizeBuf...)
	data = append(data, mustZlibCompress(t, body)...)

	r, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if r.Format() != Modern121 {
		t.Fatalf("Format() = %v, want Modern121", r.Format())
	}
	if r.Header().Title != "Test Game Title" {
		t.Fatalf("Header().Title = %q", r.Header().Title)
	}
}

func TestDetectVariant_Modern121InnerBytesClassifyAsLegacy(t *testing.T) {
	// Stripping the outer seRS container and looking at
	// the inner bytes directly must classify them as Legacy on their own.
	body := buildLegacyReplayBody(t, []byte("map"), []byte("cmds"))

	variant, _, err := detectVariant(body, DefaultConfig())
	if err != nil {
		t.Fatalf("detectVariant on inner bytes: %v", err)
	}
	if variant != Legacy {
		t.Fatalf("inner bytes classified as %v, want Legacy", variant)
	}
}
