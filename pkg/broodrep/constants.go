package broodrep

// Modern121OuterMagic is the 4-byte tag ("seRS") that opens a Modern121
// (SC:R 1.21+) replay. Stored on disk as the little-endian bytes of
// 0x53526573.
var Modern121OuterMagic = []byte("seRS")

// LegacyMagicHint is the historical "reRS" sentinel noted in the format's
// own documentation as appearing in the first 4 bytes of Legacy-format
// replays. detectVariant checks it as a fast path before falling back to
// the codec probe (see variant.go).
var LegacyMagicHint = []byte("reRS")

const (
	// headerSize is the fixed decompressed size, in bytes, of the game
	// header record.
	headerSize = 633

	// playerRecordSize is the size, in bytes, of one player slot record.
	playerRecordSize = 36

	// playerCount is the fixed number of player slots in the player table.
	playerCount = 12

	// playerTableSize is the total size, in bytes, of the player table.
	playerTableSize = playerCount * playerRecordSize

	// playerTableOffset is the byte offset of the player table within the
	// headerSize-byte header section. The named header fields occupy
	// offsets 0..97; the table sits at 0xa1 and runs to 593, with the
	// remaining tail reserved.
	playerTableOffset = 0xa1

	// mapDataLengthRecordSize is the size, in bytes, of the second ordered
	// section: a player-count byte and a map-data length.
	mapDataLengthRecordSize = 4

	// maxSaneBlockCount bounds the block-count field read from untrusted
	// input before any blocks are read, so a hostile count cannot force a
	// large up-front allocation.
	maxSaneBlockCount = 16384

	// customSectionIDShieldBattery is the custom section id under which
	// the ShieldBattery platform-extension section is stored.
	customSectionIDShieldBattery uint32 = 1

	// shieldBatteryLengthV0 is the decompressed length of the older
	// ShieldBattery section layout (no game_logic_version field).
	shieldBatteryLengthV0 = 0x54
	// shieldBatteryLengthV1 is the decompressed length of the newer
	// ShieldBattery section layout (trailing game_logic_version field).
	shieldBatteryLengthV1 = 0x58
)

// legacyDictSizes maps a legacy codec dict_size_code to the corresponding
// sliding-window size in bytes.
var legacyDictSizes = map[uint8]int{
	4: 1024,
	5: 2048,
	6: 4096,
}

// endOfStreamLength is the conventional length-table decode value that
// signals end-of-stream in the legacy codec.
const endOfStreamLength = 519
