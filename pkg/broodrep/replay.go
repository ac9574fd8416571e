// Package broodrep parses StarCraft: Brood War replay files (.rep) across
// all three historical on-disk layouts: the original format predating patch
// 1.18 ("Legacy"), the format introduced at 1.18 ("Modern118"), and the
// SC:R 1.21+ container format ("Modern121").
//
// The package is a pure binary decoder: it consumes an in-memory byte
// buffer and returns a fully materialized, immutable Replay. It performs no
// I/O of its own and is safe for concurrent use across independent calls to
// Parse.
//
// Basic usage:
//
//	data, err := os.ReadFile("game.rep")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	replay, err := broodrep.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Map: %s\n", replay.Header().MapName)
//	for _, p := range replay.Players() {
//	    fmt.Printf("  %s (%s)\n", p.Name, p.Race)
//	}
package broodrep

// version is the library's own version string, reported by Version for
// diagnostics only; it has no bearing on the replay format itself.
const version = "0.1.0"

// Version returns the library's version string.
func Version() string {
	return version
}

// Replay is the fully decoded, immutable result of a successful Parse. It
// owns all of its decompressed section bytes and decoded records; nothing
// it returns holds a reference back into the caller's input buffer.
type Replay struct {
	variant      ReplayVariant
	header       Header
	slots        [playerCount]Player
	headerRegion []byte
	mapData      []byte
	commands     []byte
	custom       map[uint32][]byte
}

// Parse decodes a replay from data, which is read but never retained or
// mutated. Options override the defaults returned by DefaultConfig for the
// decompression guard.
func Parse(data []byte, opts ...Option) (*Replay, error) {
	cfg := resolveConfig(opts)

	variant, body, err := detectVariant(data, cfg)
	if err != nil {
		return nil, err
	}

	var codec codecFunc
	switch variant {
	case Legacy, Modern121:
		codec = explodeDecompress
	case Modern118:
		codec = zlibDecompress
	default:
		return nil, newErr(UnknownFormat, "unrecognized replay variant")
	}

	secs, err := walkSections(body, codec, cfg)
	if err != nil {
		return nil, err
	}

	return &Replay{
		variant:      variant,
		header:       secs.header,
		slots:        secs.slots,
		headerRegion: secs.headerRegion,
		mapData:      secs.mapData,
		commands:     secs.commands,
		custom:       secs.custom,
	}, nil
}

// Format reports which on-disk variant this replay was parsed as.
func (r *Replay) Format() ReplayVariant {
	return r.variant
}

// Header returns the decoded game header record.
func (r *Replay) Header() Header {
	return r.header
}

// Slots returns all 12 player-table slots in order, including empty ones.
func (r *Replay) Slots() [playerCount]Player {
	return r.slots
}

// Players returns the active, non-observer slots, in slot order.
func (r *Replay) Players() []Player {
	return players(r.slots)
}

// Observers returns the non-empty observer slots, in slot order.
func (r *Replay) Observers() []Player {
	return observers(r.slots)
}

// HostPlayer returns the unique slot whose name matches the header's
// recorded host name. It reports false if zero or more than one slot
// matches.
func (r *Replay) HostPlayer() (Player, bool) {
	return hostPlayer(r.header, r.slots)
}

// RawSection returns the decompressed bytes of one of the known ordered
// sections. SectionHeader and SectionPlayerNames both return regions within
// the single physical section the format stores them in: the player table
// is embedded inside the 633-byte header section rather than framed
// separately on disk. SectionChat always reports absent, since this decoder
// does not separate chat messages out of the raw command stream (see
// SectionTag).
func (r *Replay) RawSection(tag SectionTag) ([]byte, bool) {
	switch tag {
	case SectionHeader:
		return r.headerRegion, true
	case SectionPlayerNames:
		if len(r.headerRegion) < playerTableOffset+playerTableSize {
			return nil, false
		}
		return r.headerRegion[playerTableOffset : playerTableOffset+playerTableSize], true
	case SectionMapData:
		return r.mapData, true
	case SectionCommands:
		return r.commands, true
	default:
		return nil, false
	}
}

// RawCustomSection returns the raw decompressed bytes of a custom section
// by its numeric id, if one was present.
func (r *Replay) RawCustomSection(id uint32) ([]byte, bool) {
	b, ok := r.custom[id]
	return b, ok
}

// ShieldBattery decodes and returns the ShieldBattery platform-extension
// section, if one was present among the replay's custom sections.
func (r *Replay) ShieldBattery() (ShieldBatteryData, bool) {
	raw, ok := r.custom[customSectionIDShieldBattery]
	if !ok {
		return ShieldBatteryData{}, false
	}
	d, err := decodeShieldBattery(raw)
	if err != nil {
		return ShieldBatteryData{}, false
	}
	return d, true
}
