package broodrep

import "github.com/google/uuid"

// ShieldBatteryData is the decoded platform-extension section written by
// the ShieldBattery matchmaking client. Two historical
// on-disk layouts are distinguished purely by length.
type ShieldBatteryData struct {
	starcraftExeBuild    uint32
	shieldBatteryVersion string
	teamGameMainPlayers  [4]uint8
	startingRaces        [12]uint8
	gameID               uuid.UUID
	userIDs              [8]uint32
	gameLogicVersion     uint32
	hasGameLogicVersion  bool
}

// StarcraftExeBuild is the build number of the StarCraft executable used
// to play the game.
func (d ShieldBatteryData) StarcraftExeBuild() uint32 { return d.starcraftExeBuild }

// ShieldBatteryVersion is the version string of the ShieldBattery client
// used to play the game.
func (d ShieldBatteryData) ShieldBatteryVersion() string { return d.shieldBatteryVersion }

// TeamGameMainPlayers identifies which players were the "main" players in
// a team game (e.g. Team Melee).
func (d ShieldBatteryData) TeamGameMainPlayers() [4]uint8 { return d.teamGameMainPlayers }

// StartingRaces gives the pre-randomization race of each of the 12 slots.
func (d ShieldBatteryData) StartingRaces() [12]uint8 { return d.startingRaces }

// GameID is the game's ShieldBattery id, a canonical UUID.
func (d ShieldBatteryData) GameID() uuid.UUID { return d.gameID }

// UserIDs are the ShieldBattery user ids of the players in-game, in the
// same order as the replay header's player table.
func (d ShieldBatteryData) UserIDs() [8]uint32 { return d.userIDs }

// GameLogicVersion returns the ShieldBattery game-logic-modification
// version used to play the game, and whether one was present at all (it
// is only recorded in the newer, 88-byte section layout).
func (d ShieldBatteryData) GameLogicVersion() (uint32, bool) {
	return d.gameLogicVersion, d.hasGameLogicVersion
}

// decodeShieldBattery decodes a ShieldBattery platform-extension section.
func decodeShieldBattery(data []byte) (ShieldBatteryData, error) {
	switch len(data) {
	case shieldBatteryLengthV0, shieldBatteryLengthV1:
		// both recognized lengths, fall through to decode below
	default:
		return ShieldBatteryData{}, newErr(InvalidSection,
			"shieldbattery section has unrecognized length")
	}

	r := newByteReader(data)
	var d ShieldBatteryData

	build, err := r.u32()
	if err != nil {
		return ShieldBatteryData{}, err
	}
	d.starcraftExeBuild = build

	versionBytes, err := r.bytes(16)
	if err != nil {
		return ShieldBatteryData{}, err
	}
	d.shieldBatteryVersion = nulTerminatedASCII(versionBytes)

	mainPlayers, err := r.bytes(4)
	if err != nil {
		return ShieldBatteryData{}, err
	}
	copy(d.teamGameMainPlayers[:], mainPlayers)

	races, err := r.bytes(12)
	if err != nil {
		return ShieldBatteryData{}, err
	}
	copy(d.startingRaces[:], races)

	gameIDBytes, err := r.bytes(16)
	if err != nil {
		return ShieldBatteryData{}, err
	}
	gameID, err := uuid.FromBytes(gameIDBytes)
	if err != nil {
		return ShieldBatteryData{}, newErr(InvalidSection, "shieldbattery game_id is not a valid uuid")
	}
	d.gameID = gameID

	for i := range d.userIDs {
		v, err := r.u32()
		if err != nil {
			return ShieldBatteryData{}, err
		}
		d.userIDs[i] = v
	}

	if len(data) == shieldBatteryLengthV1 {
		v, err := r.u32()
		if err != nil {
			return ShieldBatteryData{}, err
		}
		d.gameLogicVersion = v
		d.hasGameLogicVersion = true
	}

	return d, nil
}

// nulTerminatedASCII decodes b as ASCII, stopping at the first NUL byte.
func nulTerminatedASCII(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
