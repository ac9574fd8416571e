package broodrep

import (
	"encoding/binary"
	"testing"

	"github.com/google/uuid"
)

func buildShieldBatteryBytes(t *testing.T, withLogicVersion bool) []byte {
	t.Helper()
	size := shieldBatteryLengthV0
	if withLogicVersion {
		size = shieldBatteryLengthV1
	}
	b := make([]byte, size)

	binary.LittleEndian.PutUint32(b[0:4], 12345) // starcraft_exe_build
	copy(b[4:20], "1.0.0")                       // shieldbattery_version
	copy(b[20:24], []byte{0, 1, 2, 3})           // team_game_main_players
	copy(b[24:36], []byte{0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2}) // starting_races

	id := uuid.MustParse("11223344-5566-7788-99aa-bbccddeeff00")
	copy(b[36:52], id[:])

	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint32(b[52+i*4:56+i*4], uint32(i+1))
	}

	if withLogicVersion {
		binary.LittleEndian.PutUint32(b[84:88], 42)
	}
	return b
}

func TestDecodeShieldBattery_V0NoLogicVersion(t *testing.T) {
	b := buildShieldBatteryBytes(t, false)
	d, err := decodeShieldBattery(b)
	if err != nil {
		t.Fatalf("decodeShieldBattery: %v", err)
	}
	if d.StarcraftExeBuild() != 12345 {
		t.Errorf("StarcraftExeBuild = %d", d.StarcraftExeBuild())
	}
	if d.ShieldBatteryVersion() != "1.0.0" {
		t.Errorf("ShieldBatteryVersion = %q", d.ShieldBatteryVersion())
	}
	if _, ok := d.GameLogicVersion(); ok {
		t.Errorf("expected no game_logic_version in the 84-byte layout")
	}
	if d.UserIDs()[7] != 8 {
		t.Errorf("UserIDs()[7] = %d, want 8", d.UserIDs()[7])
	}
}

func TestDecodeShieldBattery_V1WithLogicVersion(t *testing.T) {
	b := buildShieldBatteryBytes(t, true)
	d, err := decodeShieldBattery(b)
	if err != nil {
		t.Fatalf("decodeShieldBattery: %v", err)
	}
	v, ok := d.GameLogicVersion()
	if !ok || v != 42 {
		t.Errorf("GameLogicVersion = %d, %v, want 42, true", v, ok)
	}
}

func TestDecodeShieldBattery_InvalidLength(t *testing.T) {
	for _, n := range []int{80, 92} {
		_, err := decodeShieldBattery(make([]byte, n))
		assertDecodeErrKind(t, err, InvalidSection)
	}
}

func TestDecodeShieldBattery_GameID(t *testing.T) {
	b := buildShieldBatteryBytes(t, false)
	d, err := decodeShieldBattery(b)
	if err != nil {
		t.Fatalf("decodeShieldBattery: %v", err)
	}
	want := uuid.MustParse("11223344-5566-7788-99aa-bbccddeeff00")
	if d.GameID() != want {
		t.Errorf("GameID() = %s, want %s", d.GameID(), want)
	}
}
