package broodrep

// decodePlayerTable decodes the fixed playerCount-slot player table, which
// is embedded at playerTableOffset inside the header section. Each record is
// playerRecordSize bytes:
//
//	0   slot_id      i16
//	2   network_id   u32
//	6   player_type  u8
//	7   race         u8
//	8   team         u8
//	9   name         [25]byte (CP949, NUL-terminated)
//	34  reserved     [2]byte, ignored
func decodePlayerTable(data []byte) ([playerCount]Player, error) {
	var out [playerCount]Player

	if len(data) != playerTableSize {
		return out, newErr(InvalidSection, "player table has unexpected length")
	}

	for i := 0; i < playerCount; i++ {
		r := newByteReader(data[i*playerRecordSize : (i+1)*playerRecordSize])
		var p Player

		slotID, err := r.i16()
		if err != nil {
			return out, err
		}
		p.SlotID = slotID

		if p.NetworkID, err = r.u32(); err != nil {
			return out, err
		}

		playerType, err := r.u8()
		if err != nil {
			return out, err
		}
		p.PlayerType = PlayerType(playerType)

		race, err := r.u8()
		if err != nil {
			return out, err
		}
		p.Race = Race(race)

		team, err := r.u8()
		if err != nil {
			return out, err
		}
		p.Team = team

		name, err := r.bytes(25)
		if err != nil {
			return out, err
		}
		p.Name = decodeCP949Field(name)

		out[i] = p
	}

	return out, nil
}

// players returns the non-empty, non-observer slots from a full slot table,
// in slot order.
func players(slots [playerCount]Player) []Player {
	var out []Player
	for _, p := range slots {
		if p.IsEmpty() || p.IsObserver() {
			continue
		}
		out = append(out, p)
	}
	return out
}

// observers returns the non-empty observer slots from a full slot table, in
// slot order.
func observers(slots [playerCount]Player) []Player {
	var out []Player
	for _, p := range slots {
		if p.IsEmpty() || !p.IsObserver() {
			continue
		}
		out = append(out, p)
	}
	return out
}

// hostPlayer looks up the slot whose name matches the header's recorded
// host_name, by exact (case-sensitive, already NUL-trimmed) string
// comparison. A match is reported only when exactly one slot matches; an
// absent or ambiguous host is reported as not-found rather than guessed at.
func hostPlayer(h Header, slots [playerCount]Player) (Player, bool) {
	if h.HostName == "" {
		return Player{}, false
	}

	var found Player
	count := 0
	for _, p := range slots {
		if p.IsEmpty() {
			continue
		}
		if p.Name == h.HostName {
			found = p
			count++
		}
	}
	if count != 1 {
		return Player{}, false
	}
	return found, true
}
