package broodrep

// decodeHeader decodes the named fields of the fixed headerSize-byte header
// section:
//
//	0   engine           u8
//	1   frames           u32
//	5   start_time       u32
//	9   title            [28]byte (CP949, NUL-terminated)
//	37  map_width        u16
//	39  map_height       u16
//	41  available_slots  u8
//	42  speed            u8
//	43  game_type        u16
//	45  game_sub_type    u16
//	47  host_name        [24]byte (CP949, NUL-terminated)
//	71  map_name         [26]byte (CP949, NUL-terminated)
//
// The 12-slot player table occupies playerTableOffset..playerTableOffset+
// playerTableSize within the same region and is decoded separately by
// decodePlayerTable; all other bytes up to headerSize are reserved.
func decodeHeader(data []byte) (Header, error) {
	if len(data) != headerSize {
		return Header{}, newErr(InvalidSection, "header record has unexpected length")
	}

	r := newByteReader(data)
	var h Header

	engine, err := r.u8()
	if err != nil {
		return Header{}, err
	}
	h.Engine = Engine(engine)

	if h.Frames, err = r.u32(); err != nil {
		return Header{}, err
	}
	if h.StartTime, err = r.u32(); err != nil {
		return Header{}, err
	}

	title, err := r.bytes(28)
	if err != nil {
		return Header{}, err
	}
	h.Title = decodeCP949Field(title)

	if h.MapWidth, err = r.u16(); err != nil {
		return Header{}, err
	}
	if h.MapHeight, err = r.u16(); err != nil {
		return Header{}, err
	}

	slots, err := r.u8()
	if err != nil {
		return Header{}, err
	}
	h.AvailableSlots = slots

	speed, err := r.u8()
	if err != nil {
		return Header{}, err
	}
	h.Speed = Speed(speed)

	gameType, err := r.u16()
	if err != nil {
		return Header{}, err
	}
	h.GameType = GameType(gameType)

	if h.GameSubType, err = r.u16(); err != nil {
		return Header{}, err
	}

	hostName, err := r.bytes(24)
	if err != nil {
		return Header{}, err
	}
	h.HostName = decodeCP949Field(hostName)

	mapName, err := r.bytes(26)
	if err != nil {
		return Header{}, err
	}
	h.MapName = decodeCP949Field(mapName)

	return h, nil
}
