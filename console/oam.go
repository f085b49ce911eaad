package console

// sprite is a typed view over one 4-byte entry of the PPU's 256-byte
// OAM, which is otherwise kept as a flat byte array (matching how the
// hardware and OAMDMA actually address it).
type sprite struct {
	y       uint8
	tileID  uint8
	palette uint8
	behind  bool // priority: true = behind background
	flipH   bool
	flipV   bool
	x       uint8
}

func spriteFromBytes(b []uint8) sprite {
	return sprite{
		y:       b[0],
		tileID:  b[1],
		palette: b[2] & 0x03,
		behind:  b[2]&0x20 != 0,
		flipH:   b[2]&0x40 != 0,
		flipV:   b[2]&0x80 != 0,
		x:       b[3],
	}
}
