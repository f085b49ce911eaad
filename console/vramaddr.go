package console

// vramAddr is the PPU's 15-bit "loopy" scroll/address register. Both
// v (current VRAM address) and t (temporary address latched by
// $2005/$2006 writes) share this bit layout:
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll (5 bits)
//	||| || +++++-------- coarse Y scroll (5 bits)
//	||| ++-------------- nametable select (2 bits)
//	+++----------------- fine Y scroll (3 bits)
type vramAddr uint16

func (v vramAddr) coarseX() uint16    { return uint16(v) & 0x001F }
func (v vramAddr) coarseY() uint16    { return (uint16(v) & 0x03E0) >> 5 }
func (v vramAddr) nametable() uint16  { return (uint16(v) & 0x0C00) >> 10 }
func (v vramAddr) fineY() uint16      { return (uint16(v) & 0x7000) >> 12 }
func (v vramAddr) nametableAddr() uint16 {
	return 0x2000 | (uint16(v) & 0x0FFF)
}

func (v *vramAddr) setCoarseX(n uint16) {
	*v = vramAddr((uint16(*v) &^ 0x001F) | (n & 0x001F))
}

func (v *vramAddr) setCoarseY(n uint16) {
	*v = vramAddr((uint16(*v) &^ 0x03E0) | ((n & 0x001F) << 5))
}

func (v *vramAddr) setNametable(n uint16) {
	*v = vramAddr((uint16(*v) &^ 0x0C00) | ((n & 0x0003) << 10))
}

func (v *vramAddr) setFineY(n uint16) {
	*v = vramAddr((uint16(*v) &^ 0x7000) | ((n & 0x0007) << 12))
}

// incCoarseX implements the documented coarse-X increment, including
// the nametable-select flip when it wraps past column 31.
func (v *vramAddr) incCoarseX() {
	if v.coarseX() == 31 {
		v.setCoarseX(0)
		*v ^= 0x0400 // flip horizontal nametable bit
	} else {
		v.setCoarseX(v.coarseX() + 1)
	}
}

// incFineY implements the documented fine-Y increment: it carries
// into coarse Y, and coarse Y wraps at 30 (the last row of tiles) -
// even though 30..31 fit in the 5-bit field, row 30 is attribute
// data, not tile data, so the wrap happens one row early and flips
// the vertical nametable bit. Overflowing coarse Y past 31 without
// the dedicated wrap (e.g. via direct writes) wraps silently without
// touching the nametable bit, matching real hardware.
func (v *vramAddr) incFineY() {
	if v.fineY() < 7 {
		v.setFineY(v.fineY() + 1)
		return
	}
	v.setFineY(0)
	switch v.coarseY() {
	case 29:
		v.setCoarseY(0)
		*v ^= 0x0800 // flip vertical nametable bit
	case 31:
		v.setCoarseY(0)
	default:
		v.setCoarseY(v.coarseY() + 1)
	}
}
