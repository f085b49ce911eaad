package mos6502

// fetchOperand decodes the operand for mode, advancing PC past
// whatever bytes the mode consumes, and reports whether an indexed
// absolute/indirect-indexed access crossed a page boundary (the
// source of the "+1 cycle if page crossed" notes in the opcode
// table).
func (c *CPU) fetchOperand(mode uint8) (addr uint16, isAcc bool, pageCrossed bool) {
	switch mode {
	case IMPLICIT:
		return 0, false, false
	case ACCUMULATOR:
		return 0, true, false
	case IMMEDIATE:
		addr = c.PC
		c.PC++
		return addr, false, false
	case ZERO_PAGE:
		addr = uint16(c.bus.Read(c.PC))
		c.PC++
		return addr, false, false
	case ZERO_PAGE_X:
		addr = uint16(uint8(c.bus.Read(c.PC)) + c.X)
		c.PC++
		return addr, false, false
	case ZERO_PAGE_Y, ZERO_PAGE_X_BUT_Y:
		addr = uint16(uint8(c.bus.Read(c.PC)) + c.Y)
		c.PC++
		return addr, false, false
	case RELATIVE:
		offset := int8(c.bus.Read(c.PC))
		c.PC++
		addr = uint16(int32(c.PC) + int32(offset))
		return addr, false, false
	case ABSOLUTE:
		addr = c.read16(c.PC)
		c.PC += 2
		return addr, false, false
	case ABSOLUTE_X:
		base := c.read16(c.PC)
		c.PC += 2
		addr = base + uint16(c.X)
		return addr, false, (base & 0xFF00) != (addr & 0xFF00)
	case ABSOLUTE_Y:
		base := c.read16(c.PC)
		c.PC += 2
		addr = base + uint16(c.Y)
		return addr, false, (base & 0xFF00) != (addr & 0xFF00)
	case INDIRECT:
		ptr := c.read16(c.PC)
		c.PC += 2
		return c.read16Wrap(ptr), false, false
	case INDIRECT_X:
		zp := c.bus.Read(c.PC)
		c.PC++
		addr = c.zpRead16(zp + c.X)
		return addr, false, false
	case INDIRECT_Y:
		zp := c.bus.Read(c.PC)
		c.PC++
		base := c.zpRead16(zp)
		addr = base + uint16(c.Y)
		return addr, false, (base & 0xFF00) != (addr & 0xFF00)
	default:
		return 0, false, false
	}
}

// zpRead16 reads a 16-bit pointer out of the zero page, wrapping
// within page 0 rather than crossing into page 1 - the same
// boundary-wrap quirk as the JMP (indirect) bug, but here it's
// intentional hardware behavior for (d,X)/(d),Y addressing.
func (c *CPU) zpRead16(zp uint8) uint16 {
	lo := uint16(c.bus.Read(uint16(zp)))
	hi := uint16(c.bus.Read(uint16(uint8(zp + 1))))
	return hi<<8 | lo
}
