// Package mappers implements the cartridge address-bus logic that
// sits between the CPU/PPU buses and the raw PRG/CHR banks of an
// nesrom.ROM: bank switching, CHR RAM vs ROM, mirroring, and (for
// MMC3) the scanline IRQ counter.
package mappers

import (
	"fmt"

	"github.com/bdwalton/nesgo/nesrom"
)

// IRQLine is the level-sensitive interrupt input a mapper drives.
// mos6502.CPU implements it by maintaining a small signed counter so
// that multiple asserting sources (here, just the mapper) compose
// correctly even though only one source exists today.
type IRQLine interface {
	AssertIRQ()
	DeassertIRQ()
}

// Mapper is a single owned cartridge value exposing two narrow views:
// the CPU-facing PRG window ($4020-$FFFF) and the PPU-facing CHR
// window ($0000-$1FFF). Both views reach the same underlying bank
// registers directly -- there is no split ownership to reconcile.
type Mapper interface {
	// Mirroring reports how the PPU address bus should mirror
	// nametable writes across the console's 2KiB of VRAM.
	Mirroring() nesrom.Mirroring

	// CPURead/CPUWrite serve $4020-$FFFF: PRG-RAM and the PRG ROM
	// banking windows. Addresses below $4020 never reach the mapper.
	CPURead(addr uint16) uint8
	CPUWrite(addr uint16, val uint8)

	// PPURead/PPUWrite serve $0000-$1FFF: the CHR ROM/RAM banking
	// windows. Nametable and palette addresses never reach the mapper.
	PPURead(addr uint16) uint8
	PPUWrite(addr uint16, val uint8)

	// NotifyA12 is called on every PPU VRAM address bus transition so
	// mappers that derive a scanline IRQ from the CHR address line A12
	// (MMC3) can detect rising edges. Mappers that don't care (NROM)
	// ignore it.
	NotifyA12(addr uint16)

	// SetIRQLine hands the mapper the line it should assert/deassert
	// its IRQ request through. Called once at construction.
	SetIRQLine(IRQLine)
}

// New constructs the Mapper implementation named by rom's header,
// returning an error for mapper numbers this emulator doesn't
// implement (nesrom.New already rejects these at load time, so this
// only fires if a caller constructs an nesrom.ROM by hand).
func New(rom *nesrom.ROM) (Mapper, error) {
	switch rom.MapperNum() {
	case 0:
		return newNROM(rom), nil
	case 4:
		return newMMC3(rom), nil
	default:
		return nil, fmt.Errorf("mappers: unsupported mapper %d", rom.MapperNum())
	}
}

type nullIRQLine struct{}

func (nullIRQLine) AssertIRQ()   {}
func (nullIRQLine) DeassertIRQ() {}
