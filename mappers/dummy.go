package mappers

import "github.com/bdwalton/nesgo/nesrom"

// dummyMapper is a fully in-memory Mapper used by package tests that
// need a bus to exist without exercising real bank-switching logic.
type dummyMapper struct {
	mem  [0x10000]uint8
	chr  [0x2000]uint8
	Mirr nesrom.Mirroring // exported so tests can set it directly
	irq  IRQLine
}

func (dm *dummyMapper) Mirroring() nesrom.Mirroring { return dm.Mirr }
func (dm *dummyMapper) SetIRQLine(l IRQLine)        { dm.irq = l }
func (dm *dummyMapper) NotifyA12(addr uint16)       {}

func (dm *dummyMapper) CPURead(addr uint16) uint8      { return dm.mem[addr] }
func (dm *dummyMapper) CPUWrite(addr uint16, val uint8) { dm.mem[addr] = val }

func (dm *dummyMapper) PPURead(addr uint16) uint8      { return dm.chr[addr&0x1FFF] }
func (dm *dummyMapper) PPUWrite(addr uint16, val uint8) { dm.chr[addr&0x1FFF] = val }

// Dummy is a package-level instance for tests that don't care about
// per-test isolation.
var Dummy *dummyMapper = &dummyMapper{irq: nullIRQLine{}}
