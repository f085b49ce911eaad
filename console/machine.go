package console

import (
	"image/color"

	"github.com/bdwalton/nesgo/apu"
	"github.com/bdwalton/nesgo/mappers"
	"github.com/bdwalton/nesgo/mos6502"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	screenWidth  = 256
	screenHeight = 240

	dotsPerFrame = 341 * 262
)

// Machine wires the CPU, PPU, mapper, APU and controllers into one
// runnable NES, and implements ebiten.Game so it can drive its own
// window.
type Machine struct {
	cpu    *mos6502.CPU
	ppu    *PPU
	mapper mappers.Mapper
	apu    *apu.APU
	mem    *cpuMemory

	Ctrl1 *Controller
	Ctrl2 *Controller
}

func New(m mappers.Mapper) *Machine {
	mach := &Machine{
		mapper: m,
		apu:    apu.New(),
		Ctrl1:  &Controller{},
		Ctrl2:  &Controller{},
	}
	mach.ppu = NewPPU(m)
	mach.mem = newCPUMemory(m, mach.ppu, mach.apu, mach.Ctrl1, mach.Ctrl2)
	mach.cpu = mos6502.New(mach.mem)

	mach.ppu.SetNMIRequester(mach.cpu)
	m.SetIRQLine(mach.cpu)
	mach.apu.SetIRQLine(mach.cpu)

	mach.cpu.Reset()
	return mach
}

func (mach *Machine) Reset() { mach.cpu.Reset() }

// Step runs exactly one CPU instruction and catches the PPU up
// before and after, the pull-model ordering spec'd for PPU/CPU
// synchronization: any register read within the instruction about to
// run sees PPU state caught up to the instruction boundary, and any
// PPU state change the instruction causes (e.g. toggling rendering)
// is reflected by the post-step catch-up before the next Step.
func (mach *Machine) Step() (int, error) {
	mach.ppu.CatchUpTo(mach.cpu.Cycles * 3)
	cycles, err := mach.cpu.Step()
	if err != nil {
		return cycles, err
	}
	if mach.mem.dmaStall > 0 {
		mach.cpu.Cycles += uint64(mach.mem.dmaStall)
		mach.mem.dmaStall = 0
	}
	mach.ppu.CatchUpTo(mach.cpu.Cycles * 3)
	return cycles, nil
}

// ReadByte exposes the CPU's view of memory for external callers
// (the test harness reads status/string bytes out of cartridge RAM
// this way).
func (mach *Machine) ReadByte(addr uint16) uint8 { return mach.mem.Read(addr) }

// ebiten.Game implementation.

func (mach *Machine) Update() error {
	mach.Ctrl1.SetState(pollKeys())

	target := mach.ppu.totalDots + dotsPerFrame
	for mach.ppu.totalDots < target {
		if _, err := mach.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (mach *Machine) Draw(screen *ebiten.Image) {
	frame := mach.ppu.Frame()
	for y := 0; y < screenHeight; y++ {
		for x := 0; x < screenWidth; x++ {
			c := frame[y*screenWidth+x]
			screen.Set(x, y, color.RGBA{
				R: uint8(c >> 16),
				G: uint8(c >> 8),
				B: uint8(c),
				A: 0xFF,
			})
		}
	}
}

func (mach *Machine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// Buttons, as bits: 0=A, 1=B, 2=Select, 3=Start, 4=Up, 5=Down,
// 6=Left, 7=Right.
var padKeys = []ebiten.Key{
	ebiten.KeyA,
	ebiten.KeyB,
	ebiten.KeySpace,
	ebiten.KeyEnter,
	ebiten.KeyUp,
	ebiten.KeyDown,
	ebiten.KeyLeft,
	ebiten.KeyRight,
}

func pollKeys() uint8 {
	var bits uint8
	for i, key := range padKeys {
		if ebiten.IsKeyPressed(key) {
			bits |= 1 << i
		}
	}
	return bits
}
