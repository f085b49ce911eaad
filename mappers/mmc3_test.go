package mappers

import "testing"

func makeMMC3(t *testing.T, prgBanks16k, chrBanks8k int) *mmc3 {
	t.Helper()
	rom := mustROM(t, 4, prgBanks16k, chrBanks8k)
	return newMMC3(rom)
}

// selectBank issues the $8000/$8001 write pair that sets bank
// register idx to val, matching the real register protocol.
func (m *mmc3) selectBank(idx, val uint8) {
	m.CPUWrite(0x8000, idx)
	m.CPUWrite(0x8001, val)
}

func TestMMC3CHRBankingA12NotInverted(t *testing.T) {
	m := makeMMC3(t, 2, 4) // 4 * 16KiB CHR = 64 1KiB banks worth of room... use small rom
	m.selectBank(0, 4)     // r0 (2KiB @ $0000) -> banks 4,5
	if got := m.chrWindow(0); &got[0] != &m.chrBank1k(4)[0] {
		t.Errorf("window 0 should map to bank 4")
	}
	if got := m.chrWindow(1); &got[0] != &m.chrBank1k(5)[0] {
		t.Errorf("window 1 should map to bank 5")
	}
}

func TestMMC3CHRBankingA12Inverted(t *testing.T) {
	m := makeMMC3(t, 2, 4)
	m.selectBank(0, 4) // r0 -> banks 4,5 but now land at windows 4,5 once inverted
	m.CPUWrite(0x8000, 0x80)
	m.CPUWrite(0x8001, 4)
	if got := m.chrWindow(4); &got[0] != &m.chrBank1k(4)[0] {
		t.Errorf("window 4 should map to r0 bank 4 once a12Inv is set")
	}
}

func TestMMC3PRGModeSwap(t *testing.T) {
	m := makeMMC3(t, 4, 1) // 4 * 16KiB = 8 * 8KiB PRG banks, last=7
	m.selectBank(6, 2)
	m.selectBank(7, 3)

	// mode 0: $8000<-r6, $A000<-r7, $C000<-last-1, $E000<-last
	if &m.prgWindow(0)[0] != &m.prgBank8k(2)[0] {
		t.Errorf("mode0 window0 should be bank 2")
	}
	if &m.prgWindow(3)[0] != &m.prgBank8k(7)[0] {
		t.Errorf("mode0 window3 should be the fixed last bank")
	}

	// flip prgSwap: mode 1: $8000<-last-1, $C000<-r6
	m.CPUWrite(0x8000, 0x40)
	m.CPUWrite(0x8001, 3) // r7 stays selected target is bankSel=0 now though
	if !m.prgSwap {
		t.Fatalf("expected prgSwap set")
	}
	if &m.prgWindow(2)[0] != &m.prgBank8k(2)[0] {
		t.Errorf("mode1 window2 should be r6's bank (2)")
	}
}

func TestMMC3IRQClocking(t *testing.T) {
	m := makeMMC3(t, 2, 2)
	var asserted bool
	m.SetIRQLine(irqLineFunc{assert: func() { asserted = true }})

	m.CPUWrite(0xC000, 4)    // latch = 4
	m.CPUWrite(0xC001, 0)    // request reload
	m.CPUWrite(0xE001, 0)    // enable

	// Drive enough low accesses to pass the filter, then a rising edge.
	for i := 0; i < a12LowThreshold+1; i++ {
		m.NotifyA12(0x0000)
	}
	m.NotifyA12(0x1000) // rising edge: reload (irqReload set) -> counter=4, not zero yet
	if m.irqCounter != 4 {
		t.Fatalf("expected reload to latch 4, got %d", m.irqCounter)
	}

	for i := 0; i < 4; i++ {
		for j := 0; j < a12LowThreshold+1; j++ {
			m.NotifyA12(0x0000)
		}
		m.NotifyA12(0x1000)
	}

	if !asserted {
		t.Errorf("expected IRQ to be asserted once counter reached 0")
	}
}

func TestMMC3IRQFilterRejectsShortLow(t *testing.T) {
	m := makeMMC3(t, 2, 2)
	m.CPUWrite(0xC000, 1)
	m.CPUWrite(0xC001, 0)
	m.CPUWrite(0xE001, 0)

	m.NotifyA12(0x0000) // low, but not long enough
	m.NotifyA12(0x1000) // rising edge should be filtered out
	if m.irqCounter != 0 {
		t.Errorf("expected no clock on filtered edge, irqCounter=%d", m.irqCounter)
	}
}

type irqLineFunc struct {
	assert   func()
	deassert func()
}

func (f irqLineFunc) AssertIRQ() {
	if f.assert != nil {
		f.assert()
	}
}

func (f irqLineFunc) DeassertIRQ() {
	if f.deassert != nil {
		f.deassert()
	}
}
