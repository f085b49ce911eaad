package harness

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func buildStatusROM() []byte {
	var buf bytes.Buffer
	buf.WriteString("NES\x1A")
	buf.WriteByte(1)
	buf.WriteByte(1)
	buf.WriteByte(0)
	buf.WriteByte(0)
	buf.Write(make([]byte, 8))

	bank := make([]byte, 16384)
	prg := []byte{
		0xA9, 0x80, // LDA #$80
		0x8D, 0x00, 0x60, // STA $6000 (running)
		0xA9, 0x4F, // LDA #'O'
		0x8D, 0x04, 0x60, // STA $6004
		0xA9, 0x4B, // LDA #'K'
		0x8D, 0x05, 0x60, // STA $6005
		0xA9, 0x00, // LDA #$00
		0x8D, 0x00, 0x60, // STA $6000 (done)
		0x4C, 0x14, 0x80, // JMP $8014 (spin)
	}
	copy(bank, prg)
	bank[0x3FFC] = 0x00
	bank[0x3FFD] = 0x80
	buf.Write(bank)
	buf.Write(make([]byte, 8192))
	return buf.Bytes()
}

func TestRunDecodesStatusAndMessage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "status.nes")
	if err := os.WriteFile(path, buildStatusROM(), 0o644); err != nil {
		t.Fatalf("write rom: %v", err)
	}

	res, err := Run(context.Background(), path)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Status != 0 {
		t.Errorf("Status = %02x, want 0x00", res.Status)
	}
	if res.Message != "OK" {
		t.Errorf("Message = %q, want %q", res.Message, "OK")
	}
}
