// Command nesgo runs an NES ROM either in an ebiten window or, with
// -headless, against the Blargg test-harness protocol.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/bdwalton/nesgo/apu"
	"github.com/bdwalton/nesgo/console"
	"github.com/bdwalton/nesgo/harness"
	"github.com/bdwalton/nesgo/mappers"
	"github.com/bdwalton/nesgo/nesrom"
	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	romFile  = flag.String("rom", "", "path to the iNES ROM to run")
	scale    = flag.Int("scale", 2, "window scale factor")
	headless = flag.Bool("headless", false, "run the Blargg test harness against -rom and print its status string, with no window")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	if *romFile == "" {
		glog.Fatalf("nesgo: -rom is required")
	}

	if *headless {
		runHeadless(*romFile)
		return
	}
	runWindowed(*romFile)
}

func runHeadless(romPath string) {
	res, err := harness.Run(context.Background(), romPath)
	if err != nil {
		glog.Fatalf("nesgo: harness run failed: %v", err)
	}
	glog.Infof("nesgo: %s completed with status %02x", romPath, res.Status)
	os.Stdout.WriteString(res.Message)
}

func runWindowed(romPath string) {
	rom, err := nesrom.Open(romPath)
	if err != nil {
		glog.Fatalf("nesgo: invalid rom %s: %v", romPath, err)
	}
	glog.Infof("nesgo: loaded %s", rom)

	m, err := mappers.New(rom)
	if err != nil {
		glog.Fatalf("nesgo: unsupported mapper: %v", err)
	}
	glog.Infof("nesgo: mapper %d selected", rom.MapperNum())

	mach := console.New(m)

	stream, err := apu.OpenStream()
	if err != nil {
		glog.Fatalf("nesgo: open audio stream: %v", err)
	}
	defer stream.Close()

	ebiten.SetWindowSize(256*(*scale), 240*(*scale))
	ebiten.SetWindowTitle("nesgo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(mach); err != nil {
		glog.Fatalf("nesgo: %v", err)
	}
}
