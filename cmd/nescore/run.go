package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/golang/glog"
	"github.com/kestrelnes/nescore/internal/console"
	"github.com/kestrelnes/nescore/internal/rom"
)

const (
	screenWidth  = 256
	screenHeight = 240
)

var runCmd = &cobra.Command{
	Use:   "run <rom.nes>",
	Short: "Run a ROM in an ebiten window.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := rom.Load(args[0])
		if err != nil {
			return err
		}

		game := &game{nes: console.New(img)}

		ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
		ebiten.SetWindowTitle("nescore")
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

		return ebiten.RunGame(game)
	},
}

// playerKeys maps one controller's 8 buttons, high to low (A, B,
// Select, Start, Up, Down, Left, Right), to a keyboard key.
var playerKeys = [8]ebiten.Key{
	ebiten.KeyZ,
	ebiten.KeyX,
	ebiten.KeyShift,
	ebiten.KeyEnter,
	ebiten.KeyUp,
	ebiten.KeyDown,
	ebiten.KeyLeft,
	ebiten.KeyRight,
}

// game adapts *console.Nes to ebiten.Game. It owns no emulation state
// of its own; every frame it polls the keyboard, hands the host's
// button byte to the console, runs one StepFrame, and blits the
// resulting framebuffer.
type game struct {
	nes *console.Nes
}

func pollController() uint8 {
	var buttons uint8
	for i, key := range playerKeys {
		if ebiten.IsKeyPressed(key) {
			buttons |= 1 << (7 - i)
		}
	}
	return buttons
}

func (g *game) Update() error {
	g.nes.SetControllerState(0, pollController())
	if err := g.nes.StepFrame(); err != nil {
		glog.Errorf("nescore: frame halted: %v", err)
		return err
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.nes.Framebuffer()
	for y := 0; y < screenHeight; y++ {
		for x := 0; x < screenWidth; x++ {
			i := (y*screenWidth + x) * 3
			screen.Set(x, y, color.RGBA{fb[i], fb[i+1], fb[i+2], 0xFF})
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
