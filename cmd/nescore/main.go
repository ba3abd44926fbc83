// Command nescore runs the emulator core built by this module: load an
// iNES ROM, drive it with the real frame loop, and present it either
// through an ebiten window or a text debugger.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nescore",
	Short: "A cycle-accurate NES core: CPU, PPU and NROM cartridge emulation.",
}

func init() {
	// glog registers -v/-logtostderr etc. on the stdlib flag package at
	// import time; bridge them onto cobra's pflag set so `nescore -v=2
	// run game.nes` reaches glog the way it would a bare flag.Parse().
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	rootCmd.AddCommand(runCmd, dumpHeaderCmd, debugCmd)
}

func main() {
	defer glog.Flush()

	if err := rootCmd.Execute(); err != nil {
		glog.Errorf("nescore: %v", err)
		os.Exit(1)
	}
}
