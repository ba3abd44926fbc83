package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kestrelnes/nescore/internal/rom"
)

var dumpHeaderCmd = &cobra.Command{
	Use:   "dump-header <rom.nes>",
	Short: "Parse an iNES header and print its fields, without running anything.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := rom.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("mapper:     %d\n", img.Mapper)
		fmt.Printf("mirroring:  %v\n", img.Mirroring)
		fmt.Printf("has SRAM:   %v\n", img.HasSRAM)
		fmt.Printf("PRG size:   %d bytes (%d bank(s))\n", len(img.PRG), len(img.PRG)/16384)
		if len(img.CHR) == 0 {
			fmt.Println("CHR:        RAM (image carries no CHR-ROM)")
		} else {
			fmt.Printf("CHR size:   %d bytes (%d bank(s))\n", len(img.CHR), len(img.CHR)/8192)
		}
		return nil
	},
}
