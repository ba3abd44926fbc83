package main

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/kestrelnes/nescore/internal/console"
	"github.com/kestrelnes/nescore/internal/rom"
)

var debugCmd = &cobra.Command{
	Use:   "debug <rom.nes>",
	Short: "Drive a ROM one CPU instruction at a time from a text REPL.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := rom.Load(args[0])
		if err != nil {
			return err
		}
		runREPL(console.New(img))
		return nil
	},
}

func readAddress(in *bufio.Reader, prompt string) uint16 {
	fmt.Print(prompt)
	var a uint16
	fmt.Fscanf(in, "%04x\n", &a)
	return a
}

// runREPL is a text debugger for a *console.Nes: single instruction
// stepping, reset, setting the PC, and memory/stack dumps. Breakpoints
// can be added and cleared, but no command consults them, and there is
// no command that runs freely. There is no GUI here; the windowed path
// lives in run.go.
func runREPL(n *console.Nes) {
	in := bufio.NewReader(os.Stdin)
	breaks := make(map[uint16]struct{})

	for {
		fmt.Printf("%s\n\n", n)
		fmt.Println("(B)reak - add a breakpoint")
		fmt.Println("(C)lear - clear breakpoints")
		fmt.Println("(S)tep - execute one CPU instruction")
		fmt.Println("R(e)set - hit the reset button")
		fmt.Println("(M)emory - dump a memory range")
		fmt.Println("S(t)ack - show the top of the stack")
		fmt.Println("(P)C - set the program counter")
		fmt.Println("(Q)uit")
		fmt.Print("Choice: ")

		var choice rune
		if _, err := fmt.Fscanf(in, "%c\n", &choice); err != nil {
			return
		}

		switch choice {
		case 'b', 'B':
			breaks[readAddress(in, "Breakpoint (e.g. ff15): ")] = struct{}{}
		case 'c', 'C':
			breaks = make(map[uint16]struct{})
		case 'p', 'P':
			n.CPU.PC = readAddress(in, "Set PC to (e.g. 0400): ")
		case 'q', 'Q':
			return
		case 'e', 'E':
			n.Reset()
		case 's', 'S':
			if err := stepOneInstruction(n); err != nil {
				fmt.Printf("halted: %v\n", err)
			}
		case 't', 'T':
			sp := uint16(n.CPU.SP)
			for i := uint16(0); i < 3 && sp+1+i <= 0xFF; i++ {
				addr := 0x0100 + sp + 1 + i
				fmt.Printf("0x%04x: 0x%02x ", addr, n.Bus.Read(addr))
			}
			fmt.Println()
		case 'm', 'M':
			low := readAddress(in, "Low address (e.g. f00d): ")
			high := readAddress(in, "High address (e.g. beef): ")
			for i, addr := 0, low; ; i, addr = i+1, addr+1 {
				fmt.Printf("0x%04x: 0x%02x ", addr, n.Bus.Read(addr))
				if (i+1)%5 == 0 {
					fmt.Println()
				}
				if addr == high || addr == math.MaxUint16 {
					break
				}
			}
			fmt.Println()
		}
	}
}

// stepOneInstruction ticks the CPU until it has consumed exactly one
// instruction's worth of cycles, ticking the PPU three times for every
// CPU tick to keep scanline/dot state consistent with the real frame
// driver.
func stepOneInstruction(n *console.Nes) error {
	if err := n.CPU.Tick(n.Bus); err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		n.PPU.Tick()
	}
	for n.CPU.Cycles > 0 {
		if err := n.CPU.Tick(n.Bus); err != nil {
			return err
		}
		for i := 0; i < 3; i++ {
			n.PPU.Tick()
		}
	}
	return nil
}
