package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/painter/pkg/style"
)

func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Print the 256-color palette, foreground and background",
		Run: func(cmd *cobra.Command, args []string) {
			for line := 0; line < 16; line++ {
				fmt.Print("FG:  ")
				for i := 0; i < 16; i++ {
					c := uint16(16*line + i)
					fmt.Printf("%-3x", style.Custom(c).Paint(c))
				}
				fmt.Println()

				fmt.Print("BG:  ")
				for i := 0; i < 16; i++ {
					c := uint16(16*line + i)
					fmt.Printf("%-3x", style.Plain.Bg(style.Custom(c)).Paint(c))
				}
				fmt.Println()
			}
		},
	}
}
