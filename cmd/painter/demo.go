package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/painter/pkg/style"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show style composition on a few samples",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s\n%s\n%s\n%s\n%s\n",
				style.Red.Bg(style.Green).Bold().Paint("Red-Green-Bold"),
				style.Blue.Paint("Blue"),
				style.Blue.Bold().Paint("Blue, bold"),
				style.Blue.Bg(style.Magenta).Paint("Blue on magenta"),
				style.Plain.Underline().Paint("Underline"))

			// Nested scopes: inner styles merge onto the outer one and the
			// outer style comes back when they end.
			style.Red.With(func() {
				fmt.Print("JustRed ")
				style.Bold.With(func() {
					fmt.Printf("BoldRed %s BoldRed ", style.Underline.Paint("Underline"))
				})
				fmt.Print("JustRed ")

				fmt.Printf("%s", style.Blue.Paint("Blue (overrides) "))
				style.Green.With(func() {
					fmt.Println("Green (overrides)")
				})
			})
		},
	}
}
