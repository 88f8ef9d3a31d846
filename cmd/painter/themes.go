package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/painter/pkg/themes"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List named styles, each rendered in itself",
		Long: `Lists the built-in named styles merged with any user theme file found
under the XDG config directory (painter/themes.toml or .yaml).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := themes.NewRegistry()
			if err := registry.LoadDefault(); err != nil {
				return err
			}

			for _, name := range registry.Names() {
				s, _ := registry.Lookup(name)
				fmt.Printf("  %s\n", s.Paint(name))
			}
			return nil
		},
	}
}
