package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/argand/cmd/argand/cmd"
	"github.com/gogpu/argand/internal/window"
)

func newWindowCmd() *cobra.Command {
	var scene, labels, title string

	c := &cobra.Command{
		Use:   "window",
		Short: "Show vectors in a desktop window",
		Long: `window opens a window and redraws the scene every frame. Escape or
closing the window exits.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := cmd.LoadScene(scene, labels)
			if err != nil {
				return err
			}
			return window.Run(s, title)
		},
	}

	flags := c.Flags()
	flags.StringVar(&scene, "scene", "", "scene file (YAML or TOML)")
	flags.StringVar(&labels, "labels", "", "label each vector in this form")
	flags.StringVar(&title, "title", "argand", "window title")
	return c
}
