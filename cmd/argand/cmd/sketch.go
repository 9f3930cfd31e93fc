package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/argand"
	"github.com/gogpu/argand/sketch"
)

// LoadScene returns the scene in path, or the default scene when path is
// empty. A non-empty labels overrides the scene's label form.
func LoadScene(path, labels string) (sketch.Scene, error) {
	s := sketch.DefaultScene()
	if path != "" {
		var err error
		if s, err = sketch.LoadScene(path); err != nil {
			return sketch.Scene{}, err
		}
	}
	if labels != "" {
		f, err := argand.ParseForm(labels)
		if err != nil {
			return sketch.Scene{}, fmt.Errorf("--labels: %w", err)
		}
		s.Labels = f
	}
	return s, nil
}

func newSketchCmd() *cobra.Command {
	var scene, out, labels string

	cmd := &cobra.Command{
		Use:   "sketch",
		Short: "Render vectors to a PNG file",
		Long: `sketch draws every vector of a scene from the origin on an Argand
diagram and writes the image as PNG. Without --scene it draws -2 + 2i,
3e^(4i) and -2 - 2i on a 600x600 canvas. Scene files are YAML (.yaml,
.yml) or TOML.`,
		Example: `  argand sketch --out vectors.png
  argand sketch --scene scene.yaml --labels eulerAsMultipleOfPiS`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := LoadScene(scene, labels)
			if err != nil {
				return err
			}
			if err := sketch.SavePNG(out, s); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %d vectors)\n",
				out, s.Width, s.Height, len(s.Vectors))
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&scene, "scene", "", "scene file (YAML or TOML)")
	flags.StringVarP(&out, "out", "o", "argand.png", "output PNG file")
	flags.StringVar(&labels, "labels", "", "label each vector in this form")
	return cmd
}
