package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/argand"
)

func newShowCmd() *cobra.Command {
	var (
		re, im, mod, arg float64
		form             string
		lang             string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a complex number in every form",
		Long: `show prints one complex number, given either by --re/--im (each
defaulting to 1) or by --mod/--arg. --form prints a single form; otherwise
the components and all forms are listed, with components formatted for
--lang.`,
		Example: `  argand show --re 2 --im -1
  argand show --mod 2 --arg 3.141592653589793 --form eulerAsMultipleOfPiS`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			z, err := operand(flags, re, im, mod, arg)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if form != "" {
				f, err := argand.ParseForm(form)
				if err != nil {
					return err
				}
				s, err := z.Text(f)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(w, s)
				return err
			}

			tag, err := language.Parse(lang)
			if err != nil {
				return fmt.Errorf("--lang: %w", err)
			}
			p := message.NewPrinter(tag)
			p.Fprintf(w, "%-22s %.4f\n", "re", z.Re())
			p.Fprintf(w, "%-22s %.4f\n", "im", z.Im())
			p.Fprintf(w, "%-22s %.4f\n", "mod", z.Mod())
			p.Fprintf(w, "%-22s %.4f\n", "arg", z.Arg())
			p.Fprintf(w, "%-22s %.4f\n", "arg/π", z.ArgPi())
			for _, f := range argand.Forms() {
				s, err := z.Text(f)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%-22s %s\n", f, s)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&re, "re", 1, "real part")
	flags.Float64Var(&im, "im", 1, "imaginary part")
	flags.Float64Var(&mod, "mod", 0, "modulus (>= 0)")
	flags.Float64Var(&arg, "arg", 0, "argument in radians")
	flags.StringVar(&form, "form", "", "print only this form")
	flags.StringVar(&lang, "lang", "en", "BCP 47 language for component numbers")
	return cmd
}

// operand builds the number named by either the cartesian or the polar
// flags. Polar input needs --mod; a missing --arg is 0.
func operand(flags *pflag.FlagSet, re, im, mod, arg float64) (argand.Complex, error) {
	cartesian := flags.Changed("re") || flags.Changed("im")
	polar := flags.Changed("mod") || flags.Changed("arg")
	switch {
	case cartesian && polar:
		return argand.Complex{}, errors.New("give --re/--im or --mod/--arg, not both")
	case polar && !flags.Changed("mod"):
		return argand.Complex{}, errors.New("--arg needs --mod")
	case polar:
		if mod < 0 {
			return argand.Complex{}, fmt.Errorf("--mod %v: modulus must be >= 0", mod)
		}
		return argand.ModArg(mod, arg), nil
	default:
		return argand.Cartesian(re, im), nil
	}
}
