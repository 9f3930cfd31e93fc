package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/argand"
)

var calcOps = []string{"add", "sub", "mul", "div", "pow", "conj"}

func newCalcCmd() *cobra.Command {
	var (
		a, b  []float64
		polar bool
		power float64
		form  string
	)

	cmd := &cobra.Command{
		Use:   "calc OP",
		Short: "Apply an operation to complex numbers",
		Long: `calc applies OP to --a (and --b for binary operations) and prints the
result. Operands are written as two numbers, re,im by default or mod,arg
with --polar.

Operations: ` + strings.Join(calcOps, ", "),
		Example: `  argand calc mul --a 1,2 --b 3,4
  argand calc pow --a 1,1 --power 3 --form eulerAsMultipleOfPiS
  argand calc div --polar --a 6,2 --b 2,1`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: calcOps,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := argand.ParseForm(form)
			if err != nil {
				return err
			}
			x, err := pair("--a", a, polar)
			if err != nil {
				return err
			}
			y, err := pair("--b", b, polar)
			if err != nil {
				return err
			}

			z, err := calc(args[0], x, y, power)
			if err != nil {
				return err
			}
			argand.Logger().Debug("calc", "op", args[0], "a", x.String(), "b", y.String(), "result", z.String())

			s, err := z.Text(f)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}

	flags := cmd.Flags()
	flags.Float64SliceVar(&a, "a", []float64{1, 1}, "first operand")
	flags.Float64SliceVar(&b, "b", []float64{1, 1}, "second operand")
	flags.BoolVar(&polar, "polar", false, "read operands as mod,arg")
	flags.Float64Var(&power, "power", 2, "exponent for pow")
	flags.StringVar(&form, "form", string(argand.DefaultForm), "output form")
	return cmd
}

func pair(name string, v []float64, polar bool) (argand.Complex, error) {
	if len(v) != 2 {
		return argand.Complex{}, fmt.Errorf("%s: want two numbers, got %d", name, len(v))
	}
	if polar {
		if v[0] < 0 {
			return argand.Complex{}, fmt.Errorf("%s: modulus %v must be >= 0", name, v[0])
		}
		return argand.ModArg(v[0], v[1]), nil
	}
	return argand.Cartesian(v[0], v[1]), nil
}

func calc(op string, a, b argand.Complex, power float64) (argand.Complex, error) {
	switch op {
	case "add":
		return a.Add(b), nil
	case "sub":
		return a.Sub(b), nil
	case "mul":
		return a.Mul(b), nil
	case "div":
		return a.Div(b)
	case "pow":
		return a.Pow(power), nil
	case "conj":
		return a.Conj(), nil
	default:
		return argand.Complex{}, fmt.Errorf("unknown operation %q", op)
	}
}
