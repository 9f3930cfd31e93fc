package argand

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Form selects the textual representation produced by Complex.Text.
//
// Every form has a simplified variant (suffix S) that drops coefficients
// of 1, omits zero terms and prints arguments of exactly 0, 1 and -1
// specially. Comparisons are exact: a value of 0.9999999999999999 is not
// treated as 1.
type Form string

// Supported forms. Full variants of Cartesian(0, 2) print as:
//
//	cartesian             0 + 2i
//	modArg                2(cos(1.5707963267948966) + i sin(1.5707963267948966))
//	modArgAsMultipleOfPi  2(cos(0.5π) + i sin(0.5π))
//	euler                 2e^(1.5707963267948966i)
//	eulerAsMultipleOfPi   2e^(0.5πi)
const (
	FormCartesian  Form = "cartesian"
	FormCartesianS Form = "cartesianS"
	FormModArg     Form = "modArg"
	FormModArgS    Form = "modArgS"
	FormModArgPi   Form = "modArgAsMultipleOfPi"
	FormModArgPiS  Form = "modArgAsMultipleOfPiS"
	FormEuler      Form = "euler"
	FormEulerS     Form = "eulerS"
	FormEulerPi    Form = "eulerAsMultipleOfPi"
	FormEulerPiS   Form = "eulerAsMultipleOfPiS"
)

// DefaultForm is the form used by Complex.String.
const DefaultForm = FormCartesianS

var allForms = []Form{
	FormCartesian, FormCartesianS,
	FormModArg, FormModArgS,
	FormModArgPi, FormModArgPiS,
	FormEuler, FormEulerS,
	FormEulerPi, FormEulerPiS,
}

// Forms returns every supported form.
func Forms() []Form {
	out := make([]Form, len(allForms))
	copy(out, allForms)
	return out
}

// Valid reports whether f is a supported form.
func (f Form) Valid() bool {
	for _, known := range allForms {
		if f == known {
			return true
		}
	}
	return false
}

// Simplified reports whether f is a simplified variant.
func (f Form) Simplified() bool {
	return f.Valid() && strings.HasSuffix(string(f), "S")
}

// String returns the form tag.
func (f Form) String() string {
	return string(f)
}

// ParseForm returns the Form named by s, or an error wrapping
// ErrUnknownForm.
func ParseForm(s string) (Form, error) {
	f := Form(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownForm, s)
	}
	return f, nil
}

// String formats c in DefaultForm.
func (c Complex) String() string {
	s, _ := c.Text(DefaultForm)
	return s
}

// Text formats c in the given form. Zero formats as "0" in every form.
// An unrecognized form returns an error wrapping ErrUnknownForm.
func (c Complex) Text(form Form) (string, error) {
	if !form.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownForm, string(form))
	}
	if c.mod == 0 {
		return "0", nil
	}

	switch form {
	case FormCartesian:
		return c.cartesian(), nil
	case FormCartesianS:
		return c.cartesianSimplified(), nil
	case FormModArg:
		return c.modArg(num(c.mod), num(c.arg)), nil
	case FormModArgS:
		return c.modArg(c.modulusFactor(), num(c.arg)), nil
	case FormModArgPi:
		return c.modArg(num(c.mod), num(c.argPi)+"π"), nil
	case FormModArgPiS:
		return c.modArg(c.modulusFactor(), piAngle(c.argPi)), nil
	case FormEuler:
		return num(c.mod) + "e^(" + num(c.arg) + "i)", nil
	case FormEulerS:
		return c.modulusFactor() + "e^" + c.eulerExponent(), nil
	case FormEulerPi:
		return num(c.mod) + "e^(" + num(c.argPi) + "πi)", nil
	default: // FormEulerPiS
		return c.modulusFactor() + "e^" + c.eulerPiExponent(), nil
	}
}

func (c Complex) cartesian() string {
	return num(c.re) + " " + sign(c.im) + " " + num(math.Abs(c.im)) + "i"
}

func (c Complex) cartesianSimplified() string {
	switch {
	case c.re == 0:
		switch c.im {
		case 1:
			return "i"
		case -1:
			return "-i"
		}
		return num(c.im) + "i"
	case c.im == 0:
		return num(c.re)
	default:
		return c.cartesian()
	}
}

func (c Complex) modArg(modulus, angle string) string {
	terms := "cos(" + angle + ") + i sin(" + angle + ")"
	if modulus == "" {
		return terms
	}
	return modulus + "(" + terms + ")"
}

// modulusFactor is the leading modulus of the simplified polar forms,
// empty for unit vectors.
func (c Complex) modulusFactor() string {
	if c.mod == 1 {
		return ""
	}
	return num(c.mod)
}

func (c Complex) eulerExponent() string {
	switch c.arg {
	case 0:
		return "0"
	case 1:
		return "i"
	case -1:
		return "(-i)"
	}
	return "(" + num(c.arg) + "i)"
}

func (c Complex) eulerPiExponent() string {
	if c.argPi == 0 {
		return "0"
	}
	return "(" + piAngle(c.argPi) + "i)"
}

// piAngle prints a multiple of π, writing 1 and -1 as bare π.
func piAngle(p float64) string {
	switch p {
	case 0:
		return "0"
	case 1:
		return "π"
	case -1:
		return "-π"
	}
	return num(p) + "π"
}

func sign(x float64) string {
	if x < 0 {
		return "-"
	}
	return "+"
}

// num prints x in the shortest decimal form that round-trips, switching
// to exponent notation only for very large or very small magnitudes.
// Negative zero prints as "0".
func num(x float64) string {
	if x == 0 {
		return "0"
	}
	abs := math.Abs(x)
	if abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
