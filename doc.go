// Package argand provides a complex-number value type and an Argand-diagram
// sketch built on the gg 2D graphics library.
//
// # Overview
//
// A [Complex] stores its value twice, as cartesian parts (re, im) and as
// polar coordinates (modulus, argument). Constructors derive one pair from
// the other, so the two never disagree:
//
//	z := argand.Cartesian(3, 4)
//	z.Mod()   // 5
//	z.Arg()   // 0.9272952180016122
//
//	w := argand.ModArg(2, math.Pi)
//	w.Re()    // -2
//
// # Arithmetic
//
// All operations return new values. Addition and subtraction work on the
// cartesian parts; multiplication, division and powers work on modulus and
// argument:
//
//	p := z.Mul(w)
//	q, err := z.Div(w) // ErrDivisionByZero when w is zero
//	r := z.Pow(2)
//
// # Text
//
// [Complex.Text] renders one of ten [Form]s. Simplified forms (suffix S)
// drop unit coefficients and zero terms:
//
//	argand.Cartesian(2, -1).String()              // "2 - 1i"
//	argand.ModArg(2, math.Pi).Text(FormEulerPiS)  // "2e^(πi)"
//
// # Drawing
//
// The sketch package draws a list of complex numbers as vectors from the
// origin onto a gg.Context and writes the result as PNG. Scenes can be
// built with options or loaded from YAML and TOML files.
//
// # Coordinate System
//
// The sketch uses mathematical orientation: the real axis increases to the
// right, the imaginary axis increases upward, and the origin sits at the
// centre of the canvas.
package argand

// Version is the current version of the library.
const Version = "0.1.0"
