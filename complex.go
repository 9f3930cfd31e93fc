package argand

import "math"

// Complex is a complex number held in both cartesian and polar coordinates.
//
// The two encodings always describe the same point: every constructor
// derives one pair from the other, and there are no setters. Complex is a
// value type; all operations return new values and never modify their
// operands. The zero value is the number 0.
type Complex struct {
	re, im float64
	mod    float64
	arg    float64
	argPi  float64
}

// Cartesian returns the complex number re + im·i.
func Cartesian(re, im float64) Complex {
	arg := math.Atan2(im, re)
	return Complex{
		re:    re,
		im:    im,
		mod:   math.Hypot(re, im),
		arg:   arg,
		argPi: arg / math.Pi,
	}
}

// ModArg returns the complex number with modulus mod and argument arg
// (radians). The stored argument is normalized to (-π, π].
func ModArg(mod, arg float64) Complex {
	return Cartesian(mod*math.Cos(arg), mod*math.Sin(arg))
}

// Default returns 1 + i.
func Default() Complex {
	return Cartesian(1, 1)
}

// FromComplex128 converts a builtin complex128.
func FromComplex128(z complex128) Complex {
	return Cartesian(real(z), imag(z))
}

// Complex128 converts c to the builtin complex128.
func (c Complex) Complex128() complex128 {
	return complex(c.re, c.im)
}

// Re returns the real part.
func (c Complex) Re() float64 { return c.re }

// Im returns the imaginary part.
func (c Complex) Im() float64 { return c.im }

// Mod returns the modulus, the length of the vector. Always >= 0.
func (c Complex) Mod() float64 { return c.mod }

// Arg returns the argument in radians, in (-π, π].
func (c Complex) Arg() float64 { return c.arg }

// ArgPi returns the argument as a multiple of π, in (-1, 1].
func (c Complex) ArgPi() float64 { return c.argPi }

// WithMod returns c rescaled to modulus newMod, keeping its direction.
// Returns ErrZeroModulus if c is zero, because a zero vector has no
// direction to keep.
func (c Complex) WithMod(newMod float64) (Complex, error) {
	if c.mod == 0 {
		return Complex{}, ErrZeroModulus
	}
	return Cartesian(c.re/c.mod*newMod, c.im/c.mod*newMod), nil
}

// WithArg returns c rotated to argument newArg, keeping its modulus.
func (c Complex) WithArg(newArg float64) Complex {
	return ModArg(c.mod, newArg)
}

// Add returns c + o.
func (c Complex) Add(o Complex) Complex {
	return Cartesian(c.re+o.re, c.im+o.im)
}

// Sub returns c - o.
func (c Complex) Sub(o Complex) Complex {
	return Cartesian(c.re-o.re, c.im-o.im)
}

// Mul returns c · o.
// Moduli multiply and arguments add; the sum is taken in multiples of π.
func (c Complex) Mul(o Complex) Complex {
	return ModArg(c.mod*o.mod, (c.argPi+o.argPi)*math.Pi)
}

// Div returns c / o, or ErrDivisionByZero if o is zero.
func (c Complex) Div(o Complex) (Complex, error) {
	if o.mod == 0 {
		return Complex{}, ErrDivisionByZero
	}
	return ModArg(c.mod/o.mod, (c.argPi-o.argPi)*math.Pi), nil
}

// Pow returns c raised to a real power: modulus mod^power and
// argument arg·power.
func (c Complex) Pow(power float64) Complex {
	return ModArg(math.Pow(c.mod, power), c.arg*power)
}

// Conj returns the complex conjugate re - im·i.
func (c Complex) Conj() Complex {
	return Cartesian(c.re, -c.im)
}

// Neg returns -c.
func (c Complex) Neg() Complex {
	return Cartesian(-c.re, -c.im)
}

// IsZero reports whether c is 0.
func (c Complex) IsZero() bool {
	return c.mod == 0
}

// Approx reports whether the cartesian parts of c and o differ by less
// than epsilon.
func (c Complex) Approx(o Complex, epsilon float64) bool {
	return math.Abs(c.re-o.re) < epsilon && math.Abs(c.im-o.im) < epsilon
}
