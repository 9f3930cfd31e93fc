package argand

import "errors"

var (
	// ErrZeroModulus is returned by WithMod when the receiver is zero.
	ErrZeroModulus = errors.New("argand: cannot rescale a zero-modulus number")

	// ErrDivisionByZero is returned by Div when the divisor is zero.
	ErrDivisionByZero = errors.New("argand: division by zero")

	// ErrUnknownForm is returned by Text for an unrecognized Form.
	ErrUnknownForm = errors.New("argand: unknown form")
)
