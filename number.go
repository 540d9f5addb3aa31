package svgattr

import (
	"io"
	"math"
	"strconv"
)

// Number is a floating point attribute value formatted to the fixed decimal
// precision carried by WriteSettings.
type Number float64

// WriteValue writes the number with set.Precision decimal places.
func (n Number) WriteValue(w io.Writer, set WriteSettings) error {
	_, err := w.Write(AppendNumber(make([]byte, 0, 24), float64(n), set))
	return err
}

// AppendNumber appends v formatted to set.Precision decimal places.
// This is the single formatting rule shared by all numeric value types,
// including path command arguments.
func AppendNumber(dst []byte, v float64, set WriteSettings) []byte {
	return strconv.AppendFloat(dst, v, 'f', set.Precision, 64)
}

// PositiveNumber is a float guaranteed by construction to be non-negative,
// non-NaN and finite. Negative zero is a valid value. The restricted domain
// gives the type a total ordering with no NaN case to special-case.
type PositiveNumber struct {
	inner float64
}

// NewPositiveNumber validates v and wraps it. NaN, infinities and negative
// values are rejected; -0.0 is accepted.
func NewPositiveNumber(v float64) (PositiveNumber, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return PositiveNumber{}, Issues{Issue{
			Path:    "/",
			Code:    CodeInvalidNumber,
			Message: "number must be finite and non-negative",
			Hint:    strconv.FormatFloat(v, 'g', -1, 64),
		}}
	}
	return PositiveNumber{inner: v}, nil
}

// MustPositiveNumber is like NewPositiveNumber but panics on invalid input.
func MustPositiveNumber(v float64) PositiveNumber {
	p, err := NewPositiveNumber(v)
	if err != nil {
		panic(err)
	}
	return p
}

// Float returns the wrapped value.
func (p PositiveNumber) Float() float64 { return p.inner }

// Compare returns -1, 0 or 1. The ordering is total because construction
// keeps NaN out of the domain.
func (p PositiveNumber) Compare(o PositiveNumber) int {
	switch {
	case p.inner < o.inner:
		return -1
	case p.inner > o.inner:
		return 1
	}
	return 0
}

// WriteValue writes the number with set.Precision decimal places.
func (p PositiveNumber) WriteValue(w io.Writer, set WriteSettings) error {
	return Number(p.inner).WriteValue(w, set)
}
