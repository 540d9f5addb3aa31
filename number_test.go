package svgattr_test

import (
	"math"
	"testing"

	svgattr "github.com/reoring/svgattr"
)

func TestNewPositiveNumber_Validation(t *testing.T) {
	if _, err := svgattr.NewPositiveNumber(0); err != nil {
		t.Fatalf("expected 0 to be valid, got %v", err)
	}
	if _, err := svgattr.NewPositiveNumber(math.Copysign(0, -1)); err != nil {
		t.Fatalf("expected -0.0 to be valid, got %v", err)
	}
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -1.0} {
		_, err := svgattr.NewPositiveNumber(v)
		if err == nil {
			t.Fatalf("expected %v to be rejected", v)
		}
		iss, ok := svgattr.AsIssues(err)
		if !ok || len(iss) == 0 || iss[0].Code != svgattr.CodeInvalidNumber {
			t.Fatalf("expected invalid_number issue, got %v", err)
		}
	}
}

func TestPositiveNumber_Compare(t *testing.T) {
	a := svgattr.MustPositiveNumber(1.5)
	b := svgattr.MustPositiveNumber(2.5)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Fatalf("unexpected ordering: %d %d %d", a.Compare(b), b.Compare(a), a.Compare(a))
	}
	// -0.0 and 0.0 are equal under the total order.
	z := svgattr.MustPositiveNumber(0)
	nz := svgattr.MustPositiveNumber(math.Copysign(0, -1))
	if z.Compare(nz) != 0 {
		t.Fatalf("expected -0.0 == 0.0, got %d", z.Compare(nz))
	}
}

func TestMustPositiveNumber_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for negative input")
		}
	}()
	svgattr.MustPositiveNumber(-1)
}

func TestNumber_FixedPrecision(t *testing.T) {
	cases := []struct {
		v    float64
		prec int
		want string
	}{
		{1.0, 4, "1.0000"},
		{1.0, 2, "1.00"},
		{1.23456, 2, "1.23"},
		{0.0, 0, "0"},
		{-3.5, 1, "-3.5"},
	}
	for _, c := range cases {
		got, err := svgattr.ValueString(svgattr.Number(c.v), svgattr.WriteSettings{Precision: c.prec})
		if err != nil {
			t.Fatalf("WriteValue(%v): %v", c.v, err)
		}
		if got != c.want {
			t.Fatalf("format %v prec %d: got %q want %q", c.v, c.prec, got, c.want)
		}
	}
}

func TestPositiveNumber_WriteValue(t *testing.T) {
	p := svgattr.MustPositiveNumber(20)
	got, err := svgattr.ValueString(p, svgattr.WriteSettings{Precision: 1})
	if err != nil {
		t.Fatalf("WriteValue: %v", err)
	}
	if got != "20.0" {
		t.Fatalf("got %q want %q", got, "20.0")
	}
}
