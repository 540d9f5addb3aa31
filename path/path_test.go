package path_test

import (
	"slices"
	"testing"

	svgattr "github.com/reoring/svgattr"
	"github.com/reoring/svgattr/path"
)

func render(t *testing.T, v svgattr.Value, prec int) string {
	t.Helper()
	got, err := svgattr.ValueString(v, svgattr.WriteSettings{Precision: prec})
	if err != nil {
		t.Fatalf("WriteValue: %v", err)
	}
	return got
}

func TestSegment_WriteValue(t *testing.T) {
	cases := []struct {
		name string
		seg  path.Segment
		prec int
		want string
	}{
		{"move", path.MoveTo(10, 20), 1, "M10.0 20.0"},
		{"line", path.LineTo(10, 0), 1, "L10.0 0.0"},
		{"horizontal", path.HorizontalTo(5), 2, "H5.00"},
		{"vertical", path.VerticalTo(-5), 2, "V-5.00"},
		{"cubic", path.CubicTo(1, 2, 3, 4, 5, 6), 2, "C1.00 2.00 3.00 4.00 5.00 6.00"},
		{"cubic smooth", path.CubicSmoothTo(1, 2, 3, 4), 0, "S1 2 3 4"},
		{"quadratic", path.QuadraticTo(1, 2, 3, 4), 0, "Q1 2 3 4"},
		{"quadratic smooth", path.QuadraticSmoothTo(3, 4), 0, "T3 4"},
		{"elliptical", path.EllipticalTo(25, 25, 0, 1, 0, 50, 25), 0, "A25 25 0 1 0 50 25"},
		{"close", path.ClosePath(), 4, "z"},
		{"relative line", path.LineTo(10, 0).Relative(), 1, "l10.0 0.0"},
		{"relative close", path.ClosePath().Relative(), 4, "z"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := render(t, c.seg, c.prec); got != c.want {
				t.Fatalf("got %q want %q", got, c.want)
			}
		})
	}
}

func TestData_WriteValue(t *testing.T) {
	d := path.Data{
		path.MoveTo(0, 0),
		path.LineTo(10, 0),
		path.ClosePath(),
	}
	if got := render(t, d, 1); got != "M0.0 0.0L10.0 0.0z" {
		t.Fatalf("got %q", got)
	}
	if got := render(t, path.Data{}, 1); got != "" {
		t.Fatalf("empty data rendered %q", got)
	}
}

func TestCommand_Letter(t *testing.T) {
	cases := []struct {
		cmd      path.Command
		abs, rel byte
	}{
		{path.Move, 'M', 'm'},
		{path.Line, 'L', 'l'},
		{path.Horizontal, 'H', 'h'},
		{path.Vertical, 'V', 'v'},
		{path.Cubic, 'C', 'c'},
		{path.CubicSmooth, 'S', 's'},
		{path.Quadratic, 'Q', 'q'},
		{path.QuadraticSmooth, 'T', 't'},
		{path.Elliptical, 'A', 'a'},
		{path.Close, 'z', 'z'},
	}
	for _, c := range cases {
		if got := c.cmd.Letter(false); got != c.abs {
			t.Fatalf("absolute letter for %d: %q want %q", c.cmd, got, c.abs)
		}
		if got := c.cmd.Letter(true); got != c.rel {
			t.Fatalf("relative letter for %d: %q want %q", c.cmd, got, c.rel)
		}
	}
}

func TestCommand_ArgCount(t *testing.T) {
	counts := map[path.Command]int{
		path.Move:            2,
		path.Line:            2,
		path.Horizontal:      1,
		path.Vertical:        1,
		path.Cubic:           6,
		path.CubicSmooth:     4,
		path.Quadratic:       4,
		path.QuadraticSmooth: 2,
		path.Elliptical:      7,
		path.Close:           0,
	}
	for cmd, want := range counts {
		if got := cmd.ArgCount(); got != want {
			t.Fatalf("arity for %d: %d want %d", cmd, got, want)
		}
	}
}

func TestSegment_Accessors(t *testing.T) {
	s := path.EllipticalTo(25, 26, 0, 1, 0, 50, 27)
	if s.Command() != path.Elliptical || s.IsRelative() {
		t.Fatalf("unexpected segment state")
	}
	args := s.Args()
	if !slices.Equal(args, []float64{25, 26, 0, 1, 0, 50, 27}) {
		t.Fatalf("args %v", args)
	}
	// Args returns a copy; mutating it must not touch the segment.
	args[0] = 99
	if s.Args()[0] != 25 {
		t.Fatalf("segment arguments were mutated through the copy")
	}

	rel := s.Relative()
	if !rel.IsRelative() || s.IsRelative() {
		t.Fatalf("Relative must not mutate the receiver")
	}
	if back := rel.Absolute(); back.IsRelative() {
		t.Fatalf("Absolute did not clear the relative flag")
	}
}
