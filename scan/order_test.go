package scan

import (
	"testing"

	"github.com/mvolk/eqsift/source"
)

func region(x0, y0 float64, text string) source.Region {
	return source.Region{
		Rect: source.Rect{X0: x0, Y0: y0, X1: x0 + 100, Y1: y0 + 12},
		Text: text,
	}
}

func TestReadingOrder(t *testing.T) {
	regions := []source.Region{
		region(50, 300, "third"),
		region(50, 100, "first"),
		region(300, 100, "second"),
		region(50, 500, "fourth"),
	}

	got := ReadingOrder(regions)

	want := []string{"first", "second", "third", "fourth"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Text != w {
			t.Errorf("got[%d].Text = %q, want %q", i, got[i].Text, w)
		}
	}
}

func TestReadingOrderStableOnTies(t *testing.T) {
	// Identical keys keep their original relative order.
	regions := []source.Region{
		region(50, 100, "a"),
		region(50, 100, "b"),
		region(50, 100, "c"),
	}

	got := ReadingOrder(regions)
	for i, w := range []string{"a", "b", "c"} {
		if got[i].Text != w {
			t.Errorf("got[%d].Text = %q, want %q", i, got[i].Text, w)
		}
	}
}

func TestReadingOrderDoesNotMutateInput(t *testing.T) {
	regions := []source.Region{
		region(50, 300, "later"),
		region(50, 100, "earlier"),
	}

	ReadingOrder(regions)

	if regions[0].Text != "later" {
		t.Errorf("input slice reordered: regions[0].Text = %q", regions[0].Text)
	}
}
