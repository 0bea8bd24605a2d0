package render

import (
	"fmt"
	"math"
)

// rgb is an 8-bit colour.
type rgb struct{ r, g, b float64 }

// coolwarm anchors, evenly spaced on [0,1], from the diverging map of
// Moreland (2009): blue through light grey to red.
var coolwarm = [...]rgb{
	{59, 76, 192},
	{124, 159, 249},
	{221, 221, 221},
	{247, 168, 137},
	{180, 4, 38},
}

// Coolwarm returns the "#rrggbb" colour for t in [0,1]; t is clamped and
// NaN maps to the midpoint.
func Coolwarm(t float64) string {
	switch {
	case math.IsNaN(t):
		t = 0.5
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	pos := t * float64(len(coolwarm)-1)
	i := int(pos)
	if i >= len(coolwarm)-1 {
		i = len(coolwarm) - 2
	}
	f := pos - float64(i)
	lo, hi := coolwarm[i], coolwarm[i+1]

	return fmt.Sprintf("#%02x%02x%02x",
		channel(lo.r, hi.r, f), channel(lo.g, hi.g, f), channel(lo.b, hi.b, f))
}

func channel(a, b, f float64) int {
	return int(math.Round(a + (b-a)*f))
}

// normalise maps scores onto [0,1] by min-max; a constant map gives 0.5.
func normalise(scores map[string]float64) map[string]float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range scores {
		lo = math.Min(lo, s)
		hi = math.Max(hi, s)
	}
	out := make(map[string]float64, len(scores))
	for id, s := range scores {
		if hi > lo {
			out[id] = (s - lo) / (hi - lo)
		} else {
			out[id] = 0.5
		}
	}

	return out
}
