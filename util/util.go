package util

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
)

// EaseFunc maps linear progress in [0, 1] onto eased progress in [0, 1].
type EaseFunc func(t float64) float64

// Only monotonic curves are offered so a flip never swings back past its start.
var easings = map[string]EaseFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
}

// Easing looks up an easing curve by name. An empty name is linear.
func Easing(name string) (EaseFunc, error) {
	if name == "" {
		name = "linear"
	}
	f, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return f, nil
}

// EasingNames lists the supported curves.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func RandomiseSaturation(rng *rand.Rand, min float64, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// RandomColour picks a random hue with a moderate saturation and lightness.
func RandomColour(rng *rand.Rand) colorful.Color {
	return colorful.Hsl(rng.Float64()*360.0, RandomiseSaturation(rng, 0.5, 0.9), 0.5)
}
