package radial

import (
	"math"
	"strconv"
	"strings"
)

// StepPolicy resolves the snapping granularity for a pointer at a given
// distance from the dial center.
type StepPolicy interface {
	// Step returns the snapping step for a pointer at distance from the center.
	Step(distance float64) float64
	// Precision is the number of decimal places every snapped output is
	// rounded to. It is fixed across bands so outputs stay comparable.
	Precision() int
	// Tick is the coarsest configured step.
	Tick() float64
}

// BinarySteps switches between a coarse tick step near the center and a fine
// precision step once the pointer is farther out than PrecisionDistance.
type BinarySteps struct {
	tickStep          float64
	precisionStep     float64
	precisionDistance float64
	precision         int
}

// NewBinarySteps validates and returns a two-level step policy.
func NewBinarySteps(tickStep, precisionStep, precisionDistance float64) (*BinarySteps, error) {
	if err := validateStep(tickStep); err != nil {
		return nil, err
	}
	if err := validateStep(precisionStep); err != nil {
		return nil, err
	}
	if !isFinite(precisionDistance) || precisionDistance < 0 {
		return nil, configErrorf("precision distance must be a non-negative number, got %v", precisionDistance)
	}
	return &BinarySteps{
		tickStep:          tickStep,
		precisionStep:     precisionStep,
		precisionDistance: precisionDistance,
		precision:         max(decimalPlaces(tickStep), decimalPlaces(precisionStep)),
	}, nil
}

// Step implements StepPolicy.
func (b *BinarySteps) Step(distance float64) float64 {
	if distance > b.precisionDistance {
		return b.precisionStep
	}
	return b.tickStep
}

// Precision implements StepPolicy.
func (b *BinarySteps) Precision() int { return b.precision }

// Tick implements StepPolicy.
func (b *BinarySteps) Tick() float64 { return math.Max(b.tickStep, b.precisionStep) }

// BandedSteps partitions the annulus between the deadzone and the outer radius
// into equal-width bands, each with its own step. Steps are listed
// outermost-first.
type BandedSteps struct {
	steps     []float64
	outer     float64
	bandWidth float64
	precision int
}

// NewBandedSteps validates and returns a banded step policy. At least one step
// is required and every step must be positive. steps[0] is the rim band and
// the last step is the band just outside the deadzone.
func NewBandedSteps(deadzone, outerRadius float64, steps ...float64) (*BandedSteps, error) {
	if len(steps) == 0 {
		return nil, configErrorf("banded steps need at least one band")
	}
	if !isFinite(deadzone) || deadzone < 0 {
		return nil, configErrorf("deadzone must be a non-negative number, got %v", deadzone)
	}
	if !isFinite(outerRadius) || outerRadius < 0 {
		return nil, configErrorf("outer radius must be a non-negative number, got %v", outerRadius)
	}
	b := &BandedSteps{
		steps:     make([]float64, len(steps)),
		outer:     outerRadius,
		bandWidth: math.Max(outerRadius-deadzone, 0) / float64(len(steps)),
	}
	for i, s := range steps {
		if err := validateStep(s); err != nil {
			return nil, err
		}
		b.steps[i] = s
		b.precision = max(b.precision, decimalPlaces(s))
	}
	return b, nil
}

// Band returns the index of the band under a pointer at distance, counted from
// the outer edge inward and clamped to the configured bands.
func (b *BandedSteps) Band(distance float64) int {
	if b.bandWidth <= 0 {
		return 0
	}
	i := int(math.Floor((b.outer - distance) / b.bandWidth))
	return min(max(i, 0), len(b.steps)-1)
}

// Step implements StepPolicy.
func (b *BandedSteps) Step(distance float64) float64 {
	return b.steps[b.Band(distance)]
}

// Precision implements StepPolicy.
func (b *BandedSteps) Precision() int { return b.precision }

// Tick implements StepPolicy.
func (b *BandedSteps) Tick() float64 {
	t := b.steps[0]
	for _, s := range b.steps[1:] {
		t = math.Max(t, s)
	}
	return t
}

// Bands returns the number of configured bands.
func (b *BandedSteps) Bands() int { return len(b.steps) }

func validateStep(step float64) error {
	if !isFinite(step) || step <= 0 {
		return configErrorf("step must be a positive number, got %v", step)
	}
	return nil
}

// decimalPlaces counts the fractional digits in the shortest decimal
// representation of v (0.25 -> 2, 5 -> 0).
func decimalPlaces(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
