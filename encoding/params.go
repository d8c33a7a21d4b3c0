package encoding

import (
	"fmt"
	"math"
)

// Params holds the scaling parameters stored in a channel record.
type Params struct {
	Shift      int16
	Multiplier int16
	Scale      int16
	Decimals   int16
}

// IdentityParams leaves samples unchanged.
var IdentityParams = Params{Shift: 0, Multiplier: 1, Scale: 1, Decimals: 0}

// Validate checks that the parameters describe an invertible transform.
func (p Params) Validate() error {
	if p.Multiplier == 0 {
		return fmt.Errorf("invalid multiplier: %d", p.Multiplier)
	}
	if p.Scale == 0 {
		return fmt.Errorf("invalid scale: %d", p.Scale)
	}

	return nil
}

// IsIdentity reports whether Transform returns its input unchanged.
func (p Params) IsIdentity() bool {
	return p == IdentityParams
}

// Transform maps a physical value to the value stored on disk.
func (p Params) Transform(v float64) float64 {
	if p.IsIdentity() {
		return v
	}

	return ((v / float64(p.Multiplier)) - float64(p.Shift)) * float64(p.Scale) / math.Pow(10, -float64(p.Decimals))
}
