package scenario

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/VicenteB97/randomLift/pkg/types"
)

// ConstantSource returns each quantity's nominal value.
type ConstantSource struct{}

func (ConstantSource) Value(_ types.Quantity, r Range) float64 {
	return r.Nominal
}

// UniformSource draws each quantity independently from the uniform
// distribution over its range. Fixed ranges return the nominal value
// without consuming randomness. It is not safe for concurrent use.
type UniformSource struct {
	src rand.Source
}

// NewUniformSource creates a UniformSource seeded deterministically.
func NewUniformSource(seed uint64) *UniformSource {
	return &UniformSource{src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
}

func (u *UniformSource) Value(_ types.Quantity, r Range) float64 {
	if r.IsFixed() {
		return r.Nominal
	}
	return distuv.Uniform{Min: r.Low, Max: r.High, Src: u.src}.Rand()
}
