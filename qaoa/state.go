package qaoa

import (
	"math"

	"github.com/katalvlaran/maxcut/cluster"
)

// UniformSuperposition sets every entry of amp to 1/√(2^n), the usual QAOA
// starting state. It touches only the local shard and needs no collective.
func UniformSuperposition[C cluster.Amplitude](amp *cluster.Vector[C]) {
	a := C(complex(1/math.Sqrt(float64(amp.GlobalSize())), 0))
	psi := amp.Local()
	for i := range psi {
		psi[i] = a
	}
}
