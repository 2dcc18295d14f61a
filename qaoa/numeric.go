package qaoa

import (
	"context"
	"fmt"

	"github.com/katalvlaran/maxcut/cluster"
)

// Real is the result precision of a reduction; pair float64 with complex128
// amplitudes and float32 with complex64.
type Real interface {
	~float32 | ~float64
}

// probability returns |c|² in float64.
func probability[C cluster.Amplitude](c C) float64 {
	z := complex128(c)
	re, im := real(z), imag(z)

	return re*re + im*im
}

// costValue returns the cut value stored in the real part of a cost entry.
func costValue[C cluster.Amplitude](c C) float64 {
	return real(complex128(c))
}

// checkPair validates that amp and cost describe the same distributed layout.
func checkPair[C cluster.Amplitude](method string, amp, cost *cluster.Vector[C]) error {
	if amp == nil || cost == nil {
		return fmt.Errorf("%s: %w", method, ErrNilVector)
	}
	if amp.LocalSize() != cost.LocalSize() || amp.GlobalSize() != cost.GlobalSize() {
		return fmt.Errorf("%s: local %d vs %d, global %d vs %d: %w", method,
			amp.LocalSize(), cost.LocalSize(), amp.GlobalSize(), cost.GlobalSize(), ErrSizeMismatch)
	}

	return nil
}

// agree makes every rank learn whether any rank failed locally. It costs one
// AllReduceMaxInt on multi-rank groups and must be reached by every rank.
// The local error wins; ranks that succeeded return ErrPeerFailed.
func agree(ctx context.Context, comm cluster.Comm, method string, local error) error {
	if comm.Size() == 1 {
		return local
	}
	flag := 0
	if local != nil {
		flag = 1
	}
	failed, err := comm.AllReduceMaxInt(ctx, flag)
	if local != nil {
		return local
	}
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if failed != 0 {
		return fmt.Errorf("%s: rank %d: %w", method, comm.Rank(), ErrPeerFailed)
	}

	return nil
}
