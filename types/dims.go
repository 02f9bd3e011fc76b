package types

import (
	"math"

	lverrors "github.com/wiresmithtech/labview-interop-go/errors"
)

// Dims is an array dimension vector using the host's signed 32-bit
// dimension type. Index 0 is the slowest-varying dimension.
type Dims []int32

// ElementCount returns the total element count across all dimensions,
// folding with multiplicative identity 1 so a 0-dimension vector counts as
// a scalar.
func (d Dims) ElementCount() int {
	count := 1
	for _, size := range d {
		count *= int(size)
	}
	return count
}

// Equal reports element-wise equality.
func (d Dims) Equal(other Dims) bool {
	if len(d) != len(other) {
		return false
	}
	for i, size := range d {
		if other[i] != size {
			return false
		}
	}
	return true
}

// DimsFromSizes converts host-agnostic sizes into a dimension vector of
// exactly the given arity.
//
// Fails with dimension-mismatch when len(sizes) != arity and with
// dimension-out-of-range when a size exceeds the positive range of the
// host's 32-bit dimension type.
func DimsFromSizes(arity int, sizes []uint64) (Dims, error) {
	if len(sizes) != arity {
		return nil, lverrors.DimensionMismatch(arity, len(sizes))
	}
	dims := make(Dims, arity)
	for i, size := range sizes {
		if size > math.MaxInt32 {
			return nil, lverrors.DimensionOutOfRange(size)
		}
		dims[i] = int32(size)
	}
	return dims, nil
}
