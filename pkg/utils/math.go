package utils

const (
	bitSize       = 32 << (^uint(0) >> 63)
	maxIntHeadBit = 1 << (bitSize - 2)

	// minGrowCapacity is the capacity an empty backing array grows to.
	minGrowCapacity = 1
)

// IsPowerOfTwo reports whether the given n is a power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// CeilToPowerOfTwo returns n if it is a power-of-two, otherwise the next-highest power-of-two.
// Values of n up to 2 return 2.
func CeilToPowerOfTwo(n int) int {
	if n&maxIntHeadBit != 0 && n > maxIntHeadBit {
		panic("argument is too large")
	}

	if n <= 2 {
		return 2
	}

	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	n++

	return n
}

// GrowCapacity returns the doubled capacity for a full backing array of size n.
// Doubling zero would never make room, so an empty array grows to minGrowCapacity.
func GrowCapacity(n int) int {
	if n <= 0 {
		return minGrowCapacity
	}
	if n >= maxIntHeadBit {
		panic("capacity is too large to grow")
	}
	return n << 1
}

// ClampNonNegative returns n, or 0 if n is negative.
func ClampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
