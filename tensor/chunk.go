package tensor

// Range is a half-open interval [Lo, Hi) of indices along an array axis.
type Range struct {
	Lo int
	Hi int
}

// length of the interval
func (r Range) Len() int {
	return r.Hi - r.Lo
}

// Chunks tiles [0, n) into consecutive ranges of at most size indices each.
// Every index is covered exactly once and only the last range may be
// shorter than size.
func Chunks(n, size int) []Range {
	if n < 0 || size <= 0 {
		panic(ErrBadShape)
	}
	ranges := make([]Range, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		ranges = append(ranges, Range{Lo: lo, Hi: hi})
	}
	return ranges
}
