package parser

import "math"

// Natural parses an unsigned decimal integer. Values above math.MaxUint32
// fail with a NumericOverflow FatalError.
func Natural() Parser[uint32] {
	return MapErr(Some(Digit()), assemble)
}

func assemble(digits []rune) (uint32, error) {
	var n uint64
	for _, d := range digits {
		n = n*10 + uint64(d-'0')
		if n > math.MaxUint32 {
			return 0, &FatalError{
				Kind:   NumericOverflow,
				Detail: string(digits) + " does not fit in 32 bits",
			}
		}
	}
	return uint32(n), nil
}
