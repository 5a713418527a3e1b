package strand

import "tcvariant/models/constants"

const (
	Forward constants.Strand = 1
	Reverse constants.Strand = -1
)

func IsValidStrand(value int) bool {
	switch constants.Strand(value) {
	case Forward, Reverse:
		return true
	}
	return false
}
