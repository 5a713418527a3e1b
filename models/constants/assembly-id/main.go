package assemblyId

import (
	"strings"

	"tcvariant/models/constants"
)

const (
	Unknown constants.AssemblyId = "Unknown"

	GRCh38 constants.AssemblyId = "GRCh38"
	GRCh37 constants.AssemblyId = "GRCh37"
)

func CastToAssemblyId(text string) constants.AssemblyId {
	switch strings.ToLower(text) {
	case "grch38":
		return GRCh38
	case "grch37":
		return GRCh37
	default:
		return Unknown
	}
}

// FromAccessionVersion maps the version suffix of a RefSeq chromosome
// accession (NC_000006.12) to the assembly it belongs to.
func FromAccessionVersion(version string) constants.AssemblyId {
	switch version {
	case "12":
		return GRCh38
	case "11":
		return GRCh37
	default:
		return Unknown
	}
}
