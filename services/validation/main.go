package validation

import (
	"regexp"
	"strconv"

	"tcvariant/models"
	assemblyId "tcvariant/models/constants/assembly-id"
	"tcvariant/models/constants/chromosome"
	e "tcvariant/models/errors"
)

// Matches HGVS genomic substitutions on RefSeq chromosome accessions,
// ex. NC_000006.12:g.152387156G>A
var variantPattern = regexp.MustCompile(`^(NC_\d{6})\.(11|12):g\.(\d{8,9})([ACGT])>([ACGT])$`)

func IsValid(variant string) bool {
	return variantPattern.MatchString(variant)
}

func Parse(variant string) (models.VariantId, error) {
	matches := variantPattern.FindStringSubmatch(variant)
	if matches == nil {
		return models.VariantId{}, &e.ValidationError{Variant: variant}
	}

	// the pattern caps the position at 9 digits, so this cannot overflow
	position, _ := strconv.ParseInt(matches[3], 10, 64)

	return models.VariantId{
		Raw:              variant,
		Accession:        matches[1],
		AccessionVersion: matches[2],
		Chromosome:       chromosome.FromRefSeqAccession(matches[1]),
		AssemblyId:       assemblyId.FromAccessionVersion(matches[2]),
		Position:         position,
		Reference:        matches[4],
		Alternate:        matches[5],
	}, nil
}
