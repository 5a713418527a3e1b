package chromosome

import (
	"fmt"
	"strconv"
	"strings"

	"tcvariant/utils"
)

// NC_012920 is the mitochondrial genome; NC_000023 and NC_000024 are X and Y.
const mitochondrialAccessionNumber = 12920

func ValidListOfHumanChromosomes() []string {
	var humChroms []string
	for i := 1; i < 23; i++ {
		humChroms = append(humChroms, fmt.Sprint(i))
	}
	humChroms = append(humChroms, "X")
	humChroms = append(humChroms, "Y")
	humChroms = append(humChroms, "MT")
	return humChroms
}

func IsValidHumanChromosome(text string) bool {
	normalized := strings.ToUpper(strings.TrimPrefix(strings.ToLower(text), "chr"))
	if normalized == "M" {
		normalized = "MT"
	}
	return utils.StringInSlice(normalized, ValidListOfHumanChromosomes())
}

// FromRefSeqAccession converts a chromosome accession such as NC_000006
// to its chromosome name ("6"). An empty string is returned for accessions
// that do not name a human chromosome.
func FromRefSeqAccession(accession string) string {
	digits := strings.TrimPrefix(strings.ToUpper(accession), "NC_")
	number, err := strconv.Atoi(digits)
	if err != nil {
		return ""
	}

	switch {
	case number == mitochondrialAccessionNumber:
		return "MT"
	case number == 23:
		return "X"
	case number == 24:
		return "Y"
	case number > 0 && number < 23:
		return fmt.Sprint(number)
	}
	return ""
}
