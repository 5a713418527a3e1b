package models

import (
	"strconv"

	"tcvariant/models/constants"
)

// TsvHeaders is the fixed column order of the annotation output.
var TsvHeaders = []string{
	"variant",
	"assembly_name",
	"seq_region_name",
	"start",
	"end",
	"most_severe_consequence",
	"strand",
	"gene_symbols",
}

type AnnotationRecord struct {
	Variant               string `mapstructure:"variant"`
	AssemblyName          string `mapstructure:"assembly_name"`
	SeqRegionName         string `mapstructure:"seq_region_name"`
	Start                 int64  `mapstructure:"start"`
	End                   int64  `mapstructure:"end"`
	MostSevereConsequence string `mapstructure:"most_severe_consequence"`
	Strand                int    `mapstructure:"strand"`
	GeneSymbols           string `mapstructure:"gene_symbols"`
}

// Row renders the record in TsvHeaders order.
func (r AnnotationRecord) Row() []string {
	return []string{
		r.Variant,
		r.AssemblyName,
		r.SeqRegionName,
		strconv.FormatInt(r.Start, 10),
		strconv.FormatInt(r.End, 10),
		r.MostSevereConsequence,
		strconv.Itoa(r.Strand),
		r.GeneSymbols,
	}
}

type TranscriptConsequence struct {
	GeneSymbol string `mapstructure:"gene_symbol"`
}

// VepResult is the subset of an Ensembl VEP annotation object that gets
// carried into an AnnotationRecord.
type VepResult struct {
	AssemblyName           string                  `mapstructure:"assembly_name"`
	SeqRegionName          string                  `mapstructure:"seq_region_name"`
	Start                  int64                   `mapstructure:"start"`
	End                    int64                   `mapstructure:"end"`
	MostSevereConsequence  string                  `mapstructure:"most_severe_consequence"`
	Strand                 int                     `mapstructure:"strand"`
	TranscriptConsequences []TranscriptConsequence `mapstructure:"transcript_consequences"`
}

type VariantId struct {
	Raw              string
	Accession        string
	AccessionVersion string
	Chromosome       string
	AssemblyId       constants.AssemblyId
	Position         int64
	Reference        string
	Alternate        string
}
