package extraction

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"tcvariant/models"
	"tcvariant/models/constants/strand"
	e "tcvariant/models/errors"

	"github.com/Jeffail/gabs"
	linq "github.com/ahmetb/go-linq"
	"github.com/mitchellh/mapstructure"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrNullField    = errors.New("required field is null")
	ErrNoData       = errors.New("no annotation data")

	requiredFields = []string{
		"assembly_name",
		"seq_region_name",
		"start",
		"end",
		"most_severe_consequence",
		"strand",
		"transcript_consequences",
	}
	integerFields = []string{"start", "end", "strand"}
)

// Extract builds an AnnotationRecord from a single VEP annotation object.
// Gene symbols across all transcript consequences are de-duplicated,
// keeping the order in which they were first seen.
func Extract(variant string, data *gabs.Container) (models.AnnotationRecord, error) {
	extractErr := func(field string, err error) (models.AnnotationRecord, error) {
		return models.AnnotationRecord{}, &e.ExtractError{Variant: variant, Field: field, Err: err}
	}

	if data == nil || data.Data() == nil {
		return extractErr("", ErrNoData)
	}
	if _, isObject := data.Data().(map[string]interface{}); !isObject {
		return extractErr("", fmt.Errorf("expected a json object, got %T", data.Data()))
	}

	for _, field := range requiredFields {
		if !data.Exists(field) {
			return extractErr(field, ErrMissingField)
		}
		if data.S(field).Data() == nil {
			return extractErr(field, ErrNullField)
		}
	}

	// mapstructure truncates floats into int fields
	for _, field := range integerFields {
		if err := checkIntegral(data.S(field).Data()); err != nil {
			return extractErr(field, err)
		}
	}

	consequences := data.S("transcript_consequences")
	consequenceList, isArray := consequences.Data().([]interface{})
	if !isArray {
		return extractErr("transcript_consequences", fmt.Errorf("expected an array, got %T", consequences.Data()))
	}
	for i := range consequenceList {
		field := fmt.Sprintf("transcript_consequences[%d].gene_symbol", i)
		if !consequences.Index(i).Exists("gene_symbol") {
			return extractErr(field, ErrMissingField)
		}
		if consequences.Index(i).S("gene_symbol").Data() == nil {
			return extractErr(field, ErrNullField)
		}
	}

	var result models.VepResult
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnset: true,
		Result:     &result,
	})
	if err != nil {
		return extractErr("", err)
	}
	if err := decoder.Decode(data.Data()); err != nil {
		return extractErr("", err)
	}

	if !strand.IsValidStrand(result.Strand) {
		return extractErr("strand", fmt.Errorf("expected 1 or -1, got %d", result.Strand))
	}

	var geneSymbols []string
	linq.From(result.TranscriptConsequences).
		SelectT(func(tc models.TranscriptConsequence) string { return tc.GeneSymbol }).
		Distinct().
		ToSlice(&geneSymbols)

	return models.AnnotationRecord{
		Variant:               variant,
		AssemblyName:          result.AssemblyName,
		SeqRegionName:         result.SeqRegionName,
		Start:                 result.Start,
		End:                   result.End,
		MostSevereConsequence: result.MostSevereConsequence,
		Strand:                result.Strand,
		GeneSymbols:           strings.Join(geneSymbols, ","),
	}, nil
}

func checkIntegral(value interface{}) error {
	if f, isFloat := value.(float64); isFloat && f != math.Trunc(f) {
		return fmt.Errorf("expected an integer, got %v", f)
	}
	return nil
}
