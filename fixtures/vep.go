package fixtures

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/labstack/echo"
)

const (
	SampleVariant        = "NC_000006.12:g.152387156G>A"
	SecondSampleVariant  = "NC_000017.11:g.41197701G>C"
	VepPathWithParameter = "/vep/human/hgvs/:variant"
	VepRootPath          = "/vep/human/hgvs"
)

type (
	Response struct {
		Status int
		Body   interface{}
	}

	// FakeVep serves canned Ensembl VEP responses keyed by variant and
	// records how it was called.
	FakeVep struct {
		Server *httptest.Server

		mux          sync.Mutex
		responses    map[string]Response
		hits         map[string]int
		contentTypes []string
	}
)

// SampleAnnotation mirrors the shape of a single element of the VEP
// /vep/human/hgvs response, trimmed to what gets extracted.
func SampleAnnotation(geneSymbols ...string) map[string]interface{} {
	consequences := []interface{}{}
	for i, symbol := range geneSymbols {
		consequences = append(consequences, map[string]interface{}{
			"gene_symbol":   symbol,
			"transcript_id": fmt.Sprintf("ENST%011d", i+1),
			"consequence_terms": []interface{}{
				"missense_variant",
			},
		})
	}

	return map[string]interface{}{
		"input":                   SampleVariant,
		"assembly_name":           "GRCh38",
		"seq_region_name":         "6",
		"start":                   152387156,
		"end":                     152387156,
		"strand":                  1,
		"allele_string":           "G/A",
		"most_severe_consequence": "missense_variant",
		"transcript_consequences": consequences,
	}
}

func Ok(annotations ...interface{}) Response {
	if annotations == nil {
		annotations = []interface{}{}
	}
	return Response{Status: http.StatusOK, Body: annotations}
}

func Error(status int, message string) Response {
	return Response{Status: status, Body: map[string]interface{}{"error": message}}
}

func NewFakeVep(responses map[string]Response) *FakeVep {
	f := &FakeVep{
		responses: responses,
		hits:      map[string]int{},
	}

	e := echo.New()
	e.GET(VepPathWithParameter, func(c echo.Context) error {
		variant, err := url.PathUnescape(c.Param("variant"))
		if err != nil {
			variant = c.Param("variant")
		}

		f.mux.Lock()
		f.hits[variant]++
		f.contentTypes = append(f.contentTypes, c.Request().Header.Get("Content-Type"))
		response, known := f.responses[variant]
		f.mux.Unlock()

		if !known {
			response = Error(http.StatusBadRequest, "Unable to parse HGVS notation '"+variant+"'")
		}
		return c.JSON(response.Status, response.Body)
	})

	f.Server = httptest.NewServer(e)
	return f
}

func (f *FakeVep) Url() string {
	return f.Server.URL + VepRootPath
}

func (f *FakeVep) Hits(variant string) int {
	f.mux.Lock()
	defer f.mux.Unlock()
	return f.hits[variant]
}

func (f *FakeVep) TotalHits() int {
	f.mux.Lock()
	defer f.mux.Unlock()
	total := 0
	for _, n := range f.hits {
		total += n
	}
	return total
}

func (f *FakeVep) ContentTypes() []string {
	f.mux.Lock()
	defer f.mux.Unlock()
	return append([]string(nil), f.contentTypes...)
}

func (f *FakeVep) Close() {
	f.Server.Close()
}
