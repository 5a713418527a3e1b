package ensembl

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"tcvariant/fixtures"
	"tcvariant/models"
	e "tcvariant/models/errors"
	"tcvariant/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	cfg := models.NewDefaultConfig()
	cfg.Ensembl.Url = url
	cfg.Ensembl.RequestTimeout = 5 * time.Second
	return NewClient(cfg, utils.CreateEnsemblHttpClient(cfg))
}

func requireFetchError(t *testing.T, err error) *e.FetchError {
	t.Helper()
	require.Error(t, err)
	var fetchErr *e.FetchError
	require.True(t, errors.As(err, &fetchErr), "expected a FetchError, got %T", err)
	return fetchErr
}

func TestFetch(t *testing.T) {
	t.Run("should return the first annotation of the response", func(t *testing.T) {
		vep := fixtures.NewFakeVep(map[string]fixtures.Response{
			fixtures.SampleVariant: fixtures.Ok(fixtures.SampleAnnotation("SYNE1"), fixtures.SampleAnnotation("ESR1")),
		})
		defer vep.Close()

		data, err := newTestClient(vep.Url()).Fetch(context.Background(), fixtures.SampleVariant)
		require.NoError(t, err)

		assert.Equal(t, "GRCh38", data.Path("assembly_name").Data())
		assert.Equal(t, float64(152387156), data.Path("start").Data())
		assert.Equal(t, "SYNE1", data.S("transcript_consequences").Index(0).Path("gene_symbol").Data())

		assert.Equal(t, 1, vep.Hits(fixtures.SampleVariant))
		assert.Equal(t, []string{"application/json"}, vep.ContentTypes())
	})

	t.Run("should surface the error payload of a server error", func(t *testing.T) {
		vep := fixtures.NewFakeVep(map[string]fixtures.Response{
			fixtures.SampleVariant: fixtures.Error(http.StatusInternalServerError, "something went wrong"),
		})
		defer vep.Close()

		client := newTestClient(vep.Url())
		_, err := client.Fetch(context.Background(), fixtures.SampleVariant)

		fetchErr := requireFetchError(t, err)
		assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
		assert.Equal(t, "something went wrong", fetchErr.Message)
		assert.Equal(t, client.VariantUrl(fixtures.SampleVariant), fetchErr.Url)
		assert.Contains(t, err.Error(), "something went wrong")
	})

	t.Run("should surface the error payload of a bad request", func(t *testing.T) {
		vep := fixtures.NewFakeVep(map[string]fixtures.Response{})
		defer vep.Close()

		_, err := newTestClient(vep.Url()).Fetch(context.Background(), fixtures.SecondSampleVariant)

		fetchErr := requireFetchError(t, err)
		assert.Equal(t, http.StatusBadRequest, fetchErr.StatusCode)
		assert.Contains(t, fetchErr.Message, fixtures.SecondSampleVariant)
	})

	t.Run("should treat an empty result list as an error", func(t *testing.T) {
		vep := fixtures.NewFakeVep(map[string]fixtures.Response{
			fixtures.SampleVariant: fixtures.Ok(),
		})
		defer vep.Close()

		_, err := newTestClient(vep.Url()).Fetch(context.Background(), fixtures.SampleVariant)

		fetchErr := requireFetchError(t, err)
		assert.Equal(t, http.StatusOK, fetchErr.StatusCode)
	})

	t.Run("should treat a non list response as an error", func(t *testing.T) {
		vep := fixtures.NewFakeVep(map[string]fixtures.Response{
			fixtures.SampleVariant: {Status: http.StatusOK, Body: fixtures.SampleAnnotation("SYNE1")},
		})
		defer vep.Close()

		_, err := newTestClient(vep.Url()).Fetch(context.Background(), fixtures.SampleVariant)
		requireFetchError(t, err)
	})

	t.Run("should report transport failures without a status code", func(t *testing.T) {
		vep := fixtures.NewFakeVep(map[string]fixtures.Response{})
		url := vep.Url()
		vep.Close()

		_, err := newTestClient(url).Fetch(context.Background(), fixtures.SampleVariant)

		fetchErr := requireFetchError(t, err)
		assert.Equal(t, 0, fetchErr.StatusCode)
		assert.NotNil(t, fetchErr.Err)
	})

	t.Run("should honour context cancellation", func(t *testing.T) {
		vep := fixtures.NewFakeVep(map[string]fixtures.Response{
			fixtures.SampleVariant: fixtures.Ok(fixtures.SampleAnnotation("SYNE1")),
		})
		defer vep.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newTestClient(vep.Url()).Fetch(ctx, fixtures.SampleVariant)
		requireFetchError(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, 0, vep.TotalHits())
	})
}

func TestVariantUrl(t *testing.T) {
	client := newTestClient("http://rest.ensembl.org/vep/human/hgvs/")

	assert.Equal(t,
		"http://rest.ensembl.org/vep/human/hgvs/NC_000006.12:g.152387156G%3EA",
		client.VariantUrl(fixtures.SampleVariant))
}
