package ensembl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"tcvariant/models"
	e "tcvariant/models/errors"

	"github.com/Jeffail/gabs"
)

type (
	// Client retrieves VEP annotations for HGVS notated variants,
	// ex. http://rest.ensembl.org/vep/human/hgvs/NC_000006.12:g.152387156G>A
	Client struct {
		rootUrl    string
		httpClient *http.Client
	}
)

func NewClient(cfg *models.Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		rootUrl:    strings.TrimRight(cfg.Ensembl.Url, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) VariantUrl(variant string) string {
	return fmt.Sprintf("%s/%s", c.rootUrl, url.PathEscape(variant))
}

// Fetch performs a single GET for the variant and returns the first
// annotation object of the response array.
func (c *Client) Fetch(ctx context.Context, variant string) (*gabs.Container, error) {
	variantUrl := c.VariantUrl(variant)
	fetchErr := func(statusCode int, message string, err error) error {
		return &e.FetchError{
			Variant:    variant,
			Url:        variantUrl,
			StatusCode: statusCode,
			Message:    message,
			Err:        err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, variantUrl, nil)
	if err != nil {
		return nil, fetchErr(0, "", err)
	}
	req.Header.Add("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fetchErr(0, "", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fetchErr(res.StatusCode, "", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		message := errorPayloadMessage(body)
		if message == "" {
			message = res.Status
		}
		return nil, fetchErr(res.StatusCode, message, nil)
	}

	jsonParsed, err := gabs.ParseJSON(body)
	if err != nil {
		return nil, fetchErr(res.StatusCode, "response is not valid json", err)
	}

	results, isArray := jsonParsed.Data().([]interface{})
	if !isArray {
		return nil, fetchErr(res.StatusCode, "expected a json array of annotations", nil)
	}
	if len(results) == 0 {
		return nil, fetchErr(res.StatusCode, "no annotations returned", nil)
	}

	return jsonParsed.Index(0), nil
}

// errorPayloadMessage surfaces Ensembl's {"error": "..."} body, falling
// back to the raw body text.
func errorPayloadMessage(body []byte) string {
	if jsonParsed, err := gabs.ParseJSON(body); err == nil {
		if msg, ok := jsonParsed.Path("error").Data().(string); ok {
			return msg
		}
	}
	return strings.TrimSpace(string(body))
}
