package utils

import (
	"errors"
	"fmt"
	"io"
	"os"

	"tcvariant/models"

	"github.com/kelseyhightower/envconfig"
	yaml "gopkg.in/yaml.v2"
)

// LoadConfig layers the optional yaml file at path and then the
// TCVARIANT_* environment variables over the defaults.
func LoadConfig(path string) (*models.Config, error) {
	cfg := models.NewDefaultConfig()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening config file: %w", err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		decoder.SetStrict(true)
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	if cfg.Api.Concurrency < 1 {
		cfg.Api.Concurrency = 1
	}

	return cfg, nil
}
