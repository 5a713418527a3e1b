package models

import "time"

const (
	DefaultEnsemblUrl     = "http://rest.ensembl.org/vep/human/hgvs"
	DefaultOutputFilename = "tc_variant_annotations.tsv"
	DefaultRequestTimeout = 30 * time.Second
)

type Config struct {
	Debug bool `yaml:"debug" envconfig:"TCVARIANT_DEBUG"`
	Api   struct {
		Output      string `yaml:"output" envconfig:"TCVARIANT_OUTPUT"`
		Concurrency int    `yaml:"concurrency" envconfig:"TCVARIANT_CONCURRENCY"`
	} `yaml:"api"`
	Ensembl struct {
		Url            string        `yaml:"url" envconfig:"TCVARIANT_ENSEMBL_URL"`
		RequestTimeout time.Duration `yaml:"requestTimeout" envconfig:"TCVARIANT_ENSEMBL_REQUEST_TIMEOUT"`
	} `yaml:"ensembl"`
}

// NewDefaultConfig returns the configuration used when neither a config
// file nor environment overrides are present.
func NewDefaultConfig() *Config {
	var cfg Config
	cfg.Api.Output = DefaultOutputFilename
	cfg.Api.Concurrency = 1
	cfg.Ensembl.Url = DefaultEnsemblUrl
	cfg.Ensembl.RequestTimeout = DefaultRequestTimeout
	return &cfg
}
