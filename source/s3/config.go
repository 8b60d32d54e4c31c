package s3

import "errors"

// DefaultRegion is the default AWS region.
const DefaultRegion = "us-east-1"

// Config holds S3 client configuration.
type Config struct {
	// Region is the AWS region.
	Region string `mapstructure:"region"`

	// Endpoint is a custom S3-compatible endpoint (e.g. MinIO).
	Endpoint string `mapstructure:"endpoint"`

	// AccessKey is the AWS access key ID. Optional; the default AWS
	// credential chain applies when unset.
	AccessKey string `mapstructure:"access_key"`

	// SecretKey is the AWS secret access key.
	SecretKey string `mapstructure:"secret_key"`

	// ForcePathStyle forces path-style URLs instead of virtual-hosted-style.
	ForcePathStyle bool `mapstructure:"force_path_style"`

	// RequestPayer asks S3 to bill the requester for the transfer.
	RequestPayer bool `mapstructure:"request_payer"`
}

// ApplyDefaults fills in zero-valued fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
}

// Validate checks that the S3 configuration is valid.
func (c *Config) Validate() error {
	if (c.AccessKey == "") != (c.SecretKey == "") {
		return errors.New("s3: access_key and secret_key must be set together")
	}
	return nil
}
