package config

import (
	"github.com/allada/pconcat/errors"
	"github.com/allada/pconcat/logger"
	"github.com/allada/pconcat/source/s3"
	"github.com/allada/pconcat/util"
	"github.com/allada/pconcat/validation"
)

// Default values for run configuration.
const (
	DefaultParallel   = 16
	DefaultBufferSize = "1GB"
	DefaultChunkSize  = "2MB"
)

// Config holds the full configuration for one run.
type Config struct {
	// Parallel is the maximum number of tasks in flight at once.
	Parallel int `mapstructure:"parallel" validate:"gte=1,lte=4096"`

	// BufferSize is the per-task buffer budget as a human-readable size
	// ("1GB", "512MB", plain bytes).
	BufferSize string `mapstructure:"buffer_size" validate:"required"`

	// ChunkSize is the read chunk size as a human-readable size.
	ChunkSize string `mapstructure:"chunk_size" validate:"required"`

	// OutputFile is the destination path. Empty means standard output,
	// with the zero-copy path when stdout is a pipe.
	OutputFile string `mapstructure:"output_file"`

	// Version requests printing the build version instead of running.
	Version bool `mapstructure:"-"`

	Logging logger.Config `mapstructure:"logging"`
	S3      s3.Config     `mapstructure:"s3"`

	// BufferBytes and ChunkBytes are the parsed sizes, filled by Validate.
	BufferBytes int64 `mapstructure:"-"`
	ChunkBytes  int64 `mapstructure:"-"`
}

// ApplyDefaults fills zero-valued fields with run defaults. Parallel is
// deliberately left alone so an explicit zero is rejected by Validate
// instead of being silently replaced.
func (c *Config) ApplyDefaults() {
	if c.BufferSize == "" {
		c.BufferSize = DefaultBufferSize
	}
	if c.ChunkSize == "" {
		c.ChunkSize = DefaultChunkSize
	}
	c.Logging.ApplyDefaults()
	c.S3.ApplyDefaults()
}

// Validate checks the configuration and resolves the size strings into
// byte counts.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.InvalidConfig(err.Error())
	}
	if err := c.S3.Validate(); err != nil {
		return errors.InvalidConfig(err.Error())
	}

	var err error
	if c.BufferBytes, err = util.ParseSize(c.BufferSize); err != nil {
		return errors.InvalidConfig("buffer_size: " + err.Error())
	}
	if c.ChunkBytes, err = util.ParseSize(c.ChunkSize); err != nil {
		return errors.InvalidConfig("chunk_size: " + err.Error())
	}
	if c.ChunkBytes < 1 {
		return errors.InvalidConfig("chunk_size must be at least 1 byte")
	}
	if c.BufferBytes < c.ChunkBytes {
		return errors.InvalidConfig("buffer_size must be at least one chunk_size")
	}
	return nil
}
