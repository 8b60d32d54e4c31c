package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/allada/pconcat/errors"
	"github.com/allada/pconcat/source/s3"
)

// envPrefix namespaces every environment variable the loader reads, e.g.
// PCONCAT_PARALLEL, PCONCAT_LOGGING_LEVEL, PCONCAT_S3_REGION.
const envPrefix = "PCONCAT"

// Load builds the run configuration for a named binary from, in order of
// precedence: command-line flags, PCONCAT_* environment variables (a .env
// file in the working directory is loaded first), and built-in defaults.
// The single optional positional argument is the output file path.
func Load(name string, args []string) (*Config, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.IntP("parallel", "p", DefaultParallel, "maximum tasks in flight at once")
	fs.StringP("buffer-size", "b", DefaultBufferSize, "per-task buffer budget (KB/MB/GB suffixes)")
	fs.String("chunk-size", DefaultChunkSize, "read chunk size (KB/MB/GB suffixes)")
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error, fatal)")
	version := fs.BoolP("version", "V", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [output-file]\n\nReads one record per line on stdin; writes concatenated task output\nto output-file, or to stdout when omitted.\n\n", name)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil, err
		}
		return nil, errors.InvalidConfig(err.Error())
	}
	if fs.NArg() > 1 {
		return nil, errors.InvalidConfig("expected at most one output file argument")
	}

	loadDotEnv()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("logging.timestamp", true)
	v.SetDefault("s3.region", s3.DefaultRegion)
	v.SetDefault("s3.request_payer", true)

	// Unmarshal only sees keys viper already knows about, so every key
	// without a flag binding or default needs an explicit env binding.
	envKeys := []string{
		"logging.no_color",
		"s3.endpoint",
		"s3.access_key",
		"s3.secret_key",
		"s3.force_path_style",
	}
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, errors.Internal(err)
		}
	}

	bindings := map[string]string{
		"parallel":      "parallel",
		"buffer_size":   "buffer-size",
		"chunk_size":    "chunk-size",
		"logging.level": "log-level",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, errors.Internal(err)
		}
	}

	cfg := &Config{}
	// Environment variables arrive as strings; decode them into typed
	// fields the same way flag values are.
	weakly := func(dc *mapstructure.DecoderConfig) { dc.WeaklyTypedInput = true }
	if err := v.Unmarshal(cfg, weakly); err != nil {
		return nil, errors.InvalidConfig("cannot parse configuration").WithCause(err)
	}
	cfg.OutputFile = fs.Arg(0)
	cfg.Version = *version

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDotEnv loads a .env file from the working directory when present.
// Existing environment variables are never overridden.
func loadDotEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "[config] warning: failed to load .env: %v\n", err)
	}
}
