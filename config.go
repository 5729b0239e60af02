package main

import (
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/pkg/errors"

	"github.com/scratchmex/huawei-decode/internal/value"
)

// keyEnv overrides the value key when --key is not given.
const keyEnv = "HWDEC_KEY"

// Config is the resolved command line configuration.
type Config struct {
	Key     value.Key
	Verbose bool
	Silent  bool
}

// resolveKey picks the first non-empty of flagKey and envKey, falling back to the
// firmware default key.
func resolveKey(flagKey, envKey string) (value.Key, error) {
	for _, s := range []string{flagKey, envKey} {
		if s == "" {
			continue
		}
		k, err := value.ParseKey(s)
		if err != nil {
			return nil, errors.Wrap(err, "value key")
		}
		return k, nil
	}
	return value.DefaultKey, nil
}

func loadConfig(flagKey string, verbose, silent bool) (*Config, error) {
	key, err := resolveKey(flagKey, os.Getenv(keyEnv))
	if err != nil {
		return nil, err
	}
	return &Config{Key: key, Verbose: verbose, Silent: silent}, nil
}

func (c *Config) setupLogging(w io.Writer) {
	log.SetHandler(cli.New(w))
	switch {
	case c.Silent:
		log.SetLevel(log.FatalLevel)
	case c.Verbose:
		log.SetLevel(log.DebugLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}
