package config

import (
	"os"
	"strings"

	"github.com/habiliai/perplexity-mcp/errors"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
)

// Load builds a Config from defaults, the working directory's .env, the
// optional envFiles, and finally the process environment. Later sources win.
func Load(envFiles ...string) (*Config, error) {
	conf := NewConfig()
	if err := resolveConfig(conf, environ(), envFiles...); err != nil {
		return nil, err
	}

	return conf, nil
}

func resolveConfig[T any](config *T, env map[string]string, envFiles ...string) error {
	if config == nil {
		return errors.New("config is nil")
	}

	values := map[string]string{}

	files := []string{}
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		files = append(files, ".env")
	}
	files = append(files, envFiles...)

	for _, filename := range files {
		if filename == "" {
			continue
		}
		fileValues, err := godotenv.Read(filename)
		if err != nil {
			return errors.Wrapf(err, "failed to read env file %s", filename)
		}
		for k, v := range fileValues {
			if v != "" {
				values[k] = v
			}
		}
	}

	for k, v := range env {
		if v != "" {
			values[k] = v
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "env",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		Result:           config,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to create config decoder")
	}

	if err := decoder.Decode(values); err != nil {
		return errors.Wrapf(err, "failed to load config")
	}

	return nil
}

func environ() map[string]string {
	env := map[string]string{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[k] = v
	}
	return env
}
