package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Stash map[string]interface{}

func loadStash(data []byte) (Stash, error) {
	stash := make(Stash)
	if err := yaml.Unmarshal(data, &stash); err != nil {
		return nil, errors.Wrap(err, "yaml parsing error")
	}

	return stash, nil
}

// Load reads a YAML preset file and overlays it onto the defaults.
func Load(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read config file %s", configFile)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load config file %s", configFile)
	}

	return config, nil
}

// Parse overlays a YAML document onto the defaults. Sections and fields missing from the
// document keep their default values; unknown sections are rejected.
func Parse(data []byte) (*Config, error) {
	config := Default()

	stash, err := loadStash(data)
	if err != nil {
		return nil, err
	}

	sections := config.sections()
	for id, conf := range stash {
		target, ok := sections[id]
		if !ok {
			return nil, errors.Errorf("unknown config section: %s", id)
		}

		if err := reUnmarshal(conf, target); err != nil {
			return nil, errors.Wrapf(err, "section %s", id)
		}
	}

	return config, nil
}

// reUnmarshal decodes a generic YAML value into target by way of JSON, so the settings only
// need one set of decoding rules.
func reUnmarshal(conf interface{}, target interface{}) error {
	plain, err := json.Marshal(conf)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(plain, target); err != nil {
		return errors.Wrapf(err, "json parsing error, given payload: %s", plain)
	}

	return nil
}

// Marshal encodes the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
