package cmdutil

import (
	"time"

	"github.com/pkg/errors"

	"github.com/c9s/bbta/pkg/config"
	"github.com/c9s/bbta/pkg/datasource/csvsource"
)

// LoadBars reads the bars of a csv file or of every csv file under a directory.
func LoadBars(path, format string, interval time.Duration) (csvsource.Bars, error) {
	if path == "" {
		return nil, errors.New("a bar file is required")
	}

	maker, err := csvsource.ReaderByName(format)
	if err != nil {
		return nil, err
	}

	bars, err := csvsource.ReadBarsFromCSVWithDecoder(path, interval, maker)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load bars")
	}

	if len(bars) == 0 {
		return nil, errors.Errorf("no bars found in %s", path)
	}

	return bars, nil
}

// LoadConfig loads the preset file, or returns the defaults when configFile is empty.
func LoadConfig(configFile string) (*config.Config, error) {
	if configFile == "" {
		return config.Default(), nil
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", configFile)
	}

	return cfg, nil
}
