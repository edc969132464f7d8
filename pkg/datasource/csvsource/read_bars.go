package csvsource

import (
	"encoding/csv"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "csvsource")

// ReadBarsFromCSV reads all the .csv files in a given directory or a single file into Bars.
// Wraps a default CSVBarReader with Binance decoder for convenience.
func ReadBarsFromCSV(path string, interval time.Duration) (Bars, error) {
	return ReadBarsFromCSVWithDecoder(path, interval, MakeCSVBarReader(NewBinanceCSVBarReader))
}

// ReadBarsFromCSVWithDecoder permits using a custom CSVBarReader. Files are read in lexical
// order and the bars are sorted by start time.
func ReadBarsFromCSVWithDecoder(path string, interval time.Duration, maker MakeCSVBarReader) (Bars, error) {
	var bars Bars

	err := filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".csv" {
			log.Debugf("skipping %s", path)
			return nil
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		//nolint:errcheck // Read ops only so safe to ignore err return
		defer file.Close()

		newBars, err := maker(csv.NewReader(file)).ReadAll(interval)
		if err != nil {
			return errors.Wrapf(err, "unable to read bars from %s", path)
		}

		log.Debugf("read %d bars from %s", len(newBars), path)
		bars = append(bars, newBars...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].StartTime.Before(bars[j].StartTime)
	})
	return bars, nil
}
