// Package volume implements the indicators that combine price and volume: the
// accumulation/distribution line, ease of movement, force index, negative volume index,
// on-balance volume and the put/call ratio.
package volume

import (
	"github.com/sirupsen/logrus"

	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
)

var log = logrus.WithField("indicator", "volume")

// priceVolumeChecks returns the checks shared by the indicators that take close and volume series.
func priceVolumeChecks(prices, volume floats.Slice) []error {
	return []error{
		indicator.NotEmpty("prices", prices),
		indicator.NotEmpty("volume", volume),
		indicator.SameLength([]string{"prices", "volume"}, prices, volume),
	}
}

// barVolumeChecks returns the checks shared by the indicators that take close, high, low and
// volume series.
func barVolumeChecks(prices, high, low, volume floats.Slice) []error {
	return []error{
		indicator.NotEmpty("prices", prices),
		indicator.NotEmpty("high", high),
		indicator.NotEmpty("low", low),
		indicator.NotEmpty("volume", volume),
		indicator.SameLength([]string{"prices", "high", "low", "volume"}, prices, high, low, volume),
	}
}
