// Package momentum implements the oscillators: rate of change, RSI, the stochastic
// oscillator, money flow index, true strength index, ultimate oscillator, Williams %R and
// the know sure thing oscillator.
package momentum

import "github.com/sirupsen/logrus"

var log = logrus.WithField("indicator", "momentum")
