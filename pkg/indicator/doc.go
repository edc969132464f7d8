// Package indicator holds the contract shared by the batch indicators in the trend,
// momentum, volatility and volume packages.
//
// An indicator is constructed with its input series and parameters. Calculate validates the
// inputs, computes the full output and memoizes it; later calls return the cached series
// until Reset replaces the inputs. Inputs are copied when stored. Returned series are the
// cached values themselves and must not be modified by the caller.
//
// Indicator instances are not safe for concurrent use: callers must serialize Reset and
// Calculate on the same instance.
//
// Warm-up positions, where there is not enough history for a value, are 0.
package indicator

import "github.com/sirupsen/logrus"

var log = logrus.WithField("component", "indicator")
