// Package trend implements the moving averages every other indicator builds on
// (SMA, WMA, EMA) together with the trend indicators derived from them:
// TRIX, MACD, ADX, CCI, DPO, Mass Index and the Vortex indicator.
package trend

import "github.com/sirupsen/logrus"

var log = logrus.WithField("indicator", "trend")
