// Package visgraph converts time series into visibility graphs and compares two series by
// the rank correlation of their horizontal visibility graph degrees over a range of
// coarse-graining scales.
//
// References:
//
//	L. Lacasa, B. Luque, F. Ballesteros, J. Luque and J. C. Nuno, "From time series to complex
//	networks: The visibility graph", PNAS 105, 4972-4975 (2008)
//
//	X. Lan, H. Mo, S. Chen, Q. Liu and Y. Deng, "Fast transformation from time series to
//	visibility graphs", Chaos 25, 083105 (2015)
package visgraph

import "github.com/sirupsen/logrus"

var log = logrus.WithField("component", "visgraph")
