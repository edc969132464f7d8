package config

import (
	"github.com/c9s/bbta/pkg/indicator"
	"github.com/c9s/bbta/pkg/indicator/momentum"
	"github.com/c9s/bbta/pkg/indicator/trend"
	"github.com/c9s/bbta/pkg/indicator/volatility"
	"github.com/c9s/bbta/pkg/visgraph"
)

type MovingAverageSettings struct {
	Type   indicator.MAType `json:"type" yaml:"type"`
	Period int              `json:"period" yaml:"period"`
}

// New returns the moving average selected by Type.
func (s MovingAverageSettings) New(prices []float64) indicator.SeriesCalculator {
	switch s.Type {
	case indicator.MATypeExponential:
		return trend.NewEMA(prices, s.Period)
	case indicator.MATypeWeighted:
		return trend.NewWMA(prices, s.Period)
	}
	return trend.NewSMA(prices, s.Period)
}

type MACDSettings struct {
	FastPeriod   int `json:"fastPeriod" yaml:"fastPeriod"`
	SlowPeriod   int `json:"slowPeriod" yaml:"slowPeriod"`
	SignalPeriod int `json:"signalPeriod" yaml:"signalPeriod"`
}

func (s MACDSettings) New(prices []float64) *trend.MACD {
	return trend.NewMACD(prices, s.FastPeriod, s.SlowPeriod, s.SignalPeriod)
}

type RSISettings struct {
	Period int `json:"period" yaml:"period"`
}

func (s RSISettings) New(prices []float64) *momentum.RSI {
	return momentum.NewRSI(prices, s.Period)
}

type StochSettings struct {
	KPeriod int `json:"kPeriod" yaml:"kPeriod"`
	DPeriod int `json:"dPeriod" yaml:"dPeriod"`
}

func (s StochSettings) New(prices, high, low []float64) *momentum.Stoch {
	return momentum.NewStoch(prices, high, low, s.KPeriod, s.DPeriod)
}

type BollingerSettings struct {
	Period int              `json:"period" yaml:"period"`
	MAType indicator.MAType `json:"maType" yaml:"maType"`
	NumStd float64          `json:"numStd" yaml:"numStd"`
}

func (s BollingerSettings) New(prices []float64) *volatility.BOLL {
	return volatility.NewBOLL(prices, s.Period, s.MAType, s.NumStd)
}

type KeltnerSettings struct {
	MAType    indicator.MAType `json:"maType" yaml:"maType"`
	MAPeriod  int              `json:"maPeriod" yaml:"maPeriod"`
	ATRPeriod int              `json:"atrPeriod" yaml:"atrPeriod"`
	NumATR    float64          `json:"numATR" yaml:"numATR"`
	ATRMAType indicator.MAType `json:"atrMAType" yaml:"atrMAType"`
}

func (s KeltnerSettings) New(prices, high, low []float64) *volatility.Keltner {
	return volatility.NewKeltner(prices, high, low, s.MAType, s.MAPeriod, s.ATRPeriod, s.NumATR, s.ATRMAType)
}

type KSTSettings struct {
	ROCPeriods   [4]int     `json:"rocPeriods" yaml:"rocPeriods,flow"`
	MAPeriods    [4]int     `json:"maPeriods" yaml:"maPeriods,flow"`
	Weights      [4]float64 `json:"weights" yaml:"weights,flow"`
	SignalPeriod int        `json:"signalPeriod" yaml:"signalPeriod"`
}

func (s KSTSettings) New(prices []float64) *momentum.KST {
	return momentum.NewKST(prices, s.ROCPeriods, s.MAPeriods, s.Weights, s.SignalPeriod)
}

type MultiscaleSettings struct {
	Timescale int `json:"timescale" yaml:"timescale"`
}

// Run correlates x and y over the configured number of scales.
func (s MultiscaleSettings) Run(x, y []float64) (*visgraph.MultiscaleResult, error) {
	return visgraph.Multiscale(x, y, s.Timescale)
}
