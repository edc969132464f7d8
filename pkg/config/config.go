package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/c9s/bbta/pkg/indicator"
	"github.com/c9s/bbta/pkg/indicator/momentum"
	"github.com/c9s/bbta/pkg/indicator/trend"
	"github.com/c9s/bbta/pkg/indicator/volatility"
	"github.com/c9s/bbta/pkg/visgraph"
)

// Config holds the parameter presets of the configurable indicator families.
type Config struct {
	MovingAverage MovingAverageSettings `json:"movingAverage" yaml:"movingAverage"`
	MACD          MACDSettings          `json:"macd" yaml:"macd"`
	RSI           RSISettings           `json:"rsi" yaml:"rsi"`
	Stoch         StochSettings         `json:"stoch" yaml:"stoch"`
	Bollinger     BollingerSettings     `json:"bollinger" yaml:"bollinger"`
	Keltner       KeltnerSettings       `json:"keltner" yaml:"keltner"`
	KST           KSTSettings           `json:"kst" yaml:"kst"`
	Multiscale    MultiscaleSettings    `json:"multiscale" yaml:"multiscale"`
}

// Default returns the presets matching the indicators' default constructors.
func Default() *Config {
	return &Config{
		MovingAverage: MovingAverageSettings{
			Type:   indicator.MATypeExponential,
			Period: trend.DefaultEMAPeriod,
		},
		MACD: MACDSettings{
			FastPeriod:   trend.DefaultMACDFastPeriod,
			SlowPeriod:   trend.DefaultMACDSlowPeriod,
			SignalPeriod: trend.DefaultMACDSignalPeriod,
		},
		RSI: RSISettings{Period: momentum.DefaultRSIPeriod},
		Stoch: StochSettings{
			KPeriod: momentum.DefaultStochKPeriod,
			DPeriod: momentum.DefaultStochDPeriod,
		},
		Bollinger: BollingerSettings{
			Period: volatility.DefaultBOLLPeriod,
			MAType: indicator.MATypeSimple,
			NumStd: volatility.DefaultBOLLNumStd,
		},
		Keltner: KeltnerSettings{
			MAType:    indicator.MATypeExponential,
			MAPeriod:  volatility.DefaultKeltnerMAPeriod,
			ATRPeriod: volatility.DefaultKeltnerATRPeriod,
			NumATR:    volatility.DefaultKeltnerNumATR,
			ATRMAType: indicator.MATypeSimple,
		},
		KST: KSTSettings{
			ROCPeriods:   momentum.DefaultKSTROCPeriods,
			MAPeriods:    momentum.DefaultKSTMAPeriods,
			Weights:      momentum.DefaultKSTWeights,
			SignalPeriod: momentum.DefaultKSTSignalPeriod,
		},
		Multiscale: MultiscaleSettings{Timescale: visgraph.DefaultTimescale},
	}
}

// sections maps the top level keys of a config document to the settings they decode into.
func (c *Config) sections() map[string]interface{} {
	return map[string]interface{}{
		"movingAverage": &c.MovingAverage,
		"macd":          &c.MACD,
		"rsi":           &c.RSI,
		"stoch":         &c.Stoch,
		"bollinger":     &c.Bollinger,
		"keltner":       &c.Keltner,
		"kst":           &c.KST,
		"multiscale":    &c.Multiscale,
	}
}

// Validate reports every invalid setting. Series lengths are not known here, so only the
// parameter constraints are checked.
func (c *Config) Validate() error {
	errs := []error{
		indicator.PositivePeriod("movingAverage.period", c.MovingAverage.Period),
		indicator.ValidMAType("movingAverage.type", c.MovingAverage.Type),

		indicator.PositivePeriod("macd.fastPeriod", c.MACD.FastPeriod),
		indicator.PositivePeriod("macd.slowPeriod", c.MACD.SlowPeriod),
		indicator.PositivePeriod("macd.signalPeriod", c.MACD.SignalPeriod),
		indicator.Less("macd.fastPeriod", c.MACD.FastPeriod, "macd.slowPeriod", c.MACD.SlowPeriod),

		indicator.PositivePeriod("rsi.period", c.RSI.Period),

		indicator.PositivePeriod("stoch.kPeriod", c.Stoch.KPeriod),
		indicator.PositivePeriod("stoch.dPeriod", c.Stoch.DPeriod),

		indicator.PositivePeriod("bollinger.period", c.Bollinger.Period),
		indicator.ValidMAType("bollinger.maType", c.Bollinger.MAType),
		indicator.Positive("bollinger.numStd", c.Bollinger.NumStd),

		indicator.ValidMAType("keltner.maType", c.Keltner.MAType),
		indicator.PositivePeriod("keltner.maPeriod", c.Keltner.MAPeriod),
		indicator.PositivePeriod("keltner.atrPeriod", c.Keltner.ATRPeriod),
		indicator.Positive("keltner.numATR", c.Keltner.NumATR),
		indicator.ValidMAType("keltner.atrMAType", c.Keltner.ATRMAType),
	}

	errs = append(errs, c.KST.validate()...)
	errs = append(errs, indicator.PositivePeriod("multiscale.timescale", c.Multiscale.Timescale))
	return multierr.Combine(errs...)
}

func (s KSTSettings) validate() []error {
	var errs []error
	rocNames, maNames := make([]string, len(s.ROCPeriods)), make([]string, len(s.MAPeriods))
	for i := range s.ROCPeriods {
		rocNames[i] = fmt.Sprintf("kst.rocPeriods[%d]", i)
		maNames[i] = fmt.Sprintf("kst.maPeriods[%d]", i)
		errs = append(errs,
			indicator.PositivePeriod(rocNames[i], s.ROCPeriods[i]),
			indicator.PositivePeriod(maNames[i], s.MAPeriods[i]),
			indicator.Positive(fmt.Sprintf("kst.weights[%d]", i), s.Weights[i]),
		)
	}

	errs = append(errs,
		indicator.StrictlyIncreasing(rocNames, s.ROCPeriods[:]...),
		indicator.NonDecreasing(maNames, s.MAPeriods[:]...),
		indicator.PositivePeriod("kst.signalPeriod", s.SignalPeriod),
	)
	return errs
}
