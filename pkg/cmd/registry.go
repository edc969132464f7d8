package cmd

import (
	"fmt"
	"sort"

	"github.com/c9s/bbta/pkg/config"
	"github.com/c9s/bbta/pkg/datasource/csvsource"
	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
	"github.com/c9s/bbta/pkg/indicator/momentum"
	"github.com/c9s/bbta/pkg/indicator/trend"
	"github.com/c9s/bbta/pkg/indicator/volatility"
	"github.com/c9s/bbta/pkg/indicator/volume"
)

// Output is one named output series of an indicator.
type Output struct {
	Name   string       `json:"name"`
	Values floats.Slice `json:"values"`
}

// IndicatorFunc computes an indicator over the bars with the presets of cfg.
type IndicatorFunc func(cfg *config.Config, bars csvsource.Bars) ([]Output, error)

func single(name string, calc indicator.SeriesCalculator) ([]Output, error) {
	values, err := calc.Calculate()
	if err != nil {
		return nil, err
	}
	return []Output{{Name: name, Values: values}}, nil
}

func outputs(names []string, values ...floats.Slice) []Output {
	out := make([]Output, len(names))
	for i, name := range names {
		out[i] = Output{Name: name, Values: values[i]}
	}
	return out
}

var indicators = map[string]IndicatorFunc{
	"sma": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("sma", trend.NewSMA(bars.Close(), cfg.MovingAverage.Period))
	},
	"ema": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("ema", trend.NewEMA(bars.Close(), cfg.MovingAverage.Period))
	},
	"wma": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("wma", trend.NewWMA(bars.Close(), cfg.MovingAverage.Period))
	},
	"ma": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single(cfg.MovingAverage.Type.String(), cfg.MovingAverage.New(bars.Close()))
	},
	"trix": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("trix", trend.NewTrix(bars.Close(), trend.DefaultTrixPeriod))
	},
	"macd": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		macd, signal, err := cfg.MACD.New(bars.Close()).Calculate()
		if err != nil {
			return nil, err
		}
		return outputs([]string{"macd", "signal"}, macd, signal), nil
	},
	"adx": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("adx", trend.NewADX(bars.Close(), bars.High(), bars.Low(), trend.DefaultADXPeriod))
	},
	"cci": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("cci", trend.NewCCIDefault(bars.Close(), bars.High(), bars.Low()))
	},
	"dpo": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("dpo", trend.NewDPO(bars.Close(), trend.DefaultDPOPeriod))
	},
	"massindex": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("massindex", trend.NewMassIndexDefault(bars.Close(), bars.High(), bars.Low()))
	},
	"vortex": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		plus, minus, err := trend.NewVortex(bars.Close(), bars.High(), bars.Low(), trend.DefaultVortexPeriod).Calculate()
		if err != nil {
			return nil, err
		}
		return outputs([]string{"+vi", "-vi"}, plus, minus), nil
	},
	"roc": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("roc", momentum.NewROC(bars.Close(), momentum.DefaultROCPeriod))
	},
	"rsi": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("rsi", cfg.RSI.New(bars.Close()))
	},
	"stoch": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		k, d, err := cfg.Stoch.New(bars.Close(), bars.High(), bars.Low()).Calculate()
		if err != nil {
			return nil, err
		}
		return outputs([]string{"%k", "%d"}, k, d), nil
	},
	"williams": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("%r", momentum.NewWilliamsR(bars.Close(), bars.High(), bars.Low(), momentum.DefaultWilliamsRPeriod))
	},
	"mfi": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("mfi", momentum.NewMFI(bars.Close(), bars.High(), bars.Low(), bars.Volume(), momentum.DefaultMFIPeriod))
	},
	"tsi": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("tsi", momentum.NewTSIDefault(bars.Close()))
	},
	"uo": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("uo", momentum.NewUltimateOscillatorDefault(bars.Close(), bars.High(), bars.Low()))
	},
	"kst": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		kst, signal, err := cfg.KST.New(bars.Close()).Calculate()
		if err != nil {
			return nil, err
		}
		return outputs([]string{"kst", "signal"}, kst, signal), nil
	},
	"tr": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("tr", volatility.NewTrueRange(bars.Close(), bars.High(), bars.Low()))
	},
	"atr": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("atr", volatility.NewATRDefault(bars.Close(), bars.High(), bars.Low()))
	},
	"stddev": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("stddev", volatility.NewStdDev(bars.Close(), volatility.DefaultStdDevPeriod))
	},
	"boll": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		upper, middle, lower, err := cfg.Bollinger.New(bars.Close()).Calculate()
		if err != nil {
			return nil, err
		}
		return outputs([]string{"upper", "middle", "lower"}, upper, middle, lower), nil
	},
	"channel": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		up, mid, down, err := volatility.NewPriceChannel(bars.Close(), bars.High(), bars.Low(), volatility.DefaultChannelPeriod).Calculate()
		if err != nil {
			return nil, err
		}
		return outputs([]string{"up", "mid", "down"}, up, mid, down), nil
	},
	"keltner": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		upper, middle, lower, err := cfg.Keltner.New(bars.Close(), bars.High(), bars.Low()).Calculate()
		if err != nil {
			return nil, err
		}
		return outputs([]string{"upper", "middle", "lower"}, upper, middle, lower), nil
	},
	"adl": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("adl", volume.NewADL(bars.Close(), bars.High(), bars.Low(), bars.Volume()))
	},
	"emv": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("emv", volume.NewEMVDefault(bars.Close(), bars.High(), bars.Low(), bars.Volume()))
	},
	"force": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("force", volume.NewForceIndexDefault(bars.Close(), bars.Volume()))
	},
	"nvi": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		nvi, signal, err := volume.NewNVIDefault(bars.Close(), bars.Volume()).Calculate()
		if err != nil {
			return nil, err
		}
		return outputs([]string{"nvi", "signal"}, nvi, signal), nil
	},
	"obv": func(cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
		return single("obv", volume.NewOBV(bars.Close(), bars.Volume()))
	},
}

// Indicators returns the names accepted by Compute, sorted.
func Indicators() []string {
	names := make([]string, 0, len(indicators))
	for name := range indicators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compute runs the named indicator over the bars.
func Compute(name string, cfg *config.Config, bars csvsource.Bars) ([]Output, error) {
	fn, ok := indicators[name]
	if !ok {
		return nil, fmt.Errorf("unknown indicator: %s", name)
	}

	return fn(cfg, bars)
}
