package momentum

import (
	"fmt"

	"github.com/c9s/bbta/pkg/datatype/floats"
	"github.com/c9s/bbta/pkg/indicator"
	"github.com/c9s/bbta/pkg/indicator/trend"
)

var (
	DefaultKSTROCPeriods   = [4]int{10, 15, 20, 30}
	DefaultKSTMAPeriods    = [4]int{10, 10, 10, 15}
	DefaultKSTWeights      = [4]float64{1, 2, 3, 4}
	DefaultKSTSignalPeriod = 9
)

/*
KST implements the know sure thing oscillator: four rates of change, from the shortest to the
longest period, each smoothed by an SMA of its own period and combined with a weight.

	kst    = round2(sum(SMA(ROC(prices, roc[j]), ma[j]) * weight[j]))
	signal = SMA(kst, signalPeriod)

The ROC periods must be strictly increasing and the MA periods non-decreasing. kst is 0 for
the first roc[3]+ma[3]-1 values.

https://www.investopedia.com/terms/k/know-sure-thing-kst.asp
*/
type KST struct {
	prices       floats.Slice
	rocPeriods   [4]int
	maPeriods    [4]int
	weights      [4]float64
	signalPeriod int

	kst    indicator.Cache[floats.Slice]
	signal indicator.Cache[floats.Slice]
}

func NewKST(prices []float64, rocPeriods, maPeriods [4]int, weights [4]float64, signalPeriod int) *KST {
	inc := &KST{}
	inc.Reset(prices, rocPeriods, maPeriods, weights, signalPeriod)
	return inc
}

func NewKSTDefault(prices []float64) *KST {
	return NewKST(prices, DefaultKSTROCPeriods, DefaultKSTMAPeriods, DefaultKSTWeights, DefaultKSTSignalPeriod)
}

func (inc *KST) Reset(prices []float64, rocPeriods, maPeriods [4]int, weights [4]float64, signalPeriod int) {
	inc.prices = floats.Slice(prices).Clone()
	inc.rocPeriods = rocPeriods
	inc.maPeriods = maPeriods
	inc.weights = weights
	inc.signalPeriod = signalPeriod
	inc.kst.Reset()
	inc.signal.Reset()
}

func numberedNames(prefix string) []string {
	return []string{prefix + "1", prefix + "2", prefix + "3", prefix + "4"}
}

func (inc *KST) Validate() error {
	n := len(inc.prices)
	rocNames, maNames, weightNames := numberedNames("rocPeriod"), numberedNames("maPeriod"), numberedNames("weight")

	var checks indicator.Checks
	checks.Add(indicator.NotEmpty("prices", inc.prices))
	for j := range inc.rocPeriods {
		checks.Add(indicator.Period(rocNames[j], inc.rocPeriods[j], n)...)
		checks.Add(indicator.Period(maNames[j], inc.maPeriods[j], n)...)
		checks.Add(indicator.Positive(weightNames[j], inc.weights[j]))
	}
	checks.Add(indicator.Period("signalPeriod", inc.signalPeriod, n)...)
	checks.Add(
		indicator.StrictlyIncreasing(rocNames, inc.rocPeriods[:]...),
		indicator.NonDecreasing(maNames, inc.maPeriods[:]...),
	)
	return checks.Validate("KST")
}

func (inc *KST) KST() (floats.Slice, error) {
	return indicator.Memo(&inc.kst, func() (floats.Slice, error) {
		if err := inc.Validate(); err != nil {
			return nil, err
		}

		kst := floats.Zeros(len(inc.prices))
		for j := range inc.rocPeriods {
			smoothed, err := trend.CalculateSMA(calculateROC(inc.prices, inc.rocPeriods[j]), inc.maPeriods[j])
			if err != nil {
				return nil, fmt.Errorf("kst: roc %d: %w", inc.rocPeriods[j], err)
			}

			for i, v := range smoothed {
				kst[i] += v * inc.weights[j]
			}
		}

		warmUp := inc.rocPeriods[3] + inc.maPeriods[3] - 1
		for i := range kst {
			if i < warmUp {
				kst[i] = 0
				continue
			}
			kst[i] = floats.Round2(kst[i])
		}
		return kst, nil
	})
}

func (inc *KST) Signal() (floats.Slice, error) {
	return indicator.Memo(&inc.signal, func() (floats.Slice, error) {
		kst, err := inc.KST()
		if err != nil {
			return nil, err
		}

		return trend.CalculateSMA(kst, inc.signalPeriod)
	})
}

func (inc *KST) Calculate() (kst, signal floats.Slice, err error) {
	if kst, err = inc.KST(); err != nil {
		return nil, nil, err
	}

	if signal, err = inc.Signal(); err != nil {
		return nil, nil, err
	}

	return kst, signal, nil
}
