package csvsource

import (
	"time"

	"github.com/c9s/bbta/pkg/datatype/floats"
)

// Bar is one OHLCV record.
type Bar struct {
	StartTime time.Time
	EndTime   time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
}

type Bars []Bar

func (bs Bars) series(f func(b Bar) float64) floats.Slice {
	s := make(floats.Slice, len(bs))
	for i, b := range bs {
		s[i] = f(b)
	}
	return s
}

func (bs Bars) Open() floats.Slice   { return bs.series(func(b Bar) float64 { return b.Open }) }
func (bs Bars) High() floats.Slice   { return bs.series(func(b Bar) float64 { return b.High }) }
func (bs Bars) Low() floats.Slice    { return bs.series(func(b Bar) float64 { return b.Low }) }
func (bs Bars) Close() floats.Slice  { return bs.series(func(b Bar) float64 { return b.Close }) }
func (bs Bars) Volume() floats.Slice { return bs.series(func(b Bar) float64 { return b.Volume }) }

func (bs Bars) Times() []time.Time {
	times := make([]time.Time, len(bs))
	for i, b := range bs {
		times[i] = b.StartTime
	}
	return times
}
