package csvsource

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// MetaTraderTimeFormat is the time format expected by the MetaTrader decoder when cols [0] and [1] are used.
const MetaTraderTimeFormat = "02/01/2006 15:04"

var (
	// ErrNotEnoughColumns is returned when the CSV price record does not have enough columns.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidTimeFormat is returned when the CSV price record does not have a valid time format.
	ErrInvalidTimeFormat = errors.New("cannot parse time string")

	// ErrInvalidPriceFormat is returned when the CSV price record does not have prices in expected format.
	ErrInvalidPriceFormat = errors.New("OHLC prices must be in valid decimal format")

	// ErrInvalidVolumeFormat is returned when the CSV price record does not have a valid volume format.
	ErrInvalidVolumeFormat = errors.New("volume must be in valid float format")
)

// CSVBarDecoder is an extension point for CSVBarReader to support custom file formats.
type CSVBarDecoder func(record []string, interval time.Duration) (Bar, error)

// readers maps the format names accepted on the command line to their reader factories.
var readers = map[string]MakeCSVBarReader{
	"binance":    NewBinanceCSVBarReader,
	"metatrader": NewMetaTraderCSVBarReader,
}

// ReaderByName looks up a reader factory by format name, binance or metatrader.
func ReaderByName(name string) (MakeCSVBarReader, error) {
	maker, ok := readers[name]
	if !ok {
		return nil, errors.Errorf("unsupported csv format: %s", name)
	}
	return maker, nil
}

// NewBinanceCSVBarReader creates a new CSVBarReader for Binance CSV files.
func NewBinanceCSVBarReader(csv *csv.Reader) *CSVBarReader {
	return NewCSVBarReaderWithDecoder(csv, BinanceCSVBarDecoder)
}

func parsePrices(fields []string) ([4]float64, error) {
	var prices [4]float64
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return prices, ErrInvalidPriceFormat
		}
		prices[i] = v
	}
	return prices, nil
}

func parseVolume(record []string, column int) (float64, error) {
	if len(record) <= column {
		return 0, nil
	}

	v, err := strconv.ParseFloat(record[column], 64)
	if err != nil {
		return 0, ErrInvalidVolumeFormat
	}
	return v, nil
}

// BinanceCSVBarDecoder decodes a CSV record from Binance or Bybit into a Bar:
// unix milliseconds, open, high, low, close and an optional volume.
func BinanceCSVBarDecoder(record []string, interval time.Duration) (Bar, error) {
	var empty Bar

	if len(record) < 5 {
		return empty, ErrNotEnoughColumns
	}

	msec, err := strconv.ParseInt(record[0], 10, 64)
	if err != nil {
		return empty, ErrInvalidTimeFormat
	}

	prices, err := parsePrices(record[1:5])
	if err != nil {
		return empty, err
	}

	volume, err := parseVolume(record, 5)
	if err != nil {
		return empty, err
	}

	start := time.UnixMilli(msec).UTC()
	return Bar{
		StartTime: start,
		EndTime:   start.Add(interval),
		Open:      prices[0],
		High:      prices[1],
		Low:       prices[2],
		Close:     prices[3],
		Volume:    volume,
	}, nil
}

// NewMetaTraderCSVBarReader creates a new CSVBarReader for MetaTrader CSV files.
func NewMetaTraderCSVBarReader(csv *csv.Reader) *CSVBarReader {
	csv.Comma = ';'
	return NewCSVBarReaderWithDecoder(csv, MetaTraderCSVBarDecoder)
}

// MetaTraderCSVBarDecoder decodes a CSV record from MetaTrader into a Bar:
// date, time, open, high, low, close and an optional volume.
func MetaTraderCSVBarDecoder(record []string, interval time.Duration) (Bar, error) {
	var empty Bar

	if len(record) < 6 {
		return empty, ErrNotEnoughColumns
	}

	start, err := time.Parse(MetaTraderTimeFormat, fmt.Sprintf("%s %s", record[0], record[1]))
	if err != nil {
		return empty, ErrInvalidTimeFormat
	}

	prices, err := parsePrices(record[2:6])
	if err != nil {
		return empty, err
	}

	volume, err := parseVolume(record, 6)
	if err != nil {
		return empty, err
	}

	return Bar{
		StartTime: start,
		EndTime:   start.Add(interval),
		Open:      prices[0],
		High:      prices[1],
		Low:       prices[2],
		Close:     prices[3],
		Volume:    volume,
	}, nil
}
