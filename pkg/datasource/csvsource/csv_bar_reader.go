package csvsource

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/pkg/errors"
)

var _ BarReader = (*CSVBarReader)(nil)

// BarReader is an interface for reading bars.
type BarReader interface {
	Read(interval time.Duration) (Bar, error)
	ReadAll(interval time.Duration) (Bars, error)
}

// CSVBarReader is a BarReader that reads from a CSV file.
type CSVBarReader struct {
	csv     *csv.Reader
	decoder CSVBarDecoder
	records int
}

// MakeCSVBarReader is a factory method type that creates a new CSVBarReader.
type MakeCSVBarReader func(csv *csv.Reader) *CSVBarReader

// NewCSVBarReader creates a new CSVBarReader with the default Binance decoder.
func NewCSVBarReader(csv *csv.Reader) *CSVBarReader {
	return NewCSVBarReaderWithDecoder(csv, BinanceCSVBarDecoder)
}

// NewCSVBarReaderWithDecoder creates a new CSVBarReader with the given decoder.
func NewCSVBarReaderWithDecoder(csv *csv.Reader, decoder CSVBarDecoder) *CSVBarReader {
	csv.FieldsPerRecord = -1
	return &CSVBarReader{
		csv:     csv,
		decoder: decoder,
	}
}

// Read reads the next Bar from the underlying CSV data.
func (r *CSVBarReader) Read(interval time.Duration) (Bar, error) {
	rec, err := r.csv.Read()
	if err != nil {
		return Bar{}, err
	}

	r.records++
	return r.decoder(rec, interval)
}

// ReadAll reads all the Bars from the underlying CSV data. A first record whose time
// column does not parse is taken as a header and skipped.
func (r *CSVBarReader) ReadAll(interval time.Duration) (Bars, error) {
	var bars Bars
	for {
		b, err := r.Read(interval)
		if err == io.EOF {
			break
		}
		if errors.Is(err, ErrInvalidTimeFormat) && r.records == 1 {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", r.records)
		}
		bars = append(bars, b)
	}

	return bars, nil
}
