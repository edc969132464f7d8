package style

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func newRoundedStyle(name string, color table.ColorOptions) *table.Style {
	return &table.Style{
		Name:    name,
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   color,
	}
}

// NewDefaultTableStyle is the colored style used for terminal output.
func NewDefaultTableStyle() *table.Style {
	style := newRoundedStyle("StyleRounded", table.ColorOptionsYellowWhiteOnBlack)
	style.Color.Row = text.Colors{text.FgHiYellow, text.BgHiBlack}
	style.Color.RowAlternate = text.Colors{text.FgYellow, text.BgBlack}
	return style
}

// NewReportTableStyle is the rounded box style without colors, for output written to files
// and logs.
func NewReportTableStyle() *table.Style {
	return newRoundedStyle("StyleReport", table.ColorOptionsDefault)
}

// TableStyle picks the colored or the plain style.
func TableStyle(colored bool) *table.Style {
	if colored {
		return NewDefaultTableStyle()
	}
	return NewReportTableStyle()
}
