package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignificanceStars(t *testing.T) {
	assert.Equal(t, "", SignificanceStars(0.2))
	assert.Equal(t, "*", SignificanceStars(0.03))
	assert.Equal(t, "**", SignificanceStars(0.005))
	assert.Equal(t, "***", SignificanceStars(0.0001))
	assert.Equal(t, "*", SignificanceStars(0.05, 0.1))
}

func TestNewReportTableStyle(t *testing.T) {
	s := NewReportTableStyle()
	assert.Equal(t, "StyleReport", s.Name)
	assert.Empty(t, s.Color.Row)
	assert.NotEmpty(t, NewDefaultTableStyle().Color.Row)
}

func TestTableStyle(t *testing.T) {
	assert.Equal(t, "StyleRounded", TableStyle(true).Name)
	assert.Equal(t, "StyleReport", TableStyle(false).Name)
}
