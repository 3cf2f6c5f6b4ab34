package series

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCSV(t *testing.T) {
	in := `Date,Open,High,Low,Close,Volume
2024-01-02,100,105,99,104,1000000
2024-01-03,104,106,103,105.5,1200000
2024-01-04,105.5,107,104,106,900000
`
	s, err := FromCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	assert.Equal(t, 104.0, s.Bars[0].Close)
	assert.Equal(t, 105.5, s.Bars[1].Close)
	assert.Equal(t, 100.0, s.Bars[0].Open)
	assert.Equal(t, 1000000.0, s.Bars[0].Volume)
	assert.Equal(t, "2024-01-02", s.Bars[0].Date.Format("2006-01-02"))
}

func TestFromCSV_MinimalColumns(t *testing.T) {
	in := `date,close
2024-01-02,104
2024-01-03,105
`
	s, err := FromCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, 0.0, s.Bars[0].Volume)
	assert.Equal(t, 0.0, s.Bars[0].Open)
}

func TestFromCSV_Errors(t *testing.T) {
	type test struct {
		in string
	}

	tests := map[string]test{
		"no-close-column": {
			in: "date,open\n2024-01-02,100\n",
		},
		"no-date-column": {
			in: "close,open\n100,100\n",
		},
		"bad-date": {
			in: "date,close\nnot-a-date,100\n",
		},
		"bad-close": {
			in: "date,close\n2024-01-02,abc\n",
		},
		"out-of-order": {
			in: "date,close\n2024-01-03,100\n2024-01-02,101\n",
		},
		"duplicate-date": {
			in: "date,close\n2024-01-02,100\n2024-01-02,101\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := FromCSV(strings.NewReader(tt.in))
			assert.Error(t, err)
		})
	}
}
