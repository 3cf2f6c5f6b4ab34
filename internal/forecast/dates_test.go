package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBusinessDays(t *testing.T) {
	type test struct {
		after time.Time
		n     int
		first time.Time
		last  time.Time
	}

	tests := map[string]test{
		"from-friday": {
			after: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			n:     3,
			first: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			last:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		"from-wednesday": {
			after: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			n:     4,
			first: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
			last:  time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
		},
		"from-saturday": {
			after: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
			n:     1,
			first: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			last:  time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out := BusinessDays(tt.after, tt.n)
			assert.Equal(t, tt.n, len(out))
			assert.Equal(t, tt.first, out[0])
			assert.Equal(t, tt.last, out[len(out)-1])
			for i, d := range out {
				assert.True(t, d.After(tt.after))
				assert.NotEqual(t, time.Saturday, d.Weekday())
				assert.NotEqual(t, time.Sunday, d.Weekday())
				if i > 0 {
					assert.True(t, d.After(out[i-1]))
				}
			}
		})
	}
}
