package feature

import "time"

// Slot enumerates the feature columns of the model input.
// The rollout step reconstructs features by slot, so adding or removing
// a feature is a schema change only.
type Slot int

const (
	Lag1 Slot = iota
	Lag2
	Lag3
	Lag5
	Lag10
	RollMean5
	RollMean10
	RollMean20
	RollStd5
	RollStd20
	Momentum5
	Momentum10
	Momentum20
	VolumeMA5
	VolumeRatio
	RSI14
	MACDHist
	MACDLine
	BBPosition
	DayOfWeek
	Month
)

var slotNames = map[Slot]string{
	Lag1:        "lag_1",
	Lag2:        "lag_2",
	Lag3:        "lag_3",
	Lag5:        "lag_5",
	Lag10:       "lag_10",
	RollMean5:   "roll_mean_5",
	RollMean10:  "roll_mean_10",
	RollMean20:  "roll_mean_20",
	RollStd5:    "roll_std_5",
	RollStd20:   "roll_std_20",
	Momentum5:   "momentum_5",
	Momentum10:  "momentum_10",
	Momentum20:  "momentum_20",
	VolumeMA5:   "volume_ma5",
	VolumeRatio: "volume_ratio",
	RSI14:       "rsi",
	MACDHist:    "macd_hist",
	MACDLine:    "macd_line",
	BBPosition:  "bb_position",
	DayOfWeek:   "day_of_week",
	Month:       "month",
}

func (s Slot) String() string {
	return slotNames[s]
}

// Schema is an ordered list of feature slots.
type Schema []Slot

// DefaultSchema returns the full feature set in model input order.
func DefaultSchema() Schema {
	return Schema{
		Lag1, Lag2, Lag3, Lag5, Lag10,
		RollMean5, RollMean10, RollMean20, RollStd5, RollStd20,
		Momentum5, Momentum10, Momentum20,
		VolumeMA5, VolumeRatio,
		RSI14, MACDHist, MACDLine, BBPosition,
		DayOfWeek, Month,
	}
}

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, slot := range s {
		names[i] = slot.String()
	}
	return names
}

// Index returns the column position of the slot, -1 when absent.
func (s Schema) Index(slot Slot) int {
	for i, candidate := range s {
		if candidate == slot {
			return i
		}
	}
	return -1
}

// Calendar returns the two calendar features of the given trading date.
// Day of week is zero-based on Monday.
func Calendar(t time.Time) (dayOfWeek, month float64) {
	return float64((int(t.Weekday()) + 6) % 7), float64(t.Month())
}
