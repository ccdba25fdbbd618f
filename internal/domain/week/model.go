package week

import "fmt"

const (
	MinNumber = 1
	MaxNumber = 38
)

// Week is static reference data for one round number of a season.
type Week struct {
	ID     int64
	Number int
}

func (w Week) Label() string {
	return fmt.Sprintf("Week %d", w.Number)
}

func ValidNumber(number int) bool {
	return number >= MinNumber && number <= MaxNumber
}

// All returns the full set of week numbers used to seed the store.
func All() []Week {
	out := make([]Week, 0, MaxNumber)
	for n := MinNumber; n <= MaxNumber; n++ {
		out = append(out, Week{ID: int64(n), Number: n})
	}
	return out
}
