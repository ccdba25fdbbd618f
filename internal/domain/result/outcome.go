package result

// Outcome is the three-way result of a score pair.
type Outcome string

const (
	Home Outcome = "H"
	Away Outcome = "A"
	Draw Outcome = "D"
)

// Resolve derives the outcome of any (home, away) score pair. Fixture results
// and predicted results both go through here so they can never disagree.
func Resolve(home, away int) Outcome {
	switch {
	case home > away:
		return Home
	case away > home:
		return Away
	default:
		return Draw
	}
}

func (o Outcome) String() string {
	return string(o)
}

func (o Outcome) Label() string {
	switch o {
	case Home:
		return "home win"
	case Away:
		return "away win"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}
