package leaderboard

import "sort"

// Total is the raw points sum for one user with at least one prediction.
type Total struct {
	UserID      int64
	UserName    string
	TotalPoints int
}

type Entry struct {
	Rank        int
	UserID      int64
	UserName    string
	TotalPoints int
}

// Rank orders totals by points desc then user id asc and assigns
// competition ranks, so equal totals share a rank and the next rank skips.
func Rank(totals []Total) []Entry {
	sorted := make([]Total, len(totals))
	copy(sorted, totals)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalPoints != sorted[j].TotalPoints {
			return sorted[i].TotalPoints > sorted[j].TotalPoints
		}
		return sorted[i].UserID < sorted[j].UserID
	})

	out := make([]Entry, 0, len(sorted))
	for i, item := range sorted {
		rank := i + 1
		if i > 0 && item.TotalPoints == sorted[i-1].TotalPoints {
			rank = out[i-1].Rank
		}
		out = append(out, Entry{
			Rank:        rank,
			UserID:      item.UserID,
			UserName:    item.UserName,
			TotalPoints: item.TotalPoints,
		})
	}
	return out
}
