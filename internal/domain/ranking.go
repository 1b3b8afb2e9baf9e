package domain

import "sort"

type RankAssignment struct {
	UserID int
	Rank   int
}

// AssignRanks orders active users by points desc, correct votes desc,
// total votes asc and id asc, and numbers them from 1 without gaps.
// Inactive users are skipped. The input slice is not modified.
func AssignRanks(users []User) []RankAssignment {
	active := make([]User, 0, len(users))
	for _, u := range users {
		if u.IsActive {
			active = append(active, u)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		a, b := active[i], active[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.CorrectVotes != b.CorrectVotes {
			return a.CorrectVotes > b.CorrectVotes
		}
		if a.TotalVotes != b.TotalVotes {
			return a.TotalVotes < b.TotalVotes
		}
		return a.ID < b.ID
	})

	ranks := make([]RankAssignment, len(active))
	for i, u := range active {
		ranks[i] = RankAssignment{UserID: u.ID, Rank: i + 1}
	}
	return ranks
}
