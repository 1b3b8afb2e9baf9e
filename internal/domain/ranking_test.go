package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignRanks(t *testing.T) {
	tests := []struct {
		name     string
		users    []User
		expected []RankAssignment
	}{
		{
			name:     "No users",
			users:    nil,
			expected: []RankAssignment{},
		},
		{
			name: "Points decide first",
			users: []User{
				{ID: 1, Points: 10, IsActive: true},
				{ID: 2, Points: 30, IsActive: true},
				{ID: 3, Points: 20, IsActive: true},
			},
			expected: []RankAssignment{{UserID: 2, Rank: 1}, {UserID: 3, Rank: 2}, {UserID: 1, Rank: 3}},
		},
		{
			name: "Correct votes break point ties",
			users: []User{
				{ID: 1, Points: 10, CorrectVotes: 1, IsActive: true},
				{ID: 2, Points: 10, CorrectVotes: 3, IsActive: true},
			},
			expected: []RankAssignment{{UserID: 2, Rank: 1}, {UserID: 1, Rank: 2}},
		},
		{
			name: "Fewer total votes wins remaining ties",
			users: []User{
				{ID: 1, Points: 10, CorrectVotes: 1, TotalVotes: 9, IsActive: true},
				{ID: 2, Points: 10, CorrectVotes: 1, TotalVotes: 2, IsActive: true},
			},
			expected: []RankAssignment{{UserID: 2, Rank: 1}, {UserID: 1, Rank: 2}},
		},
		{
			name: "Full ties still get distinct ranks",
			users: []User{
				{ID: 7, Points: 5, IsActive: true},
				{ID: 3, Points: 5, IsActive: true},
			},
			expected: []RankAssignment{{UserID: 3, Rank: 1}, {UserID: 7, Rank: 2}},
		},
		{
			name: "Inactive users are excluded",
			users: []User{
				{ID: 1, Points: 100, IsActive: false},
				{ID: 2, Points: 5, IsActive: true},
			},
			expected: []RankAssignment{{UserID: 2, Rank: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AssignRanks(tt.users))
		})
	}
}

func TestAssignRanks_HigherPointsAlwaysRankHigher(t *testing.T) {
	users := make([]User, 0, 50)
	for i := 1; i <= 50; i++ {
		users = append(users, User{ID: i, Points: int64((i * 37) % 11), CorrectVotes: i % 3, TotalVotes: i % 5, IsActive: true})
	}
	ranks := AssignRanks(users)

	byID := make(map[int]int, len(ranks))
	seen := make(map[int]bool, len(ranks))
	for _, r := range ranks {
		byID[r.UserID] = r.Rank
		assert.False(t, seen[r.Rank], "rank %d assigned twice", r.Rank)
		seen[r.Rank] = true
	}
	for _, a := range users {
		for _, b := range users {
			if a.Points > b.Points {
				assert.Less(t, byID[a.ID], byID[b.ID])
			}
		}
	}
}
