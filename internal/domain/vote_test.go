package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteState_CanTransition(t *testing.T) {
	tests := []struct {
		name     string
		from     VoteState
		to       VoteState
		expected bool
	}{
		{name: "pending to active", from: VoteStatePending, to: VoteStateActive, expected: true},
		{name: "active to ended", from: VoteStateActive, to: VoteStateEnded, expected: true},
		{name: "ended to settled", from: VoteStateEnded, to: VoteStateSettled, expected: true},
		{name: "active skips ended", from: VoteStateActive, to: VoteStateSettled, expected: false},
		{name: "pending skips active", from: VoteStatePending, to: VoteStateEnded, expected: false},
		{name: "settled is terminal", from: VoteStateSettled, to: VoteStateEnded, expected: false},
		{name: "ended back to active", from: VoteStateEnded, to: VoteStateActive, expected: false},
		{name: "self transition", from: VoteStateActive, to: VoteStateActive, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.CanTransition(tt.to))
		})
	}
}

func TestDetermineOutcome(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		final    float64
		expected Outcome
	}{
		{name: "price went up", base: 12.50, final: 12.80, expected: OutcomeUp},
		{name: "price went down", base: 12.50, final: 12.10, expected: OutcomeDown},
		{name: "price unchanged", base: 12.50, final: 12.50, expected: OutcomeFlat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineOutcome(tt.base, tt.final))
		})
	}
}

func TestPrediction_IsCorrect(t *testing.T) {
	assert.True(t, PredictionUp.IsCorrect(OutcomeUp))
	assert.False(t, PredictionUp.IsCorrect(OutcomeDown))
	assert.True(t, PredictionDown.IsCorrect(OutcomeDown))
	assert.False(t, PredictionUp.IsCorrect(OutcomeFlat))
	assert.False(t, PredictionDown.IsCorrect(OutcomeFlat))
}

func TestParsePrediction(t *testing.T) {
	p, err := ParsePrediction("up")
	require.NoError(t, err)
	assert.Equal(t, PredictionUp, p)

	p, err = ParsePrediction("down")
	require.NoError(t, err)
	assert.Equal(t, PredictionDown, p)

	for _, bad := range []string{"", "flat", "UP", "sideways"} {
		_, err := ParsePrediction(bad)
		assert.ErrorIs(t, err, ErrInvalidPrediction, bad)
	}
}

func TestNewVote(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	valid := NewVoteParams{
		Title:          "Will Ping An go up?",
		StockCode:      " 000001 ",
		StockName:      "Ping An Bank",
		EndTime:        now.Add(time.Hour),
		SettlementTime: now.Add(2 * time.Hour),
		BasePrice:      12.50,
		CreatedBy:      1,
	}

	tests := []struct {
		name    string
		modify  func(p *NewVoteParams)
		wantErr bool
		check   func(t *testing.T, v *Vote)
	}{
		{
			name:   "Valid params use defaults",
			modify: func(p *NewVoteParams) {},
			check: func(t *testing.T, v *Vote) {
				assert.Equal(t, VoteStateActive, v.State)
				assert.Equal(t, "000001", v.StockCode)
				assert.Equal(t, VoteKindStock, v.Kind)
				assert.Equal(t, DefaultPointsReward, v.PointsReward)
				assert.Equal(t, now, v.StartTime)
				assert.Nil(t, v.FinalPrice)
				assert.Nil(t, v.Outcome)
				assert.Zero(t, v.ParticipantCount)
			},
		},
		{
			name: "Index vote with custom reward",
			modify: func(p *NewVoteParams) {
				p.Kind = VoteKindIndex
				p.StockCode = "000001.sh"
				p.PointsReward = 25
			},
			check: func(t *testing.T, v *Vote) {
				assert.Equal(t, VoteKindIndex, v.Kind)
				assert.Equal(t, "000001.SH", v.StockCode)
				assert.Equal(t, 25, v.PointsReward)
			},
		},
		{name: "Missing title", modify: func(p *NewVoteParams) { p.Title = "  " }, wantErr: true},
		{name: "Missing stock name", modify: func(p *NewVoteParams) { p.StockName = "" }, wantErr: true},
		{name: "End time in the past", modify: func(p *NewVoteParams) { p.EndTime = now.Add(-time.Minute) }, wantErr: true},
		{name: "End time equals start", modify: func(p *NewVoteParams) { p.EndTime = now }, wantErr: true},
		{name: "Settlement before end", modify: func(p *NewVoteParams) { p.SettlementTime = now.Add(30 * time.Minute) }, wantErr: true},
		{name: "Settlement equals end", modify: func(p *NewVoteParams) { p.SettlementTime = p.EndTime }, wantErr: true},
		{name: "Zero base price", modify: func(p *NewVoteParams) { p.BasePrice = 0 }, wantErr: true},
		{name: "Negative reward", modify: func(p *NewVoteParams) { p.PointsReward = -5 }, wantErr: true},
		{name: "Unknown kind", modify: func(p *NewVoteParams) { p.Kind = "bond" }, wantErr: true},
		{name: "Missing creator", modify: func(p *NewVoteParams) { p.CreatedBy = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := valid
			tt.modify(&params)

			vote, err := NewVote(params, now)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				assert.Nil(t, vote)
				return
			}
			require.NoError(t, err)
			tt.check(t, vote)
		})
	}
}

func TestVote_AcceptsVotesAndDue(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	vote := &Vote{
		State:          VoteStateActive,
		EndTime:        now.Add(time.Hour),
		SettlementTime: now.Add(2 * time.Hour),
	}

	assert.True(t, vote.AcceptsVotes(now))
	assert.False(t, vote.AcceptsVotes(now.Add(time.Hour)))
	assert.False(t, vote.DueForSettlement(now.Add(3*time.Hour)))

	vote.State = VoteStateEnded
	assert.False(t, vote.AcceptsVotes(now))
	assert.False(t, vote.DueForSettlement(now.Add(time.Hour)))
	assert.True(t, vote.DueForSettlement(now.Add(2*time.Hour)))

	vote.State = VoteStateSettled
	assert.False(t, vote.DueForSettlement(now.Add(3*time.Hour)))
}

func TestUser_Accuracy(t *testing.T) {
	assert.Equal(t, 0, (&User{}).Accuracy())
	assert.Equal(t, 63, (&User{TotalVotes: 8, CorrectVotes: 5}).Accuracy())
	assert.Equal(t, 100, (&User{TotalVotes: 3, CorrectVotes: 3}).Accuracy())
}

func TestPage(t *testing.T) {
	p := Page{Number: 3, Limit: 10}
	assert.Equal(t, 20, p.Offset())
	assert.Equal(t, 3, p.Pages(21))
	assert.Equal(t, 0, Page{Number: 0, Limit: 10}.Offset())
	assert.Equal(t, 0, Page{}.Pages(5))
}
