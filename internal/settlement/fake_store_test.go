package settlement

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/GlebRadaev/stockvote/internal/domain"
)

// memStore mimics the conditional updates of the postgres repositories.
type memStore struct {
	mu         sync.Mutex
	votes      map[int]*domain.Vote
	userVotes  map[int]*domain.UserVote
	points     map[int]int64
	correct    map[int]int
	failAwards map[int]int
	recomputes int
	dueQueries int
}

func newMemStore() *memStore {
	return &memStore{
		votes:      map[int]*domain.Vote{},
		userVotes:  map[int]*domain.UserVote{},
		points:     map[int]int64{},
		correct:    map[int]int{},
		failAwards: map[int]int{},
	}
}

func (s *memStore) addVote(v domain.Vote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.votes[v.ID] = &v
}

func (s *memStore) addUserVote(uv domain.UserVote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userVotes[uv.ID] = &uv
	v := s.votes[uv.VoteID]
	v.ParticipantCount++
	if uv.Prediction == domain.PredictionUp {
		v.UpCount++
	} else {
		v.DownCount++
	}
}

func (s *memStore) vote(id int) domain.Vote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.votes[id]
}

func (s *memStore) userVote(id int) domain.UserVote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.userVotes[id]
}

func (s *memStore) FindByID(_ context.Context, voteID int) (*domain.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.votes[voteID]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (s *memStore) MarkEnded(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, v := range s.votes {
		if v.State == domain.VoteStateActive && !v.EndTime.After(now) {
			v.State = domain.VoteStateEnded
			n++
		}
	}
	return n, nil
}

// page orders matching votes by (key, id) and returns up to limit of them
// after the cursor.
func (s *memStore) page(match func(*domain.Vote) bool, key func(*domain.Vote) time.Time, after domain.Cursor, limit uint32) []domain.Vote {
	var out []domain.Vote
	for _, v := range s.votes {
		if match(v) && after.After(key(v), v.ID) {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := key(&out[i]), key(&out[j])
		if !a.Equal(b) {
			return a.Before(b)
		}
		return out[i].ID < out[j].ID
	})
	if uint32(len(out)) > limit {
		out = out[:limit]
	}
	return out
}

func (s *memStore) FindDueForSettlement(_ context.Context, now time.Time, after domain.Cursor, limit uint32) ([]domain.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dueQueries++
	return s.page(
		func(v *domain.Vote) bool { return v.DueForSettlement(now) },
		func(v *domain.Vote) time.Time { return v.SettlementTime },
		after, limit), nil
}

func (s *memStore) FindSettledWithPending(_ context.Context, after domain.Cursor, limit uint32) ([]domain.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page(func(v *domain.Vote) bool {
		if v.State != domain.VoteStateSettled {
			return false
		}
		for _, uv := range s.userVotes {
			if uv.VoteID == v.ID && uv.IsCorrect == nil {
				return true
			}
		}
		return false
	}, func(v *domain.Vote) time.Time {
		if v.SettledAt == nil {
			return time.Time{}
		}
		return *v.SettledAt
	}, after, limit), nil
}

func (s *memStore) MarkSettled(_ context.Context, voteID int, finalPrice float64, outcome domain.Outcome, txHash string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.votes[voteID]
	if !ok || v.State != domain.VoteStateEnded {
		return false, nil
	}
	v.State = domain.VoteStateSettled
	v.FinalPrice = &finalPrice
	v.Outcome = &outcome
	v.SettlementTx = &txHash
	v.SettledAt = &now
	return true, nil
}

func (s *memStore) FindPendingByVote(_ context.Context, voteID int) ([]domain.UserVote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.UserVote
	for _, uv := range s.userVotes {
		if uv.VoteID == voteID && uv.IsCorrect == nil {
			out = append(out, *uv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) AwardPrediction(_ context.Context, vote *domain.Vote, uv domain.UserVote) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAwards[uv.UserID] > 0 {
		s.failAwards[uv.UserID]--
		return false, errors.New("ledger unavailable")
	}
	stored := s.userVotes[uv.ID]
	if stored.IsCorrect != nil {
		return false, nil
	}
	correct := uv.Prediction.IsCorrect(*vote.Outcome)
	stored.IsCorrect = &correct
	if !correct {
		return false, nil
	}
	stored.PointsEarned = vote.PointsReward
	s.points[uv.UserID] += int64(vote.PointsReward)
	s.correct[uv.UserID]++
	return true, nil
}

func (s *memStore) Recompute(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recomputes++
	return nil
}

type oracleFunc func(ctx context.Context, stockCode string, at time.Time) (float64, error)

func (f oracleFunc) PriceAt(ctx context.Context, stockCode string, at time.Time) (float64, error) {
	return f(ctx, stockCode, at)
}
