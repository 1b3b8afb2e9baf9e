package domain

import (
	"fmt"
	"strings"
	"time"
)

type VoteState string

const (
	VoteStatePending VoteState = "pending"
	VoteStateActive  VoteState = "active"
	VoteStateEnded   VoteState = "ended"
	VoteStateSettled VoteState = "settled"
)

// next holds the single forward transition allowed from each state.
var next = map[VoteState]VoteState{
	VoteStatePending: VoteStateActive,
	VoteStateActive:  VoteStateEnded,
	VoteStateEnded:   VoteStateSettled,
}

func (s VoteState) Valid() bool {
	switch s {
	case VoteStatePending, VoteStateActive, VoteStateEnded, VoteStateSettled:
		return true
	}
	return false
}

// CanTransition reports whether to directly follows s. Settled is terminal.
func (s VoteState) CanTransition(to VoteState) bool {
	n, ok := next[s]
	return ok && n == to
}

type VoteKind string

const (
	VoteKindStock VoteKind = "stock"
	VoteKindIndex VoteKind = "index"
)

type Prediction string

const (
	PredictionUp   Prediction = "up"
	PredictionDown Prediction = "down"
)

func ParsePrediction(s string) (Prediction, error) {
	switch p := Prediction(s); p {
	case PredictionUp, PredictionDown:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPrediction, s)
}

type Outcome string

const (
	OutcomeUp   Outcome = "up"
	OutcomeDown Outcome = "down"
	OutcomeFlat Outcome = "flat"
)

// DetermineOutcome compares the settlement price with the base price.
func DetermineOutcome(basePrice, finalPrice float64) Outcome {
	switch {
	case finalPrice > basePrice:
		return OutcomeUp
	case finalPrice < basePrice:
		return OutcomeDown
	default:
		return OutcomeFlat
	}
}

// IsCorrect reports whether prediction matches outcome. A flat outcome matches nothing.
func (p Prediction) IsCorrect(outcome Outcome) bool {
	return outcome != OutcomeFlat && string(p) == string(outcome)
}

const DefaultPointsReward = 10

type NewVoteParams struct {
	Title          string
	Description    string
	StockCode      string
	StockName      string
	Kind           VoteKind
	EndTime        time.Time
	SettlementTime time.Time
	BasePrice      float64
	PointsReward   int
	CreatedBy      int
}

// NewVote validates params and builds an active market starting at now.
func NewVote(p NewVoteParams, now time.Time) (*Vote, error) {
	title := strings.TrimSpace(p.Title)
	code := strings.ToUpper(strings.TrimSpace(p.StockCode))
	name := strings.TrimSpace(p.StockName)
	if title == "" || code == "" || name == "" {
		return nil, fmt.Errorf("%w: title, stock code and stock name are required", ErrValidation)
	}
	if p.EndTime.IsZero() || p.SettlementTime.IsZero() {
		return nil, fmt.Errorf("%w: end time and settlement time are required", ErrValidation)
	}
	if !now.Before(p.EndTime) {
		return nil, fmt.Errorf("%w: end time must be after start time", ErrValidation)
	}
	if !p.EndTime.Before(p.SettlementTime) {
		return nil, fmt.Errorf("%w: settlement time must be after end time", ErrValidation)
	}
	if p.BasePrice <= 0 {
		return nil, fmt.Errorf("%w: base price must be positive", ErrValidation)
	}
	if p.CreatedBy <= 0 {
		return nil, fmt.Errorf("%w: creator is required", ErrValidation)
	}

	kind := p.Kind
	if kind == "" {
		kind = VoteKindStock
	}
	if kind != VoteKindStock && kind != VoteKindIndex {
		return nil, fmt.Errorf("%w: unknown vote kind %q", ErrValidation, kind)
	}

	reward := p.PointsReward
	if reward == 0 {
		reward = DefaultPointsReward
	}
	if reward < 0 {
		return nil, fmt.Errorf("%w: points reward must be positive", ErrValidation)
	}

	return &Vote{
		Title:          title,
		Description:    strings.TrimSpace(p.Description),
		StockCode:      code,
		StockName:      name,
		Kind:           kind,
		StartTime:      now,
		EndTime:        p.EndTime,
		SettlementTime: p.SettlementTime,
		State:          VoteStateActive,
		BasePrice:      p.BasePrice,
		PointsReward:   reward,
		CreatedBy:      p.CreatedBy,
		CreatedAt:      now,
	}, nil
}

// AcceptsVotes reports whether a prediction may be cast at now.
func (v *Vote) AcceptsVotes(now time.Time) bool {
	return v.State == VoteStateActive && now.Before(v.EndTime)
}

// DueForSettlement reports whether the market may move to settled at now.
func (v *Vote) DueForSettlement(now time.Time) bool {
	return v.State.CanTransition(VoteStateSettled) && !now.Before(v.SettlementTime)
}
