package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Points       int64     `db:"points"`
	TotalVotes   int       `db:"total_votes"`
	CorrectVotes int       `db:"correct_votes"`
	Rank         int       `db:"rank"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	LastLoginAt  time.Time `db:"last_login_at"`
}

// Accuracy is the share of correct predictions in percent, rounded.
func (u *User) Accuracy() int {
	if u.TotalVotes == 0 {
		return 0
	}
	return int((float64(u.CorrectVotes)/float64(u.TotalVotes))*100 + 0.5)
}

type Vote struct {
	ID               int        `db:"id"`
	Title            string     `db:"title"`
	Description      string     `db:"description"`
	StockCode        string     `db:"stock_code"`
	StockName        string     `db:"stock_name"`
	Kind             VoteKind   `db:"vote_kind"`
	StartTime        time.Time  `db:"start_time"`
	EndTime          time.Time  `db:"end_time"`
	SettlementTime   time.Time  `db:"settlement_time"`
	State            VoteState  `db:"state"`
	BasePrice        float64    `db:"base_price"`
	FinalPrice       *float64   `db:"final_price"`
	Outcome          *Outcome   `db:"outcome"`
	PointsReward     int        `db:"points_reward"`
	ParticipantCount int        `db:"participant_count"`
	UpCount          int        `db:"up_count"`
	DownCount        int        `db:"down_count"`
	CreatedBy        int        `db:"created_by"`
	SettlementTx     *string    `db:"settlement_tx"`
	CreatedAt        time.Time  `db:"created_at"`
	SettledAt        *time.Time `db:"settled_at"`
}

type UserVote struct {
	ID           int        `db:"id"`
	UserID       int        `db:"user_id"`
	VoteID       int        `db:"vote_id"`
	Prediction   Prediction `db:"prediction"`
	IsCorrect    *bool      `db:"is_correct"`
	PointsEarned int        `db:"points_earned"`
	VoteTime     time.Time  `db:"vote_time"`
	TxHash       string     `db:"tx_hash"`
}

// UserVoteWithVote is a history row: the prediction joined with its market summary.
type UserVoteWithVote struct {
	UserVote
	VoteTitle   string
	StockCode   string
	StockName   string
	VoteState   VoteState
	VoteOutcome *Outcome
}

type PointSpend struct {
	ID          int       `db:"id"`
	UserID      int       `db:"user_id"`
	Amount      int64     `db:"amount"`
	Reason      string    `db:"reason"`
	TxHash      string    `db:"tx_hash"`
	ProcessedAt time.Time `db:"processed_at"`
}

// VoteFilter selects markets for listing. Empty State means all states.
type VoteFilter struct {
	State VoteState
}

type Page struct {
	Number int
	Limit  int
}

func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Limit
}

// Pages returns the number of pages needed for total rows.
func (p Page) Pages(total int) int {
	if p.Limit <= 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}

// Cursor is a keyset position over rows ordered by (At, ID). The zero value
// starts before the first row.
type Cursor struct {
	At time.Time
	ID int
}

// After reports whether a row at (at, id) sorts strictly after c.
func (c Cursor) After(at time.Time, id int) bool {
	if !at.Equal(c.At) {
		return at.After(c.At)
	}
	return id > c.ID
}
