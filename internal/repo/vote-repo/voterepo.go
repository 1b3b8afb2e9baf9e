package voterepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/stockvote/internal/domain"
	"github.com/GlebRadaev/stockvote/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const voteColumns = `id, title, description, stock_code, stock_name, vote_kind, start_time, end_time, settlement_time,
	state, base_price, final_price, outcome, points_reward, participant_count, up_count, down_count,
	created_by, settlement_tx, created_at, settled_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanVote(row pgx.Row) (*domain.Vote, error) {
	var v domain.Vote
	err := row.Scan(
		&v.ID, &v.Title, &v.Description, &v.StockCode, &v.StockName, &v.Kind,
		&v.StartTime, &v.EndTime, &v.SettlementTime,
		&v.State, &v.BasePrice, &v.FinalPrice, &v.Outcome, &v.PointsReward,
		&v.ParticipantCount, &v.UpCount, &v.DownCount,
		&v.CreatedBy, &v.SettlementTx, &v.CreatedAt, &v.SettledAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectVotes(rows pgx.Rows) ([]domain.Vote, error) {
	defer rows.Close()

	var votes []domain.Vote
	for rows.Next() {
		v, err := scanVote(rows)
		if err != nil {
			return nil, err
		}
		votes = append(votes, *v)
	}
	return votes, rows.Err()
}

func (r *Repository) Create(ctx context.Context, vote *domain.Vote) (*domain.Vote, error) {
	query := `
		INSERT INTO votes (title, description, stock_code, stock_name, vote_kind, start_time, end_time,
			settlement_time, state, base_price, points_reward, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + voteColumns
	created, err := scanVote(r.db.QueryRow(ctx, query,
		vote.Title, vote.Description, vote.StockCode, vote.StockName, vote.Kind, vote.StartTime, vote.EndTime,
		vote.SettlementTime, vote.State, vote.BasePrice, vote.PointsReward, vote.CreatedBy, vote.CreatedAt,
	))
	if err != nil {
		zap.L().Error("can't save vote", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, voteID int) (*domain.Vote, error) {
	vote, err := scanVote(r.db.QueryRow(ctx, "SELECT "+voteColumns+" FROM votes WHERE id = $1", voteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find vote", zap.Error(err), zap.Int("vote_id", voteID))
		return nil, err
	}
	return vote, nil
}

// FindByIDForUpdate locks the market row until the surrounding transaction ends.
func (r *Repository) FindByIDForUpdate(ctx context.Context, voteID int) (*domain.Vote, error) {
	vote, err := scanVote(r.db.QueryRow(ctx, "SELECT "+voteColumns+" FROM votes WHERE id = $1 FOR UPDATE", voteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock vote", zap.Error(err), zap.Int("vote_id", voteID))
		return nil, err
	}
	return vote, nil
}

// List returns one page of markets, newest first, and the total matching count.
func (r *Repository) List(ctx context.Context, filter domain.VoteFilter, page domain.Page) ([]domain.Vote, int, error) {
	var state *string
	if filter.State != "" {
		s := string(filter.State)
		state = &s
	}

	var total int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM votes WHERE ($1::text IS NULL OR state = $1)", state).Scan(&total)
	if err != nil {
		zap.L().Error("can't count votes", zap.Error(err))
		return nil, 0, err
	}

	query := `
		SELECT ` + voteColumns + `
		FROM votes
		WHERE ($1::text IS NULL OR state = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, state, page.Limit, page.Offset())
	if err != nil {
		zap.L().Error("can't list votes", zap.Error(err))
		return nil, 0, err
	}
	votes, err := collectVotes(rows)
	if err != nil {
		zap.L().Error("can't scan vote row", zap.Error(err))
		return nil, 0, err
	}
	return votes, total, nil
}

// ListHot returns open or closed-but-unsettled markets with the most participants.
func (r *Repository) ListHot(ctx context.Context, limit int) ([]domain.Vote, error) {
	query := `
		SELECT ` + voteColumns + `
		FROM votes
		WHERE state IN ('active', 'ended')
		ORDER BY participant_count DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't list hot votes", zap.Error(err))
		return nil, err
	}
	votes, err := collectVotes(rows)
	if err != nil {
		zap.L().Error("can't scan hot vote row", zap.Error(err))
		return nil, err
	}
	return votes, nil
}

// IncrementCounters bumps participant_count and the counter matching prediction.
func (r *Repository) IncrementCounters(ctx context.Context, voteID int, prediction domain.Prediction) error {
	query := `
		UPDATE votes
		SET participant_count = participant_count + 1,
			up_count = up_count + CASE WHEN $1 = 'up' THEN 1 ELSE 0 END,
			down_count = down_count + CASE WHEN $1 = 'down' THEN 1 ELSE 0 END
		WHERE id = $2
	`
	tag, err := r.db.Exec(ctx, query, string(prediction), voteID)
	if err != nil {
		zap.L().Error("failed to increment vote counters", zap.Error(err), zap.Int("vote_id", voteID))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVoteNotFound
	}
	return nil
}

// MarkEnded moves every active market whose end time has passed to ended.
func (r *Repository) MarkEnded(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE votes
		SET state = 'ended'
		WHERE state = 'active' AND end_time <= $1
	`
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		zap.L().Error("failed to close votes", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// FindDueForSettlement returns ended markets whose settlement time has come,
// ordered by (settlement_time, id) and starting after the cursor.
func (r *Repository) FindDueForSettlement(ctx context.Context, now time.Time, after domain.Cursor, limit uint32) ([]domain.Vote, error) {
	query := `
		SELECT ` + voteColumns + `
		FROM votes
		WHERE state = 'ended' AND settlement_time <= $1
			AND (settlement_time, id) > ($2, $3)
		ORDER BY settlement_time ASC, id ASC
		LIMIT $4
	`
	rows, err := r.db.Query(ctx, query, now, after.At, after.ID, int(limit))
	if err != nil {
		zap.L().Error("can't get votes for settlement", zap.Error(err))
		return nil, err
	}
	votes, err := collectVotes(rows)
	if err != nil {
		zap.L().Error("can't scan vote row for settlement", zap.Error(err))
		return nil, err
	}
	return votes, nil
}

// FindSettledWithPending returns settled markets that still have participants
// without a recorded result, ordered by (settled_at, id) after the cursor.
func (r *Repository) FindSettledWithPending(ctx context.Context, after domain.Cursor, limit uint32) ([]domain.Vote, error) {
	query := `
		SELECT ` + voteColumns + `
		FROM votes v
		WHERE v.state = 'settled'
			AND (v.settled_at, v.id) > ($1, $2)
			AND EXISTS (SELECT 1 FROM user_votes uv WHERE uv.vote_id = v.id AND uv.is_correct IS NULL)
		ORDER BY v.settled_at ASC, v.id ASC
		LIMIT $3
	`
	rows, err := r.db.Query(ctx, query, after.At, after.ID, int(limit))
	if err != nil {
		zap.L().Error("can't get settled votes with pending participants", zap.Error(err))
		return nil, err
	}
	votes, err := collectVotes(rows)
	if err != nil {
		zap.L().Error("can't scan settled vote row", zap.Error(err))
		return nil, err
	}
	return votes, nil
}

// MarkSettled performs the ended -> settled transition. It returns false when
// the market was not in the ended state, which makes repeated calls no-ops.
func (r *Repository) MarkSettled(ctx context.Context, voteID int, finalPrice float64, outcome domain.Outcome, txHash string, now time.Time) (bool, error) {
	query := `
		UPDATE votes
		SET state = 'settled', final_price = $1, outcome = $2, settlement_tx = $3, settled_at = $4
		WHERE id = $5 AND state = 'ended'
	`
	tag, err := r.db.Exec(ctx, query, finalPrice, string(outcome), txHash, now, voteID)
	if err != nil {
		zap.L().Error("failed to settle vote", zap.Error(err), zap.Int("vote_id", voteID))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
