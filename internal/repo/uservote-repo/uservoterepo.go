package uservoterepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/stockvote/internal/domain"
	"github.com/GlebRadaev/stockvote/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const userVoteColumns = `id, user_id, vote_id, prediction, is_correct, points_earned, vote_time, tx_hash`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUserVote(row pgx.Row) (*domain.UserVote, error) {
	var uv domain.UserVote
	err := row.Scan(&uv.ID, &uv.UserID, &uv.VoteID, &uv.Prediction, &uv.IsCorrect, &uv.PointsEarned, &uv.VoteTime, &uv.TxHash)
	if err != nil {
		return nil, err
	}
	return &uv, nil
}

// Create inserts the prediction unless the user already has one for the
// market. The second return value is false on conflict.
func (r *Repository) Create(ctx context.Context, uv *domain.UserVote) (bool, error) {
	query := `
		INSERT INTO user_votes (user_id, vote_id, prediction, vote_time, tx_hash)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, vote_id) DO NOTHING
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, uv.UserID, uv.VoteID, string(uv.Prediction), uv.VoteTime, uv.TxHash).Scan(&uv.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		zap.L().Error("can't save user vote", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) FindByUserAndVote(ctx context.Context, userID, voteID int) (*domain.UserVote, error) {
	query := "SELECT " + userVoteColumns + " FROM user_votes WHERE user_id = $1 AND vote_id = $2"
	uv, err := scanUserVote(r.db.QueryRow(ctx, query, userID, voteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user vote", zap.Error(err))
		return nil, err
	}
	return uv, nil
}

// FindPendingByVote returns the participants of a market without a result yet.
func (r *Repository) FindPendingByVote(ctx context.Context, voteID int) ([]domain.UserVote, error) {
	query := `
		SELECT ` + userVoteColumns + `
		FROM user_votes
		WHERE vote_id = $1 AND is_correct IS NULL
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query, voteID)
	if err != nil {
		zap.L().Error("can't get pending user votes", zap.Error(err), zap.Int("vote_id", voteID))
		return nil, err
	}
	defer rows.Close()

	var votes []domain.UserVote
	for rows.Next() {
		uv, err := scanUserVote(rows)
		if err != nil {
			zap.L().Error("can't scan user vote row", zap.Error(err))
			return nil, err
		}
		votes = append(votes, *uv)
	}
	return votes, rows.Err()
}

// MarkSettled records the result once. It returns false when the row already
// carries a result, so a retried settlement never pays twice.
func (r *Repository) MarkSettled(ctx context.Context, userVoteID int, isCorrect bool, pointsEarned int) (bool, error) {
	query := `
		UPDATE user_votes
		SET is_correct = $1, points_earned = $2
		WHERE id = $3 AND is_correct IS NULL
	`
	tag, err := r.db.Exec(ctx, query, isCorrect, pointsEarned, userVoteID)
	if err != nil {
		zap.L().Error("failed to settle user vote", zap.Error(err), zap.Int("user_vote_id", userVoteID))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindHistoryByUser(ctx context.Context, userID int, page domain.Page) ([]domain.UserVoteWithVote, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM user_votes WHERE user_id = $1", userID).Scan(&total); err != nil {
		zap.L().Error("can't count vote history", zap.Error(err), zap.Int("user_id", userID))
		return nil, 0, err
	}

	query := `
		SELECT uv.id, uv.user_id, uv.vote_id, uv.prediction, uv.is_correct, uv.points_earned, uv.vote_time, uv.tx_hash,
			v.title, v.stock_code, v.stock_name, v.state, v.outcome
		FROM user_votes uv
		JOIN votes v ON v.id = uv.vote_id
		WHERE uv.user_id = $1
		ORDER BY uv.vote_time DESC, uv.id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, page.Limit, page.Offset())
	if err != nil {
		zap.L().Error("can't get vote history", zap.Error(err), zap.Int("user_id", userID))
		return nil, 0, err
	}
	defer rows.Close()

	var history []domain.UserVoteWithVote
	for rows.Next() {
		var h domain.UserVoteWithVote
		err := rows.Scan(
			&h.ID, &h.UserID, &h.VoteID, &h.Prediction, &h.IsCorrect, &h.PointsEarned, &h.VoteTime, &h.TxHash,
			&h.VoteTitle, &h.StockCode, &h.StockName, &h.VoteState, &h.VoteOutcome,
		)
		if err != nil {
			zap.L().Error("can't scan vote history row", zap.Error(err))
			return nil, 0, err
		}
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return history, total, nil
}
