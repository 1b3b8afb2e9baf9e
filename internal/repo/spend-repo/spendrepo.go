package spendrepo

import (
	"context"

	"github.com/GlebRadaev/stockvote/internal/domain"
	"github.com/GlebRadaev/stockvote/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateSpend(ctx context.Context, spend *domain.PointSpend) (*domain.PointSpend, error) {
	query := `
		INSERT INTO point_spends (user_id, amount, reason, tx_hash, processed_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, spend.UserID, spend.Amount, spend.Reason, spend.TxHash, spend.ProcessedAt).Scan(&spend.ID)
	if err != nil {
		zap.L().Error("can't save point spend", zap.Error(err))
		return nil, err
	}
	return spend, nil
}

func (r *Repository) GetSpendsByUserID(ctx context.Context, userID int) ([]domain.PointSpend, error) {
	query := `
        SELECT id, user_id, amount, reason, tx_hash, processed_at
        FROM point_spends
        WHERE user_id = $1
        ORDER BY processed_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch point spends", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var spends []domain.PointSpend
	for rows.Next() {
		var s domain.PointSpend
		err := rows.Scan(&s.ID, &s.UserID, &s.Amount, &s.Reason, &s.TxHash, &s.ProcessedAt)
		if err != nil {
			zap.L().Error("failed to scan point spend row", zap.Error(err))
			return nil, err
		}
		spends = append(spends, s)
	}

	return spends, nil
}
