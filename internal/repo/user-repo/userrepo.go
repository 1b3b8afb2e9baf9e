package userrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/stockvote/internal/domain"
	"github.com/GlebRadaev/stockvote/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const userColumns = `id, login, password_hash, points, total_votes, correct_votes, rank, is_active, created_at, last_login_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Login,
		&user.PasswordHash,
		&user.Points,
		&user.TotalVotes,
		&user.CorrectVotes,
		&user.Rank,
		&user.IsActive,
		&user.CreatedAt,
		&user.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE login = $1", login))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err), zap.Int("user_id", userID))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash)
		VALUES ($1, $2)
		RETURNING ` + userColumns
	created, err := scanUser(repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash))
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (repo *Repository) TouchLogin(ctx context.Context, userID int) error {
	_, err := repo.db.Exec(ctx, "UPDATE users SET last_login_at = NOW() WHERE id = $1", userID)
	if err != nil {
		zap.L().Error("can't update last login", zap.Error(err), zap.Int("user_id", userID))
		return err
	}
	return nil
}

// ApplyDelta adds pointsDelta to the balance and accuracyDelta to correct_votes
// in one row update and returns the new balance.
func (repo *Repository) ApplyDelta(ctx context.Context, userID int, pointsDelta int64, accuracyDelta int) (int64, error) {
	query := `
		UPDATE users
		SET points = points + $1, correct_votes = correct_votes + $2
		WHERE id = $3
		RETURNING points
	`
	var balance int64
	err := repo.db.QueryRow(ctx, query, pointsDelta, accuracyDelta, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		zap.L().Error("failed to apply points delta", zap.Error(err), zap.Int("user_id", userID))
		return 0, err
	}
	return balance, nil
}

// Debit subtracts amount only when the balance covers it. The check and the
// write are the same statement, so concurrent debits cannot overdraw.
func (repo *Repository) Debit(ctx context.Context, userID int, amount int64) (int64, error) {
	query := `
		UPDATE users
		SET points = points - $1
		WHERE id = $2 AND points >= $1
		RETURNING points
	`
	var balance int64
	err := repo.db.QueryRow(ctx, query, amount, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrInsufficientPoints
		}
		zap.L().Error("failed to debit points", zap.Error(err), zap.Int("user_id", userID))
		return 0, err
	}
	return balance, nil
}

func (repo *Repository) IncrementTotalVotes(ctx context.Context, userID int) error {
	tag, err := repo.db.Exec(ctx, "UPDATE users SET total_votes = total_votes + 1 WHERE id = $1", userID)
	if err != nil {
		zap.L().Error("failed to increment total votes", zap.Error(err), zap.Int("user_id", userID))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (repo *Repository) ListActive(ctx context.Context) ([]domain.User, error) {
	rows, err := repo.db.Query(ctx, "SELECT "+userColumns+" FROM users WHERE is_active")
	if err != nil {
		zap.L().Error("can't list active users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// UpdateRanks writes all assignments in a single statement.
func (repo *Repository) UpdateRanks(ctx context.Context, ranks []domain.RankAssignment) error {
	if len(ranks) == 0 {
		return nil
	}
	ids := make([]int, len(ranks))
	positions := make([]int, len(ranks))
	for i, r := range ranks {
		ids[i] = r.UserID
		positions[i] = r.Rank
	}

	query := `
		UPDATE users AS u
		SET rank = r.rank
		FROM unnest($1::bigint[], $2::int[]) AS r(id, rank)
		WHERE u.id = r.id
	`
	if _, err := repo.db.Exec(ctx, query, ids, positions); err != nil {
		zap.L().Error("failed to update ranks", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) ListRanking(ctx context.Context, page domain.Page) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE is_active AND rank > 0
		ORDER BY rank ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := repo.db.Query(ctx, query, page.Limit, page.Offset())
	if err != nil {
		zap.L().Error("can't get ranking", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan ranking row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (repo *Repository) CountRanked(ctx context.Context) (int, error) {
	var count int
	err := repo.db.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE is_active AND rank > 0").Scan(&count)
	if err != nil {
		zap.L().Error("can't count ranked users", zap.Error(err))
		return 0, err
	}
	return count, nil
}
