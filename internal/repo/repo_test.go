package repo

import (
	"testing"

	spendrepo "github.com/GlebRadaev/stockvote/internal/repo/spend-repo"
	userrepo "github.com/GlebRadaev/stockvote/internal/repo/user-repo"
	uservoterepo "github.com/GlebRadaev/stockvote/internal/repo/uservote-repo"
	voterepo "github.com/GlebRadaev/stockvote/internal/repo/vote-repo"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.VoteRepo)
	assert.NotNil(t, repo.UserVoteRepo)
	assert.NotNil(t, repo.SpendRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &voterepo.Repository{}, repo.VoteRepo)
	assert.IsType(t, &uservoterepo.Repository{}, repo.UserVoteRepo)
	assert.IsType(t, &spendrepo.Repository{}, repo.SpendRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
