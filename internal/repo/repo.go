package repo

import (
	"github.com/GlebRadaev/stockvote/internal/pg"
	spendrepo "github.com/GlebRadaev/stockvote/internal/repo/spend-repo"
	userrepo "github.com/GlebRadaev/stockvote/internal/repo/user-repo"
	uservoterepo "github.com/GlebRadaev/stockvote/internal/repo/uservote-repo"
	voterepo "github.com/GlebRadaev/stockvote/internal/repo/vote-repo"
	"github.com/GlebRadaev/stockvote/internal/service/authservice"
	"github.com/GlebRadaev/stockvote/internal/service/ledgerservice"
	"github.com/GlebRadaev/stockvote/internal/service/rankingservice"
	"github.com/GlebRadaev/stockvote/internal/service/userservice"
	"github.com/GlebRadaev/stockvote/internal/service/voteservice"
	"github.com/GlebRadaev/stockvote/internal/settlement"
)

type UserRepo interface {
	authservice.Repo
	rankingservice.Repo
	ledgerservice.UserRepo
	voteservice.UserRepo
	userservice.UserRepo
}

type VoteRepo interface {
	voteservice.VoteRepo
	settlement.VoteRepo
}

type UserVoteRepo interface {
	voteservice.UserVoteRepo
	ledgerservice.UserVoteRepo
	settlement.UserVoteRepo
	userservice.HistoryRepo
}

type Repositories struct {
	UserRepo     UserRepo
	VoteRepo     VoteRepo
	UserVoteRepo UserVoteRepo
	SpendRepo    ledgerservice.SpendRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		VoteRepo:     voterepo.New(conn),
		UserVoteRepo: uservoterepo.New(conn),
		SpendRepo:    spendrepo.New(conn),
	}
}
