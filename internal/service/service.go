package service

import (
	"time"

	"github.com/GlebRadaev/stockvote/internal/handlers/auth"
	"github.com/GlebRadaev/stockvote/internal/handlers/balance"
	"github.com/GlebRadaev/stockvote/internal/handlers/ranking"
	"github.com/GlebRadaev/stockvote/internal/handlers/users"
	"github.com/GlebRadaev/stockvote/internal/handlers/votes"
	"github.com/GlebRadaev/stockvote/internal/settlement"

	pkgauth "github.com/GlebRadaev/stockvote/pkg/auth"

	"github.com/GlebRadaev/stockvote/internal/pg"
	"github.com/GlebRadaev/stockvote/internal/repo"
	authservice "github.com/GlebRadaev/stockvote/internal/service/authservice"
	ledgerservice "github.com/GlebRadaev/stockvote/internal/service/ledgerservice"
	rankingservice "github.com/GlebRadaev/stockvote/internal/service/rankingservice"
	userservice "github.com/GlebRadaev/stockvote/internal/service/userservice"
	voteservice "github.com/GlebRadaev/stockvote/internal/service/voteservice"
)

type Services struct {
	AuthService    auth.Service
	VoteService    votes.Service
	UserService    users.Service
	RankingService ranking.Service
	LedgerService  balance.Service

	// consumed by the settlement engine
	Ledger settlement.Ledger
	Ranker settlement.Ranker
}

func New(repo *repo.Repositories, txManager pg.TXManager, oracle voteservice.PriceOracle,
	jwtService pkgauth.JWTServiceInterface, tokenTTL time.Duration) *Services {
	rankingService := rankingservice.New(repo.UserRepo)
	ledgerService := ledgerservice.New(repo.UserRepo, repo.UserVoteRepo, repo.SpendRepo, rankingService, txManager)
	voteService := voteservice.New(repo.VoteRepo, repo.UserVoteRepo, repo.UserRepo, oracle, rankingService, txManager)
	userService := userservice.New(repo.UserRepo, repo.UserVoteRepo)
	authService := authservice.New(repo.UserRepo, rankingService, &pkgauth.HashService{}, jwtService, tokenTTL)

	return &Services{
		AuthService:    authService,
		VoteService:    voteService,
		UserService:    userService,
		RankingService: rankingService,
		LedgerService:  ledgerService,
		Ledger:         ledgerService,
		Ranker:         rankingService,
	}
}
