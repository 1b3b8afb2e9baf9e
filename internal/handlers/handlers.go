package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/stockvote/docs"
	authhandlers "github.com/GlebRadaev/stockvote/internal/handlers/auth"
	balancehandlers "github.com/GlebRadaev/stockvote/internal/handlers/balance"
	rankinghandlers "github.com/GlebRadaev/stockvote/internal/handlers/ranking"
	usershandlers "github.com/GlebRadaev/stockvote/internal/handlers/users"
	voteshandlers "github.com/GlebRadaev/stockvote/internal/handlers/votes"
	"github.com/GlebRadaev/stockvote/internal/service"
	"github.com/GlebRadaev/stockvote/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type VotesHandler interface {
	ListVotes(w http.ResponseWriter, r *http.Request)
	HotVotes(w http.ResponseWriter, r *http.Request)
	GetVote(w http.ResponseWriter, r *http.Request)
	CreateVote(w http.ResponseWriter, r *http.Request)
	CastVote(w http.ResponseWriter, r *http.Request)
	StockPrice(w http.ResponseWriter, r *http.Request)
}

type UsersHandler interface {
	GetInfo(w http.ResponseWriter, r *http.Request)
	GetVoteHistory(w http.ResponseWriter, r *http.Request)
}

type RankingHandler interface {
	GetRanking(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Spend(w http.ResponseWriter, r *http.Request)
	GetSpends(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	VotesHandler   VotesHandler
	UsersHandler   UsersHandler
	RankingHandler RankingHandler
	BalanceHandler BalanceHandler

	JWTService auth.JWTServiceInterface
	Metrics    http.Handler
}

func New(s *service.Services, jwtService auth.JWTServiceInterface, metrics http.Handler) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		VotesHandler:   voteshandlers.New(s.VoteService),
		UsersHandler:   usershandlers.New(s.UserService),
		RankingHandler: rankinghandlers.New(s.RankingService),
		BalanceHandler: balancehandlers.New(s.LedgerService),
		JWTService:     jwtService,
		Metrics:        metrics,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	requireAuth := auth.AuthMiddleware(h.JWTService)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
		r.Get("/ranking", h.RankingHandler.GetRanking)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/info", h.UsersHandler.GetInfo)
			r.Get("/vote-history", h.UsersHandler.GetVoteHistory)
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalance)
				r.Post("/spend", h.BalanceHandler.Spend)
			})
			r.Get("/spends", h.BalanceHandler.GetSpends)
		})
	})

	r.Route("/api/votes", func(r chi.Router) {
		r.Get("/", h.VotesHandler.ListVotes)
		r.Get("/hot", h.VotesHandler.HotVotes)
		r.With(auth.OptionalAuthMiddleware(h.JWTService)).Get("/{id}", h.VotesHandler.GetVote)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.VotesHandler.CreateVote)
			r.Post("/{id}/cast", h.VotesHandler.CastVote)
		})
	})

	r.Get("/api/stock/price/{code}", h.VotesHandler.StockPrice)

	return r
}
