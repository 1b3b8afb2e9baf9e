//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/GlebRadaev/stockvote/internal/config"
	"github.com/GlebRadaev/stockvote/internal/domain"
	"github.com/GlebRadaev/stockvote/internal/pg"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("stockvote_test"),
		postgres.WithUsername("stockvote"),
		postgres.WithPassword("stockvote"),
		postgres.BasicWaitStrategies(),
		testcontainers.WithLabels(map[string]string{"test": "stockvote-integration"}),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := getPgxpool(ctx, &config.Config{Database: dsn})
	require.NoError(t, err)
	require.NoError(t, pg.RunMigrations(ctx, pool))
	return pool
}

func TestVoteLifecycle(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()

	cfg := &config.Config{
		JWTSecret:         "secret",
		TokenTTL:          time.Hour,
		SettlementBatch:   100,
		SettlementWorkers: 2,
	}
	c := build(cfg, pool, pg.New(pool), pg.NewTXManager(pool), nil)
	defer c.Close()

	alice, err := c.Services.AuthService.Register(ctx, "alice", "password1")
	require.NoError(t, err)
	bob, err := c.Services.AuthService.Register(ctx, "bob", "password2")
	require.NoError(t, err)

	_, err = c.Services.AuthService.Register(ctx, "alice", "password3")
	assert.ErrorIs(t, err, domain.ErrLoginTaken)

	ranked, total, err := c.Services.RankingService.GetRanking(ctx, domain.Page{Number: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, ranked, 2)
	for _, u := range ranked {
		assert.GreaterOrEqual(t, u.Rank, 1)
	}

	now := time.Now()
	vote, err := c.Services.VoteService.CreateVote(ctx, domain.NewVoteParams{
		Title:          "Will Ping An Bank rise?",
		StockCode:      "000001",
		StockName:      "Ping An Bank",
		EndTime:        now.Add(time.Hour),
		SettlementTime: now.Add(2 * time.Hour),
		BasePrice:      10,
		CreatedBy:      alice.ID,
	})
	require.NoError(t, err)

	_, err = c.Services.VoteService.CastVote(ctx, vote.ID, alice.ID, "up")
	require.NoError(t, err)
	_, err = c.Services.VoteService.CastVote(ctx, vote.ID, bob.ID, "down")
	require.NoError(t, err)
	_, err = c.Services.VoteService.CastVote(ctx, vote.ID, bob.ID, "up")
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)

	got, _, err := c.Services.VoteService.GetVote(ctx, vote.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ParticipantCount)
	assert.Equal(t, 1, got.UpCount)
	assert.Equal(t, 1, got.DownCount)

	_, err = pool.Exec(ctx,
		"UPDATE votes SET end_time = $1, settlement_time = $2 WHERE id = $3",
		now.Add(-2*time.Hour), now.Add(-time.Hour), vote.ID)
	require.NoError(t, err)

	report, err := c.Engine.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.Ended)
	assert.Equal(t, 1, report.Settled)
	assert.Equal(t, 1, report.Credited)

	settled, _, err := c.Services.VoteService.GetVote(ctx, vote.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.VoteStateSettled, settled.State)
	require.NotNil(t, settled.Outcome)
	assert.Equal(t, domain.OutcomeUp, *settled.Outcome)

	winner, err := c.Services.UserService.GetProfile(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(domain.DefaultPointsReward), winner.Points)
	assert.Equal(t, 1, winner.CorrectVotes)
	assert.Equal(t, 1, winner.Rank)

	loser, err := c.Services.UserService.GetProfile(ctx, bob.ID)
	require.NoError(t, err)
	assert.Zero(t, loser.Points)
	assert.Equal(t, 2, loser.Rank)

	again, err := c.Engine.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, again.Credited)

	winner, err = c.Services.UserService.GetProfile(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(domain.DefaultPointsReward), winner.Points)
}

func TestSpendRejectsOverdraft(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()

	c := build(&config.Config{JWTSecret: "secret", TokenTTL: time.Hour, SettlementWorkers: 1}, pool,
		pg.New(pool), pg.NewTXManager(pool), nil)
	defer c.Close()

	user, err := c.Services.AuthService.Register(ctx, "carol", "password1")
	require.NoError(t, err)

	_, err = c.Services.LedgerService.Spend(ctx, user.ID, 1, "shop")
	assert.ErrorIs(t, err, domain.ErrInsufficientPoints)
}
