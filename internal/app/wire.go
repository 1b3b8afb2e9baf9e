package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	rediscache "github.com/GlebRadaev/stockvote/internal/cache/redis"
	"github.com/GlebRadaev/stockvote/internal/config"
	"github.com/GlebRadaev/stockvote/internal/metrics"
	"github.com/GlebRadaev/stockvote/internal/oracle"
	"github.com/GlebRadaev/stockvote/internal/pg"
	"github.com/GlebRadaev/stockvote/internal/repo"
	"github.com/GlebRadaev/stockvote/internal/service"
	"github.com/GlebRadaev/stockvote/internal/settlement"
	"github.com/GlebRadaev/stockvote/pkg/auth"
	"github.com/GlebRadaev/stockvote/pkg/clients"
)

// Components is the object graph shared by the server and the ops CLI.
type Components struct {
	Pool     *pgxpool.Pool
	Redis    *rediscache.Client
	Metrics  *metrics.Metrics
	Repo     *repo.Repositories
	Services *service.Services
	JWT      *auth.JWTService
	Oracle   oracle.PriceOracle
	Locker   settlement.Locker
	Engine   *settlement.Engine
}

// Wire connects to PostgreSQL (and Redis when configured), applies the
// migrations and builds every service.
func Wire(ctx context.Context, cfg *config.Config) (*Components, error) {
	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return nil, fmt.Errorf("can't run migrations: %w", err)
	}

	var rc *rediscache.Client
	if cfg.RedisAddr != "" {
		rc, err = rediscache.New(ctx, rediscache.ClientConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("can't connect to redis: %w", err)
		}
	}

	c := build(cfg, pool, pg.New(pool), pg.NewTXManager(pool), rc)
	return c, nil
}

func build(cfg *config.Config, pool *pgxpool.Pool, conn pg.Database, txManager pg.TXManager, rc *rediscache.Client) *Components {
	m := metrics.New()
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	priceOracle := newOracle(cfg, rc, m)
	locker := newLocker(rc)

	repos := repo.New(conn)
	services := service.New(repos, txManager, priceOracle, jwtService, cfg.TokenTTL)
	engine := settlement.NewEngine(
		settlement.Config{BatchSize: cfg.SettlementBatch, Workers: cfg.SettlementWorkers},
		repos.VoteRepo, repos.UserVoteRepo, services.Ledger, services.Ranker, priceOracle, locker, m,
	)

	return &Components{
		Pool:     pool,
		Redis:    rc,
		Metrics:  m,
		Repo:     repos,
		Services: services,
		JWT:      jwtService,
		Oracle:   priceOracle,
		Locker:   locker,
		Engine:   engine,
	}
}

func newOracle(cfg *config.Config, rc *rediscache.Client, m *metrics.Metrics) oracle.PriceOracle {
	var base oracle.PriceOracle
	if cfg.OracleAddress != "" {
		base = oracle.NewClient(cfg.OracleAddress, clients.NewHTTPClient(), cfg.OracleRPS, m)
	} else {
		zap.L().Info("no oracle address configured, using the built-in price table")
		base = oracle.NewStatic(oracle.DefaultPrices).WithDrift(oracle.DefaultDrift)
	}
	if rc == nil {
		return base
	}
	return oracle.NewCached(base, rediscache.NewPriceCache(rc), cfg.PriceCacheTTL, m)
}

func newLocker(rc *rediscache.Client) settlement.Locker {
	if rc == nil {
		return settlement.NewLocalLocker()
	}
	return rediscache.NewLockManager(rc)
}

// Close releases the worker pool and the connections.
func (c *Components) Close() {
	if c.Engine != nil {
		c.Engine.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			zap.L().Warn("redis close failed", zap.Error(err))
		}
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

// Migrate applies the schema migrations and disconnects.
func Migrate(ctx context.Context, cfg *config.Config) error {
	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	defer pool.Close()
	return pg.RunMigrations(ctx, pool)
}
