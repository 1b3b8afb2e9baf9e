package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	rediscache "github.com/GlebRadaev/stockvote/internal/cache/redis"
	"github.com/GlebRadaev/stockvote/internal/config"
	"github.com/GlebRadaev/stockvote/internal/metrics"
	"github.com/GlebRadaev/stockvote/internal/oracle"
	"github.com/GlebRadaev/stockvote/internal/pg"
	"github.com/GlebRadaev/stockvote/internal/settlement"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
	cfg *config.Config
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
	s.cfg = &config.Config{
		Address:            "localhost:8080",
		JWTSecret:          "secret",
		TokenTTL:           time.Hour,
		OracleRPS:          5,
		PriceCacheTTL:      time.Hour,
		SettlementInterval: time.Minute,
		SettlementBatch:    100,
		SettlementWorkers:  2,
	}
}

func (s *ApplicationSuite) redisClient() *rediscache.Client {
	rdb := goredis.NewClient(&goredis.Options{Addr: "localhost:0"})
	s.T().Cleanup(func() { _ = rdb.Close() })
	return rediscache.Wrap(rdb)
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestNewOracle_StaticWithoutAddress() {
	o := newOracle(s.cfg, nil, metrics.New())
	s.IsType(&oracle.Static{}, o)
}

func (s *ApplicationSuite) TestNewOracle_HTTPClientWithAddress() {
	s.cfg.OracleAddress = "http://localhost:9000"
	o := newOracle(s.cfg, nil, metrics.New())
	s.IsType(&oracle.Client{}, o)
}

func (s *ApplicationSuite) TestNewOracle_CachedWithRedis() {
	o := newOracle(s.cfg, s.redisClient(), metrics.New())
	s.IsType(&oracle.Cached{}, o)
}

func (s *ApplicationSuite) TestNewLocker() {
	s.IsType(&settlement.LocalLocker{}, newLocker(nil))
	s.IsType(&rediscache.LockManager{}, newLocker(s.redisClient()))
}

func (s *ApplicationSuite) TestBuild() {
	ctrl := gomock.NewController(s.T())
	mockDB, err := pgxmock.NewPool()
	s.Require().NoError(err)
	defer mockDB.Close()

	c := build(s.cfg, nil, mockDB, pg.NewMockTXManager(ctrl), nil)
	s.NotNil(c.Repo)
	s.NotNil(c.Services)
	s.NotNil(c.Engine)
	s.NotNil(c.JWT)
	s.IsType(&oracle.Static{}, c.Oracle)
	s.IsType(&settlement.LocalLocker{}, c.Locker)
	c.Close()
}
