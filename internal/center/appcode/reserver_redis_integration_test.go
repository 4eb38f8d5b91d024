//go:build integration

package appcode_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"lscmis/internal/center/appcode"
	"lscmis/pkg/testutil/containers"
)

type RedisReserverSuite struct {
	suite.Suite
	redis    *containers.RedisContainer
	reserver *appcode.RedisReserver
}

func TestRedisReserverSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisReserverSuite))
}

func (s *RedisReserverSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.reserver = appcode.NewRedisReserver(s.redis.Client, time.Second, nil)
}

func (s *RedisReserverSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

// TestConcurrentReserve verifies SET NX hands a candidate to exactly one caller.
func (s *RedisReserverSuite) TestConcurrentReserve() {
	ctx := context.Background()
	const goroutines = 25

	var wg sync.WaitGroup
	var winners atomic.Int32
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := s.reserver.Reserve(ctx, "42424")
			if err == nil && ok {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()
	s.Equal(int32(1), winners.Load())

	keys, err := s.redis.Keys(ctx, "appcode:")
	s.Require().NoError(err)
	s.Equal([]string{"lsc:appcode:42424"}, keys)
}

func (s *RedisReserverSuite) TestReservationExpires() {
	ctx := context.Background()
	ok, err := s.reserver.Reserve(ctx, "31313")
	s.Require().NoError(err)
	s.True(ok)

	s.Eventually(func() bool {
		ok, err := s.reserver.Reserve(ctx, "31313")
		return err == nil && ok
	}, 5*time.Second, 100*time.Millisecond)
}
