package testredis

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/mcherald/mcherald/internal/testutils"
)

// MakeClient spins up an in-process redis server and returns a client
// connected to it. Both are torn down with the test.
func MakeClient(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		testutils.MustNoErr(rdb.Close())
	})
	return rdb
}
