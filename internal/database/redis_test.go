package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intercityline/booking-backend/internal/config"
)

func TestNewRedisClient(t *testing.T) {
	t.Run("no address configured", func(t *testing.T) {
		assert.Nil(t, NewRedisClient(config.RedisConfig{}))
	})

	t.Run("unreachable server degrades to nil", func(t *testing.T) {
		// Port 1 refuses immediately; the failed ping must release the
		// pool before reporting the cache as unavailable.
		client := NewRedisClient(config.RedisConfig{Addr: "127.0.0.1:1"})
		assert.Nil(t, client)
	})
}
