package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/keywork/integration/database/redis"
)

func TestConnectValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     redis.Config
		wantErr error
	}{
		{"empty_url", redis.Config{}, redis.ErrEmptyConnectionURL},
		{"bad_scheme", redis.Config{ConnectionURL: "http://localhost:6379"}, redis.ErrFailedToParseRedisConnString},
		{
			name: "unreachable",
			cfg: redis.Config{
				ConnectionURL:  "redis://127.0.0.1:1/0",
				RetryAttempts:  2,
				RetryInterval:  time.Millisecond,
				ConnectTimeout: 2 * time.Second,
			},
			wantErr: redis.ErrRedisNotReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := redis.Connect(context.Background(), tt.cfg)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, client)
		})
	}
}
