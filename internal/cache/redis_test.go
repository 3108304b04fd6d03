package cache

import (
	"context"
	"testing"
	"time"

	"github.com/andyagdw/word-wizards/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(ctx context.Context) (*Redis, func()) {
	r := testcontainers.ContainerRequest{
		Image:        "redis:8.4-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	cont, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: r,
		Started:          true,
	})
	if err != nil {
		panic(err)
	}

	host, err := cont.Host(ctx)
	if err != nil {
		panic(err)
	}

	port, err := cont.MappedPort(ctx, "6379")
	if err != nil {
		panic(err)
	}

	store := NewRedis(RedisConfig{
		Host: host,
		Port: port.Port(),
	})

	closer := func() {
		store.Close()
		cont.Terminate(ctx)
	}
	return store, closer
}

func TestRedis(t *testing.T) {
	store, closer := startRedis(context.Background())
	defer closer()

	t.Run("set and get", func(t *testing.T) {
		count := 2
		stored := Entry{
			Data: model.WordData{
				Word:          "candle",
				SyllableCount: &count,
				Senses:        []model.Sense{{Definition: "a stick of wax", PartOfSpeech: "noun"}},
			},
		}

		require.NoError(t, store.Set(t.Context(), "redis_set_get", stored, time.Minute))

		e, found, err := store.Get(t.Context(), "redis_set_get")
		require.NoError(t, err)
		require.True(t, found)

		assert.Equal(t, "candle", e.Data.Word)
		require.NotNil(t, e.Data.SyllableCount)
		assert.Equal(t, count, *e.Data.SyllableCount)
		require.Len(t, e.Data.Senses, 1)
		assert.Equal(t, "a stick of wax", e.Data.Senses[0].Definition)
	})

	t.Run("get missing", func(t *testing.T) {
		_, found, err := store.Get(t.Context(), "redis_missing")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("expiry", func(t *testing.T) {
		require.NoError(t, store.Set(t.Context(), "redis_expiry", Entry{Data: wordData("gone")}, 100*time.Millisecond))
		time.Sleep(300 * time.Millisecond)

		_, found, err := store.Get(t.Context(), "redis_expiry")
		require.NoError(t, err)
		assert.False(t, found)
	})
}
