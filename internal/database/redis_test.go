package database_test

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/hypernova-labs/ventas-service/internal/database"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHook responde los comandos en memoria sin abrir conexiones
type recordingHook struct {
	mu       sync.Mutex
	counts   map[string]int64
	batches  [][]redis.Cmder
	failWith error
}

func (h *recordingHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return nil, errors.New("dial disabled in tests")
	}
}

func (h *recordingHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		return h.answer([]redis.Cmder{cmd})
	}
}

func (h *recordingHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		return h.answer(cmds)
	}
}

func (h *recordingHook) answer(cmds []redis.Cmder) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.batches = append(h.batches, cmds)
	if h.failWith != nil {
		for _, cmd := range cmds {
			cmd.SetErr(h.failWith)
		}
		return h.failWith
	}

	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case *redis.IntCmd:
			key, _ := c.Args()[1].(string)
			h.counts[key]++
			c.SetVal(h.counts[key])
		case *redis.BoolCmd:
			c.SetVal(true)
		}
	}
	return nil
}

func (h *recordingHook) names(batch int) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	var names []string
	for _, cmd := range h.batches[batch] {
		names = append(names, cmd.Name())
	}
	return names
}

func newHookedRedis(t *testing.T, hook *recordingHook) *database.Redis {
	t.Helper()
	hook.counts = map[string]int64{}
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	client.AddHook(hook)
	t.Cleanup(func() { _ = client.Close() })
	return &database.Redis{Client: client}
}

func TestIncrWindow_SetsTTLInSameTransaction(t *testing.T) {
	hook := &recordingHook{}
	r := newHookedRedis(t, hook)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		count, err := r.IncrWindow(ctx, "ratelimit:1.2.3.4:100", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}

	// Cada incremento viaja con su EXPIRE dentro de MULTI/EXEC
	require.Len(t, hook.batches, 3)
	for i := range hook.batches {
		names := hook.names(i)
		assert.Subset(t, names, []string{"multi", "incr", "expire", "exec"})

		for _, cmd := range hook.batches[i] {
			if cmd.Name() == "expire" {
				assert.Equal(t, "ratelimit:1.2.3.4:100", cmd.Args()[1])
				assert.EqualValues(t, 60, cmd.Args()[2])
			}
		}
	}
}

func TestIncrWindow_FailureReturnsError(t *testing.T) {
	hook := &recordingHook{failWith: errors.New("connection refused")}
	r := newHookedRedis(t, hook)

	count, err := r.IncrWindow(context.Background(), "ratelimit:k", time.Minute)
	require.Error(t, err)
	assert.Equal(t, int64(0), count)
}
