package impl

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"voiceauth/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "voiceauth-test"
	cfg.HTTP.PublicBaseURL = "https://api.example.com/"
	cfg.SecretKey.Session = "test-session-secret"
	cfg.ApplyDefaults()

	return cfg
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// sequenceTail returns the given tails in order, then repeats the last one.
func sequenceTail(tails ...string) handleTail {
	var mu sync.Mutex
	i := 0

	return func() (string, error) {
		mu.Lock()
		defer mu.Unlock()

		tail := tails[min(i, len(tails)-1)]
		i++

		return tail, nil
	}
}
