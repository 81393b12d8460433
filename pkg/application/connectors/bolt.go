package connectors

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/boltdb/bolt"
	"github.com/samber/lo"

	"beer_service/pkg/logx"
)

const boltFileMode = 0o600

// Bolt opens the single-file embedded database. Only one process may hold the
// file lock, OpenTimeout bounds the wait for it.
type Bolt struct {
	value       *bolt.DB
	Path        string
	OpenTimeout time.Duration
	init        sync.Once
}

func (b *Bolt) Client(ctx context.Context) *bolt.DB {
	b.init.Do(func() {
		b.value = lo.Must(bolt.Open(b.Path, boltFileMode, &bolt.Options{Timeout: b.OpenTimeout}))

		logger(ctx).Info("bolt opened", slog.String("path", b.Path))
	})

	return b.value
}

func (b *Bolt) Close(ctx context.Context) {
	if b.value == nil {
		return
	}

	if err := b.value.Close(); err != nil {
		logger(ctx).Error("boltClient.Close", logx.Error(err))
	}

	logger(ctx).Info("bolt closed", slog.String("path", b.Path))
}
