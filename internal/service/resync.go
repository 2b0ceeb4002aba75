package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devyassinepro/shopify-product-publisher/internal/domain"
)

// SyncFunc re-syncs a store's catalog after a successful publish. The actual
// sync job lives outside this service; the default implementation only
// records the trigger.
type SyncFunc func(ctx context.Context, storeID uuid.UUID) error

// ResyncQueue is the fire-and-forget channel between an accepted publish and
// the catalog resync job. Enqueueing never blocks a publish: when the queue is
// full the signal is dropped and logged.
type ResyncQueue struct {
	ch     chan uuid.UUID
	sync   SyncFunc
	logger *zap.Logger
}

// NewResyncQueue creates a resync queue with a bounded buffer. A nil sync
// function installs a logging no-op.
func NewResyncQueue(size int, sync SyncFunc, logger *zap.Logger) *ResyncQueue {
	if logger == nil {
		logger = zap.NewNop()
	}
	if size <= 0 {
		size = 64
	}
	q := &ResyncQueue{
		ch:     make(chan uuid.UUID, size),
		logger: logger,
	}
	if sync == nil {
		sync = func(ctx context.Context, storeID uuid.UUID) error {
			logger.Info("Catalog resync triggered", zap.String("store_id", storeID.String()))
			return nil
		}
	}
	q.sync = sync
	return q
}

// Enqueue signals that the store's catalog should be re-synced
func (q *ResyncQueue) Enqueue(store *domain.Store) {
	select {
	case q.ch <- store.ID:
	default:
		q.logger.Warn("Resync queue full, dropping signal", zap.String("store_id", store.ID.String()))
	}
}

// Run consumes resync signals until the context is canceled. Call from a
// goroutine.
func (q *ResyncQueue) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case storeID := <-q.ch:
			if err := q.sync(ctx, storeID); err != nil {
				q.logger.Warn("Catalog resync failed", zap.String("store_id", storeID.String()), zap.Error(err))
			}
		}
	}
}
