package infra

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/bgc/platform/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OutboxPoller polls the event_outbox table and publishes events to Kafka.
// Rows are fetched and marked inside one transaction with SKIP LOCKED so
// multiple poller instances never double-publish.
type OutboxPoller struct {
	pool      *pgxpool.Pool
	outbox    repository.OutboxRepository
	producer  *KafkaProducer
	logger    *slog.Logger
	interval  time.Duration
	batchSize int
}

// NewOutboxPoller creates a new outbox poller.
func NewOutboxPoller(pool *pgxpool.Pool, outbox repository.OutboxRepository, producer *KafkaProducer, logger *slog.Logger) *OutboxPoller {
	return &OutboxPoller{
		pool:      pool,
		outbox:    outbox,
		producer:  producer,
		logger:    logger,
		interval:  500 * time.Millisecond,
		batchSize: 100,
	}
}

// Start begins polling in a goroutine. Stops when ctx is cancelled.
func (p *OutboxPoller) Start(ctx context.Context) {
	p.logger.Info("outbox poller started", "interval", p.interval, "batch_size", p.batchSize)

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				p.logger.Info("outbox poller stopped")
				return
			case <-ticker.C:
				if err := p.poll(ctx); err != nil {
					p.logger.Error("outbox poll error", "error", err)
				}
			}
		}
	}()
}

func (p *OutboxPoller) poll(ctx context.Context) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	rows, err := p.outbox.FetchUnpublishedRows(ctx, tx, p.batchSize)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	published := make([]int64, 0, len(rows))
	for _, row := range rows {
		msg, err := json.Marshal(row.OutboxDraft)
		if err != nil {
			p.logger.Error("marshal outbox event", "event_id", row.EventID, "error", err)
			continue
		}

		topic := string(row.EventType)
		if err := p.producer.Publish(ctx, topic, []byte(row.PartitionKey), msg); err != nil {
			p.logger.Error("kafka publish failed", "event_id", row.EventID, "error", err)
			continue
		}
		published = append(published, row.SeqID)
	}

	if err := p.outbox.MarkPublished(ctx, tx, published); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.logger.Debug("outbox poll complete", "published", len(published))
	return nil
}
