// Package usage keeps an audit trail of upstream provider calls.
package usage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/XavierBriggs/Janus/internal/metrics"
	"github.com/XavierBriggs/Janus/pkg/contracts"
	"github.com/XavierBriggs/Janus/pkg/models"
)

const (
	defaultBatchSize     = 100
	defaultFlushInterval = 5 * time.Second
	streamKeyFormat      = "janus.upstream.%s" // janus.upstream.NBA
	bufferFactor         = 10
)

// Ledger batches usage records into Postgres and publishes them to Redis Streams.
// Either sink may be nil. Failures are logged and counted, never returned to callers.
type Ledger struct {
	db     *sql.DB
	redis  *redis.Client
	logger *zap.Logger

	batchSize     int
	flushInterval time.Duration

	buffer []models.UsageRecord
	mu     sync.Mutex

	flushNow chan struct{}
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Ensure Ledger implements UsageRecorder
var _ contracts.UsageRecorder = (*Ledger)(nil)

// StreamMessage represents a message published to the Redis Stream
type StreamMessage struct {
	ID         string    `json:"id"`
	League     string    `json:"league"`
	Operation  string    `json:"operation"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	DurationMS int64     `json:"duration_ms"`
	WaitedMS   int64     `json:"waited_ms"`
	Error      string    `json:"error,omitempty"`
	CalledAt   time.Time `json:"called_at"`
}

// Option customizes a Ledger
type Option func(*Ledger)

// WithBatchSize sets how many records trigger an early flush
func WithBatchSize(n int) Option {
	return func(l *Ledger) {
		if n > 0 {
			l.batchSize = n
		}
	}
}

// WithFlushInterval sets the background flush period
func WithFlushInterval(d time.Duration) Option {
	return func(l *Ledger) {
		if d > 0 {
			l.flushInterval = d
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// NewLedger creates a batching ledger
func NewLedger(db *sql.DB, redisClient *redis.Client, opts ...Option) *Ledger {
	l := &Ledger{
		db:            db,
		redis:         redisClient,
		logger:        zap.NewNop(),
		batchSize:     defaultBatchSize,
		flushInterval: defaultFlushInterval,
		flushNow:      make(chan struct{}, 1),
		stopChan:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = zap.NewNop()
	}
	l.buffer = make([]models.UsageRecord, 0, l.batchSize)
	return l
}

// Start begins the background flush ticker
func (l *Ledger) Start(ctx context.Context) {
	ticker := time.NewTicker(l.flushInterval)

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.flushLogged(ctx)
			case <-l.flushNow:
				l.flushLogged(ctx)
			case <-l.stopChan:
				// Final flush on shutdown, detached from the cancelled parent
				flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				l.flushLogged(flushCtx)
				cancel()
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop flushes what is buffered and stops the background loop
func (l *Ledger) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
	l.wg.Wait()
}

// Record buffers one record. It never blocks on I/O.
func (l *Ledger) Record(_ context.Context, rec models.UsageRecord) {
	l.mu.Lock()
	if len(l.buffer) >= l.batchSize*bufferFactor {
		l.mu.Unlock()
		metrics.UsageRecordsDropped.Inc()
		return
	}
	l.buffer = append(l.buffer, rec)
	shouldFlush := len(l.buffer) >= l.batchSize
	l.mu.Unlock()

	if shouldFlush {
		select {
		case l.flushNow <- struct{}{}:
		default:
		}
	}
}

// Pending returns the number of buffered records
func (l *Ledger) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buffer)
}

func (l *Ledger) flushLogged(ctx context.Context) {
	if err := l.Flush(ctx); err != nil {
		l.logger.Warn("usage flush failed", zap.Error(err))
	}
}

// Flush writes buffered records to Postgres and publishes them to Redis Streams
func (l *Ledger) Flush(ctx context.Context) error {
	l.mu.Lock()
	if len(l.buffer) == 0 {
		l.mu.Unlock()
		return nil
	}

	// Swap buffer
	records := l.buffer
	l.buffer = make([]models.UsageRecord, 0, l.batchSize)
	l.mu.Unlock()

	if l.db != nil {
		if err := l.insertRecords(ctx, records); err != nil {
			metrics.UsageRecordsDropped.Add(float64(len(records)))
			return fmt.Errorf("insert usage records: %w", err)
		}
	}

	// Stream publishing is best effort; the table is the source of truth
	if l.redis != nil {
		if err := l.publishToStream(ctx, records); err != nil {
			l.logger.Warn("publish usage to stream failed", zap.Error(err))
		}
	}

	l.logger.Debug("flushed usage records", zap.Int("count", len(records)))
	return nil
}

// insertRecords batch inserts records with UNNEST inside one transaction
func (l *Ledger) insertRecords(ctx context.Context, records []models.UsageRecord) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO upstream_calls (
			id, league, operation, path, status_code,
			duration_ms, waited_ms, error, called_at
		)
		SELECT * FROM UNNEST(
			$1::uuid[], $2::text[], $3::text[], $4::text[], $5::int[],
			$6::bigint[], $7::bigint[], $8::text[], $9::timestamptz[]
		)
	`

	ids := make([]string, len(records))
	leagues := make([]string, len(records))
	operations := make([]string, len(records))
	paths := make([]string, len(records))
	statusCodes := make([]int64, len(records))
	durations := make([]int64, len(records))
	waits := make([]int64, len(records))
	errs := make([]string, len(records))
	calledAts := make([]time.Time, len(records))

	for i, rec := range records {
		ids[i] = rec.ID
		leagues[i] = rec.League.String()
		operations[i] = rec.Operation
		paths[i] = rec.Path
		statusCodes[i] = int64(rec.StatusCode)
		durations[i] = rec.Duration.Milliseconds()
		waits[i] = rec.Waited.Milliseconds()
		errs[i] = rec.Error
		calledAts[i] = rec.At
	}

	if _, err := tx.ExecContext(ctx, query,
		pq.Array(ids), pq.Array(leagues), pq.Array(operations), pq.Array(paths), pq.Array(statusCodes),
		pq.Array(durations), pq.Array(waits), pq.Array(errs), pq.Array(calledAts),
	); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// publishToStream publishes records to one stream per league
func (l *Ledger) publishToStream(ctx context.Context, records []models.UsageRecord) error {
	byLeague := make(map[models.LeagueID][]models.UsageRecord)
	for _, rec := range records {
		byLeague[rec.League] = append(byLeague[rec.League], rec)
	}

	for league, leagueRecords := range byLeague {
		streamKey := fmt.Sprintf(streamKeyFormat, league)
		pipe := l.redis.Pipeline()

		for _, rec := range leagueRecords {
			msgJSON, err := json.Marshal(StreamMessage{
				ID:         rec.ID,
				League:     rec.League.String(),
				Operation:  rec.Operation,
				Path:       rec.Path,
				StatusCode: rec.StatusCode,
				DurationMS: rec.Duration.Milliseconds(),
				WaitedMS:   rec.Waited.Milliseconds(),
				Error:      rec.Error,
				CalledAt:   rec.At,
			})
			if err != nil {
				return fmt.Errorf("marshal stream message: %w", err)
			}

			pipe.XAdd(ctx, &redis.XAddArgs{
				Stream: streamKey,
				Values: map[string]interface{}{
					"data": msgJSON,
				},
			})
		}

		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("redis pipeline exec for stream %s: %w", streamKey, err)
		}
	}

	return nil
}
