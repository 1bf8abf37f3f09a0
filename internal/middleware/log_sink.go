package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/trailer-loading-service/internal/domain/model"
	"github.com/guttosm/trailer-loading-service/internal/logger"
	"github.com/guttosm/trailer-loading-service/internal/service"
)

// LogSinkConfig tunes the buffered log sink.
type LogSinkConfig struct {
	// QueueSize is the capacity of the entry queue. Entries beyond it
	// are dropped rather than blocking request handling.
	QueueSize int
	// Workers is the number of goroutines draining the queue.
	Workers int
	// WriteTimeout bounds each mongo write.
	WriteTimeout time.Duration
}

// DefaultLogSinkConfig returns the queue sizing used in production.
func DefaultLogSinkConfig() LogSinkConfig {
	return LogSinkConfig{
		QueueSize:    1000,
		Workers:      4,
		WriteTimeout: 5 * time.Second,
	}
}

// LogSinkStats is a snapshot of sink counters.
type LogSinkStats struct {
	Enqueued int64
	Dropped  int64
	Written  int64
	Failed   int64
}

// LogSink drains request and audit log entries into mongo through a
// fixed worker pool. Every optimize and auth request produces an entry,
// so writes must not spawn a goroutine per request.
type LogSink struct {
	logs         service.LoggingService
	queue        chan *model.LogEntry
	wg           sync.WaitGroup
	closed       atomic.Bool
	writeTimeout time.Duration

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	failed   atomic.Int64
}

// NewLogSink starts a sink draining into the given logging service.
// A nil logging service yields a nil sink.
func NewLogSink(logs service.LoggingService, cfg LogSinkConfig) *LogSink {
	if logs == nil {
		return nil
	}

	s := &LogSink{
		logs:         logs,
		queue:        make(chan *model.LogEntry, cfg.QueueSize),
		writeTimeout: cfg.WriteTimeout,
	}

	for i := 0; i < cfg.Workers; i++ {
		s.wg.Add(1)
		go s.drain()
	}

	return s
}

// drain persists entries until the queue is closed and empty.
func (s *LogSink) drain() {
	defer s.wg.Done()

	for entry := range s.queue {
		s.persist(entry)
	}
}

func (s *LogSink) persist(entry *model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()

	if err := s.logs.CreateLog(ctx, entry); err != nil {
		s.failed.Add(1)
		log := logger.Logger()
		log.Warn().Err(err).Msg("Failed to persist log entry")
		return
	}
	s.written.Add(1)
}

// Enqueue hands an entry to the worker pool. It never blocks: when the
// queue is full or the sink is stopped the entry is dropped and false
// is returned.
func (s *LogSink) Enqueue(entry *model.LogEntry) bool {
	if s.closed.Load() {
		return false
	}

	select {
	case s.queue <- entry:
		s.enqueued.Add(1)
		return true
	default:
		s.dropped.Add(1)
		return false
	}
}

// Stop closes the queue and waits until every buffered entry has been
// written. Safe to call more than once.
func (s *LogSink) Stop() {
	if s.closed.Swap(true) {
		return
	}
	close(s.queue)
	s.wg.Wait()
}

// Stats returns a snapshot of the sink counters.
func (s *LogSink) Stats() LogSinkStats {
	return LogSinkStats{
		Enqueued: s.enqueued.Load(),
		Dropped:  s.dropped.Load(),
		Written:  s.written.Load(),
		Failed:   s.failed.Load(),
	}
}

var (
	sinkMu sync.RWMutex
	sink   *LogSink
)

// InitLogSink installs the process-wide sink. Called once at startup,
// after the mongo logging service exists. Replaces and stops any
// previously installed sink.
func InitLogSink(logs service.LoggingService, cfg LogSinkConfig) {
	sinkMu.Lock()
	defer sinkMu.Unlock()

	if sink != nil {
		sink.Stop()
	}
	sink = NewLogSink(logs, cfg)
}

// GetLogSink returns the installed sink, or nil when persistence is
// disabled.
func GetLogSink() *LogSink {
	sinkMu.RLock()
	defer sinkMu.RUnlock()
	return sink
}

// StopLogSink flushes and removes the installed sink.
func StopLogSink() {
	sinkMu.Lock()
	defer sinkMu.Unlock()

	if sink != nil {
		sink.Stop()
		sink = nil
	}
}
