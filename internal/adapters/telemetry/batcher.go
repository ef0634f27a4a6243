// Package telemetry traces build steps with OpenTelemetry and feeds their durations to metrics.
package telemetry

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultLineLimit is how many complete lines are buffered before a flush.
	DefaultLineLimit = 64
	// DefaultInterval is how often buffered lines are flushed regardless of count.
	DefaultInterval = time.Second
	// DefaultMaxFlushes bounds the events one span receives. Later lines are counted, not kept.
	DefaultMaxFlushes = 256
)

var errBatcherClosed = zerr.New("line batcher is closed")

// LineBatcher groups delegated tool output into whole-line chunks for span events.
// A trailing partial line stays buffered until it is completed or the batcher is closed.
// It is safe for concurrent use.
type LineBatcher struct {
	lineLimit  int
	interval   time.Duration
	maxFlushes int
	onFlush    func([]byte)

	mu      sync.Mutex
	buffer  bytes.Buffer
	lines   int
	flushes int
	dropped int
	ticker  *time.Ticker
	stopCh  chan struct{}
	closed  bool
}

// NewLineBatcher returns a new LineBatcher. Zero limits select the defaults.
// Call Close to stop the background ticker.
func NewLineBatcher(lineLimit int, interval time.Duration, maxFlushes int, onFlush func([]byte)) *LineBatcher {
	if lineLimit <= 0 {
		lineLimit = DefaultLineLimit
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	if maxFlushes <= 0 {
		maxFlushes = DefaultMaxFlushes
	}

	lb := &LineBatcher{
		lineLimit:  lineLimit,
		interval:   interval,
		maxFlushes: maxFlushes,
		onFlush:    onFlush,
		stopCh:     make(chan struct{}),
		ticker:     time.NewTicker(interval),
	}
	go lb.run()

	return lb
}

// Write buffers p and flushes once lineLimit complete lines are pending.
func (lb *LineBatcher) Write(p []byte) (int, error) {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	if lb.closed {
		return 0, errBatcherClosed
	}

	lb.buffer.Write(p)
	lb.lines += bytes.Count(p, []byte{'\n'})
	if lb.lines >= lb.lineLimit {
		lb.flushLocked(false)
		lb.ticker.Reset(lb.interval)
	}

	return len(p), nil
}

// Flush emits the complete lines buffered so far.
func (lb *LineBatcher) Flush() {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	if lb.closed {
		return
	}
	lb.flushLocked(false)
}

// Dropped reports how many lines were discarded after the flush limit was reached.
func (lb *LineBatcher) Dropped() int {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.dropped
}

// Close stops the background flusher and emits everything still buffered,
// followed by a note when lines were dropped.
func (lb *LineBatcher) Close() error {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	if lb.closed {
		return nil
	}

	lb.closed = true
	close(lb.stopCh)
	lb.flushLocked(true)
	if lb.dropped > 0 && lb.onFlush != nil {
		lb.onFlush(fmt.Appendf(nil, "(%d more lines not recorded)\n", lb.dropped))
	}
	return nil
}

func (lb *LineBatcher) run() {
	for {
		select {
		case <-lb.ticker.C:
			lb.Flush()
		case <-lb.stopCh:
			lb.ticker.Stop()
			return
		}
	}
}

// flushLocked must be called with mu held. Unless all is set, a trailing partial line is kept.
func (lb *LineBatcher) flushLocked(all bool) {
	n := lb.buffer.Len()
	if !all {
		n = bytes.LastIndexByte(lb.buffer.Bytes(), '\n') + 1
	}
	if n == 0 {
		return
	}

	data := make([]byte, n)
	copy(data, lb.buffer.Next(n))
	lines := bytes.Count(data, []byte{'\n'})
	lb.lines -= lines

	if lb.flushes >= lb.maxFlushes {
		if all && data[len(data)-1] != '\n' {
			lines++
		}
		lb.dropped += lines
		return
	}
	lb.flushes++
	if lb.onFlush != nil {
		lb.onFlush(data)
	}
}
