package console

import (
	"sync"
	"sync/atomic"

	"github.com/blacktek/console/core"
	"github.com/blacktek/console/queue"
	"github.com/blacktek/console/sink"
)

// Console is an asynchronous sink for terminal and log-file output.
// Producers enqueue messages through the Print/Log family of methods and
// never wait for I/O; a single background goroutine drains the queue and
// performs the writes.
//
// A Console is created stopped. Initialize starts the drain goroutine and
// opens the log file; Shutdown drains everything still queued, stops the
// goroutine and closes the file. Both are idempotent. Messages enqueued
// while the Console is stopped stay buffered and are delivered by the next
// Initialize.
type Console struct {
	cfg      Config
	buf      *queue.Buffer
	notifier *queue.Notifier
	renderer sink.Renderer
	stats    *Stats

	running  atomic.Bool
	appender sink.Appender // set by Initialize, closed by Shutdown
	wg       sync.WaitGroup
}

// New creates a Console with the given configuration. The returned Console
// accepts messages immediately but dispatches nothing until Initialize.
func New(cfg Config) *Console {
	applyDefaults(&cfg)
	return &Console{
		cfg:      cfg,
		buf:      queue.NewBuffer(cfg.Capacity),
		notifier: queue.NewNotifier(),
		renderer: cfg.Renderer,
		stats:    &Stats{},
	}
}

// Initialize opens the log stream in append mode and starts the drain
// goroutine. An empty logFileName selects Config.LogFile. Calling
// Initialize on a running Console is a no-op.
//
// A log file that cannot be opened does not prevent startup: the error is
// returned, the Console runs, and log dispatch is skipped until the next
// Initialize succeeds.
func (c *Console) Initialize(logFileName string) error {
	if !c.running.CompareAndSwap(false, true) {
		return nil
	}

	var err error
	if c.cfg.Appender != nil {
		c.appender = c.cfg.Appender
	} else {
		name := logFileName
		if name == "" {
			name = c.cfg.LogFile
		}
		var f *sink.File
		if f, err = sink.OpenFile(name); err == nil {
			c.appender = f
		}
	}

	c.wg.Add(1)
	go c.drain()
	return err
}

// Shutdown stops the drain goroutine and closes the log stream. Every
// message enqueued before Shutdown is dispatched before it returns: the
// goroutine performs one final unconditional drain pass on its way out.
// Calling Shutdown on a stopped Console is a no-op.
func (c *Console) Shutdown() {
	if !c.running.CompareAndSwap(true, false) {
		return
	}

	c.notifier.Wake()
	c.wg.Wait()

	if c.appender != nil {
		c.appender.Close()
		c.appender = nil
	}
}

// Running reports whether the drain goroutine is active.
func (c *Console) Running() bool {
	return c.running.Load()
}

// Stats returns a snapshot of the dispatch counters.
func (c *Console) Stats() Snapshot {
	return c.stats.GetSnapshot()
}

// drain is the single consumer goroutine: empty the buffer, sleep on the
// notifier, repeat until Shutdown, then make one last pass so nothing
// enqueued before the stop signal is lost.
func (c *Console) drain() {
	defer c.wg.Done()

	observed := c.notifier.Observe()
	for c.running.Load() {
		c.drainAll()
		observed = c.notifier.Wait(observed)
	}

	c.drainAll()
}

func (c *Console) drainAll() {
	for {
		msg, ok := c.buf.Pop()
		if !ok {
			return
		}
		c.dispatch(msg)
	}
}

// dispatch performs the sink writes for one message: terminal first, then
// log. The two are independent; a failure in one never skips the other,
// and neither failure is reported to producers.
func (c *Console) dispatch(msg core.Message) {
	if msg.Kind.WantsTerminal() {
		if msg.Kind.AlwaysStyled() {
			msg.Styled = true
		}
		if err := c.renderer.Render(msg); err != nil {
			c.stats.IncrementRenderErrors()
		}
	}

	if msg.Kind.WantsLog() {
		if c.appender == nil {
			c.stats.IncrementAppendSkipped()
		} else if err := c.appender.Append(msg.Text); err != nil {
			c.stats.IncrementAppendErrors()
		}
	}

	c.stats.IncrementProcessed()
}
