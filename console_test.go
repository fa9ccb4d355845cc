package console

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/blacktek/console/core"
)

// recordingRenderer captures every message handed to Render.
type recordingRenderer struct {
	mu   sync.Mutex
	msgs []core.Message
	err  error
}

func (r *recordingRenderer) Render(msg core.Message) error {
	r.mu.Lock()
	r.msgs = append(r.msgs, msg)
	r.mu.Unlock()
	return r.err
}

func (r *recordingRenderer) rendered() []core.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.Message(nil), r.msgs...)
}

// recordingAppender captures every appended line and counts Close calls.
type recordingAppender struct {
	mu     sync.Mutex
	lines  []string
	closes int
	err    error
}

func (a *recordingAppender) Append(line string) error {
	a.mu.Lock()
	a.lines = append(a.lines, line)
	a.mu.Unlock()
	return a.err
}

func (a *recordingAppender) Close() error {
	a.mu.Lock()
	a.closes++
	a.mu.Unlock()
	return nil
}

func (a *recordingAppender) appended() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.lines...)
}

func (a *recordingAppender) closeCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.closes
}

func newTestConsole(t *testing.T) (*Console, *recordingRenderer, *recordingAppender) {
	t.Helper()
	r := &recordingRenderer{}
	a := &recordingAppender{}
	c := New(Config{Renderer: r, Appender: a, Capacity: 64})
	if err := c.Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	return c, r, a
}

// Pushing N messages and immediately shutting down must dispatch all N
// before Shutdown returns.
func TestConsole_DrainOnShutdown(t *testing.T) {
	c, r, _ := newTestConsole(t)

	const count = 500
	for i := 0; i < count; i++ {
		c.Print(fmt.Sprintf("msg-%d", i))
	}
	c.Shutdown()

	msgs := r.rendered()
	if len(msgs) != count {
		t.Fatalf("rendered %d messages, want %d", len(msgs), count)
	}
	for i, msg := range msgs {
		if want := fmt.Sprintf("msg-%d", i); msg.Text != want {
			t.Errorf("message %d = %q, want %q (order broken)", i, msg.Text, want)
		}
	}

	if got := c.Stats().Processed; got != count {
		t.Errorf("Stats().Processed = %d, want %d", got, count)
	}
}

func TestConsole_IdempotentLifecycle(t *testing.T) {
	r := &recordingRenderer{}
	a := &recordingAppender{}
	c := New(Config{Renderer: r, Appender: a})

	if err := c.Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if err := c.Initialize(""); err != nil {
		t.Fatalf("second Initialize() error = %v", err)
	}
	if !c.Running() {
		t.Fatal("Running() = false after Initialize")
	}

	// With two workers a message could dispatch twice; with one it
	// dispatches exactly once.
	const count = 200
	for i := 0; i < count; i++ {
		c.LogAndPrint(fmt.Sprintf("once-%d", i))
	}

	c.Shutdown()
	c.Shutdown()

	if c.Running() {
		t.Error("Running() = true after Shutdown")
	}
	if got := len(r.rendered()); got != count {
		t.Errorf("rendered %d messages, want exactly %d", got, count)
	}
	if got := len(a.appended()); got != count {
		t.Errorf("appended %d lines, want exactly %d", got, count)
	}
	if got := a.closeCount(); got != 1 {
		t.Errorf("appender closed %d times, want exactly 1", got)
	}
}

func TestConsole_RestartAfterShutdown(t *testing.T) {
	r := &recordingRenderer{}
	c := New(Config{Renderer: r, Appender: &recordingAppender{}})

	if err := c.Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	c.Print("first run")
	c.Shutdown()

	if err := c.Initialize(""); err != nil {
		t.Fatalf("re-Initialize() error = %v", err)
	}
	c.Print("second run")
	c.Shutdown()

	msgs := r.rendered()
	if len(msgs) != 2 {
		t.Fatalf("rendered %d messages across restart, want 2", len(msgs))
	}
	if msgs[1].Text != "second run" {
		t.Errorf("message after restart = %q, want %q", msgs[1].Text, "second run")
	}
}

// Messages enqueued before Initialize stay buffered and are delivered by
// the first drain pass.
func TestConsole_EnqueueBeforeInitialize(t *testing.T) {
	r := &recordingRenderer{}
	c := New(Config{Renderer: r, Appender: &recordingAppender{}})

	c.Print("early")

	if err := c.Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	c.Shutdown()

	msgs := r.rendered()
	if len(msgs) != 1 || msgs[0].Text != "early" {
		t.Errorf("rendered %v, want the single pre-Initialize message", msgs)
	}
}

// The dispatch table: exactly the renderer/appender combination each kind
// asks for, nothing more.
func TestConsole_DispatchTable(t *testing.T) {
	tests := []struct {
		kind         core.Kind
		wantTerminal bool
		wantLog      bool
	}{
		{core.Print, true, false},
		{core.Log, false, true},
		{core.LogAndPrint, true, true},
		{core.StyledPrint, true, false},
		{core.LogAndStyledPrint, true, true},
		{core.DebugPrint, true, false},
		{core.DebugLog, false, true},
		{core.DebugLogAndPrint, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			c, r, a := newTestConsole(t)

			c.push(core.Message{Text: "x", Kind: tt.kind})
			c.Shutdown()

			if got := len(r.rendered()) > 0; got != tt.wantTerminal {
				t.Errorf("rendered to terminal = %v, want %v", got, tt.wantTerminal)
			}
			if got := len(a.appended()) > 0; got != tt.wantLog {
				t.Errorf("appended to log = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

// StyledPrint renders styled even though the message could have taken the
// plain path.
func TestConsole_StyledKindForcesStyledPath(t *testing.T) {
	c, r, _ := newTestConsole(t)

	c.push(core.Message{Text: "x", Kind: core.StyledPrint}) // Styled left false
	c.Shutdown()

	msgs := r.rendered()
	if len(msgs) != 1 {
		t.Fatalf("rendered %d messages, want 1", len(msgs))
	}
	if !msgs[0].Styled {
		t.Error("StyledPrint message reached the renderer unstyled")
	}
}

func TestConsole_RenderBeforeAppend(t *testing.T) {
	var order []string
	var mu sync.Mutex

	r := renderFunc(func(msg core.Message) error {
		mu.Lock()
		order = append(order, "render")
		mu.Unlock()
		return nil
	})
	a := &recordingAppender{}
	c := New(Config{Renderer: r, Appender: appendObserver{a, func() {
		mu.Lock()
		order = append(order, "append")
		mu.Unlock()
	}}})
	if err := c.Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	c.LogAndPrint("ordered")
	c.Shutdown()

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 2 || order[0] != "render" || order[1] != "append" {
		t.Errorf("side effect order = %v, want [render append]", order)
	}
}

// A renderer failure must not skip the log append, and vice versa.
func TestConsole_SinkFailuresAreIsolated(t *testing.T) {
	t.Run("render_fails", func(t *testing.T) {
		r := &recordingRenderer{err: errors.New("terminal gone")}
		a := &recordingAppender{}
		c := New(Config{Renderer: r, Appender: a})
		if err := c.Initialize(""); err != nil {
			t.Fatalf("Initialize() error = %v", err)
		}

		c.LogAndPrint("survives")
		c.Shutdown()

		if got := a.appended(); len(got) != 1 || got[0] != "survives" {
			t.Errorf("appended %v, want the line despite render failure", got)
		}
		if got := c.Stats().RenderErrors; got != 1 {
			t.Errorf("Stats().RenderErrors = %d, want 1", got)
		}
	})

	t.Run("append_fails", func(t *testing.T) {
		r := &recordingRenderer{}
		a := &recordingAppender{err: errors.New("disk full")}
		c := New(Config{Renderer: r, Appender: a})
		if err := c.Initialize(""); err != nil {
			t.Fatalf("Initialize() error = %v", err)
		}

		c.LogAndPrint("survives")
		c.Shutdown()

		if got := r.rendered(); len(got) != 1 {
			t.Errorf("rendered %d messages, want 1 despite append failure", len(got))
		}
		if got := c.Stats().AppendErrors; got != 1 {
			t.Errorf("Stats().AppendErrors = %d, want 1", got)
		}
	})
}

// An unopenable log file reports the error but leaves the console running
// with log dispatch silently skipped.
func TestConsole_LogFileOpenFailure(t *testing.T) {
	r := &recordingRenderer{}
	c := New(Config{Renderer: r})

	badPath := filepath.Join(t.TempDir(), "missing", "out.log")
	if err := c.Initialize(badPath); err == nil {
		t.Fatal("Initialize() with unopenable path error = nil, want error")
	}
	if !c.Running() {
		t.Fatal("Running() = false, console must start despite log failure")
	}

	c.Log("dropped silently")
	c.Print("still printed")
	c.Shutdown()

	if got := r.rendered(); len(got) != 1 || got[0].Text != "still printed" {
		t.Errorf("rendered %v, want only the print", got)
	}
	if got := c.Stats().AppendSkipped; got != 1 {
		t.Errorf("Stats().AppendSkipped = %d, want 1", got)
	}
}

func TestConsole_LogFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.log")
	c := New(Config{Renderer: &recordingRenderer{}})

	if err := c.Initialize(path); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	c.Log("line one")
	c.LogAndPrint("line two")
	c.Print("terminal only")
	c.Shutdown()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got, want := string(data), "line one\nline two\n"; got != want {
		t.Errorf("log file = %q, want %q", got, want)
	}
	if strings.Contains(string(data), "terminal only") {
		t.Error("print-only message leaked into the log file")
	}
}

// Sustained overload on a tiny buffer: producers stall but never lose a
// message.
func TestConsole_BackpressureLosesNothing(t *testing.T) {
	r := &recordingRenderer{}
	c := New(Config{Renderer: r, Appender: &recordingAppender{}, Capacity: 4})
	if err := c.Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	const producers = 4
	const perProducer = 1000

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				c.Printf("%d:%d", p, i)
			}
		}(p)
	}
	wg.Wait()
	c.Shutdown()

	if got := len(r.rendered()); got != producers*perProducer {
		t.Errorf("rendered %d messages, want %d", got, producers*perProducer)
	}
}

// renderFunc adapts a function to the sink.Renderer interface.
type renderFunc func(core.Message) error

func (f renderFunc) Render(msg core.Message) error { return f(msg) }

// appendObserver wraps an appender, calling fn before each append.
type appendObserver struct {
	*recordingAppender
	fn func()
}

func (o appendObserver) Append(line string) error {
	o.fn()
	return o.recordingAppender.Append(line)
}
