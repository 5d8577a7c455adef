package handler

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/levellog/core"
	"github.com/philipp01105/levellog/formatter"
)

func plainFormatter() formatter.Formatter {
	return formatter.NewTextFormatter(formatter.Config{DisableTimestamp: true})
}

func TestConsoleHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf, Formatter: plainFormatter()})
	defer h.Close()

	err := h.Handle(core.Entry{Level: core.InfoLevel, Logger: "svc", Message: "test message"})
	require.NoError(t, err)

	assert.Equal(t, "[INFO] [svc] test message\n", buf.String())

	snap := h.Stats()
	assert.Equal(t, uint64(1), snap.Processed[core.InfoLevel])
	assert.Equal(t, uint64(1), snap.ProcessedTotal)
	assert.Zero(t, snap.FailedTotal)
}

func TestConsoleHandler_PreservesCallOrder(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf, Formatter: plainFormatter()})

	for i := 0; i < 5; i++ {
		require.NoError(t, h.Handle(core.Entry{Level: core.DebugLevel, Message: fmt.Sprintf("m%d", i)}))
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	for i, line := range lines {
		assert.Equal(t, fmt.Sprintf("[DEBUG] m%d", i), line)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestConsoleHandler_WriteError(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{Writer: failingWriter{}})

	err := h.Handle(core.Entry{Level: core.ErrorLevel, Message: "x"})
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, uint64(1), h.Stats().FailedTotal)
	assert.Zero(t, h.Stats().ProcessedTotal)
}

// byteFormatter only implements Formatter, exercising the non-writer path
type byteFormatter struct{}

func (byteFormatter) Format(e core.Entry) ([]byte, error) {
	return []byte(e.Level.String() + ":" + e.Message + "\n"), nil
}

func TestConsoleHandler_PlainFormatter(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf, Formatter: byteFormatter{}})

	require.NoError(t, h.Handle(core.Entry{Level: core.WarnLevel, Message: "careful"}))
	assert.Equal(t, "WARN:careful\n", buf.String())
}

func TestConsoleHandler_Closed(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})
	require.NoError(t, h.Close())

	err := h.Handle(core.Entry{Level: core.InfoLevel, Message: "late"})
	assert.ErrorIs(t, err, ErrClosed)
	assert.Empty(t, buf.String())
}

func TestConsoleHandler_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf, Formatter: plainFormatter()})

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_ = h.Handle(core.Entry{Level: core.InfoLevel, Message: "concurrent"})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, strings.Count(buf.String(), "[INFO] concurrent\n"))
	assert.Equal(t, uint64(800), h.Stats().ProcessedTotal)
}

func TestBufferHandler_RetainsMessages(t *testing.T) {
	h := NewBufferHandler(BufferConfig{Formatter: plainFormatter()})

	cause := errors.New("e")
	require.NoError(t, h.Handle(core.Entry{Level: core.WarnLevel, Message: "y"}))
	require.NoError(t, h.Handle(core.Entry{Level: core.ErrorLevel, Message: "z", Err: cause}))

	assert.Equal(t, []string{"[WARN] y", "[ERROR] z: e"}, h.Messages())
	assert.Equal(t, "[WARN] y\n[ERROR] z: e", h.String())
	assert.Equal(t, 2, h.Len())

	entries := h.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, core.ErrorLevel, entries[1].Level)
	assert.Same(t, cause, entries[1].Err)
}

func TestBufferHandler_EvictsOldest(t *testing.T) {
	h := NewBufferHandler(BufferConfig{Capacity: 3, Formatter: plainFormatter()})

	for i := 0; i < 5; i++ {
		require.NoError(t, h.Handle(core.Entry{Level: core.InfoLevel, Message: fmt.Sprintf("m%d", i)}))
	}

	assert.Equal(t, []string{"[INFO] m2", "[INFO] m3", "[INFO] m4"}, h.Messages())
	entries := h.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "m2", entries[0].Message)
	assert.Equal(t, "m4", entries[2].Message)
}

func TestBufferHandler_ResetAndClose(t *testing.T) {
	h := NewBufferHandler(BufferConfig{})
	require.NoError(t, h.Handle(core.Entry{Level: core.InfoLevel, Message: "a", Time: time.Now()}))

	h.Reset()
	assert.Zero(t, h.Len())
	assert.Empty(t, h.Messages())

	require.NoError(t, h.Handle(core.Entry{Level: core.InfoLevel, Message: "b"}))
	require.NoError(t, h.Close())
	assert.ErrorIs(t, h.Handle(core.Entry{Level: core.InfoLevel, Message: "c"}), ErrClosed)

	require.Equal(t, 1, h.Len())
	assert.Contains(t, h.Messages()[0], "b")
}

func TestCallbackHandler(t *testing.T) {
	_, err := NewCallbackHandler(nil)
	assert.ErrorIs(t, err, ErrNilCallback)

	var got []core.Entry
	h, err := NewCallbackHandler(func(e core.Entry) { got = append(got, e) })
	require.NoError(t, err)

	entry := core.Entry{Level: core.FatalLevel, Message: "boom", Err: errors.New("e")}
	require.NoError(t, h.Handle(entry))
	require.Len(t, got, 1)
	assert.Equal(t, entry, got[0])

	require.NoError(t, h.Close())
	assert.ErrorIs(t, h.Handle(entry), ErrClosed)
	assert.Len(t, got, 1)
}

func TestCallbackHandler_PanicPropagates(t *testing.T) {
	h, err := NewCallbackHandler(func(core.Entry) { panic("sink failure") })
	require.NoError(t, err)

	assert.PanicsWithValue(t, "sink failure", func() {
		_ = h.Handle(core.Entry{Level: core.InfoLevel})
	})
}

type errHandler struct {
	handleErr, closeErr error
	calls               int
}

func (h *errHandler) Handle(core.Entry) error {
	h.calls++
	return h.handleErr
}

func (h *errHandler) Close() error { return h.closeErr }

func TestMultiHandler(t *testing.T) {
	first := &errHandler{handleErr: errors.New("first"), closeErr: errors.New("close first")}
	second := &errHandler{}
	third := &errHandler{handleErr: errors.New("third")}

	m := NewMultiHandler(first, nil, second, third)

	err := m.Handle(core.Entry{Level: core.InfoLevel})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "third")
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, 1, third.calls)

	assert.EqualError(t, m.Close(), "close first")
}

func TestMultiHandler_AllSucceed(t *testing.T) {
	a, b := NewBufferHandler(BufferConfig{}), NewBufferHandler(BufferConfig{})
	m := NewMultiHandler(a, b)

	require.NoError(t, m.Handle(core.Entry{Level: core.InfoLevel, Message: "fan-out"}))
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
	assert.NoError(t, m.Close())
}

func TestStats_Reset(t *testing.T) {
	s := NewStats()
	s.IncrementProcessed(core.TraceLevel)
	s.IncrementProcessed(core.FatalLevel)
	s.IncrementProcessed(core.Level(50))
	s.IncrementFailed()

	assert.Equal(t, uint64(1), s.GetProcessed(core.TraceLevel))
	assert.Zero(t, s.GetProcessed(core.Level(50)))
	assert.Equal(t, uint64(2), s.GetSnapshot().ProcessedTotal)

	s.Reset()
	snap := s.GetSnapshot()
	assert.Zero(t, snap.ProcessedTotal)
	assert.Zero(t, snap.FailedTotal)
}

func TestLockedWriter_SharedByHandlers(t *testing.T) {
	var buf bytes.Buffer
	w := NewLockedWriter(&buf)
	assert.Same(t, w, NewLockedWriter(w))

	a := NewConsoleHandler(ConsoleConfig{Writer: w, Formatter: plainFormatter()})
	b := NewConsoleHandler(ConsoleConfig{Writer: w, Formatter: plainFormatter()})

	var wg sync.WaitGroup
	for _, h := range []*ConsoleHandler{a, b} {
		wg.Add(1)
		go func(h *ConsoleHandler) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				_ = h.Handle(core.Entry{Level: core.InfoLevel, Message: "shared"})
			}
		}(h)
	}
	wg.Wait()

	assert.Equal(t, 1000, strings.Count(buf.String(), "[INFO] shared\n"))
	assert.Equal(t, len("[INFO] shared\n")*1000, buf.Len())
}
