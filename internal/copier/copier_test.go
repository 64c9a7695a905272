package copier

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/clipcopy/internal/clipboard"
	"github.com/renato0307/clipcopy/internal/logging"
)

// recorder captures both continuations so tests can count them.
type recorder struct {
	mu     sync.Mutex
	alerts []string
	logs   []string
}

func (r *recorder) Alert(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, message)
}

func (r *recorder) Error(msg string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, fmt.Sprint(append([]any{msg}, args...)...))
}

func (r *recorder) counts() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.alerts), len(r.logs)
}

func succeed() clipboard.Writer {
	return clipboard.Func(func(string) error { return nil })
}

func fail(detail string) clipboard.Writer {
	return clipboard.Func(func(string) error { return errors.New(detail) })
}

func TestCopy_Success(t *testing.T) {
	rec := &recorder{}
	c := New(succeed(), rec, rec)

	c.Copy("hello")
	c.Wait()

	require.Len(t, rec.alerts, 1)
	assert.Equal(t, "Código copiado al portapapeles", rec.alerts[0])
	assert.Empty(t, rec.logs)
}

func TestCopy_Failure(t *testing.T) {
	rec := &recorder{}
	c := New(fail("denied"), rec, rec)

	c.Copy("hello")
	c.Wait()

	assert.Empty(t, rec.alerts)
	require.Len(t, rec.logs, 1)
	assert.Contains(t, rec.logs[0], "Error al copiar el texto: ")
	assert.Contains(t, rec.logs[0], "denied")
}

func TestCopy_FailureThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriter(&buf, logging.FormatText, slog.LevelInfo)
	rec := &recorder{}
	c := New(fail("denied"), rec, logger)

	c.Copy("hello")
	c.Wait()

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"), "expected exactly one log line, got %q", out)
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "Error al copiar el texto: denied")
	assert.Empty(t, rec.alerts)
}

func TestCopy_ExactlyOneOutcome(t *testing.T) {
	inputs := map[string]string{
		"empty":    "",
		"ascii":    "hello",
		"long":     strings.Repeat("x", 1<<20),
		"control":  "a\x00b\x07c\x1b[31md\r\n",
		"unicode":  "código ✓ 日本語",
		"newlines": "line1\nline2\n",
	}

	for name, text := range inputs {
		for _, w := range []struct {
			name   string
			writer clipboard.Writer
		}{
			{"succeeding", succeed()},
			{"failing", fail("denied")},
		} {
			t.Run(name+"/"+w.name, func(t *testing.T) {
				rec := &recorder{}
				c := New(w.writer, rec, rec)

				assert.NotPanics(t, func() { c.Copy(text) })
				c.Wait()

				alerts, logs := rec.counts()
				assert.Equal(t, 1, alerts+logs, "exactly one continuation must fire")
			})
		}
	}
}

func TestCopy_PayloadNeverReported(t *testing.T) {
	const payload = "top-secret-payload"

	for _, w := range []clipboard.Writer{succeed(), fail("denied")} {
		rec := &recorder{}
		c := New(w, rec, rec)
		c.Copy(payload)
		c.Wait()

		for _, a := range rec.alerts {
			assert.NotContains(t, a, payload)
		}
		for _, l := range rec.logs {
			assert.NotContains(t, l, payload)
		}
	}
}

func TestCopy_SequentialCallsAreIndependent(t *testing.T) {
	rec := &recorder{}
	var calls int
	var mu sync.Mutex
	w := clipboard.Func(func(text string) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if text == "second" {
			return errors.New("denied")
		}
		return nil
	})
	c := New(w, rec, rec)

	c.Copy("first")
	c.Wait()
	c.Copy("second")
	c.Wait()

	assert.Equal(t, 2, calls)
	assert.Equal(t, []string{SuccessMessage}, rec.alerts)
	require.Len(t, rec.logs, 1)
	assert.Contains(t, rec.logs[0], "denied")
}

func TestCopy_ConcurrentCallsSettleInAnyOrder(t *testing.T) {
	rec := &recorder{}
	release := make(chan struct{})
	w := clipboard.Func(func(text string) error {
		if text == "slow" {
			<-release
		}
		return nil
	})
	c := New(w, rec, rec)

	c.Copy("slow")
	c.Copy("fast")

	assert.Eventually(t, func() bool {
		alerts, _ := rec.counts()
		return alerts == 1
	}, time.Second, 10*time.Millisecond, "fast write should settle while slow one is pending")

	close(release)
	c.Wait()

	alerts, logs := rec.counts()
	assert.Equal(t, 2, alerts)
	assert.Equal(t, 0, logs)
}

func TestCopy_ReturnsBeforeWriteSettles(t *testing.T) {
	rec := &recorder{}
	release := make(chan struct{})
	c := New(clipboard.Func(func(string) error {
		<-release
		return nil
	}), rec, rec)

	done := make(chan struct{})
	go func() {
		c.Copy("hello")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Copy blocked on the clipboard write")
	}

	alerts, logs := rec.counts()
	assert.Equal(t, 0, alerts+logs, "nothing fires before the write settles")

	close(release)
	c.Wait()
	alerts, _ = rec.counts()
	assert.Equal(t, 1, alerts)
}

func TestNew_NilLoggerUsesGlobal(t *testing.T) {
	require.NoError(t, logging.Init(logging.Config{FilePath: ""}))
	c := New(fail("denied"), &recorder{}, nil)

	assert.NotPanics(t, func() {
		c.Copy("hello")
		c.Wait()
	})
}

func TestNew_NilLoggerFollowsLaterInit(t *testing.T) {
	// Built while logging is still disabled
	require.NoError(t, logging.Init(logging.Config{FilePath: ""}))
	c := New(fail("denied"), &recorder{}, nil)

	logFile := filepath.Join(t.TempDir(), "clipcopy.log")
	require.NoError(t, logging.Init(logging.Config{
		FilePath: logFile,
		Level:    slog.LevelInfo,
		Format:   logging.FormatText,
	}))

	c.Copy("hello")
	c.Wait()
	require.NoError(t, logging.Shutdown())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Error al copiar el texto: denied")
	assert.NotContains(t, string(data), "hello")
}

func TestOutcome(t *testing.T) {
	s := Success()
	assert.True(t, s.Succeeded())
	assert.NoError(t, s.Detail())
	assert.NoError(t, s.Err())

	detail := errors.New("denied")
	f := Failure(detail)
	assert.False(t, f.Succeeded())
	assert.Equal(t, detail, f.Detail())
	assert.ErrorIs(t, f.Err(), ErrClipboardWriteFailed)
	assert.ErrorIs(t, f.Err(), detail)

	nilDetail := Failure(nil)
	assert.False(t, nilDetail.Succeeded())
	assert.ErrorIs(t, nilDetail.Err(), ErrClipboardWriteFailed)

	assert.True(t, OutcomeOf(nil).Succeeded())
	assert.False(t, OutcomeOf(clipboard.ErrUnavailable).Succeeded())
	assert.ErrorIs(t, OutcomeOf(clipboard.ErrUnavailable).Err(), clipboard.ErrUnavailable)
}

func TestReport_NilDetailFailureLogsSentinel(t *testing.T) {
	rec := &recorder{}
	c := New(succeed(), rec, rec)

	c.Report(Failure(nil))

	assert.Empty(t, rec.alerts)
	require.Len(t, rec.logs, 1)
	assert.Contains(t, rec.logs[0], FailurePrefix+"clipboard write failed")
}

func TestCmd(t *testing.T) {
	rec := &recorder{}
	c := New(fail("denied"), rec, rec)

	cmd := c.Cmd("hello")
	require.NotNil(t, cmd)

	msg := cmd()
	result, ok := msg.(ResultMsg)
	require.True(t, ok, "expected ResultMsg, got %T", msg)
	assert.False(t, result.Outcome.Succeeded())
	assert.EqualError(t, result.Outcome.Detail(), "denied")

	// Cmd performs the write only; reporting belongs to the update loop
	alerts, logs := rec.counts()
	assert.Equal(t, 0, alerts+logs)

	c.Report(result.Outcome)
	_, logs = rec.counts()
	assert.Equal(t, 1, logs)
}

func TestCmd_EmptyText(t *testing.T) {
	var got *string
	c := New(clipboard.Func(func(text string) error {
		got = &text
		return nil
	}), &recorder{}, &recorder{})

	msg := c.Cmd("")()
	result := msg.(ResultMsg)

	assert.True(t, result.Outcome.Succeeded())
	require.NotNil(t, got)
	assert.Equal(t, "", *got)
}

func TestNotifierFunc(t *testing.T) {
	var got string
	NotifierFunc(func(m string) { got = m }).Alert(SuccessMessage)
	assert.Equal(t, SuccessMessage, got)
}
