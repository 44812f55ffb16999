package log

import (
	"bytes"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T, name string) (*Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	SetOutput(buf)
	return ForService(name), buf
}

func TestInfoIncludesPrefix(t *testing.T) {
	SetGlobalDebug(false)

	const name = "prefix_test"
	l, buf := newTestLogger(t, name)

	l.Infof("refreshed %d records", 7)
	out := buf.String()

	if !strings.Contains(out, "["+name+">]") {
		t.Fatalf("expected prefix [%s>] in output, got: %q", name, out)
	}
	if !strings.Contains(out, "refreshed 7 records") {
		t.Fatalf("expected message in output, got: %q", out)
	}
}

func TestDebugPerService(t *testing.T) {
	SetGlobalDebug(false)

	const name = "debug_per_service"
	DisableDebugFor(name)
	l, buf := newTestLogger(t, name)

	l.Debugf("should not appear")
	if strings.Contains(buf.String(), "should not appear") {
		t.Fatal("debug message appeared while debug disabled")
	}

	EnableDebugFor(name)
	l.Debugf("visible now")
	if !strings.Contains(buf.String(), "visible now") {
		t.Fatalf("expected debug message after enabling per-service debug; got: %q", buf.String())
	}
}

func TestDebugGlobal(t *testing.T) {
	SetGlobalDebug(false)

	const name = "debug_global"
	DisableDebugFor(name)
	l, buf := newTestLogger(t, name)

	l.Debugf("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatal("debug message appeared while global debug disabled")
	}

	SetGlobalDebug(true)
	defer SetGlobalDebug(false)

	l.Debugf("global visible")
	if !strings.Contains(buf.String(), "global visible") {
		t.Fatalf("expected debug message after enabling global debug; got: %q", buf.String())
	}
}

func TestLevelsInOutput(t *testing.T) {
	SetGlobalDebug(false)

	l, buf := newTestLogger(t, "levels_test")
	l.Warnf("low disk")
	l.Errorf("fetch failed")

	out := buf.String()
	if !strings.Contains(out, LevelWarn) || !strings.Contains(out, "low disk") {
		t.Fatalf("missing warn line: %q", out)
	}
	if !strings.Contains(out, LevelError) || !strings.Contains(out, "fetch failed") {
		t.Fatalf("missing error line: %q", out)
	}
}
