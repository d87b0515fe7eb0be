// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// capture points the global logger at a buffer for the duration of a test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	t.Cleanup(func() { Init(DefaultConfig()) })
	return &buf
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != "info" || cfg.Format != "json" {
		t.Errorf("defaults = %s/%s, want info/json", cfg.Level, cfg.Format)
	}
	if cfg.Caller {
		t.Error("caller should default to off")
	}
	if !cfg.Timestamp {
		t.Error("timestamp should default to on")
	}
}

func TestInitJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Timestamp: true, Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	Info().Msg("catalog opened")

	out := buf.String()
	if !strings.Contains(out, "catalog opened") || !strings.Contains(out, `"level":"info"`) {
		t.Errorf("unexpected JSON output: %s", out)
	}
}

func TestInitConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "console", Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	Info().Msg("console test")

	if strings.Contains(buf.String(), `"level"`) {
		t.Errorf("console format should not emit JSON keys: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		"debug":    zerolog.DebugLevel,
		"info":     zerolog.InfoLevel,
		"warn":     zerolog.WarnLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"fatal":    zerolog.FatalLevel,
		"panic":    zerolog.PanicLevel,
		"disabled": zerolog.Disabled,
		"INFO":     zerolog.InfoLevel,
		"bogus":    zerolog.InfoLevel,
		"":         zerolog.InfoLevel,
	}
	for name, want := range cases {
		if got := parseLevel(name); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestLeveledHelpers(t *testing.T) {
	buf := capture(t)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	emit := []struct {
		fn    func() *zerolog.Event
		level string
	}{
		{Trace, "trace"},
		{Debug, "debug"},
		{Info, "info"},
		{Warn, "warn"},
		{Error, "error"},
	}
	for _, e := range emit {
		buf.Reset()
		e.fn().Msg("ping")
		if !strings.Contains(buf.String(), `"level":"`+e.level+`"`) {
			t.Errorf("%s: output %s", e.level, buf.String())
		}
	}
}

func TestWithAddsFields(t *testing.T) {
	buf := capture(t)

	logger := With().Str("component", "catalog").Logger()
	logger.Info().Msg("tagged")

	if !strings.Contains(buf.String(), `"component":"catalog"`) {
		t.Errorf("missing component field: %s", buf.String())
	}
}

func TestErrShorthand(t *testing.T) {
	buf := capture(t)

	Err(errors.New("boom")).Msg("scan failed")

	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("missing error field: %s", buf.String())
	}
}

func TestNewTestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)
	logger.Info().Str("key", "value").Msg("probe")

	if !strings.Contains(buf.String(), `"key":"value"`) {
		t.Errorf("test logger output: %s", buf.String())
	}
}
