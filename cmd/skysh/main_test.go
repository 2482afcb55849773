package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/skyprobe/internal/config"
	"github.com/Faultbox/skyprobe/internal/report"
	"github.com/Faultbox/skyprobe/pkg/skysh"
)

func TestParseChannel(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"r", 0}, {"Red", 0}, {"g", 1}, {"GREEN", 1}, {"b", 2}, {"blue", 2},
	}
	for _, tt := range tests {
		got, err := parseChannel(tt.in)
		if err != nil {
			t.Errorf("parseChannel(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("parseChannel(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}

	if _, err := parseChannel("alpha"); err == nil {
		t.Error("expected error for unknown channel")
	}
}

func TestProbeParamsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Sky.Bands = 5
	cfg.Sky.SuppressRinging = true
	cfg.Sun.Enabled = false
	cfg.Sun.Scale = 0.25

	p := probeParams(cfg, 0.4, -1)
	if p.Sun.Theta != 0.4 || p.Sun.Phi != -1 || p.Sun.Turbidity != cfg.Sky.Turbidity {
		t.Errorf("unexpected sun %+v", p.Sun)
	}
	if p.NumBands != 5 || !p.SuppressRinging {
		t.Errorf("sky settings not carried over: %+v", p)
	}
	if p.IncludeSun || p.SunScale != 0.25 {
		t.Errorf("sun settings not carried over: %+v", p)
	}
}

type closeRecorder struct {
	bytes.Buffer
	closed   bool
	closeErr error
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return c.closeErr
}

func TestWriteAndClose(t *testing.T) {
	entry, err := report.NewEntry(skysh.ProbeParams{
		Sun:      skysh.Sun{Theta: 0.5, Turbidity: 3},
		NumBands: 2,
		SkyScale: 1,
	})
	if err != nil {
		t.Fatalf("NewEntry: %v", err)
	}

	ok := &closeRecorder{}
	if err := writeAndClose(ok, report.FormatText, entry); err != nil {
		t.Fatalf("writeAndClose: %v", err)
	}
	if !ok.closed || ok.Len() == 0 {
		t.Errorf("expected output written and closed, closed=%v len=%d", ok.closed, ok.Len())
	}

	diskFull := errors.New("no space left on device")
	failing := &closeRecorder{closeErr: diskFull}
	if err := writeAndClose(failing, report.FormatText, entry); !errors.Is(err, diskFull) {
		t.Errorf("expected close error to be reported, got %v", err)
	}

	// A write error wins, but the output is still closed.
	bad := &closeRecorder{closeErr: diskFull}
	err = writeAndClose(bad, "xml", entry)
	if err == nil || !strings.Contains(err.Error(), "xml") {
		t.Errorf("expected format error, got %v", err)
	}
	if !bad.closed {
		t.Error("expected output closed after a failed write")
	}
}

func TestWriteEntriesToFile(t *testing.T) {
	entry, err := report.NewEntry(skysh.ProbeParams{
		Sun:      skysh.Sun{Theta: 0.5, Turbidity: 3},
		NumBands: 2,
		SkyScale: 1,
	})
	if err != nil {
		t.Fatalf("NewEntry: %v", err)
	}

	cfg := config.Default()
	cfg.Output.Format = report.FormatJSON
	cfg.Output.Path = filepath.Join(t.TempDir(), "coeffs.json")
	if err := writeEntries(cfg, entry); err != nil {
		t.Fatalf("writeEntries: %v", err)
	}
	data, err := os.ReadFile(cfg.Output.Path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `"coeffs"`) {
		t.Errorf("unexpected output: %s", data)
	}

	cfg.Output.Path = filepath.Join(t.TempDir(), "missing", "coeffs.json")
	if err := writeEntries(cfg, entry); err == nil {
		t.Error("expected error for a missing directory")
	}
}
