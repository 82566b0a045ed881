package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func testConfig() config {
	return config{size: 16, levels: 2, pattern: "uniform", rate: 0.5, lines: 8, iter: 10, seed: 1, trials: 2}
}

func TestRun(t *testing.T) {
	for _, p := range []string{"uniform", "gaussian", "level", "line"} {
		t.Run(p, func(t *testing.T) {
			cfg := testConfig()
			cfg.pattern = p
			var buf bytes.Buffer
			if err := run(&buf, io.Discard, cfg, []string{"haar", "DB2"}); err != nil {
				t.Fatal(err)
			}
			out := buf.String()
			if !strings.Contains(out, "haar") || !strings.Contains(out, "db2") {
				t.Fatalf("missing rows:\n%s", out)
			}
			if lines := strings.Count(out, "\n"); lines != 4 {
				t.Fatalf("got %d lines:\n%s", lines, out)
			}
		})
	}
}

func TestRunAllDeduplicatesAliases(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, io.Discard, testConfig(), nil); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "haar"); n != 1 {
		t.Fatalf("haar listed %d times:\n%s", n, buf.String())
	}
}

func TestRunWarnsOnUnknownWavelet(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := run(&out, &errOut, testConfig(), []string{"sym8", "haar"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(errOut.String(), `unknown wavelet "sym8"`) {
		t.Fatalf("stderr:\n%s", errOut.String())
	}
	if strings.Contains(out.String(), "sym8") || !strings.Contains(out.String(), "haar") {
		t.Fatalf("stdout:\n%s", out.String())
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		cfg   func(*config)
		names []string
	}{
		{"unknown wavelet", func(*config) {}, []string{"sym8"}},
		{"unknown pattern", func(c *config) { c.pattern = "spiral" }, nil},
		{"size", func(c *config) { c.size = 12 }, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.cfg(&cfg)
			if err := run(&bytes.Buffer{}, io.Discard, cfg, tc.names); !errors.Is(err, errUsage) {
				t.Fatalf("got %v, want errUsage", err)
			}
		})
	}

	cfg := testConfig()
	cfg.levels = 5
	if err := run(&bytes.Buffer{}, io.Discard, cfg, []string{"haar"}); err == nil {
		t.Fatal("expected level error")
	}
}

func TestPrintList(t *testing.T) {
	var buf bytes.Buffer
	printList(&buf)
	if !strings.Contains(buf.String(), "db4\n") {
		t.Fatalf("list:\n%s", buf.String())
	}
}
