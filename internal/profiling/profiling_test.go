package profiling

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStart(t *testing.T) {
	tests := []struct {
		mode string
		file string
	}{
		{"cpu", "cpu.pprof"},
		{"mem", "mem.pprof"},
	}
	for _, tc := range tests {
		t.Run(tc.mode, func(t *testing.T) {
			dir := t.TempDir()
			stop, err := Start(tc.mode, dir)
			if err != nil {
				t.Fatalf("Start: %v", err)
			}
			stop()
			if _, err := os.Stat(filepath.Join(dir, tc.file)); err != nil {
				t.Errorf("profile not written: %v", err)
			}
		})
	}
}

func TestStartDisabled(t *testing.T) {
	stop, err := Start("", "")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	stop()

	if _, err := Start("trace", ""); err == nil {
		t.Error("Start(trace) should fail")
	}
}
