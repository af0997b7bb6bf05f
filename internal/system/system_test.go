package system

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestBufferPool(t *testing.T) {
	p := NewBufferPool()
	buf := p.Get()
	buf.WriteString("payload")
	p.Put(buf)

	again := p.Get()
	if again.Len() != 0 {
		t.Errorf("Pooled buffer not reset: %q", again.String())
	}

	// Nil and oversized buffers are dropped without panicking.
	p.Put(nil)
	big := GetBuffer()
	big.Grow(maxPooledBuffer + 1)
	PutBuffer(big)
}

func TestEffectiveFPS(t *testing.T) {
	tests := []struct {
		stats Stats
		want  float64
	}{
		{Stats{Frames: 48, Elapsed: 2 * time.Second}, 24},
		{Stats{Frames: 10}, 0},
	}
	for _, tt := range tests {
		if got := tt.stats.EffectiveFPS(); got != tt.want {
			t.Errorf("EffectiveFPS(%+v) = %v, want %v", tt.stats, got, tt.want)
		}
	}
}

func TestCollect(t *testing.T) {
	s, err := Collect(Stats{Frames: 1})
	if err != nil {
		t.Skipf("process stats unavailable: %v", err)
	}
	if s.Frames != 1 {
		t.Errorf("Collect dropped fields: %+v", s)
	}
	t.Logf("RSS=%d CPU=%.1f%%", s.RSS, s.CPUPercent)
}

func TestReportAndLog(t *testing.T) {
	s := Stats{Build: "test", Frames: 24, Elapsed: time.Second, Published: 3}
	report := s.Report()
	for _, want := range []string{"Build: test", "Frames: 24", "Published: 3", "Effective FPS: 24.00"} {
		if !strings.Contains(report, want) {
			t.Errorf("Report missing %q:\n%s", want, report)
		}
	}

	path := filepath.Join(t.TempDir(), "benchmark.log")
	for i := 0; i < 2; i++ {
		if err := AppendLog(path, s.LogLine("demo.yaml")); err != nil {
			t.Fatalf("AppendLog failed: %v", err)
		}
	}
	data, _ := os.ReadFile(path)
	if n := strings.Count(string(data), "Input: demo.yaml"); n != 2 {
		t.Errorf("Expected 2 log lines, got %d", n)
	}
}
