package system

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// Stats summarises a playback or bake run.
type Stats struct {
	Build      string
	Elapsed    time.Duration
	Frames     int
	Published  int
	RSS        uint64  // resident memory, bytes
	CPUPercent float64 // process CPU since start
}

// EffectiveFPS is the number of frames processed per wall-clock second.
func (s Stats) EffectiveFPS() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Elapsed.Seconds()
}

// Collect заполняет поля ресурсов процесса. Если платформа их не
// поддерживает, поля остаются нулевыми.
func Collect(s Stats) (Stats, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return s, fmt.Errorf("process info: %w", err)
	}
	if mem, err := p.MemoryInfo(); err == nil {
		s.RSS = mem.RSS
	}
	if cpu, err := p.CPUPercent(); err == nil {
		s.CPUPercent = cpu
	}
	return s, nil
}

// Report renders the stats block printed at the end of a run.
func (s Stats) Report() string {
	return fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Total Time: %.2fs\n"+
			"Frames: %d\n"+
			"Published: %d\n"+
			"Effective FPS: %.2f\n"+
			"Memory (RSS): %.1f MiB\n"+
			"CPU: %.1f%%\n"+
			"----------------------------\n",
		s.Build, s.Elapsed.Seconds(), s.Frames, s.Published, s.EffectiveFPS(),
		float64(s.RSS)/(1<<20), s.CPUPercent,
	)
}

// LogLine is the single-line form appended to benchmark.log.
func (s Stats) LogLine(name string) string {
	return fmt.Sprintf("[%s] Build: %s | Input: %s | Frames: %d | Total: %.2fs | FPS: %.2f | RSS: %d\n",
		time.Now().Format("2006-01-02 15:04:05"),
		s.Build, name, s.Frames, s.Elapsed.Seconds(), s.EffectiveFPS(), s.RSS,
	)
}

// AppendLog дописывает строку в benchmark.log.
func AppendLog(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(line)
	return err
}
