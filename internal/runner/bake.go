package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ivlev/keyframe/internal/scenario"
	"golang.org/x/sync/errgroup"
)

// BakeJob describes one scenario file to bake.
type BakeJob struct {
	Input  string
	Output string
	// Start and End bound the baked frames. Both zero bakes each
	// animation over its own keyframe range.
	Start, End int
	// Playback bakes [1, TotalFrames] of the scenario's playback settings
	// and overrides Start and End.
	Playback bool
}

// BakeResult reports a finished job.
type BakeResult struct {
	Job        BakeJob
	Animations int
	Keyframes  int
}

// OutputPath derives the baked file name for input inside dir. An empty
// dir keeps the input's directory.
func OutputPath(input, dir string) string {
	if dir == "" {
		dir = filepath.Dir(input)
	}
	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, name+"_baked.yaml")
}

// BakeFile loads job.Input into a fresh session, bakes every animation and
// writes the result to job.Output.
func BakeFile(job BakeJob) (BakeResult, error) {
	res := BakeResult{Job: job}

	s, err := scenario.LoadFile(job.Input)
	if err != nil {
		return res, err
	}

	for _, a := range s.Engine.Animations() {
		var ok bool
		switch {
		case job.Playback:
			ok = s.Engine.Bake(a.ID, 1, s.Controller.TotalFrames())
		case job.Start == 0 && job.End == 0:
			ok = s.Engine.BakeRange(a.ID)
		default:
			ok = s.Engine.Bake(a.ID, job.Start, job.End)
		}
		if !ok {
			continue
		}
		res.Animations++
		res.Keyframes += s.Engine.KeyframeCount(a.ID)
	}

	if err := scenario.WriteScenario(s.Export(), job.Output); err != nil {
		return res, fmt.Errorf("write %s: %w", job.Output, err)
	}
	return res, nil
}

// BakeAll запускает задания параллельно, не более workers одновременно.
// У каждого задания свой движок. Первая ошибка отменяет еще не начатые.
func BakeAll(ctx context.Context, jobs []BakeJob, workers int) ([]BakeResult, error) {
	results := make([]BakeResult, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := BakeFile(job)
			if err != nil {
				return fmt.Errorf("bake %s: %w", job.Input, err)
			}
			results[i] = res
			fmt.Printf("[>] Ready: %s (%d keyframes)\n", job.Output, res.Keyframes)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
