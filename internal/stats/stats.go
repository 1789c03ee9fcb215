package stats

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// Sampler reads CPU and memory usage of the current process for the
// demo stats overlay. Sampling failures degrade to dashes; they never
// interrupt the demo.
type Sampler struct {
	proc *process.Process

	mu         sync.RWMutex
	cpuPercent float64
	rssBytes   uint64
	err        error
	lastSample time.Time
}

func NewSampler() (*Sampler, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("failed to find own process: %w", err)
	}
	return &Sampler{proc: proc}, nil
}

// Sample refreshes the readings at most once per second.
func (s *Sampler) Sample() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Since(s.lastSample) < time.Second {
		return
	}
	s.lastSample = time.Now()

	cpu, err := s.proc.CPUPercent()
	if err != nil {
		s.err = err
		return
	}
	mem, err := s.proc.MemoryInfo()
	if err != nil {
		s.err = err
		return
	}
	s.cpuPercent = cpu
	s.rssBytes = mem.RSS
	s.err = nil
}

// Format renders the current readings for the status bar.
func (s *Sampler) Format() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.err != nil || s.lastSample.IsZero() {
		return "cpu -- rss --"
	}
	return fmt.Sprintf("cpu %.1f%% rss %dMB", s.cpuPercent, s.rssBytes/(1024*1024))
}
