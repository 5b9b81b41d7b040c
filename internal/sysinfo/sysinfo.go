// Package sysinfo samples CPU and memory usage for the taskbar tray.
package sysinfo

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one CPU/RAM sample.
type Stats struct {
	CPUPercent float64
	MemPercent float64
	SampledAt  time.Time
}

// String renders the tray readout, e.g. "CPU 12% RAM 48%".
func (s Stats) String() string {
	if s.SampledAt.IsZero() {
		return "CPU --% RAM --%"
	}
	return fmt.Sprintf("CPU %2.0f%% RAM %2.0f%%", s.CPUPercent, s.MemPercent)
}

// Source reads raw usage numbers.
type Source interface {
	CPUPercent(ctx context.Context) (float64, error)
	MemPercent(ctx context.Context) (float64, error)
}

// HostSource reads the host through gopsutil.
type HostSource struct{}

// CPUPercent returns the total CPU usage since the previous call.
func (HostSource) CPUPercent(ctx context.Context) (float64, error) {
	// Zero interval compares against the previous call instead of blocking.
	values, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return 0, fmt.Errorf("read cpu: %w", err)
	}
	if len(values) == 0 {
		return 0, nil
	}
	return values[0], nil
}

// MemPercent returns the share of physical memory in use.
func (HostSource) MemPercent(ctx context.Context) (float64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("read memory: %w", err)
	}
	return vm.UsedPercent, nil
}

// Sampler rate-limits reads from a Source and keeps the last good sample.
// Failed reads count against the rate limit too.
type Sampler struct {
	source    Source
	interval  time.Duration
	last      Stats
	attempted time.Time
	err       error
}

// NewSampler returns a Sampler that reads src at most once per interval.
// A nil src reads the host.
func NewSampler(src Source, interval time.Duration) *Sampler {
	if src == nil {
		src = HostSource{}
	}
	return &Sampler{source: src, interval: interval}
}

// Sample reads the source when the interval has elapsed since the last
// attempt, otherwise it returns the cached stats and the cached error. A
// failed read keeps the last good sample.
func (s *Sampler) Sample(ctx context.Context, now time.Time) (Stats, error) {
	if !s.attempted.IsZero() && now.Sub(s.attempted) < s.interval {
		return s.last, s.err
	}
	s.attempted = now

	cpuPct, err := s.source.CPUPercent(ctx)
	if err != nil {
		s.err = err
		return s.last, err
	}
	memPct, err := s.source.MemPercent(ctx)
	if err != nil {
		s.err = err
		return s.last, err
	}

	s.last = Stats{CPUPercent: cpuPct, MemPercent: memPct, SampledAt: now}
	s.err = nil
	return s.last, nil
}

// Last returns the most recent good sample.
func (s *Sampler) Last() Stats {
	return s.last
}
