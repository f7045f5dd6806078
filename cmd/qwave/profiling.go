package main

import (
	"os"
	"runtime/pprof"
	"sync"
	"time"
)

// cpuProfile records a pprof CPU profile for the lifetime of a command.
type cpuProfile struct {
	path  string
	file  *os.File
	start time.Time
	once  sync.Once
}

func startCPUProfile(path string) (*cpuProfile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	logger.Debug("recording CPU profile", "path", path)
	return &cpuProfile{path: path, file: f, start: time.Now()}, nil
}

// Stop flushes the profile. Calls after the first do nothing.
func (p *cpuProfile) Stop() {
	p.once.Do(func() {
		pprof.StopCPUProfile()
		if err := p.file.Close(); err != nil {
			logger.Warn("closing CPU profile", "path", p.path, "error", err)
			return
		}
		logger.Info("wrote CPU profile", "path", p.path, "recorded", time.Since(p.start).Round(time.Millisecond))
	})
}
