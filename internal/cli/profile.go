package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"
)

var (
	// MemorySampleRate How often to dump the memory to a file in HZ. Values of less than 1 are recommended to avoid
	// having to sort through too many dump files
	MemorySampleRate = 0.5
)

type profiler struct {
	cpuOutput *os.File

	memDumpPath string
	memMu       sync.Mutex
	heapDumps   [][]byte
	stopMem     chan struct{}
	memStopped  chan struct{}
}

func (a *app) startProfiling(cpuProfile, memProfileDir string) error {
	if cpuProfile == "" && memProfileDir == "" {
		return nil
	}

	p := &profiler{}
	if cpuProfile != "" {
		if err := p.startCPUProfiler(cpuProfile); err != nil {
			return err
		}
	}
	if memProfileDir != "" {
		p.startMemoryProfiler(memProfileDir)
	}
	a.profiler = p
	return nil
}

func (a *app) stopProfiling() error {
	if a.profiler == nil {
		return nil
	}
	err := a.profiler.stop()
	a.profiler = nil
	return err
}

func (p *profiler) startCPUProfiler(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	runtime.SetCPUProfileRate(500)
	if err = pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("error starting CPU profiler: %w", err)
	}
	p.cpuOutput = f
	return nil
}

func (p *profiler) startMemoryProfiler(dumpPath string) {
	p.memDumpPath = dumpPath
	if MemorySampleRate <= 0 {
		return
	}

	p.stopMem = make(chan struct{})
	p.memStopped = make(chan struct{})
	go func() {
		defer close(p.memStopped)
		ticker := time.NewTicker(time.Duration((1/MemorySampleRate)*1000) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-p.stopMem:
				return
			case <-ticker.C:
				p.dumpMemoryProfile()
			}
		}
	}()
}

func (p *profiler) dumpMemoryProfile() {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err != nil {
		return
	}
	p.memMu.Lock()
	p.heapDumps = append(p.heapDumps, w.Bytes())
	p.memMu.Unlock()
}

func (p *profiler) stop() error {
	var errs []error
	if p.cpuOutput != nil {
		pprof.StopCPUProfile()
		errs = append(errs, p.cpuOutput.Close())
	}

	if p.memDumpPath != "" {
		if p.stopMem != nil {
			close(p.stopMem)
			<-p.memStopped
		}
		p.dumpMemoryProfile()
		errs = append(errs, p.writeMemoryProfiles())
	}
	return errors.Join(errs...)
}

func (p *profiler) writeMemoryProfiles() error {
	if err := os.MkdirAll(p.memDumpPath, 0o755); err != nil {
		return err
	}
	for dIdx, dump := range p.heapDumps {
		if err := os.WriteFile(filepath.Join(p.memDumpPath, fmt.Sprintf("mem-%d.mprof", dIdx)), dump, 0o644); err != nil {
			return fmt.Errorf("error writing memory profile to disk: %w", err)
		}
	}
	return nil
}
