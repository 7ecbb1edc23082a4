package files

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Saver periodically saves the dirty files registered with it, so callers
// may Set values freely and leave persistence to a background loop.
//
// Usage:
//
//	saver := files.NewSaver(30*time.Second, slog.Default())
//	saver.Add(config)
//	saver.Start()
//	defer saver.Stop()
type Saver struct {
	interval time.Duration
	log      *slog.Logger

	filesMu sync.Mutex
	files   []*File

	// Execution state
	running  atomic.Bool
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// NewSaver creates a Saver that saves every interval. A nil logger uses
// slog.Default().
func NewSaver(interval time.Duration, log *slog.Logger) *Saver {
	if interval <= 0 {
		interval = time.Minute
	}
	if log == nil {
		log = slog.Default()
	}
	return &Saver{
		interval: interval,
		log:      log,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Add registers files with the saver. Adding a file twice has no effect.
func (s *Saver) Add(files ...*File) {
	s.filesMu.Lock()
	defer s.filesMu.Unlock()
	for _, f := range files {
		if f == nil || s.has(f) {
			continue
		}
		s.files = append(s.files, f)
	}
}

func (s *Saver) has(f *File) bool {
	for _, existing := range s.files {
		if existing == f {
			return true
		}
	}
	return false
}

// Start begins the save loop. A stopped Saver cannot be restarted.
func (s *Saver) Start() {
	select {
	case <-s.stopCh:
		return
	default:
	}
	if s.running.Swap(true) {
		return // Already running
	}
	go s.loop()
}

// Stop ends the save loop and saves every dirty file one last time.
func (s *Saver) Stop() error {
	if s.running.Swap(false) {
		s.stopOnce.Do(func() { close(s.stopCh) })
		<-s.doneCh
	}
	return s.Flush()
}

func (s *Saver) loop() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			if err := s.Flush(); err != nil {
				s.log.Warn("files: autosave failed", "error", err)
			}
		}
	}
}

// Flush saves every registered file that has unsaved changes. It keeps going
// past failures and returns them joined.
func (s *Saver) Flush() error {
	s.filesMu.Lock()
	pending := make([]*File, 0, len(s.files))
	for _, f := range s.files {
		if f.Dirty() {
			pending = append(pending, f)
		}
	}
	s.filesMu.Unlock()

	var errs []error
	for _, f := range pending {
		if err := f.Save(); err != nil {
			errs = append(errs, err)
			continue
		}
		s.log.Debug("files: saved", "file", f.Name())
	}
	return errors.Join(errs...)
}
