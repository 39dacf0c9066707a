package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/flavioheleno/monobitmap"
	"github.com/fsnotify/fsnotify"
)

// Debounce is how long an input must stay quiet before its jobs run again.
const Debounce = 500 * time.Millisecond

// Watcher regenerates headers when their source images change
type Watcher struct {
	jobs    map[string][]monobitmap.Job
	run     func(monobitmap.Job)
	watcher *fsnotify.Watcher
	logger  *log.Logger

	mu       sync.Mutex
	debounce map[string]*time.Timer
	done     chan struct{}
}

// New creates a watcher calling run for every job whose input changes.
func New(jobs []monobitmap.Job, run func(monobitmap.Job), logger *log.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}

	byInput := make(map[string][]monobitmap.Job)
	for _, j := range jobs {
		key := filepath.Clean(j.Input)
		byInput[key] = append(byInput[key], j)
	}

	return &Watcher{
		jobs:     byInput,
		run:      run,
		watcher:  fsWatcher,
		logger:   logger,
		debounce: make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}, nil
}

// Start begins monitoring the directories holding the job inputs.
// Directories are watched rather than files so editors replacing a file
// on save keep triggering events.
func (w *Watcher) Start() error {
	dirs := make(map[string]bool)
	for input := range w.jobs {
		dirs[filepath.Dir(input)] = true
	}

	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch folder %s: %w", dir, err)
		}
		w.logger.Printf("Watching folder: %s", dir)
	}

	go w.processEvents()

	return nil
}

// Stop ends monitoring and cancels pending regenerations.
func (w *Watcher) Stop() error {
	close(w.done)

	w.mu.Lock()
	for name, timer := range w.debounce {
		timer.Stop()
		delete(w.debounce, name)
	}
	w.mu.Unlock()

	return w.watcher.Close()
}

// processEvents debounces fsnotify events for watched inputs
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}

			name := filepath.Clean(event.Name)
			w.mu.Lock()
			if timer, exists := w.debounce[name]; exists {
				timer.Stop()
			}
			w.debounce[name] = time.AfterFunc(Debounce, func() {
				w.mu.Lock()
				delete(w.debounce, name)
				w.mu.Unlock()
				w.handle(name)
			})
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Printf("Watcher error: %v", err)
		}
	}
}

// relevant reports whether event touches a job input with new content
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return false
	}
	_, ok := w.jobs[filepath.Clean(event.Name)]
	return ok
}

// handle runs every job reading from input
func (w *Watcher) handle(input string) {
	w.logger.Printf("File modified: %s", input)
	for _, j := range w.jobs[input] {
		w.run(j)
	}
}
