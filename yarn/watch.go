package yarn

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long a project file must stay untouched before a change is
// reported. Editors often save in several writes.
const settle = 100 * time.Millisecond

// Watcher watches dialogue directories and reports project files once their
// writes have settled.
type Watcher struct {
	fs *fsnotify.Watcher

	mu      sync.Mutex
	pending map[string]*time.Timer
	settled map[string]struct{}
	err     error
	closed  bool

	done chan struct{}
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("yarn: watcher: %w", err)
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("yarn: watch %s: %w", dir, err)
		}
	}

	w := &Watcher{
		fs:      fw,
		pending: make(map[string]*time.Timer),
		settled: make(map[string]struct{}),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Changed reports whether a project file settled since the last call. It
// never blocks, so the game loop can poll it every frame.
func (w *Watcher) Changed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.settled) == 0 {
		return false
	}
	clear(w.settled)
	return true
}

// Err returns the last watch error and forgets it.
func (w *Watcher) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	err := w.err
	w.err = nil
	return err
}

// Close stops watching. Later calls do nothing.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for name, t := range w.pending {
		t.Stop()
		delete(w.pending, name)
	}
	w.mu.Unlock()

	err := w.fs.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if IsProjectFile(ev.Name) {
				w.touch(ev.Name)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.mu.Lock()
			w.err = err
			w.mu.Unlock()
		}
	}
}

// touch restarts the settle timer for name.
func (w *Watcher) touch(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if old, ok := w.pending[name]; ok {
		old.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(settle, func() { w.settle(name, t) })
	w.pending[name] = t
}

// settle marks name as changed unless t was replaced by a later write.
func (w *Watcher) settle(name string, t *time.Timer) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.pending[name] != t {
		return
	}
	delete(w.pending, name)
	w.settled[name] = struct{}{}
}
