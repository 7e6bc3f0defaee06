package watch

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Event reports that an immediate child of the root appeared, disappeared
// or was renamed.
type Event struct {
	Type    string `json:"type"`
	Op      string `json:"op"`
	Dirname string `json:"dirname"`
}

const TypeChanged = "changed"

// Watcher observes the root folder itself, not its subtrees.
type Watcher struct {
	root string
	fsw  *fsnotify.Watcher
}

func New(root string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return &Watcher{root: root, fsw: fsw}, nil
}

// Run delivers events to fn until ctx is done or the watcher is closed.
// fn is called from the Run goroutine only.
func (w *Watcher) Run(ctx context.Context, fn func(Event)) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if out, keep := translate(ev); keep {
				fn(out)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("watch %s: %v", w.root, err)
		}
	}
}

func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func translate(ev fsnotify.Event) (Event, bool) {
	var op string
	switch {
	case ev.Has(fsnotify.Create):
		op = "create"
	case ev.Has(fsnotify.Remove):
		op = "remove"
	case ev.Has(fsnotify.Rename):
		op = "rename"
	default:
		return Event{}, false
	}
	return Event{Type: TypeChanged, Op: op, Dirname: filepath.Base(ev.Name)}, true
}
