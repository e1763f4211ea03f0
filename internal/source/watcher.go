package source

import (
	"context"
	"sync"
	"time"
)

// Kind represents the type of data emitted by the source watcher.
type Kind int

const (
	KindFiles Kind = iota
	KindBookmarks
	KindWorkspaces
)

// Event conveys updated data or an error from a state poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Watcher polls the demo state file at a fixed interval and publishes events.
type Watcher struct {
	statePath string
	interval  time.Duration
	started   time.Time

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that re-reads the state file every interval.
func NewWatcher(statePath string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		statePath: statePath,
		interval:  interval,
		started:   time.Now(),
		ctx:       ctx,
		cancel:    cancel,
		events:    make(chan Event, 16),
	}

	w.startFilePoller()
	w.startBookmarkPoller()
	w.startWorkspacePoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of source events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startFilePoller() {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(KindFiles, func(context.Context) (interface{}, error) {
		throttle.wait()
		state, err := LoadState(w.statePath)
		if err != nil {
			return nil, err
		}
		return state.FileEntries(w.started), nil
	})
}

func (w *Watcher) startBookmarkPoller() {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(KindBookmarks, func(context.Context) (interface{}, error) {
		throttle.wait()
		state, err := LoadState(w.statePath)
		if err != nil {
			return nil, err
		}
		return state.BookmarkEntries(), nil
	})
}

func (w *Watcher) startWorkspacePoller() {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(KindWorkspaces, func(context.Context) (interface{}, error) {
		throttle.wait()
		state, err := LoadState(w.statePath)
		if err != nil {
			return nil, err
		}
		return WorkspaceSnapshot{Current: state.Workspace, Names: state.Workspaces}, nil
	})
}

// WorkspaceSnapshot pairs the workspace list with the current selection.
type WorkspaceSnapshot struct {
	Current string
	Names   []string
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
