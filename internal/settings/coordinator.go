package settings

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// Coordinator owns the current snapshot. Intent methods persist a change
// through the store and publish the resulting snapshot to subscribers.
// It is safe for concurrent use.
type Coordinator struct {
	store  Store
	logger *log.Logger

	mu      sync.Mutex
	current AppSettings
	subs    map[uint64]chan AppSettings
	nextID  uint64
	closed  bool
}

// NewCoordinator loads the initial snapshot from store.
func NewCoordinator(store Store, logger *log.Logger) (*Coordinator, error) {
	if logger == nil {
		logger = log.Default()
	}
	initial, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return &Coordinator{
		store:   store,
		logger:  logger.WithPrefix("settings"),
		current: initial,
		subs:    make(map[uint64]chan AppSettings),
	}, nil
}

// Snapshot returns the latest snapshot.
func (c *Coordinator) Snapshot() AppSettings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Subscribe returns a channel that receives the current snapshot immediately
// and every published snapshot after it. At most one snapshot is pending per
// subscriber; an unread snapshot is replaced by a newer one. The returned
// func cancels the subscription and closes the channel; it may be called
// more than once.
func (c *Coordinator) Subscribe() (<-chan AppSettings, func()) {
	ch := make(chan AppSettings, 1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := c.nextID
	c.nextID++
	c.subs[id] = ch
	ch <- c.current
	c.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if sub, ok := c.subs[id]; ok {
				delete(c.subs, id)
				close(sub)
			}
		})
	}
}

// SetSelectedTheme persists and publishes a new theme.
func (c *Coordinator) SetSelectedTheme(t SelectedTheme) {
	c.apply("selected_theme", func(s AppSettings) AppSettings { return s.WithSelectedTheme(t) })
}

// SetListStyle persists and publishes a new list style.
func (c *Coordinator) SetListStyle(v ListStyle) {
	c.apply("list_style", func(s AppSettings) AppSettings { return s.WithListStyle(v) })
}

// ToggleShowNextCode flips the next-code preview flag.
func (c *Coordinator) ToggleShowNextCode() {
	c.apply("show_next_code", func(s AppSettings) AppSettings { return s.WithShowNextCode(!s.ShowNextCode) })
}

// ToggleAutoFocusSearch flips the search auto-focus flag.
func (c *Coordinator) ToggleAutoFocusSearch() {
	c.apply("auto_focus_search", func(s AppSettings) AppSettings { return s.WithAutoFocusSearch(!s.AutoFocusSearch) })
}

// ToggleShowBackupNotice flips the backup reminder flag.
func (c *Coordinator) ToggleShowBackupNotice() {
	c.apply("show_backup_notice", func(s AppSettings) AppSettings { return s.WithShowBackupNotice(!s.ShowBackupNotice) })
}

// Reload re-reads the store and publishes the stored snapshot if it differs
// from the current one. The read holds the lock so it cannot interleave with
// an intent's save.
func (c *Coordinator) Reload() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored, err := c.store.Load()
	if err != nil {
		return fmt.Errorf("reloading settings: %w", err)
	}
	if stored == c.current {
		return nil
	}
	c.logger.Debug("settings changed on disk", "settings", stored)
	c.current = stored
	c.publishLocked()
	return nil
}

// Close cancels every subscription. Intents after Close still persist.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, ch := range c.subs {
		delete(c.subs, id)
		close(ch)
	}
	c.closed = true
}

func (c *Coordinator) apply(field string, change func(AppSettings) AppSettings) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := change(c.current)
	if next == c.current {
		return
	}

	if err := c.store.Save(next); err != nil {
		// The stored value did not change; republish it so observers that
		// assumed the change settle back on what is stored.
		c.logger.Error("saving settings", "field", field, "err", err)
		c.publishLocked()
		return
	}

	c.logger.Debug("settings updated", "field", field, "settings", next)
	c.current = next
	c.publishLocked()
}

func (c *Coordinator) publishLocked() {
	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- c.current
	}
}
