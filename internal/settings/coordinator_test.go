package settings

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCoordinator(t *testing.T, initial AppSettings) (*Coordinator, *MemoryStore, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	store := NewMemoryStore(initial)
	c, err := NewCoordinator(store, logger)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c, store, &buf
}

func recv(t *testing.T, ch <-chan AppSettings) AppSettings {
	t.Helper()
	select {
	case s, ok := <-ch:
		require.True(t, ok, "subscription closed unexpectedly")
		return s
	default:
		t.Fatal("no snapshot pending")
		return AppSettings{}
	}
}

func assertNothingPending(t *testing.T, ch <-chan AppSettings) {
	t.Helper()
	select {
	case s := <-ch:
		t.Fatalf("unexpected snapshot %+v", s)
	default:
	}
}

func TestSubscribe_DeliversCurrentSnapshot(t *testing.T) {
	initial := Defaults().WithShowNextCode(true)
	c, _, _ := newTestCoordinator(t, initial)

	ch, cancel := c.Subscribe()
	defer cancel()
	assert.Equal(t, initial, recv(t, ch))
	assertNothingPending(t, ch)
}

func TestIntents_PersistAndPublish(t *testing.T) {
	tests := []struct {
		name   string
		intent func(*Coordinator)
		want   func(AppSettings) AppSettings
	}{
		{"theme", func(c *Coordinator) { c.SetSelectedTheme(ThemeDark) }, func(s AppSettings) AppSettings { return s.WithSelectedTheme(ThemeDark) }},
		{"list style", func(c *Coordinator) { c.SetListStyle(StyleCompact) }, func(s AppSettings) AppSettings { return s.WithListStyle(StyleCompact) }},
		{"next code", (*Coordinator).ToggleShowNextCode, func(s AppSettings) AppSettings { return s.WithShowNextCode(true) }},
		{"auto focus", (*Coordinator).ToggleAutoFocusSearch, func(s AppSettings) AppSettings { return s.WithAutoFocusSearch(true) }},
		{"backup notice", (*Coordinator).ToggleShowBackupNotice, func(s AppSettings) AppSettings { return s.WithShowBackupNotice(false) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, store, _ := newTestCoordinator(t, Defaults())
			ch, cancel := c.Subscribe()
			defer cancel()
			recv(t, ch)

			tt.intent(c)

			want := tt.want(Defaults())
			assert.Equal(t, want, recv(t, ch))
			assert.Equal(t, want, c.Snapshot())
			stored, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, want, stored)
			assert.Equal(t, 1, store.Saves())
		})
	}
}

func TestIntent_NoChangePublishesNothing(t *testing.T) {
	c, store, _ := newTestCoordinator(t, Defaults())
	ch, cancel := c.Subscribe()
	defer cancel()
	recv(t, ch)

	c.SetSelectedTheme(ThemeSystem)

	assertNothingPending(t, ch)
	assert.Zero(t, store.Saves())
}

func TestIntent_SaveFailureKeepsSnapshot(t *testing.T) {
	c, store, logs := newTestCoordinator(t, Defaults())
	ch, cancel := c.Subscribe()
	defer cancel()
	recv(t, ch)

	store.FailSaves(true)
	c.ToggleShowNextCode()

	assert.Equal(t, Defaults(), c.Snapshot())
	assert.Equal(t, Defaults(), recv(t, ch), "unchanged snapshot is republished")
	assert.Contains(t, logs.String(), "saving settings")
}

func TestSubscribe_LatestWins(t *testing.T) {
	c, _, _ := newTestCoordinator(t, Defaults())
	ch, cancel := c.Subscribe()
	defer cancel()

	c.SetSelectedTheme(ThemeLight)
	c.SetSelectedTheme(ThemeDark)

	assert.Equal(t, ThemeDark, recv(t, ch).SelectedTheme)
	assertNothingPending(t, ch)
}

func TestSubscribe_CancelClosesChannel(t *testing.T) {
	c, _, _ := newTestCoordinator(t, Defaults())
	ch, cancel := c.Subscribe()
	recv(t, ch)

	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)

	// Publishing after cancel must not panic on the closed channel.
	c.ToggleShowNextCode()
}

func TestClose_ClosesSubscriptions(t *testing.T) {
	c, _, _ := newTestCoordinator(t, Defaults())
	ch, cancel := c.Subscribe()
	defer cancel()
	recv(t, ch)

	c.Close()
	_, ok := <-ch
	assert.False(t, ok)

	late, lateCancel := c.Subscribe()
	defer lateCancel()
	_, ok = <-late
	assert.False(t, ok, "subscriptions after Close are closed immediately")
}

func TestReload_PublishesOnlyWhenStoreDiffers(t *testing.T) {
	c, store, _ := newTestCoordinator(t, Defaults())
	ch, cancel := c.Subscribe()
	defer cancel()
	recv(t, ch)

	require.NoError(t, c.Reload())
	assertNothingPending(t, ch)

	external := Defaults().WithListStyle(StyleCompact)
	require.NoError(t, store.Save(external))
	require.NoError(t, c.Reload())

	assert.Equal(t, external, recv(t, ch))
	assert.Equal(t, external, c.Snapshot())
}

// racingStore runs onLoad once, right after a Load has read its value.
// A nil onLoad is skipped.
type racingStore struct {
	*MemoryStore
	once   sync.Once
	onLoad func()
}

func (s *racingStore) Load() (AppSettings, error) {
	v, err := s.MemoryStore.Load()
	if s.onLoad != nil {
		s.once.Do(s.onLoad)
	}
	return v, err
}

func TestReload_DoesNotRevertConcurrentIntent(t *testing.T) {
	store := &racingStore{MemoryStore: NewMemoryStore(Defaults())}
	c, err := NewCoordinator(store, log.New(&bytes.Buffer{}))
	require.NoError(t, err)
	t.Cleanup(c.Close)

	done := make(chan struct{})
	store.onLoad = func() {
		go func() {
			defer close(done)
			c.ToggleShowNextCode()
		}()
		select {
		case <-done:
		case <-time.After(50 * time.Millisecond):
		}
	}

	require.NoError(t, c.Reload())
	<-done

	stored, err := store.MemoryStore.Load()
	require.NoError(t, err)
	assert.True(t, stored.ShowNextCode)
	assert.Equal(t, stored, c.Snapshot(), "coordinator and store must agree")
}
