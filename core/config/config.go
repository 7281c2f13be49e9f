// Package config loads and watches the weft configuration file. The
// engine's thresholds and window sizes are tunable here rather than
// being compiled in.
package config

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/adalundhe/weft/core/conversation"
)

// DefaultDebounce is how long the watcher waits after a write before
// reloading, so editors that write in multiple events trigger one
// reload.
const DefaultDebounce = 100 * time.Millisecond

// Config is the root configuration document.
type Config struct {
	Engine conversation.Config `yaml:"engine"`
}

// DefaultConfig returns the built-in defaults used when no file is
// present.
func DefaultConfig() *Config {
	return &Config{Engine: conversation.DefaultConfig()}
}

// Manager owns the loaded configuration and serves it lock-free to
// readers. Load swaps the whole document atomically.
type Manager struct {
	configPtr unsafe.Pointer
	path      string

	watcherMu sync.RWMutex
	watchers  []func(*Config)

	stopWatch chan struct{}
	watchOnce sync.Once
}

// NewManager creates a manager for the config file at path. The file
// is optional; defaults apply until Load finds one.
func NewManager(path string) *Manager {
	m := &Manager{
		path:      path,
		stopWatch: make(chan struct{}),
	}
	atomic.StorePointer(&m.configPtr, unsafe.Pointer(DefaultConfig()))
	return m
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	return (*Config)(atomic.LoadPointer(&m.configPtr))
}

// Load reads the config file over the defaults and swaps it in,
// notifying change watchers. A missing file leaves the defaults in
// place.
func (m *Manager) Load() error {
	cfg := DefaultConfig()

	if err := m.loadYAMLFile(m.path, cfg); err != nil {
		return fmt.Errorf("config %s: %w", m.path, err)
	}
	m.applyEnvironment(cfg)

	atomic.StorePointer(&m.configPtr, unsafe.Pointer(cfg))
	m.notifyWatchers(cfg)
	return nil
}

func (m *Manager) loadYAMLFile(path string, cfg *Config) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func (m *Manager) applyEnvironment(cfg *Config) {
	if v := os.Getenv("WEFT_JACCARD_THRESHOLD"); v != "" {
		if f, err := parseFloat(v); err == nil {
			cfg.Engine.Relatedness.JaccardThreshold = f
		}
	}
	if v := os.Getenv("WEFT_MAX_HISTORY"); v != "" {
		if n, err := parseInt(v); err == nil {
			cfg.Engine.MaxHistory = n
		}
	}
	if v := os.Getenv("WEFT_MAX_SESSIONS"); v != "" {
		if n, err := parseInt(v); err == nil {
			cfg.Engine.MaxSessions = n
		}
	}
}

// OnChange registers a callback invoked with every newly loaded
// configuration.
func (m *Manager) OnChange(fn func(*Config)) {
	m.watcherMu.Lock()
	m.watchers = append(m.watchers, fn)
	m.watcherMu.Unlock()
}

func (m *Manager) notifyWatchers(cfg *Config) {
	m.watcherMu.RLock()
	watchers := m.watchers
	m.watcherMu.RUnlock()

	for _, fn := range watchers {
		fn(cfg)
	}
}

// Watch reloads the configuration whenever the file changes on disk.
// It returns immediately; watching stops when Close is called.
func (m *Manager) Watch() error {
	if m.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}
	if err := watcher.Add(m.path); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", m.path, err)
	}

	go m.watchLoop(watcher)
	return nil
}

func (m *Manager) watchLoop(watcher *fsnotify.Watcher) {
	defer watcher.Close()

	var debounce *time.Timer
	for {
		select {
		case <-m.stopWatch:
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(DefaultDebounce, func() {
				_ = m.Load()
			})

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// Reload re-reads the configuration file.
func (m *Manager) Reload() error {
	return m.Load()
}

// Close stops the file watcher.
func (m *Manager) Close() error {
	m.watchOnce.Do(func() {
		close(m.stopWatch)
	})
	return nil
}

func parseInt(s string) (int, error) {
	var n int
	_, err := fmt.Sscanf(s, "%d", &n)
	return n, err
}

func parseFloat(s string) (float64, error) {
	var f float64
	_, err := fmt.Sscanf(s, "%f", &f)
	return f, err
}
