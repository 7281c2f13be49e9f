package relatedness

const (
	defaultJaccardThreshold = 0.30
	defaultHistoryWindow    = 3

	defaultCacheNumCounters = 1e5
	defaultCacheMaxCost     = 1e4
	defaultCacheBufferItems = 64
)

// Config tunes the relatedness engine. The thresholds and windows were
// chosen empirically; they are configuration rather than constants so
// they can be tuned without a rebuild.
type Config struct {
	// Minimum Jaccard word-set similarity for two contents to count as
	// lexically related.
	JaccardThreshold float64 `yaml:"jaccard_threshold"`

	// How many of the most recent records a new input is checked against.
	HistoryWindow int `yaml:"history_window"`

	// Memoize pairwise decisions in a ristretto cache.
	CacheEnabled bool `yaml:"cache_enabled"`

	CacheNumCounters int64 `yaml:"cache_num_counters"`
	CacheMaxCost     int64 `yaml:"cache_max_cost"`
	CacheBufferItems int64 `yaml:"cache_buffer_items"`
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		JaccardThreshold: defaultJaccardThreshold,
		HistoryWindow:    defaultHistoryWindow,
		CacheEnabled:     true,
		CacheNumCounters: defaultCacheNumCounters,
		CacheMaxCost:     defaultCacheMaxCost,
		CacheBufferItems: defaultCacheBufferItems,
	}
}

func (c Config) withDefaults() Config {
	if c.JaccardThreshold <= 0 {
		c.JaccardThreshold = defaultJaccardThreshold
	}
	if c.HistoryWindow <= 0 {
		c.HistoryWindow = defaultHistoryWindow
	}
	if c.CacheNumCounters <= 0 {
		c.CacheNumCounters = defaultCacheNumCounters
	}
	if c.CacheMaxCost <= 0 {
		c.CacheMaxCost = defaultCacheMaxCost
	}
	if c.CacheBufferItems <= 0 {
		c.CacheBufferItems = defaultCacheBufferItems
	}
	return c
}
