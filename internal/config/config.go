package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type Config struct {
	//===============
	// Render policy
	//===============
	// Whether literal HTML in messages passes through the Markdown renderer.
	// When false the renderer skips raw HTML blocks entirely.
	allowRawHTML bool
	// Size ceiling (bytes) above which direction wrapping is skipped.
	// Zero means unbounded.
	maxMessageLen int
	// Deepest element nesting the reconstructor will recurse into.
	// Zero means unbounded.
	maxNestingDepth int

	//===============
	// Cache
	//===============
	// Whether rendered messages are memoized by content hash.
	cacheEnabled bool
	// How long a memoized render stays valid.
	cacheTTL time.Duration
	// How often expired entries are swept.
	cacheSweepInterval time.Duration

	//===============
	// Serve surface
	//===============
	// Address the HTTP render endpoint binds to.
	listenAddr string
	// Per-client request ceiling per minute on the render endpoint.
	requestsPerMinute int

	//===============
	// Logging
	//===============
	// Log file path. Empty means stderr.
	logPath string
	// Rotated log file size ceiling in megabytes.
	logMaxSizeMB int
	// Number of rotated log files kept around.
	logMaxBackups int
}

type configDTO struct {
	AllowRawHTML       bool          `json:"allowRawHtml,omitempty"`
	MaxMessageLen      int           `json:"maxMessageLen,omitempty"`
	MaxNestingDepth    int           `json:"maxNestingDepth,omitempty"`
	CacheEnabled       *bool         `json:"cacheEnabled,omitempty"`
	CacheTTL           time.Duration `json:"cacheTtl,omitempty"`
	CacheSweepInterval time.Duration `json:"cacheSweepInterval,omitempty"`
	ListenAddr         string        `json:"listenAddr,omitempty"`
	RequestsPerMinute  int           `json:"requestsPerMinute,omitempty"`
	LogPath            string        `json:"logPath,omitempty"`
	LogMaxSizeMB       int           `json:"logMaxSizeMb,omitempty"`
	LogMaxBackups      int           `json:"logMaxBackups,omitempty"`
}

func newConfigFromDTO(dto configDTO) (Config, error) {
	cfg, err := WithDefault().Build()
	if err != nil {
		return Config{}, err
	}

	// AllowRawHTML is a boolean; the DTO value is taken as-is since the
	// zero value matches the default.
	cfg.allowRawHTML = dto.AllowRawHTML

	// For other fields, only override when a non-zero value is provided.
	if dto.MaxMessageLen != 0 {
		cfg.maxMessageLen = dto.MaxMessageLen
	}
	if dto.MaxNestingDepth != 0 {
		cfg.maxNestingDepth = dto.MaxNestingDepth
	}
	// CacheEnabled defaults to true, so absence must be distinguishable
	// from an explicit false.
	if dto.CacheEnabled != nil {
		cfg.cacheEnabled = *dto.CacheEnabled
	}
	if dto.CacheTTL != 0 {
		cfg.cacheTTL = dto.CacheTTL
	}
	if dto.CacheSweepInterval != 0 {
		cfg.cacheSweepInterval = dto.CacheSweepInterval
	}
	if dto.ListenAddr != "" {
		cfg.listenAddr = dto.ListenAddr
	}
	if dto.RequestsPerMinute != 0 {
		cfg.requestsPerMinute = dto.RequestsPerMinute
	}
	if dto.LogPath != "" {
		cfg.logPath = dto.LogPath
	}
	if dto.LogMaxSizeMB != 0 {
		cfg.logMaxSizeMB = dto.LogMaxSizeMB
	}
	if dto.LogMaxBackups != 0 {
		cfg.logMaxBackups = dto.LogMaxBackups
	}

	return cfg, nil
}

func WithConfigFile(path string) (Config, error) {
	_, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrFileDoesNotExist, err.Error())
	}
	configContent, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrReadConfigFail, err.Error())
	}
	cfgDTO := configDTO{}

	err = json.Unmarshal(configContent, &cfgDTO)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigParsingFail, err.Error())
	}

	cfg, err := newConfigFromDTO(cfgDTO)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithDefault creates a new Config with default values for all fields.
func WithDefault() *Config {
	defaultConfig := Config{
		allowRawHTML:       false,
		maxMessageLen:      1 << 20,
		maxNestingDepth:    256,
		cacheEnabled:       true,
		cacheTTL:           10 * time.Minute,
		cacheSweepInterval: time.Minute,
		listenAddr:         ":8080",
		requestsPerMinute:  120,
		logPath:            "",
		logMaxSizeMB:       50,
		logMaxBackups:      3,
	}
	return &defaultConfig
}

func (c *Config) WithAllowRawHTML(allow bool) *Config {
	c.allowRawHTML = allow
	return c
}

func (c *Config) WithMaxMessageLen(maxLen int) *Config {
	c.maxMessageLen = maxLen
	return c
}

func (c *Config) WithMaxNestingDepth(depth int) *Config {
	c.maxNestingDepth = depth
	return c
}

func (c *Config) WithCacheEnabled(enabled bool) *Config {
	c.cacheEnabled = enabled
	return c
}

func (c *Config) WithCacheTTL(ttl time.Duration) *Config {
	c.cacheTTL = ttl
	return c
}

func (c *Config) WithCacheSweepInterval(interval time.Duration) *Config {
	c.cacheSweepInterval = interval
	return c
}

func (c *Config) WithListenAddr(addr string) *Config {
	c.listenAddr = addr
	return c
}

func (c *Config) WithRequestsPerMinute(rpm int) *Config {
	c.requestsPerMinute = rpm
	return c
}

func (c *Config) WithLogPath(path string) *Config {
	c.logPath = path
	return c
}

func (c *Config) WithLogMaxSizeMB(sizeMB int) *Config {
	c.logMaxSizeMB = sizeMB
	return c
}

func (c *Config) WithLogMaxBackups(backups int) *Config {
	c.logMaxBackups = backups
	return c
}

func (c *Config) Build() (Config, error) {
	if c.maxMessageLen < 0 {
		return Config{}, fmt.Errorf("%w: maxMessageLen cannot be negative", ErrInvalidConfig)
	}
	if c.maxNestingDepth < 0 {
		return Config{}, fmt.Errorf("%w: maxNestingDepth cannot be negative", ErrInvalidConfig)
	}
	if c.cacheEnabled && c.cacheTTL <= 0 {
		return Config{}, fmt.Errorf("%w: cacheTtl must be positive when the cache is enabled", ErrInvalidConfig)
	}
	if c.requestsPerMinute < 0 {
		return Config{}, fmt.Errorf("%w: requestsPerMinute cannot be negative", ErrInvalidConfig)
	}
	return *c, nil
}

func (c Config) AllowRawHTML() bool {
	return c.allowRawHTML
}

func (c Config) MaxMessageLen() int {
	return c.maxMessageLen
}

func (c Config) MaxNestingDepth() int {
	return c.maxNestingDepth
}

func (c Config) CacheEnabled() bool {
	return c.cacheEnabled
}

func (c Config) CacheTTL() time.Duration {
	return c.cacheTTL
}

func (c Config) CacheSweepInterval() time.Duration {
	return c.cacheSweepInterval
}

func (c Config) ListenAddr() string {
	return c.listenAddr
}

func (c Config) RequestsPerMinute() int {
	return c.requestsPerMinute
}

func (c Config) LogPath() string {
	return c.logPath
}

func (c Config) LogMaxSizeMB() int {
	return c.logMaxSizeMB
}

func (c Config) LogMaxBackups() int {
	return c.logMaxBackups
}
