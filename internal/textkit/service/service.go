package service

import (
	"context"
	"strings"
	"time"

	"github.com/msto63/textkit/foundation/core/config"
	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/utils/patternx"
	"github.com/msto63/textkit/pkg/core/health"
	"github.com/msto63/textkit/pkg/core/logging"
	"github.com/msto63/textkit/pkg/core/version"
)

// Configuration keys read by ConfigFromConfig
const (
	KeyEngine    = "pattern.engine"
	KeyTimeout   = "pattern.timeout"
	KeyCacheSize = "pattern.cache_size"
	KeyStrict    = "pattern.strict"
)

// Config holds service configuration
type Config struct {
	Engine    patternx.Engine
	Timeout   time.Duration
	CacheSize int
	Strict    bool
	Logger    *logging.Logger
}

// DefaultConfig returns default service configuration
func DefaultConfig() Config {
	return Config{
		Engine:    patternx.EngineBacktracking,
		Timeout:   patternx.DefaultTimeout,
		CacheSize: patternx.DefaultCacheSize,
	}
}

var configRules = config.ValidationRules{
	KeyEngine:    {OneOf: []string{"backtracking", "regexp2", "linear", "coregex", "re2", "auto"}},
	KeyTimeout:   {Type: "duration", Min: config.Bound(0)},
	KeyCacheSize: {Type: "int", Min: config.Bound(0)},
	KeyStrict:    {Type: "bool"},
}

// ConfigFromConfig overlays the pattern.* keys of cfg on the defaults.
// Values failing validation are an INVALID_CONFIG error.
func ConfigFromConfig(cfg *config.Config) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if result := cfg.Validate(configRules); !result.Valid {
		return c, tkerror.Newf("invalid pattern configuration: %s", strings.Join(result.Errors, "; ")).
			WithCode(tkerror.CodeInvalidConfig).
			WithOperation("service.ConfigFromConfig").
			WithDetail("errors", result.Errors)
	}
	if name := cfg.GetString(KeyEngine); name != "" {
		c.Engine, _ = patternx.ParseEngine(name)
	}
	c.Timeout = cfg.GetDuration(KeyTimeout, c.Timeout)
	c.CacheSize = cfg.GetInt(KeyCacheSize, c.CacheSize)
	c.Strict = cfg.GetBool(KeyStrict, c.Strict)
	return c, nil
}

// Service runs pattern and transform requests with one engine, timeout and
// compiled-pattern cache
type Service struct {
	cfg    Config
	cache  *patternx.Cache
	health *health.Registry
	logger *logging.Logger
}

// NewService creates a new text service
func NewService(cfg Config) (*Service, error) {
	if cfg.CacheSize < 0 {
		return nil, tkerror.New("cache size must not be negative").
			WithCode(tkerror.CodeInvalidConfig).
			WithOperation("service.NewService")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.New("textkit")
	}

	s := &Service{
		cfg:    cfg,
		cache:  patternx.NewCache(cfg.CacheSize),
		health: health.NewRegistry("textkit", version.Service),
		logger: logger,
	}
	s.health.Register(health.ErrorCheck("patterns", s.checkRegistry))
	s.health.RegisterFunc("cache", s.checkCache)

	logger.Info("Text service created", "engine", cfg.Engine.String(), "timeout", cfg.Timeout, "cache_size", cfg.CacheSize, "strict", cfg.Strict)
	return s, nil
}

// Config returns the service configuration
func (s *Service) Config() Config {
	return s.cfg
}

// Cache returns the compiled-pattern cache used by the service
func (s *Service) Cache() *patternx.Cache {
	return s.cache
}

// HealthRegistry returns the health check registry
func (s *Service) HealthRegistry() *health.Registry {
	return s.health
}

// Health runs all health checks
func (s *Service) Health(ctx context.Context) *health.Report {
	return s.health.Check(ctx)
}

// checkRegistry compiles every built-in pattern the way requests would
func (s *Service) checkRegistry(ctx context.Context) error {
	for _, name := range patternx.Names() {
		if err := ctx.Err(); err != nil {
			return err
		}
		p, err := s.Pattern(PatternSpec{Name: name})
		if err == nil {
			err = p.Validate()
		}
		if err != nil {
			return tkerror.Wrap(err, "built-in pattern does not compile").
				WithCode(tkerror.CodePatternCompile).
				WithDetail("name", name)
		}
	}
	return nil
}

func (s *Service) checkCache(ctx context.Context) health.CheckResult {
	stats := s.cache.Stats()
	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: "compiled-pattern cache",
		Details: map[string]interface{}{
			"size":     stats.Size,
			"max_size": stats.MaxSize,
			"hits":     stats.Hits,
			"misses":   stats.Misses,
			"hit_rate": stats.HitRate(),
		},
	}
}

// begin rejects requests whose context has already ended
func begin(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return tkerror.Wrap(err, "request ended before it started").
			WithCode(tkerror.CodeCanceled).
			WithOperation(op)
	}
	return nil
}
