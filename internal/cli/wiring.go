package cmd

import (
	"github.com/rohmanhakim/msgrender/internal/cache"
	"github.com/rohmanhakim/msgrender/internal/config"
	"github.com/rohmanhakim/msgrender/internal/metadata"
	"github.com/rohmanhakim/msgrender/internal/pipeline"
	"go.uber.org/zap"
)

// buildLogger constructs the zap logger from config.
func buildLogger(cfg config.Config) *zap.Logger {
	return metadata.NewLogger(cfg.LogPath(), cfg.LogMaxSizeMB(), cfg.LogMaxBackups())
}

// buildPipeline wires the render pipeline from config with a zap-backed
// metadata recorder.
func buildPipeline(cfg config.Config) *pipeline.MessagePipeline {
	return buildPipelineWithLogger(cfg, buildLogger(cfg))
}

func buildPipelineWithLogger(cfg config.Config, logger *zap.Logger) *pipeline.MessagePipeline {
	recorder := metadata.NewZapRecorder(logger)

	var renderCache *cache.RenderCache
	if cfg.CacheEnabled() {
		renderCache = cache.NewRenderCache(cfg.CacheTTL(), cfg.CacheSweepInterval())
	}

	p := pipeline.NewMessagePipeline(
		recorder,
		renderCache,
		pipeline.NewPolicy(cfg.AllowRawHTML(), cfg.MaxMessageLen(), cfg.MaxNestingDepth()),
	)
	return &p
}
