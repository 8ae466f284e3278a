package pipeline_test

import (
	"strings"
	"testing"
	"time"

	"github.com/rohmanhakim/msgrender/internal/cache"
	"github.com/rohmanhakim/msgrender/internal/metadata"
	"github.com/rohmanhakim/msgrender/internal/pipeline"
	"github.com/rohmanhakim/msgrender/internal/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPipeline(sink metadata.Sink, policy pipeline.Policy) pipeline.MessagePipeline {
	return pipeline.NewMessagePipeline(sink, nil, policy)
}

func TestMessagePipeline_Render_Empty(t *testing.T) {
	p := newPipeline(&metadata.NoopSink{}, pipeline.DefaultPolicy())

	got := p.Render("")
	assert.Equal(t, "", got.HTML())
	assert.Equal(t, script.LTR, got.Direction())
}

func TestMessagePipeline_Render_PureLTR(t *testing.T) {
	p := newPipeline(&metadata.NoopSink{}, pipeline.DefaultPolicy())

	got := p.Render("Hello **world**")
	assert.Equal(t, script.LTR, got.Direction())
	assert.Contains(t, got.HTML(), "<strong>world</strong>")
	// No RTL script means the rendered HTML passes through unwrapped.
	assert.NotContains(t, got.HTML(), "dir=")
}

func TestMessagePipeline_Render_PureRTL(t *testing.T) {
	p := newPipeline(&metadata.NoopSink{}, pipeline.DefaultPolicy())

	got := p.Render("مرحبا")
	assert.Equal(t, script.RTL, got.Direction())
	assert.Contains(t, got.HTML(),
		`<span dir="rtl" style="display: inline-block">مرحبا</span>`,
	)
}

func TestMessagePipeline_Render_MixedScripts(t *testing.T) {
	p := newPipeline(&metadata.NoopSink{}, pipeline.DefaultPolicy())

	got := p.Render("Hello **مرحبا** world")
	assert.Equal(t, script.RTL, got.Direction())
	assert.Contains(t, got.HTML(), `<span dir="rtl"`)
	assert.Contains(t, got.HTML(), `<span dir="ltr"`)
	assert.Contains(t, got.HTML(), "<strong>")
}

func TestMessagePipeline_Render_RecordsRunCounts(t *testing.T) {
	sink := &mockSink{}
	p := newPipeline(sink, pipeline.DefaultPolicy())

	p.Render("Hello مرحبا")

	require.Len(t, sink.renderEvents, 1)
	event := sink.renderEvents[0]
	assert.Equal(t, "rtl", event.direction)
	assert.Equal(t, 1, event.rtlRuns)
	assert.Equal(t, 1, event.ltrRuns)
	assert.False(t, event.cacheHit)
}

func TestMessagePipeline_Render_CacheHit(t *testing.T) {
	sink := &mockSink{}
	renderCache := cache.NewRenderCache(time.Minute, time.Minute)
	p := pipeline.NewMessagePipeline(sink, renderCache, pipeline.DefaultPolicy())

	first := p.Render("مرحبا")
	second := p.Render("مرحبا")

	assert.Equal(t, first, second)
	require.Len(t, sink.renderEvents, 2)
	assert.False(t, sink.renderEvents[0].cacheHit)
	assert.True(t, sink.renderEvents[1].cacheHit)
}

func TestMessagePipeline_Render_OversizeGuard(t *testing.T) {
	sink := &mockSink{}
	p := newPipeline(sink, pipeline.NewPolicy(false, 8, 256))

	got := p.Render("مرحبا مرحبا مرحبا")
	assert.Equal(t, script.LTR, got.Direction())
	assert.NotContains(t, got.HTML(), "dir=")

	require.Len(t, sink.fallbackEvents, 1)
	assert.Equal(t, "pipeline", sink.fallbackEvents[0].packageName)
	assert.Equal(t, metadata.CauseInputOversize, sink.fallbackEvents[0].cause)
}

func TestMessagePipeline_Render_DepthGuardFallsBack(t *testing.T) {
	sink := &mockSink{}
	p := newPipeline(sink, pipeline.NewPolicy(false, 1<<20, 2))

	// Nested blockquotes exceed the depth bound after rendering.
	got := p.Render("> > > > مرحبا")
	assert.Equal(t, script.LTR, got.Direction())
	assert.Contains(t, got.HTML(), "مرحبا")
	assert.NotContains(t, got.HTML(), "dir=")

	require.Len(t, sink.fallbackEvents, 1)
	assert.Equal(t, metadata.CauseMarkupInvalid, sink.fallbackEvents[0].cause)
}

func TestMessagePipeline_Render_NeverPanics(t *testing.T) {
	p := newPipeline(&metadata.NoopSink{}, pipeline.DefaultPolicy())

	inputs := []string{
		"",
		"plain",
		"مرحبا",
		"<script>alert(1)</script>م",
		"[link](javascript:alert(1)) م",
		strings.Repeat("> ", 100) + "م",
		strings.Repeat("*", 1000) + "م",
		"\x00\x01م\x02",
		"�م",
		"`unterminated code م",
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() {
			got := p.Render(in)
			dir := got.Direction().String()
			assert.True(t, dir == "ltr" || dir == "rtl", "input %q", in)
		}, "input %q", in)
	}
}

func TestMessagePipeline_Render_ContentSurvivesWrapping(t *testing.T) {
	p := newPipeline(&metadata.NoopSink{}, pipeline.DefaultPolicy())

	got := p.Render("قال: *hello* world")
	assert.Equal(t, script.RTL, got.Direction())
	assert.Contains(t, got.HTML(), "قال")
	assert.Contains(t, got.HTML(), "<em>")
	assert.Contains(t, got.HTML(), "hello")
	assert.Contains(t, got.HTML(), "world")
}
