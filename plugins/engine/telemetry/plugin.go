package telemetry

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rom8726/chatsweep"
)

var _ chatsweep.Plugin = (*TelemetryPlugin)(nil)

type spanEntry struct {
	span      trace.Span
	createdAt time.Time
}

type runCtxEntry struct {
	ctx       context.Context
	createdAt time.Time
}

// TelemetryPlugin opens a span per run and a child span per delete request.
// Fetched pages are recorded as events on the run span.
type TelemetryPlugin struct {
	chatsweep.BasePlugin

	tracer     trace.Tracer
	mu         sync.RWMutex
	spans      map[string]*spanEntry
	runCtxs    map[string]*runCtxEntry
	defaultTTL time.Duration
}

type TelemetryOption func(*TelemetryPlugin)

func WithDefaultTTL(ttl time.Duration) TelemetryOption {
	return func(p *TelemetryPlugin) {
		p.defaultTTL = ttl
	}
}

func New(tracer trace.Tracer, opts ...TelemetryOption) *TelemetryPlugin {
	if tracer == nil {
		tracer = otel.Tracer("chatsweep")
	}

	plugin := &TelemetryPlugin{
		BasePlugin: chatsweep.NewBasePlugin("telemetry", chatsweep.PriorityHigh),
		tracer:     tracer,
		spans:      make(map[string]*spanEntry),
		runCtxs:    make(map[string]*runCtxEntry),
		defaultTTL: 24 * time.Hour,
	}

	for _, opt := range opts {
		opt(plugin)
	}

	return plugin
}

func (p *TelemetryPlugin) OnRunStart(ctx context.Context, run *chatsweep.Run) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, span := p.tracer.Start(ctx, "sweep.run", trace.WithSpanKind(trace.SpanKindClient))

	span.SetAttributes(
		attribute.String("run.id", run.ID),
		attribute.String("run.target_user", run.TargetUser),
		attribute.StringSlice("run.channels", run.Channels),
		attribute.String("run.cutoff", run.Cutoff.Format(time.RFC3339)),
		attribute.Bool("run.dry_run", run.DryRun),
	)

	now := time.Now()
	p.spans[runKey(run)] = &spanEntry{span: span, createdAt: now}
	p.runCtxs[run.ID] = &runCtxEntry{ctx: runCtx, createdAt: now}

	p.cleanupExpired()

	return nil
}

func (p *TelemetryPlugin) OnRunComplete(ctx context.Context, run *chatsweep.Run) error {
	p.endRun(run, codes.Ok, "run "+string(run.Status), nil)

	return nil
}

func (p *TelemetryPlugin) OnRunFailed(ctx context.Context, run *chatsweep.Run, err error) error {
	p.endRun(run, codes.Error, "run failed", err)

	return nil
}

func (p *TelemetryPlugin) endRun(run *chatsweep.Run, code codes.Code, description string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := runKey(run)
	if entry, ok := p.spans[key]; ok {
		entry.span.SetAttributes(
			attribute.String("run.status", string(run.Status)),
			attribute.Int("run.pages", run.Pages),
			attribute.Int("run.scanned", run.Scanned),
			attribute.Int("run.matched", run.Matched),
			attribute.Int("run.deleted", run.Deleted),
			attribute.Int("run.failed", run.Failed),
		)
		if err != nil {
			entry.span.RecordError(err)
		}
		entry.span.SetStatus(code, description)
		entry.span.End()
		delete(p.spans, key)
	}
	delete(p.runCtxs, run.ID)
}

func (p *TelemetryPlugin) OnPageFetched(ctx context.Context, run *chatsweep.Run, page []chatsweep.Message) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if entry, ok := p.spans[runKey(run)]; ok {
		entry.span.AddEvent("page.fetched", trace.WithAttributes(
			attribute.String("channel.id", run.CurrentChannel),
			attribute.String("page.cursor", run.Cursor),
			attribute.Int("page.size", len(page)),
		))
	}

	return nil
}

func (p *TelemetryPlugin) OnDeleteStart(ctx context.Context, run *chatsweep.Run, message *chatsweep.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	// parent the delete span on the run span when available
	deleteCtx := ctx
	if entry, ok := p.runCtxs[run.ID]; ok {
		deleteCtx = entry.ctx
	}

	_, span := p.tracer.Start(deleteCtx, "message.delete", trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String("run.id", run.ID),
		attribute.String("channel.id", message.ChannelID),
		attribute.String("message.id", message.ID),
		attribute.String("message.timestamp", message.Timestamp.Format(time.RFC3339)),
		attribute.Bool("run.dry_run", run.DryRun),
	)

	p.spans[deleteKey(run, message)] = &spanEntry{span: span, createdAt: time.Now()}

	return nil
}

func (p *TelemetryPlugin) OnDeleteComplete(ctx context.Context, run *chatsweep.Run, message *chatsweep.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := deleteKey(run, message)
	if entry, ok := p.spans[key]; ok {
		entry.span.SetStatus(codes.Ok, "message deleted")
		entry.span.End()
		delete(p.spans, key)
	}

	return nil
}

func (p *TelemetryPlugin) OnDeleteFailed(
	ctx context.Context,
	run *chatsweep.Run,
	message *chatsweep.Message,
	err error,
) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := deleteKey(run, message)
	if entry, ok := p.spans[key]; ok {
		var apiErr *chatsweep.APIError
		if errors.As(err, &apiErr) {
			entry.span.SetAttributes(attribute.Int("http.response.status_code", apiErr.StatusCode))
		}
		if err != nil {
			entry.span.RecordError(err)
		}
		entry.span.SetStatus(codes.Error, "delete failed")
		entry.span.End()
		delete(p.spans, key)
	}

	return nil
}

func (p *TelemetryPlugin) cleanupExpired() {
	now := time.Now()

	for key, entry := range p.spans {
		if now.Sub(entry.createdAt) > p.defaultTTL {
			entry.span.SetStatus(codes.Error, "span expired due to TTL")
			entry.span.End()
			delete(p.spans, key)
		}
	}

	for runID, entry := range p.runCtxs {
		if now.Sub(entry.createdAt) > p.defaultTTL {
			delete(p.runCtxs, runID)
		}
	}
}

func runKey(run *chatsweep.Run) string {
	return "run:" + run.ID
}

func deleteKey(run *chatsweep.Run, message *chatsweep.Message) string {
	return "delete:" + run.ID + ":" + message.ID
}
