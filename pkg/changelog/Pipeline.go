/*
 * Copyright (c) 2020-2024. Devtron Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


package changelog

import (
	"context"
	"errors"
	"fmt"
	"github.com/goosewin/chronicler/internals"
	"github.com/goosewin/chronicler/internals/middleware"
	"github.com/goosewin/chronicler/pkg/llm"
	"go.uber.org/zap"
	"runtime/debug"
	"strings"
	"time"
)

const (
	stageRewrite   = "rewrite"
	stageSummarize = "summarize"

	modeAi       = "ai"
	modeFallback = "fallback"
	modeFailed   = "failed"
)

type ChangelogPipeline interface {
	Generate(ctx context.Context, request GenerationRequest) (*GeneratedChangelog, error)
}

type ChangelogPipelineImpl struct {
	logger       *zap.SugaredLogger
	aggregator   CategoryAggregator
	renderer     MarkdownRenderer
	rewriter     NarrativeRewriter
	summarizer   SummaryGenerator
	registry     llm.AgentRegistry
	stageTimeout time.Duration
	maxRetries   int
}

func NewChangelogPipelineImpl(logger *zap.SugaredLogger, aggregator CategoryAggregator, renderer MarkdownRenderer,
	rewriter NarrativeRewriter, summarizer SummaryGenerator, registry llm.AgentRegistry, cfg *internals.Configuration) *ChangelogPipelineImpl {
	return &ChangelogPipelineImpl{
		logger:       logger,
		aggregator:   aggregator,
		renderer:     renderer,
		rewriter:     rewriter,
		summarizer:   summarizer,
		registry:     registry,
		stageTimeout: time.Duration(cfg.AiStageTimeoutInSec) * time.Second,
		maxRetries:   cfg.AiStageMaxRetries,
	}
}

func (impl *ChangelogPipelineImpl) Generate(ctx context.Context, request GenerationRequest) (*GeneratedChangelog, error) {
	batch := request.CommitData
	if len(batch.Commits) == 0 {
		return nil, ErrEmptyCommitBatch
	}
	title := strings.TrimSpace(request.Title)
	if title == "" {
		title = DefaultTitle
	}

	categorized, err := impl.categorize(batch)
	if err != nil {
		middleware.GenerationCounter.WithLabelValues(modeFailed).Inc()
		return nil, err
	}
	technical := impl.renderer.Render(categorized, title, request.IncludeStats)

	result := &GeneratedChangelog{
		Document: technical,
		Metadata: ChangelogMetadata{
			CommitCount: len(batch.Commits),
			StartDate:   batch.StartDate,
			EndDate:     batch.EndDate,
			Authors:     batch.Authors,
			Truncated:   categorized.Stats.Truncated,
		},
	}

	if impl.registry == nil || !impl.registry.IsAvailable() {
		impl.logger.Infow("language model backend unavailable, returning technical changelog", "title", title, "commits", len(batch.Commits))
		return impl.fallback(result, FallbackReasonAiUnavailable), nil
	}

	rewritten, err := impl.runStage(ctx, stageRewrite, func(stageCtx context.Context) (string, error) {
		return impl.rewriter.Rewrite(stageCtx, technical, batch)
	})
	if err != nil {
		impl.logger.Errorw("error in rewriting changelog, returning technical changelog", "title", title, "err", err)
		return impl.fallback(result, FallbackReasonRewriteFailed), nil
	}
	result.Document = rewritten

	if request.GenerateSummary {
		result.Summary = impl.summarize(ctx, rewritten)
	}
	middleware.GenerationCounter.WithLabelValues(modeAi).Inc()
	return result, nil
}

func (impl *ChangelogPipelineImpl) categorize(batch CommitBatch) (result CategorizedResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			impl.logger.Errorw("panic while categorizing commits", "err", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("%w: %v", ErrPipelineFailure, r)
		}
	}()
	return impl.aggregator.Aggregate(batch), nil
}

func (impl *ChangelogPipelineImpl) fallback(result *GeneratedChangelog, reason string) *GeneratedChangelog {
	result.Summary = nil
	result.Metadata.Fallback = true
	result.Metadata.FallbackReason = reason
	middleware.GenerationCounter.WithLabelValues(modeFallback).Inc()
	return result
}

// runStage calls fn with a per-attempt timeout, retrying up to maxRetries times while the parent context is alive.
func (impl *ChangelogPipelineImpl) runStage(ctx context.Context, stage string, fn func(context.Context) (string, error)) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= impl.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := impl.attempt(ctx, stage, fn)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if errors.Is(err, llm.ErrBackendUnavailable) || errors.Is(err, llm.ErrAgentNotFound) {
			break
		}
		impl.logger.Warnw("ai stage attempt failed", "stage", stage, "attempt", attempt+1, "err", err)
	}
	return "", lastErr
}

func (impl *ChangelogPipelineImpl) attempt(ctx context.Context, stage string, fn func(context.Context) (string, error)) (text string, err error) {
	stageCtx, cancel := impl.withStageTimeout(ctx)
	defer cancel()
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s stage: %v", stage, r)
		}
		status := "success"
		if err != nil {
			status = "failure"
		}
		middleware.AiStageDuration.WithLabelValues(stage, status).Observe(time.Since(start).Seconds())
	}()
	return fn(stageCtx)
}

func (impl *ChangelogPipelineImpl) summarize(ctx context.Context, changelogMarkdown string) (summary *string) {
	stageCtx, cancel := impl.withStageTimeout(ctx)
	defer cancel()
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			impl.logger.Errorw("panic in summary stage", "err", r)
			summary = nil
		}
		status := "success"
		if summary == nil {
			status = "failure"
		}
		middleware.AiStageDuration.WithLabelValues(stageSummarize, status).Observe(time.Since(start).Seconds())
	}()
	return impl.summarizer.Summarize(stageCtx, changelogMarkdown)
}

func (impl *ChangelogPipelineImpl) withStageTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if impl.stageTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, impl.stageTimeout)
}
