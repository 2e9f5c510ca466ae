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


package pkg

import (
	"context"
	"fmt"
	"github.com/gammazero/workerpool"
	"github.com/goosewin/chronicler/internals"
	"github.com/goosewin/chronicler/pkg/changelog"
	"github.com/goosewin/chronicler/pkg/git"
	"go.uber.org/zap"
	"runtime/debug"
	"strings"
	"sync"
)

type ChangelogManager interface {
	GenerateFromCommits(ctx context.Context, request changelog.GenerationRequest) (*changelog.GeneratedChangelog, error)
	GenerateFromRepository(ctx context.Context, request *RepositoryChangelogRequest) (*changelog.GeneratedChangelog, error)
	GenerateFromPushEvent(ctx context.Context, requestPayloadJson string, options PushChangelogOptions) (*changelog.GeneratedChangelog, error)
	// Stop waits for running generations and rejects new ones
	Stop()
}

type ChangelogManagerImpl struct {
	logger             *zap.SugaredLogger
	pipeline           changelog.ChangelogPipeline
	commitSource       git.RepositoryCommitSource
	webhookEventParser git.WebhookEventParser
	pool               *workerpool.WorkerPool
	stateLock          sync.RWMutex
	stopped            bool
}

func NewChangelogManagerImpl(logger *zap.SugaredLogger, pipeline changelog.ChangelogPipeline, commitSource git.RepositoryCommitSource,
	webhookEventParser git.WebhookEventParser, configuration *internals.Configuration) *ChangelogManagerImpl {
	workers := configuration.MaxConcurrentGenerations
	if workers <= 0 {
		workers = 1
	}
	return &ChangelogManagerImpl{
		logger:             logger,
		pipeline:           pipeline,
		commitSource:       commitSource,
		webhookEventParser: webhookEventParser,
		pool:               workerpool.New(workers),
	}
}

func (impl *ChangelogManagerImpl) GenerateFromCommits(ctx context.Context, request changelog.GenerationRequest) (*changelog.GeneratedChangelog, error) {
	return impl.runOnWorker(ctx, request)
}

func (impl *ChangelogManagerImpl) GenerateFromRepository(ctx context.Context, request *RepositoryChangelogRequest) (*changelog.GeneratedChangelog, error) {
	resolved, err := impl.commitSource.ResolveCommits(ctx, request.Selector())
	if err != nil {
		impl.logger.Errorw("error in resolving repository commits", "repository", request.Repository, "type", request.Type, "err", err)
		return nil, err
	}
	title := strings.TrimSpace(request.Title)
	if title == "" {
		title = resolved.Title
	}
	return impl.runOnWorker(ctx, changelog.GenerationRequest{
		CommitData:      changelog.NewCommitBatch(resolved.Commits),
		Title:           title,
		IncludeStats:    request.IncludeStats,
		GenerateSummary: request.GenerateSummary,
	})
}

func (impl *ChangelogManagerImpl) GenerateFromPushEvent(ctx context.Context, requestPayloadJson string, options PushChangelogOptions) (*changelog.GeneratedChangelog, error) {
	event, err := impl.webhookEventParser.ParsePushEvent(requestPayloadJson)
	if err != nil {
		impl.logger.Errorw("error in parsing push event", "err", err)
		return nil, err
	}
	title := strings.TrimSpace(options.Title)
	if title == "" {
		title = pushTitle(event)
	}
	return impl.runOnWorker(ctx, changelog.GenerationRequest{
		CommitData:      changelog.NewCommitBatch(event.Commits),
		Title:           title,
		IncludeStats:    options.IncludeStats,
		GenerateSummary: options.GenerateSummary,
	})
}

func pushTitle(event *git.PushEvent) string {
	if event.Before != "" && event.After != "" {
		return fmt.Sprintf("Changelog %s to %s", git.ShortHash(event.Before), git.ShortHash(event.After))
	}
	if branch := event.Branch(); branch != "" {
		return fmt.Sprintf("Changelog %s", branch)
	}
	return changelog.DefaultTitle
}

func (impl *ChangelogManagerImpl) Stop() {
	impl.stateLock.Lock()
	impl.stopped = true
	impl.stateLock.Unlock()
	impl.pool.StopWait()
}

type generationOutcome struct {
	result *changelog.GeneratedChangelog
	err    error
}

// runOnWorker bounds concurrent pipeline runs by the pool size. The caller stops waiting when ctx ends,
// the pipeline itself sees the same ctx and abandons its AI stages.
func (impl *ChangelogManagerImpl) runOnWorker(ctx context.Context, request changelog.GenerationRequest) (*changelog.GeneratedChangelog, error) {
	done := make(chan generationOutcome, 1)
	impl.stateLock.RLock()
	if impl.stopped || impl.pool.Stopped() {
		impl.stateLock.RUnlock()
		return nil, ErrManagerStopped
	}
	impl.pool.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				impl.logger.Errorw("recovered from panic in changelog generation", "panic", r, "stack", string(debug.Stack()))
				done <- generationOutcome{err: fmt.Errorf("%w: %v", changelog.ErrPipelineFailure, r)}
			}
		}()
		if err := ctx.Err(); err != nil {
			done <- generationOutcome{err: err}
			return
		}
		result, err := impl.pipeline.Generate(ctx, request)
		done <- generationOutcome{result: result, err: err}
	})
	impl.stateLock.RUnlock()
	select {
	case outcome := <-done:
		return outcome.result, outcome.err
	case <-ctx.Done():
		impl.logger.Warnw("changelog request abandoned before completion", "title", request.Title, "err", ctx.Err())
		return nil, ctx.Err()
	}
}
