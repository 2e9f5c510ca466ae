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
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goosewin/chronicler/internals"
	"github.com/goosewin/chronicler/pkg/changelog"
	changelogMocks "github.com/goosewin/chronicler/pkg/changelog/mocks"
	"github.com/goosewin/chronicler/pkg/git"
	gitMocks "github.com/goosewin/chronicler/pkg/git/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var commitTime = time.Date(2024, time.June, 3, 8, 0, 0, 0, time.UTC)

func sampleCommits() []changelog.Commit {
	return []changelog.Commit{
		{Hash: "1111111111111111111111111111111111111111", Message: "feat: one", Author: "alice", Date: commitTime},
		{Hash: "2222222222222222222222222222222222222222", Message: "fix: two", Author: "bob", Date: commitTime.Add(time.Hour)},
	}
}

func newTestManager(t *testing.T, pipeline changelog.ChangelogPipeline, source git.RepositoryCommitSource, parser git.WebhookEventParser, workers int) *ChangelogManagerImpl {
	conf := internals.DefaultConfiguration()
	conf.MaxConcurrentGenerations = workers
	manager := NewChangelogManagerImpl(zap.NewNop().Sugar(), pipeline, source, parser, conf)
	t.Cleanup(manager.Stop)
	return manager
}

func TestGenerateFromCommitsRunsPipeline(t *testing.T) {
	pipeline := changelogMocks.NewChangelogPipeline(t)
	request := changelog.GenerationRequest{CommitData: changelog.NewCommitBatch(sampleCommits()), Title: "v2"}
	expected := &changelog.GeneratedChangelog{Document: "# v2\n"}
	pipeline.On("Generate", mock.Anything, request).Return(expected, nil).Once()
	manager := newTestManager(t, pipeline, nil, nil, 2)

	result, err := manager.GenerateFromCommits(context.Background(), request)

	require.NoError(t, err)
	assert.Same(t, expected, result)
}

func TestGenerateFromRepository(t *testing.T) {

	// Arrange
	source := gitMocks.NewRepositoryCommitSource(t)
	pipeline := changelogMocks.NewChangelogPipeline(t)
	request := &RepositoryChangelogRequest{
		Repository:      "app",
		Type:            git.SelectorReleaseRange,
		FromRef:         "v1.0.0",
		ToRef:           "v1.1.0",
		IncludeStats:    true,
		GenerateSummary: true,
	}
	source.On("ResolveCommits", mock.Anything, request.Selector()).
		Return(&git.ResolvedCommits{Commits: sampleCommits(), Title: "Release v1.1.0"}, nil).Once()
	var captured changelog.GenerationRequest
	pipeline.On("Generate", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(1).(changelog.GenerationRequest) }).
		Return(&changelog.GeneratedChangelog{Document: "doc"}, nil).Once()
	manager := newTestManager(t, pipeline, source, nil, 2)

	// Action
	result, err := manager.GenerateFromRepository(context.Background(), request)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "doc", result.Document)
	assert.Equal(t, "Release v1.1.0", captured.Title)
	assert.True(t, captured.IncludeStats)
	assert.True(t, captured.GenerateSummary)
	assert.Len(t, captured.CommitData.Commits, 2)
	assert.Equal(t, commitTime, captured.CommitData.StartDate)
	assert.Equal(t, commitTime.Add(time.Hour), captured.CommitData.EndDate)
	assert.ElementsMatch(t, []string{"alice", "bob"}, captured.CommitData.Authors)
}

func TestGenerateFromRepositoryKeepsExplicitTitle(t *testing.T) {
	source := gitMocks.NewRepositoryCommitSource(t)
	pipeline := changelogMocks.NewChangelogPipeline(t)
	request := &RepositoryChangelogRequest{Repository: "app", Type: git.SelectorCommit, CommitHash: "abc", Title: "Hotfix"}
	source.On("ResolveCommits", mock.Anything, mock.Anything).
		Return(&git.ResolvedCommits{Commits: sampleCommits()[:1], Title: "Commit 11111111"}, nil).Once()
	pipeline.On("Generate", mock.Anything, mock.MatchedBy(func(r changelog.GenerationRequest) bool {
		return r.Title == "Hotfix"
	})).Return(&changelog.GeneratedChangelog{}, nil).Once()
	manager := newTestManager(t, pipeline, source, nil, 1)

	_, err := manager.GenerateFromRepository(context.Background(), request)

	assert.NoError(t, err)
}

func TestGenerateFromRepositoryPropagatesSourceError(t *testing.T) {
	source := gitMocks.NewRepositoryCommitSource(t)
	source.On("ResolveCommits", mock.Anything, mock.Anything).Return(nil, git.ErrUnsupportedSelector).Once()
	manager := newTestManager(t, changelogMocks.NewChangelogPipeline(t), source, nil, 1)

	result, err := manager.GenerateFromRepository(context.Background(), &RepositoryChangelogRequest{Repository: "app", Type: "pull_request"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, git.ErrUnsupportedSelector)
}

func TestGenerateFromPushEvent(t *testing.T) {
	parser := gitMocks.NewWebhookEventParser(t)
	pipeline := changelogMocks.NewChangelogPipeline(t)
	parser.On("ParsePushEvent", "{}").Return(&git.PushEvent{
		Repository: "goosewin/chronicler",
		Ref:        "refs/heads/main",
		Before:     "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		After:      "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		Commits:    sampleCommits(),
	}, nil).Once()
	pipeline.On("Generate", mock.Anything, mock.MatchedBy(func(r changelog.GenerationRequest) bool {
		return r.Title == "Changelog aaaaaaaa to bbbbbbbb" && r.GenerateSummary && len(r.CommitData.Commits) == 2
	})).Return(&changelog.GeneratedChangelog{Document: "push"}, nil).Once()
	manager := newTestManager(t, pipeline, nil, parser, 1)

	result, err := manager.GenerateFromPushEvent(context.Background(), "{}", PushChangelogOptions{GenerateSummary: true})

	require.NoError(t, err)
	assert.Equal(t, "push", result.Document)
}

func TestGenerateFromPushEventRejectsBadPayload(t *testing.T) {
	parser := gitMocks.NewWebhookEventParser(t)
	parser.On("ParsePushEvent", "nope").Return(nil, git.ErrInvalidWebhookPayload).Once()
	manager := newTestManager(t, changelogMocks.NewChangelogPipeline(t), nil, parser, 1)

	_, err := manager.GenerateFromPushEvent(context.Background(), "nope", PushChangelogOptions{})

	assert.ErrorIs(t, err, git.ErrInvalidWebhookPayload)
}

func TestPushTitle(t *testing.T) {
	assert.Equal(t, "Changelog v1.0.0", pushTitle(&git.PushEvent{Ref: "refs/tags/v1.0.0"}))
	assert.Equal(t, changelog.DefaultTitle, pushTitle(&git.PushEvent{}))
}

func TestRunOnWorkerBoundsConcurrency(t *testing.T) {

	// Arrange
	pipeline := changelogMocks.NewChangelogPipeline(t)
	var running, peak int32
	pipeline.On("Generate", mock.Anything, mock.Anything).Return(func(context.Context, changelog.GenerationRequest) (*changelog.GeneratedChangelog, error) {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&running, -1)
		return &changelog.GeneratedChangelog{}, nil
	})
	manager := newTestManager(t, pipeline, nil, nil, 2)
	request := changelog.GenerationRequest{CommitData: changelog.NewCommitBatch(sampleCommits())}

	// Action
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := manager.GenerateFromCommits(context.Background(), request)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Assert
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
	pipeline.AssertNumberOfCalls(t, "Generate", 8)
}

func TestRunOnWorkerHonoursCallerContext(t *testing.T) {
	pipeline := changelogMocks.NewChangelogPipeline(t)
	release := make(chan struct{})
	pipeline.On("Generate", mock.Anything, mock.Anything).Return(func(context.Context, changelog.GenerationRequest) (*changelog.GeneratedChangelog, error) {
		<-release
		return &changelog.GeneratedChangelog{}, nil
	}).Once()
	manager := newTestManager(t, pipeline, nil, nil, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	result, err := manager.GenerateFromCommits(ctx, changelog.GenerationRequest{CommitData: changelog.NewCommitBatch(sampleCommits())})
	close(release)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunOnWorkerRecoversPanics(t *testing.T) {
	pipeline := changelogMocks.NewChangelogPipeline(t)
	pipeline.On("Generate", mock.Anything, mock.Anything).Return(func(context.Context, changelog.GenerationRequest) (*changelog.GeneratedChangelog, error) {
		panic("boom")
	}).Once()
	manager := newTestManager(t, pipeline, nil, nil, 1)

	_, err := manager.GenerateFromCommits(context.Background(), changelog.GenerationRequest{CommitData: changelog.NewCommitBatch(sampleCommits())})

	assert.True(t, errors.Is(err, changelog.ErrPipelineFailure))
}

func TestStoppedManagerRejectsRequests(t *testing.T) {
	manager := newTestManager(t, changelogMocks.NewChangelogPipeline(t), nil, nil, 1)
	manager.Stop()

	_, err := manager.GenerateFromCommits(context.Background(), changelog.GenerationRequest{})

	assert.ErrorIs(t, err, ErrManagerStopped)
}

func TestStopWhileSubmittingNeverPanics(t *testing.T) {

	// Arrange
	pipeline := changelogMocks.NewChangelogPipeline(t)
	pipeline.On("Generate", mock.Anything, mock.Anything).Return(&changelog.GeneratedChangelog{Document: "# Changelog\n"}, nil).Maybe()
	manager := newTestManager(t, pipeline, nil, nil, 2)
	request := changelog.GenerationRequest{CommitData: changelog.NewCommitBatch(sampleCommits())}
	var wg sync.WaitGroup
	errs := make(chan error, 64)

	// Action
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := manager.GenerateFromCommits(context.Background(), request)
			errs <- err
		}()
	}
	manager.Stop()
	wg.Wait()
	close(errs)

	// Assert
	for err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, ErrManagerStopped)
		}
	}
	_, err := manager.GenerateFromCommits(context.Background(), request)
	assert.ErrorIs(t, err, ErrManagerStopped)
}
