/*
 * Copyright (c) 2024. Devtron Inc.
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

package git

import (
	"context"
	"time"
)

// GitContext carries the request context of a repository read together with the limits it runs under.
type GitContext struct {
	context.Context // Embedding original Go context
	RepositoryPath  string
	HistoryLimit    int
}

func BuildGitContext(ctx context.Context) GitContext {
	return GitContext{
		Context: ctx,
	}
}

func (gitCtx GitContext) WithRepositoryPath(repositoryPath string) GitContext {
	gitCtx.RepositoryPath = repositoryPath
	return gitCtx
}

func (gitCtx GitContext) WithHistoryLimit(limit int) GitContext {
	gitCtx.HistoryLimit = limit
	return gitCtx
}

func (gitCtx GitContext) WithTimeout(timeoutSeconds int) (GitContext, context.CancelFunc) {
	if timeoutSeconds <= 0 {
		ctx, cancel := context.WithCancel(gitCtx.Context)
		gitCtx.Context = ctx
		return gitCtx, cancel
	}
	ctx, cancel := context.WithTimeout(gitCtx.Context, time.Duration(timeoutSeconds)*time.Second)
	gitCtx.Context = ctx
	return gitCtx, cancel
}

// RunWithTimeout returns the result of f, or ctx.Err() if the context ends first. f keeps running in
// the background in that case, its result is discarded.
func RunWithTimeout[T any](ctx context.Context, f func() (T, error)) (T, error) {
	type outcome struct {
		result T
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		result, err := f()
		done <- outcome{result: result, err: err}
	}()

	select {
	case o := <-done:
		return o.result, o.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
