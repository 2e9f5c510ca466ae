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
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/goosewin/chronicler/internals"
	"github.com/goosewin/chronicler/pkg/llm/mocks"
	"go.uber.org/zap"
)

var baseTime = time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func testConfig() *internals.Configuration {
	return internals.DefaultConfiguration()
}

func newCommit(i int, message, author string) Commit {
	return Commit{
		Hash:    fmt.Sprintf("%040x", i+1),
		Message: message,
		Author:  author,
		Date:    baseTime.Add(time.Duration(i) * time.Hour),
	}
}

func commitsWithMessage(n int, message string) []Commit {
	commits := make([]Commit, 0, n)
	for i := 0; i < n; i++ {
		commits = append(commits, newCommit(i, fmt.Sprintf("%s %d", message, i), "alice"))
	}
	return commits
}

func newTestAggregator() *CategoryAggregatorImpl {
	return NewCategoryAggregatorImpl(testLogger(), NewCommitClassifierImpl(testLogger()), testConfig())
}

// classifiedCount returns the number of commits held across all categories.
func classifiedCount(result CategorizedResult) int {
	total := 0
	for _, commits := range result.ByCategory {
		total += len(commits)
	}
	return total
}

func newTestRenderer() *MarkdownRendererImpl {
	return NewMarkdownRendererImpl(testLogger(), testConfig())
}

// textStream returns a mocked stream that yields the chunks and then io.EOF.
func textStream(t *testing.T, chunks ...string) *mocks.TextStream {
	stream := mocks.NewTextStream(t)
	for _, chunk := range chunks {
		stream.On("Recv").Return(chunk, nil).Once()
	}
	stream.On("Recv").Return("", io.EOF).Once()
	stream.On("Close").Return(nil).Once()
	return stream
}
