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


package llm_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/goosewin/chronicler/pkg/llm"
	"github.com/goosewin/chronicler/pkg/llm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCollectTextConcatenatesChunks(t *testing.T) {

	// Arrange
	stream := mocks.NewTextStream(t)
	stream.On("Recv").Return("## Features\n", nil).Once()
	stream.On("Recv").Return("- Faster sync", nil).Once()
	stream.On("Recv").Return("", io.EOF).Once()
	stream.On("Close").Return(nil).Once()

	// Action
	text, err := llm.CollectText(stream)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "## Features\n- Faster sync", text)
}

func TestCollectTextReturnsStreamError(t *testing.T) {
	streamErr := errors.New("connection reset")
	stream := mocks.NewTextStream(t)
	stream.On("Recv").Return("partial", nil).Once()
	stream.On("Recv").Return("", streamErr).Once()
	stream.On("Close").Return(nil).Once()

	text, err := llm.CollectText(stream)

	assert.ErrorIs(t, err, streamErr)
	assert.Equal(t, "partial", text)
}

func TestGenerate(t *testing.T) {
	t.Run("strips a fenced response", func(t *testing.T) {
		stream := mocks.NewTextStream(t)
		stream.On("Recv").Return("```markdown\n## Fixes\n- Login works\n```", nil).Once()
		stream.On("Recv").Return("", io.EOF).Once()
		stream.On("Close").Return(nil).Once()
		agent := mocks.NewAgent(t)
		agent.On("Stream", mock.Anything, "prompt").Return(stream, nil).Once()

		text, err := llm.Generate(context.Background(), agent, "prompt")

		require.NoError(t, err)
		assert.Equal(t, "## Fixes\n- Login works", text)
	})

	t.Run("wraps the stream creation error with the agent name", func(t *testing.T) {
		agent := mocks.NewAgent(t)
		agent.On("Stream", mock.Anything, "prompt").Return(nil, errors.New("quota exceeded")).Once()
		agent.On("Name").Return(llm.ChangelogAgentName)

		_, err := llm.Generate(context.Background(), agent, "prompt")

		require.Error(t, err)
		assert.Contains(t, err.Error(), llm.ChangelogAgentName)
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("reports a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		stream := mocks.NewTextStream(t)
		stream.On("Recv").Return("", io.EOF).Run(func(args mock.Arguments) { cancel() }).Once()
		stream.On("Close").Return(nil).Once()
		agent := mocks.NewAgent(t)
		agent.On("Stream", mock.Anything, "prompt").Return(stream, nil).Once()
		agent.On("Name").Return(llm.SummaryAgentName)

		_, err := llm.Generate(ctx, agent, "prompt")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestStripCodeFence(t *testing.T) {
	tests := map[string]struct {
		input string
		want  string
	}{
		"plain text":       {input: "  hello  ", want: "hello"},
		"bare fence":       {input: "```\nhello\n```", want: "hello"},
		"md fence":         {input: "```md\nhello\n```", want: "hello"},
		"markdown fence":   {input: "```markdown\n# Title\n```\n", want: "# Title"},
		"inner fence kept": {input: "text\n```go\nx\n```", want: "text\n```go\nx\n```"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, llm.StripCodeFence(tt.input))
		})
	}
}
