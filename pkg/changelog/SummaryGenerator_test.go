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
	"testing"

	"github.com/goosewin/chronicler/pkg/llm"
	"github.com/goosewin/chronicler/pkg/llm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	var prompt string
	agent := mocks.NewAgent(t)
	agent.On("Stream", mock.Anything, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { prompt = args.String(1) }).
		Return(textStream(t, "This release adds search. ", "It also fixes crashes."), nil).Once()
	registry := mocks.NewAgentRegistry(t)
	registry.On("GetAgent", llm.SummaryAgentName).Return(agent, nil).Once()

	summary := NewSummaryGeneratorImpl(testLogger(), registry).Summarize(context.Background(), "## Features\n- Search")

	require.NotNil(t, summary)
	assert.Equal(t, "This release adds search. It also fixes crashes.", *summary)
	assert.Contains(t, prompt, "3-4 sentences")
	assert.Contains(t, prompt, "## Features\n- Search")
}

func TestSummarizeReturnsNilOnFailure(t *testing.T) {
	t.Run("registry error", func(t *testing.T) {
		registry := mocks.NewAgentRegistry(t)
		registry.On("GetAgent", llm.SummaryAgentName).Return(nil, llm.ErrBackendUnavailable).Once()

		assert.Nil(t, NewSummaryGeneratorImpl(testLogger(), registry).Summarize(context.Background(), "x"))
	})

	t.Run("agent error", func(t *testing.T) {
		agent := mocks.NewAgent(t)
		agent.On("Stream", mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()
		agent.On("Name").Return(llm.SummaryAgentName)
		registry := mocks.NewAgentRegistry(t)
		registry.On("GetAgent", llm.SummaryAgentName).Return(agent, nil).Once()

		assert.Nil(t, NewSummaryGeneratorImpl(testLogger(), registry).Summarize(context.Background(), "x"))
	})

	t.Run("empty response", func(t *testing.T) {
		agent := mocks.NewAgent(t)
		agent.On("Stream", mock.Anything, mock.Anything).Return(textStream(t, ""), nil).Once()
		registry := mocks.NewAgentRegistry(t)
		registry.On("GetAgent", llm.SummaryAgentName).Return(agent, nil).Once()

		assert.Nil(t, NewSummaryGeneratorImpl(testLogger(), registry).Summarize(context.Background(), "x"))
	})
}
