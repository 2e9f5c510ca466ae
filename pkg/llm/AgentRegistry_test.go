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


package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAgentRegistryWithoutApiKey(t *testing.T) {
	registry := NewAgentRegistryImpl(zap.NewNop().Sugar(), &AgentConfig{Model: "gpt-4o"})

	assert.False(t, registry.IsAvailable())
	_, err := registry.GetAgent(ChangelogAgentName)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestAgentRegistryWithApiKey(t *testing.T) {
	cfg := &AgentConfig{ApiKey: "sk-test", Model: "gpt-4o", MaxTokens: 100}

	registry := NewAgentRegistryImpl(zap.NewNop().Sugar(), cfg)

	require.True(t, registry.IsAvailable())
	for _, name := range []string{ChangelogAgentName, SummaryAgentName} {
		agent, err := registry.GetAgent(name)
		require.NoError(t, err)
		assert.Equal(t, name, agent.Name())
	}
	_, err := registry.GetAgent("release-agent")
	assert.ErrorIs(t, err, ErrAgentNotFound)
}

func TestStaticAgentRegistry(t *testing.T) {
	empty := NewStaticAgentRegistry(zap.NewNop().Sugar())
	assert.False(t, empty.IsAvailable())

	cfg := &AgentConfig{ApiKey: "sk-test", Model: "gpt-4o"}
	agent := NewOpenAIAgent(zap.NewNop().Sugar(), NewOpenAIClient(cfg), SummaryAgentName, cfg.Profile(SummaryAgentName))
	registry := NewStaticAgentRegistry(zap.NewNop().Sugar(), agent)

	got, err := registry.GetAgent(SummaryAgentName)
	require.NoError(t, err)
	assert.Same(t, agent, got)
}
