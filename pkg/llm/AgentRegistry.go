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
	"fmt"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"sort"
)

type AgentRegistry interface {
	IsAvailable() bool
	GetAgent(name string) (Agent, error)
}

type AgentRegistryImpl struct {
	logger *zap.SugaredLogger
	agents map[string]Agent
}

func NewAgentRegistryImpl(logger *zap.SugaredLogger, cfg *AgentConfig) *AgentRegistryImpl {
	registry := &AgentRegistryImpl{logger: logger}
	if !cfg.IsConfigured() {
		logger.Warnw("no language model api key configured, changelogs will be generated without ai rewrite")
		return registry
	}
	client := NewOpenAIClient(cfg)
	registry.agents = make(map[string]Agent)
	for _, name := range []string{ChangelogAgentName, SummaryAgentName} {
		registry.agents[name] = NewOpenAIAgent(logger, client, name, cfg.Profile(name))
	}
	names := lo.Keys(registry.agents)
	sort.Strings(names)
	logger.Infow("language model agents registered", "agents", names, "model", cfg.Model)
	return registry
}

// NewStaticAgentRegistry builds a registry over already constructed agents.
func NewStaticAgentRegistry(logger *zap.SugaredLogger, agents ...Agent) *AgentRegistryImpl {
	registry := &AgentRegistryImpl{logger: logger}
	if len(agents) == 0 {
		return registry
	}
	registry.agents = lo.SliceToMap(agents, func(agent Agent) (string, Agent) {
		return agent.Name(), agent
	})
	return registry
}

func (impl *AgentRegistryImpl) IsAvailable() bool {
	return len(impl.agents) > 0
}

func (impl *AgentRegistryImpl) GetAgent(name string) (Agent, error) {
	if !impl.IsAvailable() {
		return nil, ErrBackendUnavailable
	}
	agent, ok := impl.agents[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAgentNotFound, name)
	}
	return agent, nil
}
