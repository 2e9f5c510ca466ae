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
	"github.com/goosewin/chronicler/internals"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"os"
	"strings"
)

const envPrefix = "CHRONICLER_LLM_"

const changelogAgentInstructions = `You are an expert changelog writer who turns technical, commit-derived changelogs into clear, user-facing release notes.

Rules:
- Rewrite technical descriptions into language that focuses on what changed for the user.
- Keep the markdown structure: h2 (##) section headings and one bullet point per change.
- Group changes by user impact rather than by commit type.
- Keep pull request and issue numbers (for example #142) when they are present.
- No filler, pleasantries or closing remarks.
- End with a short list of the contributors.`

const summaryAgentInstructions = `You summarize changelogs for end users.

Write a concise overview that highlights the most significant changes, focuses on user impact instead of technical detail and uses plain language. Never exceed four sentences.`

type AgentProfile struct {
	Instructions string   `koanf:"instructions"`
	Model        string   `koanf:"model"`
	Temperature  *float64 `koanf:"temperature"`
	MaxTokens    int      `koanf:"max_tokens"`
}

type AgentConfig struct {
	ApiKey      string                  `koanf:"api_key"`
	BaseUrl     string                  `koanf:"base_url"`
	Model       string                  `koanf:"model"`
	Temperature float64                 `koanf:"temperature"`
	MaxTokens   int                     `koanf:"max_tokens"`
	Agents      map[string]AgentProfile `koanf:"agents"`
}

func defaultAgentConfig() map[string]interface{} {
	return map[string]interface{}{
		"model":       "gpt-4o",
		"temperature": 0.3,
		"max_tokens":  2048,
		"agents." + ChangelogAgentName + ".instructions": changelogAgentInstructions,
		"agents." + SummaryAgentName + ".instructions":   summaryAgentInstructions,
	}
}

// NewAgentConfig loads the agent configuration from the file named by LLM_CONFIG_PATH, if any.
func NewAgentConfig(cfg *internals.Configuration) (*AgentConfig, error) {
	return LoadAgentConfig(cfg.LlmConfigPath)
}

// LoadAgentConfig layers defaults, the optional yaml file and the environment, in that order.
func LoadAgentConfig(path string) (*AgentConfig, error) {
	k := koanf.New(".")
	for key, value := range defaultAgentConfig() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("agent config %s: %w", path, err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load agent config %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider("OPENAI_", ".", openAIEnvTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load openai environment config: %w", err)
	}
	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}
	var cfg AgentConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal agent config: %w", err)
	}
	return &cfg, nil
}

func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}

func openAIEnvTransform(s string) string {
	switch s {
	case "OPENAI_API_KEY":
		return "api_key"
	case "OPENAI_BASE_URL":
		return "base_url"
	}
	return ""
}

// Profile resolves the settings of a named agent, falling back to the top level values.
func (cfg *AgentConfig) Profile(name string) AgentProfile {
	profile := cfg.Agents[name]
	if profile.Model == "" {
		profile.Model = cfg.Model
	}
	if profile.Temperature == nil {
		temperature := cfg.Temperature
		profile.Temperature = &temperature
	}
	if profile.MaxTokens == 0 {
		profile.MaxTokens = cfg.MaxTokens
	}
	return profile
}

func (cfg *AgentConfig) IsConfigured() bool {
	return strings.TrimSpace(cfg.ApiKey) != ""
}
