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

package internals

import (
	"github.com/caarlos0/env"
)

type Configuration struct {
	MaxCommitsToClassify     int    `env:"MAX_COMMITS_TO_CLASSIFY" envDefault:"500"`
	MaxSummaryCategories     int    `env:"MAX_SUMMARY_CATEGORIES" envDefault:"10"`
	MaxContributors          int    `env:"MAX_CONTRIBUTORS" envDefault:"15"`
	MaxCommitsPerCategory    int    `env:"MAX_COMMITS_PER_CATEGORY" envDefault:"50"`
	MaxMessageLength         int    `env:"MAX_MESSAGE_LENGTH" envDefault:"500"` // in characters
	AiStageTimeoutInSec      int    `env:"AI_STAGE_TIMEOUT_IN_SEC" envDefault:"60"`
	AiStageMaxRetries        int    `env:"AI_STAGE_MAX_RETRIES" envDefault:"0"`
	MaxConcurrentGenerations int    `env:"MAX_CONCURRENT_GENERATIONS" envDefault:"10"`
	GitBaseDir               string `env:"GIT_BASE_DIR" envDefault:"/git-base/"`
	GitHistoryCount          int    `env:"GIT_HISTORY_COUNT" envDefault:"1000"`
	GitOperationTimeoutInSec int    `env:"GIT_OPERATION_TIMEOUT_IN_SEC" envDefault:"30"`
	LlmConfigPath            string `env:"LLM_CONFIG_PATH" envDefault:""`
}

func ParseConfiguration() (*Configuration, error) {
	cfg := &Configuration{}
	err := env.Parse(cfg)
	return cfg, err
}

// DefaultConfiguration returns the configuration with every envDefault applied and no environment lookups.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		MaxCommitsToClassify:     500,
		MaxSummaryCategories:     10,
		MaxContributors:          15,
		MaxCommitsPerCategory:    50,
		MaxMessageLength:         500,
		AiStageTimeoutInSec:      60,
		AiStageMaxRetries:        0,
		MaxConcurrentGenerations: 10,
		GitBaseDir:               "/git-base/",
		GitHistoryCount:          1000,
		GitOperationTimeoutInSec: 30,
	}
}
