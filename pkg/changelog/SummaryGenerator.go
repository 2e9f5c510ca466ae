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
	"github.com/goosewin/chronicler/pkg/llm"
	"go.uber.org/zap"
	"strings"
)

type SummaryGenerator interface {
	// Summarize returns nil when no summary could be produced.
	Summarize(ctx context.Context, changelogMarkdown string) *string
}

type SummaryGeneratorImpl struct {
	logger   *zap.SugaredLogger
	registry llm.AgentRegistry
}

func NewSummaryGeneratorImpl(logger *zap.SugaredLogger, registry llm.AgentRegistry) *SummaryGeneratorImpl {
	return &SummaryGeneratorImpl{logger: logger, registry: registry}
}

func (impl *SummaryGeneratorImpl) Summarize(ctx context.Context, changelogMarkdown string) *string {
	agent, err := impl.registry.GetAgent(llm.SummaryAgentName)
	if err != nil {
		impl.logger.Warnw("summary agent unavailable", "err", err)
		return nil
	}
	text, err := llm.Generate(ctx, agent, BuildSummaryPrompt(changelogMarkdown))
	if err != nil {
		impl.logger.Warnw("error in generating changelog summary", "err", err)
		return nil
	}
	text = strings.TrimSpace(text)
	if text == "" {
		impl.logger.Warnw("summary agent returned an empty response")
		return nil
	}
	return &text
}
