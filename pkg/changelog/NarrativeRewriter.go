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
	"fmt"
	"github.com/goosewin/chronicler/pkg/llm"
	"go.uber.org/zap"
	"strings"
)

type NarrativeRewriter interface {
	Rewrite(ctx context.Context, technicalMarkdown string, batch CommitBatch) (string, error)
}

type NarrativeRewriterImpl struct {
	logger   *zap.SugaredLogger
	registry llm.AgentRegistry
}

func NewNarrativeRewriterImpl(logger *zap.SugaredLogger, registry llm.AgentRegistry) *NarrativeRewriterImpl {
	return &NarrativeRewriterImpl{logger: logger, registry: registry}
}

func (impl *NarrativeRewriterImpl) Rewrite(ctx context.Context, technicalMarkdown string, batch CommitBatch) (string, error) {
	agent, err := impl.registry.GetAgent(llm.ChangelogAgentName)
	if err != nil {
		return "", err
	}
	text, err := llm.Generate(ctx, agent, BuildRewritePrompt(technicalMarkdown, batch))
	if err != nil {
		return "", fmt.Errorf("rewriting changelog: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyAgentResponse
	}
	impl.logger.Debugw("changelog rewritten", "technicalLength", len(technicalMarkdown), "rewrittenLength", len(text))
	return text, nil
}
