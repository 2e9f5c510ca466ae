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
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	ChangelogAgentName = "changelog-agent"
	SummaryAgentName   = "summary-agent"
)

var (
	ErrBackendUnavailable = errors.New("language model backend unavailable")
	ErrAgentNotFound      = errors.New("agent not found")
)

// TextStream yields chunks of generated text until Recv returns io.EOF.
type TextStream interface {
	Recv() (string, error)
	Close() error
}

type Agent interface {
	Name() string
	Stream(ctx context.Context, prompt string) (TextStream, error)
}

// CollectText drains the stream and closes it.
func CollectText(stream TextStream) (string, error) {
	defer stream.Close()
	var sb strings.Builder
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return sb.String(), nil
		}
		if err != nil {
			return sb.String(), err
		}
		sb.WriteString(chunk)
	}
}

// Generate sends a single prompt to the agent and blocks until the whole response has been streamed.
func Generate(ctx context.Context, agent Agent, prompt string) (string, error) {
	stream, err := agent.Stream(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("agent %s: %w", agent.Name(), err)
	}
	text, err := CollectText(stream)
	if err != nil {
		return "", fmt.Errorf("agent %s stream: %w", agent.Name(), err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", fmt.Errorf("agent %s: %w", agent.Name(), ctxErr)
	}
	return StripCodeFence(text), nil
}

// StripCodeFence removes a markdown code fence wrapped around the whole response.
func StripCodeFence(text string) string {
	result := strings.TrimSpace(text)
	if !strings.HasPrefix(result, "```") {
		return result
	}
	if strings.HasPrefix(result, "```markdown") {
		result = strings.TrimPrefix(result, "```markdown")
	} else if strings.HasPrefix(result, "```md") {
		result = strings.TrimPrefix(result, "```md")
	} else {
		result = strings.TrimPrefix(result, "```")
	}
	result = strings.TrimSuffix(strings.TrimSpace(result), "```")
	return strings.TrimSpace(result)
}
