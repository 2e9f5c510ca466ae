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
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"math"
)

type OpenAIAgent struct {
	logger       *zap.SugaredLogger
	client       *openai.Client
	name         string
	instructions string
	model        string
	temperature  float32
	maxTokens    int
}

func NewOpenAIAgent(logger *zap.SugaredLogger, client *openai.Client, name string, profile AgentProfile) *OpenAIAgent {
	return &OpenAIAgent{
		logger:       logger,
		client:       client,
		name:         name,
		instructions: profile.Instructions,
		model:        profile.Model,
		temperature:  requestTemperature(profile.Temperature),
		maxTokens:    profile.MaxTokens,
	}
}

// requestTemperature maps an explicit zero to the smallest float32, the client omits a zero temperature.
func requestTemperature(temperature *float64) float32 {
	if temperature == nil {
		return 0
	}
	if *temperature == 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(*temperature)
}

func NewOpenAIClient(cfg *AgentConfig) *openai.Client {
	clientConfig := openai.DefaultConfig(cfg.ApiKey)
	if cfg.BaseUrl != "" {
		clientConfig.BaseURL = cfg.BaseUrl
	}
	return openai.NewClientWithConfig(clientConfig)
}

func (impl *OpenAIAgent) Name() string {
	return impl.name
}

func (impl *OpenAIAgent) Stream(ctx context.Context, prompt string) (TextStream, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if impl.instructions != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: impl.instructions})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt})
	request := openai.ChatCompletionRequest{
		Model:       impl.model,
		Messages:    messages,
		Temperature: impl.temperature,
		MaxTokens:   impl.maxTokens,
		Stream:      true,
	}
	impl.logger.Debugw("starting chat completion stream", "agent", impl.name, "model", impl.model, "promptLength", len(prompt))
	stream, err := impl.client.CreateChatCompletionStream(ctx, request)
	if err != nil {
		impl.logger.Errorw("error in creating chat completion stream", "agent", impl.name, "err", err)
		return nil, err
	}
	return &openAITextStream{stream: stream}, nil
}

type openAITextStream struct {
	stream *openai.ChatCompletionStream
}

func (s *openAITextStream) Recv() (string, error) {
	response, err := s.stream.Recv()
	if err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", nil
	}
	return response.Choices[0].Delta.Content, nil
}

func (s *openAITextStream) Close() error {
	return s.stream.Close()
}
