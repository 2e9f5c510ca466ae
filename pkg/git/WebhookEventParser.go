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


package git

import (
	"errors"
	"github.com/goosewin/chronicler/pkg/changelog"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"strings"
	"time"
)

var ErrInvalidWebhookPayload = errors.New("invalid webhook payload")

const (
	WEBHOOK_SELECTOR_REPOSITORY_NAME  string = "repository"
	WEBHOOK_SELECTOR_REF_NAME         string = "ref"
	WEBHOOK_SELECTOR_BEFORE_NAME      string = "before"
	WEBHOOK_SELECTOR_AFTER_NAME       string = "after"
	WEBHOOK_SELECTOR_COMMITS_NAME     string = "commits"
	WEBHOOK_SELECTOR_HEAD_COMMIT_NAME string = "head commit"
)

// githubPushSelectors maps selector names onto gjson paths of a GitHub push event.
var githubPushSelectors = map[string]string{
	WEBHOOK_SELECTOR_REPOSITORY_NAME:  "repository.full_name",
	WEBHOOK_SELECTOR_REF_NAME:         "ref",
	WEBHOOK_SELECTOR_BEFORE_NAME:      "before",
	WEBHOOK_SELECTOR_AFTER_NAME:       "after",
	WEBHOOK_SELECTOR_COMMITS_NAME:     "commits",
	WEBHOOK_SELECTOR_HEAD_COMMIT_NAME: "head_commit",
}

type PushEvent struct {
	Repository string
	Ref        string
	Before     string
	After      string
	Commits    []changelog.Commit
}

// Branch returns the short branch or tag name of the pushed ref.
func (e PushEvent) Branch() string {
	for _, prefix := range []string{"refs/heads/", "refs/tags/"} {
		if strings.HasPrefix(e.Ref, prefix) {
			return strings.TrimPrefix(e.Ref, prefix)
		}
	}
	return e.Ref
}

type WebhookEventParser interface {
	ParsePushEvent(requestPayloadJson string) (*PushEvent, error)
}

type WebhookEventParserImpl struct {
	logger *zap.SugaredLogger
	now    func() time.Time
}

func NewWebhookEventParserImpl(logger *zap.SugaredLogger) *WebhookEventParserImpl {
	return &WebhookEventParserImpl{
		logger: logger,
		now:    time.Now,
	}
}

func (impl *WebhookEventParserImpl) ParsePushEvent(requestPayloadJson string) (*PushEvent, error) {
	impl.logger.Debug("parsing webhook event data")
	if !gjson.Valid(requestPayloadJson) {
		return nil, ErrInvalidWebhookPayload
	}
	values := gjson.GetMany(requestPayloadJson,
		githubPushSelectors[WEBHOOK_SELECTOR_REPOSITORY_NAME],
		githubPushSelectors[WEBHOOK_SELECTOR_REF_NAME],
		githubPushSelectors[WEBHOOK_SELECTOR_BEFORE_NAME],
		githubPushSelectors[WEBHOOK_SELECTOR_AFTER_NAME],
	)
	event := &PushEvent{
		Repository: values[0].String(),
		Ref:        values[1].String(),
		Before:     values[2].String(),
		After:      values[3].String(),
	}

	commits := gjson.Get(requestPayloadJson, githubPushSelectors[WEBHOOK_SELECTOR_COMMITS_NAME]).Array()
	if len(commits) == 0 {
		if head := gjson.Get(requestPayloadJson, githubPushSelectors[WEBHOOK_SELECTOR_HEAD_COMMIT_NAME]); head.IsObject() {
			commits = []gjson.Result{head}
		}
	}
	for _, commit := range commits {
		event.Commits = append(event.Commits, impl.parsePushCommit(commit))
	}
	impl.logger.Debugw("parsed push event", "repository", event.Repository, "ref", event.Ref, "commits", len(event.Commits))
	return event, nil
}

func (impl *WebhookEventParserImpl) parsePushCommit(commit gjson.Result) changelog.Commit {
	author := commit.Get("author.name").String()
	if author == "" {
		author = commit.Get("author.username").String()
	}
	date, err := time.Parse(time.RFC3339, commit.Get("timestamp").String())
	if err != nil {
		impl.logger.Debugw("push commit without a valid timestamp, using current time", "id", commit.Get("id").String())
		date = impl.now().UTC()
	}
	return changelog.Commit{
		Hash:    commit.Get("id").String(),
		Message: strings.TrimSpace(commit.Get("message").String()),
		Author:  author,
		Date:    date,
	}
}
