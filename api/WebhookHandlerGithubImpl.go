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


package api

import (
	"fmt"
	"github.com/goosewin/chronicler/pkg"
	"github.com/gorilla/schema"
	"go.uber.org/zap"
	"net/http"
)

const (
	githubEventHeader = "X-GitHub-Event"
	githubEventPush   = "push"
	githubEventPing   = "ping"
)

type WebhookHandler interface {
	HandleWebhookEvent(w http.ResponseWriter, r *http.Request)
}

type WebhookHandlerGithubImpl struct {
	logger           *zap.SugaredLogger
	changelogManager pkg.ChangelogManager
	decoder          *schema.Decoder
}

func NewWebhookHandlerGithubImpl(logger *zap.SugaredLogger, changelogManager pkg.ChangelogManager) *WebhookHandlerGithubImpl {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return &WebhookHandlerGithubImpl{
		logger:           logger,
		changelogManager: changelogManager,
		decoder:          decoder,
	}
}

// HandleWebhookEvent turns a GitHub push event into a changelog of the pushed commits. Events other
// than push are acknowledged and ignored.
func (impl WebhookHandlerGithubImpl) HandleWebhookEvent(w http.ResponseWriter, r *http.Request) {
	eventType := r.Header.Get(githubEventHeader)
	switch eventType {
	case githubEventPing:
		writeJsonResp(impl.logger, w, nil, "pong", http.StatusOK)
		return
	case githubEventPush, "":
	default:
		impl.logger.Debugw("ignoring github event", "event", eventType)
		writeJsonResp(impl.logger, w, nil, fmt.Sprintf("event %s ignored", eventType), http.StatusAccepted)
		return
	}

	options := pkg.PushChangelogOptions{IncludeStats: true}
	err := impl.decoder.Decode(&options, r.URL.Query())
	if err != nil {
		impl.logger.Errorw("invalid query params, HandleWebhookEvent", "err", err, "query", r.URL.Query())
		writeJsonResp(impl.logger, w, err, nil, http.StatusBadRequest)
		return
	}
	body, err := readBody(r)
	if err != nil {
		impl.logger.Errorw("error in reading webhook body", "err", err)
		writeJsonResp(impl.logger, w, err, nil, http.StatusBadRequest)
		return
	}
	res, err := impl.changelogManager.GenerateFromPushEvent(r.Context(), string(body), options)
	if err != nil {
		impl.logger.Errorw("error in generating changelog for push event", "err", err)
		writeGenerationError(impl.logger, w, err)
		return
	}
	writeJsonResp(impl.logger, w, nil, res, http.StatusOK)
}
