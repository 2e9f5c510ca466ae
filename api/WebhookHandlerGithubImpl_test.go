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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goosewin/chronicler/pkg"
	"github.com/goosewin/chronicler/pkg/changelog"
	"github.com/goosewin/chronicler/pkg/git"
	"github.com/goosewin/chronicler/pkg/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandleWebhookEventGeneratesPushChangelog(t *testing.T) {

	// Arrange
	manager := mocks.NewChangelogManager(t)
	payload := `{"ref":"refs/heads/main","commits":[]}`
	manager.On("GenerateFromPushEvent", mock.Anything, payload, pkg.PushChangelogOptions{
		Title:           "Sprint 12",
		IncludeStats:    true,
		GenerateSummary: true,
	}).Return(&changelog.GeneratedChangelog{Document: "# Sprint 12\n"}, nil).Once()
	router := newTestRouter(t, manager)
	req := httptest.NewRequest(http.MethodPost, "/webhook/github/push?title=Sprint+12&includeStats=true&generateSummary=true&unknown=1", strings.NewReader(payload))
	req.Header.Set("X-GitHub-Event", "push")

	// Action
	rec, body := serve(t, router, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Result), "Sprint 12")
}

func TestHandleWebhookEventIncludesStatsByDefault(t *testing.T) {
	manager := mocks.NewChangelogManager(t)
	payload := `{"ref":"refs/heads/main","commits":[]}`
	manager.On("GenerateFromPushEvent", mock.Anything, payload, pkg.PushChangelogOptions{IncludeStats: true}).
		Return(&changelog.GeneratedChangelog{Document: "# Changelog main\n"}, nil).Once()
	router := newTestRouter(t, manager)
	req := httptest.NewRequest(http.MethodPost, "/webhook/github/push", strings.NewReader(payload))
	req.Header.Set("X-GitHub-Event", "push")

	rec, _ := serve(t, router, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleWebhookEventAnswersPing(t *testing.T) {
	router := newTestRouter(t, mocks.NewChangelogManager(t))
	req := httptest.NewRequest(http.MethodPost, "/webhook/github/push", strings.NewReader(`{"zen":"hi"}`))
	req.Header.Set("X-GitHub-Event", "ping")

	rec, body := serve(t, router, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"pong"`, string(body.Result))
}

func TestHandleWebhookEventIgnoresOtherEvents(t *testing.T) {
	router := newTestRouter(t, mocks.NewChangelogManager(t))
	req := httptest.NewRequest(http.MethodPost, "/webhook/github/push", strings.NewReader(`{}`))
	req.Header.Set("X-GitHub-Event", "issues")

	rec, _ := serve(t, router, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestHandleWebhookEventRejectsBadQuery(t *testing.T) {
	router := newTestRouter(t, mocks.NewChangelogManager(t))
	req := httptest.NewRequest(http.MethodPost, "/webhook/github/push?includeStats=maybe", strings.NewReader(`{}`))

	rec, _ := serve(t, router, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleWebhookEventMapsInvalidPayload(t *testing.T) {
	manager := mocks.NewChangelogManager(t)
	manager.On("GenerateFromPushEvent", mock.Anything, "{", mock.Anything).Return(nil, git.ErrInvalidWebhookPayload).Once()
	router := newTestRouter(t, manager)
	req := httptest.NewRequest(http.MethodPost, "/webhook/github/push", strings.NewReader("{"))
	req.Header.Set("X-GitHub-Event", "push")

	rec, _ := serve(t, router, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
