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
	"context"
	"encoding/json"
	"errors"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/goosewin/chronicler/pkg"
	"github.com/goosewin/chronicler/pkg/changelog"
	"github.com/goosewin/chronicler/pkg/git"
	"github.com/goosewin/chronicler/util"
	"go.uber.org/zap"
	"io"
	"net/http"
)

const maxRequestBodyBytes = 10 << 20

type RestHandler interface {
	GenerateChangelog(w http.ResponseWriter, r *http.Request)
	GenerateRepositoryChangelog(w http.ResponseWriter, r *http.Request)
}

func NewRestHandlerImpl(changelogManager pkg.ChangelogManager, logger *zap.SugaredLogger) *RestHandlerImpl {
	return &RestHandlerImpl{changelogManager: changelogManager, logger: logger}
}

type RestHandlerImpl struct {
	changelogManager pkg.ChangelogManager
	logger           *zap.SugaredLogger
}

type Response struct {
	Code   int         `json:"code,omitempty"`
	Status string      `json:"status,omitempty"`
	Result interface{} `json:"result,omitempty"`
	Errors []*ApiError `json:"errors,omitempty"`
}
type ApiError struct {
	HttpStatusCode    int         `json:"-"`
	Code              string      `json:"code,omitempty"`
	InternalMessage   string      `json:"internalMessage,omitempty"`
	UserMessage       interface{} `json:"userMessage,omitempty"`
	UserDetailMessage string      `json:"userDetailMessage,omitempty"`
}

func writeJsonResp(logger *zap.SugaredLogger, w http.ResponseWriter, err error, respBody interface{}, status int) {
	response := Response{}
	response.Code = status
	response.Status = http.StatusText(status)
	if err == nil {
		response.Result = respBody
	} else {
		apiErr := &ApiError{}
		apiErr.Code = "000" // 000=unknown
		apiErr.InternalMessage = err.Error()
		apiErr.UserMessage = respBody
		response.Errors = []*ApiError{apiErr}

	}
	b, err := json.Marshal(response)
	if err != nil {
		logger.Errorw("error in marshaling err object", "err", err)
		status = 500
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func (handler RestHandlerImpl) writeJsonResp(w http.ResponseWriter, err error, respBody interface{}, status int) {
	writeJsonResp(handler.logger, w, err, respBody, status)
}

// writeGenerationError maps pipeline and repository errors onto HTTP statuses.
func writeGenerationError(logger *zap.SugaredLogger, w http.ResponseWriter, err error) {
	status := statusForError(err)
	var userMessage interface{}
	if status == http.StatusBadRequest {
		userMessage = util.BuildDisplayErrorMessage("", err)
	}
	writeJsonResp(logger, w, err, userMessage, status)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, changelog.ErrEmptyCommitBatch),
		errors.Is(err, ErrInvalidRequestPayload),
		errors.Is(err, git.ErrInvalidSelector),
		errors.Is(err, git.ErrUnsupportedSelector),
		errors.Is(err, git.ErrRepositoryOutsideBaseDir),
		errors.Is(err, git.ErrNoCommitsInRange),
		errors.Is(err, git.ErrInvalidWebhookPayload),
		errors.Is(err, gogit.ErrRepositoryNotExists),
		errors.Is(err, plumbing.ErrReferenceNotFound),
		errors.Is(err, plumbing.ErrObjectNotFound):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled), errors.Is(err, pkg.ErrManagerStopped):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func readBody(r *http.Request) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
}

func (handler RestHandlerImpl) GenerateChangelog(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		handler.logger.Errorw("error in reading request body", "err", err)
		handler.writeJsonResp(w, err, nil, http.StatusBadRequest)
		return
	}
	request, err := NormalizeGenerationRequest(string(body))
	if err != nil {
		handler.logger.Errorw("invalid generate changelog request", "err", err)
		handler.writeJsonResp(w, err, err.Error(), http.StatusBadRequest)
		return
	}
	handler.logger.Infow("generate changelog request", "title", request.Title, "commits", len(request.CommitData.Commits), "summary", request.GenerateSummary)
	res, err := handler.changelogManager.GenerateFromCommits(r.Context(), request)
	if err != nil {
		handler.logger.Errorw("error in generating changelog", "title", request.Title, "err", err)
		writeGenerationError(handler.logger, w, err)
		return
	}
	handler.writeJsonResp(w, nil, res, http.StatusOK)
}

func (handler RestHandlerImpl) GenerateRepositoryChangelog(w http.ResponseWriter, r *http.Request) {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	request := &pkg.RepositoryChangelogRequest{IncludeStats: true}
	err := decoder.Decode(request)
	if err != nil {
		handler.logger.Errorw("error in decoding repository changelog request", "err", err)
		handler.writeJsonResp(w, err, nil, http.StatusBadRequest)
		return
	}
	handler.logger.Infow("repository changelog request", "req", request)
	res, err := handler.changelogManager.GenerateFromRepository(r.Context(), request)
	if err != nil {
		writeGenerationError(handler.logger, w, err)
		return
	}
	handler.writeJsonResp(w, nil, res, http.StatusOK)
}
