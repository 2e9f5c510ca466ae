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


package pkg

import (
	"errors"
	"github.com/goosewin/chronicler/pkg/git"
)

var ErrManagerStopped = errors.New("changelog manager is stopped")

type RepositoryChangelogRequest struct {
	Repository      string           `json:"repository"`
	Type            git.SelectorType `json:"type"`
	FromRef         string           `json:"fromRef,omitempty"`
	ToRef           string           `json:"toRef,omitempty"`
	CommitHash      string           `json:"commitHash,omitempty"`
	Title           string           `json:"title,omitempty"`
	IncludeStats    bool             `json:"includeStats"`
	GenerateSummary bool             `json:"generateSummary"`
}

func (r *RepositoryChangelogRequest) Selector() git.CommitSelector {
	return git.CommitSelector{
		Repository: r.Repository,
		Type:       r.Type,
		FromRef:    r.FromRef,
		ToRef:      r.ToRef,
		CommitHash: r.CommitHash,
	}
}

// PushChangelogOptions are read from the query string of the push webhook.
type PushChangelogOptions struct {
	Title           string `schema:"title"`
	IncludeStats    bool   `schema:"includeStats"`
	GenerateSummary bool   `schema:"generateSummary"`
}
