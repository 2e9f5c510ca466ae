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


package wireset

import (
	"github.com/goosewin/chronicler/api"
	"github.com/goosewin/chronicler/app"
	"github.com/goosewin/chronicler/internals"
	"github.com/goosewin/chronicler/internals/logger"
	"github.com/goosewin/chronicler/pkg"
	"github.com/goosewin/chronicler/pkg/changelog"
	"github.com/goosewin/chronicler/pkg/git"
	"github.com/goosewin/chronicler/pkg/llm"
	"github.com/google/wire"
)

var CommonWireSet = wire.NewSet(app.NewApp,
	api.NewMuxRouter,
	internals.ParseConfiguration,
	logger.NewSugaredLogger,
	api.NewRestHandlerImpl,
	wire.Bind(new(api.RestHandler), new(*api.RestHandlerImpl)),
	api.NewWebhookHandlerGithubImpl,
	wire.Bind(new(api.WebhookHandler), new(*api.WebhookHandlerGithubImpl)),
	pkg.NewChangelogManagerImpl,
	wire.Bind(new(pkg.ChangelogManager), new(*pkg.ChangelogManagerImpl)),
	internals.NewRepositoryLocker,
	git.NewRepositoryCommitSourceImpl,
	wire.Bind(new(git.RepositoryCommitSource), new(*git.RepositoryCommitSourceImpl)),
	git.NewWebhookEventParserImpl,
	wire.Bind(new(git.WebhookEventParser), new(*git.WebhookEventParserImpl)),
	llm.NewAgentConfig,
	llm.NewAgentRegistryImpl,
	wire.Bind(new(llm.AgentRegistry), new(*llm.AgentRegistryImpl)),
	changelog.NewCommitClassifierImpl,
	wire.Bind(new(changelog.CommitClassifier), new(*changelog.CommitClassifierImpl)),
	changelog.NewCategoryAggregatorImpl,
	wire.Bind(new(changelog.CategoryAggregator), new(*changelog.CategoryAggregatorImpl)),
	changelog.NewMarkdownRendererImpl,
	wire.Bind(new(changelog.MarkdownRenderer), new(*changelog.MarkdownRendererImpl)),
	changelog.NewNarrativeRewriterImpl,
	wire.Bind(new(changelog.NarrativeRewriter), new(*changelog.NarrativeRewriterImpl)),
	changelog.NewSummaryGeneratorImpl,
	wire.Bind(new(changelog.SummaryGenerator), new(*changelog.SummaryGeneratorImpl)),
	changelog.NewChangelogPipelineImpl,
	wire.Bind(new(changelog.ChangelogPipeline), new(*changelog.ChangelogPipelineImpl)),
)
