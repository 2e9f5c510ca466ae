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
	"fmt"
	"strings"
)

const promptDateLayout = "Jan 2, 2006"

// BuildRewritePrompt asks for a user-facing rewrite of the technical changelog.
func BuildRewritePrompt(technicalMarkdown string, batch CommitBatch) string {
	var b strings.Builder
	b.WriteString("Rewrite the technical changelog below into user-friendly language.\n")
	b.WriteString("Describe every change from the user's perspective and keep the same structure and information.\n\n")
	b.WriteString("Technical changelog:\n\n")
	b.WriteString(strings.TrimSpace(technicalMarkdown))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "This changelog covers %d commits", len(batch.Commits))
	if !batch.StartDate.IsZero() && !batch.EndDate.IsZero() {
		fmt.Fprintf(&b, " made between %s and %s", batch.StartDate.UTC().Format(promptDateLayout), batch.EndDate.UTC().Format(promptDateLayout))
	}
	b.WriteString(".\n")
	fmt.Fprintf(&b, "Contributors: %s\n", valueOr(strings.Join(batch.Authors, ", "), "unknown"))
	return b.String()
}

// BuildSummaryPrompt asks for a short prose summary of the final changelog.
func BuildSummaryPrompt(changelogMarkdown string) string {
	var b strings.Builder
	b.WriteString("Write a brief summary (3-4 sentences) of the following changelog.\n")
	b.WriteString("Focus on the most significant changes and their impact on users.\n\n")
	b.WriteString(strings.TrimSpace(changelogMarkdown))
	b.WriteString("\n")
	return b.String()
}

func valueOr(val, fallback string) string {
	if strings.TrimSpace(val) == "" {
		return fallback
	}
	return val
}
