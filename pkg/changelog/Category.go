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
	"encoding/json"
	"fmt"
	"strings"
)

// CategoryTag is the closed set of change categories a commit can be assigned to.
type CategoryTag int

const (
	CategoryFeatures CategoryTag = iota
	CategoryFixes
	CategoryDocs
	CategoryChore
	CategoryRefactor
	CategoryStyle
	CategoryTest
	CategoryPerf
	CategoryCi
	CategoryBuild
	CategoryRevert
	CategoryOther
)

// AllCategories lists every tag in declaration order.
var AllCategories = []CategoryTag{
	CategoryFeatures, CategoryFixes, CategoryDocs, CategoryChore, CategoryRefactor, CategoryStyle,
	CategoryTest, CategoryPerf, CategoryCi, CategoryBuild, CategoryRevert, CategoryOther,
}

// RenderOrder is the order in which category sections appear in a rendered changelog.
var RenderOrder = []CategoryTag{
	CategoryFeatures, CategoryFixes, CategoryPerf, CategoryRefactor, CategoryDocs, CategoryStyle,
	CategoryTest, CategoryChore, CategoryCi, CategoryBuild, CategoryRevert, CategoryOther,
}

func (c CategoryTag) String() string {
	switch c {
	case CategoryFeatures:
		return "features"
	case CategoryFixes:
		return "fixes"
	case CategoryDocs:
		return "docs"
	case CategoryChore:
		return "chore"
	case CategoryRefactor:
		return "refactor"
	case CategoryStyle:
		return "style"
	case CategoryTest:
		return "test"
	case CategoryPerf:
		return "perf"
	case CategoryCi:
		return "ci"
	case CategoryBuild:
		return "build"
	case CategoryRevert:
		return "revert"
	case CategoryOther:
		return "other"
	}
	return fmt.Sprintf("CategoryTag(%d)", int(c))
}

// DisplayName is the section heading used for the category.
func (c CategoryTag) DisplayName() string {
	switch c {
	case CategoryFeatures:
		return "Features"
	case CategoryFixes:
		return "Bug Fixes"
	case CategoryDocs:
		return "Documentation"
	case CategoryChore:
		return "Maintenance"
	case CategoryRefactor:
		return "Code Refactoring"
	case CategoryStyle:
		return "Styling"
	case CategoryTest:
		return "Tests"
	case CategoryPerf:
		return "Performance Improvements"
	case CategoryCi:
		return "CI/CD"
	case CategoryBuild:
		return "Build System"
	case CategoryRevert:
		return "Reverts"
	case CategoryOther:
		return "Other Changes"
	}
	return "Other Changes"
}

// renderRank is the position of the category in RenderOrder.
func (c CategoryTag) renderRank() int {
	switch c {
	case CategoryFeatures:
		return 0
	case CategoryFixes:
		return 1
	case CategoryPerf:
		return 2
	case CategoryRefactor:
		return 3
	case CategoryDocs:
		return 4
	case CategoryStyle:
		return 5
	case CategoryTest:
		return 6
	case CategoryChore:
		return 7
	case CategoryCi:
		return 8
	case CategoryBuild:
		return 9
	case CategoryRevert:
		return 10
	case CategoryOther:
		return 11
	}
	return len(RenderOrder)
}

func (c CategoryTag) IsValid() bool {
	return c >= CategoryFeatures && c <= CategoryOther
}

// ParseCategoryTag accepts a tag name or a conventional commit type keyword, case-insensitively.
func ParseCategoryTag(s string) (CategoryTag, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "features", "feat":
		return CategoryFeatures, true
	case "fixes", "fix":
		return CategoryFixes, true
	case "docs":
		return CategoryDocs, true
	case "chore":
		return CategoryChore, true
	case "refactor":
		return CategoryRefactor, true
	case "style":
		return CategoryStyle, true
	case "test":
		return CategoryTest, true
	case "perf":
		return CategoryPerf, true
	case "ci":
		return CategoryCi, true
	case "build":
		return CategoryBuild, true
	case "revert":
		return CategoryRevert, true
	case "other":
		return CategoryOther, true
	}
	return CategoryOther, false
}

func (c CategoryTag) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("invalid category tag %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *CategoryTag) UnmarshalText(text []byte) error {
	tag, ok := ParseCategoryTag(string(text))
	if !ok {
		return fmt.Errorf("unknown category tag %q", string(text))
	}
	*c = tag
	return nil
}

func (c CategoryTag) MarshalJSON() ([]byte, error) {
	text, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}
