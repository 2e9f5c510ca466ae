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


package util

import (
	"context"
	"errors"
	"strings"
)

func BuildDisplayErrorMessage(cliMessage string, err error) string {
	customErrorMessage := GetErrMsgFromCliMessage(cliMessage, err)
	if customErrorMessage != "" {
		return customErrorMessage
	} else {
		if cliMessage != "" {
			return cliMessage
		} else {
			return err.Error()
		}
	}
}

// GetErrMsgFromCliMessage returns a user facing message for known git failures. If cliMessage is empty then err.Error() is inspected.
func GetErrMsgFromCliMessage(cliMessage string, err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return GIT_TIMEOUT_MESSAGE_RESPONSE
	}
	errMsg := strings.TrimSpace(cliMessage)
	if errMsg == "" {
		if err == nil {
			return ""
		}
		errMsg = err.Error()
	}
	switch {
	case strings.Contains(errMsg, REPOSITORY_NOT_EXISTS_ERROR):
		return CHECK_REPO_MESSAGE_RESPONSE
	case strings.Contains(errMsg, REFERENCE_NOT_FOUND_ERROR), strings.Contains(errMsg, REVISION_NOT_FOUND_ERROR),
		strings.Contains(errMsg, OBJECT_NOT_FOUND_ERROR):
		return CHECK_REF_MESSAGE_RESPONSE
	}
	return ""
}
