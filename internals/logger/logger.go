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

package logger

import (
	"fmt"
	"github.com/caarlos0/env"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogConfig struct {
	Level int `env:"LOG_LEVEL" envDefault:"0"` // -1 debug, 0 info, 1 warn, 2 error
}

func NewSugaredLogger() (*zap.SugaredLogger, error) {
	logConfig := &LogConfig{}
	err := env.Parse(logConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to parse logger env config: %w", err)
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.Level(logConfig.Level))
	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create the default logger: %w", err)
	}
	return l.Sugar(), nil
}
