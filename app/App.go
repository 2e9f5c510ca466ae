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


package app

import (
	"context"
	"errors"
	"fmt"
	"github.com/caarlos0/env"
	"github.com/goosewin/chronicler/api"
	"github.com/goosewin/chronicler/bean"
	"github.com/goosewin/chronicler/internals/middleware"
	"github.com/goosewin/chronicler/pkg"
	"github.com/gorilla/handlers"
	"go.uber.org/zap"
	"net/http"
	"os"
	"time"
)

type App struct {
	MuxRouter        *api.MuxRouter
	Logger           *zap.SugaredLogger
	changelogManager pkg.ChangelogManager
	restServer       *http.Server
	StartupConfig    *bean.StartupConfig
}

func NewApp(MuxRouter *api.MuxRouter, Logger *zap.SugaredLogger, changelogManager pkg.ChangelogManager) *App {
	return &App{
		MuxRouter:        MuxRouter,
		Logger:           Logger,
		changelogManager: changelogManager,
	}
}

type PanicLogger struct {
	Logger *zap.SugaredLogger
}

func (impl *PanicLogger) Println(param ...interface{}) {
	impl.Logger.Errorw("PANIC", "err", param)
	middleware.PanicCounter.WithLabelValues().Inc()
}

func (app *App) Start() {

	// Parse config
	app.StartupConfig = &bean.StartupConfig{}
	err := env.Parse(app.StartupConfig)
	if err != nil {
		app.Logger.Errorw("failed to parse configuration", "err", err)
		os.Exit(2)
	}

	err = app.initRestServer(app.StartupConfig.RestPort)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.Logger.Errorw("error starting rest server", "err", err)
		os.Exit(2)
	}
}

func (app *App) initRestServer(port int) error {
	app.Logger.Infow("rest server starting", "port", port)
	app.MuxRouter.Init()
	app.MuxRouter.Router.Use(middleware.PrometheusMiddleware)

	h := handlers.RecoveryHandler(handlers.RecoveryLogger(&PanicLogger{Logger: app.Logger}))(app.MuxRouter.Router)

	app.restServer = &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: h}
	return app.restServer.ListenAndServe()
}

// Stop drains the rest server and in-flight generations. Called during shutdown
func (app *App) Stop() {
	app.Logger.Infow("chronicler shutdown initiating")

	timeout := 5 * time.Second
	if app.StartupConfig != nil && app.StartupConfig.ShutdownTimeoutInSec > 0 {
		timeout = time.Duration(app.StartupConfig.ShutdownTimeoutInSec) * time.Second
	}
	timeoutContext, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if app.restServer != nil {
		app.Logger.Infow("closing router")
		err := app.restServer.Shutdown(timeoutContext)
		if err != nil {
			app.Logger.Errorw("error in mux router shutdown", "err", err)
		}
	}

	app.Logger.Infow("waiting for running generations")
	app.changelogManager.Stop()

	app.Logger.Infow("housekeeping done. exiting now")
}
