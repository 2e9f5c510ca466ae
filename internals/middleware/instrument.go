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

package middleware

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"net/http"
	"strconv"
	"time"
)

var constLabels = map[string]string{"app": "chronicler"}

var (
	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "http_duration_seconds",
		Help:        "Duration of HTTP requests.",
		ConstLabels: constLabels,
	}, []string{"path", "method", "status"})
)

var responseCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:        "http_response_total",
		Help:        "How many HTTP requests processed, partitioned by status code, method and HTTP path.",
		ConstLabels: constLabels,
	},
	[]string{"path", "method", "status"})

var requestCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:        "http_requests_total",
		Help:        "How many HTTP requests processed, partitioned by method and HTTP path.",
		ConstLabels: constLabels,
	},
	[]string{"path", "method"})

var currentRequestGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name:        "http_requests_current",
	Help:        "no of request being served currently",
	ConstLabels: constLabels,
}, []string{"path", "method"})

// PrometheusMiddleware implements mux.MiddlewareFunc.
func PrometheusMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				path = tpl
			}
		}
		method := r.Method
		requestCounter.WithLabelValues(path, method).Inc()
		g := currentRequestGauge.WithLabelValues(path, method)
		g.Inc()
		defer g.Dec()
		d := newDelegator(w)
		next.ServeHTTP(d, r)
		status := strconv.Itoa(d.Status())
		httpDuration.WithLabelValues(path, method, status).Observe(time.Since(start).Seconds())
		responseCounter.WithLabelValues(path, method, status).Inc()
	})
}

var GenerationCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:        "changelog_generation_total",
		Help:        "no of changelogs generated, partitioned by mode (ai, fallback, failed)",
		ConstLabels: constLabels,
	},
	[]string{"mode"})

var AiStageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:        "changelog_ai_stage_duration_seconds",
	Help:        "Duration of language model stages",
	ConstLabels: constLabels,
	Buckets:     []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
}, []string{"stage", "status"})

var ClassificationErrorCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:        "changelog_classification_errors_total",
		Help:        "no of commits dropped because they could not be classified",
		ConstLabels: constLabels,
	},
	[]string{})

var TruncatedBatchCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:        "changelog_truncated_batches_total",
		Help:        "no of commit batches truncated to the classification cap",
		ConstLabels: constLabels,
	},
	[]string{})

var GitOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:        "git_operation_duration_seconds",
	Help:        "Duration of git operation request",
	ConstLabels: constLabels,
}, []string{"method", "status"})

var PanicCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:        "panic",
		Help:        "panic in the app",
		ConstLabels: constLabels,
	},
	[]string{})
