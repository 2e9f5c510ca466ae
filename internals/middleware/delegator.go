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

import "net/http"

// responseWriterDelegator records the status code written by the wrapped handler.
type responseWriterDelegator struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func newDelegator(w http.ResponseWriter) *responseWriterDelegator {
	return &responseWriterDelegator{ResponseWriter: w}
}

func (d *responseWriterDelegator) Status() int {
	if d.status == 0 {
		return http.StatusOK
	}
	return d.status
}

func (d *responseWriterDelegator) WriteHeader(code int) {
	if d.wroteHeader {
		return
	}
	d.status = code
	d.wroteHeader = true
	d.ResponseWriter.WriteHeader(code)
}

func (d *responseWriterDelegator) Write(b []byte) (int, error) {
	if !d.wroteHeader {
		d.WriteHeader(http.StatusOK)
	}
	return d.ResponseWriter.Write(b)
}

func (d *responseWriterDelegator) Flush() {
	if f, ok := d.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
