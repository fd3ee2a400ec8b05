// Copyright (c) 2025, recipelog authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/modpack-tools/recipelog/pkg/errors"
	"github.com/modpack-tools/recipelog/pkg/serializer"
)

// ErrorResponse is the uniform error payload for all API endpoints.
type ErrorResponse struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"requestId"`
	Timestamp time.Time              `json:"timestamp"`
	Retryable bool                   `json:"retryable"`
}

// HTTPStatusFromCode maps a shared-taxonomy error code to an HTTP status.
// Unknown codes map to 500.
func HTTPStatusFromCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeInvalidRequest,
		errors.ErrCodeSignatureMismatch,
		errors.ErrCodeStructuralMismatch,
		errors.ErrCodeValueCoercion:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case errors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case errors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether a client should retry a request that
// failed with the given code. Unknown codes default to false.
func retryableFromCode(code errors.ErrorCode) bool {
	switch code {
	case errors.ErrCodeTimeout,
		errors.ErrCodeUnavailable,
		errors.ErrCodeRateLimitExceeded,
		errors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails combines two detail maps, the second overwriting on key
// collision. Returns nil when both are empty.
func mergeDetails(a, b map[string]interface{}) map[string]interface{} {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// WriteError writes a structured error response. Error codes come from the
// shared taxonomy in pkg/errors so API clients and extraction outcomes speak
// the same vocabulary.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errors.ErrorCode, message string, retryable bool, details map[string]interface{}) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes an error response derived from err. Structured
// errors contribute their code, message, context, and cause; anything else
// falls back to an internal error with the fallback message.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, details map[string]interface{}) {

	code := errors.ErrCodeInternal
	message := fallbackMessage
	var errDetails map[string]interface{}

	var se *errors.StructuredError
	if errors.As(err, &se) {
		code = se.Code
		message = se.Message
		errDetails = mergeDetails(se.Context, nil)
		if se.Cause != nil {
			errDetails = mergeDetails(errDetails, map[string]interface{}{
				"error": se.Cause.Error(),
			})
		}
	} else if err != nil {
		errDetails = map[string]interface{}{"error": err.Error()}
	}

	WriteError(w, r, HTTPStatusFromCode(code), code, message,
		retryableFromCode(code), mergeDetails(errDetails, details))
}
