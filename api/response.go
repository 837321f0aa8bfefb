/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package api

import (
	"encoding/json"
	"net/http"

	"github.com/suparena/crewlookup/errors"
	"github.com/suparena/crewlookup/storagemodels"
)

// Response messages
const (
	MsgMissingParameters = "Missing required path parameters"
	MsgQueryFailed       = "Failed to query crew"
)

// ContentTypeJSON is set on every response.
const ContentTypeJSON = "application/json"

// Response is a transport-neutral HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
}

// CrewResponse is the success envelope.
type CrewResponse struct {
	Data CrewData `json:"data"`
}

// CrewData holds the returned crew.
type CrewData struct {
	Crew []storagemodels.CrewRecord `json:"crew"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// StatusFor maps a lookup error onto its HTTP status.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.IsValidationError(err):
		return http.StatusBadRequest
	case errors.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorBody builds the error envelope for err. Only the error's message string is exposed.
func ErrorBody(err error) ErrorResponse {
	switch StatusFor(err) {
	case http.StatusBadRequest:
		return ErrorResponse{Message: MsgMissingParameters, Error: err.Error()}
	case http.StatusNotFound:
		return ErrorResponse{Message: err.Error()}
	default:
		return ErrorResponse{Message: MsgQueryFailed, Error: err.Error()}
	}
}

func crewResponse(crew []storagemodels.CrewRecord) Response {
	if crew == nil {
		crew = []storagemodels.CrewRecord{}
	}
	return encode(http.StatusOK, CrewResponse{Data: CrewData{Crew: crew}})
}

func errorResponse(err error) Response {
	return encode(StatusFor(err), ErrorBody(err))
}

func encode(status int, v interface{}) Response {
	body, err := json.Marshal(v)
	if err != nil {
		body, _ = json.Marshal(ErrorResponse{Message: MsgQueryFailed, Error: err.Error()})
		status = http.StatusInternalServerError
	}
	return Response{StatusCode: status, Body: body}
}
