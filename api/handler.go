/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package api

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/suparena/crewlookup/errors"
	"github.com/suparena/crewlookup/lookup"
)

// Handler turns crew lookup requests into JSON responses. Every outcome,
// including storage failures, becomes a Response; nothing propagates.
type Handler struct {
	svc *lookup.Service
	log *logrus.Logger
}

// NewHandler creates a Handler. A nil logger discards log output.
func NewHandler(svc *lookup.Service, log *logrus.Logger) *Handler {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Handler{svc: svc, log: log}
}

// Handle validates p, runs the lookup and renders the outcome.
func (h *Handler) Handle(ctx context.Context, requestID string, p lookup.Params) Response {
	start := time.Now()
	fields := logrus.Fields{
		"request_id": requestID,
		"movie_id":   p.MovieID,
		"role":       p.Role,
	}
	if p.Name != "" {
		fields["name_filter"] = p.Name
	}

	resp, count, err := h.lookup(ctx, p)

	fields["status_code"] = resp.StatusCode
	fields["latency_ms"] = float64(time.Since(start).Nanoseconds()) / 1000000
	entry := h.log.WithFields(fields)
	switch {
	case err == nil:
		entry.WithField("crew_count", count).Info("crew lookup")
	case errors.IsBackendError(err):
		entry.WithField("backend_kind", errors.BackendKindOf(err)).WithError(err).Error("crew lookup failed")
	default:
		entry.WithError(err).Warn("crew lookup rejected")
	}
	return resp
}

func (h *Handler) lookup(ctx context.Context, p lookup.Params) (Response, int, error) {
	q, err := lookup.ParseQuery(p)
	if err != nil {
		return errorResponse(err), 0, err
	}
	res, err := h.svc.LookupCrew(ctx, q)
	if err != nil {
		return errorResponse(err), 0, err
	}
	return crewResponse(res.Crew), len(res.Crew), nil
}
