package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tamaliftics/backend/pkg/errorx"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

var errMethodNotAllowed = errorx.New(errorx.BadRequest, "Method not allowed")

// response is the JSON envelope of every endpoint. Code zero means success.
type response struct {
	Code  int    `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func writeResponse(ctx context.Context, w http.ResponseWriter, data any) {
	xcontext.SetResponse(ctx, data)
	writeJSON(ctx, w, http.StatusOK, response{Data: data})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	xcontext.SetError(ctx, err)

	var xerr errorx.Error
	if !errors.As(err, &xerr) {
		xerr = errorx.Unknown
	}

	writeJSON(ctx, w, httpStatus(xerr.Code), response{
		Code:  int(xerr.Code),
		Error: xerr.Message,
	})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot encode response: %v", err)
	}
}

func httpStatus(code errorx.Code) int {
	switch code {
	case errorx.BadRequest:
		return http.StatusBadRequest
	case errorx.PermissionDenied:
		return http.StatusForbidden
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.Unauthenticated:
		return http.StatusUnauthorized
	case errorx.AlreadyExists:
		return http.StatusConflict
	case errorx.TooManyRequests:
		return http.StatusTooManyRequests
	case errorx.Unavailable:
		return http.StatusServiceUnavailable
	case errorx.NotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
