package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/citytrail/backend/pkg/errorx"
	"github.com/citytrail/backend/pkg/xcontext"
)

// Response is the envelope of every api reply. A zero code means success.
type Response struct {
	Code  int    `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var xerr errorx.Error
	if !errors.As(err, &xerr) {
		xerr = errorx.Unknown
	}

	writeJSON(ctx, w, Response{Code: int(xerr.Code), Error: xerr.Message})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
	}
}
