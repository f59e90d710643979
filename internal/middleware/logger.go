package middleware

import (
	"context"

	"github.com/citytrail/backend/pkg/router"
	"github.com/citytrail/backend/pkg/xcontext"
)

// LogRequest logs every finished request.
func LogRequest() router.CloserFunc {
	return func(ctx context.Context) {
		httpReq := xcontext.HTTPRequest(ctx)
		xcontext.Logger(ctx).Infof("%s %s from %s", httpReq.Method, httpReq.URL.Path, httpReq.RemoteAddr)
	}
}
