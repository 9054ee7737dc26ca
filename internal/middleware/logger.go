package middleware

import (
	"context"

	"github.com/tamaliftics/backend/pkg/router"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

// Logger returns a closer that writes one line per request with its outcome.
func Logger() router.CloserFunc {
	return func(ctx context.Context) {
		req := xcontext.HTTPRequest(ctx)
		if req == nil {
			return
		}

		if err := xcontext.Error(ctx); err != nil {
			xcontext.Logger(ctx).Warnf("%s | %s | %v", req.Method, req.URL.Path, err)
		} else {
			xcontext.Logger(ctx).Infof("%s | %s | ok", req.Method, req.URL.Path)
		}
	}
}
