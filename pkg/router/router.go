package router

import (
	"context"
	"net/http"

	"github.com/rs/cors"

	"github.com/tamaliftics/backend/pkg/xcontext"
)

// HandlerFunc is an endpoint handler. The router decodes the request into
// Req, runs the middleware chain, and encodes the returned Resp (or error)
// into the JSON envelope.
type HandlerFunc[Req, Resp any] func(ctx context.Context, req *Req) (*Resp, error)

// MiddlewareFunc runs before the handler. It may derive a new context; a
// returned error aborts the request.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the handler, whether it succeeded or not. The
// outcome is available through xcontext.Error and xcontext.Response.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux     *http.ServeMux
	ctx     context.Context
	befores []MiddlewareFunc
	closers []CloserFunc
}

// New creates a router over a base context carrying the application
// dependencies (database, configs, logger, token engine).
func New(ctx context.Context) *Router {
	return &Router{mux: http.NewServeMux(), ctx: ctx}
}

// Branch returns a router sharing the same mux but with an independent
// middleware chain, so a group of routes can add middleware without
// affecting routes registered elsewhere.
func (r *Router) Branch() *Router {
	return &Router{
		mux:     r.mux,
		ctx:     r.ctx,
		befores: append([]MiddlewareFunc{}, r.befores...),
		closers: append([]CloserFunc{}, r.closers...),
	}
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

// Handler returns the http.Handler serving all registered routes, wrapped
// with CORS for the configured origins.
func (r *Router) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: xcontext.Configs(r.ctx).ApiServer.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r.mux)
}

func GET[Req, Resp any](r *Router, pattern string, handler HandlerFunc[Req, Resp]) {
	register(r, http.MethodGet, pattern, handler)
}

func POST[Req, Resp any](r *Router, pattern string, handler HandlerFunc[Req, Resp]) {
	register(r, http.MethodPost, pattern, handler)
}

func register[Req, Resp any](
	r *Router, method, pattern string, handler HandlerFunc[Req, Resp],
) {
	befores := append([]MiddlewareFunc{}, r.befores...)
	closers := append([]CloserFunc{}, r.closers...)
	base := r.ctx

	r.mux.HandleFunc(pattern, func(w http.ResponseWriter, req *http.Request) {
		ctx := xcontext.WithHTTPRequest(base, req)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithRequestState(ctx)

		defer func() {
			for _, closer := range closers {
				closer(ctx)
			}
		}()

		if req.Method != method {
			writeError(ctx, w, errMethodNotAllowed)
			return
		}

		for _, before := range befores {
			// The error is written with the pre-middleware context, so a
			// middleware aborting the request cannot take the request state
			// down with it.
			newCtx, err := before(ctx)
			if err != nil {
				writeError(ctx, w, err)
				return
			}
			ctx = newCtx
		}

		var body Req
		if err := decodeRequest(req, method, &body); err != nil {
			writeError(ctx, w, err)
			return
		}

		resp, err := handler(ctx, &body)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeResponse(ctx, w, resp)
	})
}
