package router

import (
	"context"
	"net/http"

	"github.com/citytrail/backend/pkg/xcontext"
	"github.com/rs/cors"
)

// MiddlewareFunc runs before or after a handler. It can enrich the context,
// or abort the request by returning an error.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response was written, no matter how the request
// ended.
type CloserFunc func(ctx context.Context)

type Router struct {
	ctx context.Context
	mux *http.ServeMux

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(ctx context.Context) *Router {
	return &Router{ctx: ctx, mux: http.NewServeMux()}
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

// Branch returns a router sharing the same mux but with an independent
// middleware chain, so a group of routes can get extra middlewares without
// leaking them into routes registered later on the parent.
func (r *Router) Branch() *Router {
	clone := &Router{ctx: r.ctx, mux: r.mux}
	clone.befores = append(clone.befores, r.befores...)
	clone.afters = append(clone.afters, r.afters...)
	clone.closers = append(clone.closers, r.closers...)
	return clone
}

// Handler returns the http handler serving all registered routes, wrapped
// with CORS if origins were configured.
func (r *Router) Handler() http.Handler {
	allowedOrigins := xcontext.Configs(r.ctx).ApiServer.AllowCORS
	if len(allowedOrigins) == 0 {
		return r.mux
	}

	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r.mux)
}

func GET[Req, Resp any](r *Router, pattern string, handler HandlerFunc[Req, Resp]) {
	r.mux.HandleFunc(pattern, wrap(r, http.MethodGet, handler))
}

func POST[Req, Resp any](r *Router, pattern string, handler HandlerFunc[Req, Resp]) {
	r.mux.HandleFunc(pattern, wrap(r, http.MethodPost, handler))
}
