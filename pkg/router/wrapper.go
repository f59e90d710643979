package router

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/citytrail/backend/pkg/errorx"
	"github.com/citytrail/backend/pkg/xcontext"
	"github.com/mitchellh/mapstructure"
)

// HandlerFunc is an endpoint handler. The request is bound from the query
// string of GET requests and from the json body of POST requests.
type HandlerFunc[Req, Resp any] func(ctx context.Context, req *Req) (*Resp, error)

func wrap[Req, Resp any](r *Router, method string, handler HandlerFunc[Req, Resp]) http.HandlerFunc {
	befores := r.befores
	afters := r.afters
	closers := r.closers

	return func(w http.ResponseWriter, httpReq *http.Request) {
		if httpReq.Method != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		ctx := xcontext.WithHTTPRequest(r.ctx, httpReq)
		ctx = xcontext.WithHTTPWriter(ctx, w)

		defer func() {
			for _, closer := range closers {
				closer(ctx)
			}
		}()

		var err error
		for _, middleware := range befores {
			ctx, err = middleware(ctx)
			if err != nil {
				writeError(ctx, w, err)
				return
			}
		}

		req := new(Req)
		if err := bind(httpReq, method, req); err != nil {
			xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
			writeError(ctx, w, errorx.New(errorx.BadRequest, "Cannot bind the request"))
			return
		}

		resp, err := handler(ctx, req)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		for _, middleware := range afters {
			ctx, err = middleware(ctx)
			if err != nil {
				writeError(ctx, w, err)
				return
			}
		}

		writeJSON(ctx, w, Response{Data: resp})
	}
}

func bind(httpReq *http.Request, method string, req any) error {
	if method == http.MethodGet {
		values := map[string]string{}
		for key, value := range httpReq.URL.Query() {
			if len(value) > 0 {
				values[key] = value[0]
			}
		}

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			TagName:          "json",
			Result:           req,
		})
		if err != nil {
			return err
		}

		return decoder.Decode(values)
	}

	if httpReq.Body == nil {
		return nil
	}
	defer httpReq.Body.Close()

	if err := json.NewDecoder(httpReq.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}
