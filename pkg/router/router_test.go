package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/citytrail/backend/internal/testutil"
	"github.com/citytrail/backend/pkg/errorx"
	"github.com/stretchr/testify/require"
)

type greetRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type greetResponse struct {
	Greeting string `json:"greeting"`
	Age      int    `json:"age"`
}

func greet(ctx context.Context, req *greetRequest) (*greetResponse, error) {
	if req.Name == "nobody" {
		return nil, errorx.New(errorx.NotFound, "Not found anybody")
	}

	return &greetResponse{Greeting: "hello " + req.Name, Age: req.Age}, nil
}

func Test_Router_bindsQueryAndBody(t *testing.T) {
	r := New(testutil.MockContext())
	GET(r, "/greet", greet)
	POST(r, "/greetBody", greet)

	server := httptest.NewServer(r.Handler())
	defer server.Close()

	httpResp, err := http.Get(server.URL + "/greet?name=bob&age=30")
	require.NoError(t, err)
	defer httpResp.Body.Close()

	var resp struct {
		Code int           `json:"code"`
		Data greetResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(httpResp.Body).Decode(&resp))
	require.Equal(t, 0, resp.Code)
	require.Equal(t, "hello bob", resp.Data.Greeting)
	require.Equal(t, 30, resp.Data.Age)

	httpResp, err = http.Post(
		server.URL+"/greetBody", "application/json",
		strings.NewReader(`{"name": "carol", "age": 25}`))
	require.NoError(t, err)
	defer httpResp.Body.Close()

	require.NoError(t, json.NewDecoder(httpResp.Body).Decode(&resp))
	require.Equal(t, "hello carol", resp.Data.Greeting)
	require.Equal(t, 25, resp.Data.Age)
}

func Test_Router_writesErrorEnvelope(t *testing.T) {
	r := New(testutil.MockContext())
	GET(r, "/greet", greet)

	server := httptest.NewServer(r.Handler())
	defer server.Close()

	httpResp, err := http.Get(server.URL + "/greet?name=nobody")
	require.NoError(t, err)
	defer httpResp.Body.Close()

	var resp Response
	require.NoError(t, json.NewDecoder(httpResp.Body).Decode(&resp))
	require.Equal(t, int(errorx.NotFound), resp.Code)
	require.Equal(t, "Not found anybody", resp.Error)
}

func Test_Router_rejectsWrongMethod(t *testing.T) {
	r := New(testutil.MockContext())
	GET(r, "/greet", greet)

	server := httptest.NewServer(r.Handler())
	defer server.Close()

	httpResp, err := http.Post(server.URL+"/greet", "application/json", nil)
	require.NoError(t, err)
	defer httpResp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, httpResp.StatusCode)
}

func Test_Router_branchKeepsMiddlewareChainsApart(t *testing.T) {
	r := New(testutil.MockContext())
	GET(r, "/open", greet)

	branch := r.Branch()
	branch.Before(func(ctx context.Context) (context.Context, error) {
		return nil, errorx.New(errorx.Unauthenticated, "You need to sign in before")
	})
	GET(branch, "/guarded", greet)

	server := httptest.NewServer(r.Handler())
	defer server.Close()

	httpResp, err := http.Get(server.URL + "/open?name=bob")
	require.NoError(t, err)
	defer httpResp.Body.Close()

	var resp Response
	require.NoError(t, json.NewDecoder(httpResp.Body).Decode(&resp))
	require.Equal(t, 0, resp.Code)

	httpResp, err = http.Get(server.URL + "/guarded?name=bob")
	require.NoError(t, err)
	defer httpResp.Body.Close()

	require.NoError(t, json.NewDecoder(httpResp.Body).Decode(&resp))
	require.Equal(t, int(errorx.Unauthenticated), resp.Code)
}
