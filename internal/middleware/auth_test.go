package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/citytrail/backend/internal/model"
	"github.com/citytrail/backend/internal/testutil"
	"github.com/citytrail/backend/pkg/authenticator"
	"github.com/citytrail/backend/pkg/errorx"
	"github.com/citytrail/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_AuthVerifier_Middleware(t *testing.T) {
	ctx := testutil.MockContext()
	cfg := xcontext.Configs(ctx)
	engine := authenticator.NewTokenEngine[model.AccessToken](
		cfg.Auth.TokenSecret, cfg.Auth.AccessToken.Expiration)
	middleware := NewAuthVerifier(engine).Middleware()

	token, err := engine.Generate("user1", model.AccessToken{ID: "user1", Name: "alice"})
	require.NoError(t, err)

	httpReq := httptest.NewRequest("GET", "/getMe", nil)
	httpReq.Header.Set("Authorization", "Bearer "+token)
	newCtx, err := middleware(xcontext.WithHTTPRequest(ctx, httpReq))
	require.NoError(t, err)
	require.Equal(t, "user1", xcontext.RequestUserID(newCtx))

	httpReq = httptest.NewRequest("GET", "/getMe", nil)
	httpReq.AddCookie(&http.Cookie{Name: cfg.Auth.AccessToken.Name, Value: token})
	newCtx, err = middleware(xcontext.WithHTTPRequest(ctx, httpReq))
	require.NoError(t, err)
	require.Equal(t, "user1", xcontext.RequestUserID(newCtx))

	httpReq = httptest.NewRequest("GET", "/getMe", nil)
	_, err = middleware(xcontext.WithHTTPRequest(ctx, httpReq))
	require.Equal(t, errorx.New(errorx.Unauthenticated, "You need to sign in before"), err)

	httpReq = httptest.NewRequest("GET", "/getMe", nil)
	httpReq.Header.Set("Authorization", "Bearer not-a-token")
	_, err = middleware(xcontext.WithHTTPRequest(ctx, httpReq))
	require.Equal(t, errorx.New(errorx.Unauthenticated, "Invalid access token"), err)
}
