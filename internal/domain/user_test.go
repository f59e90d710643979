package domain

import (
	"testing"

	"github.com/citytrail/backend/internal/model"
	"github.com/citytrail/backend/internal/repository"
	"github.com/citytrail/backend/internal/testutil"
	"github.com/citytrail/backend/pkg/authenticator"
	"github.com/citytrail/backend/pkg/errorx"
	"github.com/citytrail/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestUserDomain(engine authenticator.TokenEngine[model.AccessToken]) UserDomain {
	return NewUserDomain(repository.NewUserRepository(), engine)
}

func Test_userDomain_SignIn(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	cfg := xcontext.Configs(ctx)
	engine := authenticator.NewTokenEngine[model.AccessToken](
		cfg.Auth.TokenSecret, cfg.Auth.AccessToken.Expiration)
	d := newTestUserDomain(engine)

	resp, err := d.SignIn(ctx, &model.SignInRequest{Name: testutil.User1.Name})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, resp.User.ID)

	info, err := engine.Verify(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, info.ID)
	require.Equal(t, testutil.User1.Name, info.Name)

	// An unknown name creates the user.
	resp, err = d.SignIn(ctx, &model.SignInRequest{Name: "carol"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.User.ID)
	require.Equal(t, 1, resp.User.Level)

	_, err = d.SignIn(ctx, &model.SignInRequest{})
	require.Equal(t, errorx.New(errorx.BadRequest, "Not allow an empty name"), err)
}

func Test_userDomain_GetMe(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestUserDomain(nil)

	resp, err := d.GetMe(ctx, &model.GetUserRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.Name, resp.User.Name)

	_, err = d.GetUser(ctx, &model.GetUserRequest{ID: "missing"})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found user"), err)
}
