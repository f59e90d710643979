package domain

import (
	"context"
	"errors"

	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/internal/model"
	"github.com/citytrail/backend/internal/repository"
	"github.com/citytrail/backend/pkg/authenticator"
	"github.com/citytrail/backend/pkg/errorx"
	"github.com/citytrail/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserDomain interface {
	SignIn(ctx context.Context, req *model.SignInRequest) (*model.SignInResponse, error)
	GetMe(ctx context.Context, req *model.GetUserRequest) (*model.GetUserResponse, error)
	GetUser(ctx context.Context, req *model.GetUserRequest) (*model.GetUserResponse, error)
}

type userDomain struct {
	userRepo          repository.UserRepository
	accessTokenEngine authenticator.TokenEngine[model.AccessToken]
}

func NewUserDomain(
	userRepo repository.UserRepository,
	accessTokenEngine authenticator.TokenEngine[model.AccessToken],
) UserDomain {
	return &userDomain{userRepo: userRepo, accessTokenEngine: accessTokenEngine}
}

// SignIn looks a user up by name, creating it on first sight, and returns an
// access token.
func (d *userDomain) SignIn(ctx context.Context, req *model.SignInRequest) (*model.SignInResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty name")
	}

	user, err := d.userRepo.GetByName(ctx, req.Name)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
			return nil, errorx.Unknown
		}

		user = &entity.User{
			Base:  entity.Base{ID: uuid.NewString()},
			Name:  req.Name,
			Role:  entity.UserRole,
			Level: 1,
		}

		if err := d.userRepo.Create(ctx, user); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
			return nil, errorx.Unknown
		}
	}

	token, err := d.accessTokenEngine.Generate(user.ID, model.AccessToken{
		ID:   user.ID,
		Name: user.Name,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SignInResponse{
		AccessToken: token,
		User:        model.ConvertUser(user),
	}, nil
}

func (d *userDomain) GetMe(ctx context.Context, req *model.GetUserRequest) (*model.GetUserResponse, error) {
	return d.get(ctx, xcontext.RequestUserID(ctx))
}

func (d *userDomain) GetUser(ctx context.Context, req *model.GetUserRequest) (*model.GetUserResponse, error) {
	return d.get(ctx, req.ID)
}

func (d *userDomain) get(ctx context.Context, id string) (*model.GetUserResponse, error) {
	user, err := d.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetUserResponse{User: model.ConvertUser(user)}, nil
}
