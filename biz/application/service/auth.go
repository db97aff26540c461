package service

import (
	"context"
	"errors"

	"assignment-track/biz/adaptor"
	"assignment-track/biz/application/dto/track"
	"assignment-track/biz/infrastructure/consts"
	"assignment-track/biz/infrastructure/repository/user"
	"assignment-track/biz/infrastructure/util/log"

	"github.com/google/wire"
)

type IAuthService interface {
	Register(ctx context.Context, req *track.RegisterReq) (*track.RegisterResp, error)
	SignIn(ctx context.Context, req *track.SignInReq) (*track.SignInResp, error)
}

type AuthService struct {
	UserStore UserStore
}

var AuthServiceSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),
)

// Register 注册用户，邮箱唯一
func (s *AuthService) Register(ctx context.Context, req *track.RegisterReq) (*track.RegisterResp, error) {
	if req.Role != consts.RoleStudent && req.Role != consts.RoleTeacher {
		return nil, consts.ErrInvalidParams
	}

	_, err := s.UserStore.FindOneByEmail(ctx, req.Email)
	if err == nil {
		return nil, consts.ErrRepeatedSignUp
	}
	if !errors.Is(err, consts.ErrNotFound) {
		log.CtxError(ctx, "查询用户失败: %v", err)
		return nil, consts.ErrSignIn
	}

	u := &user.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	}
	if err = s.UserStore.Insert(ctx, u); err != nil {
		log.CtxError(ctx, "注册用户失败: %v", err)
		return nil, consts.ErrSignIn
	}

	return &track.RegisterResp{
		Id: u.ID.Hex(),
	}, nil
}

// SignIn 登录，凭证校验由上游身份服务完成，这里换发访问令牌
func (s *AuthService) SignIn(ctx context.Context, req *track.SignInReq) (*track.SignInResp, error) {
	u, err := s.UserStore.FindOneByEmail(ctx, req.Email)
	if err != nil {
		return nil, consts.ErrSignIn
	}

	accessToken, accessExpire, err := adaptor.GenerateJwtToken(u.ID.Hex(), u.Role)
	if err != nil {
		log.CtxError(ctx, "生成token失败: %v", err)
		return nil, consts.ErrSignIn
	}

	return &track.SignInResp{
		Id:           u.ID.Hex(),
		AccessToken:  accessToken,
		AccessExpire: accessExpire,
		Name:         u.Username,
		Role:         u.Role,
	}, nil
}
