package controller

import (
	"context"

	"assignment-track/biz/adaptor"
	"assignment-track/biz/application/dto/track"
	"assignment-track/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Register 注册用户
func Register(ctx context.Context, c *app.RequestContext) {
	var req track.RegisterReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)

	p := provider.Get()
	resp, err := p.AuthService.Register(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// SignIn 登录换发令牌
func SignIn(ctx context.Context, c *app.RequestContext) {
	var req track.SignInReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)

	p := provider.Get()
	resp, err := p.AuthService.SignIn(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// UploadFiles 上传提交文件，返回文件引用
func UploadFiles(ctx context.Context, c *app.RequestContext) {
	form, err := c.MultipartForm()
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	meta := adaptor.ExtractUserMeta(ctx)

	p := provider.Get()
	resp, err := p.FileService.UploadFiles(ctx, meta, form.File["files"])
	adaptor.PostProcess(ctx, c, resp, err)
}
