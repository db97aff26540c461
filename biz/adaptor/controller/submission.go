package controller

import (
	"context"

	"assignment-track/biz/adaptor"
	"assignment-track/biz/application/dto/track"
	"assignment-track/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreateSubmission 学生提交作业
func CreateSubmission(ctx context.Context, c *app.RequestContext) {
	var req track.CreateSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	meta := adaptor.ExtractUserMeta(ctx)

	p := provider.Get()
	resp, err := p.SubmissionService.CreateSubmission(ctx, meta, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// UpdateSubmission 学生修改提交
func UpdateSubmission(ctx context.Context, c *app.RequestContext) {
	var req track.UpdateSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	meta := adaptor.ExtractUserMeta(ctx)

	p := provider.Get()
	resp, err := p.SubmissionService.UpdateSubmission(ctx, meta, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// GradeSubmission 教师批改提交
func GradeSubmission(ctx context.Context, c *app.RequestContext) {
	var req track.GradeSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	meta := adaptor.ExtractUserMeta(ctx)

	p := provider.Get()
	resp, err := p.SubmissionService.GradeSubmission(ctx, meta, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// ListSubmissions 教师端按作业查看提交列表
func ListSubmissions(ctx context.Context, c *app.RequestContext) {
	var req track.ListSubmissionsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	meta := adaptor.ExtractUserMeta(ctx)

	p := provider.Get()
	resp, err := p.SubmissionService.ListSubmissions(ctx, meta, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// ListMySubmissions 学生端查看自己的提交列表
func ListMySubmissions(ctx context.Context, c *app.RequestContext) {
	var req track.ListMySubmissionsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	meta := adaptor.ExtractUserMeta(ctx)

	p := provider.Get()
	resp, err := p.SubmissionService.ListMySubmissions(ctx, meta, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}
