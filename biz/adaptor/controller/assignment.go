package controller

import (
	"context"

	"assignment-track/biz/adaptor"
	"assignment-track/biz/application/dto/track"
	"assignment-track/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreateAssignment 教师创建作业
func CreateAssignment(ctx context.Context, c *app.RequestContext) {
	var req track.CreateAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	meta := adaptor.ExtractUserMeta(ctx)

	p := provider.Get()
	resp, err := p.AssignmentService.CreateAssignment(ctx, meta, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// ListAssignments 获取作业列表
func ListAssignments(ctx context.Context, c *app.RequestContext) {
	var req track.ListAssignmentsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	meta := adaptor.ExtractUserMeta(ctx)

	p := provider.Get()
	resp, err := p.AssignmentService.ListAssignments(ctx, meta, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// GetAssignment 获取作业详情
func GetAssignment(ctx context.Context, c *app.RequestContext) {
	var req track.GetAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	meta := adaptor.ExtractUserMeta(ctx)

	p := provider.Get()
	resp, err := p.AssignmentService.GetAssignment(ctx, meta, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// UpdateAssignment 创建者修改作业
func UpdateAssignment(ctx context.Context, c *app.RequestContext) {
	var req track.UpdateAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	meta := adaptor.ExtractUserMeta(ctx)

	p := provider.Get()
	resp, err := p.AssignmentService.UpdateAssignment(ctx, meta, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// DeleteAssignment 创建者删除作业
func DeleteAssignment(ctx context.Context, c *app.RequestContext) {
	var req track.DeleteAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	meta := adaptor.ExtractUserMeta(ctx)

	p := provider.Get()
	resp, err := p.AssignmentService.DeleteAssignment(ctx, meta, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}
