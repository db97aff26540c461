package service

import (
	"context"
	"time"

	"assignment-track/biz/application/dto/basic"
	"assignment-track/biz/application/dto/track"
	"assignment-track/biz/application/policy"
	"assignment-track/biz/infrastructure/cache"
	"assignment-track/biz/infrastructure/consts"
	"assignment-track/biz/infrastructure/repository/assignment"
	"assignment-track/biz/infrastructure/util"
	"assignment-track/biz/infrastructure/util/log"
	"assignment-track/biz/infrastructure/util/page"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IAssignmentService interface {
	CreateAssignment(ctx context.Context, meta *basic.UserMeta, req *track.CreateAssignmentReq) (*track.CreateAssignmentResp, error)
	ListAssignments(ctx context.Context, meta *basic.UserMeta, req *track.ListAssignmentsReq) (*track.ListAssignmentsResp, error)
	GetAssignment(ctx context.Context, meta *basic.UserMeta, req *track.GetAssignmentReq) (*track.GetAssignmentResp, error)
	UpdateAssignment(ctx context.Context, meta *basic.UserMeta, req *track.UpdateAssignmentReq) (*track.UpdateAssignmentResp, error)
	DeleteAssignment(ctx context.Context, meta *basic.UserMeta, req *track.DeleteAssignmentReq) (*basic.Response, error)
}

type AssignmentService struct {
	AssignmentStore AssignmentStore
	AssignmentCache cache.IAssignmentCacheMapper
	Clock           util.Clock
}

var AssignmentServiceSet = wire.NewSet(
	wire.Struct(new(AssignmentService), "*"),
	wire.Bind(new(IAssignmentService), new(*AssignmentService)),
)

// CreateAssignment 教师创建作业
func (s *AssignmentService) CreateAssignment(ctx context.Context, meta *basic.UserMeta, req *track.CreateAssignmentReq) (*track.CreateAssignmentResp, error) {
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetRole() != consts.RoleTeacher {
		return nil, consts.ErrForbidden
	}

	// 截止时间必须严格晚于当前时间，仅在创建时校验
	dueDate := time.Unix(req.DueDate, 0)
	if !dueDate.After(s.Clock.Now()) {
		return nil, consts.ErrInvalidDueDate
	}

	if req.MaxScore != nil && (*req.MaxScore < 0 || *req.MaxScore > consts.MaxScoreLimit) {
		return nil, consts.ErrInvalidMaxScore
	}

	a := &assignment.Assignment{
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      dueDate,
		MaxScore:     req.MaxScore,
		Attachments:  req.Attachments,
		Instructions: lo.FromPtr(req.Instructions),
		IsActive:     true,
		CreatorID:    meta.GetUserId(),
	}

	if err := s.AssignmentStore.Insert(ctx, a); err != nil {
		log.CtxError(ctx, "创建作业失败: %v", err)
		return nil, consts.ErrCreateAssignment
	}

	return &track.CreateAssignmentResp{
		AssignmentId: a.ID.Hex(),
	}, nil
}

// ListAssignments 获取作业列表，教师看自己创建的，学生看启用中的
func (s *AssignmentService) ListAssignments(ctx context.Context, meta *basic.UserMeta, req *track.ListAssignmentsReq) (*track.ListAssignmentsResp, error) {
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	pg, pageSize := page.ParsePageOpt(req.PaginationOptions)

	var assignments []*assignment.Assignment
	var total int64
	var err error
	if meta.GetRole() == consts.RoleTeacher {
		assignments, total, err = s.AssignmentStore.FindByCreator(ctx, meta.GetUserId(), pg, pageSize)
	} else {
		assignments, total, err = s.AssignmentStore.FindActive(ctx, pg, pageSize)
	}
	if err != nil {
		log.CtxError(ctx, "获取作业列表失败: %v", err)
		return nil, consts.ErrGetAssignmentList
	}

	infos := lo.Map(assignments, func(item *assignment.Assignment, _ int) *track.AssignmentInfo {
		return toAssignmentInfo(item)
	})

	return &track.ListAssignmentsResp{
		Assignments: infos,
		Total:       total,
		Pagination:  page.Build(pg, pageSize, total),
	}, nil
}

// GetAssignment 获取作业详情
func (s *AssignmentService) GetAssignment(ctx context.Context, meta *basic.UserMeta, req *track.GetAssignmentReq) (*track.GetAssignmentResp, error) {
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	a, err := s.AssignmentStore.FindOne(ctx, req.AssignmentId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	return &track.GetAssignmentResp{
		Assignment: toAssignmentInfo(a),
	}, nil
}

// UpdateAssignment 创建者修改作业
func (s *AssignmentService) UpdateAssignment(ctx context.Context, meta *basic.UserMeta, req *track.UpdateAssignmentReq) (*track.UpdateAssignmentResp, error) {
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	a, err := s.AssignmentStore.FindOne(ctx, req.AssignmentId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	if !policy.IsAssignmentOwner(a, meta.GetUserId()) {
		return nil, consts.ErrForbidden
	}

	if req.MaxScore != nil && (*req.MaxScore < 0 || *req.MaxScore > consts.MaxScoreLimit) {
		return nil, consts.ErrInvalidMaxScore
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.DueDate != nil {
		// 截止时间只在创建时校验，修改时按原行为直接生效
		a.DueDate = time.Unix(*req.DueDate, 0)
	}
	if req.MaxScore != nil {
		a.MaxScore = req.MaxScore
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}
	if req.Instructions != nil {
		a.Instructions = *req.Instructions
	}
	if len(req.Attachments) > 0 {
		a.Attachments = req.Attachments
	}

	if err = s.AssignmentStore.Update(ctx, a); err != nil {
		log.CtxError(ctx, "修改作业失败: %v", err)
		return nil, consts.ErrUpdate
	}

	// 摘要缓存失效
	if err = s.AssignmentCache.Delete(ctx, req.AssignmentId); err != nil {
		log.CtxInfo(ctx, "删除作业摘要缓存失败: %v", err)
	}

	return &track.UpdateAssignmentResp{
		Assignment: toAssignmentInfo(a),
	}, nil
}

// DeleteAssignment 创建者删除作业
func (s *AssignmentService) DeleteAssignment(ctx context.Context, meta *basic.UserMeta, req *track.DeleteAssignmentReq) (*basic.Response, error) {
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	a, err := s.AssignmentStore.FindOne(ctx, req.AssignmentId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	if !policy.IsAssignmentOwner(a, meta.GetUserId()) {
		return nil, consts.ErrForbidden
	}

	if err = s.AssignmentStore.Delete(ctx, req.AssignmentId); err != nil {
		log.CtxError(ctx, "删除作业失败: %v", err)
		return nil, consts.ErrUpdate
	}

	if err = s.AssignmentCache.Delete(ctx, req.AssignmentId); err != nil {
		log.CtxInfo(ctx, "删除作业摘要缓存失败: %v", err)
	}

	return util.Succeed("删除成功")
}

func toAssignmentInfo(a *assignment.Assignment) *track.AssignmentInfo {
	return &track.AssignmentInfo{
		Id:           a.ID.Hex(),
		Title:        a.Title,
		Description:  a.Description,
		DueDate:      a.DueDate.Unix(),
		MaxScore:     a.MaxScore,
		Attachments:  a.Attachments,
		Instructions: a.Instructions,
		IsActive:     a.IsActive,
		CreatorId:    a.CreatorID,
		CreateTime:   a.CreateTime.Unix(),
	}
}
