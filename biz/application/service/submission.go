package service

import (
	"context"
	"errors"
	"time"

	"assignment-track/biz/application/dto/basic"
	"assignment-track/biz/application/dto/track"
	"assignment-track/biz/application/policy"
	"assignment-track/biz/infrastructure/cache"
	"assignment-track/biz/infrastructure/consts"
	"assignment-track/biz/infrastructure/repository/assignment"
	"assignment-track/biz/infrastructure/repository/submission"
	"assignment-track/biz/infrastructure/util"
	"assignment-track/biz/infrastructure/util/log"
	"assignment-track/biz/infrastructure/util/page"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

type ISubmissionService interface {
	CreateSubmission(ctx context.Context, meta *basic.UserMeta, req *track.CreateSubmissionReq) (*track.CreateSubmissionResp, error)
	UpdateSubmission(ctx context.Context, meta *basic.UserMeta, req *track.UpdateSubmissionReq) (*track.UpdateSubmissionResp, error)
	GradeSubmission(ctx context.Context, meta *basic.UserMeta, req *track.GradeSubmissionReq) (*track.GradeSubmissionResp, error)
	ListSubmissions(ctx context.Context, meta *basic.UserMeta, req *track.ListSubmissionsReq) (*track.ListSubmissionsResp, error)
	ListMySubmissions(ctx context.Context, meta *basic.UserMeta, req *track.ListMySubmissionsReq) (*track.ListMySubmissionsResp, error)
}

// SubmissionService 提交生命周期：创建、修改、批改与查询
type SubmissionService struct {
	AssignmentStore AssignmentStore
	SubmissionStore SubmissionStore
	UserStore       UserStore
	AssignmentCache cache.IAssignmentCacheMapper
	Clock           util.Clock
}

var SubmissionServiceSet = wire.NewSet(
	wire.Struct(new(SubmissionService), "*"),
	wire.Bind(new(ISubmissionService), new(*SubmissionService)),
)

// deriveStatus 状态由提交时间、截止时间与批改状态推导，不允许独立设置
func deriveStatus(submittedAt, dueDate time.Time, graded bool) string {
	if graded {
		return consts.StatusGraded
	}
	if submittedAt.After(dueDate) {
		return consts.StatusLate
	}
	return consts.StatusSubmitted
}

// CreateSubmission 学生首次提交作业
func (s *SubmissionService) CreateSubmission(ctx context.Context, meta *basic.UserMeta, req *track.CreateSubmissionReq) (*track.CreateSubmissionResp, error) {
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetRole() != consts.RoleStudent {
		return nil, consts.ErrForbidden
	}

	// 作业必须存在且处于启用状态
	a, err := s.AssignmentStore.FindOne(ctx, req.AssignmentId)
	if err != nil {
		log.CtxInfo(ctx, "作业不存在: %v", err)
		return nil, consts.ErrAssignmentClosed
	}
	if !a.IsActive {
		return nil, consts.ErrAssignmentClosed
	}

	// 过了截止时间不允许创建提交，不会生成late状态的新提交
	now := s.Clock.Now()
	if now.After(a.DueDate) {
		return nil, consts.ErrOverdue
	}

	// 预检查重复提交，最终一致性由唯一索引保证
	_, err = s.SubmissionStore.FindByAssignmentAndStudent(ctx, req.AssignmentId, meta.GetUserId())
	if err == nil {
		return nil, consts.ErrDuplicateSubmit
	}
	if !errors.Is(err, consts.ErrNotFound) {
		log.CtxError(ctx, "查询已有提交失败: %v", err)
		return nil, consts.ErrSubmit
	}

	sub := &submission.Submission{
		AssignmentID: req.AssignmentId,
		StudentID:    meta.GetUserId(),
		Files:        req.Files,
		SubmittedAt:  now,
		History: []submission.HistoryEntry{{
			Action:    consts.ActionSubmitted,
			Timestamp: now,
			Details:   "Initial submission",
		}},
	}
	sub.Status = deriveStatus(sub.SubmittedAt, a.DueDate, false)

	if err = s.SubmissionStore.Insert(ctx, sub); err != nil {
		if errors.Is(err, consts.ErrDuplicateSubmit) {
			return nil, consts.ErrDuplicateSubmit
		}
		log.CtxError(ctx, "提交作业失败: %v", err)
		return nil, consts.ErrSubmit
	}

	log.CtxInfo(ctx, "作业提交成功 [SubmissionID: %s, StudentID: %s, AssignmentID: %s]",
		sub.ID.Hex(), meta.GetUserId(), req.AssignmentId)

	return &track.CreateSubmissionResp{
		Submission: toSubmissionInfo(sub),
	}, nil
}

// UpdateSubmission 学生在截止时间前修改自己的提交
func (s *SubmissionService) UpdateSubmission(ctx context.Context, meta *basic.UserMeta, req *track.UpdateSubmissionReq) (*track.UpdateSubmissionResp, error) {
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	sub, err := s.SubmissionStore.FindOne(ctx, req.SubmissionId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	if !policy.IsSubmissionOwner(sub, meta.GetUserId()) {
		return nil, consts.ErrForbidden
	}

	a, err := s.AssignmentStore.FindOne(ctx, sub.AssignmentID)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	// 截止时间判定用当前时间，与原提交是否迟交无关
	now := s.Clock.Now()
	if now.After(a.DueDate) {
		return nil, consts.ErrOverdueForUpdate
	}

	// 传入新文件则整体替换，不与旧文件合并
	if len(req.Files) > 0 {
		sub.Files = req.Files
	}
	sub.SubmittedAt = now
	// 重新提交会使已批改状态回退为submitted/late，分数保留，由历史记录说明
	sub.Status = deriveStatus(sub.SubmittedAt, a.DueDate, false)
	sub.History = append(sub.History, submission.HistoryEntry{
		Action:    consts.ActionUpdated,
		Timestamp: now,
		Details:   "Submission updated",
	})

	if err = s.SubmissionStore.Update(ctx, sub); err != nil {
		log.CtxError(ctx, "修改提交失败: %v", err)
		return nil, consts.ErrUpdate
	}

	return &track.UpdateSubmissionResp{
		Submission: toSubmissionInfo(sub),
	}, nil
}

// GradeSubmission 作业创建者批改提交
func (s *SubmissionService) GradeSubmission(ctx context.Context, meta *basic.UserMeta, req *track.GradeSubmissionReq) (*track.GradeSubmissionResp, error) {
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	sub, err := s.SubmissionStore.FindOne(ctx, req.SubmissionId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	a, err := s.AssignmentStore.FindOne(ctx, sub.AssignmentID)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	// 只有作业创建者可以批改
	if !policy.IsAssignmentOwner(a, meta.GetUserId()) {
		return nil, consts.ErrForbidden
	}

	// 分数必须提供且在[0, maxScore]内，0分同样校验
	if req.Score == nil || a.MaxScore == nil || *req.Score < 0 || *req.Score > *a.MaxScore {
		return nil, consts.ErrInvalidScore
	}

	now := s.Clock.Now()
	sub.Score = req.Score
	sub.Feedback = lo.FromPtr(req.Feedback)
	sub.GradedBy = meta.GetUserId()
	sub.GradedAt = &now
	sub.Status = deriveStatus(sub.SubmittedAt, a.DueDate, true)
	sub.History = append(sub.History, submission.HistoryEntry{
		Action:    consts.ActionGraded,
		Timestamp: now,
		Details:   "Graded with score: " + cast.ToString(*req.Score),
	})

	if err = s.SubmissionStore.Update(ctx, sub); err != nil {
		log.CtxError(ctx, "保存批改结果失败: %v", err)
		return nil, consts.ErrGrade
	}

	log.CtxInfo(ctx, "作业批改完成 [SubmissionID: %s, GradedBy: %s, Score: %d]",
		sub.ID.Hex(), meta.GetUserId(), *req.Score)

	return &track.GradeSubmissionResp{
		Submission: toSubmissionInfo(sub),
	}, nil
}

// ListSubmissions 教师端按作业查看提交列表
func (s *SubmissionService) ListSubmissions(ctx context.Context, meta *basic.UserMeta, req *track.ListSubmissionsReq) (*track.ListSubmissionsResp, error) {
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	a, err := s.AssignmentStore.FindOne(ctx, req.AssignmentId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	if !policy.CanViewSubmissions(a, meta.GetUserId(), meta.GetRole()) {
		return nil, consts.ErrForbidden
	}

	pg, pageSize := page.ParsePageOpt(req.PaginationOptions)
	subs, total, err := s.SubmissionStore.FindByAssignmentID(ctx, req.AssignmentId, lo.FromPtr(req.Status), pg, pageSize)
	if err != nil {
		log.CtxError(ctx, "获取提交列表失败: %v", err)
		return nil, consts.ErrGetSubmission
	}

	infos := lo.Map(subs, func(item *submission.Submission, _ int) *track.SubmissionInfo {
		info := toSubmissionInfo(item)
		// 补充学生姓名
		if u, err := s.UserStore.FindOne(ctx, item.StudentID); err == nil {
			info.StudentName = u.Username
		}
		return info
	})

	return &track.ListSubmissionsResp{
		Submissions: infos,
		Assignment:  toAssignmentSummary(a),
		Total:       total,
		Pagination:  page.Build(pg, pageSize, total),
	}, nil
}

// ListMySubmissions 学生端查看自己的提交列表
func (s *SubmissionService) ListMySubmissions(ctx context.Context, meta *basic.UserMeta, req *track.ListMySubmissionsReq) (*track.ListMySubmissionsResp, error) {
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetRole() != consts.RoleStudent {
		return nil, consts.ErrForbidden
	}

	pg, pageSize := page.ParsePageOpt(req.PaginationOptions)
	subs, total, err := s.SubmissionStore.FindByStudentID(ctx, meta.GetUserId(), pg, pageSize)
	if err != nil {
		log.CtxError(ctx, "获取提交列表失败: %v", err)
		return nil, consts.ErrGetSubmission
	}

	infos := lo.Map(subs, func(item *submission.Submission, _ int) *track.SubmissionInfo {
		info := toSubmissionInfo(item)
		info.Assignment = s.assignmentSummary(ctx, item.AssignmentID)
		return info
	})

	return &track.ListMySubmissionsResp{
		Submissions: infos,
		Total:       total,
		Pagination:  page.Build(pg, pageSize, total),
	}, nil
}

// assignmentSummary 联查作业摘要，优先读缓存
func (s *SubmissionService) assignmentSummary(ctx context.Context, assignmentID string) *track.AssignmentSummary {
	if sum, err := s.AssignmentCache.Get(ctx, assignmentID); err == nil {
		return sum
	}

	a, err := s.AssignmentStore.FindOne(ctx, assignmentID)
	if err != nil {
		log.CtxInfo(ctx, "联查作业信息失败: %v", err)
		return nil
	}

	sum := toAssignmentSummary(a)
	if err = s.AssignmentCache.Set(ctx, assignmentID, sum); err != nil {
		log.CtxInfo(ctx, "写入作业摘要缓存失败: %v", err)
	}
	return sum
}

func toAssignmentSummary(a *assignment.Assignment) *track.AssignmentSummary {
	return &track.AssignmentSummary{
		Id:       a.ID.Hex(),
		Title:    a.Title,
		DueDate:  a.DueDate.Unix(),
		MaxScore: a.MaxScore,
	}
}

func toSubmissionInfo(sub *submission.Submission) *track.SubmissionInfo {
	info := &track.SubmissionInfo{}
	_ = copier.Copy(info, sub)
	info.Id = sub.ID.Hex()
	info.AssignmentId = sub.AssignmentID
	info.StudentId = sub.StudentID
	info.SubmittedAt = sub.SubmittedAt.Unix()
	if sub.GradedAt != nil {
		gradedAt := sub.GradedAt.Unix()
		info.GradedAt = &gradedAt
	}
	info.History = lo.Map(sub.History, func(h submission.HistoryEntry, _ int) *track.HistoryInfo {
		return &track.HistoryInfo{
			Action:    h.Action,
			Timestamp: h.Timestamp.Unix(),
			Details:   h.Details,
		}
	})
	return info
}
