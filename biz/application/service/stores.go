package service

import (
	"context"

	"assignment-track/biz/infrastructure/repository/assignment"
	"assignment-track/biz/infrastructure/repository/submission"
	"assignment-track/biz/infrastructure/repository/user"
)

// 服务依赖的存储接口，由对应的Mongo mapper实现，测试时可注入内存实现

type AssignmentStore interface {
	Insert(ctx context.Context, a *assignment.Assignment) error
	Update(ctx context.Context, a *assignment.Assignment) error
	FindOne(ctx context.Context, id string) (*assignment.Assignment, error)
	FindByCreator(ctx context.Context, creatorID string, page, pageSize int64) ([]*assignment.Assignment, int64, error)
	FindActive(ctx context.Context, page, pageSize int64) ([]*assignment.Assignment, int64, error)
	Delete(ctx context.Context, id string) error
}

type SubmissionStore interface {
	Insert(ctx context.Context, s *submission.Submission) error
	Update(ctx context.Context, s *submission.Submission) error
	FindOne(ctx context.Context, id string) (*submission.Submission, error)
	FindByAssignmentID(ctx context.Context, assignmentID, status string, page, pageSize int64) ([]*submission.Submission, int64, error)
	FindByStudentID(ctx context.Context, studentID string, page, pageSize int64) ([]*submission.Submission, int64, error)
	FindByAssignmentAndStudent(ctx context.Context, assignmentID, studentID string) (*submission.Submission, error)
}

type UserStore interface {
	Insert(ctx context.Context, u *user.User) error
	FindOne(ctx context.Context, id string) (*user.User, error)
	FindOneByEmail(ctx context.Context, email string) (*user.User, error)
}
