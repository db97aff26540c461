package policy

import (
	"assignment-track/biz/infrastructure/consts"
	"assignment-track/biz/infrastructure/repository/assignment"
	"assignment-track/biz/infrastructure/repository/submission"
)

// 纯判定函数，调用方传入已加载的实体，这里不做任何查询

// IsAssignmentOwner 是否为作业创建者
func IsAssignmentOwner(a *assignment.Assignment, userID string) bool {
	return a != nil && userID != "" && a.CreatorID == userID
}

// IsSubmissionOwner 是否为提交的学生本人
func IsSubmissionOwner(s *submission.Submission, userID string) bool {
	return s != nil && userID != "" && s.StudentID == userID
}

// CanViewSubmissions 能否查看某作业的全部提交
// 学生查看自己的提交走单独的列表接口，不经过该判定
func CanViewSubmissions(a *assignment.Assignment, userID, role string) bool {
	return role == consts.RoleTeacher && IsAssignmentOwner(a, userID)
}
