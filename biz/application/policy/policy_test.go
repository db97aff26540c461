package policy

import (
	"testing"

	"assignment-track/biz/infrastructure/consts"
	"assignment-track/biz/infrastructure/repository/assignment"
	"assignment-track/biz/infrastructure/repository/submission"

	"github.com/stretchr/testify/assert"
)

func TestIsAssignmentOwner(t *testing.T) {
	a := &assignment.Assignment{CreatorID: "teacher1"}

	assert.True(t, IsAssignmentOwner(a, "teacher1"))
	assert.False(t, IsAssignmentOwner(a, "teacher2"))
	assert.False(t, IsAssignmentOwner(a, ""))
}

func TestIsSubmissionOwner(t *testing.T) {
	sub := &submission.Submission{StudentID: "student1"}

	assert.True(t, IsSubmissionOwner(sub, "student1"))
	assert.False(t, IsSubmissionOwner(sub, "student2"))
}

func TestCanViewSubmissions(t *testing.T) {
	a := &assignment.Assignment{CreatorID: "teacher1"}

	tests := []struct {
		name   string
		userID string
		role   string
		want   bool
	}{
		{"创建者教师可以查看", "teacher1", consts.RoleTeacher, true},
		{"其他教师不能查看", "teacher2", consts.RoleTeacher, false},
		{"学生即使ID相同也不能查看", "teacher1", consts.RoleStudent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanViewSubmissions(a, tt.userID, tt.role))
		})
	}
}
