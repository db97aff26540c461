package consts

var PageSize int64 = 10

// 数据库相关
const (
	ID           = "_id"
	AssignmentID = "assignment_id"
	StudentID    = "student_id"
	CreatorID    = "creator_id"
	Status       = "status"
	SubmittedAt  = "submitted_at"
	DueDate      = "due_date"
	IsActive     = "is_active"
	CreateTime   = "create_time"
	Email        = "email"
)

// 用户角色
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// 提交状态
const (
	StatusSubmitted = "submitted"
	StatusLate      = "late"
	StatusGraded    = "graded"
)

// 历史记录动作
const (
	ActionSubmitted = "Submitted"
	ActionUpdated   = "Updated"
	ActionGraded    = "Graded"
)

// 默认值
const (
	MaxScoreLimit = 100
	AppId         = 14
)
