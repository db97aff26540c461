package track

import "assignment-track/biz/application/dto/basic"

type CreateAssignmentReq struct {
	Title        string   `json:"title" form:"title"`
	Description  string   `json:"description" form:"description"`
	DueDate      int64    `json:"dueDate" form:"dueDate"` // unix秒
	MaxScore     *int64   `json:"maxScore,omitempty" form:"maxScore"`
	Attachments  []string `json:"attachments,omitempty" form:"attachments"`
	Instructions *string  `json:"instructions,omitempty" form:"instructions"`
}

type CreateAssignmentResp struct {
	AssignmentId string `json:"assignmentId"`
}

type AssignmentInfo struct {
	Id           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	DueDate      int64    `json:"dueDate"`
	MaxScore     *int64   `json:"maxScore,omitempty"`
	Attachments  []string `json:"attachments,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
	IsActive     bool     `json:"isActive"`
	CreatorId    string   `json:"creatorId"`
	CreateTime   int64    `json:"createTime"`
}

// AssignmentSummary 提交列表联查展示的最小作业信息
type AssignmentSummary struct {
	Id       string `json:"id"`
	Title    string `json:"title"`
	DueDate  int64  `json:"dueDate"`
	MaxScore *int64 `json:"maxScore,omitempty"`
}

type ListAssignmentsReq struct {
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty" form:"paginationOptions"`
}

type ListAssignmentsResp struct {
	Assignments []*AssignmentInfo `json:"assignments"`
	Total       int64             `json:"total"`
	Pagination  *basic.Pagination `json:"pagination"`
}

type GetAssignmentReq struct {
	AssignmentId string `json:"assignmentId" form:"assignmentId" query:"assignmentId"`
}

type GetAssignmentResp struct {
	Assignment *AssignmentInfo `json:"assignment"`
}

type UpdateAssignmentReq struct {
	AssignmentId string   `json:"assignmentId" form:"assignmentId"`
	Title        *string  `json:"title,omitempty" form:"title"`
	Description  *string  `json:"description,omitempty" form:"description"`
	DueDate      *int64   `json:"dueDate,omitempty" form:"dueDate"`
	MaxScore     *int64   `json:"maxScore,omitempty" form:"maxScore"`
	IsActive     *bool    `json:"isActive,omitempty" form:"isActive"`
	Instructions *string  `json:"instructions,omitempty" form:"instructions"`
	Attachments  []string `json:"attachments,omitempty" form:"attachments"`
}

type UpdateAssignmentResp struct {
	Assignment *AssignmentInfo `json:"assignment"`
}

type DeleteAssignmentReq struct {
	AssignmentId string `json:"assignmentId" form:"assignmentId" query:"assignmentId"`
}
