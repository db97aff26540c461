package track

import "assignment-track/biz/application/dto/basic"

type HistoryInfo struct {
	Action    string `json:"action"`
	Timestamp int64  `json:"timestamp"`
	Details   string `json:"details,omitempty"`
}

type SubmissionInfo struct {
	Id           string             `json:"id"`
	AssignmentId string             `json:"assignmentId"`
	StudentId    string             `json:"studentId"`
	StudentName  string             `json:"studentName,omitempty"`
	Files        []string           `json:"files"`
	SubmittedAt  int64              `json:"submittedAt"`
	Status       string             `json:"status"`
	Score        *int64             `json:"score,omitempty"`
	Feedback     string             `json:"feedback,omitempty"`
	GradedBy     string             `json:"gradedBy,omitempty"`
	GradedAt     *int64             `json:"gradedAt,omitempty"`
	History      []*HistoryInfo     `json:"history"`
	Assignment   *AssignmentSummary `json:"assignment,omitempty"`
}

type CreateSubmissionReq struct {
	AssignmentId string   `json:"assignmentId" form:"assignmentId"`
	Files        []string `json:"files" form:"files"`
}

type CreateSubmissionResp struct {
	Submission *SubmissionInfo `json:"submission"`
}

type UpdateSubmissionReq struct {
	SubmissionId string   `json:"submissionId" form:"submissionId"`
	Files        []string `json:"files,omitempty" form:"files"`
}

type UpdateSubmissionResp struct {
	Submission *SubmissionInfo `json:"submission"`
}

type GradeSubmissionReq struct {
	SubmissionId string  `json:"submissionId" form:"submissionId"`
	Score        *int64  `json:"score" form:"score"`
	Feedback     *string `json:"feedback,omitempty" form:"feedback"`
}

type GradeSubmissionResp struct {
	Submission *SubmissionInfo `json:"submission"`
}

type ListSubmissionsReq struct {
	AssignmentId      string                   `json:"assignmentId" form:"assignmentId" query:"assignmentId"`
	Status            *string                  `json:"status,omitempty" form:"status" query:"status"`
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty" form:"paginationOptions"`
}

type ListSubmissionsResp struct {
	Submissions []*SubmissionInfo  `json:"submissions"`
	Assignment  *AssignmentSummary `json:"assignment"`
	Total       int64              `json:"total"`
	Pagination  *basic.Pagination  `json:"pagination"`
}

type ListMySubmissionsReq struct {
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty" form:"paginationOptions"`
}

type ListMySubmissionsResp struct {
	Submissions []*SubmissionInfo `json:"submissions"`
	Total       int64             `json:"total"`
	Pagination  *basic.Pagination `json:"pagination"`
}
