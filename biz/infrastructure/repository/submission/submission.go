package submission

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HistoryEntry 提交的操作审计记录，只追加不删除
type HistoryEntry struct {
	Action    string    `bson:"action" json:"action"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	Details   string    `bson:"details,omitempty" json:"details,omitempty"`
}

type Submission struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssignmentID string             `bson:"assignment_id" json:"assignmentId"`
	StudentID    string             `bson:"student_id" json:"studentId"`
	Files        []string           `bson:"files" json:"files"`
	SubmittedAt  time.Time          `bson:"submitted_at" json:"submittedAt"`
	Status       string             `bson:"status" json:"status"`
	Score        *int64             `bson:"score,omitempty" json:"score,omitempty"`
	Feedback     string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	GradedBy     string             `bson:"graded_by,omitempty" json:"gradedBy,omitempty"`
	GradedAt     *time.Time         `bson:"graded_at,omitempty" json:"gradedAt,omitempty"`
	History      []HistoryEntry     `bson:"history" json:"history"`
	CreateTime   time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime   time.Time          `bson:"update_time" json:"updateTime"`
}
