package assignment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Assignment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	DueDate      time.Time          `bson:"due_date" json:"dueDate"`
	MaxScore     *int64             `bson:"max_score,omitempty" json:"maxScore,omitempty"`
	Attachments  []string           `bson:"attachments" json:"attachments"`
	Instructions string             `bson:"instructions,omitempty" json:"instructions,omitempty"`
	IsActive     bool               `bson:"is_active" json:"isActive"`
	CreatorID    string             `bson:"creator_id" json:"creatorId"`
	CreateTime   time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime   time.Time          `bson:"update_time" json:"updateTime"`
}
