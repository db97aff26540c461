package submission

import (
	"context"
	"errors"
	"time"

	"assignment-track/biz/infrastructure/config"
	"assignment-track/biz/infrastructure/consts"
	"assignment-track/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixSubmissionCacheKey = "cache:submission"
	SubmissionCollectionName = "submission"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewSubmissionMongoMapper collection: %s", SubmissionCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, SubmissionCollectionName, config.Cache)

	// (assignment_id, student_id) 唯一索引，每个学生每个作业至多一条提交
	_, err := conn.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{
			{Key: consts.AssignmentID, Value: 1},
			{Key: consts.StudentID, Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Error("创建提交唯一索引失败: %v", err)
	}

	return &MongoMapper{
		conn: conn,
	}
}

// Insert 插入提交，唯一索引冲突转换为 ErrDuplicateSubmit
func (m *MongoMapper) Insert(ctx context.Context, s *Submission) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
		s.CreateTime = time.Now()
		s.UpdateTime = s.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, s)
	if mongo.IsDuplicateKeyError(err) {
		return consts.ErrDuplicateSubmit
	}
	return err
}

func (m *MongoMapper) Update(ctx context.Context, s *Submission) error {
	s.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, s.ID, bson.M{"$set": s})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var s Submission
	err = m.conn.FindOneNoCache(ctx, &s, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &s, nil
}

// FindByAssignmentID 按作业分页查找提交，按提交时间降序，可选按状态过滤
func (m *MongoMapper) FindByAssignmentID(ctx context.Context, assignmentID, status string, page, pageSize int64) ([]*Submission, int64, error) {
	var submissions []*Submission
	filter := bson.M{consts.AssignmentID: assignmentID}
	if status != "" {
		filter[consts.Status] = status
	}

	// 获取总数
	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	// 分页查询
	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &submissions, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{consts.SubmittedAt: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return submissions, total, nil
}

// FindByStudentID 按学生分页查找提交，按提交时间降序
func (m *MongoMapper) FindByStudentID(ctx context.Context, studentID string, page, pageSize int64) ([]*Submission, int64, error) {
	var submissions []*Submission
	filter := bson.M{consts.StudentID: studentID}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &submissions, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{consts.SubmittedAt: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return submissions, total, nil
}

func (m *MongoMapper) FindByAssignmentAndStudent(ctx context.Context, assignmentID, studentID string) (*Submission, error) {
	var s Submission
	filter := bson.M{
		consts.AssignmentID: assignmentID,
		consts.StudentID:    studentID,
	}

	err := m.conn.FindOneNoCache(ctx, &s, filter)
	switch {
	case err == nil:
		return &s, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}
