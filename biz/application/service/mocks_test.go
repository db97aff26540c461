package service

import (
	"context"
	"sort"
	"time"

	"assignment-track/biz/application/dto/basic"
	"assignment-track/biz/application/dto/track"
	"assignment-track/biz/infrastructure/consts"
	"assignment-track/biz/infrastructure/repository/assignment"
	"assignment-track/biz/infrastructure/repository/submission"
	"assignment-track/biz/infrastructure/repository/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 内存版存储实现，行为对齐Mongo mapper，包括唯一索引冲突的转换

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

type fakeAssignmentStore struct {
	assignments map[string]*assignment.Assignment
}

func newFakeAssignmentStore() *fakeAssignmentStore {
	return &fakeAssignmentStore{assignments: make(map[string]*assignment.Assignment)}
}

func (f *fakeAssignmentStore) Insert(_ context.Context, a *assignment.Assignment) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
		a.CreateTime = time.Now()
		a.UpdateTime = a.CreateTime
	}
	f.assignments[a.ID.Hex()] = a
	return nil
}

func (f *fakeAssignmentStore) Update(_ context.Context, a *assignment.Assignment) error {
	if _, ok := f.assignments[a.ID.Hex()]; !ok {
		return consts.ErrNotFound
	}
	f.assignments[a.ID.Hex()] = a
	return nil
}

func (f *fakeAssignmentStore) FindOne(_ context.Context, id string) (*assignment.Assignment, error) {
	a, ok := f.assignments[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return a, nil
}

func (f *fakeAssignmentStore) FindByCreator(_ context.Context, creatorID string, page, pageSize int64) ([]*assignment.Assignment, int64, error) {
	var out []*assignment.Assignment
	for _, a := range f.assignments {
		if a.CreatorID == creatorID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	total := int64(len(out))
	return paginateAssignments(out, page, pageSize), total, nil
}

func (f *fakeAssignmentStore) FindActive(_ context.Context, page, pageSize int64) ([]*assignment.Assignment, int64, error) {
	var out []*assignment.Assignment
	for _, a := range f.assignments {
		if a.IsActive {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	total := int64(len(out))
	return paginateAssignments(out, page, pageSize), total, nil
}

func (f *fakeAssignmentStore) Delete(_ context.Context, id string) error {
	delete(f.assignments, id)
	return nil
}

type fakeSubmissionStore struct {
	submissions map[string]*submission.Submission
}

func newFakeSubmissionStore() *fakeSubmissionStore {
	return &fakeSubmissionStore{submissions: make(map[string]*submission.Submission)}
}

func (f *fakeSubmissionStore) Insert(_ context.Context, s *submission.Submission) error {
	for _, existing := range f.submissions {
		if existing.AssignmentID == s.AssignmentID && existing.StudentID == s.StudentID {
			return consts.ErrDuplicateSubmit
		}
	}
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
		s.CreateTime = time.Now()
		s.UpdateTime = s.CreateTime
	}
	f.submissions[s.ID.Hex()] = s
	return nil
}

func (f *fakeSubmissionStore) Update(_ context.Context, s *submission.Submission) error {
	if _, ok := f.submissions[s.ID.Hex()]; !ok {
		return consts.ErrNotFound
	}
	f.submissions[s.ID.Hex()] = s
	return nil
}

func (f *fakeSubmissionStore) FindOne(_ context.Context, id string) (*submission.Submission, error) {
	s, ok := f.submissions[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return s, nil
}

func (f *fakeSubmissionStore) FindByAssignmentID(_ context.Context, assignmentID, status string, page, pageSize int64) ([]*submission.Submission, int64, error) {
	var out []*submission.Submission
	for _, s := range f.submissions {
		if s.AssignmentID != assignmentID {
			continue
		}
		if status != "" && s.Status != status {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	total := int64(len(out))
	return paginateSubmissions(out, page, pageSize), total, nil
}

func (f *fakeSubmissionStore) FindByStudentID(_ context.Context, studentID string, page, pageSize int64) ([]*submission.Submission, int64, error) {
	var out []*submission.Submission
	for _, s := range f.submissions {
		if s.StudentID == studentID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	total := int64(len(out))
	return paginateSubmissions(out, page, pageSize), total, nil
}

func (f *fakeSubmissionStore) FindByAssignmentAndStudent(_ context.Context, assignmentID, studentID string) (*submission.Submission, error) {
	for _, s := range f.submissions {
		if s.AssignmentID == assignmentID && s.StudentID == studentID {
			return s, nil
		}
	}
	return nil, consts.ErrNotFound
}

type fakeUserStore struct {
	users map[string]*user.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*user.User)}
}

func (f *fakeUserStore) Insert(_ context.Context, u *user.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.users[u.ID.Hex()] = u
	return nil
}

func (f *fakeUserStore) FindOne(_ context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) FindOneByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, consts.ErrNotFound
}

type fakeAssignmentCache struct {
	summaries map[string]*track.AssignmentSummary
}

func newFakeAssignmentCache() *fakeAssignmentCache {
	return &fakeAssignmentCache{summaries: make(map[string]*track.AssignmentSummary)}
}

func (f *fakeAssignmentCache) Get(_ context.Context, id string) (*track.AssignmentSummary, error) {
	sum, ok := f.summaries[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return sum, nil
}

func (f *fakeAssignmentCache) Set(_ context.Context, id string, data *track.AssignmentSummary) error {
	f.summaries[id] = data
	return nil
}

func (f *fakeAssignmentCache) Delete(_ context.Context, id string) error {
	delete(f.summaries, id)
	return nil
}

func paginateAssignments(in []*assignment.Assignment, page, pageSize int64) []*assignment.Assignment {
	start := (page - 1) * pageSize
	if start >= int64(len(in)) {
		return nil
	}
	end := start + pageSize
	if end > int64(len(in)) {
		end = int64(len(in))
	}
	return in[start:end]
}

func paginateSubmissions(in []*submission.Submission, page, pageSize int64) []*submission.Submission {
	start := (page - 1) * pageSize
	if start >= int64(len(in)) {
		return nil
	}
	end := start + pageSize
	if end > int64(len(in)) {
		end = int64(len(in))
	}
	return in[start:end]
}

func studentMeta(id string) *basic.UserMeta {
	return &basic.UserMeta{UserId: id, Role: consts.RoleStudent}
}

func teacherMeta(id string) *basic.UserMeta {
	return &basic.UserMeta{UserId: id, Role: consts.RoleTeacher}
}
