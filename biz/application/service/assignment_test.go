package service

import (
	"context"
	"testing"
	"time"

	"assignment-track/biz/application/dto/track"
	"assignment-track/biz/infrastructure/consts"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type assignmentTestEnv struct {
	svc   *AssignmentService
	store *fakeAssignmentStore
	cache *fakeAssignmentCache
	clock *fakeClock
}

func newAssignmentTestEnv(now time.Time) *assignmentTestEnv {
	env := &assignmentTestEnv{
		store: newFakeAssignmentStore(),
		cache: newFakeAssignmentCache(),
		clock: &fakeClock{now: now},
	}
	env.svc = &AssignmentService{
		AssignmentStore: env.store,
		AssignmentCache: env.cache,
		Clock:           env.clock,
	}
	return env
}

func TestCreateAssignment(t *testing.T) {
	ctx := context.Background()

	t.Run("教师创建成功", func(t *testing.T) {
		env := newAssignmentTestEnv(baseTime)

		resp, err := env.svc.CreateAssignment(ctx, teacherMeta("teacher1"), &track.CreateAssignmentReq{
			Title:    "期中论文",
			DueDate:  baseTime.Add(24 * time.Hour).Unix(),
			MaxScore: lo.ToPtr(int64(100)),
		})
		require.NoError(t, err)
		require.NotEmpty(t, resp.AssignmentId)

		a, err := env.store.FindOne(ctx, resp.AssignmentId)
		require.NoError(t, err)
		assert.True(t, a.IsActive)
		assert.Equal(t, "teacher1", a.CreatorID)
	})

	t.Run("截止时间不晚于当前时间", func(t *testing.T) {
		env := newAssignmentTestEnv(baseTime)

		for _, due := range []time.Time{baseTime, baseTime.Add(-time.Hour)} {
			_, err := env.svc.CreateAssignment(ctx, teacherMeta("teacher1"), &track.CreateAssignmentReq{
				Title:   "过期作业",
				DueDate: due.Unix(),
			})
			assert.ErrorIs(t, err, consts.ErrInvalidDueDate)
		}
		assert.Empty(t, env.store.assignments)
	})

	t.Run("满分超出上限", func(t *testing.T) {
		env := newAssignmentTestEnv(baseTime)

		_, err := env.svc.CreateAssignment(ctx, teacherMeta("teacher1"), &track.CreateAssignmentReq{
			Title:    "期中论文",
			DueDate:  baseTime.Add(time.Hour).Unix(),
			MaxScore: lo.ToPtr(int64(consts.MaxScoreLimit + 1)),
		})
		assert.ErrorIs(t, err, consts.ErrInvalidMaxScore)
	})

	t.Run("学生不能创建作业", func(t *testing.T) {
		env := newAssignmentTestEnv(baseTime)

		_, err := env.svc.CreateAssignment(ctx, studentMeta("student1"), &track.CreateAssignmentReq{
			Title:   "期中论文",
			DueDate: baseTime.Add(time.Hour).Unix(),
		})
		assert.ErrorIs(t, err, consts.ErrForbidden)
	})
}

func TestListAssignments(t *testing.T) {
	ctx := context.Background()

	env := newAssignmentTestEnv(baseTime)
	seed := func(creatorID string, active bool, due time.Time) {
		_, err := env.svc.CreateAssignment(ctx, teacherMeta(creatorID), &track.CreateAssignmentReq{
			Title:   "作业",
			DueDate: due.Unix(),
		})
		require.NoError(t, err)
		if !active {
			for _, a := range env.store.assignments {
				if a.CreatorID == creatorID && a.DueDate.Equal(time.Unix(due.Unix(), 0)) {
					a.IsActive = false
				}
			}
		}
	}
	seed("teacher1", true, baseTime.Add(time.Hour))
	seed("teacher1", false, baseTime.Add(2*time.Hour))
	seed("teacher2", true, baseTime.Add(3*time.Hour))

	t.Run("教师看到自己创建的全部作业", func(t *testing.T) {
		resp, err := env.svc.ListAssignments(ctx, teacherMeta("teacher1"), &track.ListAssignmentsReq{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.Total)
	})

	t.Run("学生只看到启用中的作业", func(t *testing.T) {
		resp, err := env.svc.ListAssignments(ctx, studentMeta("student1"), &track.ListAssignmentsReq{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.Total)
		for _, a := range resp.Assignments {
			assert.True(t, a.IsActive)
		}
	})
}

func TestUpdateAssignment(t *testing.T) {
	ctx := context.Background()

	t.Run("创建者修改并失效缓存", func(t *testing.T) {
		env := newAssignmentTestEnv(baseTime)
		created, err := env.svc.CreateAssignment(ctx, teacherMeta("teacher1"), &track.CreateAssignmentReq{
			Title:   "期中论文",
			DueDate: baseTime.Add(time.Hour).Unix(),
		})
		require.NoError(t, err)
		require.NoError(t, env.cache.Set(ctx, created.AssignmentId, &track.AssignmentSummary{Id: created.AssignmentId}))

		resp, err := env.svc.UpdateAssignment(ctx, teacherMeta("teacher1"), &track.UpdateAssignmentReq{
			AssignmentId: created.AssignmentId,
			Title:        lo.ToPtr("期末论文"),
			IsActive:     lo.ToPtr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, "期末论文", resp.Assignment.Title)
		assert.False(t, resp.Assignment.IsActive)

		_, err = env.cache.Get(ctx, created.AssignmentId)
		assert.ErrorIs(t, err, consts.ErrNotFound)
	})

	t.Run("非创建者不能修改", func(t *testing.T) {
		env := newAssignmentTestEnv(baseTime)
		created, err := env.svc.CreateAssignment(ctx, teacherMeta("teacher1"), &track.CreateAssignmentReq{
			Title:   "期中论文",
			DueDate: baseTime.Add(time.Hour).Unix(),
		})
		require.NoError(t, err)

		_, err = env.svc.UpdateAssignment(ctx, teacherMeta("teacher2"), &track.UpdateAssignmentReq{
			AssignmentId: created.AssignmentId,
			Title:        lo.ToPtr("篡改"),
		})
		assert.ErrorIs(t, err, consts.ErrForbidden)
	})

	t.Run("作业不存在", func(t *testing.T) {
		env := newAssignmentTestEnv(baseTime)

		_, err := env.svc.UpdateAssignment(ctx, teacherMeta("teacher1"), &track.UpdateAssignmentReq{
			AssignmentId: primitive.NewObjectID().Hex(),
		})
		assert.ErrorIs(t, err, consts.ErrNotFound)
	})
}

func TestDeleteAssignment(t *testing.T) {
	ctx := context.Background()

	t.Run("创建者删除", func(t *testing.T) {
		env := newAssignmentTestEnv(baseTime)
		created, err := env.svc.CreateAssignment(ctx, teacherMeta("teacher1"), &track.CreateAssignmentReq{
			Title:   "期中论文",
			DueDate: baseTime.Add(time.Hour).Unix(),
		})
		require.NoError(t, err)

		_, err = env.svc.DeleteAssignment(ctx, teacherMeta("teacher1"), &track.DeleteAssignmentReq{
			AssignmentId: created.AssignmentId,
		})
		require.NoError(t, err)

		_, err = env.store.FindOne(ctx, created.AssignmentId)
		assert.ErrorIs(t, err, consts.ErrNotFound)
	})

	t.Run("非创建者不能删除", func(t *testing.T) {
		env := newAssignmentTestEnv(baseTime)
		created, err := env.svc.CreateAssignment(ctx, teacherMeta("teacher1"), &track.CreateAssignmentReq{
			Title:   "期中论文",
			DueDate: baseTime.Add(time.Hour).Unix(),
		})
		require.NoError(t, err)

		_, err = env.svc.DeleteAssignment(ctx, teacherMeta("teacher2"), &track.DeleteAssignmentReq{
			AssignmentId: created.AssignmentId,
		})
		assert.ErrorIs(t, err, consts.ErrForbidden)

		_, err = env.store.FindOne(ctx, created.AssignmentId)
		assert.NoError(t, err)
	})
}
