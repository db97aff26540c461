package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"assignment-track/biz/application/dto/track"
	"assignment-track/biz/infrastructure/config"
	"assignment-track/biz/infrastructure/redis"

	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	assignmentSummaryCachePrefix = "assignment_summary"
	assignmentSummaryCacheExpire = 300 // 5分钟
)

type IAssignmentCacheMapper interface {
	Get(ctx context.Context, id string) (*track.AssignmentSummary, error)
	Set(ctx context.Context, id string, data *track.AssignmentSummary) error
	Delete(ctx context.Context, id string) error
}

// AssignmentCacheMapper 作业摘要缓存，学生端提交列表联查作业信息时使用
type AssignmentCacheMapper struct {
	rds *gozero_redis.Redis
}

func NewAssignmentCacheMapper(config *config.Config) *AssignmentCacheMapper {
	return &AssignmentCacheMapper{
		rds: redis.GetRedis(config),
	}
}

// Get 从缓存获取作业摘要
func (m *AssignmentCacheMapper) Get(ctx context.Context, id string) (*track.AssignmentSummary, error) {
	cacheKey := m.buildCacheKey(id)

	cachedData, err := m.rds.GetCtx(ctx, cacheKey)
	if err != nil {
		return nil, err
	}

	if cachedData == "" {
		return nil, fmt.Errorf("cache miss")
	}

	var result track.AssignmentSummary
	if err := json.Unmarshal([]byte(cachedData), &result); err != nil {
		return nil, fmt.Errorf("unmarshal cached data failed: %w", err)
	}

	return &result, nil
}

// Set 将作业摘要存入缓存
func (m *AssignmentCacheMapper) Set(ctx context.Context, id string, data *track.AssignmentSummary) error {
	cacheKey := m.buildCacheKey(id)

	resultBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal data failed: %w", err)
	}

	return m.rds.SetexCtx(ctx, cacheKey, string(resultBytes), assignmentSummaryCacheExpire)
}

// Delete 删除缓存，作业更新或删除后调用
func (m *AssignmentCacheMapper) Delete(ctx context.Context, id string) error {
	cacheKey := m.buildCacheKey(id)
	_, err := m.rds.DelCtx(ctx, cacheKey)
	return err
}

// buildCacheKey 构造缓存key
func (m *AssignmentCacheMapper) buildCacheKey(id string) string {
	return fmt.Sprintf("%s:%s", assignmentSummaryCachePrefix, id)
}
