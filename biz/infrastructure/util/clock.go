package util

import "time"

// Clock 统一获取当前时间，截止时间判定均依赖该接口，便于测试注入
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func NewClock() Clock {
	return realClock{}
}
