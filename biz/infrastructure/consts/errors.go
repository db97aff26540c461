package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 定义常量错误
var (
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden"))
	ErrNotAuthentication = NewErrno(codes.Code(1000), errors.New("not authentication"))
	ErrSignIn            = NewErrno(codes.Code(1001), errors.New("登录失败，请先注册或重试"))
	ErrRepeatedSignUp    = NewErrno(codes.Code(1002), errors.New("该邮箱已注册"))
	ErrCreateAssignment  = NewErrno(codes.Code(1003), errors.New("创建作业失败"))
	ErrGetAssignmentList = NewErrno(codes.Code(1004), errors.New("获取作业列表失败"))
	ErrInvalidDueDate    = NewErrno(codes.Code(1005), errors.New("截止时间必须晚于当前时间"))
	ErrInvalidMaxScore   = NewErrno(codes.Code(1006), errors.New("总分必须在0到100之间"))
	ErrOverdue           = NewErrno(codes.Code(1007), errors.New("作业已过截止时间，无法提交"))
	ErrOverdueForUpdate  = NewErrno(codes.Code(1008), errors.New("作业已过截止时间，无法修改提交"))
	ErrDuplicateSubmit   = NewErrno(codes.Code(1009), errors.New("该作业已提交过，请直接修改原提交"))
	ErrSubmit            = NewErrno(codes.Code(1010), errors.New("提交作业失败"))
	ErrInvalidScore      = NewErrno(codes.Code(1011), errors.New("分数超出有效范围"))
	ErrGrade             = NewErrno(codes.Code(1012), errors.New("批改作业失败"))
	ErrGetSubmission     = NewErrno(codes.Code(1013), errors.New("获取提交详情失败"))
	ErrAssignmentClosed  = NewErrno(codes.NotFound, errors.New("作业不存在或已关闭"))
	ErrUpload            = NewErrno(codes.Code(1015), errors.New("上传文件失败"))
)

// ErrInvalidParams 调用时错误
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("参数错误"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("无效的id "))
	ErrUpdate          = NewErrno(codes.Code(2001), errors.New("更新失败"))
)
