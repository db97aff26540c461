package adaptor

import (
	"context"
	"net/http"

	"assignment-track/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// 业务自定义错误码
const (
	codeNotAuthentication = 1000
)

// PostProcess 统一响应处理，Errno错误转换为HTTP状态码和JSON
func PostProcess(ctx context.Context, c *app.RequestContext, resp any, err error) {
	if err == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	log.CtxInfo(ctx, "request fail, err=%v", err)
	s, _ := status.FromError(err)
	c.JSON(httpCode(s.Code()), map[string]any{
		"code":    uint32(s.Code()),
		"message": s.Message(),
	})
}

func httpCode(code codes.Code) int {
	switch code {
	case codes.NotFound:
		return http.StatusNotFound
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unknown, codes.Internal:
		return http.StatusInternalServerError
	case codeNotAuthentication:
		return http.StatusUnauthorized
	default:
		// 其余业务错误码按请求错误处理
		return http.StatusBadRequest
	}
}
