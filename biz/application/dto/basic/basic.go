package basic

type UserMeta struct {
	UserId   string `json:"userId" mapstructure:"userId"`
	Role     string `json:"role" mapstructure:"role"`
	AppId    int64  `json:"appId" mapstructure:"appId"`
	DeviceId string `json:"deviceId" mapstructure:"deviceId"`
}

func (u *UserMeta) GetUserId() string {
	if u == nil {
		return ""
	}
	return u.UserId
}

func (u *UserMeta) GetRole() string {
	if u == nil {
		return ""
	}
	return u.Role
}

type PaginationOptions struct {
	Page  *int64 `json:"page,omitempty" form:"page" query:"page"`
	Limit *int64 `json:"limit,omitempty" form:"limit" query:"limit"`
}

// Pagination 分页元信息
type Pagination struct {
	CurrentPage int64 `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

type Response struct {
	Code int64  `json:"code"`
	Msg  string `json:"msg"`
}
