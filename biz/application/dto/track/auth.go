package track

type RegisterReq struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Role     string `json:"role" form:"role"`
}

type RegisterResp struct {
	Id string `json:"id"`
}

type SignInReq struct {
	Email string `json:"email" form:"email"`
}

type SignInResp struct {
	Id           string `json:"id"`
	AccessToken  string `json:"accessToken"`
	AccessExpire int64  `json:"accessExpire"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}

type UploadFilesResp struct {
	Files []string `json:"files"`
}
