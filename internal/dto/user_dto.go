package dto

// UserUpdateRequest 更新个人资料请求
type UserUpdateRequest struct {
	Nickname      *string  `json:"nickname" binding:"omitempty,min=2,max=8"`
	Position      *string  `json:"position" binding:"omitempty,oneof=DESIGNER BACKEND FRONTEND MANAGER"`
	Introduction  *string  `json:"introduction" binding:"omitempty,max=200"`
	Skills        []string `json:"skills" binding:"omitempty,dive,max=20"`
	IsSeekingTeam *bool    `json:"is_seeking_team"`
}

// UserResponse 用户信息
type UserResponse struct {
	ID            int64    `json:"id"`
	Username      string   `json:"username"`
	Nickname      string   `json:"nickname"`
	Position      *string  `json:"position,omitempty"`
	Introduction  *string  `json:"introduction,omitempty"`
	Skills        []string `json:"skills"`
	Rating        float64  `json:"rating"`
	ReviewCnt     int      `json:"review_cnt"`
	IsSeekingTeam bool     `json:"is_seeking_team"`
	CreatedAt     string   `json:"created_at"`
}

// UserSimpleResponse 用户精简信息
type UserSimpleResponse struct {
	ID       int64   `json:"id"`
	Nickname string  `json:"nickname"`
	Position *string `json:"position,omitempty"`
	Rating   float64 `json:"rating"`
}
