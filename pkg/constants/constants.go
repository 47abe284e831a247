package constants

import "time"

// 评分
const (
	RatingMin = 1
	RatingMax = 5
)

// ReviewWindow 项目完成后允许互评的时间窗口
const ReviewWindow = 4 * 7 * 24 * time.Hour

// 状态
const (
	StatusEnabled  int8 = 1
	StatusDisabled int8 = 0
)

// JWT 相关
const (
	JWTContextKey  = "jwt_user"
	JWTTypeAccess  = "access"
	JWTTypeRefresh = "refresh"
)

// HTTP Header
const (
	HeaderAuthorization = "Authorization"
	HeaderBearerPrefix  = "Bearer "
)
