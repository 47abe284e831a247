package errors

import "fmt"

// 错误码
const (
	CodeSuccess         = 200
	CodeBadRequest      = 400
	CodeUnauthorized    = 401
	CodeForbidden       = 403
	CodeNotFound        = 404
	CodeConflict        = 409
	CodeInternalError   = 500
	CodeDatabaseError   = 501
	CodeAuthError       = 502
	CodeValidationError = 503
)

// AppError 应用错误
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// New 创建新错误
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// 预定义错误
var (
	ErrBadRequest      = New(CodeBadRequest, "请求参数错误")
	ErrUnauthorized    = New(CodeUnauthorized, "未授权")
	ErrForbidden       = New(CodeForbidden, "禁止访问")
	ErrNotFound        = New(CodeNotFound, "资源不存在")
	ErrConflict        = New(CodeConflict, "资源冲突")
	ErrInternalError   = New(CodeInternalError, "内部服务器错误")
	ErrDatabaseError   = New(CodeDatabaseError, "数据库错误")
	ErrAuthError       = New(CodeAuthError, "认证失败")
	ErrValidationError = New(CodeValidationError, "数据验证失败")

	// 通用业务错误
	ErrInvalidParams      = New(CodeBadRequest, "请求参数错误")
	ErrInvalidCredentials = New(CodeAuthError, "用户名或密码错误")
	ErrInvalidToken       = New(CodeUnauthorized, "无效的Token")
	ErrTokenExpired       = New(CodeUnauthorized, "Token已过期")
	ErrRecordNotFound     = New(CodeNotFound, "记录不存在")
	ErrRecordExists       = New(CodeConflict, "记录已存在")

	// 用户
	ErrUserNotFound   = New(CodeNotFound, "用户不存在")
	ErrUsernameExists = New(CodeConflict, "用户名已存在")
	ErrNicknameExists = New(CodeConflict, "昵称已存在")

	// 团队 / 队员
	ErrTeamNotFound       = New(CodeNotFound, "团队不存在")
	ErrTeamMemberNotFound = New(CodeNotFound, "队员不存在")
	ErrCurrentTeamMissing = New(CodeNotFound, "当前所属团队不存在")
	ErrNotLeader          = New(CodeForbidden, "需要队长权限")
	ErrLeaderCannotQuit   = New(CodeConflict, "队长无法退出团队, 请先解散团队")
	ErrTeamCompleted      = New(CodeConflict, "项目已完成, 团队不再接受变更")
	ErrAlreadyMember      = New(CodeConflict, "该用户已在进行中的团队里")
	ErrMaxCntBelowCurrent = New(CodeConflict, "最大人数不能低于当前人数")

	// 提议
	ErrOfferNotFound        = New(CodeNotFound, "提议不存在")
	ErrDuplicateOffer       = New(CodeConflict, "已存在待处理的相同提议")
	ErrPositionNowFull      = New(CodeConflict, "该职位刚刚已满员")
	ErrPositionUnavailable  = New(CodeConflict, "该职位不可用")
	ErrOfferAlreadyResolved = New(CodeConflict, "提议已处理, 无法再次操作")

	// 评价
	ErrDuplicateReview      = New(CodeConflict, "已评价过该队员")
	ErrReviewWindowExpired  = New(CodeConflict, "评价期限已过")
	ErrReviewNotReviewable  = New(CodeConflict, "不在可评价的团队中")
	ErrReviewSelfNotAllowed = New(CodeBadRequest, "不能评价自己")
)
