package dto

// OfferApplyRequest 用户申请加入团队
type OfferApplyRequest struct {
	TeamID   int64  `json:"team_id" binding:"required,min=1"`
	Position string `json:"position" binding:"required,oneof=DESIGNER BACKEND FRONTEND MANAGER"`
}

// OfferInviteRequest 队长邀请用户
type OfferInviteRequest struct {
	UserID   int64  `json:"user_id" binding:"required,min=1"`
	Position string `json:"position" binding:"required,oneof=DESIGNER BACKEND FRONTEND MANAGER"`
}

// OfferListQuery 提议分页查询
type OfferListQuery struct {
	PageQuery
	OfferedBy string `form:"offered_by" binding:"required,oneof=USER LEADER"`
	Position  string `form:"position" binding:"omitempty,oneof=DESIGNER BACKEND FRONTEND MANAGER"`
}

// OfferResponse 提议信息
type OfferResponse struct {
	ID        int64                 `json:"id"`
	Position  string                `json:"position"`
	OfferedBy string                `json:"offered_by"`
	Status    string                `json:"offer_status"`
	User      *UserSimpleResponse   `json:"user,omitempty"`
	Team      *TeamAbstractResponse `json:"team,omitempty"`
	CreatedAt string                `json:"created_at"`
}
