package model

// Position 职位
type Position string

const (
	PositionDesigner Position = "DESIGNER" // 设计
	PositionBackend  Position = "BACKEND"  // 后端
	PositionFrontend Position = "FRONTEND" // 前端
	PositionManager  Position = "MANAGER"  // 管理/PM
)

// AllPositions 全部职位
var AllPositions = []Position{PositionDesigner, PositionBackend, PositionFrontend, PositionManager}

// Valid 是否为合法职位
func (p Position) Valid() bool {
	switch p {
	case PositionDesigner, PositionBackend, PositionFrontend, PositionManager:
		return true
	}
	return false
}

// TeamMemberStatus 队员生命周期状态
type TeamMemberStatus string

const (
	TeamMemberStatusActive     TeamMemberStatus = "ACTIVE"     // 项目进行中
	TeamMemberStatusComplete   TeamMemberStatus = "COMPLETE"   // 项目已完成
	TeamMemberStatusIncomplete TeamMemberStatus = "INCOMPLETE" // 团队解散, 项目未完成
	TeamMemberStatusFired      TeamMemberStatus = "FIRED"      // 被队长移出
	TeamMemberStatusQuit       TeamMemberStatus = "QUIT"       // 自行退出
)

// OfferStatus 提议状态
// 待处理之外均为终态, 不允许回退
type OfferStatus string

const (
	OfferStatusPending   OfferStatus = "PENDING"   // 待处理
	OfferStatusAccepted  OfferStatus = "ACCEPTED"  // 已接受
	OfferStatusDeclined  OfferStatus = "DECLINED"  // 已拒绝
	OfferStatusCancelled OfferStatus = "CANCELLED" // 已取消
)

// OfferedBy 提议方向
type OfferedBy string

const (
	OfferedByUser   OfferedBy = "USER"   // 用户申请加入团队
	OfferedByLeader OfferedBy = "LEADER" // 队长邀请用户
)

// Valid 是否为合法提议方向
func (o OfferedBy) Valid() bool {
	return o == OfferedByUser || o == OfferedByLeader
}
