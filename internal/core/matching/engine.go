package matching

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"teamup/internal/adapter/notification"
	"teamup/internal/model"
	pkgErrors "teamup/pkg/errors"
)

// Engine 撮合引擎
// 名额校验 + 计数变更 + 队员写入 + 提议状态流转必须在同一事务内完成,
// 以团队行锁作为每个团队的串行化点, 以用户行锁保证单一进行中团队约束。
// 锁顺序固定为 用户 -> 团队, 避免交叉死锁。
type Engine struct {
	db       *gorm.DB
	logger   *zap.Logger
	notifier notification.Notifier
}

// NewEngine 创建撮合引擎
func NewEngine(db *gorm.DB, logger *zap.Logger, notifier notification.Notifier) *Engine {
	return &Engine{
		db:       db,
		logger:   logger,
		notifier: notifier,
	}
}

// afterCommit 事务提交后异步执行, 失败只记录日志
func (e *Engine) afterCommit(fn func(ctx context.Context)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		fn(ctx)
	}()
}

// runTx 执行事务, 基础设施错误自动重试一次
func (e *Engine) runTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	err := e.db.WithContext(ctx).Transaction(fn)
	if err == nil {
		return nil
	}
	if _, ok := err.(*pkgErrors.AppError); ok {
		return err
	}

	e.logger.Warn("撮合事务失败, 重试一次", zap.Error(err))
	if err = e.db.WithContext(ctx).Transaction(fn); err == nil {
		return nil
	}
	if _, ok := err.(*pkgErrors.AppError); ok {
		return err
	}
	return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "撮合事务失败", err)
}

// lockUser 行锁加载用户
func lockUser(tx *gorm.DB, userID int64) (*model.User, error) {
	var user model.User
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// lockTeam 行锁加载团队
func lockTeam(tx *gorm.DB, teamID int64) (*model.Team, error) {
	var team model.Team
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&team, teamID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// lockOffer 行锁加载提议
func lockOffer(tx *gorm.DB, offerID int64) (*model.Offer, error) {
	var offer model.Offer
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&offer, offerID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrOfferNotFound
		}
		return nil, err
	}
	return &offer, nil
}

// findActiveMembership 用户当前进行中的队员记录, 无则返回 nil
func findActiveMembership(tx *gorm.DB, userID int64) (*model.TeamMember, error) {
	var member model.TeamMember
	err := tx.Where("user_id = ? AND status = ?", userID, model.TeamMemberStatusActive).
		First(&member).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// requireLeader 用户在指定团队中必须是队长
func requireLeader(tx *gorm.DB, userID, teamID int64) (*model.TeamMember, error) {
	member, err := findActiveMembership(tx, userID)
	if err != nil {
		return nil, err
	}
	if member == nil || member.TeamID != teamID {
		return nil, pkgErrors.ErrCurrentTeamMissing
	}
	if !member.IsLeader {
		return nil, pkgErrors.ErrNotLeader
	}
	return member, nil
}

// validateOfferable 创建提议前的共同校验: 团队未完成且职位有空缺, 无重复待处理提议
func validateOfferable(tx *gorm.DB, team *model.Team, userID int64, position model.Position, offeredBy model.OfferedBy) error {
	if team.CompletedAt != nil {
		return pkgErrors.ErrTeamCompleted
	}
	if team.IsPositionFull(position) {
		return pkgErrors.ErrPositionUnavailable
	}

	var count int64
	err := tx.Model(&model.Offer{}).
		Where("user_id = ? AND team_id = ? AND position = ? AND offered_by = ? AND status = ?",
			userID, team.ID, position, offeredBy, model.OfferStatusPending).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return pkgErrors.ErrDuplicateOffer
	}
	return nil
}

// Apply 用户申请加入团队, USER 方向提议
func (e *Engine) Apply(ctx context.Context, userID, teamID int64, position model.Position) (*model.Offer, error) {
	var offer *model.Offer
	var team *model.Team
	var leaderUserID int64

	err := e.runTx(ctx, func(tx *gorm.DB) error {
		if _, err := lockUser(tx, userID); err != nil {
			return err
		}

		// 已在进行中的团队里不允许再申请
		active, err := findActiveMembership(tx, userID)
		if err != nil {
			return err
		}
		if active != nil {
			return pkgErrors.ErrAlreadyMember
		}

		team, err = lockTeam(tx, teamID)
		if err != nil {
			return err
		}
		if err = validateOfferable(tx, team, userID, position, model.OfferedByUser); err != nil {
			return err
		}

		// 通知接收方: 队长
		var leader model.TeamMember
		if err = tx.Where("team_id = ? AND status = ? AND is_leader = ?",
			teamID, model.TeamMemberStatusActive, true).First(&leader).Error; err != nil {
			return err
		}
		leaderUserID = leader.UserID

		offer = &model.Offer{
			UserID:    userID,
			TeamID:    teamID,
			Position:  position,
			OfferedBy: model.OfferedByUser,
			Status:    model.OfferStatusPending,
		}
		return tx.Create(offer).Error
	})
	if err != nil {
		return nil, err
	}

	e.afterCommit(func(ctx context.Context) {
		if err := e.notifier.SendOfferReceived(ctx, offer, team, []int64{leaderUserID}); err != nil {
			e.logger.Warn("提议通知发送失败", zap.Int64("offer_id", offer.ID), zap.Error(err))
		}
	})
	return offer, nil
}

// Invite 队长邀请用户加入团队, LEADER 方向提议
func (e *Engine) Invite(ctx context.Context, leaderUserID, userID int64, position model.Position) (*model.Offer, error) {
	var offer *model.Offer
	var team *model.Team

	err := e.runTx(ctx, func(tx *gorm.DB) error {
		// 先锁队长行, 与解散/完成互斥, 邀请不会基于过期的队长身份发出
		if _, err := lockUser(tx, leaderUserID); err != nil {
			return err
		}

		leader, err := findActiveMembership(tx, leaderUserID)
		if err != nil {
			return err
		}
		if leader == nil {
			return pkgErrors.ErrCurrentTeamMissing
		}
		if !leader.IsLeader {
			return pkgErrors.ErrNotLeader
		}

		if _, err = lockUser(tx, userID); err != nil {
			return err
		}

		// 被邀请人不能已在进行中的团队里
		active, err := findActiveMembership(tx, userID)
		if err != nil {
			return err
		}
		if active != nil {
			return pkgErrors.ErrAlreadyMember
		}

		team, err = lockTeam(tx, leader.TeamID)
		if err != nil {
			return err
		}
		if err = validateOfferable(tx, team, userID, position, model.OfferedByLeader); err != nil {
			return err
		}

		offer = &model.Offer{
			UserID:    userID,
			TeamID:    team.ID,
			Position:  position,
			OfferedBy: model.OfferedByLeader,
			Status:    model.OfferStatusPending,
		}
		return tx.Create(offer).Error
	})
	if err != nil {
		return nil, err
	}

	e.afterCommit(func(ctx context.Context) {
		if err := e.notifier.SendOfferReceived(ctx, offer, team, []int64{userID}); err != nil {
			e.logger.Warn("提议通知发送失败", zap.Int64("offer_id", offer.ID), zap.Error(err))
		}
	})
	return offer, nil
}

// Accept 接受提议
// USER 方向由队长接受, LEADER 方向由被邀请用户接受。
// 接受时必须重新校验名额: 创建提议后名额可能已被其他提议消耗。
func (e *Engine) Accept(ctx context.Context, actorUserID, offerID int64) error {
	var team *model.Team
	var joined *model.User
	var memberIDs []int64

	err := e.runTx(ctx, func(tx *gorm.DB) error {
		offer, err := lockOffer(tx, offerID)
		if err != nil {
			return err
		}
		if !offer.IsPending() {
			return pkgErrors.ErrOfferAlreadyResolved
		}
		if err = e.validateDecider(tx, offer, actorUserID); err != nil {
			return err
		}

		user, err := lockUser(tx, offer.UserID)
		if err != nil {
			return err
		}

		// 同一用户同一时间只能在一个进行中的团队
		active, err := findActiveMembership(tx, offer.UserID)
		if err != nil {
			return err
		}
		if active != nil {
			return pkgErrors.ErrAlreadyMember
		}

		team, err = lockTeam(tx, offer.TeamID)
		if err != nil {
			return err
		}

		// 名额被抢占时报 PositionNowFull 并回滚, 提议保持待处理供调用方重试或撤回
		if err = team.Join(offer.Position); err != nil {
			return err
		}

		if err = offer.Accept(); err != nil {
			return err
		}
		if err = tx.Save(offer).Error; err != nil {
			return err
		}

		member := &model.TeamMember{
			TeamID:   offer.TeamID,
			UserID:   offer.UserID,
			Position: offer.Position,
			Status:   model.TeamMemberStatusActive,
			IsLeader: false,
		}
		if err = tx.Create(member).Error; err != nil {
			return err
		}
		if err = tx.Save(team).Error; err != nil {
			return err
		}

		// 撤回该用户与同一团队之间的其他待处理提议; 对其他团队的提议保持不动
		var others []*model.Offer
		if err = tx.Where("user_id = ? AND team_id = ? AND status = ? AND id <> ?",
			offer.UserID, offer.TeamID, model.OfferStatusPending, offer.ID).
			Find(&others).Error; err != nil {
			return err
		}
		for _, o := range others {
			if err = o.Cancel(); err != nil {
				return err
			}
			if err = tx.Save(o).Error; err != nil {
				return err
			}
		}

		user.IsSeekingTeam = false
		if err = tx.Save(user).Error; err != nil {
			return err
		}
		joined = user

		memberIDs, err = activeMemberUserIDs(tx, team.ID)
		return err
	})
	if err != nil {
		return err
	}

	e.logger.Info("提议已接受",
		zap.Int64("offer_id", offerID),
		zap.Int64("team_id", team.ID),
		zap.Int64("user_id", joined.ID))

	e.afterCommit(func(ctx context.Context) {
		if err := e.notifier.SendTeamEvent(ctx, notification.NotifyMemberJoined, team, joined, memberIDs); err != nil {
			e.logger.Warn("入队通知发送失败", zap.Int64("team_id", team.ID), zap.Error(err))
		}
	})
	return nil
}

// Decline 拒绝提议, 由接收方执行
func (e *Engine) Decline(ctx context.Context, actorUserID, offerID int64) error {
	return e.resolve(ctx, actorUserID, offerID, false)
}

// Cancel 撤回提议, 由发起方执行
func (e *Engine) Cancel(ctx context.Context, actorUserID, offerID int64) error {
	return e.resolve(ctx, actorUserID, offerID, true)
}

// resolve 拒绝/撤回的共同路径, 不产生队员
func (e *Engine) resolve(ctx context.Context, actorUserID, offerID int64, byProposer bool) error {
	return e.runTx(ctx, func(tx *gorm.DB) error {
		offer, err := lockOffer(tx, offerID)
		if err != nil {
			return err
		}
		if !offer.IsPending() {
			return pkgErrors.ErrOfferAlreadyResolved
		}

		if byProposer {
			if err = e.validateProposer(tx, offer, actorUserID); err != nil {
				return err
			}
			err = offer.Cancel()
		} else {
			if err = e.validateDecider(tx, offer, actorUserID); err != nil {
				return err
			}
			err = offer.Decline()
		}
		if err != nil {
			return err
		}
		return tx.Save(offer).Error
	})
}

// validateDecider 校验接收方: USER 方向的接收方是队长, LEADER 方向的接收方是用户本人
func (e *Engine) validateDecider(tx *gorm.DB, offer *model.Offer, actorUserID int64) error {
	switch offer.OfferedBy {
	case model.OfferedByUser:
		_, err := requireLeader(tx, actorUserID, offer.TeamID)
		return err
	default:
		if offer.UserID != actorUserID {
			return pkgErrors.ErrForbidden
		}
		return nil
	}
}

// validateProposer 校验发起方: USER 方向的发起方是用户本人, LEADER 方向的发起方是队长
func (e *Engine) validateProposer(tx *gorm.DB, offer *model.Offer, actorUserID int64) error {
	switch offer.OfferedBy {
	case model.OfferedByUser:
		if offer.UserID != actorUserID {
			return pkgErrors.ErrForbidden
		}
		return nil
	default:
		_, err := requireLeader(tx, actorUserID, offer.TeamID)
		return err
	}
}

// activeMemberUserIDs 团队进行中队员的用户ID
func activeMemberUserIDs(tx *gorm.DB, teamID int64) ([]int64, error) {
	var ids []int64
	err := tx.Model(&model.TeamMember{}).
		Where("team_id = ? AND status = ?", teamID, model.TeamMemberStatusActive).
		Pluck("user_id", &ids).Error
	return ids, err
}
