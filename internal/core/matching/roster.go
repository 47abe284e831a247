package matching

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"teamup/internal/adapter/notification"
	"teamup/internal/model"
	pkgErrors "teamup/pkg/errors"
)

// Found 创建团队, 创建者在同一事务内成为队长队员
func (e *Engine) Found(ctx context.Context, leaderUserID int64, team *model.Team, position model.Position) error {
	return e.runTx(ctx, func(tx *gorm.DB) error {
		user, err := lockUser(tx, leaderUserID)
		if err != nil {
			return err
		}

		active, err := findActiveMembership(tx, leaderUserID)
		if err != nil {
			return err
		}
		if active != nil {
			return pkgErrors.ErrAlreadyMember
		}

		if err = tx.Create(team).Error; err != nil {
			return err
		}
		if err = team.Join(position); err != nil {
			return err
		}
		if err = tx.Save(team).Error; err != nil {
			return err
		}

		member := &model.TeamMember{
			TeamID:   team.ID,
			UserID:   leaderUserID,
			Position: position,
			Status:   model.TeamMemberStatusActive,
			IsLeader: true,
		}
		if err = tx.Create(member).Error; err != nil {
			return err
		}

		user.IsSeekingTeam = false
		return tx.Save(user).Error
	})
}

// Fire 队长移出队员, 释放职位名额并恢复招募
func (e *Engine) Fire(ctx context.Context, leaderUserID, memberUserID int64) error {
	var team *model.Team
	var fired *model.User
	var memberIDs []int64

	err := e.runTx(ctx, func(tx *gorm.DB) error {
		user, err := lockUser(tx, memberUserID)
		if err != nil {
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

		team, err = lockTeam(tx, leader.TeamID)
		if err != nil {
			return err
		}

		member, err := findActiveMembership(tx, memberUserID)
		if err != nil {
			return err
		}
		if member == nil || member.TeamID != team.ID {
			return pkgErrors.ErrTeamMemberNotFound
		}

		if err = member.Fire(); err != nil {
			return err
		}
		if err = tx.Save(member).Error; err != nil {
			return err
		}

		team.Leave(member.Position)
		if err = tx.Save(team).Error; err != nil {
			return err
		}

		user.IsSeekingTeam = true
		if err = tx.Save(user).Error; err != nil {
			return err
		}
		fired = user

		memberIDs, err = activeMemberUserIDs(tx, team.ID)
		return err
	})
	if err != nil {
		return err
	}

	e.logger.Info("队员已被移出",
		zap.Int64("team_id", team.ID),
		zap.Int64("user_id", memberUserID))

	e.afterCommit(func(ctx context.Context) {
		// 被移出的用户与剩余队员分别通知
		targets := append([]int64{memberUserID}, memberIDs...)
		if err := e.notifier.SendTeamEvent(ctx, notification.NotifyMemberFired, team, fired, targets); err != nil {
			e.logger.Warn("移出通知发送失败", zap.Int64("team_id", team.ID), zap.Error(err))
		}
	})
	return nil
}

// Quit 队员自行退出, 队长必须先解散团队
func (e *Engine) Quit(ctx context.Context, userID int64) error {
	var team *model.Team
	var quitter *model.User
	var memberIDs []int64

	err := e.runTx(ctx, func(tx *gorm.DB) error {
		user, err := lockUser(tx, userID)
		if err != nil {
			return err
		}

		member, err := findActiveMembership(tx, userID)
		if err != nil {
			return err
		}
		if member == nil {
			return pkgErrors.ErrCurrentTeamMissing
		}

		team, err = lockTeam(tx, member.TeamID)
		if err != nil {
			return err
		}

		if err = member.Quit(); err != nil {
			return err
		}
		if err = tx.Save(member).Error; err != nil {
			return err
		}

		team.Leave(member.Position)
		if err = tx.Save(team).Error; err != nil {
			return err
		}

		user.IsSeekingTeam = true
		if err = tx.Save(user).Error; err != nil {
			return err
		}
		quitter = user

		memberIDs, err = activeMemberUserIDs(tx, team.ID)
		return err
	})
	if err != nil {
		return err
	}

	e.afterCommit(func(ctx context.Context) {
		if err := e.notifier.SendTeamEvent(ctx, notification.NotifyMemberQuit, team, quitter, memberIDs); err != nil {
			e.logger.Warn("退出通知发送失败", zap.Int64("team_id", team.ID), zap.Error(err))
		}
	})
	return nil
}

// Complete 队长标记项目完成, 全部进行中队员转为 COMPLETE 并进入评价窗口
func (e *Engine) Complete(ctx context.Context, leaderUserID int64, projectURL string, now time.Time) error {
	var team *model.Team
	var leaderUser *model.User
	var memberIDs []int64

	err := e.runTx(ctx, func(tx *gorm.DB) error {
		user, err := lockUser(tx, leaderUserID)
		if err != nil {
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

		team, err = lockTeam(tx, leader.TeamID)
		if err != nil {
			return err
		}
		if team.CompletedAt != nil {
			return pkgErrors.ErrTeamCompleted
		}

		team.Complete(projectURL, now)
		if err = tx.Save(team).Error; err != nil {
			return err
		}

		var members []*model.TeamMember
		if err = tx.Where("team_id = ? AND status = ?", team.ID, model.TeamMemberStatusActive).
			Find(&members).Error; err != nil {
			return err
		}
		for _, m := range members {
			m.Complete()
			if err = tx.Save(m).Error; err != nil {
				return err
			}
			memberIDs = append(memberIDs, m.UserID)
			if err = tx.Model(&model.User{}).Where("id = ?", m.UserID).
				Update("is_seeking_team", true).Error; err != nil {
				return err
			}
		}

		leaderUser = user
		return nil
	})
	if err != nil {
		return err
	}

	e.logger.Info("项目已完成",
		zap.Int64("team_id", team.ID),
		zap.Int("member_cnt", len(memberIDs)))

	e.afterCommit(func(ctx context.Context) {
		if err := e.notifier.SendTeamEvent(ctx, notification.NotifyTeamCompleted, team, leaderUser, memberIDs); err != nil {
			e.logger.Warn("完成通知发送失败", zap.Int64("team_id", team.ID), zap.Error(err))
		}
	})
	return nil
}

// Disband 队长解散未完成的团队, 团队软删除, 队员转为 INCOMPLETE
func (e *Engine) Disband(ctx context.Context, leaderUserID int64) error {
	var team *model.Team
	var leaderUser *model.User
	var memberIDs []int64

	err := e.runTx(ctx, func(tx *gorm.DB) error {
		user, err := lockUser(tx, leaderUserID)
		if err != nil {
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

		team, err = lockTeam(tx, leader.TeamID)
		if err != nil {
			return err
		}
		if team.CompletedAt != nil {
			return pkgErrors.ErrTeamCompleted
		}

		var members []*model.TeamMember
		if err = tx.Where("team_id = ? AND status = ?", team.ID, model.TeamMemberStatusActive).
			Find(&members).Error; err != nil {
			return err
		}
		for _, m := range members {
			if err = m.Incomplete(); err != nil {
				return err
			}
			if err = tx.Save(m).Error; err != nil {
				return err
			}
			memberIDs = append(memberIDs, m.UserID)
			if err = tx.Model(&model.User{}).Where("id = ?", m.UserID).
				Update("is_seeking_team", true).Error; err != nil {
				return err
			}
		}

		// 解散后团队不再出现在任何列表里
		var pending []*model.Offer
		if err = tx.Where("team_id = ? AND status = ?", team.ID, model.OfferStatusPending).
			Find(&pending).Error; err != nil {
			return err
		}
		for _, o := range pending {
			if err = o.Cancel(); err != nil {
				return err
			}
			if err = tx.Save(o).Error; err != nil {
				return err
			}
		}

		team.Incomplete()
		if err = tx.Save(team).Error; err != nil {
			return err
		}
		if err = tx.Delete(team).Error; err != nil {
			return err
		}

		leaderUser = user
		return nil
	})
	if err != nil {
		return err
	}

	e.afterCommit(func(ctx context.Context) {
		if err := e.notifier.SendTeamEvent(ctx, notification.NotifyTeamDisbanded, team, leaderUser, memberIDs); err != nil {
			e.logger.Warn("解散通知发送失败", zap.Int64("team_id", team.ID), zap.Error(err))
		}
	})
	return nil
}
