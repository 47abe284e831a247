package repository

import (
	"time"

	"gorm.io/gorm"

	"teamup/internal/model"
	pkgErrors "teamup/pkg/errors"
)

type TeamMemberRepository interface {
	// FindActiveByUserID 查询用户当前进行中的队员记录
	FindActiveByUserID(userID int64, opts ...QueryOption) (*model.TeamMember, error)
	FindActiveByUserAndTeam(userID, teamID int64) (*model.TeamMember, error)
	FindByUserTeamStatus(userID, teamID int64, status model.TeamMemberStatus) (*model.TeamMember, error)
	ListActiveByTeam(teamID int64, opts ...QueryOption) ([]*model.TeamMember, error)
	ListByTeamAndStatus(teamID int64, status model.TeamMemberStatus, opts ...QueryOption) ([]*model.TeamMember, error)
	// ListReviewable 查询用户在评价窗口内已完成的队员记录
	ListReviewable(userID int64, now time.Time, window time.Duration) ([]*model.TeamMember, error)
}

type teamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &teamMemberRepository{db: db}
}

func (r *teamMemberRepository) FindActiveByUserID(userID int64, opts ...QueryOption) (*model.TeamMember, error) {
	var member model.TeamMember
	query := r.db.Where("user_id = ? AND status = ?", userID, model.TeamMemberStatusActive)
	for _, opt := range opts {
		query = opt(query)
	}
	err := query.First(&member).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrCurrentTeamMissing
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询队员失败", err)
	}
	return &member, nil
}

func (r *teamMemberRepository) FindActiveByUserAndTeam(userID, teamID int64) (*model.TeamMember, error) {
	return r.FindByUserTeamStatus(userID, teamID, model.TeamMemberStatusActive)
}

func (r *teamMemberRepository) FindByUserTeamStatus(userID, teamID int64, status model.TeamMemberStatus) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.db.Where("user_id = ? AND team_id = ? AND status = ?", userID, teamID, status).
		First(&member).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrTeamMemberNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询队员失败", err)
	}
	return &member, nil
}

func (r *teamMemberRepository) ListActiveByTeam(teamID int64, opts ...QueryOption) ([]*model.TeamMember, error) {
	return r.ListByTeamAndStatus(teamID, model.TeamMemberStatusActive, opts...)
}

func (r *teamMemberRepository) ListByTeamAndStatus(teamID int64, status model.TeamMemberStatus, opts ...QueryOption) ([]*model.TeamMember, error) {
	var members []*model.TeamMember
	query := r.db.Where("team_id = ? AND status = ?", teamID, status)
	for _, opt := range opts {
		query = opt(query)
	}
	err := query.Order("is_leader DESC, created_at ASC").Find(&members).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询队员列表失败", err)
	}
	return members, nil
}

func (r *teamMemberRepository) ListReviewable(userID int64, now time.Time, window time.Duration) ([]*model.TeamMember, error) {
	var members []*model.TeamMember
	err := r.db.
		Joins("Team").
		Where("team_members.user_id = ? AND team_members.status = ?", userID, model.TeamMemberStatusComplete).
		Where("Team.completed_at >= ?", now.Add(-window)).
		Order("Team.completed_at DESC").
		Find(&members).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询可评价团队失败", err)
	}
	return members, nil
}
