package model

import (
	pkgErrors "teamup/pkg/errors"
)

const TeamMemberTableName = "team_members"

// TeamMember 队员
// 一个用户同一时间至多有一条 ACTIVE 记录, 每个进行中的团队恰有一名队长
type TeamMember struct {
	BaseModelWithSoftDelete

	TeamID   int64            `gorm:"column:team_id;not null;index" json:"team_id"`
	UserID   int64            `gorm:"column:user_id;not null;index" json:"user_id"`
	Position Position         `gorm:"size:20;not null" json:"position"`
	Status   TeamMemberStatus `gorm:"size:10;not null;default:ACTIVE;index" json:"status"`
	IsLeader bool             `gorm:"not null;default:false" json:"is_leader"`

	// Relations
	Team *Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (TeamMember) TableName() string {
	return TeamMemberTableName
}

// IsActive 是否仍在项目中
func (m *TeamMember) IsActive() bool {
	return m.Status == TeamMemberStatusActive
}

// Complete 项目完成
func (m *TeamMember) Complete() {
	m.Status = TeamMemberStatusComplete
}

// Incomplete 团队解散
func (m *TeamMember) Incomplete() error {
	if !m.IsActive() {
		return pkgErrors.ErrTeamMemberNotFound
	}
	m.Status = TeamMemberStatusIncomplete
	return nil
}

// Fire 被队长移出, 队长本人不可被移出
func (m *TeamMember) Fire() error {
	if m.IsLeader {
		return pkgErrors.ErrNotLeader
	}
	if !m.IsActive() {
		return pkgErrors.ErrTeamMemberNotFound
	}
	m.Status = TeamMemberStatusFired
	return nil
}

// Quit 自行退出, 队长需先解散团队
func (m *TeamMember) Quit() error {
	if m.IsLeader {
		return pkgErrors.ErrLeaderCannotQuit
	}
	if !m.IsActive() {
		return pkgErrors.ErrTeamMemberNotFound
	}
	m.Status = TeamMemberStatusQuit
	return nil
}
