package model

import (
	"time"

	"gorm.io/datatypes"
)

const UserTableName = "users"

// User 用户模型
type User struct {
	BaseStatus
	Username      string                         `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Password      string                         `gorm:"size:255;not null" json:"-"` // 不返回到前端
	Nickname      string                         `gorm:"size:50;not null;uniqueIndex" json:"nickname"`
	Position      *Position                      `gorm:"size:20" json:"position,omitempty"`
	Introduction  *string                        `gorm:"size:200" json:"introduction,omitempty"`
	Skills        datatypes.JSONSlice[string]    `gorm:"column:skills" json:"skills"`
	Rating        float64                        `gorm:"not null;default:0" json:"rating"`
	ReviewCnt     int                            `gorm:"not null;default:0" json:"review_cnt"`
	IsSeekingTeam bool                           `gorm:"not null;default:true" json:"is_seeking_team"`
	LastLoginAt   *time.Time                     `json:"last_login_at,omitempty"`

	TeamMembers []TeamMember `gorm:"foreignKey:UserID;references:ID" json:"team_members,omitempty"`
}

// TableName 指定表名
func (User) TableName() string {
	return UserTableName
}

// Rate 追加一次评分, 以增量加权平均更新总评分
// 必须保持该递推式, 不可改为求和再除
func (u *User) Rate(rating float64) {
	if u.ReviewCnt == 0 {
		u.Rating = rating
	} else {
		n := float64(u.ReviewCnt)
		u.Rating = u.Rating*(n/(n+1)) + rating*(1/(n+1))
	}
	u.ReviewCnt++
}
