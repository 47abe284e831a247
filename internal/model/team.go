package model

import (
	"time"

	pkgErrors "teamup/pkg/errors"
)

const TeamTableName = "teams"

// Team 团队模型
// 每个职位维护 current/max 两个名额计数, IsRecruiting 由计数派生
type Team struct {
	BaseModelWithSoftDelete
	ProjectName        string     `gorm:"size:20;not null" json:"project_name"`
	ProjectDescription string     `gorm:"size:500;not null" json:"project_description"`
	Expectation        string     `gorm:"size:200;not null" json:"expectation"`
	OpenChatURL        string     `gorm:"size:100;not null" json:"open_chat_url"`
	ProjectURL         *string    `gorm:"size:255" json:"project_url,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`

	DesignerCurrentCnt int8 `gorm:"not null;default:0" json:"designer_current_cnt"`
	BackendCurrentCnt  int8 `gorm:"not null;default:0" json:"backend_current_cnt"`
	FrontendCurrentCnt int8 `gorm:"not null;default:0" json:"frontend_current_cnt"`
	ManagerCurrentCnt  int8 `gorm:"not null;default:0" json:"manager_current_cnt"`
	DesignerMaxCnt     int8 `gorm:"not null" json:"designer_max_cnt"`
	BackendMaxCnt      int8 `gorm:"not null" json:"backend_max_cnt"`
	FrontendMaxCnt     int8 `gorm:"not null" json:"frontend_max_cnt"`
	ManagerMaxCnt      int8 `gorm:"not null" json:"manager_max_cnt"`

	VisitedCnt   int64 `gorm:"not null;default:0" json:"visited_cnt"`
	IsRecruiting bool  `gorm:"not null;default:true" json:"is_recruiting"`
}

// TableName 指定表名
func (Team) TableName() string {
	return TeamTableName
}

// CurrentCnt 指定职位的当前人数
func (t *Team) CurrentCnt(position Position) int8 {
	switch position {
	case PositionDesigner:
		return t.DesignerCurrentCnt
	case PositionBackend:
		return t.BackendCurrentCnt
	case PositionFrontend:
		return t.FrontendCurrentCnt
	case PositionManager:
		return t.ManagerCurrentCnt
	}
	return 0
}

// MaxCnt 指定职位的最大人数
func (t *Team) MaxCnt(position Position) int8 {
	switch position {
	case PositionDesigner:
		return t.DesignerMaxCnt
	case PositionBackend:
		return t.BackendMaxCnt
	case PositionFrontend:
		return t.FrontendMaxCnt
	case PositionManager:
		return t.ManagerMaxCnt
	}
	return 0
}

// IsPositionFull 指定职位是否已满员
func (t *Team) IsPositionFull(position Position) bool {
	return t.MaxCnt(position) <= t.CurrentCnt(position)
}

// IsFull 是否全部职位满员
func (t *Team) IsFull() bool {
	for _, p := range AllPositions {
		if !t.IsPositionFull(p) {
			return false
		}
	}
	return true
}

// Join 占用一个职位名额, 满员时报错
// 调用方必须在同一事务内先行持有团队行锁
func (t *Team) Join(position Position) error {
	if t.CompletedAt != nil {
		return pkgErrors.ErrTeamCompleted
	}
	if t.IsPositionFull(position) {
		return pkgErrors.ErrPositionNowFull
	}

	switch position {
	case PositionDesigner:
		t.DesignerCurrentCnt++
	case PositionBackend:
		t.BackendCurrentCnt++
	case PositionFrontend:
		t.FrontendCurrentCnt++
	case PositionManager:
		t.ManagerCurrentCnt++
	}

	if t.IsFull() {
		t.IsRecruiting = false
	}
	return nil
}

// Leave 释放一个职位名额并恢复招募
func (t *Team) Leave(position Position) {
	switch position {
	case PositionDesigner:
		if t.DesignerCurrentCnt > 0 {
			t.DesignerCurrentCnt--
		}
	case PositionBackend:
		if t.BackendCurrentCnt > 0 {
			t.BackendCurrentCnt--
		}
	case PositionFrontend:
		if t.FrontendCurrentCnt > 0 {
			t.FrontendCurrentCnt--
		}
	case PositionManager:
		if t.ManagerCurrentCnt > 0 {
			t.ManagerCurrentCnt--
		}
	}

	if t.CompletedAt == nil {
		t.IsRecruiting = true
	}
}

// UpdateMaxCnt 调整各职位最大人数, 不允许低于当前人数
func (t *Team) UpdateMaxCnt(designer, backend, frontend, manager int8) error {
	if t.DesignerCurrentCnt > designer || t.BackendCurrentCnt > backend ||
		t.FrontendCurrentCnt > frontend || t.ManagerCurrentCnt > manager {
		return pkgErrors.ErrMaxCntBelowCurrent
	}

	t.DesignerMaxCnt = designer
	t.BackendMaxCnt = backend
	t.FrontendMaxCnt = frontend
	t.ManagerMaxCnt = manager

	t.IsRecruiting = !t.IsFull() && t.CompletedAt == nil
	return nil
}

// Complete 标记项目完成, 团队停止招募
func (t *Team) Complete(projectURL string, completedAt time.Time) {
	if projectURL != "" {
		t.ProjectURL = &projectURL
	}
	t.CompletedAt = &completedAt
	t.IsRecruiting = false
}

// Incomplete 队长解散未完成的团队
func (t *Team) Incomplete() {
	t.IsRecruiting = false
}

// Visit 访问量+1
func (t *Team) Visit() {
	t.VisitedCnt++
}
