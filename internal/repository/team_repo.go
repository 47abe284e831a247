package repository

import (
	"gorm.io/gorm"

	"teamup/internal/model"
	pkgErrors "teamup/pkg/errors"
)

type TeamRepository interface {
	FindByID(id int64) (*model.Team, error)
	// ListRecruitingPage 按职位分页查询招募中的团队, position 为空时不过滤职位
	ListRecruitingPage(position model.Position, page, pageSize int) ([]*model.Team, int64, error)
	Update(team *model.Team) error
}

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) FindByID(id int64) (*model.Team, error) {
	var team model.Team
	err := r.db.First(&team, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrTeamNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询团队失败", err)
	}
	return &team, nil
}

func (r *teamRepository) ListRecruitingPage(position model.Position, page, pageSize int) ([]*model.Team, int64, error) {
	query := r.db.Model(&model.Team{}).
		Where("is_recruiting = ? AND completed_at IS NULL", true)

	switch position {
	case model.PositionDesigner:
		query = query.Where("designer_current_cnt < designer_max_cnt")
	case model.PositionBackend:
		query = query.Where("backend_current_cnt < backend_max_cnt")
	case model.PositionFrontend:
		query = query.Where("frontend_current_cnt < frontend_max_cnt")
	case model.PositionManager:
		query = query.Where("manager_current_cnt < manager_max_cnt")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询团队列表失败", err)
	}

	var teams []*model.Team
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&teams).Error
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询团队列表失败", err)
	}
	return teams, total, nil
}

func (r *teamRepository) Update(team *model.Team) error {
	if err := r.db.Save(team).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新团队失败", err)
	}
	return nil
}
