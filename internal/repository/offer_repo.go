package repository

import (
	"gorm.io/gorm"

	"teamup/internal/model"
	pkgErrors "teamup/pkg/errors"
)

type OfferRepository interface {
	// ListPageByUser 用户侧待处理提议分页: offered_by 区分申请与邀请
	ListPageByUser(userID int64, offeredBy model.OfferedBy, page, pageSize int) ([]*model.Offer, int64, error)
	// ListPageByTeam 团队侧待处理提议分页, 可按职位过滤
	ListPageByTeam(teamID int64, position model.Position, offeredBy model.OfferedBy, page, pageSize int) ([]*model.Offer, int64, error)
}

type offerRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &offerRepository{db: db}
}

func (r *offerRepository) ListPageByUser(userID int64, offeredBy model.OfferedBy, page, pageSize int) ([]*model.Offer, int64, error) {
	query := r.db.Model(&model.Offer{}).
		Where("user_id = ? AND offered_by = ? AND status = ?", userID, offeredBy, model.OfferStatusPending)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询提议列表失败", err)
	}

	var offers []*model.Offer
	err := query.Preload("Team").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&offers).Error
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询提议列表失败", err)
	}
	return offers, total, nil
}

func (r *offerRepository) ListPageByTeam(teamID int64, position model.Position, offeredBy model.OfferedBy, page, pageSize int) ([]*model.Offer, int64, error) {
	query := r.db.Model(&model.Offer{}).
		Where("team_id = ? AND offered_by = ? AND status = ?", teamID, offeredBy, model.OfferStatusPending)
	if position.Valid() {
		query = query.Where("position = ?", position)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询提议列表失败", err)
	}

	var offers []*model.Offer
	err := query.Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&offers).Error
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询提议列表失败", err)
	}
	return offers, total, nil
}
