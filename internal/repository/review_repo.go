package repository

import (
	"gorm.io/gorm"

	"teamup/internal/model"
	pkgErrors "teamup/pkg/errors"
)

type ReviewRepository interface {
	// CountByReviewer 指定队员记录已提交的评价条数
	CountByReviewer(reviewerID int64) (int64, error)
	// ListPageByReviewee 按被评价用户分页查询
	ListPageByReviewee(userID int64, page, pageSize int) ([]*model.Review, int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) CountByReviewer(reviewerID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Review{}).
		Where("reviewer_id = ?", reviewerID).
		Count(&count).Error
	if err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询评价失败", err)
	}
	return count, nil
}

func (r *reviewRepository) ListPageByReviewee(userID int64, page, pageSize int) ([]*model.Review, int64, error) {
	query := r.db.Model(&model.Review{}).
		Joins("JOIN team_members ON team_members.id = reviews.reviewee_id").
		Where("team_members.user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询评价列表失败", err)
	}

	var reviews []*model.Review
	err := query.Preload("Reviewer").Preload("Reviewer.User").
		Order("reviews.created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询评价列表失败", err)
	}
	return reviews, total, nil
}
