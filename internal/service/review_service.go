package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"teamup/internal/dto"
	"teamup/internal/model"
	"teamup/internal/repository"
	"teamup/pkg/constants"
	pkgErrors "teamup/pkg/errors"
)

type ReviewService interface {
	// Submit 对已完成团队的队友批量评价, 评分在同一事务内累计到被评价用户
	Submit(ctx context.Context, userID, teamID int64, req *dto.ReviewCreateRequest, now time.Time) error
	ListReviewableTeams(userID int64, now time.Time) ([]*dto.ReviewableTeamResponse, error)
	ListPageByUser(userID int64, page, pageSize int) ([]*dto.ReviewResponse, int64, error)
}

type reviewService struct {
	db         *gorm.DB
	reviewRepo repository.ReviewRepository
	memberRepo repository.TeamMemberRepository
}

func NewReviewService(db *gorm.DB, reviewRepo repository.ReviewRepository, memberRepo repository.TeamMemberRepository) ReviewService {
	return &reviewService{
		db:         db,
		reviewRepo: reviewRepo,
		memberRepo: memberRepo,
	}
}

// InReviewWindow 是否仍在评价窗口内
func InReviewWindow(completedAt, now time.Time) bool {
	return !now.After(completedAt.Add(constants.ReviewWindow))
}

func (s *reviewService) Submit(ctx context.Context, userID, teamID int64, req *dto.ReviewCreateRequest, now time.Time) error {
	reviewer, err := s.memberRepo.FindByUserTeamStatus(userID, teamID, model.TeamMemberStatusComplete)
	if err != nil {
		if err == pkgErrors.ErrTeamMemberNotFound {
			return pkgErrors.ErrReviewNotReviewable
		}
		return err
	}

	team := reviewer.Team
	if team == nil {
		var t model.Team
		if err := s.db.First(&t, teamID).Error; err != nil {
			return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询团队失败", err)
		}
		team = &t
	}
	if team.CompletedAt == nil {
		return pkgErrors.ErrReviewNotReviewable
	}
	if !InReviewWindow(*team.CompletedAt, now) {
		return pkgErrors.ErrReviewWindowExpired
	}

	// 被评价人必须是同一团队的已完成队员
	teammates, err := s.memberRepo.ListByTeamAndStatus(teamID, model.TeamMemberStatusComplete)
	if err != nil {
		return err
	}
	teammateByID := lo.Associate(teammates, func(m *model.TeamMember) (int64, *model.TeamMember) {
		return m.ID, m
	})

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Reviews {
			reviewee, ok := teammateByID[item.TeamMemberID]
			if !ok {
				return pkgErrors.ErrTeamMemberNotFound
			}
			if reviewee.ID == reviewer.ID {
				return pkgErrors.ErrReviewSelfNotAllowed
			}

			var count int64
			if err := tx.Model(&model.Review{}).
				Where("reviewer_id = ? AND reviewee_id = ?", reviewer.ID, reviewee.ID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return pkgErrors.ErrDuplicateReview
			}

			review := &model.Review{
				ReviewerID: reviewer.ID,
				RevieweeID: reviewee.ID,
				Rating:     item.Rating,
				Post:       item.Post,
			}
			if err := tx.Create(review).Error; err != nil {
				return err
			}

			// 行锁被评价用户后按递推式累计评分
			var user model.User
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, reviewee.UserID).Error; err != nil {
				return err
			}
			user.Rate(float64(item.Rating))
			if err := tx.Save(&user).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *reviewService) ListReviewableTeams(userID int64, now time.Time) ([]*dto.ReviewableTeamResponse, error) {
	members, err := s.memberRepo.ListReviewable(userID, now, constants.ReviewWindow)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ReviewableTeamResponse, 0, len(members))
	for _, m := range members {
		if m.Team == nil || m.Team.CompletedAt == nil {
			continue
		}
		// 分批评价后团队继续展示, 直到全部队友都已评价
		teammates, err := s.memberRepo.ListByTeamAndStatus(m.TeamID, model.TeamMemberStatusComplete)
		if err != nil {
			return nil, err
		}
		reviewed, err := s.reviewRepo.CountByReviewer(m.ID)
		if err != nil {
			return nil, err
		}
		if reviewed >= int64(len(teammates)-1) {
			continue
		}
		responses = append(responses, &dto.ReviewableTeamResponse{
			TeamID:      m.TeamID,
			ProjectName: m.Team.ProjectName,
			CompletedAt: m.Team.CompletedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}

func (s *reviewService) ListPageByUser(userID int64, page, pageSize int) ([]*dto.ReviewResponse, int64, error) {
	reviews, total, err := s.reviewRepo.ListPageByReviewee(userID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := lo.Map(reviews, func(r *model.Review, _ int) *dto.ReviewResponse {
		resp := &dto.ReviewResponse{
			ID:        r.ID,
			Rating:    r.Rating,
			Post:      r.Post,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		}
		if r.Reviewer != nil && r.Reviewer.User != nil {
			resp.Reviewer = r.Reviewer.User.Nickname
		}
		return resp
	})
	return responses, total, nil
}
