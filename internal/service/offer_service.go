package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"teamup/internal/core/matching"
	"teamup/internal/dto"
	"teamup/internal/model"
	"teamup/internal/repository"
	pkgErrors "teamup/pkg/errors"
)

type OfferService interface {
	Apply(ctx context.Context, userID int64, req *dto.OfferApplyRequest) (*dto.OfferResponse, error)
	Invite(ctx context.Context, leaderUserID int64, req *dto.OfferInviteRequest) (*dto.OfferResponse, error)
	Accept(ctx context.Context, userID, offerID int64) error
	Decline(ctx context.Context, userID, offerID int64) error
	Cancel(ctx context.Context, userID, offerID int64) error
	ListByUser(userID int64, req *dto.OfferListQuery) ([]*dto.OfferResponse, int64, error)
	ListByTeam(userID int64, req *dto.OfferListQuery) ([]*dto.OfferResponse, int64, error)
}

type offerService struct {
	engine     *matching.Engine
	offerRepo  repository.OfferRepository
	memberRepo repository.TeamMemberRepository
}

func NewOfferService(engine *matching.Engine, offerRepo repository.OfferRepository, memberRepo repository.TeamMemberRepository) OfferService {
	return &offerService{
		engine:     engine,
		offerRepo:  offerRepo,
		memberRepo: memberRepo,
	}
}

func (s *offerService) Apply(ctx context.Context, userID int64, req *dto.OfferApplyRequest) (*dto.OfferResponse, error) {
	offer, err := s.engine.Apply(ctx, userID, req.TeamID, model.Position(req.Position))
	if err != nil {
		return nil, err
	}
	return toOfferResponse(offer), nil
}

func (s *offerService) Invite(ctx context.Context, leaderUserID int64, req *dto.OfferInviteRequest) (*dto.OfferResponse, error) {
	offer, err := s.engine.Invite(ctx, leaderUserID, req.UserID, model.Position(req.Position))
	if err != nil {
		return nil, err
	}
	return toOfferResponse(offer), nil
}

func (s *offerService) Accept(ctx context.Context, userID, offerID int64) error {
	return s.engine.Accept(ctx, userID, offerID)
}

func (s *offerService) Decline(ctx context.Context, userID, offerID int64) error {
	return s.engine.Decline(ctx, userID, offerID)
}

func (s *offerService) Cancel(ctx context.Context, userID, offerID int64) error {
	return s.engine.Cancel(ctx, userID, offerID)
}

// ListByUser 用户视角的待处理提议: offered_by=LEADER 为收到的邀请, USER 为发出的申请
func (s *offerService) ListByUser(userID int64, req *dto.OfferListQuery) ([]*dto.OfferResponse, int64, error) {
	offers, total, err := s.offerRepo.ListPageByUser(userID, model.OfferedBy(req.OfferedBy), req.GetPage(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}
	return lo.Map(offers, func(o *model.Offer, _ int) *dto.OfferResponse {
		return toOfferResponse(o)
	}), total, nil
}

// ListByTeam 队长视角的待处理提议, 仅队长可见
func (s *offerService) ListByTeam(userID int64, req *dto.OfferListQuery) ([]*dto.OfferResponse, int64, error) {
	member, err := s.memberRepo.FindActiveByUserID(userID)
	if err != nil {
		return nil, 0, err
	}
	if !member.IsLeader {
		return nil, 0, pkgErrors.ErrNotLeader
	}

	offers, total, err := s.offerRepo.ListPageByTeam(member.TeamID, model.Position(req.Position),
		model.OfferedBy(req.OfferedBy), req.GetPage(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}
	return lo.Map(offers, func(o *model.Offer, _ int) *dto.OfferResponse {
		return toOfferResponse(o)
	}), total, nil
}

func toOfferResponse(offer *model.Offer) *dto.OfferResponse {
	resp := &dto.OfferResponse{
		ID:        offer.ID,
		Position:  string(offer.Position),
		OfferedBy: string(offer.OfferedBy),
		Status:    string(offer.Status),
		CreatedAt: offer.CreatedAt.Format(time.RFC3339),
	}
	if offer.User != nil {
		resp.User = toUserSimpleResponse(offer.User)
	}
	if offer.Team != nil {
		resp.Team = toTeamAbstractResponse(offer.Team)
	}
	return resp
}
