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

type TeamService interface {
	Create(ctx context.Context, userID int64, req *dto.TeamCreateRequest) (*dto.TeamResponse, error)
	Update(userID int64, req *dto.TeamUpdateRequest) (*dto.TeamResponse, error)
	GetByID(viewerUserID, teamID int64) (*dto.TeamResponse, error)
	GetCurrent(userID int64) (*dto.TeamResponse, error)
	ListRecruiting(req *dto.TeamListQuery) ([]*dto.TeamAbstractResponse, int64, error)
	Fire(ctx context.Context, leaderUserID, memberUserID int64) error
	Quit(ctx context.Context, userID int64) error
	Complete(ctx context.Context, leaderUserID int64, req *dto.TeamCompleteRequest) error
	Disband(ctx context.Context, leaderUserID int64) error
}

type teamService struct {
	engine     *matching.Engine
	teamRepo   repository.TeamRepository
	memberRepo repository.TeamMemberRepository
	userRepo   repository.UserRepository
}

func NewTeamService(engine *matching.Engine, teamRepo repository.TeamRepository, memberRepo repository.TeamMemberRepository, userRepo repository.UserRepository) TeamService {
	return &teamService{
		engine:     engine,
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		userRepo:   userRepo,
	}
}

func (s *teamService) Create(ctx context.Context, userID int64, req *dto.TeamCreateRequest) (*dto.TeamResponse, error) {
	team := &model.Team{
		ProjectName:        req.ProjectName,
		ProjectDescription: req.ProjectDescription,
		Expectation:        req.Expectation,
		OpenChatURL:        req.OpenChatURL,
		DesignerMaxCnt:     req.DesignerMaxCnt,
		BackendMaxCnt:      req.BackendMaxCnt,
		FrontendMaxCnt:     req.FrontendMaxCnt,
		ManagerMaxCnt:      req.ManagerMaxCnt,
		IsRecruiting:       true,
	}

	position := model.Position(req.LeaderPosition)
	if team.MaxCnt(position) < 1 {
		return nil, pkgErrors.ErrPositionUnavailable
	}

	if err := s.engine.Found(ctx, userID, team, position); err != nil {
		return nil, err
	}
	return s.toResponse(team, true)
}

func (s *teamService) Update(userID int64, req *dto.TeamUpdateRequest) (*dto.TeamResponse, error) {
	member, err := s.memberRepo.FindActiveByUserID(userID)
	if err != nil {
		return nil, err
	}
	if !member.IsLeader {
		return nil, pkgErrors.ErrNotLeader
	}

	team, err := s.teamRepo.FindByID(member.TeamID)
	if err != nil {
		return nil, err
	}

	team.ProjectName = req.ProjectName
	team.ProjectDescription = req.ProjectDescription
	team.Expectation = req.Expectation
	if err := team.UpdateMaxCnt(req.DesignerMaxCnt, req.BackendMaxCnt, req.FrontendMaxCnt, req.ManagerMaxCnt); err != nil {
		return nil, err
	}

	if err := s.teamRepo.Update(team); err != nil {
		return nil, err
	}
	return s.toResponse(team, true)
}

func (s *teamService) GetByID(viewerUserID, teamID int64) (*dto.TeamResponse, error) {
	team, err := s.teamRepo.FindByID(teamID)
	if err != nil {
		return nil, err
	}

	// 非队员访问时增加访问量
	if _, err := s.memberRepo.FindActiveByUserAndTeam(viewerUserID, teamID); err != nil {
		if err != pkgErrors.ErrTeamMemberNotFound {
			return nil, err
		}
		team.Visit()
		if err := s.teamRepo.Update(team); err != nil {
			return nil, err
		}
	}

	return s.toResponse(team, true)
}

func (s *teamService) GetCurrent(userID int64) (*dto.TeamResponse, error) {
	member, err := s.memberRepo.FindActiveByUserID(userID)
	if err != nil {
		return nil, err
	}
	team, err := s.teamRepo.FindByID(member.TeamID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(team, true)
}

func (s *teamService) ListRecruiting(req *dto.TeamListQuery) ([]*dto.TeamAbstractResponse, int64, error) {
	teams, total, err := s.teamRepo.ListRecruitingPage(model.Position(req.Position), req.GetPage(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}

	responses := lo.Map(teams, func(team *model.Team, _ int) *dto.TeamAbstractResponse {
		return toTeamAbstractResponse(team)
	})
	return responses, total, nil
}

func (s *teamService) Fire(ctx context.Context, leaderUserID, memberUserID int64) error {
	return s.engine.Fire(ctx, leaderUserID, memberUserID)
}

func (s *teamService) Quit(ctx context.Context, userID int64) error {
	return s.engine.Quit(ctx, userID)
}

func (s *teamService) Complete(ctx context.Context, leaderUserID int64, req *dto.TeamCompleteRequest) error {
	return s.engine.Complete(ctx, leaderUserID, req.ProjectURL, time.Now())
}

func (s *teamService) Disband(ctx context.Context, leaderUserID int64) error {
	return s.engine.Disband(ctx, leaderUserID)
}

func (s *teamService) toResponse(team *model.Team, withMembers bool) (*dto.TeamResponse, error) {
	resp := &dto.TeamResponse{
		ID:                 team.ID,
		ProjectName:        team.ProjectName,
		ProjectDescription: team.ProjectDescription,
		Expectation:        team.Expectation,
		OpenChatURL:        team.OpenChatURL,
		ProjectURL:         team.ProjectURL,
		Positions:          toPositionCnts(team),
		IsRecruiting:       team.IsRecruiting,
		VisitedCnt:         team.VisitedCnt,
		CreatedAt:          team.CreatedAt.Format(time.RFC3339),
	}
	if team.CompletedAt != nil {
		completedAt := team.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completedAt
	}

	if withMembers {
		members, err := s.memberRepo.ListActiveByTeam(team.ID, repository.WithPreload("User"))
		if err != nil {
			return nil, err
		}
		resp.Members = lo.Map(members, func(m *model.TeamMember, _ int) *dto.TeamMemberResponse {
			return toTeamMemberResponse(m)
		})
	}
	return resp, nil
}

func toPositionCnts(team *model.Team) []dto.PositionCnt {
	return lo.Map(model.AllPositions, func(p model.Position, _ int) dto.PositionCnt {
		return dto.PositionCnt{
			Position:   string(p),
			CurrentCnt: team.CurrentCnt(p),
			MaxCnt:     team.MaxCnt(p),
			IsFull:     team.IsPositionFull(p),
		}
	})
}

func toTeamAbstractResponse(team *model.Team) *dto.TeamAbstractResponse {
	return &dto.TeamAbstractResponse{
		ID:           team.ID,
		ProjectName:  team.ProjectName,
		Positions:    toPositionCnts(team),
		IsRecruiting: team.IsRecruiting,
		CreatedAt:    team.CreatedAt.Format(time.RFC3339),
	}
}

func toTeamMemberResponse(member *model.TeamMember) *dto.TeamMemberResponse {
	resp := &dto.TeamMemberResponse{
		ID:       member.ID,
		Position: string(member.Position),
		IsLeader: member.IsLeader,
		Status:   string(member.Status),
	}
	if member.User != nil {
		resp.User = toUserSimpleResponse(member.User)
	}
	return resp
}
