package service

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"teamup/internal/dto"
	"teamup/internal/model"
	"teamup/internal/repository"
	pkgErrors "teamup/pkg/errors"
)

// testReviewService 基于真实MySQL的评价服务测试环境
// 未设置 TEAMUP_TEST_DSN 时跳过
// 各包的集成测试共用同一测试库, 需串行执行: go test -p 1 ./...
func testReviewService(t *testing.T) (ReviewService, *gorm.DB) {
	t.Helper()

	dsn := os.Getenv("TEAMUP_TEST_DSN")
	if dsn == "" {
		t.Skip("未设置 TEAMUP_TEST_DSN, 跳过数据库集成测试")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Migrator().DropTable(
		&model.Review{}, &model.Offer{}, &model.TeamMember{}, &model.Team{}, &model.User{},
	))
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Team{}, &model.TeamMember{}, &model.Offer{}, &model.Review{},
	))

	svc := NewReviewService(db, repository.NewReviewRepository(db), repository.NewTeamMemberRepository(db))
	return svc, db
}

// completedTeamFixture 已完成团队与队员
type completedTeamFixture struct {
	team    *model.Team
	users   []*model.User
	members []*model.TeamMember
}

func newCompletedTeam(t *testing.T, db *gorm.DB, completedAt time.Time, memberCnt int) *completedTeamFixture {
	t.Helper()

	team := &model.Team{
		ProjectName:        "demo",
		ProjectDescription: "demo project",
		Expectation:        "just build",
		OpenChatURL:        "https://chat.example.com/demo",
		BackendMaxCnt:      int8(memberCnt),
		CompletedAt:        &completedAt,
	}
	require.NoError(t, db.Create(team).Error)

	f := &completedTeamFixture{team: team}
	for i := 0; i < memberCnt; i++ {
		user := &model.User{
			Username: fmt.Sprintf("user%d", i),
			Password: "x",
			Nickname: fmt.Sprintf("nick%d", i),
		}
		require.NoError(t, db.Create(user).Error)

		member := &model.TeamMember{
			TeamID:   team.ID,
			UserID:   user.ID,
			Position: model.PositionBackend,
			Status:   model.TeamMemberStatusComplete,
			IsLeader: i == 0,
		}
		require.NoError(t, db.Create(member).Error)

		f.users = append(f.users, user)
		f.members = append(f.members, member)
	}
	return f
}

func TestReviewSubmitAccumulatesRating(t *testing.T) {
	svc, db := testReviewService(t)
	ctx := context.Background()

	completedAt := time.Now().Add(-24 * time.Hour)
	f := newCompletedTeam(t, db, completedAt, 4)
	target := f.members[3]

	// 三名队友依次给 4, 2, 5 分
	ratings := []int8{4, 2, 5}
	for i, rating := range ratings {
		err := svc.Submit(ctx, f.users[i].ID, f.team.ID, &dto.ReviewCreateRequest{
			Reviews: []dto.ReviewItem{{TeamMemberID: target.ID, Rating: rating, Post: "good work"}},
		}, time.Now())
		require.NoError(t, err)
	}

	var user model.User
	require.NoError(t, db.First(&user, target.UserID).Error)
	assert.EqualValues(t, 3, user.ReviewCnt)
	assert.InDelta(t, 3.6667, user.Rating, 1e-4)
}

func TestReviewSubmitGuards(t *testing.T) {
	svc, db := testReviewService(t)
	ctx := context.Background()
	now := time.Now()

	f := newCompletedTeam(t, db, now.Add(-24*time.Hour), 3)
	reviewer := f.users[0]
	self := f.members[0]
	target := f.members[1]

	// 不能评价自己
	err := svc.Submit(ctx, reviewer.ID, f.team.ID, &dto.ReviewCreateRequest{
		Reviews: []dto.ReviewItem{{TeamMemberID: self.ID, Rating: 5, Post: "me"}},
	}, now)
	assert.ErrorIs(t, err, pkgErrors.ErrReviewSelfNotAllowed)

	req := &dto.ReviewCreateRequest{
		Reviews: []dto.ReviewItem{{TeamMemberID: target.ID, Rating: 5, Post: "good"}},
	}
	require.NoError(t, svc.Submit(ctx, reviewer.ID, f.team.ID, req, now))

	// 同一对评价人/被评价人只能评价一次
	err = svc.Submit(ctx, reviewer.ID, f.team.ID, req, now)
	assert.ErrorIs(t, err, pkgErrors.ErrDuplicateReview)

	// 非队员不可评价
	outsider := &model.User{Username: "outsider", Password: "x", Nickname: "outsider"}
	require.NoError(t, db.Create(outsider).Error)
	err = svc.Submit(ctx, outsider.ID, f.team.ID, req, now)
	assert.ErrorIs(t, err, pkgErrors.ErrReviewNotReviewable)
}

func TestReviewSubmitWindowExpired(t *testing.T) {
	svc, db := testReviewService(t)
	ctx := context.Background()
	now := time.Now()

	// 完成时间已超过评价窗口
	f := newCompletedTeam(t, db, now.Add(-29*24*time.Hour), 2)

	err := svc.Submit(ctx, f.users[0].ID, f.team.ID, &dto.ReviewCreateRequest{
		Reviews: []dto.ReviewItem{{TeamMemberID: f.members[1].ID, Rating: 5, Post: "late"}},
	}, now)
	assert.ErrorIs(t, err, pkgErrors.ErrReviewWindowExpired)
}

func TestListReviewableTeams(t *testing.T) {
	svc, db := testReviewService(t)
	ctx := context.Background()
	now := time.Now()

	f := newCompletedTeam(t, db, now.Add(-24*time.Hour), 3)

	teams, err := svc.ListReviewableTeams(f.users[0].ID, now)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, f.team.ID, teams[0].TeamID)

	// 只评价了部分队友时团队继续展示
	require.NoError(t, svc.Submit(ctx, f.users[0].ID, f.team.ID, &dto.ReviewCreateRequest{
		Reviews: []dto.ReviewItem{{TeamMemberID: f.members[1].ID, Rating: 4, Post: "nice"}},
	}, now))

	teams, err = svc.ListReviewableTeams(f.users[0].ID, now)
	require.NoError(t, err)
	require.Len(t, teams, 1)

	// 全部队友评价完后不再出现
	require.NoError(t, svc.Submit(ctx, f.users[0].ID, f.team.ID, &dto.ReviewCreateRequest{
		Reviews: []dto.ReviewItem{{TeamMemberID: f.members[2].ID, Rating: 5, Post: "nice"}},
	}, now))

	teams, err = svc.ListReviewableTeams(f.users[0].ID, now)
	require.NoError(t, err)
	assert.Empty(t, teams)
}
