package matching

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"teamup/internal/adapter/notification"
	"teamup/internal/model"
	pkgErrors "teamup/pkg/errors"
)

// testEngine 基于真实MySQL的引擎测试环境
// 未设置 TEAMUP_TEST_DSN 时跳过, 例如:
// TEAMUP_TEST_DSN="root:root@tcp(127.0.0.1:3306)/teamup_test?charset=utf8mb4&parseTime=True&loc=Local"
// 各包的集成测试共用同一测试库, 需串行执行: go test -p 1 ./...
func testEngine(t *testing.T) (*Engine, *gorm.DB, *notification.MockNotifier) {
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

	notifier := notification.NewMockNotifier()
	return NewEngine(db, zap.NewNop(), notifier), db, notifier
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	user := &model.User{
		Username:      name,
		Password:      "x",
		Nickname:      fmt.Sprintf("nick-%s", name),
		IsSeekingTeam: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func foundTestTeam(t *testing.T, e *Engine, leaderID int64, backendMax int8) *model.Team {
	t.Helper()
	team := &model.Team{
		ProjectName:        "demo",
		ProjectDescription: "demo project",
		Expectation:        "just build",
		OpenChatURL:        "https://chat.example.com/demo",
		BackendMaxCnt:      backendMax,
		ManagerMaxCnt:      1,
		IsRecruiting:       true,
	}
	require.NoError(t, e.Found(context.Background(), leaderID, team, model.PositionManager))
	return team
}

func TestEngineApplyAcceptFlow(t *testing.T) {
	e, db, notifier := testEngine(t)
	ctx := context.Background()

	leader := createTestUser(t, db, "leader")
	applicant := createTestUser(t, db, "applicant")
	team := foundTestTeam(t, e, leader.ID, 1)

	offer, err := e.Apply(ctx, applicant.ID, team.ID, model.PositionBackend)
	require.NoError(t, err)
	assert.Equal(t, model.OfferStatusPending, offer.Status)
	assert.Equal(t, model.OfferedByUser, offer.OfferedBy)

	// 同方向同职位的重复申请被拒绝
	_, err = e.Apply(ctx, applicant.ID, team.ID, model.PositionBackend)
	assert.ErrorIs(t, err, pkgErrors.ErrDuplicateOffer)

	// 队长接受, 申请人入队
	require.NoError(t, e.Accept(ctx, leader.ID, offer.ID))

	var got model.Offer
	require.NoError(t, db.First(&got, offer.ID).Error)
	assert.Equal(t, model.OfferStatusAccepted, got.Status)

	var member model.TeamMember
	require.NoError(t, db.Where("user_id = ? AND team_id = ?", applicant.ID, team.ID).First(&member).Error)
	assert.Equal(t, model.TeamMemberStatusActive, member.Status)
	assert.False(t, member.IsLeader)

	var gotTeam model.Team
	require.NoError(t, db.First(&gotTeam, team.ID).Error)
	assert.EqualValues(t, 1, gotTeam.BackendCurrentCnt)

	var gotUser model.User
	require.NoError(t, db.First(&gotUser, applicant.ID).Error)
	assert.False(t, gotUser.IsSeekingTeam)

	// 新队员通知在提交后异步发出
	assert.Eventually(t, func() bool {
		for _, m := range notifier.Messages() {
			if m.Type == notification.NotifyMemberJoined {
				return true
			}
		}
		return false
	}, 3*time.Second, 50*time.Millisecond)
}

func TestEngineAcceptIsIdempotent(t *testing.T) {
	e, db, _ := testEngine(t)
	ctx := context.Background()

	leader := createTestUser(t, db, "leader")
	applicant := createTestUser(t, db, "applicant")
	team := foundTestTeam(t, e, leader.ID, 1)

	offer, err := e.Apply(ctx, applicant.ID, team.ID, model.PositionBackend)
	require.NoError(t, err)
	require.NoError(t, e.Accept(ctx, leader.ID, offer.ID))

	// 重复接受不产生第二条队员记录
	err = e.Accept(ctx, leader.ID, offer.ID)
	assert.ErrorIs(t, err, pkgErrors.ErrOfferAlreadyResolved)

	var cnt int64
	require.NoError(t, db.Model(&model.TeamMember{}).
		Where("user_id = ? AND team_id = ?", applicant.ID, team.ID).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestEngineAcceptLastSlot(t *testing.T) {
	e, db, _ := testEngine(t)
	ctx := context.Background()

	leader := createTestUser(t, db, "leader")
	first := createTestUser(t, db, "first")
	second := createTestUser(t, db, "second")
	team := foundTestTeam(t, e, leader.ID, 1)

	offer1, err := e.Apply(ctx, first.ID, team.ID, model.PositionBackend)
	require.NoError(t, err)
	offer2, err := e.Apply(ctx, second.ID, team.ID, model.PositionBackend)
	require.NoError(t, err)

	// 最后一个名额只能被一个提议拿到
	require.NoError(t, e.Accept(ctx, leader.ID, offer1.ID))
	err = e.Accept(ctx, leader.ID, offer2.ID)
	assert.ErrorIs(t, err, pkgErrors.ErrPositionNowFull)

	// 失败的提议保持待处理, 名额计数未被破坏
	var got model.Offer
	require.NoError(t, db.First(&got, offer2.ID).Error)
	assert.Equal(t, model.OfferStatusPending, got.Status)

	var gotTeam model.Team
	require.NoError(t, db.First(&gotTeam, team.ID).Error)
	assert.EqualValues(t, 1, gotTeam.BackendCurrentCnt)

	var cnt int64
	require.NoError(t, db.Model(&model.TeamMember{}).
		Where("team_id = ? AND status = ? AND position = ?",
			team.ID, model.TeamMemberStatusActive, model.PositionBackend).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestEngineAcceptLastSlotConcurrent(t *testing.T) {
	e, db, _ := testEngine(t)
	ctx := context.Background()

	leader := createTestUser(t, db, "leader")
	first := createTestUser(t, db, "first")
	second := createTestUser(t, db, "second")
	team := foundTestTeam(t, e, leader.ID, 1)

	offer1, err := e.Apply(ctx, first.ID, team.ID, model.PositionBackend)
	require.NoError(t, err)
	offer2, err := e.Apply(ctx, second.ID, team.ID, model.PositionBackend)
	require.NoError(t, err)

	// 两个事务同时抢最后一个名额, 团队行锁只放行一个
	results := make(chan error, 2)
	var wg sync.WaitGroup
	for _, offerID := range []int64{offer1.ID, offer2.ID} {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			results <- e.Accept(ctx, leader.ID, id)
		}(offerID)
	}
	wg.Wait()
	close(results)

	var joined, full int
	for err := range results {
		switch {
		case err == nil:
			joined++
		case errors.Is(err, pkgErrors.ErrPositionNowFull):
			full++
		default:
			t.Fatalf("意外的接受结果: %v", err)
		}
	}
	assert.Equal(t, 1, joined)
	assert.Equal(t, 1, full)

	var gotTeam model.Team
	require.NoError(t, db.First(&gotTeam, team.ID).Error)
	assert.EqualValues(t, 1, gotTeam.BackendCurrentCnt)

	var cnt int64
	require.NoError(t, db.Model(&model.TeamMember{}).
		Where("team_id = ? AND status = ? AND position = ?",
			team.ID, model.TeamMemberStatusActive, model.PositionBackend).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestEngineAcceptSameUserTwoTeamsConcurrent(t *testing.T) {
	e, db, _ := testEngine(t)
	ctx := context.Background()

	leader1 := createTestUser(t, db, "leader1")
	leader2 := createTestUser(t, db, "leader2")
	applicant := createTestUser(t, db, "applicant")
	team1 := foundTestTeam(t, e, leader1.ID, 1)
	team2 := foundTestTeam(t, e, leader2.ID, 1)

	offer1, err := e.Apply(ctx, applicant.ID, team1.ID, model.PositionBackend)
	require.NoError(t, err)
	offer2, err := e.Apply(ctx, applicant.ID, team2.ID, model.PositionBackend)
	require.NoError(t, err)

	// 两个队长同时接受同一用户, 用户行锁只放行一个
	results := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		results <- e.Accept(ctx, leader1.ID, offer1.ID)
	}()
	go func() {
		defer wg.Done()
		results <- e.Accept(ctx, leader2.ID, offer2.ID)
	}()
	wg.Wait()
	close(results)

	var joined, already int
	for err := range results {
		switch {
		case err == nil:
			joined++
		case errors.Is(err, pkgErrors.ErrAlreadyMember):
			already++
		default:
			t.Fatalf("意外的接受结果: %v", err)
		}
	}
	assert.Equal(t, 1, joined)
	assert.Equal(t, 1, already)

	var cnt int64
	require.NoError(t, db.Model(&model.TeamMember{}).
		Where("user_id = ? AND status = ?", applicant.ID, model.TeamMemberStatusActive).
		Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestEngineInviteDisbandConcurrent(t *testing.T) {
	e, db, _ := testEngine(t)
	ctx := context.Background()

	leader := createTestUser(t, db, "leader")
	invitee := createTestUser(t, db, "invitee")
	team := foundTestTeam(t, e, leader.ID, 1)

	// 邀请与解散并发, 队长行锁决定先后; 解散后不允许留下待处理邀请
	var inviteErr, disbandErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, inviteErr = e.Invite(ctx, leader.ID, invitee.ID, model.PositionBackend)
	}()
	go func() {
		defer wg.Done()
		disbandErr = e.Disband(ctx, leader.ID)
	}()
	wg.Wait()

	require.NoError(t, disbandErr)

	if inviteErr != nil {
		// 解散先行时队长身份已失效
		assert.True(t,
			errors.Is(inviteErr, pkgErrors.ErrCurrentTeamMissing) ||
				errors.Is(inviteErr, pkgErrors.ErrTeamNotFound),
			"意外的邀请结果: %v", inviteErr)
	}

	var pending int64
	require.NoError(t, db.Model(&model.Offer{}).
		Where("team_id = ? AND status = ?", team.ID, model.OfferStatusPending).
		Count(&pending).Error)
	assert.Zero(t, pending)
}

func TestEngineAcceptCancelsSameTeamOffers(t *testing.T) {
	e, db, _ := testEngine(t)
	ctx := context.Background()

	leader1 := createTestUser(t, db, "leader1")
	leader2 := createTestUser(t, db, "leader2")
	applicant := createTestUser(t, db, "applicant")
	team1 := foundTestTeam(t, e, leader1.ID, 2)
	team2 := foundTestTeam(t, e, leader2.ID, 2)

	// 同一团队同一用户两个方向的提议, 加上对其他团队的一个申请
	applied, err := e.Apply(ctx, applicant.ID, team1.ID, model.PositionBackend)
	require.NoError(t, err)
	invited, err := e.Invite(ctx, leader1.ID, applicant.ID, model.PositionBackend)
	require.NoError(t, err)
	otherTeam, err := e.Apply(ctx, applicant.ID, team2.ID, model.PositionBackend)
	require.NoError(t, err)

	require.NoError(t, e.Accept(ctx, leader1.ID, applied.ID))

	// 同一团队的另一条待处理提议被自动撤回
	var got model.Offer
	require.NoError(t, db.First(&got, invited.ID).Error)
	assert.Equal(t, model.OfferStatusCancelled, got.Status)

	// 其他团队的待处理提议保持不动
	require.NoError(t, db.First(&got, otherTeam.ID).Error)
	assert.Equal(t, model.OfferStatusPending, got.Status)
}

func TestEngineInviteAcceptedByUser(t *testing.T) {
	e, db, _ := testEngine(t)
	ctx := context.Background()

	leader := createTestUser(t, db, "leader")
	invitee := createTestUser(t, db, "invitee")
	team := foundTestTeam(t, e, leader.ID, 1)

	offer, err := e.Invite(ctx, leader.ID, invitee.ID, model.PositionBackend)
	require.NoError(t, err)
	assert.Equal(t, model.OfferedByLeader, offer.OfferedBy)

	// 邀请只能由被邀请人接受
	err = e.Accept(ctx, leader.ID, offer.ID)
	assert.ErrorIs(t, err, pkgErrors.ErrForbidden)

	require.NoError(t, e.Accept(ctx, invitee.ID, offer.ID))

	var member model.TeamMember
	require.NoError(t, db.Where("user_id = ? AND team_id = ?", invitee.ID, team.ID).First(&member).Error)
	assert.Equal(t, model.TeamMemberStatusActive, member.Status)
}

func TestEngineDeclineAndCancel(t *testing.T) {
	e, db, _ := testEngine(t)
	ctx := context.Background()

	leader := createTestUser(t, db, "leader")
	applicant := createTestUser(t, db, "applicant")
	team := foundTestTeam(t, e, leader.ID, 2)

	offer, err := e.Apply(ctx, applicant.ID, team.ID, model.PositionBackend)
	require.NoError(t, err)

	// 申请人自己不能拒绝, 只能撤回
	err = e.Decline(ctx, applicant.ID, offer.ID)
	assert.ErrorIs(t, err, pkgErrors.ErrCurrentTeamMissing)

	require.NoError(t, e.Cancel(ctx, applicant.ID, offer.ID))

	var got model.Offer
	require.NoError(t, db.First(&got, offer.ID).Error)
	assert.Equal(t, model.OfferStatusCancelled, got.Status)

	// 撤回后可重新申请, 这次由队长拒绝
	offer, err = e.Apply(ctx, applicant.ID, team.ID, model.PositionBackend)
	require.NoError(t, err)
	require.NoError(t, e.Decline(ctx, leader.ID, offer.ID))

	require.NoError(t, db.First(&got, offer.ID).Error)
	assert.Equal(t, model.OfferStatusDeclined, got.Status)
}

func TestEngineApplyWhileActiveMember(t *testing.T) {
	e, db, _ := testEngine(t)
	ctx := context.Background()

	leader1 := createTestUser(t, db, "leader1")
	leader2 := createTestUser(t, db, "leader2")
	foundTestTeam(t, e, leader1.ID, 1)
	team2 := foundTestTeam(t, e, leader2.ID, 1)

	// 进行中团队的成员不允许再发申请
	_, err := e.Apply(ctx, leader1.ID, team2.ID, model.PositionBackend)
	assert.ErrorIs(t, err, pkgErrors.ErrAlreadyMember)
}

func TestEngineQuitReopensRecruiting(t *testing.T) {
	e, db, _ := testEngine(t)
	ctx := context.Background()

	leader := createTestUser(t, db, "leader")
	member := createTestUser(t, db, "member")
	team := foundTestTeam(t, e, leader.ID, 1)

	offer, err := e.Apply(ctx, member.ID, team.ID, model.PositionBackend)
	require.NoError(t, err)
	require.NoError(t, e.Accept(ctx, leader.ID, offer.ID))

	var gotTeam model.Team
	require.NoError(t, db.First(&gotTeam, team.ID).Error)
	require.False(t, gotTeam.IsRecruiting)

	require.NoError(t, e.Quit(ctx, member.ID))

	require.NoError(t, db.First(&gotTeam, team.ID).Error)
	assert.EqualValues(t, 0, gotTeam.BackendCurrentCnt)
	assert.True(t, gotTeam.IsRecruiting)

	var gotMember model.TeamMember
	require.NoError(t, db.Where("user_id = ? AND team_id = ?", member.ID, team.ID).First(&gotMember).Error)
	assert.Equal(t, model.TeamMemberStatusQuit, gotMember.Status)

	var gotUser model.User
	require.NoError(t, db.First(&gotUser, member.ID).Error)
	assert.True(t, gotUser.IsSeekingTeam)
}

func TestEngineLeaderCannotQuit(t *testing.T) {
	e, db, _ := testEngine(t)
	ctx := context.Background()

	leader := createTestUser(t, db, "leader")
	foundTestTeam(t, e, leader.ID, 1)

	assert.ErrorIs(t, e.Quit(ctx, leader.ID), pkgErrors.ErrLeaderCannotQuit)
}

func TestEngineFire(t *testing.T) {
	e, db, _ := testEngine(t)
	ctx := context.Background()

	leader := createTestUser(t, db, "leader")
	member := createTestUser(t, db, "member")
	team := foundTestTeam(t, e, leader.ID, 1)

	offer, err := e.Apply(ctx, member.ID, team.ID, model.PositionBackend)
	require.NoError(t, err)
	require.NoError(t, e.Accept(ctx, leader.ID, offer.ID))

	// 只有队长能移出队员
	assert.ErrorIs(t, e.Fire(ctx, member.ID, leader.ID), pkgErrors.ErrNotLeader)

	require.NoError(t, e.Fire(ctx, leader.ID, member.ID))

	var gotMember model.TeamMember
	require.NoError(t, db.Where("user_id = ? AND team_id = ?", member.ID, team.ID).First(&gotMember).Error)
	assert.Equal(t, model.TeamMemberStatusFired, gotMember.Status)

	var gotTeam model.Team
	require.NoError(t, db.First(&gotTeam, team.ID).Error)
	assert.EqualValues(t, 0, gotTeam.BackendCurrentCnt)
	assert.True(t, gotTeam.IsRecruiting)
}

func TestEngineComplete(t *testing.T) {
	e, db, _ := testEngine(t)
	ctx := context.Background()

	leader := createTestUser(t, db, "leader")
	member := createTestUser(t, db, "member")
	team := foundTestTeam(t, e, leader.ID, 1)

	offer, err := e.Apply(ctx, member.ID, team.ID, model.PositionBackend)
	require.NoError(t, err)
	require.NoError(t, e.Accept(ctx, leader.ID, offer.ID))

	now := time.Now()
	require.NoError(t, e.Complete(ctx, leader.ID, "https://example.com/demo", now))

	var gotTeam model.Team
	require.NoError(t, db.First(&gotTeam, team.ID).Error)
	require.NotNil(t, gotTeam.CompletedAt)
	assert.False(t, gotTeam.IsRecruiting)

	// 重复完成报错
	assert.ErrorIs(t, e.Complete(ctx, leader.ID, "", now), pkgErrors.ErrTeamCompleted)

	var members []*model.TeamMember
	require.NoError(t, db.Where("team_id = ?", team.ID).Find(&members).Error)
	require.Len(t, members, 2)
	for _, m := range members {
		assert.Equal(t, model.TeamMemberStatusComplete, m.Status)
	}

	// 完成后全员恢复求职中
	var gotUser model.User
	require.NoError(t, db.First(&gotUser, member.ID).Error)
	assert.True(t, gotUser.IsSeekingTeam)
}

func TestEngineDisband(t *testing.T) {
	e, db, _ := testEngine(t)
	ctx := context.Background()

	leader := createTestUser(t, db, "leader")
	member := createTestUser(t, db, "member")
	outsider := createTestUser(t, db, "outsider")
	team := foundTestTeam(t, e, leader.ID, 2)

	offer, err := e.Apply(ctx, member.ID, team.ID, model.PositionBackend)
	require.NoError(t, err)
	require.NoError(t, e.Accept(ctx, leader.ID, offer.ID))

	pending, err := e.Apply(ctx, outsider.ID, team.ID, model.PositionBackend)
	require.NoError(t, err)

	require.NoError(t, e.Disband(ctx, leader.ID))

	// 团队软删除, 常规查询不可见
	var gotTeam model.Team
	err = db.First(&gotTeam, team.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// 队员转为 INCOMPLETE, 待处理提议被撤回
	var members []*model.TeamMember
	require.NoError(t, db.Where("team_id = ?", team.ID).Find(&members).Error)
	for _, m := range members {
		assert.Equal(t, model.TeamMemberStatusIncomplete, m.Status)
	}

	var gotOffer model.Offer
	require.NoError(t, db.First(&gotOffer, pending.ID).Error)
	assert.Equal(t, model.OfferStatusCancelled, gotOffer.Status)
}
