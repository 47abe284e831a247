package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "teamup/pkg/errors"
)

func newTestTeam() *Team {
	return &Team{
		ProjectName:    "demo",
		DesignerMaxCnt: 1,
		BackendMaxCnt:  2,
		FrontendMaxCnt: 0,
		ManagerMaxCnt:  1,
		IsRecruiting:   true,
	}
}

func TestTeamJoin(t *testing.T) {
	team := newTestTeam()

	require.NoError(t, team.Join(PositionBackend))
	assert.EqualValues(t, 1, team.BackendCurrentCnt)
	assert.True(t, team.IsRecruiting)

	// 职位满员后再次加入报错, 计数不变
	require.NoError(t, team.Join(PositionBackend))
	err := team.Join(PositionBackend)
	assert.ErrorIs(t, err, pkgErrors.ErrPositionNowFull)
	assert.EqualValues(t, 2, team.BackendCurrentCnt)

	// max=0 的职位视为不开放
	assert.ErrorIs(t, team.Join(PositionFrontend), pkgErrors.ErrPositionNowFull)
}

func TestTeamJoinLastSlotStopsRecruiting(t *testing.T) {
	team := newTestTeam()

	require.NoError(t, team.Join(PositionDesigner))
	require.NoError(t, team.Join(PositionBackend))
	require.NoError(t, team.Join(PositionBackend))
	assert.True(t, team.IsRecruiting)

	// 最后一个名额占用后停止招募
	require.NoError(t, team.Join(PositionManager))
	assert.True(t, team.IsFull())
	assert.False(t, team.IsRecruiting)
}

func TestTeamJoinCompleted(t *testing.T) {
	team := newTestTeam()
	now := time.Now()
	team.Complete("https://example.com/demo", now)

	assert.ErrorIs(t, team.Join(PositionBackend), pkgErrors.ErrTeamCompleted)
	assert.False(t, team.IsRecruiting)
}

func TestTeamLeave(t *testing.T) {
	team := newTestTeam()
	require.NoError(t, team.Join(PositionDesigner))
	require.NoError(t, team.Join(PositionBackend))
	require.NoError(t, team.Join(PositionBackend))
	require.NoError(t, team.Join(PositionManager))
	require.False(t, team.IsRecruiting)

	// 释放名额后恢复招募
	team.Leave(PositionBackend)
	assert.EqualValues(t, 1, team.BackendCurrentCnt)
	assert.True(t, team.IsRecruiting)

	// 计数不会降到负数
	team.Leave(PositionFrontend)
	assert.EqualValues(t, 0, team.FrontendCurrentCnt)
}

func TestTeamLeaveAfterComplete(t *testing.T) {
	team := newTestTeam()
	require.NoError(t, team.Join(PositionBackend))
	team.Complete("", time.Now())

	// 已完成的团队释放名额也不恢复招募
	team.Leave(PositionBackend)
	assert.False(t, team.IsRecruiting)
}

func TestTeamUpdateMaxCnt(t *testing.T) {
	team := newTestTeam()
	require.NoError(t, team.Join(PositionBackend))
	require.NoError(t, team.Join(PositionBackend))

	// 不允许低于当前人数
	err := team.UpdateMaxCnt(1, 1, 0, 1)
	assert.ErrorIs(t, err, pkgErrors.ErrMaxCntBelowCurrent)
	assert.EqualValues(t, 2, team.BackendMaxCnt)

	require.NoError(t, team.UpdateMaxCnt(0, 2, 3, 1))
	assert.EqualValues(t, 3, team.FrontendMaxCnt)
	assert.True(t, team.IsRecruiting)

	// 调整后恰好满员则停止招募
	require.NoError(t, team.UpdateMaxCnt(0, 2, 0, 0))
	assert.False(t, team.IsRecruiting)
}

func TestTeamIsFull(t *testing.T) {
	team := &Team{BackendMaxCnt: 1}
	assert.False(t, team.IsFull())

	require.NoError(t, team.Join(PositionBackend))
	assert.True(t, team.IsFull())

	// 全部职位 max=0 时视为满员
	empty := &Team{}
	assert.True(t, empty.IsFull())
}

func TestTeamVisit(t *testing.T) {
	team := newTestTeam()
	team.Visit()
	team.Visit()
	assert.EqualValues(t, 2, team.VisitedCnt)
}
