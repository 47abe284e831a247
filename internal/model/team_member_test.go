package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "teamup/pkg/errors"
)

func TestTeamMemberFire(t *testing.T) {
	member := &TeamMember{Status: TeamMemberStatusActive}

	require.NoError(t, member.Fire())
	assert.Equal(t, TeamMemberStatusFired, member.Status)

	// 已离队的记录不可重复操作
	assert.ErrorIs(t, member.Fire(), pkgErrors.ErrTeamMemberNotFound)
}

func TestTeamMemberFireLeader(t *testing.T) {
	leader := &TeamMember{Status: TeamMemberStatusActive, IsLeader: true}

	assert.ErrorIs(t, leader.Fire(), pkgErrors.ErrNotLeader)
	assert.Equal(t, TeamMemberStatusActive, leader.Status)
}

func TestTeamMemberQuit(t *testing.T) {
	member := &TeamMember{Status: TeamMemberStatusActive}

	require.NoError(t, member.Quit())
	assert.Equal(t, TeamMemberStatusQuit, member.Status)
	assert.False(t, member.IsActive())
}

func TestTeamMemberQuitLeader(t *testing.T) {
	leader := &TeamMember{Status: TeamMemberStatusActive, IsLeader: true}

	// 队长需先解散团队
	assert.ErrorIs(t, leader.Quit(), pkgErrors.ErrLeaderCannotQuit)
	assert.Equal(t, TeamMemberStatusActive, leader.Status)
}

func TestTeamMemberIncomplete(t *testing.T) {
	member := &TeamMember{Status: TeamMemberStatusActive}

	require.NoError(t, member.Incomplete())
	assert.Equal(t, TeamMemberStatusIncomplete, member.Status)
	assert.ErrorIs(t, member.Incomplete(), pkgErrors.ErrTeamMemberNotFound)
}

func TestTeamMemberComplete(t *testing.T) {
	member := &TeamMember{Status: TeamMemberStatusActive}
	member.Complete()
	assert.Equal(t, TeamMemberStatusComplete, member.Status)
}
