package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInReviewWindow(t *testing.T) {
	completedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	deadline := completedAt.Add(4 * 7 * 24 * time.Hour)

	assert.True(t, InReviewWindow(completedAt, completedAt))
	assert.True(t, InReviewWindow(completedAt, completedAt.Add(24*time.Hour)))

	// 窗口边界: 截止时刻本身可评价, 之后一秒不可
	assert.True(t, InReviewWindow(completedAt, deadline.Add(-time.Second)))
	assert.True(t, InReviewWindow(completedAt, deadline))
	assert.False(t, InReviewWindow(completedAt, deadline.Add(time.Second)))
}
