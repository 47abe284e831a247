package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRate(t *testing.T) {
	user := &User{}

	// 依次收到 4, 2, 5 分, 均值递推累计
	user.Rate(4)
	assert.InDelta(t, 4.0, user.Rating, 1e-9)
	assert.EqualValues(t, 1, user.ReviewCnt)

	user.Rate(2)
	assert.InDelta(t, 3.0, user.Rating, 1e-9)

	user.Rate(5)
	assert.InDelta(t, 3.6667, user.Rating, 1e-4)
	assert.EqualValues(t, 3, user.ReviewCnt)
}

func TestUserRateFirstReview(t *testing.T) {
	user := &User{Rating: 0, ReviewCnt: 0}
	user.Rate(5)

	assert.InDelta(t, 5.0, user.Rating, 1e-9)
	assert.EqualValues(t, 1, user.ReviewCnt)
}

func TestUserRateManyReviews(t *testing.T) {
	user := &User{}
	for i := 0; i < 100; i++ {
		user.Rate(3)
	}

	// 相同评分任意次累计均值不漂移
	assert.InDelta(t, 3.0, user.Rating, 1e-9)
	assert.EqualValues(t, 100, user.ReviewCnt)
}
