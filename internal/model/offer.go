package model

import (
	pkgErrors "teamup/pkg/errors"
)

const OfferTableName = "offers"

// Offer 提议
// USER 方向为用户申请, LEADER 方向为队长邀请
type Offer struct {
	BaseModelWithSoftDelete

	UserID    int64       `gorm:"column:user_id;not null;index" json:"user_id"`
	TeamID    int64       `gorm:"column:team_id;not null;index" json:"team_id"`
	Position  Position    `gorm:"size:20;not null" json:"position"`
	OfferedBy OfferedBy   `gorm:"size:6;not null" json:"offered_by"`
	Status    OfferStatus `gorm:"size:10;not null;default:PENDING;index" json:"offer_status"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Team *Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

// TableName 指定表名
func (Offer) TableName() string {
	return OfferTableName
}

// IsPending 是否待处理
func (o *Offer) IsPending() bool {
	return o.Status == OfferStatusPending
}

// Accept 接受提议, 进入终态
func (o *Offer) Accept() error {
	if !o.IsPending() {
		return pkgErrors.ErrOfferAlreadyResolved
	}
	o.Status = OfferStatusAccepted
	return nil
}

// Decline 拒绝提议, 进入终态
func (o *Offer) Decline() error {
	if !o.IsPending() {
		return pkgErrors.ErrOfferAlreadyResolved
	}
	o.Status = OfferStatusDeclined
	return nil
}

// Cancel 撤回提议, 进入终态
func (o *Offer) Cancel() error {
	if !o.IsPending() {
		return pkgErrors.ErrOfferAlreadyResolved
	}
	o.Status = OfferStatusCancelled
	return nil
}
