package model

const ReviewTableName = "reviews"

// Review 评价
// 同一 (reviewer, reviewee) 在一个团队内仅允许一条
type Review struct {
	BaseModel

	ReviewerID int64  `gorm:"column:reviewer_id;not null;index;uniqueIndex:idx_review_pair" json:"reviewer_id"`
	RevieweeID int64  `gorm:"column:reviewee_id;not null;index;uniqueIndex:idx_review_pair" json:"reviewee_id"`
	Rating     int8   `gorm:"not null" json:"rating"` // [1,5]
	Post       string `gorm:"size:200;not null" json:"post"`

	// Relations, 均指向 TeamMember
	Reviewer *TeamMember `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	Reviewee *TeamMember `gorm:"foreignKey:RevieweeID" json:"reviewee,omitempty"`
}

// TableName 指定表名
func (Review) TableName() string {
	return ReviewTableName
}
