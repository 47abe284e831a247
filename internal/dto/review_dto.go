package dto

// ReviewItem 单条评价
type ReviewItem struct {
	TeamMemberID int64  `json:"team_member_id" binding:"required,min=1"`
	Rating       int8   `json:"rating" binding:"required,min=1,max=5"`
	Post         string `json:"post" binding:"required,max=200"`
}

// ReviewCreateRequest 批量评价请求, 一次提交对多名队友的评价
type ReviewCreateRequest struct {
	Reviews []ReviewItem `json:"reviews" binding:"required,min=1,dive"`
}

// ReviewableTeamResponse 可评价的团队
type ReviewableTeamResponse struct {
	TeamID      int64  `json:"team_id"`
	ProjectName string `json:"project_name"`
	CompletedAt string `json:"completed_at"`
}

// ReviewResponse 评价信息
type ReviewResponse struct {
	ID        int64  `json:"id"`
	Rating    int8   `json:"rating"`
	Post      string `json:"post"`
	Reviewer  string `json:"reviewer,omitempty"` // 评价人昵称
	CreatedAt string `json:"created_at"`
}
