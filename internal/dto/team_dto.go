package dto

// TeamCreateRequest 创建团队请求, 创建者即队长
type TeamCreateRequest struct {
	ProjectName        string `json:"project_name" binding:"required,max=20"`
	ProjectDescription string `json:"project_description" binding:"required,max=500"`
	Expectation        string `json:"expectation" binding:"required,max=200"`
	OpenChatURL        string `json:"open_chat_url" binding:"required,url,max=100"`
	LeaderPosition     string `json:"leader_position" binding:"required,oneof=DESIGNER BACKEND FRONTEND MANAGER"`
	DesignerMaxCnt     int8   `json:"designer_max_cnt" binding:"min=0,max=20"`
	BackendMaxCnt      int8   `json:"backend_max_cnt" binding:"min=0,max=20"`
	FrontendMaxCnt     int8   `json:"frontend_max_cnt" binding:"min=0,max=20"`
	ManagerMaxCnt      int8   `json:"manager_max_cnt" binding:"min=0,max=20"`
}

// TeamUpdateRequest 更新团队请求, 最大人数不可低于当前人数
type TeamUpdateRequest struct {
	ProjectName        string `json:"project_name" binding:"required,max=20"`
	ProjectDescription string `json:"project_description" binding:"required,max=500"`
	Expectation        string `json:"expectation" binding:"required,max=200"`
	DesignerMaxCnt     int8   `json:"designer_max_cnt" binding:"min=0,max=20"`
	BackendMaxCnt      int8   `json:"backend_max_cnt" binding:"min=0,max=20"`
	FrontendMaxCnt     int8   `json:"frontend_max_cnt" binding:"min=0,max=20"`
	ManagerMaxCnt      int8   `json:"manager_max_cnt" binding:"min=0,max=20"`
}

// TeamCompleteRequest 项目完成请求
type TeamCompleteRequest struct {
	ProjectURL string `json:"project_url" binding:"omitempty,url,max=255"`
}

// TeamListQuery 招募中团队分页查询
type TeamListQuery struct {
	PageQuery
	Position string `form:"position" binding:"omitempty,oneof=DESIGNER BACKEND FRONTEND MANAGER"`
}

// PositionCnt 单个职位的名额
type PositionCnt struct {
	Position   string `json:"position"`
	CurrentCnt int8   `json:"current_cnt"`
	MaxCnt     int8   `json:"max_cnt"`
	IsFull     bool   `json:"is_full"`
}

// TeamAbstractResponse 团队列表项
type TeamAbstractResponse struct {
	ID           int64         `json:"id"`
	ProjectName  string        `json:"project_name"`
	Positions    []PositionCnt `json:"positions"`
	IsRecruiting bool          `json:"is_recruiting"`
	CreatedAt    string        `json:"created_at"`
}

// TeamResponse 团队详情
type TeamResponse struct {
	ID                 int64                 `json:"id"`
	ProjectName        string                `json:"project_name"`
	ProjectDescription string                `json:"project_description"`
	Expectation        string                `json:"expectation"`
	OpenChatURL        string                `json:"open_chat_url,omitempty"`
	ProjectURL         *string               `json:"project_url,omitempty"`
	Positions          []PositionCnt         `json:"positions"`
	IsRecruiting       bool                  `json:"is_recruiting"`
	VisitedCnt         int64                 `json:"visited_cnt"`
	CompletedAt        *string               `json:"completed_at,omitempty"`
	Members            []*TeamMemberResponse `json:"members,omitempty"`
	CreatedAt          string                `json:"created_at"`
}

// TeamMemberResponse 队员信息
type TeamMemberResponse struct {
	ID       int64               `json:"id"`
	Position string              `json:"position"`
	IsLeader bool                `json:"is_leader"`
	Status   string              `json:"status"`
	User     *UserSimpleResponse `json:"user,omitempty"`
}

// FireMemberRequest 移出队员请求
type FireMemberRequest struct {
	UserID int64 `json:"user_id" binding:"required,min=1"`
}
