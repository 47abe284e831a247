package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"teamup/internal/model"
)

// NotificationType 通知类型
type NotificationType string

const (
	NotifyOfferReceived NotificationType = "offer_received" // 收到提议
	NotifyMemberJoined  NotificationType = "member_joined"  // 新队员加入
	NotifyMemberFired   NotificationType = "member_fired"   // 队员被移出
	NotifyMemberQuit    NotificationType = "member_quit"    // 队员退出
	NotifyTeamDisbanded NotificationType = "team_disbanded" // 团队解散
	NotifyTeamCompleted NotificationType = "team_completed" // 项目完成
)

// NotificationMessage 通知消息
type NotificationMessage struct {
	Type      NotificationType       `json:"type"`
	Title     string                 `json:"title"`
	Content   string                 `json:"content"`
	UserIDs   []int64                `json:"user_ids"` // 接收人
	Timestamp time.Time              `json:"timestamp"`
	Extra     map[string]interface{} `json:"extra,omitempty"` // 额外信息
}

// Notifier 通知器接口
// 发送失败只记录日志, 绝不影响调用方事务
type Notifier interface {
	// Send 发送通知
	Send(ctx context.Context, msg *NotificationMessage) error

	// SendOfferReceived 收到提议通知
	SendOfferReceived(ctx context.Context, offer *model.Offer, team *model.Team, targetUserIDs []int64) error

	// SendTeamEvent 团队事件通知(加入/移出/退出/解散/完成)
	SendTeamEvent(ctx context.Context, notifyType NotificationType, team *model.Team, subject *model.User, targetUserIDs []int64) error
}

// ============= Push 网关通知适配器 =============

// PushNotifier 推送网关通知器, 经由HTTP webhook转发到推送服务
type PushNotifier struct {
	webhookURL string
	enabled    bool
	logger     *zap.Logger
	client     *http.Client
}

// NewPushNotifier 创建推送通知器
func NewPushNotifier(webhookURL string, enabled bool, logger *zap.Logger) *PushNotifier {
	return &PushNotifier{
		webhookURL: webhookURL,
		enabled:    enabled,
		logger:     logger,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send 发送通知
func (n *PushNotifier) Send(ctx context.Context, msg *NotificationMessage) error {
	if !n.enabled {
		n.logger.Debug("通知已禁用,跳过发送")
		return nil
	}

	if n.webhookURL == "" {
		n.logger.Warn("推送Webhook URL未配置")
		return nil
	}

	jsonData, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("序列化消息失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", n.webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("创建请求失败: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("发送请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("推送网关返回错误状态码: %d", resp.StatusCode)
	}

	n.logger.Info("推送通知发送成功",
		zap.String("type", string(msg.Type)),
		zap.String("title", msg.Title))

	return nil
}

// SendOfferReceived 收到提议通知
func (n *PushNotifier) SendOfferReceived(ctx context.Context, offer *model.Offer, team *model.Team, targetUserIDs []int64) error {
	var title, content string
	switch offer.OfferedBy {
	case model.OfferedByUser:
		title = "新的加入申请"
		content = fmt.Sprintf("有用户申请加入 %s 的 %s 职位", team.ProjectName, offer.Position)
	default:
		title = "新的团队邀请"
		content = fmt.Sprintf("%s 团队邀请你担任 %s 职位", team.ProjectName, offer.Position)
	}

	msg := &NotificationMessage{
		Type:      NotifyOfferReceived,
		Title:     title,
		Content:   content,
		UserIDs:   targetUserIDs,
		Timestamp: time.Now(),
		Extra: map[string]interface{}{
			"offer_id": offer.ID,
			"team_id":  team.ID,
			"position": string(offer.Position),
		},
	}

	return n.Send(ctx, msg)
}

// SendTeamEvent 团队事件通知
func (n *PushNotifier) SendTeamEvent(ctx context.Context, notifyType NotificationType, team *model.Team, subject *model.User, targetUserIDs []int64) error {
	var title, content string

	switch notifyType {
	case NotifyMemberJoined:
		title = "新队员加入"
		content = fmt.Sprintf("%s 加入了团队 %s", subject.Nickname, team.ProjectName)
	case NotifyMemberFired:
		title = "队员变动"
		content = fmt.Sprintf("%s 已被移出团队 %s", subject.Nickname, team.ProjectName)
	case NotifyMemberQuit:
		title = "队员退出"
		content = fmt.Sprintf("%s 退出了团队 %s", subject.Nickname, team.ProjectName)
	case NotifyTeamDisbanded:
		title = "团队解散"
		content = fmt.Sprintf("团队 %s 已解散", team.ProjectName)
	case NotifyTeamCompleted:
		title = "项目完成"
		content = fmt.Sprintf("团队 %s 的项目已完成, 前往给队友评分吧", team.ProjectName)
	default:
		title = "团队通知"
		content = team.ProjectName
	}

	msg := &NotificationMessage{
		Type:      notifyType,
		Title:     title,
		Content:   content,
		UserIDs:   targetUserIDs,
		Timestamp: time.Now(),
		Extra: map[string]interface{}{
			"team_id": team.ID,
		},
	}

	return n.Send(ctx, msg)
}
