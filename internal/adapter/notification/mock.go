package notification

import (
	"context"
	"sync"

	"teamup/internal/model"
)

// MockNotifier 模拟通知器, 记录所有已发送消息
type MockNotifier struct {
	mu        sync.Mutex
	sendError error
	messages  []*NotificationMessage
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// SetSendError 设置发送失败
func (m *MockNotifier) SetSendError(err error) *MockNotifier {
	m.sendError = err
	return m
}

// Messages 已发送消息快照
func (m *MockNotifier) Messages() []*NotificationMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*NotificationMessage, len(m.messages))
	copy(out, m.messages)
	return out
}

func (m *MockNotifier) Send(_ context.Context, msg *NotificationMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendError != nil {
		return m.sendError
	}
	m.messages = append(m.messages, msg)
	return nil
}

func (m *MockNotifier) SendOfferReceived(ctx context.Context, offer *model.Offer, team *model.Team, targetUserIDs []int64) error {
	return m.Send(ctx, &NotificationMessage{
		Type:    NotifyOfferReceived,
		UserIDs: targetUserIDs,
		Extra:   map[string]interface{}{"offer_id": offer.ID, "team_id": team.ID},
	})
}

func (m *MockNotifier) SendTeamEvent(ctx context.Context, notifyType NotificationType, team *model.Team, subject *model.User, targetUserIDs []int64) error {
	return m.Send(ctx, &NotificationMessage{
		Type:    notifyType,
		UserIDs: targetUserIDs,
		Extra:   map[string]interface{}{"team_id": team.ID},
	})
}
