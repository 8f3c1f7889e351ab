package presenter

import "github.com/ecohero/storefront-backend/internal/domain/entity"

// SubscriberPresenter shapes domain entities for delivery layer
// responses.
type SubscriberPresenter struct{}

func NewSubscriberPresenter() *SubscriberPresenter {
	return &SubscriberPresenter{}
}

type SubscriberResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Source    string `json:"source,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (p *SubscriberPresenter) ToResponse(sub *entity.Subscriber) *SubscriberResponse {
	if sub == nil {
		return nil
	}
	return &SubscriberResponse{
		ID:        sub.ID,
		Email:     sub.Email,
		Source:    sub.Source,
		Status:    sub.Status,
		CreatedAt: sub.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: sub.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (p *SubscriberPresenter) ToList(subs []*entity.Subscriber) []*SubscriberResponse {
	result := make([]*SubscriberResponse, 0, len(subs))
	for _, sub := range subs {
		result = append(result, p.ToResponse(sub))
	}
	return result
}
