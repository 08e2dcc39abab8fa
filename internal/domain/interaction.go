package domain

import "time"

type InteractionChannel string

const (
	InteractionChannelBranch InteractionChannel = "branch"
	InteractionChannelPhone  InteractionChannel = "phone"
	InteractionChannelChat   InteractionChannel = "chat"
	InteractionChannelEmail  InteractionChannel = "email"
)

type CustomerInteraction struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customer_id"`
	Channel    InteractionChannel `json:"channel"`
	Subject    string             `json:"subject"`
	Sentiment  string             `json:"sentiment"` // positive, neutral ou negative
	OccurredAt time.Time          `json:"occurred_at"`
	CreatedAt  time.Time          `json:"created_at"`
}
