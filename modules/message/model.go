package message

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/remindme/pkg/validator"
)

// Message records a text sent for one of the owner's reminders.
type Message struct {
	ID         bson.ObjectID `bson:"_id" json:"id"`
	AccountID  bson.ObjectID `bson:"accountId" json:"accountId"`
	ReminderID bson.ObjectID `bson:"reminderId" json:"reminderId"`
	SentTo     string        `bson:"sentTo" json:"sentTo"`
	Body       string        `bson:"body" json:"body"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
}

// Input is the create payload.
type Input struct {
	ReminderID string `json:"reminderId"`
	SentTo     string `json:"sentTo"`
	Body       string `json:"body"`
}

func (in Input) Validate() error {
	return validator.Apply(
		validator.Required("reminderId", in.ReminderID),
		validator.Required("sentTo", in.SentTo),
		validator.When(in.SentTo != "", validator.ValidPhone("sentTo", in.SentTo)),
		validator.Required("body", in.Body),
		validator.MaxLen("body", in.Body, 1600),
	)
}

// ListQuery filters the list route.
type ListQuery struct {
	ReminderID string `query:"reminderId"`
}

// IDParam selects one message.
type IDParam struct {
	ID string `path:"id"`
}
