package reminder

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/remindme/pkg/validator"
)

// Reminder is a text to be sent to a phone number at SendAt.
type Reminder struct {
	ID          bson.ObjectID `bson:"_id" json:"id"`
	AccountID   bson.ObjectID `bson:"accountId" json:"accountId"`
	Title       string        `bson:"title" json:"title"`
	Body        string        `bson:"body" json:"body"`
	PhoneNumber string        `bson:"phoneNumber" json:"phoneNumber"`
	SendAt      time.Time     `bson:"sendAt" json:"sendAt"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Input carries the editable reminder fields.
type Input struct {
	ID          string    `path:"id" json:"-"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	PhoneNumber string    `json:"phoneNumber"`
	SendAt      time.Time `json:"sendAt"`
}

func (in Input) Validate() error {
	return validator.Apply(
		validator.Required("title", in.Title),
		validator.MaxLen("title", in.Title, 200),
		validator.Required("body", in.Body),
		validator.MaxLen("body", in.Body, 1600),
		validator.Required("phoneNumber", in.PhoneNumber),
		validator.When(in.PhoneNumber != "", validator.ValidPhone("phoneNumber", in.PhoneNumber)),
		validator.RequiredTime("sendAt", in.SendAt),
	)
}

func (in Input) apply(r *Reminder) {
	r.Title = in.Title
	r.Body = in.Body
	r.PhoneNumber = in.PhoneNumber
	r.SendAt = in.SendAt.UTC()
}
