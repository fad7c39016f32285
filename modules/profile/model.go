package profile

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/remindme/pkg/validator"
)

// Profile is the public card of an account. An account has at most one.
type Profile struct {
	ID        bson.ObjectID `bson:"_id" json:"id"`
	AccountID bson.ObjectID `bson:"accountId" json:"accountId"`
	FirstName string        `bson:"firstName" json:"firstName"`
	LastName  string        `bson:"lastName" json:"lastName"`
	Bio       string        `bson:"bio,omitempty" json:"bio,omitempty"`
	Location  string        `bson:"location,omitempty" json:"location,omitempty"`
	AvatarURL string        `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Input carries the editable profile fields.
type Input struct {
	ID        string `path:"id" json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
	AvatarURL string `json:"avatarUrl"`
}

func (in Input) Validate() error {
	return validator.Apply(
		validator.Required("firstName", in.FirstName),
		validator.MaxLen("firstName", in.FirstName, 100),
		validator.Required("lastName", in.LastName),
		validator.MaxLen("lastName", in.LastName, 100),
		validator.MaxLen("bio", in.Bio, 1000),
		validator.MaxLen("location", in.Location, 200),
		validator.When(in.AvatarURL != "", validator.ValidURL("avatarUrl", in.AvatarURL)),
	)
}

func (in Input) apply(p *Profile) {
	p.FirstName = in.FirstName
	p.LastName = in.LastName
	p.Bio = in.Bio
	p.Location = in.Location
	p.AvatarURL = in.AvatarURL
}
