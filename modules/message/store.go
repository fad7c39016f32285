package message

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	driver "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/remindme/pkg/mongo"
)

const Collection = "messages"

type MongoStore struct {
	repo *mongo.Repository[Message]
}

func NewMongoStore(db *driver.Database) *MongoStore {
	return &MongoStore{repo: mongo.NewRepository[Message](db, Collection)}
}

func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	return mongo.EnsureIndexes(ctx, s.repo.Collection(),
		mongo.Index("accountId"),
		mongo.Index("reminderId"),
	)
}

func (s *MongoStore) Insert(ctx context.Context, m *Message) error {
	return s.repo.Insert(ctx, m)
}

func (s *MongoStore) Get(ctx context.Context, id string, accountID bson.ObjectID) (*Message, error) {
	oid, err := mongo.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindOne(ctx, bson.M{"_id": oid, "accountId": accountID})
}

// List returns the owner's messages, narrowed to one reminder when
// reminderID is not zero.
func (s *MongoStore) List(ctx context.Context, accountID, reminderID bson.ObjectID) ([]Message, error) {
	filter := bson.M{"accountId": accountID}
	if !reminderID.IsZero() {
		filter["reminderId"] = reminderID
	}
	return s.repo.Find(ctx, filter)
}

func (s *MongoStore) Delete(ctx context.Context, id string, accountID bson.ObjectID) error {
	oid, err := mongo.ParseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, bson.M{"_id": oid, "accountId": accountID})
}
