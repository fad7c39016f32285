package reminder

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	driver "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/remindme/pkg/mongo"
)

const Collection = "reminders"

// MongoStore keeps reminders scoped by owner: every lookup filters on the
// owning account, so foreign ids read as missing.
type MongoStore struct {
	repo *mongo.Repository[Reminder]
}

func NewMongoStore(db *driver.Database) *MongoStore {
	return &MongoStore{repo: mongo.NewRepository[Reminder](db, Collection)}
}

func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	return mongo.EnsureIndexes(ctx, s.repo.Collection(), mongo.Index("accountId"))
}

func (s *MongoStore) Insert(ctx context.Context, r *Reminder) error {
	return s.repo.Insert(ctx, r)
}

func (s *MongoStore) Get(ctx context.Context, id string, accountID bson.ObjectID) (*Reminder, error) {
	oid, err := mongo.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindOne(ctx, bson.M{"_id": oid, "accountId": accountID})
}

func (s *MongoStore) List(ctx context.Context, accountID bson.ObjectID) ([]Reminder, error) {
	return s.repo.Find(ctx, bson.M{"accountId": accountID})
}

func (s *MongoStore) Update(ctx context.Context, r *Reminder) error {
	return s.repo.Replace(ctx, bson.M{"_id": r.ID, "accountId": r.AccountID}, r)
}

func (s *MongoStore) Delete(ctx context.Context, id string, accountID bson.ObjectID) error {
	oid, err := mongo.ParseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, bson.M{"_id": oid, "accountId": accountID})
}
