package profile

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	driver "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/remindme/pkg/mongo"
)

const Collection = "profiles"

type MongoStore struct {
	repo *mongo.Repository[Profile]
}

func NewMongoStore(db *driver.Database) *MongoStore {
	return &MongoStore{repo: mongo.NewRepository[Profile](db, Collection)}
}

// EnsureIndexes enforces one profile per account.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	return mongo.EnsureIndexes(ctx, s.repo.Collection(), mongo.UniqueIndex("accountId"))
}

func (s *MongoStore) Insert(ctx context.Context, p *Profile) error {
	return s.repo.Insert(ctx, p)
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (*Profile, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MongoStore) FindByAccount(ctx context.Context, accountID bson.ObjectID) (*Profile, error) {
	return s.repo.FindOne(ctx, bson.M{"accountId": accountID})
}

// Update replaces p if it belongs to p.AccountID.
func (s *MongoStore) Update(ctx context.Context, p *Profile) error {
	return s.repo.Replace(ctx, bson.M{"_id": p.ID, "accountId": p.AccountID}, p)
}

// Delete removes the profile id owned by accountID.
func (s *MongoStore) Delete(ctx context.Context, id string, accountID bson.ObjectID) error {
	oid, err := mongo.ParseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, bson.M{"_id": oid, "accountId": accountID})
}
