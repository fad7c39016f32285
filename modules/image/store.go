package image

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	driver "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/remindme/pkg/mongo"
)

const Collection = "images"

type MongoStore struct {
	repo *mongo.Repository[Image]
}

func NewMongoStore(db *driver.Database) *MongoStore {
	return &MongoStore{repo: mongo.NewRepository[Image](db, Collection)}
}

func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	return mongo.EnsureIndexes(ctx, s.repo.Collection(),
		mongo.Index("accountId"),
		mongo.UniqueIndex("key"),
	)
}

func (s *MongoStore) Insert(ctx context.Context, img *Image) error {
	return s.repo.Insert(ctx, img)
}

func (s *MongoStore) Get(ctx context.Context, id string, accountID bson.ObjectID) (*Image, error) {
	oid, err := mongo.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindOne(ctx, bson.M{"_id": oid, "accountId": accountID})
}

func (s *MongoStore) List(ctx context.Context, accountID bson.ObjectID) ([]Image, error) {
	return s.repo.Find(ctx, bson.M{"accountId": accountID})
}

func (s *MongoStore) Delete(ctx context.Context, id bson.ObjectID, accountID bson.ObjectID) error {
	return s.repo.Delete(ctx, bson.M{"_id": id, "accountId": accountID})
}
