package account

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	driver "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/remindme/pkg/mongo"
)

// Collection is the Mongo collection holding accounts.
const Collection = "accounts"

// MongoStore persists accounts in MongoDB.
// Lookups that match nothing fail with a core.KindNotFound error; inserts
// that break a unique index fail with core.KindConflict.
type MongoStore struct {
	repo *mongo.Repository[Account]
	now  func() time.Time
}

// NewMongoStore binds a store to the accounts collection of db.
func NewMongoStore(db *driver.Database) *MongoStore {
	return &MongoStore{
		repo: mongo.NewRepository[Account](db, Collection),
		now:  time.Now,
	}
}

// EnsureIndexes creates the unique indexes backing the account invariants.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	return mongo.EnsureIndexes(ctx, s.repo.Collection(),
		mongo.UniqueIndex("email"),
		mongo.UniqueIndex("username"),
		mongo.UniqueIndex("tokenSeed"),
	)
}

func (s *MongoStore) FindByEmail(ctx context.Context, email string) (*Account, error) {
	return s.repo.FindOne(ctx, bson.M{"email": email})
}

func (s *MongoStore) FindByUsername(ctx context.Context, username string) (*Account, error) {
	return s.repo.FindOne(ctx, bson.M{"username": username})
}

func (s *MongoStore) FindByTokenSeed(ctx context.Context, tokenSeed string) (*Account, error) {
	return s.repo.FindOne(ctx, bson.M{"tokenSeed": tokenSeed})
}

// Create inserts a new account without a password.
func (s *MongoStore) Create(ctx context.Context, username, email, tokenSeed string) (*Account, error) {
	acc := &Account{
		Username:  username,
		Email:     email,
		TokenSeed: tokenSeed,
	}
	if err := s.Insert(ctx, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// Insert stores acc, assigning its id and creation time when unset.
func (s *MongoStore) Insert(ctx context.Context, acc *Account) error {
	if acc.ID.IsZero() {
		acc.ID = bson.NewObjectID()
	}
	if acc.CreatedAt.IsZero() {
		acc.CreatedAt = s.now().UTC()
	}
	return s.repo.Insert(ctx, acc)
}

// Save overwrites the stored copy of acc.
func (s *MongoStore) Save(ctx context.Context, acc *Account) error {
	return s.repo.Replace(ctx, bson.M{"_id": acc.ID}, acc)
}
