package session

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/remindme/core"
	"github.com/dmitrymomot/remindme/modules/account"
)

type accountKey struct{}

// WithAccount stores the authenticated account in ctx.
func WithAccount(ctx context.Context, acc *account.Account) context.Context {
	return context.WithValue(ctx, accountKey{}, acc)
}

// AccountFromContext returns the account stored by Authenticator.
func AccountFromContext(ctx context.Context) (*account.Account, bool) {
	acc, ok := ctx.Value(accountKey{}).(*account.Account)
	return acc, ok && acc != nil
}

// AccountID returns the id of the authenticated account. Without one the
// error is tagged core.KindUnauthorized.
func AccountID(ctx context.Context) (bson.ObjectID, error) {
	acc, ok := AccountFromContext(ctx)
	if !ok {
		return bson.NilObjectID, core.Unauthorized(ErrMissingToken)
	}
	return acc.ID, nil
}
