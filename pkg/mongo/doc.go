// Package mongo provides MongoDB connection management and a small typed
// repository used by every store in the service.
//
// New connects with bounded retries and verifies the server with a ping.
// Healthcheck returns a readiness probe. Repository wraps a collection and
// translates driver failures into tagged errors: a missing document or a
// malformed ObjectID is reported as core.KindNotFound, a unique index
// violation as core.KindConflict.
//
// # Usage
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer db.Client().Disconnect(context.Background())
//
//	reminders := mongo.NewRepository[Reminder](db, "reminders")
//	r, err := reminders.FindByID(ctx, id)
//
// # Configuration
//
// Config is read from MONGODB_* environment variables; MONGODB_URI is required.
package mongo
