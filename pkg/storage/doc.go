// Package storage saves uploaded files to Amazon S3 or an S3-compatible
// service and builds their public URLs.
//
// Storage takes any S3Client, so tests can pass a mock instead of a real
// client. S3 failures are translated into package errors (ErrFileNotFound,
// ErrAccessDenied and the rest), which callers check with errors.Is.
//
//	store, err := storage.New(ctx, cfg)
//	obj, err := store.Save(ctx, fileHeader, "images/"+accountID+"/"+name)
//	_ = store.Delete(ctx, obj.Key)
package storage
