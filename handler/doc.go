// Package handler turns typed request handlers into http.HandlerFuncs and
// maps failures to HTTP status codes.
//
// A HandlerFunc receives a Context and a bound request value and returns a
// Response. Wrap runs the configured binders, calls the handler and renders
// the response; any error on the way goes to the ErrorHandler.
//
//	h := handler.HandlerFunc[handler.Context, CreateReminderRequest](
//		func(ctx handler.Context, req CreateReminderRequest) handler.Response {
//			reminder, err := svc.Create(ctx, req)
//			if err != nil {
//				return handler.Error(err)
//			}
//			return handler.JSON(reminder, handler.WithJSONStatus(http.StatusCreated))
//		},
//	)
//	r.Post("/api/reminders", handler.Wrap(h,
//		handler.WithBinders[handler.Context, CreateReminderRequest](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, CreateReminderRequest](errorHandler),
//	))
//
// # Error classification
//
// Classify picks the status for an error: an explicit status carried by the
// error wins, then a core.Kind attached where the failure happened, then a
// match on the error text, and 500 otherwise. The error handler answers with
// the bare status and logs the error. When the response was already written
// (a redirect followed by a reported failure) it only logs.
package handler
