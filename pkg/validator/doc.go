// Package validator provides composable validation rules.
//
// Each rule pairs a check with the error reported when it fails. Apply runs
// a set of rules and collects every failure into ValidationErrors, whose
// message starts with "validation failed".
//
//	err := validator.Apply(
//		validator.Required("title", req.Title),
//		validator.MaxLen("title", req.Title, 200),
//		validator.ValidPhone("phoneNumber", req.PhoneNumber),
//	)
package validator
