// Package validator provides composable validation rules.
//
// Each rule pairs a check with the error reported when it fails. Apply runs
// them all and returns ValidationErrors, so a caller can report every problem
// with a request at once:
//
//	err := validator.Apply(
//	    validator.RequiredString("resource", req.Resource),
//	    validator.OneOfString("action", req.Action, actionTokens),
//	)
//	if ve := validator.ExtractValidationErrors(err); ve != nil {
//	    // ve.Fields(), ve.Get("action")
//	}
package validator
