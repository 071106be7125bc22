// Package binder decodes HTTP request bodies into Go structs.
//
// JSON returns a binder that requires an application/json content type,
// limits the body size, rejects unknown fields and trailing data, and trims
// surrounding whitespace from every decoded string.
//
//	var bindJSON = binder.JSON()
//
//	var req CheckRequest
//	if err := bindJSON(r, &req); err != nil {
//	    // errors.Is(err, binder.ErrUnsupportedMediaType) etc.
//	}
package binder
