// Package validation contains the logic for validating
// request data.
//
// It binds requests, runs each payload's Validate method and uses
// the `validator` library for field rules expressed as tags,
// converting failures into errors the client can understand.
package validation
