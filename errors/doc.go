// Package errors defines the closed failure taxonomy of the gofetch request
// pipeline. Every failure is an *AppError carrying one of a small set of codes,
// the offending URL, a human description, and the original cause.
//
// HTTP status codes are not errors in this model: a 404 or 503 is an ordinary
// response whose status the caller interprets.
package errors
