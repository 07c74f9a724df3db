package model

import (
	"errors"
	"net/http"
)

var (
	ErrMissingFields    = errors.New("missing required post fields")
	ErrPostNotFound     = errors.New("post not found")
	ErrStoreUnavailable = errors.New("post store unavailable")
)

// User-facing messages
const (
	MsgMissingFields    = "Error: Missing fields must be filled (title, content, author)"
	MsgPostNotFound     = "Unsuccessful: Post cannot be found!"
	MsgStoreUnavailable = "Unsuccessful: Something went wrong! Please try again later."

	MsgListed    = "Success: All posts have been retrieved!"
	MsgRetrieved = "Success: A post has been retrieved!"
	MsgCreated   = "Success: A post has been created!"
	MsgUpdated   = "Success: A post has been updated!"
	MsgDeleted   = "Success: A post has been deleted!"
)

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingFields):
		return http.StatusBadRequest
	case errors.Is(err, ErrPostNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ToMessage converts error to the message shown to clients. Anything not in
// the taxonomy is reported as a store failure so driver errors never leak.
func ToMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return MsgMissingFields
	case errors.Is(err, ErrPostNotFound):
		return MsgPostNotFound
	default:
		return MsgStoreUnavailable
	}
}
