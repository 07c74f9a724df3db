package model

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// PostRequest is the body of POST /posts and PUT /posts/:id.
// Both accept JSON or urlencoded forms; all three fields are required and
// PUT replaces every field.
type PostRequest struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
	Author  string `json:"author" form:"author"`
}

func (r PostRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.Author, validation.Required.Error("author is required")),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMissingFields, err)
	}
	return nil
}
