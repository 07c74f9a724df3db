package model

// Post is a row of the posts table. ID is assigned by the store and never
// changes after insert.
type Post struct {
	ID      int64  `json:"id" db:"id"`
	Title   string `json:"title" db:"title"`
	Content string `json:"content" db:"content"`
	Author  string `json:"author" db:"author"`
}

// DeleteResult is the payload returned after a successful delete
type DeleteResult struct {
	ID int64 `json:"id"`
}
