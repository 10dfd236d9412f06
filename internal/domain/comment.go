package domain

// Comment is the client-side copy of a post comment.
type Comment struct {
	ID             int64     `json:"id"`
	PostID         int64     `json:"postId"`
	AuthorNickname string    `json:"authorNickname"`
	Content        string    `json:"content"`
	CreatedAt      Timestamp `json:"createdAt"`
}

// CreateCommentRequest is the body for creating or updating a comment.
type CreateCommentRequest struct {
	Content string `json:"content"`
}
