package domain

// Post is the client-side copy of a board post. Owned by the server;
// the client never mutates one in place.
type Post struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AuthorNickname string    `json:"authorNickname"`
	CreatedAt      Timestamp `json:"createdAt"`
	ViewCount      int       `json:"viewCount"`
	CommentCount   int       `json:"commentCount"`
}

// PostPage is one fetched page of the board listing. It is replaced
// wholesale on every fetch, never patched.
type PostPage struct {
	Items      []Post
	PageIndex  int
	TotalPages int
}

// PostListResponse is the wire shape of the listing and search endpoints.
type PostListResponse struct {
	Content    []Post `json:"content"`
	TotalPages int    `json:"totalPages"`
}

// WritePostRequest is the body for creating or updating a post.
type WritePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
