package dto

// CreateCommentRequest is the comment creation payload
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
