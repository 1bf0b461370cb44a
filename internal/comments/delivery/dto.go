package delivery

import (
	"time"

	"github.com/SlavaShagalov/blog-platform/internal/models"
	"github.com/SlavaShagalov/blog-platform/internal/pkg/pagination"
)

type CreateCommentDTO struct {
	PostID string `json:"postId"`
	Body   string `json:"body"`
}

type UpdateCommentDTO struct {
	Body string `json:"body"`
}

type CommentDTO struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Author    string    `json:"author"`
	AuthorID  string    `json:"authorId"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PaginationDTO struct {
	Page       int  `json:"page"`
	TotalPages int  `json:"totalPages"`
	Total      int  `json:"total"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

type CommentResponse struct {
	Success bool       `json:"success"`
	Comment CommentDTO `json:"comment"`
}

type ListResponse struct {
	Success    bool          `json:"success"`
	Comments   []CommentDTO  `json:"comments"`
	Pagination PaginationDTO `json:"pagination"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewCommentDTO(comment models.Comment) CommentDTO {
	return CommentDTO{
		ID:        comment.ID.String(),
		PostID:    comment.PostID.String(),
		Author:    comment.Author,
		AuthorID:  comment.AuthorID.String(),
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

func NewPaginationDTO(meta pagination.Meta) PaginationDTO {
	return PaginationDTO{
		Page:       meta.Page,
		TotalPages: meta.TotalPages,
		Total:      meta.Total,
		HasNext:    meta.HasNext,
		HasPrev:    meta.HasPrev,
	}
}
