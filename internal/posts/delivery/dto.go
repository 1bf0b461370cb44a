package delivery

import (
	"time"

	"github.com/SlavaShagalov/blog-platform/internal/models"
	"github.com/SlavaShagalov/blog-platform/internal/pkg/pagination"
)

type CreatePostDTO struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Tags     []string `json:"tags"`
	Category string   `json:"category"`
}

type UpdatePostDTO struct {
	Title    *string   `json:"title"`
	Body     *string   `json:"body"`
	Tags     *[]string `json:"tags"`
	Category *string   `json:"category"`
}

type PostDTO struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Body      string          `json:"body"`
	Author    string          `json:"author"`
	AuthorID  string          `json:"authorId"`
	Tags      []string        `json:"tags"`
	Category  models.Category `json:"category"`
	Views     int             `json:"views"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type PaginationDTO struct {
	Page       int  `json:"page"`
	TotalPages int  `json:"totalPages"`
	Total      int  `json:"total"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

type PostResponse struct {
	Success bool    `json:"success"`
	Post    PostDTO `json:"post"`
}

type ListResponse struct {
	Success    bool          `json:"success"`
	Posts      []PostDTO     `json:"posts"`
	Pagination PaginationDTO `json:"pagination"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewPostDTO(post models.Post) PostDTO {
	return PostDTO{
		ID:        post.ID.String(),
		Title:     post.Title,
		Body:      post.Body,
		Author:    post.Author,
		AuthorID:  post.AuthorID.String(),
		Tags:      post.Tags,
		Category:  post.Category,
		Views:     post.Views,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
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
