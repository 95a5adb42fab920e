package http

import (
	"time"

	"blog-backend/internal/domain"
	"blog-backend/internal/service"
)

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type PostResponse struct {
	ID          string           `json:"id"`
	Author      *UserResponse    `json:"author,omitempty"`
	AuthorID    string           `json:"authorId"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Body        string           `json:"body"`
	Tags        []string         `json:"tags"`
	State       domain.PostState `json:"state"`
	ReadCount   int64            `json:"readCount"`
	ReadingTime int64            `json:"readingTime"`
	CreatedAt   string           `json:"createdAt"`
	UpdatedAt   string           `json:"updatedAt"`
}

type PostPageResponse struct {
	Data       []PostResponse `json:"data"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalItems int            `json:"totalItems"`
}

func userToResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
}

func authToResponse(res *service.AuthResult) AuthResponse {
	return AuthResponse{
		User:  userToResponse(*res.User),
		Token: res.Token,
	}
}

func postToResponse(post domain.Post) PostResponse {
	resp := PostResponse{
		ID:          post.ID,
		AuthorID:    post.AuthorID,
		Title:       post.Title,
		Description: post.Description,
		Body:        post.Body,
		Tags:        post.Tags,
		State:       post.State,
		ReadCount:   post.ReadCount,
		ReadingTime: post.ReadingTime,
		CreatedAt:   post.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   post.UpdatedAt.Format(time.RFC3339),
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if post.Author != nil {
		author := userToResponse(*post.Author)
		resp.Author = &author
	}
	return resp
}

func pageToResponse(page *service.PostPage) PostPageResponse {
	resp := PostPageResponse{
		Data:       make([]PostResponse, len(page.Posts)),
		Page:       page.Page,
		Limit:      page.Limit,
		TotalItems: page.TotalItems,
	}
	for i := range page.Posts {
		resp.Data[i] = postToResponse(page.Posts[i])
	}
	return resp
}
