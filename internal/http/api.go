package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blog-backend/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users  service.UserService
	posts  service.PostService
	tokens TokenVerifier
	logger *logrus.Logger
}

func NewHandler(users service.UserService, posts service.PostService, tokens TokenVerifier, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{
		users:  users,
		posts:  posts,
		tokens: tokens,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestLogger(h.logger), corsMiddleware())

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
	}

	posts := router.Group("/post")
	{
		posts.GET("", optionalAuth(h.tokens), h.listPosts)
		posts.GET("/for/user", requireAuth(h.tokens), h.listOwnPosts)
		posts.GET("/:id", optionalAuth(h.tokens), h.getPost)
		posts.POST("", requireAuth(h.tokens), h.createPost)
		posts.PUT("/:id", requireAuth(h.tokens), h.updatePost)
		posts.DELETE("/:id", requireAuth(h.tokens), h.deletePost)
	}
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type postRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags"`
	State       string   `json:"state"`
}

func (r postRequest) input() service.PostInput {
	return service.PostInput{
		Title:       r.Title,
		Description: r.Description,
		Body:        r.Body,
		Tags:        r.Tags,
		State:       r.State,
	}
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if !h.bindJSON(c, &req) {
		return
	}

	res, err := h.users.Register(c.Request.Context(), service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, authToResponse(res))
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	res, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, authToResponse(res))
}

func (h *Handler) listPosts(c *gin.Context) {
	page, err := h.posts.ListPublished(c.Request.Context(), listQuery(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageToResponse(page))
}

func (h *Handler) listOwnPosts(c *gin.Context) {
	q := listQuery(c)
	q.Author = ""
	q.State = c.Query("state")

	page, err := h.posts.ListOwn(c.Request.Context(), identity(c), q)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageToResponse(page))
}

func (h *Handler) getPost(c *gin.Context) {
	post, err := h.posts.Read(c.Request.Context(), identity(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, postToResponse(*post))
}

func (h *Handler) createPost(c *gin.Context) {
	var req postRequest
	if !h.bindJSON(c, &req) {
		return
	}

	post, err := h.posts.Create(c.Request.Context(), identity(c), req.input())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, postToResponse(*post))
}

func (h *Handler) updatePost(c *gin.Context) {
	var req postRequest
	if !h.bindJSON(c, &req) {
		return
	}

	post, err := h.posts.Update(c.Request.Context(), identity(c), c.Param("id"), req.input())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, postToResponse(*post))
}

func (h *Handler) deletePost(c *gin.Context) {
	if err := h.posts.Delete(c.Request.Context(), identity(c), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

func listQuery(c *gin.Context) service.ListQuery {
	return service.ListQuery{
		Page:      c.Query("page"),
		Limit:     c.Query("limit"),
		Title:     c.Query("title"),
		Author:    c.Query("author"),
		Tags:      c.Query("tags"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
}

func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return false
	}
	return true
}

// writeError maps service errors onto status codes. Ownership failures are
// reported as 401, and unexpected errors never leak their cause.
func (h *Handler) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrForbidden):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("request failed")
		c.JSON(status, gin.H{"message": "Something went wrong"})
		return
	}
	c.JSON(status, gin.H{"message": err.Error()})
}
