package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/daniilsolovey/blogicum/internal/identity"
	"github.com/labstack/echo/v4"
)

// Blog is the part of *blog.Manager the handlers call.
type Blog interface {
	Feed(ctx context.Context, viewer identity.Viewer, page int) (*blog.PostPage, error)
	CategoryPosts(ctx context.Context, viewer identity.Viewer, slug string, page int) (*blog.CategoryPosts, error)
	Profile(ctx context.Context, viewer identity.Viewer, username string, page int) (*blog.ProfilePosts, error)
	PostDetail(ctx context.Context, viewer identity.Viewer, postID int) (*blog.PostDetail, error)
	Categories(ctx context.Context) ([]blog.Category, error)

	CreatePost(ctx context.Context, viewer identity.Viewer, in blog.PostInput) blog.Result[blog.Post]
	UpdatePost(ctx context.Context, viewer identity.Viewer, postID int, in blog.PostEdit) blog.Result[blog.Post]
	DeletePost(ctx context.Context, viewer identity.Viewer, postID int) blog.Result[blog.Post]
	CreateComment(ctx context.Context, viewer identity.Viewer, postID int, in blog.CommentInput) blog.Result[blog.Comment]
	UpdateComment(ctx context.Context, viewer identity.Viewer, postID, commentID int, in blog.CommentInput) blog.Result[blog.Comment]
	DeleteComment(ctx context.Context, viewer identity.Viewer, postID, commentID int) blog.Result[blog.Comment]
}

var _ Blog = (*blog.Manager)(nil)

type BlogHandler struct {
	uc  Blog
	log *slog.Logger
}

func NewBlogHandler(uc Blog, log *slog.Logger) *BlogHandler {
	return &BlogHandler{
		uc:  uc,
		log: log,
	}
}

func (h *BlogHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, ErrorResponse{Error: message})
}

// handleBlogError replies according to the outcome class of err.
func (h *BlogHandler) handleBlogError(c echo.Context, err error) error {
	switch blog.Classify(err) {
	case blog.OutcomeNotFound:
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case blog.OutcomeUnauthenticated:
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	case blog.OutcomeValidationFailure:
		resp := ErrorResponse{Error: "validation failed"}
		if vErr, ok := err.(*blog.ValidationError); ok {
			resp.Fields = vErr.Fields
		}
		return c.JSON(http.StatusBadRequest, resp)
	default:
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
}

func viewer(c echo.Context) identity.Viewer {
	return identity.FromContext(c.Request().Context())
}

// pageNumber reads ?page=, defaulting to the first page.
func (h *BlogHandler) pageNumber(c echo.Context) (int, error) {
	req := PageRequest{Page: 1}
	if err := c.Bind(&req); err != nil {
		return 0, err
	}

	return req.Page, nil
}

func pathID(c echo.Context, name string) (int, error) {
	return strconv.Atoi(c.Param(name))
}

// Feed handles GET /api/v1/posts
// @Summary Public feed
// @Description Published posts whose pubDate has come and whose category is published, newest first
// @Tags posts
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Success 200 {object} rest.PostPage
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /api/v1/posts [get]
func (h *BlogHandler) Feed(c echo.Context) error {
	page, err := h.pageNumber(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	list, err := h.uc.Feed(c.Request().Context(), viewer(c), page)
	if err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusOK, NewPostPage(*list))
}

// CategoryPosts handles GET /api/v1/categories/:slug/posts
// @Summary Category listing
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug"
// @Param page query int false "Page number (default: 1)"
// @Success 200 {object} rest.CategoryPosts
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /api/v1/categories/{slug}/posts [get]
func (h *BlogHandler) CategoryPosts(c echo.Context) error {
	page, err := h.pageNumber(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	list, err := h.uc.CategoryPosts(c.Request().Context(), viewer(c), c.Param("slug"), page)
	if err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusOK, CategoryPosts{
		Category: NewCategory(list.Category),
		PostPage: NewPostPage(list.PostPage),
	})
}

// Profile handles GET /api/v1/profiles/:username/posts
// @Summary User profile
// @Description The owner sees every own post, other viewers see public posts only
// @Tags profiles
// @Produce json
// @Param username path string true "Username"
// @Param page query int false "Page number (default: 1)"
// @Success 200 {object} rest.ProfilePosts
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /api/v1/profiles/{username}/posts [get]
func (h *BlogHandler) Profile(c echo.Context) error {
	page, err := h.pageNumber(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	list, err := h.uc.Profile(c.Request().Context(), viewer(c), c.Param("username"), page)
	if err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusOK, ProfilePosts{
		Profile:  NewUser(list.Profile),
		Own:      list.Own,
		PostPage: NewPostPage(list.PostPage),
	})
}

// PostDetail handles GET /api/v1/posts/:id
// @Summary Post with comments
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} rest.PostDetail
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /api/v1/posts/{id} [get]
func (h *BlogHandler) PostDetail(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	detail, err := h.uc.PostDetail(c.Request().Context(), viewer(c), id)
	if err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusOK, NewPostDetail(*detail))
}

// Categories handles GET /api/v1/categories
// @Summary Published categories
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/v1/categories [get]
func (h *BlogHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusOK, Map(categories, NewCategory))
}
