package rest

import (
	"net/http"

	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/daniilsolovey/blogicum/internal/identity"
	"github.com/labstack/echo/v4"
)

// writeResult answers a mutation. Success and soft denial are both a 303 to the target
// view; everything else is an error status.
func writeResult[T any](h *BlogHandler, c echo.Context, r blog.Result[T], body func(T) MutationResponse) error {
	switch r.Outcome {
	case blog.OutcomeSuccess:
		resp := body(r.Value)
		resp.Outcome = r.Outcome.String()
		resp.Redirect = RedirectURL(r.Redirect)
		c.Response().Header().Set(echo.HeaderLocation, resp.Redirect)
		return c.JSON(http.StatusSeeOther, resp)
	case blog.OutcomeSoftDenial:
		to := RedirectURL(r.Redirect)
		c.Response().Header().Set(echo.HeaderLocation, to)
		return c.JSON(http.StatusSeeOther, MutationResponse{Outcome: r.Outcome.String(), Redirect: to})
	default:
		return h.handleBlogError(c, r.Err)
	}
}

// authenticated resolves the acting viewer. An anonymous request is answered with 401
// before its path or body is looked at.
func (h *BlogHandler) authenticated(c echo.Context) (identity.Viewer, bool) {
	v := viewer(c)
	return v, !v.IsAnonymous()
}

func postBody(p blog.Post) MutationResponse {
	post := NewPost(p)
	return MutationResponse{Post: &post}
}

func commentBody(cm blog.Comment) MutationResponse {
	comment := NewComment(cm)
	return MutationResponse{Comment: &comment}
}

// CreatePost handles POST /api/v1/posts
// @Summary Create post
// @Description A pubDate in the future schedules the post. Redirects to the author's profile
// @Tags posts
// @Accept json
// @Produce json
// @Param post body rest.PostRequest true "Post"
// @Success 303 {object} rest.MutationResponse
// @Failure 400,401,500 {object} rest.ErrorResponse
// @Router /api/v1/posts [post]
func (h *BlogHandler) CreatePost(c echo.Context) error {
	v, ok := h.authenticated(c)
	if !ok {
		return h.handleBlogError(c, blog.ErrUnauthenticated)
	}

	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	res := h.uc.CreatePost(c.Request().Context(), v, req.ToModel())

	return writeResult(h, c, res, postBody)
}

// UpdatePost handles PUT /api/v1/posts/:id
// @Summary Edit post
// @Description Only the author may edit; anybody else is redirected to the post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param post body rest.PostEditRequest true "Changes"
// @Success 303 {object} rest.MutationResponse
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /api/v1/posts/{id} [put]
func (h *BlogHandler) UpdatePost(c echo.Context) error {
	v, ok := h.authenticated(c)
	if !ok {
		return h.handleBlogError(c, blog.ErrUnauthenticated)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req PostEditRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	res := h.uc.UpdatePost(c.Request().Context(), v, id, req.ToModel())

	return writeResult(h, c, res, postBody)
}

// DeletePost handles DELETE /api/v1/posts/:id
// @Summary Delete post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 303 {object} rest.MutationResponse
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /api/v1/posts/{id} [delete]
func (h *BlogHandler) DeletePost(c echo.Context) error {
	v, ok := h.authenticated(c)
	if !ok {
		return h.handleBlogError(c, blog.ErrUnauthenticated)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	res := h.uc.DeletePost(c.Request().Context(), v, id)

	return writeResult(h, c, res, postBody)
}

// CreateComment handles POST /api/v1/posts/:id/comments
// @Summary Comment on a post
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param comment body rest.CommentRequest true "Comment"
// @Success 303 {object} rest.MutationResponse
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /api/v1/posts/{id}/comments [post]
func (h *BlogHandler) CreateComment(c echo.Context) error {
	v, ok := h.authenticated(c)
	if !ok {
		return h.handleBlogError(c, blog.ErrUnauthenticated)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	res := h.uc.CreateComment(c.Request().Context(), v, id, req.ToModel())

	return writeResult(h, c, res, commentBody)
}

// UpdateComment handles PUT /api/v1/posts/:id/comments/:commentId
// @Summary Edit comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param commentId path int true "Comment ID"
// @Param comment body rest.CommentRequest true "Comment"
// @Success 303 {object} rest.MutationResponse
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /api/v1/posts/{id}/comments/{commentId} [put]
func (h *BlogHandler) UpdateComment(c echo.Context) error {
	v, ok := h.authenticated(c)
	if !ok {
		return h.handleBlogError(c, blog.ErrUnauthenticated)
	}

	postID, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid comment id")
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	res := h.uc.UpdateComment(c.Request().Context(), v, postID, commentID, req.ToModel())

	return writeResult(h, c, res, commentBody)
}

// DeleteComment handles DELETE /api/v1/posts/:id/comments/:commentId
// @Summary Delete comment
// @Tags comments
// @Produce json
// @Param id path int true "Post ID"
// @Param commentId path int true "Comment ID"
// @Success 303 {object} rest.MutationResponse
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /api/v1/posts/{id}/comments/{commentId} [delete]
func (h *BlogHandler) DeleteComment(c echo.Context) error {
	v, ok := h.authenticated(c)
	if !ok {
		return h.handleBlogError(c, blog.ErrUnauthenticated)
	}

	postID, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid comment id")
	}

	res := h.uc.DeleteComment(c.Request().Context(), v, postID, commentID)

	return writeResult(h, c, res, commentBody)
}
