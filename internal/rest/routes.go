package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/daniilsolovey/blogicum/internal/identity"
	"github.com/labstack/echo/v4"
)

const (
	// API paths
	apiV1Prefix = "/api/v1"

	postsPath         = "/posts"
	postPath          = "/posts/:id"
	commentsPath      = "/posts/:id/comments"
	commentPath       = "/posts/:id/comments/:commentId"
	categoriesPath    = "/categories"
	categoryPostsPath = "/categories/:slug/posts"
	profilePostsPath  = "/profiles/:username/posts"

	healthPath = "/health"
)

// Authenticator resolves the Authorization header into a viewer.
type Authenticator interface {
	FromHeader(header string) (identity.Viewer, error)
}

// RedirectURL renders a navigation target as an API path.
func RedirectURL(r blog.Redirect) string {
	switch r.Kind {
	case blog.RedirectPostDetail:
		return fmt.Sprintf("%s/posts/%d", apiV1Prefix, r.PostID)
	case blog.RedirectProfile:
		return fmt.Sprintf("%s/profiles/%s/posts", apiV1Prefix, url.PathEscape(r.Username))
	default:
		return apiV1Prefix + postsPath
	}
}

// RegisterRoutes registers the blog API on e. Every API route runs with the viewer
// resolved from the bearer token.
func (h *BlogHandler) RegisterRoutes(e *echo.Echo, auth Authenticator) {
	e.Use(h.loggingMiddleware)
	e.GET(healthPath, h.handleHealth)

	api := e.Group(apiV1Prefix, IdentityMiddleware(auth))

	api.GET(postsPath, h.Feed)
	api.POST(postsPath, h.CreatePost)
	api.GET(postPath, h.PostDetail)
	api.PUT(postPath, h.UpdatePost)
	api.DELETE(postPath, h.DeletePost)

	api.POST(commentsPath, h.CreateComment)
	api.PUT(commentPath, h.UpdateComment)
	api.DELETE(commentPath, h.DeleteComment)

	api.GET(categoriesPath, h.Categories)
	api.GET(categoryPostsPath, h.CategoryPosts)
	api.GET(profilePostsPath, h.Profile)
}

// IdentityMiddleware stores the request's viewer in the request context. A missing
// header is the anonymous viewer; a malformed or expired token is rejected.
func IdentityMiddleware(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v, err := auth.FromHeader(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
			}

			req := c.Request()
			c.SetRequest(req.WithContext(identity.NewContext(req.Context(), v)))

			return next(c)
		}
	}
}

func (h *BlogHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *BlogHandler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		h.log.Info("HTTP request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", req.RemoteAddr,
		)

		return nil
	}
}

// ErrorHandler renders errors that escape the handlers, such as unknown routes, in the
// API's error format.
func ErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "internal error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = http.StatusText(code)
		}
		if code >= http.StatusInternalServerError {
			log.Error("unhandled error", "error", err, "path", c.Request().URL.Path)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, ErrorResponse{Error: message})
		}
		if err != nil {
			log.Error("failed to write error response", "error", err)
		}
	}
}
