// Package blog holds the visibility rules, listing queries and ownership-gated mutations
// of the platform. Transports call Manager; persistence sits behind Store.
package blog

import (
	"context"
	"log/slog"
	"time"

	"github.com/daniilsolovey/blogicum/internal/db"
)

// Store is the persistence the manager needs. *db.Repository implements it.
type Store interface {
	Posts(ctx context.Context, search db.PostSearch, limit, offset int) ([]db.Post, error)
	CountPosts(ctx context.Context, search db.PostSearch) (int, error)
	PostByID(ctx context.Context, postID int) (*db.Post, error)
	AddPost(ctx context.Context, post *db.Post) (*db.Post, error)
	UpdatePost(ctx context.Context, post *db.Post, columns ...string) (bool, error)
	DeletePost(ctx context.Context, postID int) (bool, error)

	CommentCounts(ctx context.Context, postIDs []int) (map[int]int, error)
	CommentsByPost(ctx context.Context, postID int) ([]db.Comment, error)
	CommentByID(ctx context.Context, postID, commentID int) (*db.Comment, error)
	AddComment(ctx context.Context, comment *db.Comment) (*db.Comment, error)
	UpdateComment(ctx context.Context, comment *db.Comment, columns ...string) (bool, error)
	DeleteComment(ctx context.Context, commentID int) (bool, error)

	CategoryBySlug(ctx context.Context, slug string) (*db.Category, error)
	CategoryByID(ctx context.Context, categoryID int) (*db.Category, error)
	Categories(ctx context.Context, publishedOnly bool) ([]db.Category, error)
	AddCategory(ctx context.Context, category *db.Category) (*db.Category, error)
	SetCategoryPublished(ctx context.Context, slug string, published bool) (bool, error)

	LocationByID(ctx context.Context, locationID int) (*db.Location, error)
	Locations(ctx context.Context) ([]db.Location, error)
	AddLocation(ctx context.Context, location *db.Location) (*db.Location, error)

	UserByUsername(ctx context.Context, username string) (*db.User, error)
	AddUser(ctx context.Context, user *db.User) (*db.User, error)
}

var _ Store = (*db.Repository)(nil)

// MutationObserver is told the outcome of every mutation, e.g. to count it.
type MutationObserver func(operation string, outcome Outcome)

type Manager struct {
	store     Store
	logger    *slog.Logger
	now       func() time.Time
	pageSize  int
	feedLimit int
	observe   MutationObserver
}

type Option func(*Manager)

// WithClock replaces time.Now as the source of "now" for visibility decisions.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

func WithPageSize(size int) Option {
	return func(m *Manager) {
		if size > 0 {
			m.pageSize = size
		}
	}
}

// WithFeedLimit truncates the feed to its newest n posts before pagination. Zero means
// no limit.
func WithFeedLimit(n int) Option {
	return func(m *Manager) {
		if n >= 0 {
			m.feedLimit = n
		}
	}
}

func WithMutationObserver(observe MutationObserver) Option {
	return func(m *Manager) {
		m.observe = observe
	}
}

func NewManager(store Store, logger *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		store:    store,
		logger:   logger,
		now:      time.Now,
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Manager) PageSize() int {
	return m.pageSize
}

// record reports the result to the observer and logs failures that are not the caller's
// fault.
func record[T any](ctx context.Context, m *Manager, operation string, r Result[T]) Result[T] {
	if m.observe != nil {
		m.observe(operation, r.Outcome)
	}

	switch r.Outcome {
	case OutcomeStoreFailure:
		m.logger.ErrorContext(ctx, "mutation failed", "operation", operation, "error", r.Err)
	case OutcomeSoftDenial:
		m.logger.InfoContext(ctx, "mutation denied", "operation", operation)
	default:
		m.logger.DebugContext(ctx, "mutation finished", "operation", operation, "outcome", r.Outcome.String())
	}

	return r
}
