package rpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/daniilsolovey/blogicum/internal/identity"
	"github.com/vmkteam/zenrpc/v2"
)

var (
	ErrNotFound = zenrpc.NewStringError(404, "not found")
	ErrInternal = zenrpc.NewStringError(500, "internal error")
)

// Reader is the read side of *blog.Manager.
type Reader interface {
	Feed(ctx context.Context, viewer identity.Viewer, page int) (*blog.PostPage, error)
	CategoryPosts(ctx context.Context, viewer identity.Viewer, slug string, page int) (*blog.CategoryPosts, error)
	Profile(ctx context.Context, viewer identity.Viewer, username string, page int) (*blog.ProfilePosts, error)
	PostDetail(ctx context.Context, viewer identity.Viewer, postID int) (*blog.PostDetail, error)
	Categories(ctx context.Context) ([]blog.Category, error)
}

// BlogService provides read-only RPC methods over the blog. Methods run for the viewer
// resolved from the request's bearer token.
type BlogService struct {
	zenrpc.Service
	manager Reader
	logger  *slog.Logger
}

func NewBlogService(manager Reader, logger *slog.Logger) *BlogService {
	return &BlogService{manager: manager, logger: logger}
}

func (s BlogService) rpcError(ctx context.Context, err error) error {
	if errors.Is(err, blog.ErrNotFound) {
		return ErrNotFound
	}

	s.logger.ErrorContext(ctx, "rpc call failed", "error", err)
	return ErrInternal
}

// Feed returns a page of the public feed, newest first.
//
//zenrpc:page=1 page number (1-based)
//zenrpc:return page of posts
//zenrpc:404 page not found
//zenrpc:500 internal server error
func (s BlogService) Feed(ctx context.Context, page *int) (*PostPage, error) {
	list, err := s.manager.Feed(ctx, identity.FromContext(ctx), *page)
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	result := NewPostPage(*list)
	return &result, nil
}

// Category returns public posts of a published category.
//
//zenrpc:slug category slug
//zenrpc:page=1 page number (1-based)
//zenrpc:return category with a page of posts
//zenrpc:404 category or page not found
//zenrpc:500 internal server error
func (s BlogService) Category(ctx context.Context, slug string, page *int) (*CategoryPosts, error) {
	list, err := s.manager.CategoryPosts(ctx, identity.FromContext(ctx), slug, *page)
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return &CategoryPosts{
		Category: NewCategory(list.Category),
		PostPage: NewPostPage(list.PostPage),
	}, nil
}

// Profile returns the posts of a user. The owner also sees unpublished posts.
//
//zenrpc:username profile owner
//zenrpc:page=1 page number (1-based)
//zenrpc:return profile with a page of posts
//zenrpc:404 user or page not found
//zenrpc:500 internal server error
func (s BlogService) Profile(ctx context.Context, username string, page *int) (*ProfilePosts, error) {
	list, err := s.manager.Profile(ctx, identity.FromContext(ctx), username, *page)
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return &ProfilePosts{
		Profile:  User{UserID: list.Profile.ID, Username: list.Profile.Username},
		Own:      list.Own,
		PostPage: NewPostPage(list.PostPage),
	}, nil
}

// Post returns a single post with its comments.
//
//zenrpc:id post id
//zenrpc:return post with comments
//zenrpc:400 id must be positive
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s BlogService) Post(ctx context.Context, id int) (*PostDetail, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	detail, err := s.manager.PostDetail(ctx, identity.FromContext(ctx), id)
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return &PostDetail{
		Post:     NewPost(detail.Post),
		Comments: blog.Map(detail.Comments, NewComment),
	}, nil
}

// Categories returns the published categories.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s BlogService) Categories(ctx context.Context) ([]Category, error) {
	categories, err := s.manager.Categories(ctx)
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return blog.Map(categories, NewCategory), nil
}
