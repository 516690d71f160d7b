package blog

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/blogicum/internal/db"
	"github.com/daniilsolovey/blogicum/internal/identity"
)

// Feed returns page number of the public feed. The feed never includes unpublished posts,
// not even the viewer's own.
func (m *Manager) Feed(ctx context.Context, viewer identity.Viewer, number int) (*PostPage, error) {
	page, err := m.listPosts(ctx, PublicPosts(m.now()), number, m.feedLimit)
	if err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}

	return page, nil
}

// CategoryPosts lists public posts of the category with the given slug. A missing or
// unpublished category is ErrNotFound for every viewer.
func (m *Manager) CategoryPosts(ctx context.Context, viewer identity.Viewer, slug string, number int) (*CategoryPosts, error) {
	dbCategory, err := m.store.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get category: %w", err)
	} else if dbCategory == nil {
		return nil, ErrNotFound
	}

	category := NewCategory(*dbCategory)
	if !CategoryBrowsable(category) {
		return nil, ErrNotFound
	}

	search := PublicPosts(m.now())
	search.CategoryID = &category.ID

	page, err := m.listPosts(ctx, search, number, 0)
	if err != nil {
		return nil, fmt.Errorf("category %q: %w", slug, err)
	}

	return &CategoryPosts{Category: category, PostPage: *page}, nil
}

// Profile lists the posts of the user with the given username. The owner sees every own
// post, including drafts, scheduled posts and posts in hidden categories; everybody else
// sees public posts only.
func (m *Manager) Profile(ctx context.Context, viewer identity.Viewer, username string, number int) (*ProfilePosts, error) {
	dbUser, err := m.store.UserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("db get user: %w", err)
	} else if dbUser == nil {
		return nil, ErrNotFound
	}

	page, err := m.listPosts(ctx, PostsVisibleTo(viewer, dbUser.ID, m.now()), number, 0)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", username, err)
	}

	return &ProfilePosts{
		Profile:  NewUser(*dbUser),
		Own:      viewer.Is(dbUser.ID),
		PostPage: *page,
	}, nil
}

// PostDetail returns a post visible to viewer with its comments in thread order.
func (m *Manager) PostDetail(ctx context.Context, viewer identity.Viewer, postID int) (*PostDetail, error) {
	post, err := m.visiblePost(ctx, viewer, postID)
	if err != nil {
		return nil, err
	}

	dbComments, err := m.store.CommentsByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get comments: %w", err)
	}

	post.CommentCount = len(dbComments)

	return &PostDetail{
		Post:     *post,
		Comments: Map(dbComments, NewComment),
	}, nil
}

// Categories returns the categories readers may browse.
func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.store.Categories(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return Map(list, NewCategory), nil
}

// visiblePost loads the post and applies the visibility rule. Absent and hidden posts
// are indistinguishable to the caller.
func (m *Manager) visiblePost(ctx context.Context, viewer identity.Viewer, postID int) (*Post, error) {
	dbPost, err := m.store.PostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get post: %w", err)
	} else if dbPost == nil {
		return nil, ErrNotFound
	}

	post := NewPost(*dbPost)
	if !IsVisible(post, viewer, m.now()) {
		return nil, ErrNotFound
	}

	return &post, nil
}

// listPosts counts the matching posts, applies limit, cuts out the page and annotates it
// with comment counts.
func (m *Manager) listPosts(ctx context.Context, search db.PostSearch, number, limit int) (*PostPage, error) {
	total, err := m.store.CountPosts(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("db get posts count: %w", err)
	}

	page, err := Paginate(total, number, m.pageSize, limit)
	if err != nil {
		return nil, err
	}

	if page.Len() == 0 {
		return &PostPage{Posts: []Post{}, Page: page}, nil
	}

	dbPosts, err := m.store.Posts(ctx, search, page.Len(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}

	posts := Map(dbPosts, NewPost)
	ids := make([]int, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}

	counts, err := m.store.CommentCounts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to attach comment counts: %w", err)
	}
	SetCommentCounts(posts, counts)

	return &PostPage{Posts: posts, Page: page}, nil
}
