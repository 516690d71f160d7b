package blog

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/blogicum/internal/db"
	"github.com/daniilsolovey/blogicum/internal/identity"
)

const (
	OpCreatePost    = "create_post"
	OpUpdatePost    = "update_post"
	OpDeletePost    = "delete_post"
	OpCreateComment = "create_comment"
	OpUpdateComment = "update_comment"
	OpDeleteComment = "delete_comment"
)

// CreatePost publishes a post authored by viewer. A pubDate in the future schedules it:
// the stored flag is set only when pubDate is not after now.
func (m *Manager) CreatePost(ctx context.Context, viewer identity.Viewer, in PostInput) Result[Post] {
	return record(ctx, m, OpCreatePost, m.createPost(ctx, viewer, in))
}

func (m *Manager) createPost(ctx context.Context, viewer identity.Viewer, in PostInput) Result[Post] {
	if viewer.IsAnonymous() {
		return fail[Post](ErrUnauthenticated)
	}

	if err := m.validatePost(ctx, in); err != nil {
		return fail[Post](err)
	}

	dbPost := &db.Post{
		Title:       in.Title,
		Text:        in.Text,
		PubDate:     in.PubDate,
		AuthorID:    viewer.UserID,
		LocationID:  in.LocationID,
		CategoryID:  in.CategoryID,
		IsPublished: isPublishedAt(in.PubDate, m.now()),
		Image:       in.Image,
	}

	added, err := m.store.AddPost(ctx, dbPost)
	if err != nil {
		return fail[Post](fmt.Errorf("db add post: %w", err))
	}

	return succeed(NewPost(*added), ToProfile(viewer.Username))
}

// UpdatePost changes title, text, category and image of the viewer's own post. Any
// other author gets sent back to the post.
func (m *Manager) UpdatePost(ctx context.Context, viewer identity.Viewer, postID int, in PostEdit) Result[Post] {
	return record(ctx, m, OpUpdatePost, m.updatePost(ctx, viewer, postID, in))
}

func (m *Manager) updatePost(ctx context.Context, viewer identity.Viewer, postID int, in PostEdit) Result[Post] {
	dbPost, res, ok := m.ownedPost(ctx, viewer, postID)
	if !ok {
		return res
	}

	if err := m.validatePostEdit(ctx, in); err != nil {
		return fail[Post](err)
	}

	dbPost.Title = in.Title
	dbPost.Text = in.Text
	dbPost.CategoryID = in.CategoryID
	dbPost.Image = in.Image

	updated, err := m.store.UpdatePost(ctx, dbPost,
		db.Columns.Post.Title,
		db.Columns.Post.Text,
		db.Columns.Post.CategoryID,
		db.Columns.Post.Image,
	)
	if err != nil {
		return fail[Post](fmt.Errorf("db update post: %w", err))
	} else if !updated {
		return fail[Post](ErrNotFound)
	}

	reloaded, err := m.store.PostByID(ctx, postID)
	if err != nil {
		return fail[Post](fmt.Errorf("db get post: %w", err))
	} else if reloaded == nil {
		return fail[Post](ErrNotFound)
	}

	return succeed(NewPost(*reloaded), ToPost(postID))
}

// DeletePost removes the viewer's own post together with its comments.
func (m *Manager) DeletePost(ctx context.Context, viewer identity.Viewer, postID int) Result[Post] {
	return record(ctx, m, OpDeletePost, m.deletePost(ctx, viewer, postID))
}

func (m *Manager) deletePost(ctx context.Context, viewer identity.Viewer, postID int) Result[Post] {
	dbPost, res, ok := m.ownedPost(ctx, viewer, postID)
	if !ok {
		return res
	}

	deleted, err := m.store.DeletePost(ctx, postID)
	if err != nil {
		return fail[Post](fmt.Errorf("db delete post: %w", err))
	} else if !deleted {
		return fail[Post](ErrNotFound)
	}

	return succeed(NewPost(*dbPost), ToProfile(viewer.Username))
}

// ownedPost runs the shared gate of post mutations: authentication, existence and
// visibility, then ownership. When ok is false res is the result to return.
func (m *Manager) ownedPost(ctx context.Context, viewer identity.Viewer, postID int) (post *db.Post, res Result[Post], ok bool) {
	if viewer.IsAnonymous() {
		return nil, fail[Post](ErrUnauthenticated), false
	}

	dbPost, err := m.store.PostByID(ctx, postID)
	if err != nil {
		return nil, fail[Post](fmt.Errorf("db get post: %w", err)), false
	} else if dbPost == nil {
		return nil, fail[Post](ErrNotFound), false
	}

	// a post the viewer cannot see is reported like a missing one
	if !IsVisible(NewPost(*dbPost), viewer, m.now()) {
		return nil, fail[Post](ErrNotFound), false
	} else if !viewer.Is(dbPost.AuthorID) {
		return nil, softDeny[Post](ToPost(postID)), false
	}

	return dbPost, Result[Post]{}, true
}

// CreateComment adds a comment by viewer to a post the viewer can see.
func (m *Manager) CreateComment(ctx context.Context, viewer identity.Viewer, postID int, in CommentInput) Result[Comment] {
	return record(ctx, m, OpCreateComment, m.createComment(ctx, viewer, postID, in))
}

func (m *Manager) createComment(ctx context.Context, viewer identity.Viewer, postID int, in CommentInput) Result[Comment] {
	if viewer.IsAnonymous() {
		return fail[Comment](ErrUnauthenticated)
	}

	if _, err := m.visiblePost(ctx, viewer, postID); err != nil {
		return fail[Comment](err)
	}

	if err := validateComment(in); err != nil {
		return fail[Comment](err)
	}

	added, err := m.store.AddComment(ctx, &db.Comment{
		Text:     in.Text,
		PostID:   postID,
		AuthorID: viewer.UserID,
	})
	if err != nil {
		return fail[Comment](fmt.Errorf("db add comment: %w", err))
	}

	return succeed(NewComment(*added), ToPost(postID))
}

// UpdateComment rewrites the text of the viewer's own comment under postID.
func (m *Manager) UpdateComment(ctx context.Context, viewer identity.Viewer, postID, commentID int, in CommentInput) Result[Comment] {
	return record(ctx, m, OpUpdateComment, m.updateComment(ctx, viewer, postID, commentID, in))
}

func (m *Manager) updateComment(ctx context.Context, viewer identity.Viewer, postID, commentID int, in CommentInput) Result[Comment] {
	dbComment, res, ok := m.ownedComment(ctx, viewer, postID, commentID)
	if !ok {
		return res
	}

	if err := validateComment(in); err != nil {
		return fail[Comment](err)
	}

	dbComment.Text = in.Text
	updated, err := m.store.UpdateComment(ctx, dbComment, db.Columns.Comment.Text)
	if err != nil {
		return fail[Comment](fmt.Errorf("db update comment: %w", err))
	} else if !updated {
		return fail[Comment](ErrNotFound)
	}

	return succeed(NewComment(*dbComment), ToPost(postID))
}

// DeleteComment removes the viewer's own comment under postID.
func (m *Manager) DeleteComment(ctx context.Context, viewer identity.Viewer, postID, commentID int) Result[Comment] {
	return record(ctx, m, OpDeleteComment, m.deleteComment(ctx, viewer, postID, commentID))
}

func (m *Manager) deleteComment(ctx context.Context, viewer identity.Viewer, postID, commentID int) Result[Comment] {
	dbComment, res, ok := m.ownedComment(ctx, viewer, postID, commentID)
	if !ok {
		return res
	}

	deleted, err := m.store.DeleteComment(ctx, commentID)
	if err != nil {
		return fail[Comment](fmt.Errorf("db delete comment: %w", err))
	} else if !deleted {
		return fail[Comment](ErrNotFound)
	}

	return succeed(NewComment(*dbComment), ToPost(postID))
}

// ownedComment finds the comment by the (postID, commentID) pair; a comment filed under
// another post, or under a post the viewer cannot see, does not exist here.
func (m *Manager) ownedComment(ctx context.Context, viewer identity.Viewer, postID, commentID int) (comment *db.Comment, res Result[Comment], ok bool) {
	if viewer.IsAnonymous() {
		return nil, fail[Comment](ErrUnauthenticated), false
	}

	if _, err := m.visiblePost(ctx, viewer, postID); err != nil {
		return nil, fail[Comment](err), false
	}

	dbComment, err := m.store.CommentByID(ctx, postID, commentID)
	if err != nil {
		return nil, fail[Comment](fmt.Errorf("db get comment: %w", err)), false
	} else if dbComment == nil {
		return nil, fail[Comment](ErrNotFound), false
	}

	if !viewer.Is(dbComment.AuthorID) {
		return nil, softDeny[Comment](ToPost(postID)), false
	}

	return dbComment, Result[Comment]{}, true
}
