package blog

import (
	"time"

	"github.com/daniilsolovey/blogicum/internal/db"
	"github.com/daniilsolovey/blogicum/internal/identity"
)

// IsMarkedPublished reports the stored flag only: what the author or an operator asked for.
func IsMarkedPublished(p Post) bool {
	return p.IsPublished
}

// IsPublic reports whether everyone may read the post at now: it is marked published,
// its pubDate has come, and its category is absent or published.
//
// The category must be loaded when CategoryID is set; an unloaded category is treated
// as unpublished.
func IsPublic(p Post, now time.Time) bool {
	if !p.IsPublished || p.PubDate.After(now) {
		return false
	}
	if p.CategoryID == nil {
		return true
	}

	return p.Category != nil && p.Category.IsPublished
}

// IsVisible reports whether viewer may read the post. Authors always see their own
// posts, whatever their state.
func IsVisible(p Post, viewer identity.Viewer, now time.Time) bool {
	if viewer.Is(p.AuthorID) {
		return true
	}

	return IsPublic(p, now)
}

// CategoryBrowsable reports whether the category listing may be shown at all.
func CategoryBrowsable(c Category) bool {
	return c.IsPublished
}

// PublicPosts selects posts passing IsPublic at now.
func PublicPosts(now time.Time) db.PostSearch {
	return db.PostSearch{PublicAt: &now}
}

// PostsVisibleTo selects the posts of author that viewer may see in a listing.
func PostsVisibleTo(viewer identity.Viewer, authorID int, now time.Time) db.PostSearch {
	search := db.PostSearch{AuthorID: &authorID}
	if !viewer.Is(authorID) {
		search.PublicAt = &now
	}

	return search
}
