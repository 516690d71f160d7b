package blog

import (
	"time"

	"github.com/daniilsolovey/blogicum/internal/db"
)

const (
	// MaxLen bounds titles, names and image references.
	MaxLen = 256
	// MaxSlugLen bounds category slugs.
	MaxSlugLen = 64
	// MaxUsernameLen bounds usernames.
	MaxUsernameLen = 150
	// DefaultPageSize is the listing page size when none is configured.
	DefaultPageSize = 10
)

type User struct {
	db.User
}

type Location struct {
	db.Location
}

type Category struct {
	db.Category
}

type Post struct {
	db.Post
	CommentCount int
}

type Comment struct {
	db.Comment
}

// PostInput is the submitted data of a new post.
type PostInput struct {
	Title      string
	Text       string
	PubDate    time.Time
	LocationID *int
	CategoryID *int
	Image      *string
}

// PostEdit holds the fields an author may change after publishing.
type PostEdit struct {
	Title      string
	Text       string
	CategoryID *int
	Image      *string
}

type CommentInput struct {
	Text string
}

type CategoryInput struct {
	Title       string
	Description string
	Slug        string
	IsPublished bool
}

type LocationInput struct {
	Name        string
	IsPublished bool
}

// Page describes one page of a listing.
type Page struct {
	Number int
	Size   int
	// Total is the number of items across all pages.
	Total    int
	NumPages int
}

type PostPage struct {
	Posts []Post
	Page  Page
}

type CategoryPosts struct {
	Category Category
	PostPage
}

type ProfilePosts struct {
	Profile User
	// Own is set when the viewer is the profile owner and unpublished posts are included.
	Own bool
	PostPage
}

type PostDetail struct {
	Post     Post
	Comments []Comment
}
