package rpc

import (
	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/daniilsolovey/blogicum/internal/db"
)

func newUser(u *db.User) *User {
	if u == nil {
		return nil
	}

	return &User{UserID: u.ID, Username: u.Username}
}

func NewCategory(c blog.Category) Category {
	return Category{
		CategoryID:  c.ID,
		Title:       c.Title,
		Description: c.Description,
		Slug:        c.Slug,
	}
}

func NewPost(p blog.Post) Post {
	post := Post{
		PostID:       p.ID,
		Title:        p.Title,
		Text:         p.Text,
		PubDate:      p.PubDate,
		Image:        p.Image,
		CommentCount: p.CommentCount,
		Author:       newUser(p.Author),
	}
	if p.Category != nil {
		category := NewCategory(blog.NewCategory(*p.Category))
		post.Category = &category
	}
	if p.Location != nil {
		post.Location = &Location{LocationID: p.Location.ID, Name: p.Location.Name}
	}

	return post
}

func NewComment(c blog.Comment) Comment {
	return Comment{
		CommentID: c.ID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		Author:    newUser(c.Author),
	}
}

func NewPostPage(p blog.PostPage) PostPage {
	return PostPage{
		Posts: blog.Map(p.Posts, NewPost),
		Page: Page{
			Number:   p.Page.Number,
			Size:     p.Page.Size,
			Total:    p.Page.Total,
			NumPages: p.Page.NumPages,
		},
	}
}
