package rest

import (
	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/daniilsolovey/blogicum/internal/db"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func newUserRef(u *db.User) *User {
	if u == nil {
		return nil
	}

	return &User{UserID: u.ID, Username: u.Username}
}

func NewUser(u blog.User) User {
	return User{UserID: u.ID, Username: u.Username}
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
		IsPublished:  p.IsPublished,
		Image:        p.Image,
		CreatedAt:    p.CreatedAt,
		CommentCount: p.CommentCount,
		Author:       newUserRef(p.Author),
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
		PostID:    c.PostID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		Author:    newUserRef(c.Author),
	}
}

func NewPage(p blog.Page) Page {
	return Page{
		Number:      p.Number,
		Size:        p.Size,
		Total:       p.Total,
		NumPages:    p.NumPages,
		HasNext:     p.HasNext(),
		HasPrevious: p.HasPrevious(),
	}
}

func NewPostPage(p blog.PostPage) PostPage {
	return PostPage{
		Posts: Map(p.Posts, NewPost),
		Page:  NewPage(p.Page),
	}
}

func NewPostDetail(d blog.PostDetail) PostDetail {
	return PostDetail{
		Post:     NewPost(d.Post),
		Comments: Map(d.Comments, NewComment),
	}
}

func (r PostRequest) ToModel() blog.PostInput {
	return blog.PostInput{
		Title:      r.Title,
		Text:       r.Text,
		PubDate:    r.PubDate,
		LocationID: r.LocationID,
		CategoryID: r.CategoryID,
		Image:      r.Image,
	}
}

func (r PostEditRequest) ToModel() blog.PostEdit {
	return blog.PostEdit{
		Title:      r.Title,
		Text:       r.Text,
		CategoryID: r.CategoryID,
		Image:      r.Image,
	}
}

func (r CommentRequest) ToModel() blog.CommentInput {
	return blog.CommentInput{Text: r.Text}
}
