package rpc

import "time"

type User struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
}

type Category struct {
	CategoryID  int    `json:"categoryId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

type Location struct {
	LocationID int    `json:"locationId"`
	Name       string `json:"name"`
}

type Post struct {
	PostID       int       `json:"postId"`
	Title        string    `json:"title"`
	Text         string    `json:"text"`
	PubDate      time.Time `json:"pubDate"`
	Image        *string   `json:"image,omitempty"`
	CommentCount int       `json:"commentCount"`
	Author       *User     `json:"author,omitempty"`
	Category     *Category `json:"category,omitempty"`
	Location     *Location `json:"location,omitempty"`
}

type Comment struct {
	CommentID int       `json:"commentId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	Author    *User     `json:"author,omitempty"`
}

type Page struct {
	Number   int `json:"number"`
	Size     int `json:"size"`
	Total    int `json:"total"`
	NumPages int `json:"numPages"`
}

type PostPage struct {
	Posts []Post `json:"posts"`
	Page  Page   `json:"page"`
}

type CategoryPosts struct {
	Category Category `json:"category"`
	PostPage
}

type ProfilePosts struct {
	Profile User `json:"profile"`
	Own     bool `json:"own"`
	PostPage
}

type PostDetail struct {
	Post     Post      `json:"post"`
	Comments []Comment `json:"comments"`
}
