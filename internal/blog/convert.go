package blog

import "github.com/daniilsolovey/blogicum/internal/db"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewUser(u db.User) User {
	return User{User: u}
}

func NewLocation(l db.Location) Location {
	return Location{Location: l}
}

func NewCategory(c db.Category) Category {
	return Category{Category: c}
}

func NewPost(p db.Post) Post {
	return Post{Post: p}
}

func NewComment(c db.Comment) Comment {
	return Comment{Comment: c}
}

// SetCommentCounts annotates posts with counts keyed by post id.
func SetCommentCounts(posts []Post, counts map[int]int) {
	for i := range posts {
		posts[i].CommentCount = counts[posts[i].ID]
	}
}
