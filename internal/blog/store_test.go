package blog

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/daniilsolovey/blogicum/internal/db"
)

// noOpLogger creates a logger that discards all output for tests
func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return testNow
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

// memStore is an in-memory Store. failOn makes the named method return the error.
type memStore struct {
	users      map[int]db.User
	locations  map[int]db.Location
	categories map[int]db.Category
	posts      map[int]db.Post
	comments   map[int]db.Comment
	nextID     int

	failOn        map[string]error
	updateColumns []string
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[int]db.User{},
		locations:  map[int]db.Location{},
		categories: map[int]db.Category{},
		posts:      map[int]db.Post{},
		comments:   map[int]db.Comment{},
		failOn:     map[string]error{},
	}
}

func (s *memStore) id() int {
	s.nextID++
	return s.nextID
}

func (s *memStore) fail(method string) error {
	return s.failOn[method]
}

func (s *memStore) user(name string) db.User {
	u := db.User{ID: s.id(), Username: name, CreatedAt: testNow}
	s.users[u.ID] = u
	return u
}

func (s *memStore) category(slug string, published bool) db.Category {
	c := db.Category{ID: s.id(), Title: slug, Description: slug, Slug: slug, IsPublished: published, CreatedAt: testNow}
	s.categories[c.ID] = c
	return c
}

func (s *memStore) location(name string) db.Location {
	l := db.Location{ID: s.id(), Name: name, IsPublished: true, CreatedAt: testNow}
	s.locations[l.ID] = l
	return l
}

func (s *memStore) post(author db.User, pubDate time.Time, published bool, category *db.Category) db.Post {
	p := db.Post{
		ID:          s.id(),
		Title:       "post",
		Text:        "text",
		PubDate:     pubDate,
		AuthorID:    author.ID,
		IsPublished: published,
		CreatedAt:   testNow,
	}
	if category != nil {
		p.CategoryID = intPtr(category.ID)
	}
	s.posts[p.ID] = p
	return p
}

func (s *memStore) comment(post db.Post, author db.User, text string) db.Comment {
	id := s.id()
	c := db.Comment{ID: id, Text: text, PostID: post.ID, AuthorID: author.ID, CreatedAt: testNow.Add(time.Duration(id) * time.Second)}
	s.comments[c.ID] = c
	return c
}

func (s *memStore) loadPost(p db.Post) db.Post {
	if u, ok := s.users[p.AuthorID]; ok {
		p.Author = &u
	}
	if p.CategoryID != nil {
		if c, ok := s.categories[*p.CategoryID]; ok {
			p.Category = &c
		}
	}
	if p.LocationID != nil {
		if l, ok := s.locations[*p.LocationID]; ok {
			p.Location = &l
		}
	}
	return p
}

func (s *memStore) matches(search db.PostSearch, p db.Post) bool {
	if search.AuthorID != nil && p.AuthorID != *search.AuthorID {
		return false
	}
	if search.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *search.CategoryID) {
		return false
	}
	if search.PublicAt != nil {
		if !p.IsPublished || p.PubDate.After(*search.PublicAt) {
			return false
		}
		if p.CategoryID != nil && !s.categories[*p.CategoryID].IsPublished {
			return false
		}
	}
	return true
}

func (s *memStore) search(search db.PostSearch) []db.Post {
	var list []db.Post
	for _, p := range s.posts {
		if s.matches(search, p) {
			list = append(list, s.loadPost(p))
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].PubDate.Equal(list[j].PubDate) {
			return list[i].PubDate.After(list[j].PubDate)
		}
		return list[i].ID > list[j].ID
	})
	return list
}

func (s *memStore) Posts(_ context.Context, search db.PostSearch, limit, offset int) ([]db.Post, error) {
	if err := s.fail("Posts"); err != nil {
		return nil, err
	}
	list := s.search(search)
	if offset >= len(list) {
		return []db.Post{}, nil
	}
	list = list[offset:]
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (s *memStore) CountPosts(_ context.Context, search db.PostSearch) (int, error) {
	if err := s.fail("CountPosts"); err != nil {
		return 0, err
	}
	return len(s.search(search)), nil
}

func (s *memStore) PostByID(_ context.Context, postID int) (*db.Post, error) {
	if err := s.fail("PostByID"); err != nil {
		return nil, err
	}
	p, ok := s.posts[postID]
	if !ok {
		return nil, nil
	}
	p = s.loadPost(p)
	return &p, nil
}

func (s *memStore) AddPost(_ context.Context, post *db.Post) (*db.Post, error) {
	if err := s.fail("AddPost"); err != nil {
		return nil, err
	}
	post.ID = s.id()
	post.CreatedAt = testNow
	s.posts[post.ID] = *post
	return post, nil
}

func (s *memStore) UpdatePost(_ context.Context, post *db.Post, columns ...string) (bool, error) {
	if err := s.fail("UpdatePost"); err != nil {
		return false, err
	}
	s.updateColumns = columns
	stored, ok := s.posts[post.ID]
	if !ok {
		return false, nil
	}
	for _, column := range columns {
		switch column {
		case db.Columns.Post.Title:
			stored.Title = post.Title
		case db.Columns.Post.Text:
			stored.Text = post.Text
		case db.Columns.Post.CategoryID:
			stored.CategoryID = post.CategoryID
		case db.Columns.Post.Image:
			stored.Image = post.Image
		case db.Columns.Post.PubDate:
			stored.PubDate = post.PubDate
		case db.Columns.Post.IsPublished:
			stored.IsPublished = post.IsPublished
		case db.Columns.Post.AuthorID:
			stored.AuthorID = post.AuthorID
		case db.Columns.Post.LocationID:
			stored.LocationID = post.LocationID
		}
	}
	s.posts[post.ID] = stored
	return true, nil
}

func (s *memStore) DeletePost(_ context.Context, postID int) (bool, error) {
	if err := s.fail("DeletePost"); err != nil {
		return false, err
	}
	if _, ok := s.posts[postID]; !ok {
		return false, nil
	}
	delete(s.posts, postID)
	for id, c := range s.comments {
		if c.PostID == postID {
			delete(s.comments, id)
		}
	}
	return true, nil
}

func (s *memStore) CommentCounts(_ context.Context, postIDs []int) (map[int]int, error) {
	if err := s.fail("CommentCounts"); err != nil {
		return nil, err
	}
	counts := map[int]int{}
	for _, id := range postIDs {
		for _, c := range s.comments {
			if c.PostID == id {
				counts[id]++
			}
		}
	}
	return counts, nil
}

func (s *memStore) CommentsByPost(_ context.Context, postID int) ([]db.Comment, error) {
	if err := s.fail("CommentsByPost"); err != nil {
		return nil, err
	}
	list := []db.Comment{}
	for _, c := range s.comments {
		if c.PostID == postID {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

func (s *memStore) CommentByID(_ context.Context, postID, commentID int) (*db.Comment, error) {
	if err := s.fail("CommentByID"); err != nil {
		return nil, err
	}
	c, ok := s.comments[commentID]
	if !ok || c.PostID != postID {
		return nil, nil
	}
	return &c, nil
}

func (s *memStore) AddComment(_ context.Context, comment *db.Comment) (*db.Comment, error) {
	if err := s.fail("AddComment"); err != nil {
		return nil, err
	}
	comment.ID = s.id()
	comment.CreatedAt = testNow
	s.comments[comment.ID] = *comment
	return comment, nil
}

func (s *memStore) UpdateComment(_ context.Context, comment *db.Comment, columns ...string) (bool, error) {
	if err := s.fail("UpdateComment"); err != nil {
		return false, err
	}
	s.updateColumns = columns
	stored, ok := s.comments[comment.ID]
	if !ok {
		return false, nil
	}
	for _, column := range columns {
		if column == db.Columns.Comment.Text {
			stored.Text = comment.Text
		}
	}
	s.comments[comment.ID] = stored
	return true, nil
}

func (s *memStore) DeleteComment(_ context.Context, commentID int) (bool, error) {
	if err := s.fail("DeleteComment"); err != nil {
		return false, err
	}
	if _, ok := s.comments[commentID]; !ok {
		return false, nil
	}
	delete(s.comments, commentID)
	return true, nil
}

func (s *memStore) CategoryBySlug(_ context.Context, slug string) (*db.Category, error) {
	if err := s.fail("CategoryBySlug"); err != nil {
		return nil, err
	}
	for _, c := range s.categories {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, nil
}

func (s *memStore) CategoryByID(_ context.Context, categoryID int) (*db.Category, error) {
	if err := s.fail("CategoryByID"); err != nil {
		return nil, err
	}
	c, ok := s.categories[categoryID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *memStore) Categories(_ context.Context, publishedOnly bool) ([]db.Category, error) {
	if err := s.fail("Categories"); err != nil {
		return nil, err
	}
	list := []db.Category{}
	for _, c := range s.categories {
		if !publishedOnly || c.IsPublished {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (s *memStore) AddCategory(_ context.Context, category *db.Category) (*db.Category, error) {
	if err := s.fail("AddCategory"); err != nil {
		return nil, err
	}
	for _, c := range s.categories {
		if c.Slug == category.Slug {
			return nil, db.ErrDuplicate
		}
	}
	category.ID = s.id()
	s.categories[category.ID] = *category
	return category, nil
}

func (s *memStore) SetCategoryPublished(_ context.Context, slug string, published bool) (bool, error) {
	if err := s.fail("SetCategoryPublished"); err != nil {
		return false, err
	}
	for id, c := range s.categories {
		if c.Slug == slug {
			c.IsPublished = published
			s.categories[id] = c
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) LocationByID(_ context.Context, locationID int) (*db.Location, error) {
	if err := s.fail("LocationByID"); err != nil {
		return nil, err
	}
	l, ok := s.locations[locationID]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (s *memStore) Locations(_ context.Context) ([]db.Location, error) {
	if err := s.fail("Locations"); err != nil {
		return nil, err
	}
	list := []db.Location{}
	for _, l := range s.locations {
		list = append(list, l)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (s *memStore) AddLocation(_ context.Context, location *db.Location) (*db.Location, error) {
	if err := s.fail("AddLocation"); err != nil {
		return nil, err
	}
	location.ID = s.id()
	s.locations[location.ID] = *location
	return location, nil
}

func (s *memStore) UserByUsername(_ context.Context, username string) (*db.User, error) {
	if err := s.fail("UserByUsername"); err != nil {
		return nil, err
	}
	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *memStore) AddUser(_ context.Context, user *db.User) (*db.User, error) {
	if err := s.fail("AddUser"); err != nil {
		return nil, err
	}
	for _, u := range s.users {
		if u.Username == user.Username {
			return nil, db.ErrDuplicate
		}
	}
	user.ID = s.id()
	s.users[user.ID] = *user
	return user, nil
}

var _ Store = (*memStore)(nil)
