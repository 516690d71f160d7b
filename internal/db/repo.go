package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

const pgUniqueViolation = "23505"

// ErrDuplicate is returned when an insert or update hits a unique constraint.
var ErrDuplicate = errors.New("duplicate key")

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// Posts returns posts matching search, newest pubDate first, with author, category and
// location loaded.
func (r *Repository) Posts(ctx context.Context, search PostSearch, limit, offset int) ([]Post, error) {
	if limit < 1 || offset < 0 {
		return nil, fmt.Errorf(
			"limit must be greater than 0 and offset not negative: limit=%d, offset=%d",
			limit, offset,
		)
	}

	var posts []Post
	query := r.db.ModelContext(ctx, &posts).
		Relation(Columns.Post.Author).
		Relation(Columns.Post.Category).
		Relation(Columns.Post.Location)

	err := search.apply(query).
		OrderExpr(`"t"."pubDate" DESC`).
		OrderExpr(`"t"."postId" DESC`).
		Limit(limit).
		Offset(offset).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, nil
}

// CountPosts returns the number of posts matching search.
func (r *Repository) CountPosts(ctx context.Context, search PostSearch) (int, error) {
	query := r.db.ModelContext(ctx, (*Post)(nil))

	count, err := search.apply(query).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get posts count: %w", err)
	}

	return count, nil
}

// PostByID returns the post regardless of its publication state. A missing post is
// reported as (nil, nil).
func (r *Repository) PostByID(ctx context.Context, postID int) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Relation(Columns.Post.Author).
		Relation(Columns.Post.Category).
		Relation(Columns.Post.Location).
		Where(`"t"."postId" = ?`, postID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

func (r *Repository) AddPost(ctx context.Context, post *Post) (*Post, error) {
	_, err := r.db.ModelContext(ctx, post).Returning("*").Insert()
	if err != nil {
		return nil, wrapError(err, "failed to insert post")
	}

	return post, nil
}

// UpdatePost writes only the given columns. It reports false when the post is gone.
func (r *Repository) UpdatePost(ctx context.Context, post *Post, columns ...string) (bool, error) {
	res, err := r.db.ModelContext(ctx, post).
		Column(columns...).
		WherePK().
		Update()
	if err != nil {
		return false, wrapError(err, "failed to update post")
	}

	return res.RowsAffected() > 0, nil
}

// DeletePost removes the post; comments go with it through ON DELETE CASCADE.
func (r *Repository) DeletePost(ctx context.Context, postID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, &Post{ID: postID}).WherePK().Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// CommentCounts returns the number of comments per post for the given ids. Posts
// without comments are absent from the map.
func (r *Repository) CommentCounts(ctx context.Context, postIDs []int) (map[int]int, error) {
	counts := make(map[int]int, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID int `pg:"postId"`
		Count  int `pg:"count"`
	}
	err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Column(Columns.Comment.PostID).
		ColumnExpr("count(*) AS count").
		Where(`"t"."postId" IN (?)`, pg.In(postIDs)).
		Group(Columns.Comment.PostID).
		Select(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	for _, row := range rows {
		counts[row.PostID] = row.Count
	}

	return counts, nil
}

// CommentsByPost returns the comments of a post in thread order.
func (r *Repository) CommentsByPost(ctx context.Context, postID int) ([]Comment, error) {
	comments := []Comment{}
	err := r.db.ModelContext(ctx, &comments).
		Relation(Columns.Comment.Author).
		Where(`"t"."postId" = ?`, postID).
		OrderExpr(`"t"."createdAt" ASC`).
		OrderExpr(`"t"."commentId" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	return comments, nil
}

// CommentByID looks a comment up under its post. A comment that exists under another
// post is reported as missing: (nil, nil).
func (r *Repository) CommentByID(ctx context.Context, postID, commentID int) (*Comment, error) {
	comment := &Comment{}
	err := r.db.ModelContext(ctx, comment).
		Relation(Columns.Comment.Author).
		Where(`"t"."commentId" = ?`, commentID).
		Where(`"t"."postId" = ?`, postID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

func (r *Repository) AddComment(ctx context.Context, comment *Comment) (*Comment, error) {
	_, err := r.db.ModelContext(ctx, comment).Returning("*").Insert()
	if err != nil {
		return nil, wrapError(err, "failed to insert comment")
	}

	return comment, nil
}

func (r *Repository) UpdateComment(ctx context.Context, comment *Comment, columns ...string) (bool, error) {
	res, err := r.db.ModelContext(ctx, comment).
		Column(columns...).
		WherePK().
		Update()
	if err != nil {
		return false, wrapError(err, "failed to update comment")
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeleteComment(ctx context.Context, commentID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, &Comment{ID: commentID}).WherePK().Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete comment: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// CategoryBySlug returns the category whatever its publication state; (nil, nil) on miss.
func (r *Repository) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return category, nil
}

func (r *Repository) CategoryByID(ctx context.Context, categoryID int) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."categoryId" = ?`, categoryID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

// Categories returns categories ordered by creation time and title.
func (r *Repository) Categories(ctx context.Context, publishedOnly bool) ([]Category, error) {
	categories := []Category{}
	query := r.db.ModelContext(ctx, &categories)
	if publishedOnly {
		query = query.Where(`"t"."isPublished" = ?`, true)
	}

	err := query.
		OrderExpr(`"t"."createdAt" ASC`).
		OrderExpr(`"t"."title" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) AddCategory(ctx context.Context, category *Category) (*Category, error) {
	_, err := r.db.ModelContext(ctx, category).Returning("*").Insert()
	if err != nil {
		return nil, wrapError(err, "failed to insert category")
	}

	return category, nil
}

func (r *Repository) SetCategoryPublished(ctx context.Context, slug string, published bool) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Set(`"isPublished" = ?`, published).
		Where(`"t"."slug" = ?`, slug).
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to update category: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) LocationByID(ctx context.Context, locationID int) (*Location, error) {
	location := &Location{}
	err := r.db.ModelContext(ctx, location).
		Where(`"t"."locationId" = ?`, locationID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get location by id: %w", err)
	}

	return location, nil
}

func (r *Repository) Locations(ctx context.Context) ([]Location, error) {
	locations := []Location{}
	err := r.db.ModelContext(ctx, &locations).
		OrderExpr(`"t"."name" ASC`).
		OrderExpr(`"t"."createdAt" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}

	return locations, nil
}

func (r *Repository) AddLocation(ctx context.Context, location *Location) (*Location, error) {
	_, err := r.db.ModelContext(ctx, location).Returning("*").Insert()
	if err != nil {
		return nil, wrapError(err, "failed to insert location")
	}

	return location, nil
}

func (r *Repository) UserByUsername(ctx context.Context, username string) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."username" = ?`, username).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

func (r *Repository) AddUser(ctx context.Context, user *User) (*User, error) {
	_, err := r.db.ModelContext(ctx, user).Returning("*").Insert()
	if err != nil {
		return nil, wrapError(err, "failed to insert user")
	}

	return user, nil
}

func wrapError(err error, message string) error {
	var pgErr pg.Error
	if errors.As(err, &pgErr) && pgErr.Field('C') == pgUniqueViolation {
		return fmt.Errorf("%s: %w", message, ErrDuplicate)
	}

	return fmt.Errorf("%s: %w", message, err)
}
