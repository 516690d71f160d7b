//go:build integration

package db

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, connStr, err := startPostgres(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start test database: %v\n", err)
		os.Exit(1)
	}

	code := run(ctx, m, connStr)

	if err := container.Terminate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to terminate container: %v\n", err)
	}

	os.Exit(code)
}

func run(ctx context.Context, m *testing.M, connStr string) int {
	opt, err := pg.ParseURL(connStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse database URL: %v\n", err)
		return 1
	}

	if err := migrateUp(ctx, opt); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		return 1
	}

	testDB = pg.Connect(opt)
	defer testDB.Close()

	if err := loadTestData(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load test data: %v\n", err)
		return 1
	}

	return m.Run()
}

func TestPosts_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)
	alice, travel := fx.alice.ID, fx.travel.ID

	tests := []struct {
		name   string
		search PostSearch
		want   []int
	}{
		{
			name:   "public feed",
			search: PostSearch{PublicAt: &baseTime},
			want:   []int{fx.public.ID, fx.inTravel.ID, fx.bobs.ID},
		},
		{
			name:   "public posts of author",
			search: PostSearch{PublicAt: &baseTime, AuthorID: &alice},
			want:   []int{fx.public.ID, fx.inTravel.ID},
		},
		{
			name:   "all posts of author",
			search: PostSearch{AuthorID: &alice},
			want: []int{
				fx.scheduled.ID, fx.public.ID, fx.inTravel.ID, fx.inHidden.ID, fx.draft.ID,
			},
		},
		{
			name:   "public posts in category",
			search: PostSearch{PublicAt: &baseTime, CategoryID: &travel},
			want:   []int{fx.inTravel.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts, err := repo.Posts(ctx, tt.search, 100, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, postIDs(posts))

			count, err := repo.CountPosts(ctx, tt.search)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), count)
		})
	}
}

func TestPosts_RelationsAndPaging_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)
	search := PostSearch{PublicAt: &baseTime}

	posts, err := repo.Posts(ctx, search, 2, 1)
	require.NoError(t, err)
	require.Equal(t, []int{fx.inTravel.ID, fx.bobs.ID}, postIDs(posts))

	require.NotNil(t, posts[0].Author)
	assert.Equal(t, "alice", posts[0].Author.Username)
	require.NotNil(t, posts[0].Category)
	assert.Equal(t, "travel", posts[0].Category.Slug)
	require.NotNil(t, posts[0].Location)
	assert.Equal(t, "Moscow", posts[0].Location.Name)
	assert.Nil(t, posts[1].Category)

	_, err = repo.Posts(ctx, search, 0, 0)
	assert.Error(t, err)
}

func TestCommentCounts_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	counts, err := repo.CommentCounts(ctx, []int{fx.public.ID, fx.inTravel.ID, fx.bobs.ID})
	require.NoError(t, err)
	assert.Equal(t, map[int]int{fx.public.ID: 2, fx.inTravel.ID: 1}, counts)

	empty, err := repo.CommentCounts(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestComments_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	comments, err := repo.CommentsByPost(ctx, fx.public.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "bob", comments[0].Author.Username)

	found, err := repo.CommentByID(ctx, fx.public.ID, fx.firstComment.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	mismatched, err := repo.CommentByID(ctx, fx.inTravel.ID, fx.firstComment.ID)
	require.NoError(t, err)
	assert.Nil(t, mismatched)
}

func TestPostByID_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	post, err := repo.PostByID(ctx, fx.draft.ID)
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.False(t, post.IsPublished)

	missing, err := repo.PostByID(ctx, 1_000_000)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdatePost_OnlyNamedColumns_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	before, err := repo.PostByID(ctx, fx.public.ID)
	require.NoError(t, err)

	changed := *before
	changed.Title = "renamed"
	changed.PubDate = baseTime.AddDate(1, 0, 0)
	changed.CreatedAt = baseTime.AddDate(-1, 0, 0)

	ok, err := repo.UpdatePost(ctx, &changed, Columns.Post.Title)
	require.NoError(t, err)
	assert.True(t, ok)

	after, err := repo.PostByID(ctx, fx.public.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", after.Title)
	assert.True(t, before.PubDate.Equal(after.PubDate))
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))

	gone := Post{ID: 1_000_000, Title: "x"}
	ok, err = repo.UpdatePost(ctx, &gone, Columns.Post.Title)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeletePost_CascadesComments_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	ok, err := repo.DeletePost(ctx, fx.public.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	comment, err := repo.CommentByID(ctx, fx.public.ID, fx.firstComment.ID)
	require.NoError(t, err)
	assert.Nil(t, comment)

	ok, err = repo.DeletePost(ctx, fx.public.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteCategory_DetachesPosts_Integration(t *testing.T) {
	tx, ctx, repo := withTx(t)

	_, err := tx.ModelContext(ctx, &Category{ID: fx.travel.ID}).WherePK().Delete()
	require.NoError(t, err)

	post, err := repo.PostByID(ctx, fx.inTravel.ID)
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Nil(t, post.CategoryID)
}

func TestCategories_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	published, err := repo.Categories(ctx, true)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "travel", published[0].Slug)

	ok, err := repo.SetCategoryPublished(ctx, "hidden", true)
	require.NoError(t, err)
	assert.True(t, ok)

	count, err := repo.CountPosts(ctx, PostSearch{PublicAt: &baseTime})
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	byID, err := repo.CategoryByID(ctx, fx.hidden.ID)
	require.NoError(t, err)
	assert.True(t, byID.IsPublished)

	missing, err := repo.CategoryBySlug(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAddCategory_DuplicateSlug_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	_, err := repo.AddCategory(ctx, &Category{Title: "Again", Description: "d", Slug: "travel", IsPublished: true})
	assert.True(t, errors.Is(err, ErrDuplicate), "got %v", err)
}

func TestUsersAndLocations_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	user, err := repo.UserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, fx.alice.ID, user.ID)

	added, err := repo.AddUser(ctx, &User{Username: "carol"})
	require.NoError(t, err)
	assert.Positive(t, added.ID)
	assert.False(t, added.CreatedAt.IsZero())

	location, err := repo.LocationByID(ctx, fx.moscow.ID)
	require.NoError(t, err)
	assert.Equal(t, "Moscow", location.Name)

	locations, err := repo.Locations(ctx)
	require.NoError(t, err)
	assert.Len(t, locations, 1)
}

func TestQueryHook_Integration(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	conn := pg.Connect(testDB.Options())
	defer conn.Close()
	conn.AddQueryHook(NewQueryHook(logger).WithSlowQuery(time.Hour))

	_, err := conn.ExecContext(ctx, "SELECT 1")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "SELECT 1")

	buf.Reset()
	_, err = conn.ExecContext(ctx, "SELECT * FROM missing_table")
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "missing_table")
}
