//go:build integration

package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// baseTime is "now" for every visibility query in these tests.
var baseTime = time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)

// fixtures holds the ids of the rows loadTestData inserts.
type fixtures struct {
	alice, bob     User
	travel, hidden Category
	moscow         Location
	public         Post // alice, no category
	inTravel       Post // alice, published category
	inHidden       Post // alice, unpublished category
	draft          Post // alice, isPublished = false
	scheduled      Post // alice, pubDate after baseTime
	bobs           Post // bob, public
	firstComment   Comment
	secondComment  Comment
	travelComment  Comment
}

var fx fixtures

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("blogicum_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return nil, "", fmt.Errorf("start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return pgContainer, "", fmt.Errorf("connection string: %w", err)
	}

	return pgContainer, connStr, nil
}

// migrateUp applies the embedded migrations through goose over the pgx stdlib driver.
func migrateUp(ctx context.Context, opt *pg.Options) error {
	sqldb, err := OpenSQL(ctx, opt)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	return Migrate(ctx, sqldb, "up")
}

func loadTestData(ctx context.Context, database *pg.DB) error {
	insert := func(model interface{}) error {
		_, err := database.ModelContext(ctx, model).Returning("*").Insert()
		return err
	}

	fx.alice = User{Username: "alice"}
	fx.bob = User{Username: "bob"}
	fx.travel = Category{Title: "Travel", Description: "Trips", Slug: "travel", IsPublished: true}
	fx.hidden = Category{Title: "Hidden", Description: "Soon", Slug: "hidden", IsPublished: false}
	fx.moscow = Location{Name: "Moscow", IsPublished: true}

	for _, model := range []interface{}{&fx.alice, &fx.bob, &fx.travel, &fx.hidden, &fx.moscow} {
		if err := insert(model); err != nil {
			return fmt.Errorf("insert reference data: %w", err)
		}
	}

	post := func(author User, offset time.Duration, published bool, category *Category) Post {
		p := Post{
			Title:       fmt.Sprintf("%s at %s", author.Username, offset),
			Text:        "text",
			PubDate:     baseTime.Add(offset),
			AuthorID:    author.ID,
			LocationID:  &fx.moscow.ID,
			IsPublished: published,
		}
		if category != nil {
			p.CategoryID = &category.ID
		}
		return p
	}

	fx.public = post(fx.alice, -1*time.Hour, true, nil)
	fx.inTravel = post(fx.alice, -2*time.Hour, true, &fx.travel)
	fx.inHidden = post(fx.alice, -3*time.Hour, true, &fx.hidden)
	fx.draft = post(fx.alice, -4*time.Hour, false, nil)
	fx.scheduled = post(fx.alice, 24*time.Hour, true, nil)
	fx.bobs = post(fx.bob, -5*time.Hour, true, nil)

	for _, p := range []*Post{&fx.public, &fx.inTravel, &fx.inHidden, &fx.draft, &fx.scheduled, &fx.bobs} {
		if err := insert(p); err != nil {
			return fmt.Errorf("insert post %q: %w", p.Title, err)
		}
	}

	fx.firstComment = Comment{Text: "first", PostID: fx.public.ID, AuthorID: fx.bob.ID}
	fx.secondComment = Comment{Text: "second", PostID: fx.public.ID, AuthorID: fx.alice.ID}
	fx.travelComment = Comment{Text: "nice", PostID: fx.inTravel.ID, AuthorID: fx.bob.ID}

	for _, c := range []*Comment{&fx.firstComment, &fx.secondComment, &fx.travelComment} {
		if err := insert(c); err != nil {
			return fmt.Errorf("insert comment: %w", err)
		}
	}

	return nil
}

func withTx(t *testing.T) (*pg.Tx, context.Context, *Repository) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	repo := New(tx)
	return tx, ctx, repo
}

func postIDs(posts []Post) []int {
	ids := make([]int, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}
	return ids
}

func intPtr(v int) *int {
	return &v
}
