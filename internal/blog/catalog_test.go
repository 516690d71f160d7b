package blog

import (
	"context"
	"testing"

	"github.com/daniilsolovey/blogicum/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_CreateCategory(t *testing.T) {
	m := newTestManager(newMemStore())
	ctx := context.Background()

	category, err := m.CreateCategory(ctx, CategoryInput{
		Title:       "Travel",
		Description: "Trips",
		Slug:        "travel_2024",
		IsPublished: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "travel_2024", category.Slug)

	_, err = m.CreateCategory(ctx, CategoryInput{Title: "Again", Description: "d", Slug: "travel_2024"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "slug")
}

func TestManager_CreateCategory_Validation(t *testing.T) {
	m := newTestManager(newMemStore())

	tests := []struct {
		name  string
		in    CategoryInput
		field string
	}{
		{name: "bad slug", in: CategoryInput{Title: "t", Description: "d", Slug: "со слэшем/"}, field: "slug"},
		{name: "empty slug", in: CategoryInput{Title: "t", Description: "d"}, field: "slug"},
		{name: "empty title", in: CategoryInput{Description: "d", Slug: "ok"}, field: "title"},
		{name: "empty description", in: CategoryInput{Title: "t", Slug: "ok"}, field: "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.CreateCategory(context.Background(), tt.in)
			assert.Equal(t, OutcomeValidationFailure, Classify(err))

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields, tt.field)
		})
	}
}

func TestManager_SetCategoryPublished(t *testing.T) {
	s := newMemStore()
	author := s.user("author")
	travel := s.category("travel", true)
	post := s.post(author, testNow, true, &travel)
	m := newTestManager(s)
	ctx := context.Background()

	require.NoError(t, m.SetCategoryPublished(ctx, "travel", false))

	_, err := m.PostDetail(ctx, identity.Anonymous, post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	own, err := m.Profile(ctx, viewerOf(author), "author", 1)
	require.NoError(t, err)
	assert.Equal(t, []int{post.ID}, postIDs(own.Posts))

	assert.ErrorIs(t, m.SetCategoryPublished(ctx, "missing", true), ErrNotFound)
}

func TestManager_CreateLocationAndUser(t *testing.T) {
	m := newTestManager(newMemStore())
	ctx := context.Background()

	location, err := m.CreateLocation(ctx, LocationInput{Name: "Kazan", IsPublished: true})
	require.NoError(t, err)
	assert.Equal(t, "Kazan", location.Name)

	_, err = m.CreateLocation(ctx, LocationInput{})
	assert.Equal(t, OutcomeValidationFailure, Classify(err))

	locations, err := m.Locations(ctx)
	require.NoError(t, err)
	assert.Len(t, locations, 1)

	user, err := m.CreateUser(ctx, "leo")
	require.NoError(t, err)
	assert.Positive(t, user.ID)

	_, err = m.CreateUser(ctx, "leo")
	assert.Equal(t, OutcomeValidationFailure, Classify(err))

	found, err := m.UserByUsername(ctx, "leo")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = m.UserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
