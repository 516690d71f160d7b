package blog

import (
	"context"
	"errors"
	"fmt"

	"github.com/daniilsolovey/blogicum/internal/db"
)

// CreateCategory adds a category. A taken slug is reported as a field error.
func (m *Manager) CreateCategory(ctx context.Context, in CategoryInput) (*Category, error) {
	if err := validateCategory(in); err != nil {
		return nil, err
	}

	added, err := m.store.AddCategory(ctx, &db.Category{
		Title:       in.Title,
		Description: in.Description,
		Slug:        in.Slug,
		IsPublished: in.IsPublished,
	})
	if errors.Is(err, db.ErrDuplicate) {
		return nil, &ValidationError{Fields: FieldErrors{"slug": "Category with this slug already exists."}}
	} else if err != nil {
		return nil, fmt.Errorf("db add category: %w", err)
	}

	category := NewCategory(*added)
	m.logger.InfoContext(ctx, "category created", "slug", category.Slug, "published", category.IsPublished)

	return &category, nil
}

// SetCategoryPublished shows or hides a category. Hiding it hides its posts everywhere
// except in their authors' profiles.
func (m *Manager) SetCategoryPublished(ctx context.Context, slug string, published bool) error {
	ok, err := m.store.SetCategoryPublished(ctx, slug, published)
	if err != nil {
		return fmt.Errorf("db set category published: %w", err)
	} else if !ok {
		return ErrNotFound
	}

	m.logger.InfoContext(ctx, "category visibility changed", "slug", slug, "published", published)

	return nil
}

// AllCategories returns every category including hidden ones.
func (m *Manager) AllCategories(ctx context.Context) ([]Category, error) {
	list, err := m.store.Categories(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return Map(list, NewCategory), nil
}

func (m *Manager) CreateLocation(ctx context.Context, in LocationInput) (*Location, error) {
	if err := validateLocation(in); err != nil {
		return nil, err
	}

	added, err := m.store.AddLocation(ctx, &db.Location{
		Name:        in.Name,
		IsPublished: in.IsPublished,
	})
	if err != nil {
		return nil, fmt.Errorf("db add location: %w", err)
	}

	location := NewLocation(*added)

	return &location, nil
}

func (m *Manager) Locations(ctx context.Context) ([]Location, error) {
	list, err := m.store.Locations(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get locations: %w", err)
	}

	return Map(list, NewLocation), nil
}

// CreateUser registers the identity row a token can be issued for.
func (m *Manager) CreateUser(ctx context.Context, username string) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	added, err := m.store.AddUser(ctx, &db.User{Username: username})
	if errors.Is(err, db.ErrDuplicate) {
		return nil, &ValidationError{Fields: FieldErrors{"username": "A user with that username already exists."}}
	} else if err != nil {
		return nil, fmt.Errorf("db add user: %w", err)
	}

	user := NewUser(*added)

	return &user, nil
}

func (m *Manager) UserByUsername(ctx context.Context, username string) (*User, error) {
	dbUser, err := m.store.UserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("db get user: %w", err)
	} else if dbUser == nil {
		return nil, ErrNotFound
	}

	user := NewUser(*dbUser)

	return &user, nil
}
