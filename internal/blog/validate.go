package blog

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var slugRe = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

func requireText(errs FieldErrors, field, value string, max int) {
	switch {
	case strings.TrimSpace(value) == "":
		errs.Add(field, "This field is required.")
	case max > 0 && utf8.RuneCountInString(value) > max:
		errs.Add(field, fmt.Sprintf("Ensure this value has at most %d characters.", max))
	}
}

func optionalText(errs FieldErrors, field string, value *string, max int) {
	if value != nil && utf8.RuneCountInString(*value) > max {
		errs.Add(field, fmt.Sprintf("Ensure this value has at most %d characters.", max))
	}
}

func (errs FieldErrors) err() error {
	if len(errs) == 0 {
		return nil
	}

	return &ValidationError{Fields: errs}
}

// checkReferences adds field errors for a category or location that does not exist.
// Unpublished ones are accepted: the author may be preparing them together.
func (m *Manager) checkReferences(ctx context.Context, errs FieldErrors, categoryID, locationID *int) error {
	if categoryID != nil {
		category, err := m.store.CategoryByID(ctx, *categoryID)
		if err != nil {
			return fmt.Errorf("db get category: %w", err)
		} else if category == nil {
			errs.Add("category", "Select a valid choice.")
		}
	}

	if locationID != nil {
		location, err := m.store.LocationByID(ctx, *locationID)
		if err != nil {
			return fmt.Errorf("db get location: %w", err)
		} else if location == nil {
			errs.Add("location", "Select a valid choice.")
		}
	}

	return nil
}

func (m *Manager) validatePost(ctx context.Context, in PostInput) error {
	errs := FieldErrors{}
	requireText(errs, "title", in.Title, MaxLen)
	requireText(errs, "text", in.Text, 0)
	optionalText(errs, "image", in.Image, MaxLen)
	if in.PubDate.IsZero() {
		errs.Add("pubDate", "This field is required.")
	}

	if err := m.checkReferences(ctx, errs, in.CategoryID, in.LocationID); err != nil {
		return err
	}

	return errs.err()
}

func (m *Manager) validatePostEdit(ctx context.Context, in PostEdit) error {
	errs := FieldErrors{}
	requireText(errs, "title", in.Title, MaxLen)
	requireText(errs, "text", in.Text, 0)
	optionalText(errs, "image", in.Image, MaxLen)

	if err := m.checkReferences(ctx, errs, in.CategoryID, nil); err != nil {
		return err
	}

	return errs.err()
}

func validateComment(in CommentInput) error {
	errs := FieldErrors{}
	requireText(errs, "text", in.Text, 0)

	return errs.err()
}

func validateCategory(in CategoryInput) error {
	errs := FieldErrors{}
	requireText(errs, "title", in.Title, MaxLen)
	requireText(errs, "description", in.Description, 0)
	requireText(errs, "slug", in.Slug, MaxSlugLen)
	if in.Slug != "" && !slugRe.MatchString(in.Slug) {
		errs.Add("slug", "Enter a valid slug consisting of latin letters, numbers, underscores or hyphens.")
	}

	return errs.err()
}

func validateLocation(in LocationInput) error {
	errs := FieldErrors{}
	requireText(errs, "name", in.Name, MaxLen)

	return errs.err()
}

func validateUsername(username string) error {
	errs := FieldErrors{}
	requireText(errs, "username", username, MaxUsernameLen)
	if username != "" && strings.ContainsAny(username, " /\t\n") {
		errs.Add("username", "Enter a valid username.")
	}

	return errs.err()
}

// isPublishedAt derives the stored publication flag of a new post.
func isPublishedAt(pubDate, now time.Time) bool {
	return !pubDate.After(now)
}
