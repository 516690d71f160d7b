package db

import (
	"time"

	"github.com/go-pg/pg/v10/orm"
)

// Scope narrows a posts query. Scopes compose through orm.Query.Apply and expect the
// posts table under the "t" alias.
type Scope func(q *orm.Query) (*orm.Query, error)

// Published keeps posts whose stored flag is set and whose pubDate is not after now.
func Published(now time.Time) Scope {
	return func(q *orm.Query) (*orm.Query, error) {
		return q.
			Where(`"t"."isPublished" = ?`, true).
			Where(`"t"."pubDate" <= ?`, now), nil
	}
}

// CategoryPublishedOrAbsent keeps posts without a category or with a published one.
// It does not depend on the Category relation being joined, so it is safe for counts.
func CategoryPublishedOrAbsent() Scope {
	return func(q *orm.Query) (*orm.Query, error) {
		return q.Where(`("t"."categoryId" IS NULL OR EXISTS (
			SELECT 1 FROM "categories" AS "c"
			WHERE "c"."categoryId" = "t"."categoryId" AND "c"."isPublished" = ?))`, true), nil
	}
}

func ByAuthor(authorID int) Scope {
	return func(q *orm.Query) (*orm.Query, error) {
		return q.Where(`"t"."authorId" = ?`, authorID), nil
	}
}

func InCategory(categoryID int) Scope {
	return func(q *orm.Query) (*orm.Query, error) {
		return q.Where(`"t"."categoryId" = ?`, categoryID), nil
	}
}

// PostSearch describes which posts a listing wants. A nil field does not filter.
type PostSearch struct {
	AuthorID   *int
	CategoryID *int
	// PublicAt restricts the result to posts visible to everyone at that moment.
	PublicAt *time.Time
}

// Scopes returns the scopes the search translates to, in application order.
func (s PostSearch) Scopes() []Scope {
	var scopes []Scope
	if s.PublicAt != nil {
		scopes = append(scopes, Published(*s.PublicAt), CategoryPublishedOrAbsent())
	}
	if s.AuthorID != nil {
		scopes = append(scopes, ByAuthor(*s.AuthorID))
	}
	if s.CategoryID != nil {
		scopes = append(scopes, InCategory(*s.CategoryID))
	}

	return scopes
}

func (s PostSearch) apply(q *orm.Query) *orm.Query {
	for _, scope := range s.Scopes() {
		q = q.Apply(scope)
	}

	return q
}
