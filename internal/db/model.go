// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Category struct {
		ID, Title, Description, Slug, IsPublished, CreatedAt string
	}
	Comment struct {
		ID, Text, PostID, AuthorID, CreatedAt string

		Post, Author string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	Location struct {
		ID, Name, IsPublished, CreatedAt string
	}
	Post struct {
		ID, Title, Text, PubDate, AuthorID, LocationID, CategoryID, IsPublished, Image, CreatedAt string

		Author, Location, Category string
	}
	User struct {
		ID, Username, CreatedAt string
	}
}{
	Category: struct {
		ID, Title, Description, Slug, IsPublished, CreatedAt string
	}{
		ID:          "categoryId",
		Title:       "title",
		Description: "description",
		Slug:        "slug",
		IsPublished: "isPublished",
		CreatedAt:   "createdAt",
	},
	Comment: struct {
		ID, Text, PostID, AuthorID, CreatedAt string

		Post, Author string
	}{
		ID:        "commentId",
		Text:      "text",
		PostID:    "postId",
		AuthorID:  "authorId",
		CreatedAt: "createdAt",

		Post:   "Post",
		Author: "Author",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	Location: struct {
		ID, Name, IsPublished, CreatedAt string
	}{
		ID:          "locationId",
		Name:        "name",
		IsPublished: "isPublished",
		CreatedAt:   "createdAt",
	},
	Post: struct {
		ID, Title, Text, PubDate, AuthorID, LocationID, CategoryID, IsPublished, Image, CreatedAt string

		Author, Location, Category string
	}{
		ID:          "postId",
		Title:       "title",
		Text:        "text",
		PubDate:     "pubDate",
		AuthorID:    "authorId",
		LocationID:  "locationId",
		CategoryID:  "categoryId",
		IsPublished: "isPublished",
		Image:       "image",
		CreatedAt:   "createdAt",

		Author:   "Author",
		Location: "Location",
		Category: "Category",
	},
	User: struct {
		ID, Username, CreatedAt string
	}{
		ID:        "userId",
		Username:  "username",
		CreatedAt: "createdAt",
	},
}

var Tables = struct {
	Category struct {
		Name, Alias string
	}
	Comment struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	Location struct {
		Name, Alias string
	}
	Post struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	Location: struct {
		Name, Alias string
	}{
		Name:  "locations",
		Alias: "t",
	},
	Post: struct {
		Name, Alias string
	}{
		Name:  "posts",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          int       `pg:"categoryId,pk"`
	Title       string    `pg:"title,use_zero"`
	Description string    `pg:"description,use_zero"`
	Slug        string    `pg:"slug,use_zero"`
	IsPublished bool      `pg:"isPublished,use_zero"`
	CreatedAt   time.Time `pg:"createdAt"`
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID        int       `pg:"commentId,pk"`
	Text      string    `pg:"text,use_zero"`
	PostID    int       `pg:"postId,use_zero"`
	AuthorID  int       `pg:"authorId,use_zero"`
	CreatedAt time.Time `pg:"createdAt"`

	Post   *Post `pg:"fk:postId,rel:has-one"`
	Author *User `pg:"fk:authorId,rel:has-one"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type Location struct {
	tableName struct{} `pg:"locations,alias:t,discard_unknown_columns"`

	ID          int       `pg:"locationId,pk"`
	Name        string    `pg:"name,use_zero"`
	IsPublished bool      `pg:"isPublished,use_zero"`
	CreatedAt   time.Time `pg:"createdAt"`
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID          int       `pg:"postId,pk"`
	Title       string    `pg:"title,use_zero"`
	Text        string    `pg:"text,use_zero"`
	PubDate     time.Time `pg:"pubDate,use_zero"`
	AuthorID    int       `pg:"authorId,use_zero"`
	LocationID  *int      `pg:"locationId"`
	CategoryID  *int      `pg:"categoryId"`
	IsPublished bool      `pg:"isPublished,use_zero"`
	Image       *string   `pg:"image"`
	CreatedAt   time.Time `pg:"createdAt"`

	Author   *User     `pg:"fk:authorId,rel:has-one"`
	Location *Location `pg:"fk:locationId,rel:has-one"`
	Category *Category `pg:"fk:categoryId,rel:has-one"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID        int       `pg:"userId,pk"`
	Username  string    `pg:"username,use_zero"`
	CreatedAt time.Time `pg:"createdAt"`
}
