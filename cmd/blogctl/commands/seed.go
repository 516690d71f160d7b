package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"

	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/daniilsolovey/blogicum/internal/identity"
)

var (
	// Seed flags
	seedUsers      int
	seedCategories int
	seedPosts      int
	seedComments   int
	seedValue      int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with demo data",
	Long: `Create demo users, categories, a few locations, posts and comments.

Some categories are hidden and some posts are scheduled in the future, so every
visibility rule can be tried out against the result.

Examples:
  blogctl seed --users 5 --posts 40
  blogctl seed --seed 42               # reproducible content`,
	Args: cobra.NoArgs,
	RunE: withEnv(func(ctx context.Context, e *env, cmd *cobra.Command, _ []string) error {
		s := newSeeder(e.manager, seedValue, time.Now())
		stats, err := s.run(ctx, seedOptions{
			Users:      seedUsers,
			Categories: seedCategories,
			Posts:      seedPosts,
			Comments:   seedComments,
		})
		if err != nil {
			return err
		}

		stats.print(cmd.OutOrStdout())
		return nil
	}),
}

func init() {
	seedCmd.Flags().IntVar(&seedUsers, "users", 3, "number of users")
	seedCmd.Flags().IntVar(&seedCategories, "categories", 3, "number of categories")
	seedCmd.Flags().IntVar(&seedPosts, "posts", 20, "number of posts")
	seedCmd.Flags().IntVar(&seedComments, "comments", 3, "maximum comments per post")
	seedCmd.Flags().Int64Var(&seedValue, "seed", 0, "random seed, 0 picks one from the clock")

	rootCmd.AddCommand(seedCmd)
}

// seedTarget is the part of blog.Manager the seeder writes through, so demo data passes
// the same validation and ownership rules as real traffic.
type seedTarget interface {
	CreateUser(ctx context.Context, username string) (*blog.User, error)
	CreateCategory(ctx context.Context, in blog.CategoryInput) (*blog.Category, error)
	CreateLocation(ctx context.Context, in blog.LocationInput) (*blog.Location, error)
	CreatePost(ctx context.Context, viewer identity.Viewer, in blog.PostInput) blog.Result[blog.Post]
	CreateComment(ctx context.Context, viewer identity.Viewer, postID int, in blog.CommentInput) blog.Result[blog.Comment]
}

type seedOptions struct {
	Users, Categories, Posts, Comments int
}

type seedStats struct {
	Users, Categories, Locations, Posts, Comments int
	// Skipped counts comments refused because their post is not visible.
	Skipped int
}

func (s seedStats) print(w io.Writer) {
	fmt.Fprintf(w, "users: %d\ncategories: %d\nlocations: %d\nposts: %d\ncomments: %d (skipped %d)\n",
		s.Users, s.Categories, s.Locations, s.Posts, s.Comments, s.Skipped)
}

type seeder struct {
	target seedTarget
	fake   *gofakeit.Faker
	now    time.Time
}

func newSeeder(target seedTarget, seed int64, now time.Time) *seeder {
	if seed == 0 {
		seed = now.UnixNano()
	}

	return &seeder{
		target: target,
		fake:   gofakeit.New(seed),
		now:    now,
	}
}

const maxUsernameAttempts = 5

func (s *seeder) run(ctx context.Context, opt seedOptions) (seedStats, error) {
	var stats seedStats

	viewers := make([]identity.Viewer, 0, opt.Users)
	for range opt.Users {
		user, err := s.user(ctx)
		if err != nil {
			return stats, err
		}
		viewers = append(viewers, identity.Viewer{UserID: user.ID, Username: user.Username})
		stats.Users++
	}
	if len(viewers) == 0 {
		return stats, errors.New("at least one user is required")
	}

	categoryIDs := make([]int, 0, opt.Categories)
	for i := range opt.Categories {
		category, err := s.target.CreateCategory(ctx, blog.CategoryInput{
			Title:       strings.TrimSuffix(s.fake.Sentence(2), "."),
			Description: s.fake.Sentence(8),
			Slug:        fmt.Sprintf("%s-%d", slugWord(s.fake.Word()), s.fake.Number(100, 999)),
			// every third category is hidden
			IsPublished: i%3 != 2,
		})
		if err != nil {
			return stats, fmt.Errorf("create category: %w", err)
		}
		categoryIDs = append(categoryIDs, category.ID)
		stats.Categories++
	}

	var locationIDs []int
	for range 2 {
		location, err := s.target.CreateLocation(ctx, blog.LocationInput{Name: s.fake.City(), IsPublished: true})
		if err != nil {
			return stats, fmt.Errorf("create location: %w", err)
		}
		locationIDs = append(locationIDs, location.ID)
		stats.Locations++
	}

	for range opt.Posts {
		author := viewers[s.fake.Number(0, len(viewers)-1)]
		res := s.target.CreatePost(ctx, author, s.post(categoryIDs, locationIDs))
		if res.Outcome != blog.OutcomeSuccess {
			return stats, fmt.Errorf("create post: %s: %w", res.Outcome, res.Err)
		}
		stats.Posts++

		for range s.fake.Number(0, opt.Comments) {
			commenter := viewers[s.fake.Number(0, len(viewers)-1)]
			c := s.target.CreateComment(ctx, commenter, res.Value.ID, blog.CommentInput{
				Text: s.fake.Paragraph(1, 2, 8, " "),
			})
			switch c.Outcome {
			case blog.OutcomeSuccess:
				stats.Comments++
			case blog.OutcomeNotFound:
				stats.Skipped++
			default:
				return stats, fmt.Errorf("create comment: %s: %w", c.Outcome, c.Err)
			}
		}
	}

	return stats, nil
}

// user registers a fake username, retrying on collisions.
func (s *seeder) user(ctx context.Context) (*blog.User, error) {
	var lastErr error
	for range maxUsernameAttempts {
		user, err := s.target.CreateUser(ctx, s.fake.Username())
		if err == nil {
			return user, nil
		}

		var vErr *blog.ValidationError
		if !errors.As(err, &vErr) {
			return nil, fmt.Errorf("create user: %w", err)
		}
		lastErr = err
	}

	return nil, fmt.Errorf("create user: %w", lastErr)
}

func (s *seeder) post(categoryIDs, locationIDs []int) blog.PostInput {
	in := blog.PostInput{
		Title: strings.TrimSuffix(s.fake.Sentence(5), "."),
		Text:  s.fake.Paragraph(2, 3, 10, "\n\n"),
		// mostly past dates with a tail of scheduled posts
		PubDate: s.fake.DateRange(s.now.AddDate(0, 0, -60), s.now.AddDate(0, 0, 7)),
	}

	if len(categoryIDs) > 0 && s.fake.Number(0, 4) > 0 {
		id := categoryIDs[s.fake.Number(0, len(categoryIDs)-1)]
		in.CategoryID = &id
	}
	if len(locationIDs) > 0 && s.fake.Bool() {
		id := locationIDs[s.fake.Number(0, len(locationIDs)-1)]
		in.LocationID = &id
	}
	if s.fake.Number(0, 3) == 0 {
		image := fmt.Sprintf("https://picsum.photos/seed/%s/800/600", s.fake.UUID())
		in.Image = &image
	}

	return in
}

// slugWord lowercases word and drops everything outside the slug charset.
func slugWord(word string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + 'a' - 'A'
		default:
			return -1
		}
	}, word)
	if slug == "" {
		return "category"
	}

	return slug
}
