package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/daniilsolovey/blogicum/internal/blog"
)

var (
	// Category flags
	categoryTitle       string
	categoryDescription string
	categorySlug        string
	categoryPublished   bool

	// Location flags
	locationName      string
	locationPublished bool
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
}

var categoryCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a category",
	Long: `Create a category.

Examples:
  blogctl category create --title Travel --slug travel --description "Trips" --published`,
	Args: cobra.NoArgs,
	RunE: withEnv(func(ctx context.Context, e *env, cmd *cobra.Command, _ []string) error {
		category, err := e.manager.CreateCategory(ctx, blog.CategoryInput{
			Title:       categoryTitle,
			Description: categoryDescription,
			Slug:        categorySlug,
			IsPublished: categoryPublished,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "category %q created (id %d, published %t)\n",
			category.Slug, category.ID, category.IsPublished)
		return nil
	}),
}

var categoryPublishCmd = &cobra.Command{
	Use:   "publish SLUG",
	Short: "Make a category and its posts visible",
	Args:  cobra.ExactArgs(1),
	RunE:  setCategoryPublished(true),
}

var categoryHideCmd = &cobra.Command{
	Use:   "hide SLUG",
	Short: "Hide a category and its posts from everyone but their authors",
	Args:  cobra.ExactArgs(1),
	RunE:  setCategoryPublished(false),
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories, hidden ones included",
	Args:  cobra.NoArgs,
	RunE: withEnv(func(ctx context.Context, e *env, cmd *cobra.Command, _ []string) error {
		categories, err := e.manager.AllCategories(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSLUG\tTITLE\tPUBLISHED")
		for _, c := range categories {
			fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", c.ID, c.Slug, c.Title, c.IsPublished)
		}
		return w.Flush()
	}),
}

var locationCmd = &cobra.Command{
	Use:   "location",
	Short: "Manage locations",
}

var locationCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a location",
	Args:  cobra.NoArgs,
	RunE: withEnv(func(ctx context.Context, e *env, cmd *cobra.Command, _ []string) error {
		location, err := e.manager.CreateLocation(ctx, blog.LocationInput{
			Name:        locationName,
			IsPublished: locationPublished,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "location %q created (id %d)\n", location.Name, location.ID)
		return nil
	}),
}

var locationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List locations",
	Args:  cobra.NoArgs,
	RunE: withEnv(func(ctx context.Context, e *env, cmd *cobra.Command, _ []string) error {
		locations, err := e.manager.Locations(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPUBLISHED")
		for _, l := range locations {
			fmt.Fprintf(w, "%d\t%s\t%t\n", l.ID, l.Name, l.IsPublished)
		}
		return w.Flush()
	}),
}

func init() {
	categoryCreateCmd.Flags().StringVar(&categoryTitle, "title", "", "category title")
	categoryCreateCmd.Flags().StringVar(&categoryDescription, "description", "", "category description")
	categoryCreateCmd.Flags().StringVar(&categorySlug, "slug", "", "URL identifier: latin letters, digits, hyphens and underscores")
	categoryCreateCmd.Flags().BoolVar(&categoryPublished, "published", true, "make the category visible")
	_ = categoryCreateCmd.MarkFlagRequired("title")
	_ = categoryCreateCmd.MarkFlagRequired("slug")

	locationCreateCmd.Flags().StringVar(&locationName, "name", "", "location name")
	locationCreateCmd.Flags().BoolVar(&locationPublished, "published", true, "mark the location published")
	_ = locationCreateCmd.MarkFlagRequired("name")

	categoryCmd.AddCommand(categoryCreateCmd, categoryPublishCmd, categoryHideCmd, categoryListCmd)
	locationCmd.AddCommand(locationCreateCmd, locationListCmd)
	rootCmd.AddCommand(categoryCmd, locationCmd)
}

func setCategoryPublished(published bool) func(*cobra.Command, []string) error {
	return withEnv(func(ctx context.Context, e *env, cmd *cobra.Command, args []string) error {
		if err := e.manager.SetCategoryPublished(ctx, args[0], published); err != nil {
			return fmt.Errorf("category %q: %w", args[0], err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "category %q published=%t\n", args[0], published)
		return nil
	})
}
