package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-pg/pg/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/daniilsolovey/blogicum/config"
	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/daniilsolovey/blogicum/internal/db"
)

const envPrefix = "BLOG"

var (
	// Global flags
	configPath  string
	databaseURL string
	debug       bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "blogctl",
	Short: "Blogicum administration tool",
	Long: `blogctl manages a Blogicum database: schema migrations, categories, locations,
users, bearer tokens and demo data.

Settings come from the TOML config file; every key can be overridden from the
environment with the BLOG_ prefix, e.g. BLOG_DATABASE_ADDR or BLOG_AUTH_SECRET.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "path to TOML configuration file")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "database connection URL, overrides [Database] (BLOG_DATABASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "log debug messages")
}

// loadConfig reads the config file through viper so environment variables can override
// any key.
func loadConfig() (config.Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg config.Config
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("failed to read config %q: %w", configPath, err)
	}

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.SetDefaults()

	url := databaseURL
	if url == "" {
		url = v.GetString("database_url")
	}
	if url != "" {
		if err := cfg.SetDatabaseURL(url); err != nil {
			return cfg, err
		}
	}

	return cfg, cfg.Validate()
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// env is what a data command needs: the loaded config and a manager over a live
// connection.
type env struct {
	cfg     config.Config
	conn    *pg.DB
	manager *blog.Manager
}

func connect(ctx context.Context) (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := newLogger()
	conn := pg.Connect(&cfg.Database)
	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if cfg.App.LogQueries {
		hook := db.NewQueryHook(logger)
		if cfg.App.SlowQuery.Duration != 0 {
			hook.WithSlowQuery(cfg.App.SlowQuery.Duration)
		}
		conn.AddQueryHook(hook)
	}

	manager := blog.NewManager(db.New(conn), logger,
		blog.WithPageSize(cfg.App.PageSize),
		blog.WithFeedLimit(cfg.App.FeedLimit),
	)

	return &env{
		cfg:     cfg,
		conn:    conn,
		manager: manager,
	}, nil
}

func (e *env) Close() error {
	return e.conn.Close()
}

// withEnv adapts a command body that needs a connection to cobra's RunE.
func withEnv(run func(ctx context.Context, e *env, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		e, err := connect(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		return run(ctx, e, cmd, args)
	}
}
