package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

const (
	defaultPort     = 3000
	defaultPageSize = 10
)

type Config struct {
	Database pg.Options
	App      App
	Auth     Auth
}

type App struct {
	Host string
	Port int
	// PageSize is the number of posts on a listing page.
	PageSize int
	// FeedLimit truncates the feed to its newest posts before pagination; 0 disables it.
	FeedLimit  int
	LogQueries bool
	// SlowQuery is the threshold for slow query warnings when LogQueries is on.
	SlowQuery Duration
}

type Auth struct {
	// Secret signs bearer tokens (HS256).
	Secret   string
	TokenTTL Duration
}

// Duration decodes "72h"-style strings from TOML and viper.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Load reads a TOML file and fills defaults.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config %q: %w", path, err)
	}

	cfg.SetDefaults()

	return cfg, nil
}

func (c *Config) SetDefaults() {
	if c.App.Port == 0 {
		c.App.Port = defaultPort
	}
	if c.App.PageSize == 0 {
		c.App.PageSize = defaultPageSize
	}
}

// SetDatabaseURL replaces the database options with a postgres:// URL, as given in
// DATABASE_URL. Pool settings already configured are kept.
func (c *Config) SetDatabaseURL(url string) error {
	opt, err := pg.ParseURL(url)
	if err != nil {
		return fmt.Errorf("failed to parse database URL: %w", err)
	}

	opt.PoolSize = c.Database.PoolSize
	opt.MaxRetries = c.Database.MaxRetries
	opt.MaxConnAge = c.Database.MaxConnAge
	c.Database = *opt

	return nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Database.Addr == "" {
		errs = append(errs, errors.New("database.addr is required"))
	}
	if c.Database.Database == "" {
		errs = append(errs, errors.New("database.database is required"))
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("app.port %d out of range", c.App.Port))
	}
	if c.App.PageSize < 1 {
		errs = append(errs, errors.New("app.pagesize must be positive"))
	}
	if c.App.FeedLimit < 0 {
		errs = append(errs, errors.New("app.feedlimit must not be negative"))
	}
	if c.Auth.Secret == "" {
		errs = append(errs, errors.New("auth.secret is required"))
	}
	if c.Auth.TokenTTL.Duration < 0 {
		errs = append(errs, errors.New("auth.tokenttl must not be negative"))
	}

	return errors.Join(errs...)
}
