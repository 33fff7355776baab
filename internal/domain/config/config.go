package config

import (
	domainerr "folio/internal/domain/errors"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const EnvPrefix = "FOLIO_"

type Config struct {
	Site  SiteConfig  `yaml:"site"`
	Build BuildConfig `yaml:"build"`
	Blog  BlogConfig  `yaml:"blog"`
	Feed  FeedConfig  `yaml:"feed"`
	Log   LogConfig   `yaml:"log"`
}

type SiteConfig struct {
	Title       string            `yaml:"title"`
	BrandName   string            `yaml:"brand_name"`
	Description string            `yaml:"description"`
	Author      string            `yaml:"author"`
	Email       string            `yaml:"email"`
	SiteURL     string            `yaml:"site_url"`
	DefaultLang string            `yaml:"default_lang"`
	Languages   []string          `yaml:"languages"`
	Social      map[string]string `yaml:"social"`
}

type BuildConfig struct {
	SourceDir string    `yaml:"source_dir"`
	PublicDir string    `yaml:"public_dir"`
	CachePath string    `yaml:"cache_path"`
	Now       time.Time `yaml:"-"`
}

type BlogConfig struct {
	PageSize       int `yaml:"page_size"`
	MaxTagsDisplay int `yaml:"max_tags_display"`
	RelatedLimit   int `yaml:"related_limit"`
	WordsPerMinute int `yaml:"words_per_minute"`
}

type FeedConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Output      string `yaml:"output"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() Config {
	return Config{
		Site: SiteConfig{
			Title:       "JuancaDev",
			BrandName:   "JUANCADEV",
			Description: "Juan Camilo, developer, tech content creator, and game developer enthusiast.",
			SiteURL:     "http://localhost:4321",
			DefaultLang: "es",
			Languages:   []string{"es", "en"},
			Author:      "Juan Camilo Farfan",
			Email:       "hello@juancadev.com",
			Social: map[string]string{
				"github":   "https://github.com/juancadev-io",
				"youtube":  "https://www.youtube.com/@juanca-dev",
				"twitter":  "https://twitter.com/juancadev_io",
				"linkedin": "https://www.linkedin.com/in/juancadev-io",
			},
		},
		Build: BuildConfig{
			SourceDir: "src/content/blog",
			PublicDir: "dist",
			CachePath: ".folio/cache.db",
			Now:       time.Now(),
		},
		Blog: BlogConfig{
			PageSize:       15,
			MaxTagsDisplay: 15,
			RelatedLimit:   3,
			WordsPerMinute: 200,
		},
		Feed: FeedConfig{
			Title:       "JuancaDev - Tech Blog",
			Description: "Juan Camilo, developer, tech content creator, and game developer enthusiast.",
			Output:      "rss.xml",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func (c Config) Validate() error {
	var ve domainerr.ValidationError

	if strings.TrimSpace(c.Site.Title) == "" {
		ve.Add("site.title", "must not be empty")
	}

	if strings.TrimSpace(c.Site.SiteURL) == "" {
		ve.Add("site.site_url", "must not be empty")
	} else if !isValidAbsURL(c.Site.SiteURL) {
		ve.Add("site.site_url", "must be a valid absolute URL")
	}

	if len(c.Site.Languages) == 0 {
		ve.Add("site.languages", "must not be empty")
	}
	for _, code := range c.Site.Languages {
		if _, err := language.Parse(code); err != nil {
			ve.Add("site.languages", "invalid language code "+strconv.Quote(code))
		}
	}
	if !c.HasLanguage(c.Site.DefaultLang) {
		ve.Add("site.default_lang", "must be one of site.languages")
	}
	for name, link := range c.Site.Social {
		if !isValidAbsURL(link) {
			ve.Add("site.social."+name, "must be a valid absolute URL")
		}
	}

	if strings.TrimSpace(c.Build.SourceDir) == "" {
		ve.Add("build.source_dir", "must not be empty")
	}
	if strings.TrimSpace(c.Build.PublicDir) == "" {
		ve.Add("build.public_dir", "must not be empty")
	}

	if c.Blog.PageSize <= 0 {
		ve.Add("blog.page_size", "must be positive")
	}
	if c.Blog.MaxTagsDisplay < 0 {
		ve.Add("blog.max_tags_display", "must not be negative")
	}
	if c.Blog.RelatedLimit <= 0 {
		ve.Add("blog.related_limit", "must be positive")
	}
	if c.Blog.WordsPerMinute <= 0 {
		ve.Add("blog.words_per_minute", "must be positive")
	}

	if strings.TrimSpace(c.Feed.Title) == "" {
		ve.Add("feed.title", "must not be empty")
	}

	if ve.HasAny() {
		return ve
	}
	return nil
}

func (c Config) HasLanguage(code string) bool {
	for _, l := range c.Site.Languages {
		if l == code {
			return true
		}
	}
	return false
}

func isValidAbsURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// Load reads path over Default(), then applies FOLIO_* environment overrides
// (a .env file next to the working directory is honoured).
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	// fields present in the file override the defaults, the rest stay
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return finish(cfg)
}

func LoadOrDefault(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return finish(cfg)
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return finish(cfg)
}

func finish(cfg Config) (Config, error) {
	_ = godotenv.Load()
	applyEnv(&cfg)

	if cfg.Build.Now.IsZero() {
		cfg.Build.Now = time.Now()
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := lookupEnv("SITE_URL"); ok {
		cfg.Site.SiteURL = v
	}
	if v, ok := lookupEnv("SOURCE_DIR"); ok {
		cfg.Build.SourceDir = v
	}
	if v, ok := lookupEnv("PUBLIC_DIR"); ok {
		cfg.Build.PublicDir = v
	}
	if v, ok := lookupEnv("CACHE_PATH"); ok {
		cfg.Build.CachePath = v
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookupEnv("PAGE_SIZE"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Blog.PageSize = n
		}
	}
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
