package blog

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
)

// ContentConfig locates and interprets the content directory.
type ContentConfig struct {
	// Dir is the directory holding post documents.
	Dir string
	// Extension selects recognized document files.
	Extension string
	// DefaultTitle replaces an absent title in listings.
	DefaultTitle string
}

// MarkdownConfig tweaks the body rendering pipeline.
type MarkdownConfig struct {
	// HardWraps renders single newlines as hard breaks.
	HardWraps bool
	// HeadingAnchors appends a self-link to each identified heading.
	HeadingAnchors bool
}

// LoggingConfig selects the logging provider behaviour.
type LoggingConfig struct {
	Enabled   bool
	Level     string
	Format    string
	AddSource bool
}

// CopyConfig tunes the code-block copy affordance.
type CopyConfig struct {
	// ResetDelay is how long the copied state lingers before reverting.
	ResetDelay time.Duration
}

// Config is the root module configuration.
type Config struct {
	Content  ContentConfig
	Markdown MarkdownConfig
	Logging  LoggingConfig
	Copy     CopyConfig
}

// DefaultConfig returns the baseline configuration New falls back to when
// callers leave fields unset.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			Dir:          "content",
			Extension:    ".md",
			DefaultTitle: "Untitled",
		},
		Markdown: MarkdownConfig{
			HeadingAnchors: true,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Format:  "console",
		},
		Copy: CopyConfig{
			ResetDelay: 2 * time.Second,
		},
	}
}

const configValidationCode = "BLOG_CONFIG_INVALID"

// Validate checks the configuration before the module is assembled.
func (c Config) Validate() error {
	err := validation.Errors{
		"content.dir":       validation.Validate(c.Content.Dir, validation.Required),
		"content.extension": validation.Validate(c.Content.Extension, validation.By(validateExtension)),
		"copy.reset_delay":  validation.Validate(c.Copy.ResetDelay, validation.By(validateDelay)),
	}.Filter()
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "blog configuration invalid").
			WithTextCode(configValidationCode)
	}
	return nil
}

func validateExtension(value any) error {
	ext, _ := value.(string)
	if strings.TrimSpace(ext) == "" {
		return nil
	}
	if !strings.HasPrefix(ext, ".") {
		return validation.NewError("blog.config.extension_dot", "extension must start with a dot")
	}
	return nil
}

func validateDelay(value any) error {
	delay, _ := value.(time.Duration)
	if delay < 0 {
		return validation.NewError("blog.config.reset_delay_negative", "reset delay must not be negative")
	}
	return nil
}
