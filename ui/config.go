package ui

import (
	"github.com/youssefsiam38/answerui/view"
)

// Default configuration values.
const (
	DefaultPageSize = 25
)

// Config holds UI package configuration.
type Config struct {
	// BasePath is the URL prefix where the UI is mounted.
	// For example, if mounted at "/ui/", set BasePath to "/ui".
	// All links, including citation paths, will be prefixed with this path.
	// Defaults to empty string (root mount).
	BasePath string

	// ContentBasePath is the prefix of cited document paths
	// ("{ContentBasePath}/content/{label}"). Defaults to BasePath.
	ContentBasePath string

	// ShowFollowupQuestions enables the follow-up question row.
	ShowFollowupQuestions bool

	// RenderMarkdown converts answer bodies from markdown before sanitizing.
	RenderMarkdown bool

	// CacheSize bounds the parsed answer cache.
	// Defaults to view.DefaultCacheSize.
	CacheSize int

	// PageSize for pagination.
	// Defaults to 25.
	PageSize int

	// Logger for structured logging.
	// If nil, logging is disabled.
	Logger Logger
}

// Logger interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		ShowFollowupQuestions: true,
		CacheSize:             view.DefaultCacheSize,
		PageSize:              DefaultPageSize,
	}
}

// applyDefaults fills in default values for zero-valued fields.
func (c *Config) applyDefaults() {
	if c.CacheSize == 0 {
		c.CacheSize = view.DefaultCacheSize
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.ContentBasePath == "" {
		c.ContentBasePath = c.BasePath
	}
}

// validate checks the configuration for errors.
func (c *Config) validate() error {
	if c.PageSize < 1 {
		return ErrInvalidConfig
	}
	if c.CacheSize < 1 {
		return ErrInvalidConfig
	}
	return nil
}
