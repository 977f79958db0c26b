package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if strings.TrimSpace(c.Auth.JWTIssuer) == "" {
		return fmt.Errorf("auth.jwt_issuer must not be empty")
	}

	switch c.Log.Format {
	case "json", "text", "":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Content.validate(); err != nil {
		return fmt.Errorf("content: %w", err)
	}
	if err := c.Notify.validate(); err != nil {
		return fmt.Errorf("notify: %w", err)
	}

	return nil
}

func (c *ContentConfig) validate() error {
	if c.MaxTitleLength <= 0 {
		return fmt.Errorf("max_title_length must be > 0 (got %d)", c.MaxTitleLength)
	}
	if c.MaxBodyLength <= 0 {
		return fmt.Errorf("max_body_length must be > 0 (got %d)", c.MaxBodyLength)
	}
	if c.MaxCommentLength <= 0 {
		return fmt.Errorf("max_comment_length must be > 0 (got %d)", c.MaxCommentLength)
	}
	if c.FeedPageSize <= 0 {
		return fmt.Errorf("feed_page_size must be > 0 (got %d)", c.FeedPageSize)
	}
	if c.MaxFeedPageSize < c.FeedPageSize {
		return fmt.Errorf("max_feed_page_size must be >= feed_page_size (got %d < %d)", c.MaxFeedPageSize, c.FeedPageSize)
	}
	if c.HistoryPageSize <= 0 {
		return fmt.Errorf("history_page_size must be > 0 (got %d)", c.HistoryPageSize)
	}
	return nil
}

func (n *NotifyConfig) validate() error {
	if n.QueueSize <= 0 {
		return fmt.Errorf("queue_size must be > 0 (got %d)", n.QueueSize)
	}
	if n.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", n.Workers)
	}
	return nil
}
