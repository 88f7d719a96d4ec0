// Package siteconfig holds the single site-wide configuration record edited
// from the admin panel.
package siteconfig

import "encoding/json"

type Announcement struct {
	Enabled bool   `json:"enabled"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type PromptsPage struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Registration struct {
	Enabled bool `json:"enabled"`
	// AutoCleanupDays removes accounts idle longer than this many days.
	// Zero disables cleanup.
	AutoCleanupDays int `json:"autoCleanupDays"`
}

type InviteCode struct {
	Enabled bool   `json:"enabled"`
	Code    string `json:"code"`
}

// Config is the singleton site configuration.
type Config struct {
	HomeTitle       string       `json:"homeTitle"`
	TypewriterTexts []string     `json:"typewriterTexts"`
	Announcement    Announcement `json:"announcement"`
	PromptsPage     PromptsPage  `json:"promptsPage"`
	Registration    Registration `json:"registration"`
	InviteCode      InviteCode   `json:"inviteCode"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		HomeTitle:       "Master the art of talking to AI",
		TypewriterTexts: []string{"the ultimate craft", "top techniques", "a way of thinking"},
		Announcement: Announcement{
			Enabled: true,
			Title:   "Welcome to PromptMaster",
			Content: "A fresh platform for managing AI prompts. Admins can now edit every page inline.",
		},
		PromptsPage: PromptsPage{
			Title:       "Prompt Guide",
			Description: "Discover and copy high-quality AI prompts to finish your creative work faster.",
		},
		Registration: Registration{Enabled: true},
		InviteCode:   InviteCode{},
	}
}

// Merge decodes a stored JSON blob over the defaults. Fields absent from the
// blob keep their default value, so configs written by older builds load
// cleanly after the schema grows.
func Merge(stored []byte) (Config, error) {
	cfg := Default()
	if len(stored) == 0 {
		return cfg, nil
	}
	if err := json.Unmarshal(stored, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}
