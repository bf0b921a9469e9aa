// Package model contains the domain types.
// These are plain structs with JSON tags — Go's encoding/json uses the tags
// to control field names in the serialized output.
package model

import "github.com/fleveque/profile-service/internal/config"

// Profile holds the static profile fields. There is no ID and no lifecycle:
// the same value is served on every request.
type Profile struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Bio      string   `json:"bio"`
	Location string   `json:"location"`
	Skills   []string `json:"skills"`
	Hobbies  []string `json:"hobbies"`
}

// ProfileResponse is the wire shape of the profile endpoint: the static
// fields plus one dynamic "fact" field populated at request time.
// Struct embedding flattens Profile's fields into the same JSON object,
// so the response stays a single flat mapping.
type ProfileResponse struct {
	Profile
	Fact string `json:"fact"`
}

// ProfileFromConfig builds the static profile from configuration.
// Pure function of its input: no errors, no side effects.
func ProfileFromConfig(cfg config.ProfileConfig) Profile {
	return Profile{
		Name:     cfg.Name,
		Title:    cfg.Title,
		Bio:      cfg.Bio,
		Location: cfg.Location,
		Skills:   cfg.Skills,
		Hobbies:  cfg.Hobbies,
	}
}
