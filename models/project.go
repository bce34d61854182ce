package models

import (
	"time"

	"github.com/google/uuid"
)

// Team types accepted for a project entry.
const (
	TeamTypeChallenger = "challenger"
	TeamTypeRookie     = "rookie"
)

// Project represents a row of the project table.
type Project struct {
	ID            uuid.UUID `json:"id,omitempty"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	TeamType      string    `json:"team_type"`
	TeamName      *string   `json:"team_name,omitempty"`
	Platform      []string  `json:"platform,omitempty"`
	VideoURL      *string   `json:"video_url,omitempty"`
	BannerImage   *string   `json:"banner_image,omitempty"`
	GalleryImages []string  `json:"gallery_images,omitempty"`
	DownloadURL   *string   `json:"download_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProjectView is a row of the project_with_genres view: the project
// columns plus the denormalized genre names and ids. All reads go
// through the view so a single query returns the complete detail.
type ProjectView struct {
	Project
	Genres   []string    `json:"genres"`
	GenreIDs []uuid.UUID `json:"genre_ids"`
}
