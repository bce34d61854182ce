package models

import "github.com/google/uuid"

// Genre is a named tag attachable to many projects. Names are unique;
// attaching an existing name reuses its row.
type Genre struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ProjectGenre is a row of the project_genre join table.
type ProjectGenre struct {
	ProjectID uuid.UUID `json:"project_id"`
	GenreID   uuid.UUID `json:"genre_id"`
}
