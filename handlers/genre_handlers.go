package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	postgrest "github.com/supabase-community/postgrest-go"

	"devfair/site-api/models"
	"devfair/site-api/utils"
)

// CreateGenreRequest is the admin payload for creating a genre tag.
type CreateGenreRequest struct {
	Name string `json:"name" validate:"required"`
}

// GenreListResponse wraps genre search results.
type GenreListResponse struct {
	Items []models.Genre `json:"items"`
}

// ListGenres searches genres by case-insensitive substring, ordered by
// name. Without a query it returns the first limit genres.
func (h *ApplicationHandler) ListGenres(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("query"))
	limit := clampLimit(c.QueryInt("limit", genreSearchLimit), genreSearchLimit, maxGenreLimit)

	query := h.DB.From("genre").Select("id, name", "", false)
	if q != "" {
		query = query.Ilike("name", "%"+q+"%")
	}

	body, _, err := query.
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		Limit(limit, "").
		Execute()
	if err != nil {
		h.Logger.Errorf("Error searching genres: %v", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not retrieve genres: %v", err))
	}

	items := []models.Genre{}
	if err := json.Unmarshal(body, &items); err != nil {
		h.Logger.Errorf("Error unmarshalling genre list: %v", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not process genre data")
	}

	return c.Status(fiber.StatusOK).JSON(GenreListResponse{Items: items})
}

// CreateGenre upserts a genre by its unique name. Attaching a name that
// already exists returns the existing row, never a duplicate.
func (h *ApplicationHandler) CreateGenre(c *fiber.Ctx) error {
	payload := new(CreateGenreRequest)
	if err := c.BodyParser(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse genre JSON: %v", err))
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "name required")
	}

	body, _, err := h.DB.From("genre").
		Insert(map[string]string{"name": name}, true, "name", "representation", "").
		Execute()
	if err != nil {
		h.Logger.Errorf("Error upserting genre %q: %v", name, err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not create genre: %v", err))
	}

	var rows []models.Genre
	if err := json.Unmarshal(body, &rows); err != nil || len(rows) == 0 {
		h.Logger.Errorf("Error unmarshalling upserted genre: %v, body: %s", err, string(body))
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to confirm genre creation")
	}

	return c.Status(fiber.StatusCreated).JSON(rows[0])
}
