package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	postgrest "github.com/supabase-community/postgrest-go"

	"devfair/site-api/internal/gallery"
	"devfair/site-api/models"
	"devfair/site-api/utils"
)

var validate = validator.New()

var descOrder = postgrest.OrderOpts{Ascending: false}

// CreateProjectRequest is the admin payload for a new exhibition entry.
type CreateProjectRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   *string  `json:"description,omitempty"`
	TeamType      string   `json:"team_type" validate:"required,oneof=challenger rookie"`
	TeamName      *string  `json:"team_name,omitempty"`
	Platform      []string `json:"platform,omitempty" validate:"dive,oneof=pc mobile web"`
	VideoURL      *string  `json:"video_url,omitempty"`
	BannerImage   *string  `json:"banner_image,omitempty"`
	GalleryImages []string `json:"gallery_images,omitempty"`
	DownloadURL   *string  `json:"download_url,omitempty"`
	Genres        []string `json:"genres,omitempty"`
}

// UpdateProjectRequest is the admin payload for a partial update. Every
// field is optional; Genres distinguishes absent (nil, no change) from
// an explicit empty array (clear all associations).
type UpdateProjectRequest struct {
	Title         *string   `json:"title,omitempty"`
	Description   *string   `json:"description,omitempty"`
	TeamType      *string   `json:"team_type,omitempty" validate:"omitempty,oneof=challenger rookie"`
	TeamName      *string   `json:"team_name,omitempty"`
	Platform      *[]string `json:"platform,omitempty" validate:"omitempty,dive,oneof=pc mobile web"`
	VideoURL      *string   `json:"video_url,omitempty"`
	BannerImage   *string   `json:"banner_image,omitempty"`
	GalleryImages *[]string `json:"gallery_images,omitempty"`
	DownloadURL   *string   `json:"download_url,omitempty"`
	Genres        *[]string `json:"genres,omitempty"`
}

// GalleryOpRequest describes one edit of a project's gallery order.
type GalleryOpRequest struct {
	Op    string   `json:"op" validate:"required,oneof=move append remove"`
	From  *int     `json:"from,omitempty"`
	To    *int     `json:"to,omitempty"`
	Index *int     `json:"index,omitempty"`
	URLs  []string `json:"urls,omitempty"`
}

// ListProjects godoc
// @Summary List projects
// @Description Lists exhibition projects with optional filters, newest first. All filters combine with AND semantics.
// @Tags projects
// @Produce json
// @Param title query string false "Case-insensitive title substring"
// @Param genre query string false "Genre name membership"
// @Param platform query string false "Platform membership (pc, mobile, web)"
// @Param team_type query string false "Exact team type (challenger, rookie)"
// @Param page query int false "Page, starting at 1"
// @Param pageSize query int false "Page size, at most 100"
// @Success 200 {object} ListResponse
// @Failure 500 {object} ErrorResponse
// @Router /project [get]
func (h *ApplicationHandler) ListProjects(c *fiber.Ctx) error {
	page, pageSize, from, to := paginate(c.QueryInt("page", 1), c.QueryInt("pageSize", projectPageSize), projectPageSize)

	query := h.DB.From("project_with_genres").Select("*", "exact", false)
	if title := c.Query("title"); title != "" {
		query = query.Ilike("title", "%"+title+"%")
	}
	if genre := c.Query("genre"); genre != "" {
		query = query.Contains("genres", []string{genre})
	}
	if platform := c.Query("platform"); platform != "" {
		query = query.Contains("platform", []string{platform})
	}
	if teamType := c.Query("team_type"); teamType != "" {
		query = query.Eq("team_type", teamType)
	}

	// created_at alone is not a stable sort key; id breaks ties so
	// pages never overlap or skip rows.
	body, total, err := query.
		Order("created_at", &descOrder).
		Order("id", &descOrder).
		Range(from, to, "").
		Execute()
	if err != nil {
		h.Logger.Errorf("Error fetching projects: %v", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not retrieve projects: %v", err))
	}

	items := []models.ProjectView{}
	if err := json.Unmarshal(body, &items); err != nil {
		h.Logger.Errorf("Error unmarshalling project list: %v", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not process project data")
	}

	return c.Status(fiber.StatusOK).JSON(ListResponse{Items: items, Page: page, PageSize: pageSize, Total: total})
}

// GetProject handles retrieving a single project by id from the view.
func (h *ApplicationHandler) GetProject(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid project ID format")
	}

	view, err := h.fetchProjectView(projectID)
	if err != nil {
		if errors.Is(err, errProjectNotFound) {
			return utils.RespondWithError(c, fiber.StatusNotFound, fmt.Sprintf("Project with ID %s not found", projectID))
		}
		h.Logger.Errorf("Error fetching project %s: %v", projectID, err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(view)
}

// CreateProject inserts a project row, reconciles its genre names and
// returns the detail view of the new entry.
func (h *ApplicationHandler) CreateProject(c *fiber.Ctx) error {
	payload := new(CreateProjectRequest)
	if err := c.BodyParser(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse project JSON: %v", err))
	}
	if err := validate.Struct(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.FormatValidationErrors(err))
	}

	insertData := map[string]interface{}{
		"title":     payload.Title,
		"team_type": payload.TeamType,
	}
	if payload.Description != nil {
		insertData["description"] = *payload.Description
	}
	if payload.TeamName != nil {
		insertData["team_name"] = *payload.TeamName
	}
	if payload.Platform != nil {
		insertData["platform"] = payload.Platform
	}
	if payload.VideoURL != nil {
		insertData["video_url"] = *payload.VideoURL
	}
	if payload.BannerImage != nil {
		insertData["banner_image"] = *payload.BannerImage
	}
	if payload.GalleryImages != nil {
		insertData["gallery_images"] = payload.GalleryImages
	}
	if payload.DownloadURL != nil {
		insertData["download_url"] = *payload.DownloadURL
	}

	var created []models.Project
	body, _, err := h.DB.From("project").
		Insert(insertData, false, "", "representation", "").
		Execute()
	if err != nil {
		h.Logger.Errorf("Error inserting project: %v", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not create project: %v", err))
	}
	if err := json.Unmarshal(body, &created); err != nil || len(created) == 0 {
		h.Logger.Errorf("Error unmarshalling created project: %v, body: %s", err, string(body))
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to confirm project creation")
	}

	projectID := created[0].ID
	if err := h.reconcileGenres(projectID, payload.Genres, false); err != nil {
		h.Logger.Errorf("Error attaching genres to project %s: %v", projectID, err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	view, err := h.fetchProjectView(projectID)
	if err != nil {
		h.Logger.Errorf("Error reading back project %s: %v", projectID, err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	h.Logger.Infof("Project %s created", projectID)
	return c.Status(fiber.StatusCreated).JSON(view)
}

// UpdateProject applies a partial update to the project row and, when a
// genres array is present, fully replaces the genre associations.
func (h *ApplicationHandler) UpdateProject(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid project ID format")
	}

	payload := new(UpdateProjectRequest)
	if err := c.BodyParser(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse project JSON: %v", err))
	}
	if err := validate.Struct(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.FormatValidationErrors(err))
	}

	updateData := map[string]interface{}{}
	if payload.Title != nil {
		updateData["title"] = *payload.Title
	}
	if payload.Description != nil {
		updateData["description"] = *payload.Description
	}
	if payload.TeamType != nil {
		updateData["team_type"] = *payload.TeamType
	}
	if payload.TeamName != nil {
		updateData["team_name"] = *payload.TeamName
	}
	if payload.Platform != nil {
		updateData["platform"] = *payload.Platform
	}
	if payload.VideoURL != nil {
		updateData["video_url"] = *payload.VideoURL
	}
	if payload.BannerImage != nil {
		updateData["banner_image"] = *payload.BannerImage
	}
	if payload.GalleryImages != nil {
		updateData["gallery_images"] = *payload.GalleryImages
	}
	if payload.DownloadURL != nil {
		updateData["download_url"] = *payload.DownloadURL
	}

	if len(updateData) > 0 {
		_, _, err := h.DB.From("project").
			Update(updateData, "", "").
			Eq("id", projectID.String()).
			Execute()
		if err != nil {
			h.Logger.Errorf("Error updating project %s: %v", projectID, err)
			return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not update project: %v", err))
		}
	}

	// nil means the field was absent: associations stay untouched. An
	// explicit empty array clears them.
	if payload.Genres != nil {
		if err := h.reconcileGenres(projectID, *payload.Genres, true); err != nil {
			h.Logger.Errorf("Error replacing genres for project %s: %v", projectID, err)
			return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	view, err := h.fetchProjectView(projectID)
	if err != nil {
		if errors.Is(err, errProjectNotFound) {
			return utils.RespondWithError(c, fiber.StatusNotFound, fmt.Sprintf("Project with ID %s not found", projectID))
		}
		h.Logger.Errorf("Error reading back project %s: %v", projectID, err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(view)
}

// DeleteProject removes a project row; join rows go with it via the
// database's cascade.
func (h *ApplicationHandler) DeleteProject(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid project ID format")
	}

	_, _, err = h.DB.From("project").
		Delete("", "").
		Eq("id", projectID.String()).
		Execute()
	if err != nil {
		h.Logger.Errorf("Error deleting project %s: %v", projectID, err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not delete project: %v", err))
	}

	h.Logger.Infof("Project %s deleted", projectID)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}

// UpdateGallery applies one ordering operation to a project's gallery
// and persists the result.
func (h *ApplicationHandler) UpdateGallery(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid project ID format")
	}

	payload := new(GalleryOpRequest)
	if err := c.BodyParser(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse gallery op JSON: %v", err))
	}
	if err := validate.Struct(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.FormatValidationErrors(err))
	}

	view, err := h.fetchProjectView(projectID)
	if err != nil {
		if errors.Is(err, errProjectNotFound) {
			return utils.RespondWithError(c, fiber.StatusNotFound, fmt.Sprintf("Project with ID %s not found", projectID))
		}
		h.Logger.Errorf("Error fetching project %s: %v", projectID, err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	images := view.GalleryImages
	switch payload.Op {
	case "move":
		if payload.From == nil || payload.To == nil {
			return utils.RespondWithError(c, fiber.StatusBadRequest, "move requires from and to")
		}
		images, err = gallery.Move(images, *payload.From, *payload.To)
	case "remove":
		if payload.Index == nil {
			return utils.RespondWithError(c, fiber.StatusBadRequest, "remove requires index")
		}
		images, err = gallery.RemoveAt(images, *payload.Index)
	case "append":
		if len(payload.URLs) == 0 {
			return utils.RespondWithError(c, fiber.StatusBadRequest, "append requires urls")
		}
		images = gallery.Append(images, payload.URLs...)
	}
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, err.Error())
	}

	_, _, err = h.DB.From("project").
		Update(map[string]interface{}{"gallery_images": images}, "", "").
		Eq("id", projectID.String()).
		Execute()
	if err != nil {
		h.Logger.Errorf("Error persisting gallery for project %s: %v", projectID, err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not update gallery: %v", err))
	}

	view.GalleryImages = images
	return c.Status(fiber.StatusOK).JSON(view)
}

var errProjectNotFound = errors.New("project not found")

// fetchProjectView reads one row from the project_with_genres view.
func (h *ApplicationHandler) fetchProjectView(projectID uuid.UUID) (*models.ProjectView, error) {
	body, _, err := h.DB.From("project_with_genres").
		Select("*", "", false).
		Eq("id", projectID.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("could not retrieve project %s: %w", projectID, err)
	}

	var rows []models.ProjectView
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("could not process project %s: %w", projectID, err)
	}
	if len(rows) == 0 {
		return nil, errProjectNotFound
	}
	return &rows[0], nil
}

// reconcileGenres upserts the given names into the genre table and
// links the resulting ids to the project. With replace set, existing
// join rows are deleted first so the new set fully replaces the old
// one. The delete-then-insert pair is not transactional against
// PostgREST; a racing update can observe an empty set in between.
func (h *ApplicationHandler) reconcileGenres(projectID uuid.UUID, names []string, replace bool) error {
	normalized := normalizeGenreNames(names)

	if replace {
		_, _, err := h.DB.From("project_genre").
			Delete("", "").
			Eq("project_id", projectID.String()).
			Execute()
		if err != nil {
			return fmt.Errorf("could not clear genre links: %w", err)
		}
	}

	if len(normalized) == 0 {
		return nil
	}

	upsertPayload := make([]map[string]string, 0, len(normalized))
	for _, name := range normalized {
		upsertPayload = append(upsertPayload, map[string]string{"name": name})
	}

	body, _, err := h.DB.From("genre").
		Insert(upsertPayload, true, "name", "representation", "").
		Execute()
	if err != nil {
		return fmt.Errorf("could not upsert genres: %w", err)
	}

	var genres []models.Genre
	if err := json.Unmarshal(body, &genres); err != nil {
		return fmt.Errorf("could not process upserted genres: %w", err)
	}

	links := make([]models.ProjectGenre, 0, len(genres))
	for _, g := range genres {
		links = append(links, models.ProjectGenre{ProjectID: projectID, GenreID: g.ID})
	}
	if len(links) == 0 {
		return nil
	}

	_, _, err = h.DB.From("project_genre").
		Insert(links, false, "", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("could not link genres: %w", err)
	}
	return nil
}
