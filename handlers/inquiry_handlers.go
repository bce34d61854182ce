package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"devfair/site-api/models"
	"devfair/site-api/utils"
)

// CreateInquiryRequest is the public contact-form payload.
type CreateInquiryRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone,omitempty"`
	Title   string  `json:"title" validate:"required"`
	Content string  `json:"content" validate:"required"`
}

// UpdateInquiryRequest is the admin partial-update payload. IsChecked
// is an idempotent set, not a toggle, so retries are safe.
type UpdateInquiryRequest struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty"`
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	IsChecked *bool   `json:"is_checked,omitempty"`
}

// CreateInquiry godoc
// @Summary Submit an inquiry
// @Description Stores a public contact-form submission.
// @Tags inquiries
// @Accept json
// @Produce json
// @Param inquiry body CreateInquiryRequest true "Inquiry to submit"
// @Success 201 {object} models.Inquiry
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inquiry [post]
func (h *ApplicationHandler) CreateInquiry(c *fiber.Ctx) error {
	payload := new(CreateInquiryRequest)
	if err := c.BodyParser(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse inquiry JSON: %v", err))
	}
	if err := validate.Struct(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.FormatValidationErrors(err))
	}

	insertData := map[string]interface{}{
		"name":    payload.Name,
		"email":   payload.Email,
		"title":   payload.Title,
		"content": payload.Content,
	}
	if payload.Phone != nil {
		insertData["phone"] = *payload.Phone
	}

	body, _, err := h.DB.From("inquiry").
		Insert(insertData, false, "", "representation", "").
		Execute()
	if err != nil {
		h.Logger.Errorf("Error inserting inquiry: %v", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not create inquiry: %v", err))
	}

	var created []models.Inquiry
	if err := json.Unmarshal(body, &created); err != nil || len(created) == 0 {
		h.Logger.Errorf("Error unmarshalling created inquiry: %v, body: %s", err, string(body))
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Failed to confirm inquiry creation")
	}

	return c.Status(fiber.StatusCreated).JSON(created[0])
}

// ListInquiries returns the admin inquiry list, newest first, with an
// optional checked filter: "true" and "false" narrow the list, any
// other value leaves it unfiltered.
func (h *ApplicationHandler) ListInquiries(c *fiber.Ctx) error {
	page, pageSize, from, to := paginate(c.QueryInt("page", 1), c.QueryInt("pageSize", inquiryPageSize), inquiryPageSize)

	query := h.DB.From("inquiry").Select("*", "exact", false)
	switch c.Query("checked") {
	case "true":
		query = query.Eq("is_checked", "true")
	case "false":
		query = query.Eq("is_checked", "false")
	}

	body, total, err := query.
		Order("created_at", &descOrder).
		Order("id", &descOrder).
		Range(from, to, "").
		Execute()
	if err != nil {
		h.Logger.Errorf("Error fetching inquiries: %v", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not retrieve inquiries: %v", err))
	}

	items := []models.Inquiry{}
	if err := json.Unmarshal(body, &items); err != nil {
		h.Logger.Errorf("Error unmarshalling inquiry list: %v", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not process inquiry data")
	}

	return c.Status(fiber.StatusOK).JSON(ListResponse{Items: items, Page: page, PageSize: pageSize, Total: total})
}

// UpdateInquiry applies a partial update to an inquiry.
func (h *ApplicationHandler) UpdateInquiry(c *fiber.Ctx) error {
	inquiryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid inquiry ID format")
	}

	payload := new(UpdateInquiryRequest)
	if err := c.BodyParser(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse inquiry JSON: %v", err))
	}
	if err := validate.Struct(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, utils.FormatValidationErrors(err))
	}

	updateData := map[string]interface{}{}
	if payload.Name != nil {
		updateData["name"] = *payload.Name
	}
	if payload.Email != nil {
		updateData["email"] = *payload.Email
	}
	if payload.Phone != nil {
		updateData["phone"] = *payload.Phone
	}
	if payload.Title != nil {
		updateData["title"] = *payload.Title
	}
	if payload.Content != nil {
		updateData["content"] = *payload.Content
	}
	if payload.IsChecked != nil {
		updateData["is_checked"] = *payload.IsChecked
	}
	if len(updateData) == 0 {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "No updatable fields provided")
	}

	body, _, err := h.DB.From("inquiry").
		Update(updateData, "representation", "").
		Eq("id", inquiryID.String()).
		Execute()
	if err != nil {
		h.Logger.Errorf("Error updating inquiry %s: %v", inquiryID, err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not update inquiry: %v", err))
	}

	var updated []models.Inquiry
	if err := json.Unmarshal(body, &updated); err != nil {
		h.Logger.Errorf("Error unmarshalling updated inquiry %s: %v", inquiryID, err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not process inquiry update response")
	}
	if len(updated) == 0 {
		return utils.RespondWithError(c, fiber.StatusNotFound, fmt.Sprintf("Inquiry with ID %s not found", inquiryID))
	}

	return c.Status(fiber.StatusOK).JSON(updated[0])
}

// DeleteInquiry removes an inquiry.
func (h *ApplicationHandler) DeleteInquiry(c *fiber.Ctx) error {
	inquiryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid inquiry ID format")
	}

	_, _, err = h.DB.From("inquiry").
		Delete("", "").
		Eq("id", inquiryID.String()).
		Execute()
	if err != nil {
		h.Logger.Errorf("Error deleting inquiry %s: %v", inquiryID, err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not delete inquiry: %v", err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}
