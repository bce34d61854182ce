package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"devfair/site-api/utils"
)

// UploadResponse carries the public URL and bucket-relative path of an
// uploaded file.
type UploadResponse struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// Upload stores one multipart file in the storage bucket under
// {folder}/{uuid}{ext} and returns its public URL. One file per
// request; a gallery batch is the caller sending this sequentially.
func (h *ApplicationHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "file required")
	}

	folder := strings.Trim(c.FormValue("folder", "misc"), "/")
	if folder == "" || strings.Contains(folder, "..") {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "invalid folder")
	}

	fileHandle, err := file.Open()
	if err != nil {
		h.Logger.Errorf("Error opening uploaded file: %v", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Error opening file: %v", err))
	}
	defer fileHandle.Close()

	objectName := uuid.NewString() + filepath.Ext(file.Filename)
	objectPath := folder + "/" + objectName

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Write straight to the storage object API with the service key.
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", h.Cfg.SupabaseURL, h.Cfg.StorageBucket, objectPath)
	req, err := http.NewRequestWithContext(c.Context(), http.MethodPost, uploadURL, fileHandle)
	if err != nil {
		h.Logger.Errorf("Error building storage request: %v", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Error creating upload request: %v", err))
	}
	req.ContentLength = file.Size
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+h.Cfg.SupabaseServiceKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		h.Logger.Errorf("Error uploading to storage: %v", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Error uploading file: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		h.Logger.Errorf("Storage upload failed with status %d: %s", resp.StatusCode, string(respBody))
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Upload failed with status %d", resp.StatusCode))
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", h.Cfg.SupabaseURL, h.Cfg.StorageBucket, objectPath)
	h.Logger.Infof("Uploaded %s (%d bytes)", objectPath, file.Size)
	return c.Status(fiber.StatusOK).JSON(UploadResponse{URL: publicURL, Path: objectPath})
}
