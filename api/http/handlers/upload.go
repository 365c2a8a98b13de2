package handlers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yohanpasi/storefront/api/http/presenter"
	"github.com/yohanpasi/storefront/pkg/media"
)

// maxImageBytes caps a single image upload.
const maxImageBytes = 5 << 20

type UploadHandler struct {
	uploader media.Uploader
}

func NewUploadHandler(uploader media.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Image accepts a multipart image and proxies it to the media host.
// @Summary Upload product image
// @Tags    products
// @Accept  multipart/form-data
// @Produce json
// @Param   my_file formData file true "image file"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /admin/product/upload-image [post]
func (h *UploadHandler) Image(c *fiber.Ctx) error {
	fh, err := c.FormFile("my_file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "No file received")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, maxImageBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return presenter.Error(c, http.StatusBadRequest, "only image files are allowed")
	}

	url, err := h.uploader.Upload(c.Context(), data, contentType)
	if err != nil {
		log.Printf("image upload: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "Error occurred during image upload")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"url":     url,
	})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
