package handler

import (
	"errors"
	"fmt"
	"net/http"

	"foodpool-be/internal/storage"
	"foodpool-be/internal/utils"
)

const (
	uploadField = "file"
	// multipart framing on top of the image itself
	uploadOverhead = 1 << 20
)

type uploadResponse struct {
	URL string `json:"url"`
}

// UploadImage accepts a multipart form with the image in the "file" field.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, storage.MaxImageBytes+uploadOverhead)

	file, _, err := r.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			fail(w, r, storage.ErrImageTooLarge, "")
			return
		}
		fail(w, r, fmt.Errorf("%w: %s is required", ErrBadRequest, uploadField), "")
		return
	}
	defer file.Close()

	url, err := h.Images.Upload(r.Context(), file)
	if err != nil {
		fail(w, r, err, "")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, uploadResponse{URL: url})
}
