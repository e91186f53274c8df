package handlers

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/logistics-go/internal/application"
)

// formFile opens the multipart file part named field. The caller closes the
// returned file.
func formFile(c *gin.Context, field string) (application.FileUpload, multipart.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return application.FileUpload{}, nil, err
	}
	f, err := header.Open()
	if err != nil {
		return application.FileUpload{}, nil, err
	}
	return application.FileUpload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      f,
	}, f, nil
}
