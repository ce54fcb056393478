package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskdesk/lib/storage"
	"github.com/taskdesk/services"
	"github.com/taskdesk/utils"
)

var fileService = services.NewFileService()

// UploadFile stores an attachment for a project or task. The payload is
// multipart form data with a "file" part plus optional projectId, taskId and
// description fields.
func UploadFile(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "No file provided",
			"error":   err.Error(),
		})
		return
	}

	var projectID, taskID, description *string
	if v := c.PostForm("projectId"); v != "" {
		projectID = &v
	}
	if v := c.PostForm("taskId"); v != "" {
		taskID = &v
	}
	if v := c.PostForm("description"); v != "" {
		description = &v
	}

	file, err := fileService.Upload(actor, header, projectID, taskID, description)
	if err != nil {
		fail(c, err, "Failed to upload file")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "File uploaded successfully",
		"data":    file,
	})
}

// DownloadFile streams a stored attachment back to the client under its
// original filename.
func DownloadFile(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	file, err := fileService.GetForDownload(actor, c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to retrieve file")
		return
	}

	reader, err := storage.Open(file.FilePath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "File content is missing from storage",
			"error":   err.Error(),
		})
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, file.FileSize, file.MimeType, reader, map[string]string{
		"Content-Disposition": utils.ContentDisposition(file.OriginalName),
	})
}

// DeleteFile removes an attachment
func DeleteFile(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if err := fileService.Delete(actor, c.Param("id")); err != nil {
		fail(c, err, "Failed to delete file")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "File deleted successfully",
	})
}
