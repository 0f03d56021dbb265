// Package food exposes the image analysis endpoint.
package food

import (
	"io"
	"net/http"
	"strings"

	"nutrilens-api/internal/core/analysis"
	"nutrilens-api/internal/core/vision"
	"nutrilens-api/internal/infrastructure/config"
	"nutrilens-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandleAnalyze receives a photo (multipart field "file"), annotates it via
// Vision and runs the nutrition resolution pipeline. Data-quality issues
// never fail the request; only missing/oversized files and upstream
// transport errors do.
func HandleAnalyze(cfg *config.Config, visionClient *vision.Client, pipeline *analysis.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(common.ErrMissingFile.Status, gin.H{
				"error": common.ErrMissingFile.Message,
				"code":  common.ErrMissingFile.Code,
			})
			return
		}

		if fileHeader.Size > cfg.Upload.MaxAnalyzeBytes {
			c.JSON(common.ErrImageTooLarge.Status, gin.H{
				"error": common.ErrImageTooLarge.Message,
				"code":  common.ErrImageTooLarge.Code,
			})
			return
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			c.JSON(common.ErrInvalidImage.Status, gin.H{
				"error": common.ErrInvalidImage.Message,
				"code":  common.ErrInvalidImage.Code,
			})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			common.LogError("Failed to open uploaded file",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": common.ErrInternalError.Message})
			return
		}
		defer file.Close()

		imageBytes, err := io.ReadAll(file)
		if err != nil {
			common.LogError("Failed to read uploaded file",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": common.ErrInternalError.Message})
			return
		}

		labels, objects, err := visionClient.Annotate(c.Request.Context(), imageBytes)
		if err != nil {
			common.LogError("Vision annotation failed",
				zap.Error(err),
				zap.String("request_id", requestID),
				zap.Int("image_bytes", len(imageBytes)),
			)
			c.JSON(common.ErrVisionFailure.Status, gin.H{
				"error": common.ErrVisionFailure.Message,
				"code":  common.ErrVisionFailure.Code,
			})
			return
		}

		result := pipeline.Analyze(c.Request.Context(), labels, objects)

		common.LogInfo("Image analyzed",
			zap.String("request_id", requestID),
			zap.Int("labels", len(labels)),
			zap.Int("objects", len(objects)),
			zap.Int("items", len(result.Items)),
		)

		c.JSON(http.StatusOK, result)
	}
}
