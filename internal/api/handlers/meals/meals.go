// Package meals exposes authenticated meal CRUD endpoints.
package meals

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"nutrilens-api/internal/api/middleware"
	"nutrilens-api/internal/core/meal"
	"nutrilens-api/internal/infrastructure/config"
	"nutrilens-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler serves the meal routes.
type Handler struct {
	meals *meal.Service
	cfg   *config.Config
}

// NewHandler builds the meals handler.
func NewHandler(meals *meal.Service, cfg *config.Config) *Handler {
	return &Handler{meals: meals, cfg: cfg}
}

// HandleCreate logs a meal. Accepts either plain JSON or multipart with an
// optional photo in "file" and the JSON payload in "data".
func (h *Handler) HandleCreate(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": common.ErrUnauthorized.Message})
		return
	}

	var input meal.CreateInput
	imagePath := ""

	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/") {
		data := c.PostForm("data")
		if data == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": `Campo "data" é obrigatório em requisições multipart.`})
			return
		}
		if err := common.ParseJSON(data, &input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": common.ErrInvalidRequest.Message})
			return
		}

		path, err := h.saveMealImage(c)
		if err != nil {
			respondError(c, err, "Meal image upload failed")
			return
		}
		imagePath = path
	} else {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": common.ErrInvalidRequest.Message})
			return
		}
	}

	if len(input.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A refeição precisa de pelo menos um item."})
		return
	}

	created, err := h.meals.Create(userID, input, imagePath)
	if err != nil {
		respondError(c, err, "Meal creation failed")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// HandleList returns the caller's meals for one day (?date=).
func (h *Handler) HandleList(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": common.ErrUnauthorized.Message})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Informe date=YYYY-MM-DD"})
		return
	}

	list, err := h.meals.ListByDay(userID, date)
	if err != nil {
		respondError(c, err, "Meal listing failed")
		return
	}

	c.JSON(http.StatusOK, list)
}

// HandleGet returns one meal by id, enforcing ownership.
func (h *Handler) HandleGet(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": common.ErrUnauthorized.Message})
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": common.ErrInvalidRequest.Message})
		return
	}

	m, err := h.meals.GetByID(userID, id)
	if err != nil {
		respondError(c, err, "Meal lookup failed")
		return
	}

	c.JSON(http.StatusOK, m)
}

// HandleDelete removes one meal, enforcing ownership.
func (h *Handler) HandleDelete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": common.ErrUnauthorized.Message})
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": common.ErrInvalidRequest.Message})
		return
	}

	if err := h.meals.Delete(userID, id); err != nil {
		respondError(c, err, "Meal deletion failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// saveMealImage persists an optional uploaded photo and returns its public
// path. No file at all is fine; a non-image or oversized file is not.
func (h *Handler) saveMealImage(c *gin.Context) (string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", nil // photo is optional
	}

	if fileHeader.Size > h.cfg.Upload.MaxMealBytes {
		return "", common.ErrImageTooLarge
	}

	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		return "", common.ErrInvalidImage
	}

	dir := filepath.Join(h.cfg.Upload.Dir, "meals")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	filename := uuid.New().String() + ext

	if err := c.SaveUploadedFile(fileHeader, filepath.Join(dir, filename)); err != nil {
		return "", err
	}

	return "/uploads/meals/" + filename, nil
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

func respondError(c *gin.Context, err error, logMsg string) {
	var custom *common.CustomError
	if errors.As(err, &custom) {
		c.JSON(custom.Status, gin.H{"error": custom.Message, "code": custom.Code})
		return
	}

	common.LogError(logMsg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": common.ErrInternalError.Message})
}
