// Package meal implements meal logging and retrieval.
package meal

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"nutrilens-api/internal/pkg/common"

	"gorm.io/gorm"
)

var validTypes = map[string]struct{}{
	TypeBreakfast: {},
	TypeLunch:     {},
	TypeSnack:     {},
	TypeDinner:    {},
	TypeSupper:    {},
	TypeOther:     {},
}

var validSources = map[string]struct{}{
	SourceVision: {},
	SourceManual: {},
}

var (
	isoDatePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	brDatePattern  = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
)

// ItemInput is one meal item as submitted by the client.
type ItemInput struct {
	Name            string   `json:"name" binding:"required"`
	Grams           int      `json:"grams" binding:"required,min=1"`
	CaloriesPer100g int      `json:"caloriesPer100g" binding:"min=0"`
	Confidence      *float64 `json:"confidence"`
	Source          string   `json:"source" binding:"required"`
}

// CreateInput is the meal creation payload.
type CreateInput struct {
	Type    string      `json:"type" binding:"required"`
	TakenAt string      `json:"takenAt"`
	Items   []ItemInput `json:"items" binding:"required,dive"`
}

// Service implements meal CRUD against the database.
type Service struct {
	db *gorm.DB
}

// NewService builds the meal service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// calcItemCalories converts a per-100g value to the portion actually eaten.
func calcItemCalories(calPer100g, grams int) int {
	return int(math.Round(float64(calPer100g) * float64(grams) / 100))
}

// Create validates and persists a meal with its items. imagePath may be
// empty when the meal was logged without a photo.
func (s *Service) Create(userID uint, in CreateInput, imagePath string) (*Meal, error) {
	if _, ok := validTypes[in.Type]; !ok {
		return nil, common.NewError(common.ErrCodeInvalidRequest,
			fmt.Sprintf("Tipo de refeição inválido: %q.", in.Type), 400, nil)
	}

	takenAt := time.Now()
	if in.TakenAt != "" {
		parsed, err := time.Parse(time.RFC3339, in.TakenAt)
		if err != nil {
			return nil, common.NewError(common.ErrCodeInvalidRequest,
				`Campo "takenAt" inválido. Use o formato RFC 3339.`, 400, err)
		}
		takenAt = parsed
	}

	items := make([]MealItem, 0, len(in.Items))
	total := 0
	for _, it := range in.Items {
		if _, ok := validSources[it.Source]; !ok {
			return nil, common.NewError(common.ErrCodeInvalidRequest,
				fmt.Sprintf("Origem de item inválida: %q.", it.Source), 400, nil)
		}
		calories := calcItemCalories(it.CaloriesPer100g, it.Grams)
		total += calories
		items = append(items, MealItem{
			Name:            it.Name,
			Grams:           it.Grams,
			CaloriesPer100g: it.CaloriesPer100g,
			Calories:        calories,
			Confidence:      it.Confidence,
			Source:          it.Source,
		})
	}

	m := Meal{
		UserID:        userID,
		Type:          in.Type,
		TakenAt:       takenAt,
		TotalCalories: total,
		Items:         items,
	}
	if imagePath != "" {
		m.ImagePath = &imagePath
	}

	if err := s.db.Create(&m).Error; err != nil {
		return nil, fmt.Errorf("failed to create meal: %w", err)
	}

	return &m, nil
}

// ListByDay returns the user's meals for one calendar day, newest first.
func (s *Service) ListByDay(userID uint, date string) ([]Meal, error) {
	start, end, err := parseDayRange(date)
	if err != nil {
		return nil, err
	}

	var meals []Meal
	err = s.db.
		Preload("Items").
		Where("user_id = ? AND taken_at BETWEEN ? AND ?", userID, start, end).
		Order("taken_at DESC").
		Find(&meals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}

	return meals, nil
}

// GetByID returns one meal, enforcing ownership.
func (s *Service) GetByID(userID, id uint) (*Meal, error) {
	var m Meal
	if err := s.db.Preload("Items").First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrMealNotFound
		}
		return nil, fmt.Errorf("failed to load meal: %w", err)
	}

	if m.UserID != userID {
		return nil, common.ErrForbidden
	}

	return &m, nil
}

// Delete removes one meal, enforcing ownership.
func (s *Service) Delete(userID, id uint) error {
	var m Meal
	if err := s.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrMealNotFound
		}
		return fmt.Errorf("failed to load meal: %w", err)
	}

	if m.UserID != userID {
		return common.ErrForbidden
	}

	if err := s.db.Select("Items").Delete(&m).Error; err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}

	return nil
}

// parseDayRange accepts "YYYY-MM-DD" or "DD/MM/YYYY" and returns the local
// start and end of that day.
func parseDayRange(date string) (time.Time, time.Time, error) {
	trimmed := strings.TrimSpace(date)

	var year, month, day int
	if m := isoDatePattern.FindStringSubmatch(trimmed); m != nil {
		year, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		day, _ = strconv.Atoi(m[3])
	} else if m := brDatePattern.FindStringSubmatch(trimmed); m != nil {
		day, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
	} else {
		return time.Time{}, time.Time{}, common.NewError(common.ErrCodeInvalidRequest,
			`Parâmetro "date" inválido. Use "YYYY-MM-DD" (ex: 2025-12-18) ou "DD/MM/YYYY" (ex: 18/12/2025).`,
			400, nil)
	}

	start := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	end := time.Date(year, time.Month(month), day, 23, 59, 59, 999_000_000, time.Local)
	return start, end, nil
}
