package meal

import (
	"time"

	"gorm.io/gorm"
)

// Meal types accepted by the API.
const (
	TypeBreakfast = "breakfast"
	TypeLunch     = "lunch"
	TypeSnack     = "snack"
	TypeDinner    = "dinner"
	TypeSupper    = "supper"
	TypeOther     = "other"
)

// Item sources: produced by image analysis or entered by hand.
const (
	SourceVision = "VISION"
	SourceManual = "MANUAL"
)

// Meal is one logged meal with its item snapshot.
type Meal struct {
	gorm.Model
	UserID        uint `gorm:"index;not null"`
	Type          string
	TakenAt       time.Time `gorm:"index"`
	ImagePath     *string
	TotalCalories int
	Items         []MealItem `gorm:"constraint:OnDelete:CASCADE"`
}

// MealItem stores the nutrition snapshot of one item at logging time.
type MealItem struct {
	gorm.Model
	MealID          uint `gorm:"index;not null"`
	Name            string
	Grams           int
	CaloriesPer100g int
	Calories        int
	Confidence      *float64
	Source          string
}
