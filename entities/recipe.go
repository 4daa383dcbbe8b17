package entities

import (
	"time"
)

type Recipe struct {
	ID                 int       `gorm:"primaryKey" json:"id"`
	Title              string    `gorm:"not null" json:"title"`
	CookingTimeMinutes int       `json:"cooking_time_minutes"`
	Servings           float64   `json:"servings"`
	ImageURL           string    `json:"image_url,omitempty"`
	Rating             float64   `json:"rating"`
	SourceURL          string    `json:"source_url,omitempty"`
	Notes              string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt          time.Time `gorm:"type:timestamp" json:"created_at"`
}

type Instruction struct {
	ID              int    `gorm:"primaryKey" json:"id"`
	RecipeID        int    `gorm:"not null;index" json:"recipe_id"`
	StepNumber      int    `json:"step_number"`
	InstructionText string `gorm:"type:text" json:"instruction_text"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

// Ingredient is the shared vocabulary table: one row per lowercase name,
// reused across every recipe that references it.
type Ingredient struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type RecipeIngredient struct {
	ID           int     `gorm:"primaryKey" json:"id"`
	RecipeID     int     `gorm:"not null;index" json:"recipe_id"`
	IngredientID int     `gorm:"not null" json:"ingredient_id"`
	Amount       float64 `json:"amount"`
	Unit         string  `json:"unit"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"-"`
}

// Tag is a vocabulary table with the same reuse semantics as Ingredient.
type Tag struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type RecipeTag struct {
	ID       int `gorm:"primaryKey" json:"id"`
	RecipeID int `gorm:"not null;index" json:"recipe_id"`
	TagID    int `gorm:"not null" json:"tag_id"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Tag    *Tag    `gorm:"foreignKey:TagID" json:"-"`
}

// RosterEntry marks a recipe as part of the active meal plan. Membership is
// the presence of a row, never a column on the recipe itself.
type RosterEntry struct {
	RecipeID int `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RosterEntry) TableName() string {
	return "roster"
}
