package entities

import (
	"time"
)

type UserImage struct {
	ID         uint      `gorm:"column:image_id;primaryKey" json:"image_id"`
	RecipeID   uint      `gorm:"column:recipe_id;not null" json:"recipe_id"`
	ImageURL   string    `gorm:"column:image_url;not null" json:"image_url"`
	UploadTime time.Time `gorm:"column:upload_time;autoCreateTime" json:"upload_time"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}
