package mockserver

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONStringArray stores a string slice as a JSON text column.
type JSONStringArray []string

// Value implements the driver.Valuer interface
func (a JSONStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (a *JSONStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}

	return json.Unmarshal(bytes, a)
}

// User is a registered account.
type User struct {
	ID           string `gorm:"primaryKey"`
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
}

// Recipe is a catalog entry. The image column holds either a URL or an
// inline data URI.
type Recipe struct {
	ID          string          `gorm:"primaryKey"`
	Name        string          `gorm:"size:255;not null"`
	Category    string          `gorm:"size:50;not null;index"`
	Ingredients JSONStringArray `gorm:"type:text;not null"`
	Steps       JSONStringArray `gorm:"type:text;not null"`
	CookingTime string          `gorm:"size:100"`
	Difficulty  string          `gorm:"size:20"`
	Image       string          `gorm:"type:text"`
	CreatedBy   string          `gorm:"size:64;index"`
	CreatedAt   time.Time
}

// Favorite is an existence-only relation between a user and a recipe.
type Favorite struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"size:64;not null;index"`
	RecipeID  string `gorm:"size:64;not null;index"`
	CreatedAt time.Time
}
