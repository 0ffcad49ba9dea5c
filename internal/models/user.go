package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// CropList is stored as a JSON array column
type CropList []string

func (c CropList) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(c))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (c *CropList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	case nil:
		*c = CropList{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into CropList", src)
	}
	var crops []string
	if err := json.Unmarshal(data, &crops); err != nil {
		return fmt.Errorf("failed to decode primary_crops: %w", err)
	}
	*c = crops
	return nil
}

// User is a farmer profile. ID is assigned at creation and never changes.
type User struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Phone        string    `json:"phone,omitempty" db:"phone"`
	Language     string    `json:"language" db:"language"`
	Location     string    `json:"location,omitempty" db:"location"`
	FarmSize     *float64  `json:"farm_size,omitempty" db:"farm_size"`
	PrimaryCrops CropList  `json:"primary_crops" db:"primary_crops"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type UserCreate struct {
	Name         string   `json:"name" binding:"required"`
	Phone        string   `json:"phone,omitempty"`
	Language     string   `json:"language,omitempty"`
	Location     string   `json:"location,omitempty"`
	FarmSize     *float64 `json:"farm_size,omitempty"`
	PrimaryCrops []string `json:"primary_crops,omitempty"`
}

type UserUpdate struct {
	Name         *string   `json:"name,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Language     *string   `json:"language,omitempty"`
	Location     *string   `json:"location,omitempty"`
	FarmSize     *float64  `json:"farm_size,omitempty"`
	PrimaryCrops *[]string `json:"primary_crops,omitempty"`
}

// Apply mutates u with the non-nil fields of upd. The ID is never touched.
func (upd UserUpdate) Apply(u *User, now time.Time) {
	if upd.Name != nil {
		u.Name = strings.TrimSpace(*upd.Name)
	}
	setString(&u.Phone, upd.Phone)
	setString(&u.Language, upd.Language)
	setString(&u.Location, upd.Location)
	if upd.FarmSize != nil {
		size := *upd.FarmSize
		u.FarmSize = &size
	}
	if upd.PrimaryCrops != nil {
		u.PrimaryCrops = append(CropList{}, (*upd.PrimaryCrops)...)
	}
	u.UpdatedAt = now
}
