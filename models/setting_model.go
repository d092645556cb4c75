package models

import "time"

// Setting is a server-side key/value flag. The web client used to keep
// these in local storage; sharing them across admin sessions requires a
// table instead.
type Setting struct {
	Key   string `gorm:"primary_key;size:64" json:"key"`
	Value string `gorm:"size:255" json:"value"`

	UpdatedAt time.Time `json:"-"`
}

const (
	SettingSampleDataInitialized = "sample_data_initialized"
	SettingSampleDataDisabled    = "sample_data_disabled"
)
