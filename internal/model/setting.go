package model

import "time"

// SiteSetting is a key-value configuration row (site title, contact phone,
// social links).  Writes upsert by ConfigKey.
type SiteSetting struct {
	ID          uint64    `json:"id"`
	ConfigKey   string    `json:"config_key"`
	ConfigValue string    `json:"config_value"`
	UpdatedAt   time.Time `json:"updated_at"`
}
