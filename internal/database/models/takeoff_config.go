package models

import "encoding/json"

// TakeoffConfig is the relational copy of a project's configuration
// document. The sheet copy is authoritative; this row backs the fallback
// read path and survives document-service outages.
type TakeoffConfig struct {
	BaseModel
	ProjectID string          `json:"project_id" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	Document  json.RawMessage `json:"document" gorm:"type:jsonb;not null"`
	Source    ConfigSource    `json:"source" gorm:"type:varchar(20);default:'database'"`
}

// TableName returns the table name for TakeoffConfig
func (TakeoffConfig) TableName() string {
	return "takeoff_configs"
}
