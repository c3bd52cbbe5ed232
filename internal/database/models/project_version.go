package models

import (
	"encoding/json"
	"time"
)

// ProjectVersion is the relational audit record of one generated version
// tab. The Setup-tab tracker is authoritative; rows here are synced
// best-effort after each tracker mutation and also hold the grid snapshot
// written when the document service was unreachable at generation time.
type ProjectVersion struct {
	BaseModel
	ProjectID      string          `json:"project_id" gorm:"size:100;not null;index:idx_project_versions_name,unique" validate:"required,max=100"`
	SheetName      string          `json:"sheet_name" gorm:"size:100;not null;index:idx_project_versions_name,unique" validate:"required,max=100"`
	SheetID        int64           `json:"sheet_id" gorm:"default:0"`
	Active         bool            `json:"active" gorm:"default:false"`
	Status         VersionStatus   `json:"status" gorm:"type:varchar(50);default:'In Progress'"`
	ItemsCount     int             `json:"items_count" gorm:"default:0"`
	LocationsCount int             `json:"locations_count" gorm:"default:0"`
	CopiedFrom     string          `json:"copied_from,omitempty" gorm:"size:100" validate:"max=100"`
	GeneratedAt    *time.Time      `json:"generated_at"`
	Grid           json.RawMessage `json:"grid,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for ProjectVersion
func (ProjectVersion) TableName() string {
	return "project_versions"
}
