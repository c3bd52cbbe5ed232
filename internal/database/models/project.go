package models

// Project links a dashboard project to its takeoff workbook. ProjectID is
// the external dashboard identifier, not the row's UUID.
type Project struct {
	BaseModel
	ProjectID     string `json:"project_id" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	Name          string `json:"name" gorm:"size:250;not null" validate:"required,max=250"`
	GCName        string `json:"gc_name" gorm:"size:250"`
	SpreadsheetID string `json:"spreadsheet_id" gorm:"size:100;index"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
