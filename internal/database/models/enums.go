package models

// VersionStatus is the free-text lifecycle label shown in the version
// tracker. These are the values the service writes; user-supplied values
// are stored as-is.
type VersionStatus string

const (
	VersionStatusInProgress VersionStatus = "In Progress"
	VersionStatusFinal      VersionStatus = "Final"
	VersionStatusArchived   VersionStatus = "Archived"
)

// ConfigSource records which store a persisted config document came from.
type ConfigSource string

const (
	ConfigSourceSheet    ConfigSource = "sheet"
	ConfigSourceDatabase ConfigSource = "database"
	ConfigSourceDefault  ConfigSource = "default"
)
