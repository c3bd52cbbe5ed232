package main

import (
	"estimating-portal-backend/internal/config"
	"estimating-portal-backend/internal/database"
	"estimating-portal-backend/internal/database/models"
	"estimating-portal-backend/internal/repository"
	"estimating-portal-backend/internal/takeoff"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type LibraryItemData struct {
	ScopeCode       string  `yaml:"scope_code"`
	Section         string  `yaml:"section"`
	ScopeName       string  `yaml:"scope_name"`
	DefaultUnitCost float64 `yaml:"default_unit_cost"`
	UOM             string  `yaml:"uom"`
	SortOrder       int     `yaml:"sort_order"`
	HasRValue       bool    `yaml:"has_r_value,omitempty"`
	HasThickness    bool    `yaml:"has_thickness,omitempty"`
	HasMaterialType bool    `yaml:"has_material_type,omitempty"`
	Notes           string  `yaml:"notes,omitempty"`
}

type ProjectData struct {
	ProjectID     string `yaml:"project_id"`
	Name          string `yaml:"name"`
	GCName        string `yaml:"gc_name,omitempty"`
	SpreadsheetID string `yaml:"spreadsheet_id,omitempty"`
}

// File structures
type LibraryItemsFile struct {
	Items []LibraryItemData `yaml:"items"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

func main() {
	log.Println("🚀 Loading initial data...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel:    logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	items, err := loadLibraryItems(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load library items: %w", err)
	}

	// With no YAML catalog the compiled-in template is authoritative
	fromTemplate := false
	if len(items) == 0 {
		fromTemplate = true
		for _, entry := range takeoff.FallbackTemplate() {
			row := models.LibraryItemFromCatalog(entry)
			items = append(items, row)
		}
	}

	libraryRepo := repository.NewLibraryItemRepository(db)
	if err := libraryRepo.UpsertAll(items); err != nil {
		return fmt.Errorf("failed to upsert library items: %w", err)
	}
	if fromTemplate {
		log.Printf("📋 Library items: %d seeded from compiled-in template", len(items))
	} else {
		log.Printf("📋 Library items: %d seeded from YAML", len(items))
	}

	projects, err := loadProjects(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	projectCreated := 0
	for _, projectData := range projects {
		created, err := createProject(db, projectData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create project %s: %v", projectData.ProjectID, err)
			continue // Continue with other projects
		}
		if created {
			projectCreated++
		}
	}
	log.Printf("📋 Projects: %d created, %d total", projectCreated, len(projects))

	return nil
}

func loadLibraryItems(dataDir string) ([]models.LibraryItem, error) {
	var allItems []models.LibraryItem

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "library") {
			var file LibraryItemsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			for _, itemData := range file.Items {
				allItems = append(allItems, models.LibraryItem{
					ScopeCode:       itemData.ScopeCode,
					Section:         itemData.Section,
					ScopeName:       itemData.ScopeName,
					DefaultUnitCost: itemData.DefaultUnitCost,
					UOM:             itemData.UOM,
					SortOrder:       itemData.SortOrder,
					HasRValue:       itemData.HasRValue,
					HasThickness:    itemData.HasThickness,
					HasMaterialType: itemData.HasMaterialType,
					Notes:           itemData.Notes,
				})
			}
		}
		return nil
	})

	// A missing data directory means seed from the template only
	if err != nil && os.IsNotExist(err) {
		return nil, nil
	}

	return allItems, err
}

func loadProjects(dataDir string) ([]ProjectData, error) {
	var allProjects []ProjectData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "projects") {
			var file ProjectsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allProjects = append(allProjects, file.Projects...)
		}
		return nil
	})

	if err != nil && os.IsNotExist(err) {
		return nil, nil
	}

	return allProjects, err
}

func createProject(db *gorm.DB, projectData ProjectData) (bool, error) {
	if projectData.ProjectID == "" {
		return false, fmt.Errorf("project entry has no project_id")
	}

	var project models.Project
	if err := db.Where("project_id = ?", projectData.ProjectID).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			project = models.Project{
				ProjectID:     projectData.ProjectID,
				Name:          projectData.Name,
				GCName:        projectData.GCName,
				SpreadsheetID: projectData.SpreadsheetID,
			}

			if err := db.Create(&project).Error; err != nil {
				return false, fmt.Errorf("failed to create project: %w", err)
			}
			return true, nil // created = true
		}
		return false, fmt.Errorf("failed to query project: %w", err)
	}

	return false, nil // created = false (existing)
}
