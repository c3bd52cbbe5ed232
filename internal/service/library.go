package service

import (
	"context"

	"estimating-portal-backend/internal/logger"
	"estimating-portal-backend/internal/repository"
	"estimating-portal-backend/internal/takeoff"
)

// LibraryService serves the takeoff item catalog. The relational catalog is
// preferred; when it is empty or unreachable the compiled-in template keeps
// the selector working.
type LibraryService struct {
	libraryRepo repository.LibraryItemRepositoryInterface
	logger      *logger.Logger
}

// Ensure LibraryService implements LibraryServiceInterface
var _ LibraryServiceInterface = (*LibraryService)(nil)

// NewLibraryService creates a new LibraryService
func NewLibraryService(libraryRepo repository.LibraryItemRepositoryInterface) *LibraryService {
	return &LibraryService{
		libraryRepo: libraryRepo,
		logger:      logger.New().WithField("service", "library"),
	}
}

// LibraryResponse is the catalog payload served to the item selector
type LibraryResponse struct {
	Items          []takeoff.CatalogItem            `json:"items"`
	Sections       map[string][]takeoff.CatalogItem `json:"sections"`
	VariantOptions takeoff.VariantOptions           `json:"variant_options"`
	TotalItems     int                              `json:"total_items"`
	Source         string                           `json:"source"`
}

// GetLibrary returns the full catalog grouped by section, with the variant
// attribute lists the UI offers.
func (s *LibraryService) GetLibrary(ctx context.Context) (*LibraryResponse, error) {
	items, source := s.catalogWithSource(ctx)
	return &LibraryResponse{
		Items:          items,
		Sections:       takeoff.GroupBySection(items),
		VariantOptions: takeoff.DefaultVariantOptions(),
		TotalItems:     len(items),
		Source:         source,
	}, nil
}

// GetCatalog returns the raw catalog items, used by grid generation.
func (s *LibraryService) GetCatalog(ctx context.Context) ([]takeoff.CatalogItem, error) {
	items, _ := s.catalogWithSource(ctx)
	return items, nil
}

func (s *LibraryService) catalogWithSource(ctx context.Context) ([]takeoff.CatalogItem, string) {
	rows, err := s.libraryRepo.GetAll()
	if err != nil {
		s.logger.WithField("error", err.Error()).Warn("catalog read failed, serving compiled-in template")
		return takeoff.FallbackTemplate(), "fallback"
	}
	if len(rows) == 0 {
		s.logger.Debug("catalog table empty, serving compiled-in template")
		return takeoff.FallbackTemplate(), "fallback"
	}

	items := make([]takeoff.CatalogItem, len(rows))
	for i := range rows {
		items[i] = rows[i].ToCatalogItem()
	}
	return items, "database"
}

