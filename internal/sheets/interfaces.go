package sheets

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_sheets.go -package=mocks

// Tab describes one sheet inside a spreadsheet.
type Tab struct {
	SheetID int64
	Title   string
	Index   int64
}

// Client is the document-service surface the takeoff engine depends on. All
// calls honor the context deadline; failures other than missing documents
// and ranges come back as plain errors for the caller to wrap.
type Client interface {
	// ListTabs returns the tabs of a spreadsheet in sheet order.
	ListTabs(ctx context.Context, spreadsheetID string) ([]Tab, error)

	// ReadRange reads rendered cell values from an A1 range. Missing
	// trailing cells are absent, not empty strings.
	ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]interface{}, error)

	// ReadFormulas reads the same range with formulas unrendered, so
	// =SUM(...) cells come back as formula text.
	ReadFormulas(ctx context.Context, spreadsheetID, readRange string) ([][]interface{}, error)

	// UpdateRange writes values into an A1 range. Formula strings are
	// interpreted, not stored as text.
	UpdateRange(ctx context.Context, spreadsheetID, writeRange string, values [][]interface{}) error

	// BatchUpdateValues writes several disjoint ranges in one atomic call.
	BatchUpdateValues(ctx context.Context, spreadsheetID string, data map[string][][]interface{}) error

	// ClearRange blanks all cells in an A1 range.
	ClearRange(ctx context.Context, spreadsheetID, clearRange string) error

	// CopyTab copies a tab into destSpreadsheetID under a new title and
	// returns the new tab's sheet id. Source and destination may be the
	// same spreadsheet (version duplication) or differ (template import).
	CopyTab(ctx context.Context, srcSpreadsheetID string, sheetID int64, destSpreadsheetID, newTitle string) (int64, error)

	// RenameTab retitles an existing tab.
	RenameTab(ctx context.Context, spreadsheetID string, sheetID int64, newTitle string) error

	// DeleteTab removes a tab from the spreadsheet.
	DeleteTab(ctx context.Context, spreadsheetID string, sheetID int64) error

	// CopySpreadsheet clones a whole spreadsheet (the workbook template)
	// into the given folder and returns the new spreadsheet id.
	CopySpreadsheet(ctx context.Context, templateID, title, folderID string) (string, error)
}
