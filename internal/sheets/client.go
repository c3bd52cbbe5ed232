package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// googleClient implements Client against the Google Sheets and Drive APIs
// with a service account.
type googleClient struct {
	sheets *sheets.Service
	drive  *drive.Service
}

var _ Client = (*googleClient)(nil)

// NewClient creates a Client authenticated from a service account
// credentials file. option.WithCredentialsFile handles token acquisition
// and refresh.
func NewClient(ctx context.Context, credentialsPath string) (Client, error) {
	sheetsService, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &googleClient{sheets: sheetsService, drive: driveService}, nil
}

func (c *googleClient) ListTabs(ctx context.Context, spreadsheetID string) ([]Tab, error) {
	resp, err := c.sheets.Spreadsheets.Get(spreadsheetID).
		Fields("sheets(properties(sheetId,title,index))").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	tabs := make([]Tab, 0, len(resp.Sheets))
	for _, sheet := range resp.Sheets {
		if sheet.Properties == nil {
			continue
		}
		tabs = append(tabs, Tab{
			SheetID: sheet.Properties.SheetId,
			Title:   sheet.Properties.Title,
			Index:   sheet.Properties.Index,
		})
	}
	return tabs, nil
}

func (c *googleClient) ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]interface{}, error) {
	resp, err := c.sheets.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}
	return resp.Values, nil
}

func (c *googleClient) ReadFormulas(ctx context.Context, spreadsheetID, readRange string) ([][]interface{}, error) {
	resp, err := c.sheets.Spreadsheets.Values.Get(spreadsheetID, readRange).
		ValueRenderOption("FORMULA").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read formulas %s: %w", readRange, err)
	}
	return resp.Values, nil
}

func (c *googleClient) UpdateRange(ctx context.Context, spreadsheetID, writeRange string, values [][]interface{}) error {
	_, err := c.sheets.Spreadsheets.Values.Update(spreadsheetID, writeRange, &sheets.ValueRange{
		Values: values,
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update range %s: %w", writeRange, err)
	}
	return nil
}

func (c *googleClient) BatchUpdateValues(ctx context.Context, spreadsheetID string, data map[string][][]interface{}) error {
	ranges := make([]*sheets.ValueRange, 0, len(data))
	for writeRange, values := range data {
		ranges = append(ranges, &sheets.ValueRange{Range: writeRange, Values: values})
	}

	_, err := c.sheets.Spreadsheets.Values.BatchUpdate(spreadsheetID, &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             ranges,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to batch update values: %w", err)
	}
	return nil
}

func (c *googleClient) ClearRange(ctx context.Context, spreadsheetID, clearRange string) error {
	_, err := c.sheets.Spreadsheets.Values.Clear(spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to clear range %s: %w", clearRange, err)
	}
	return nil
}

func (c *googleClient) CopyTab(ctx context.Context, srcSpreadsheetID string, sheetID int64, destSpreadsheetID, newTitle string) (int64, error) {
	copied, err := c.sheets.Spreadsheets.Sheets.CopyTo(srcSpreadsheetID, sheetID, &sheets.CopySheetToAnotherSpreadsheetRequest{
		DestinationSpreadsheetId: destSpreadsheetID,
	}).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to copy tab: %w", err)
	}

	// copyTo names the new tab "Copy of <source>"; rename it in place.
	if err := c.RenameTab(ctx, destSpreadsheetID, copied.SheetId, newTitle); err != nil {
		return 0, err
	}
	return copied.SheetId, nil
}

func (c *googleClient) RenameTab(ctx context.Context, spreadsheetID string, sheetID int64, newTitle string) error {
	_, err := c.sheets.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
				Properties: &sheets.SheetProperties{SheetId: sheetID, Title: newTitle},
				Fields:     "title",
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to rename tab: %w", err)
	}
	return nil
}

func (c *googleClient) DeleteTab(ctx context.Context, spreadsheetID string, sheetID int64) error {
	_, err := c.sheets.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteSheet: &sheets.DeleteSheetRequest{SheetId: sheetID},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to delete tab: %w", err)
	}
	return nil
}

func (c *googleClient) CopySpreadsheet(ctx context.Context, templateID, title, folderID string) (string, error) {
	file := &drive.File{Name: title}
	if folderID != "" {
		file.Parents = []string{folderID}
	}

	copied, err := c.drive.Files.Copy(templateID, file).
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to copy spreadsheet: %w", err)
	}
	return copied.Id, nil
}

// IsNotFound reports whether err is the upstream's way of saying the
// document or range does not exist: an HTTP 404, or the 400 the values API
// returns for a range on a missing tab.
func IsNotFound(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Code == 404 {
		return true
	}
	return apiErr.Code == 400 && strings.Contains(apiErr.Message, "Unable to parse range")
}
