package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/consultation"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
)

// Format is the export file format
type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "xlsx"
)

// Result describes a generated export file
type Result struct {
	FilePath    string    `json:"file_path"`
	Format      Format    `json:"format"`
	RowCount    int       `json:"row_count"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Service generates admin data exports (CSV and Excel)
type Service struct {
	db         *ent.Client
	storageDir string
}

// NewService creates a new export service
func NewService(db *ent.Client, storageDir string) *Service {
	return &Service{
		db:         db,
		storageDir: storageDir,
	}
}

// ExportUsers exports all user accounts to a CSV or Excel file
func (s *Service) ExportUsers(ctx context.Context, format Format) (*Result, error) {
	if err := s.validateFormat(format); err != nil {
		return nil, err
	}

	users, err := s.db.User.Query().
		Order(ent.Asc(user.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	header := []string{
		"ID", "Email", "Name", "Company", "Role", "Status", "Tier",
		"Projects Used", "Monthly Limit", "Total Projects", "Successful Projects",
		"Average Score", "Email Verified", "Created At",
	}

	rows := make([][]interface{}, len(users))
	for i, u := range users {
		rows[i] = []interface{}{
			u.ID,
			u.Email,
			u.Name,
			u.Company,
			string(u.Role),
			string(u.Status),
			string(u.SubmitterTier),
			u.ProjectsUsed,
			u.MonthlyProjectLimit,
			u.TotalProjects,
			u.SuccessfulProjects,
			fmt.Sprintf("%.2f", u.AverageProjectScore),
			u.EmailVerified,
			u.CreatedAt.Format(time.RFC3339),
		}
	}

	return s.write(ctx, "users", format, header, rows)
}

// ExportConsultations exports consultation bookings created since the given
// time. Pass a zero time to export everything.
func (s *Service) ExportConsultations(ctx context.Context, format Format, since time.Time) (*Result, error) {
	if err := s.validateFormat(format); err != nil {
		return nil, err
	}

	query := s.db.Consultation.Query()
	if !since.IsZero() {
		query = query.Where(consultation.CreatedAtGTE(since))
	}

	sessions, err := query.
		Order(ent.Asc(consultation.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query consultations: %w", err)
	}

	header := []string{
		"ID", "User ID", "Service Type", "Duration (min)", "Scheduled At",
		"Price (USD)", "Status", "Paid", "Created At",
	}

	rows := make([][]interface{}, len(sessions))
	for i, c := range sessions {
		rows[i] = []interface{}{
			c.ID,
			c.UserID,
			string(c.ServiceType),
			c.DurationMinutes,
			c.ScheduledAt.Format(time.RFC3339),
			fmt.Sprintf("%.2f", float64(c.PriceCents)/100),
			string(c.Status),
			c.Paid,
			c.CreatedAt.Format(time.RFC3339),
		}
	}

	return s.write(ctx, "consultations", format, header, rows)
}

func (s *Service) validateFormat(format Format) error {
	switch format {
	case FormatCSV, FormatExcel:
		return nil
	default:
		return domain.NewValidationError(fmt.Sprintf("unsupported export format: %s", format))
	}
}

func (s *Service) write(ctx context.Context, name string, format Format, header []string, rows [][]interface{}) (*Result, error) {
	if err := os.MkdirAll(s.storageDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	now := time.Now()
	filename := fmt.Sprintf("%s-%s.%s", name, now.Format("20060102-150405"), format)
	path := filepath.Join(s.storageDir, filename)

	var err error
	switch format {
	case FormatCSV:
		err = s.generateCSV(path, header, rows)
	case FormatExcel:
		err = s.generateExcel(path, name, header, rows)
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		FilePath:    path,
		Format:      format,
		RowCount:    len(rows),
		GeneratedAt: now,
	}, nil
}

// generateCSV writes rows to a CSV file
func (s *Service) generateCSV(path string, header []string, rows [][]interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = stringify(v)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return nil
}

// generateExcel writes rows to an Excel workbook
func (s *Service) generateExcel(path, sheetName string, header []string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell: %w", err)
		}
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range rows {
		for colIdx, v := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to resolve cell: %w", err)
			}
			f.SetCellValue(sheetName, cell, v)
		}
	}

	for i := range header {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to resolve column: %w", err)
		}
		f.SetColWidth(sheetName, col, col, 18)
	}

	f.SetActiveSheet(index)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	return nil
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
