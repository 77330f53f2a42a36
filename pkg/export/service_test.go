package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/enttest"
	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })

	svc := NewService(client, t.TempDir())
	return svc, client
}

func seedUser(t *testing.T, client *ent.Client, email string) *ent.User {
	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("x").
		SetName("Test User").
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func TestExportUsersCSV(t *testing.T) {
	svc, client := setupTestService(t)
	ctx := context.Background()

	seedUser(t, client, "a@example.com")
	seedUser(t, client, "b@example.com")

	result, err := svc.ExportUsers(ctx, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, 2, result.RowCount)
	assert.Equal(t, FormatCSV, result.Format)

	file, err := os.Open(result.FilePath)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows
	assert.Equal(t, "Email", records[0][1])
	assert.Equal(t, "a@example.com", records[1][1])
	assert.Equal(t, "basic", records[1][6])
}

func TestExportUsersExcel(t *testing.T) {
	svc, client := setupTestService(t)
	ctx := context.Background()

	seedUser(t, client, "a@example.com")

	result, err := svc.ExportUsers(ctx, FormatExcel)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RowCount)

	info, err := os.Stat(result.FilePath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportConsultationsSince(t *testing.T) {
	svc, client := setupTestService(t)
	ctx := context.Background()

	u := seedUser(t, client, "a@example.com")
	now := time.Now()

	_, err := client.Consultation.Create().
		SetUserID(u.ID).
		SetServiceType("advisory").
		SetDurationMinutes(60).
		SetScheduledAt(now.Add(48 * time.Hour)).
		SetPriceCents(30000).
		SetCreatedAt(now.Add(-30 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Consultation.Create().
		SetUserID(u.ID).
		SetServiceType("due_diligence").
		SetDurationMinutes(45).
		SetScheduledAt(now.Add(72 * time.Hour)).
		SetPriceCents(30000).
		Save(ctx)
	require.NoError(t, err)

	result, err := svc.ExportConsultations(ctx, FormatCSV, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, result.RowCount)

	all, err := svc.ExportConsultations(ctx, FormatCSV, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.RowCount)
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.ExportUsers(context.Background(), Format("pdf"))
	assert.True(t, domain.IsValidation(err))
}
