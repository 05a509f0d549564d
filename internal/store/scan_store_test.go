package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishimitra/krishimitra/internal/domain"
)

func testReport() *domain.DiseaseReport {
	return &domain.DiseaseReport{
		DiseaseName: "Leaf Rust",
		Confidence:  81.0,
		CropType:    "Wheat",
		Severity:    domain.SeverityHigh,
		Symptoms:    []string{"Orange pustules on leaves"},
		Treatment: domain.Treatment{
			Organic:  []string{"Sulphur dusting"},
			Chemical: []string{"Propiconazole 0.1%"},
		},
		Prevention: []string{"Grow resistant varieties"},
	}
}

func TestScanStoreCreate(t *testing.T) {
	s := NewScanStore(openTestDB(t))
	ctx := context.Background()

	scan, err := s.Create(ctx, "/uploads/abc.jpg", testReport())
	require.NoError(t, err)
	assert.NotZero(t, scan.ID)
	assert.Equal(t, "/uploads/abc.jpg", scan.ImageURL)
	assert.Equal(t, "Leaf Rust", scan.Report.DiseaseName)
	assert.Equal(t, domain.SeverityHigh, scan.Report.Severity)
	assert.Equal(t, []string{"Orange pustules on leaves"}, scan.Report.Symptoms)
	assert.Equal(t, []string{"Propiconazole 0.1%"}, scan.Report.Treatment.Chemical)
	assert.False(t, scan.CreatedAt.IsZero())
}

func TestScanStoreCreateIsInsertOnly(t *testing.T) {
	s := NewScanStore(openTestDB(t))
	ctx := context.Background()

	first, err := s.Create(ctx, "/uploads/a.jpg", testReport())
	require.NoError(t, err)
	second, err := s.Create(ctx, "/uploads/a.jpg", testReport())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	got, err := s.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Report, got.Report)
}

func TestScanStoreGetMissing(t *testing.T) {
	s := NewScanStore(openTestDB(t))

	got, err := s.GetByID(context.Background(), 9999)
	require.NoError(t, err)
	assert.Nil(t, got)
}
