package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/krishimitra/krishimitra/internal/domain"
)

// ScanStore records completed disease analyses. Scans are insert-only; the
// system never updates or deletes them.
type ScanStore struct {
	db *sql.DB
}

func NewScanStore(db *sql.DB) *ScanStore {
	return &ScanStore{db: db}
}

func (s *ScanStore) Create(ctx context.Context, imageURL string, report *domain.DiseaseReport) (*domain.DiseaseScan, error) {
	symptoms, err := json.Marshal(report.Symptoms)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal symptoms: %w", err)
	}
	treatment, err := json.Marshal(report.Treatment)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal treatment: %w", err)
	}
	prevention, err := json.Marshal(report.Prevention)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prevention: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO disease_scans
			(image_url, disease_name, confidence, crop_type, severity, symptoms, treatment, prevention)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, imageURL, report.DiseaseName, report.Confidence, report.CropType, string(report.Severity),
		string(symptoms), string(treatment), string(prevention))
	if err != nil {
		return nil, fmt.Errorf("failed to create scan: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *ScanStore) GetByID(ctx context.Context, id int64) (*domain.DiseaseScan, error) {
	scan := &domain.DiseaseScan{}
	var symptoms, treatment, prevention, severity string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, image_url, disease_name, confidence, crop_type, severity,
		       symptoms, treatment, prevention, created_at
		FROM disease_scans WHERE id = ?
	`, id).Scan(&scan.ID, &scan.ImageURL, &scan.Report.DiseaseName, &scan.Report.Confidence,
		&scan.Report.CropType, &severity, &symptoms, &treatment, &prevention, &scan.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}

	scan.Report.Severity = domain.Severity(severity)
	if err := json.Unmarshal([]byte(symptoms), &scan.Report.Symptoms); err != nil {
		return nil, fmt.Errorf("failed to unmarshal symptoms: %w", err)
	}
	if err := json.Unmarshal([]byte(treatment), &scan.Report.Treatment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal treatment: %w", err)
	}
	if err := json.Unmarshal([]byte(prevention), &scan.Report.Prevention); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prevention: %w", err)
	}
	return scan, nil
}
