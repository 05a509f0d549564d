package genai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/krishimitra/krishimitra/internal/domain"
)

// ParseDiseaseReport decodes a model reply into a DiseaseReport. A reply that
// does not contain JSON is an upstream failure; JSON that is missing required
// fields is a *SchemaError.
func ParseDiseaseReport(text string) (*domain.DiseaseReport, error) {
	var report domain.DiseaseReport
	if err := json.Unmarshal([]byte(ExtractJSON(text)), &report); err != nil {
		return nil, fmt.Errorf("parse disease report: %v: %w", err, ErrUpstream)
	}
	if err := validateReport(&report); err != nil {
		return nil, err
	}
	return &report, nil
}

func validateReport(r *domain.DiseaseReport) error {
	if strings.TrimSpace(r.DiseaseName) == "" {
		return &SchemaError{Field: "disease_name", Reason: "is missing"}
	}
	if strings.TrimSpace(r.CropType) == "" {
		return &SchemaError{Field: "crop_type", Reason: "is missing"}
	}
	switch r.Severity {
	case domain.SeverityLow, domain.SeverityModerate, domain.SeverityHigh:
	default:
		return &SchemaError{Field: "severity", Reason: fmt.Sprintf("must be Low, Moderate or High, got %q", r.Severity)}
	}
	if r.Confidence < 0 || r.Confidence > 100 {
		return &SchemaError{Field: "confidence", Reason: fmt.Sprintf("must be within 0-100, got %v", r.Confidence)}
	}
	return nil
}
