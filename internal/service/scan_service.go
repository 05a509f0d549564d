package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/krishimitra/krishimitra/internal/domain"
	"github.com/krishimitra/krishimitra/internal/genai"
	"github.com/krishimitra/krishimitra/internal/genai/demo"
	"github.com/krishimitra/krishimitra/internal/imagestore"
)

// scanRecorder is the subset of store.ScanStore that ScanService requires.
type scanRecorder interface {
	Create(ctx context.Context, imageURL string, report *domain.DiseaseReport) (*domain.DiseaseScan, error)
}

// ScanService runs the disease detection pipeline: image in, structured
// report out, result recorded. A nil Completer puts the service in demo mode
// and the fixed fallback report is returned without persisting.
type ScanService struct {
	ai     genai.Completer
	scans  scanRecorder
	images imagestore.ImageStore
	logger *slog.Logger
}

func NewScanService(ai genai.Completer, scans scanRecorder, images imagestore.ImageStore, logger *slog.Logger) *ScanService {
	return &ScanService{ai: ai, scans: scans, images: images, logger: logger}
}

// Analyze submits the image with the disease prompt as one multimodal request
// and parses the model's JSON reply. Persistence of the image and scan record
// is best-effort: a failed save is logged and the report is still returned.
func (s *ScanService) Analyze(ctx context.Context, imageData []byte, mimeType string) (*domain.DiseaseReport, error) {
	if len(imageData) == 0 {
		return nil, ErrInputMissing
	}
	if s.ai == nil {
		return demo.DiseaseReport(), nil
	}

	text, err := s.ai.Complete(ctx, genai.DiseasePrompt, &genai.Image{Data: imageData, MIMEType: mimeType})
	if err != nil {
		return nil, fmt.Errorf("failed to analyze image: %w", err)
	}

	report, err := genai.ParseDiseaseReport(text)
	if err != nil {
		return nil, err
	}

	s.record(ctx, imageData, mimeType, report)
	return report, nil
}

func (s *ScanService) record(ctx context.Context, imageData []byte, mimeType string, report *domain.DiseaseReport) {
	imageURL := ""
	if s.images != nil {
		key, err := s.images.Save(ctx, mimeType, bytes.NewReader(imageData))
		if err != nil {
			s.logger.Error("failed to save scan image", "error", err)
		} else {
			imageURL = "/uploads/" + key
		}
	}
	if _, err := s.scans.Create(ctx, imageURL, report); err != nil {
		s.logger.Error("failed to persist disease scan", "error", err)
	}
}
