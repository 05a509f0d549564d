package service

import (
	"context"
	"strings"
	"sync"

	"github.com/krishimitra/krishimitra/internal/domain"
)

// ScanState is the disease detection flow's position.
type ScanState string

const (
	ScanIdle          ScanState = "idle"
	ScanImageSelected ScanState = "image_selected"
	ScanAnalyzing     ScanState = "analyzing"
	ScanResult        ScanState = "result"
	ScanError         ScanState = "error"
)

// ScanSession is the session-scoped state of one detection flow:
// Idle -> ImageSelected -> Analyzing -> {Result | Error}, with Reset back to
// Idle from any state. After a failure the selected image is kept so the
// analysis can be retried without re-uploading.
type ScanSession struct {
	mu       sync.Mutex
	state    ScanState
	image    []byte
	mimeType string
	report   *domain.DiseaseReport
	err      error
}

func NewScanSession() *ScanSession {
	return &ScanSession{state: ScanIdle}
}

// SelectImage stores the chosen image and moves to ImageSelected. Files that
// are not images are ignored: the state does not change and false is
// returned.
func (s *ScanSession) SelectImage(data []byte, mimeType string) bool {
	if !strings.HasPrefix(mimeType, "image/") {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.image = data
	s.mimeType = mimeType
	s.report = nil
	s.err = nil
	s.state = ScanImageSelected
	return true
}

// Analyze runs the detection service against the selected image and settles
// in Result or Error.
func (s *ScanSession) Analyze(ctx context.Context, svc *ScanService) (*domain.DiseaseReport, error) {
	s.mu.Lock()
	if len(s.image) == 0 {
		s.mu.Unlock()
		return nil, ErrInputMissing
	}
	s.state = ScanAnalyzing
	data, mimeType := s.image, s.mimeType
	s.mu.Unlock()

	report, err := svc.Analyze(ctx, data, mimeType)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = ScanError
		s.err = err
		return nil, err
	}
	s.state = ScanResult
	s.report = report
	s.err = nil
	return report, nil
}

// Reset returns to Idle from any state, dropping the image and any outcome.
func (s *ScanSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = ScanIdle
	s.image = nil
	s.mimeType = ""
	s.report = nil
	s.err = nil
}

func (s *ScanSession) State() ScanState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *ScanSession) HasImage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.image) > 0
}

func (s *ScanSession) Report() *domain.DiseaseReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report
}

func (s *ScanSession) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
