package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishimitra/krishimitra/internal/genai"
)

func TestScanSessionHappyPath(t *testing.T) {
	svc := NewScanService(&fakeCompleter{reply: reportJSON}, &recordingScanStore{}, nil, testLogger())
	sess := NewScanSession()
	assert.Equal(t, ScanIdle, sess.State())

	require.True(t, sess.SelectImage(jpegBytes, "image/jpeg"))
	assert.Equal(t, ScanImageSelected, sess.State())

	report, err := sess.Analyze(context.Background(), svc)
	require.NoError(t, err)
	assert.Equal(t, ScanResult, sess.State())
	assert.Equal(t, report, sess.Report())
	assert.NoError(t, sess.Err())
}

func TestScanSessionIgnoresNonImageFiles(t *testing.T) {
	sess := NewScanSession()

	assert.False(t, sess.SelectImage([]byte("%PDF-1.4"), "application/pdf"))
	assert.Equal(t, ScanIdle, sess.State())
	assert.False(t, sess.HasImage())
}

func TestScanSessionAnalyzeWithoutImage(t *testing.T) {
	svc := NewScanService(&fakeCompleter{reply: reportJSON}, &recordingScanStore{}, nil, testLogger())
	sess := NewScanSession()

	_, err := sess.Analyze(context.Background(), svc)
	assert.ErrorIs(t, err, ErrInputMissing)
	assert.Equal(t, ScanIdle, sess.State())
}

func TestScanSessionFailureKeepsImageForRetry(t *testing.T) {
	failing := &fakeCompleter{err: genai.ErrUpstream}
	scans := &recordingScanStore{}
	svc := NewScanService(failing, scans, nil, testLogger())
	sess := NewScanSession()

	require.True(t, sess.SelectImage(jpegBytes, "image/jpeg"))
	_, err := sess.Analyze(context.Background(), svc)
	require.Error(t, err)
	assert.Equal(t, ScanError, sess.State())
	assert.True(t, sess.HasImage(), "image survives a failed analysis")
	assert.ErrorIs(t, sess.Err(), genai.ErrUpstream)

	// Retry with a working gateway, no re-upload needed.
	retrySvc := NewScanService(&fakeCompleter{reply: reportJSON}, scans, nil, testLogger())
	report, err := sess.Analyze(context.Background(), retrySvc)
	require.NoError(t, err)
	assert.Equal(t, ScanResult, sess.State())
	assert.Equal(t, "Blast", report.DiseaseName)
}

func TestScanSessionResetFromAnyState(t *testing.T) {
	sess := NewScanSession()
	require.True(t, sess.SelectImage(jpegBytes, "image/jpeg"))

	sess.Reset()
	assert.Equal(t, ScanIdle, sess.State())
	assert.False(t, sess.HasImage())
	assert.Nil(t, sess.Report())
	assert.NoError(t, sess.Err())
}

func TestScanSessionReselectClearsPreviousOutcome(t *testing.T) {
	svc := NewScanService(&fakeCompleter{reply: reportJSON}, &recordingScanStore{}, nil, testLogger())
	sess := NewScanSession()

	require.True(t, sess.SelectImage(jpegBytes, "image/jpeg"))
	_, err := sess.Analyze(context.Background(), svc)
	require.NoError(t, err)

	require.True(t, sess.SelectImage([]byte{0x89, 0x50, 0x4E, 0x47}, "image/png"))
	assert.Equal(t, ScanImageSelected, sess.State())
	assert.Nil(t, sess.Report())
}
