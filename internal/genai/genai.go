// Package genai defines the gateway contract to the generative AI service,
// the fixed prompts the features use, and parsing of the model's replies.
package genai

import (
	"context"
	"errors"
	"fmt"

	"github.com/krishimitra/krishimitra/internal/i18n"
)

// Image is an optional attachment submitted alongside a prompt. The bytes are
// base64-encoded by the backend and sent as one multimodal input with the
// text.
type Image struct {
	Data     []byte
	MIMEType string
}

// Completer is the single operation every AI backend implements. The returned
// string is unstructured completion text; callers that asked for JSON parse
// it with ParseDiseaseReport. No backend retries on failure.
type Completer interface {
	Complete(ctx context.Context, prompt string, image *Image) (string, error)
}

// DiseasePrompt instructs the model to analyze a crop photo and reply with a
// structured JSON payload.
const DiseasePrompt = "You are an expert agricultural AI. Analyze this crop image and identify any diseases. " +
	"Respond in JSON format with: disease_name, confidence (percentage), crop_type, severity (Low/Moderate/High), " +
	"symptoms (array), treatment (object with organic and chemical arrays), prevention (array). " +
	"If no disease found, indicate healthy crop."

// ChatPrompt wraps a farmer's question in the advisor instruction,
// parameterized by reply language.
func ChatPrompt(lang i18n.Language, question string) string {
	return fmt.Sprintf(
		"You are an expert agricultural advisor for Karnataka, India. %s. Provide practical, actionable farming advice. Question: %s",
		lang.Instruction(), question,
	)
}

// ErrUpstream marks a gateway call that failed or returned content that could
// not be used. Callers surface it as a generic retryable-by-user message.
var ErrUpstream = errors.New("upstream gateway failure")

// SchemaError reports a model reply that parsed as JSON but violated the
// expected disease report shape.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("model response schema: field %s %s", e.Field, e.Reason)
}
