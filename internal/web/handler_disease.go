package web

import (
	"io"
	"net/http"
)

const maxImageSize = 50 * 1024 * 1024 // 50 MB, matching the request body cap

// isWebP reports whether data is a WebP image (RIFF container with "WEBP" at
// offset 8). The stdlib content sniffer does not cover WebP.
func isWebP(data []byte) bool {
	return len(data) >= 12 &&
		string(data[0:4]) == "RIFF" &&
		string(data[8:12]) == "WEBP"
}

// imageMIME returns the detected MIME type and true when data is an image, or
// ("", false) otherwise. Detection uses magic bytes, not the client-supplied
// content type.
func imageMIME(data []byte) (string, bool) {
	if isWebP(data) {
		return "image/webp", true
	}
	mime := http.DetectContentType(data)
	if len(mime) > 6 && mime[:6] == "image/" {
		return mime, true
	}
	return "", false
}

func (s *Server) handleDiseaseDetect(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		s.writeError(w, http.StatusBadRequest, "No image provided")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "No image provided")
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.Error("failed to close upload file", "error", err)
		}
	}()

	imageData, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("read upload failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "Failed to analyze image")
		return
	}

	mimeType, ok := imageMIME(imageData)
	if !ok {
		s.writeError(w, http.StatusBadRequest, "Unsupported image format")
		return
	}

	report, err := s.scans.Analyze(r.Context(), imageData, mimeType)
	if err != nil {
		s.logger.Error("disease detection failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "Failed to analyze image")
		return
	}

	s.writeJSON(w, http.StatusOK, report)
}
