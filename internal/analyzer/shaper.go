package analyzer

import (
	"encoding/json"
	"strings"

	"github.com/danuarta/certificate-analyzer-api/internal/models"
)

// certificateLabels are the Indonesian display names attached to a parsed
// certificate. Keys the model returns beyond these pass through unlabeled.
var certificateLabels = map[string]string{
	"recipientName": "Nama Penerima",
	"eventTitle":    "Judul Acara",
	"eventDate":     "Tanggal Acara",
	"description":   "Deskripsi",
	"issuedBy":      "Diterbitkan Oleh",
}

const parseErrorMessage = "Failed to parse structured data"

// ShapeCertificate parses the model's text response as JSON, tolerating
// Markdown code fences around it. A response that still does not parse is
// not an error: the raw text is returned in an error envelope so the caller
// can surface it.
func ShapeCertificate(raw string) *models.CertificateResult {
	cleaned := stripCodeFences(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return &models.CertificateResult{
			ExtractedText: raw,
			Error:         parseErrorMessage,
		}
	}

	return &models.CertificateResult{
		Data:   data,
		Labels: certificateLabels,
	}
}

func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
