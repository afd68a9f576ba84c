package models

// UploadedFile describes a multipart upload persisted to the upload
// directory. The stored filename embeds a timestamp and a random suffix so
// concurrent uploads never collide.
type UploadedFile struct {
	OriginalName   string `json:"originalName"`
	StoredFilename string `json:"filename"`
	StoredPath     string `json:"path"`
	MimeType       string `json:"mimeType"`
	Size           int64  `json:"size"`
}

// CertificateResult is the shaped output of the image pipeline. On a
// successful parse Data carries the model's fields and Labels the fixed
// Indonesian display names; on a parse failure ExtractedText carries the raw
// model output and Error is set.
type CertificateResult struct {
	Data          map[string]any    `json:"data,omitempty"`
	Labels        map[string]string `json:"labels,omitempty"`
	ExtractedText string            `json:"extractedText,omitempty"`
	Error         string            `json:"error,omitempty"`
}

// SummaryResult is the output of the PDF pipeline. Summary is null when the
// text extraction step failed.
type SummaryResult struct {
	Summary *string `json:"summary"`
}

// BatchEntry is one element of a batch analysis: exactly one of Content or
// Error is populated. Entries keep the order of the batch input.
type BatchEntry struct {
	FilePath string `json:"filePath"`
	Content  any    `json:"content,omitempty"`
	Error    string `json:"error,omitempty"`
}
