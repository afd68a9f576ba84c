package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/danuarta/certificate-analyzer-api/internal/analyzer"
	"github.com/danuarta/certificate-analyzer-api/internal/config"
	"github.com/danuarta/certificate-analyzer-api/internal/extractor"
	"github.com/danuarta/certificate-analyzer-api/internal/filetype"
	"github.com/danuarta/certificate-analyzer-api/internal/models"
	"github.com/danuarta/certificate-analyzer-api/internal/optimizer"
	"github.com/danuarta/certificate-analyzer-api/internal/utils"
)

type DocumentService interface {
	ProcessDocument(ctx context.Context, path string) (any, error)
	ProcessBatch(ctx context.Context, paths []string) []models.BatchEntry
}

type documentService struct {
	llm               analyzer.Analyzer
	flashModel        string
	proModel          string
	maxImageDimension int
	logger            *utils.Logger
}

// NewService builds the orchestrator. The AI analyzer is injected so the
// service carries no hidden client state of its own.
func NewService(llm analyzer.Analyzer, cfg *config.Config, logger *utils.Logger) DocumentService {
	return &documentService{
		llm:               llm,
		flashModel:        cfg.FlashModel,
		proModel:          cfg.ProModel,
		maxImageDimension: cfg.MaxImageDimension,
		logger:            logger,
	}
}

// ProcessDocument dispatches a stored file to the image or PDF pipeline
// based on its extension.
func (s *documentService) ProcessDocument(ctx context.Context, path string) (any, error) {
	switch filetype.DetectPath(path) {
	case filetype.CategoryImage:
		return s.processImage(ctx, path)
	case filetype.CategoryPDF:
		return s.processPDF(ctx, path)
	case filetype.CategoryUnknown:
		fallthrough
	default:
		return nil, fmt.Errorf("unsupported file type: %s", strings.ToLower(filepath.Ext(path)))
	}
}

// ProcessBatch analyzes every path concurrently, best effort: a failing
// entry never aborts the others, and the result order matches the input
// order.
func (s *documentService) ProcessBatch(ctx context.Context, paths []string) []models.BatchEntry {
	results := make([]models.BatchEntry, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			content, err := s.ProcessDocument(ctx, path)
			if err != nil {
				s.logger.Error("Batch entry failed", "path", path, "error", err)
				results[i] = models.BatchEntry{FilePath: path, Error: err.Error()}
				return nil
			}
			results[i] = models.BatchEntry{FilePath: path, Content: content}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (s *documentService) processImage(ctx context.Context, path string) (*models.CertificateResult, error) {
	data, err := optimizer.Optimize(path, s.maxImageDimension)
	if err != nil {
		s.logger.Error("Failed to optimize image", "error", err, "path", path)
		return nil, err
	}

	text, err := s.llm.Analyze(ctx, s.flashModel, certificatePrompt, &analyzer.InlineImage{
		MIMEType: "image/jpeg",
		Data:     data,
	})
	if err != nil {
		return nil, err
	}

	result := analyzer.ShapeCertificate(text)
	if result.Error != "" {
		s.logger.Warn("Model response was not valid JSON", "path", path)
	}

	return result, nil
}

// processPDF summarizes a PDF's text with the pro model. An unreadable or
// corrupt PDF yields a null summary instead of an error, so a bad document
// still produces a well-formed response.
func (s *documentService) processPDF(ctx context.Context, path string) (*models.SummaryResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("Failed to read PDF", "error", err, "path", path)
		return &models.SummaryResult{}, nil
	}

	text, err := extractor.ExtractPDF(data)
	if err != nil {
		s.logger.Warn("Failed to extract PDF text", "error", err, "path", path)
		return &models.SummaryResult{}, nil
	}

	summary, err := s.llm.Analyze(ctx, s.proModel, summaryPrompt(text), nil)
	if err != nil {
		return nil, err
	}

	return &models.SummaryResult{Summary: &summary}, nil
}
