package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/wellness-service/internal/domain"
	"github.com/spec-kit/wellness-service/internal/events"
	"github.com/spec-kit/wellness-service/internal/repository"
	util "github.com/spec-kit/wellness-service/pkg/util"
)

// ImportService loads survey exports into the assessment collection. Each
// import is a full replace: the previous collection is discarded.
type ImportService struct {
	assessments repository.AssessmentRepository
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// ImportResult summarizes a completed import.
type ImportResult struct {
	BatchID string
	Rows    int
}

// NewImportService constructs the service.
func NewImportService(assessments repository.AssessmentRepository, dispatcher events.Dispatcher, logger *zap.Logger) *ImportService {
	return &ImportService{assessments: assessments, dispatcher: dispatcher, logger: logger}
}

// ImportCSV parses a header-addressed CSV export and replaces the
// assessment collection with its rows. Recognized columns (matched
// case-insensitively): UserID, StressScore, BurnoutRisk, Source.
// StressScore is required per row; the scale convention is whatever the
// deployment declared via RISK_SCORE_SCALE.
func (s *ImportService) ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, util.NewValidationError("empty or unreadable CSV", nil)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	scoreIdx, ok := cols["stressscore"]
	if !ok {
		return nil, util.NewValidationError("missing StressScore column", nil)
	}

	batchID := uuid.NewString()
	var rowsOut []domain.Assessment
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, util.NewValidationError(fmt.Sprintf("malformed CSV at line %d", line), nil)
		}

		score, err := strconv.ParseFloat(strings.TrimSpace(record[scoreIdx]), 64)
		if err != nil {
			return nil, util.NewValidationError(fmt.Sprintf("invalid StressScore at line %d", line), nil)
		}

		a := domain.Assessment{
			StressScore: score,
			Source:      "import:" + batchID,
		}
		if idx, ok := cols["userid"]; ok && idx < len(record) {
			a.UserID = strings.TrimSpace(record[idx])
		}
		if idx, ok := cols["burnoutrisk"]; ok && idx < len(record) {
			a.BurnoutRisk = domain.BurnoutFlag(strings.TrimSpace(record[idx]))
		}
		if idx, ok := cols["source"]; ok && idx < len(record) && strings.TrimSpace(record[idx]) != "" {
			a.Source = strings.TrimSpace(record[idx])
		}
		rowsOut = append(rowsOut, a)
	}

	if err := s.assessments.ReplaceAll(ctx, rowsOut); err != nil {
		return nil, err
	}

	s.logger.Info("assessments imported",
		zap.String("batch_id", batchID),
		zap.Int("rows", len(rowsOut)),
	)
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:    events.EventAssessmentsImported,
			Payload: events.AssessmentsImportedPayload{BatchID: batchID, Rows: len(rowsOut)},
		})
	}

	return &ImportResult{BatchID: batchID, Rows: len(rowsOut)}, nil
}
