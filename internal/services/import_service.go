package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"statement-importer/internal/importer"
	"statement-importer/internal/models"
	"statement-importer/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrNoCandidates = errors.New("statement has no rows to import")
)

type importService struct {
	registry        *importer.Registry
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	batchRepo       repositories.ImportBatchRepositoryInterface
	history         ClassificationHistoryServiceInterface
	resolver        CategoryResolverInterface
	guard           DedupGuardInterface
	projector       InstallmentProjectorInterface
	importLogger    ImportLoggerInterface
	metrics         MetricsRecorderInterface
}

// importSession holds the state of one import. Nothing in it outlives the call that created it.
type importSession struct {
	accountID  uuid.UUID
	batchID    uuid.UUID
	history    *models.ClassificationHistory
	categories map[string]uint
}

func newImportSession(accountID uuid.UUID) *importSession {
	return &importSession{
		accountID:  accountID,
		categories: make(map[string]uint),
	}
}

func NewImportService(
	registry *importer.Registry,
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	batchRepo repositories.ImportBatchRepositoryInterface,
	history ClassificationHistoryServiceInterface,
	resolver CategoryResolverInterface,
	guard DedupGuardInterface,
	projector InstallmentProjectorInterface,
	importLogger ImportLoggerInterface,
	metrics MetricsRecorderInterface,
) ImportServiceInterface {
	return &importService{
		registry:        registry,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		batchRepo:       batchRepo,
		history:         history,
		resolver:        resolver,
		guard:           guard,
		projector:       projector,
		importLogger:    importLogger,
		metrics:         metrics,
	}
}

func (s *importService) Preview(ctx context.Context, accountID uuid.UUID, fileName string, content []byte) (*models.ImportPreview, error) {
	start := time.Now()

	if err := s.ensureAccount(accountID); err != nil {
		return nil, err
	}

	parsed, err := s.registry.ParseBytes(content)
	if err != nil {
		s.metrics.IncrementCounter(MetricImportFailed, map[string]string{"schema": "unknown"})
		return nil, fmt.Errorf("failed to parse %s: %w", fileName, err)
	}

	for _, diagnostic := range parsed.Diagnostics {
		s.metrics.IncrementCounter(MetricRowsDropped, map[string]string{"reason": diagnostic.Reason})
	}

	session := newImportSession(accountID)
	session.history, err = s.history.Build(ctx)
	if err != nil {
		return nil, err
	}

	preview := &models.ImportPreview{
		AccountID:   accountID,
		FileName:    fileName,
		Schema:      parsed.Schema,
		RowCount:    parsed.RowCount,
		Candidates:  parsed.Candidates,
		Resolutions: make([]models.ResolutionResult, 0, len(parsed.Candidates)),
		Diagnostics: parsed.Diagnostics,
		HistorySize: session.history.Len(),
	}

	for _, candidate := range parsed.Candidates {
		if candidate.IsTransferFlagged() {
			s.importLogger.LogTransferFlagged(ctx, candidate.RowNumber, candidate.Description, candidate.Transfer.String())
		}

		resolution := s.resolver.Resolve(candidate, session.history)
		s.metrics.IncrementCounter(MetricCategoryResolved, map[string]string{"method": resolution.Method})
		preview.Resolutions = append(preview.Resolutions, resolution)
	}

	s.metrics.RecordGauge(MetricLastImportCandidates, float64(len(preview.Candidates)), map[string]string{"schema": preview.Schema})
	s.metrics.RecordProcessingTime(MetricPreviewDuration, time.Since(start))

	return preview, nil
}

func (s *importService) Commit(ctx context.Context, accountID uuid.UUID, fileName, schema string, candidates []*models.ImportCandidate) (*models.ImportResult, error) {
	return s.commit(ctx, accountID, fileName, schema, len(candidates), candidates)
}

func (s *importService) Import(ctx context.Context, accountID uuid.UUID, fileName string, content []byte) (*models.ImportResult, error) {
	preview, err := s.Preview(ctx, accountID, fileName, content)
	if err != nil {
		return nil, err
	}

	result, err := s.commit(ctx, accountID, fileName, preview.Schema, preview.RowCount, preview.Candidates)
	if result != nil && len(preview.Diagnostics) > 0 {
		result.Diagnostics = append(append([]models.RowDiagnostic{}, preview.Diagnostics...), result.Diagnostics...)
	}
	return result, err
}

func (s *importService) ListBatches(ctx context.Context, limit int) ([]models.ImportBatch, error) {
	batches, err := s.batchRepo.ListRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list import batches: %w", err)
	}
	return batches, nil
}

// commit writes every candidate as its own unit of work. A failing row is counted
// and reported; rows written before it stay written.
func (s *importService) commit(ctx context.Context, accountID uuid.UUID, fileName, schema string, rowCount int, candidates []*models.ImportCandidate) (*models.ImportResult, error) {
	start := time.Now()

	if err := s.ensureAccount(accountID); err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	batch := &models.ImportBatch{
		AccountID: accountID,
		FileName:  fileName,
		Schema:    schema,
		RowCount:  rowCount,
	}
	if err := s.batchRepo.Create(batch); err != nil {
		return nil, fmt.Errorf("failed to start import: %w", err)
	}

	session := newImportSession(accountID)
	session.batchID = batch.ID

	s.importLogger.LogImportStarted(ctx, batch.ID, accountID, fileName, schema, len(candidates))
	s.metrics.IncrementCounter(MetricImportStarted, map[string]string{"schema": schema})

	result := models.NewImportResult(batch.ID)

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			s.abort(ctx, batch, result, start, err)
			return result, fmt.Errorf("import interrupted: %w", err)
		}
		if candidate == nil {
			continue
		}

		prepareCandidate(schema, candidate)
		s.commitCandidate(ctx, session, candidate, result)
	}

	result.Duration = time.Since(start)

	batch.Created = result.Created
	batch.Skipped = result.Skipped
	batch.Projected = result.Projected
	batch.ProjectedSkipped = result.ProjectedSkipped
	batch.Failed = result.Failed
	if err := s.batchRepo.MarkCompleted(batch); err != nil {
		slog.WarnContext(ctx, "Failed to record import counters", "batch_id", batch.ID, "error", err)
	}

	s.metrics.IncrementCounter(MetricImportCompleted, map[string]string{"schema": schema})
	s.metrics.RecordProcessingTime(MetricImportDuration, result.Duration)
	s.importLogger.LogImportCompleted(ctx, batch.ID, result.Created, result.Skipped, result.Projected, result.Failed, result.Duration.Milliseconds())

	return result, nil
}

func (s *importService) commitCandidate(ctx context.Context, session *importSession, candidate *models.ImportCandidate, result *models.ImportResult) {
	duplicate, err := s.guard.IsDuplicate(ctx, session.accountID, candidate)
	if err != nil {
		s.recordFailure(ctx, session, candidate, err, result)
		return
	}

	if duplicate {
		result.Skipped++
		result.Diagnostics = append(result.Diagnostics, models.RowDiagnostic{
			Row:     candidate.RowNumber,
			Reason:  importer.ReasonDuplicate,
			Message: fmt.Sprintf("already imported: %s on %s", candidate.Description, candidate.DateString()),
		})
		s.importLogger.LogRowSkipped(ctx, session.batchID, candidate.RowNumber, candidate.Description, false)
		s.metrics.IncrementCounter(MetricImportRows, map[string]string{"outcome": "skipped"})
		return
	}

	s.checkNearDuplicates(ctx, session, candidate, result)

	if err := s.persist(session, candidate); err != nil {
		s.recordFailure(ctx, session, candidate, err, result)
		return
	}
	result.Created++
	s.metrics.IncrementCounter(MetricImportRows, map[string]string{"outcome": "created"})

	for _, projected := range s.projector.Project(candidate) {
		duplicate, err := s.guard.IsDuplicate(ctx, session.accountID, projected)
		if err != nil {
			s.recordFailure(ctx, session, projected, err, result)
			continue
		}

		if duplicate {
			result.ProjectedSkipped++
			s.importLogger.LogRowSkipped(ctx, session.batchID, projected.RowNumber, projected.Description, true)
			s.metrics.IncrementCounter(MetricImportRows, map[string]string{"outcome": "projected_skipped"})
			continue
		}

		if err := s.persist(session, projected); err != nil {
			s.recordFailure(ctx, session, projected, err, result)
			continue
		}
		result.Projected++
		s.metrics.IncrementCounter(MetricImportRows, map[string]string{"outcome": "projected"})
	}
}

func (s *importService) checkNearDuplicates(ctx context.Context, session *importSession, candidate *models.ImportCandidate, result *models.ImportResult) {
	near, err := s.guard.NearDuplicates(ctx, session.accountID, candidate)
	if err != nil {
		slog.WarnContext(ctx, "Near duplicate lookup failed", "row", candidate.RowNumber, "error", err)
		return
	}

	for _, match := range near {
		result.PossibleDuplicates = append(result.PossibleDuplicates, match)
		s.importLogger.LogPossibleDuplicate(ctx, session.batchID, match.Row, match.Description, match.ExistingDescription, match.Distance)
		s.metrics.IncrementCounter(MetricPossibleDuplicate, nil)
	}
}

func (s *importService) persist(session *importSession, candidate *models.ImportCandidate) error {
	categoryID, err := s.categoryID(session, candidate.CategoryLabel, candidate.Kind)
	if err != nil {
		return err
	}

	tx := candidate.ToTransaction(session.accountID, categoryID)
	tx.ImportBatchID = &session.batchID

	return s.transactionRepo.Create(tx)
}

// categoryID resolves a label to a category of the same kind, creating it when missing
func (s *importService) categoryID(session *importSession, label, kind string) (uint, error) {
	key := kind + "|" + strings.ToLower(label)
	if id, ok := session.categories[key]; ok {
		return id, nil
	}

	category, err := s.categoryRepo.FindOrCreate(label, kind)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve category %q: %w", label, err)
	}

	session.categories[key] = category.ID
	return category.ID, nil
}

func (s *importService) recordFailure(ctx context.Context, session *importSession, candidate *models.ImportCandidate, err error, result *models.ImportResult) {
	result.Failed++
	result.Diagnostics = append(result.Diagnostics, models.RowDiagnostic{
		Row:     candidate.RowNumber,
		Reason:  importer.ReasonWriteFailed,
		Message: err.Error(),
	})
	s.importLogger.LogRowFailed(ctx, session.batchID, candidate.RowNumber, err.Error())
	s.metrics.IncrementCounter(MetricImportRows, map[string]string{"outcome": "failed"})
}

func (s *importService) abort(ctx context.Context, batch *models.ImportBatch, result *models.ImportResult, start time.Time, cause error) {
	result.Duration = time.Since(start)

	// ctx is done at this point; bookkeeping still has to run
	logCtx := context.WithoutCancel(ctx)
	if err := s.batchRepo.MarkFailed(batch.ID, cause.Error()); err != nil {
		slog.WarnContext(logCtx, "Failed to mark import batch as failed", "batch_id", batch.ID, "error", err)
	}

	s.metrics.IncrementCounter(MetricImportFailed, map[string]string{"schema": batch.Schema})
	s.importLogger.LogImportFailed(logCtx, batch.ID, cause.Error(), result.Duration.Milliseconds())
}

func (s *importService) ensureAccount(accountID uuid.UUID) error {
	if accountID == uuid.Nil {
		return models.ErrAccountRequired
	}

	exists, err := s.accountRepo.Exists(accountID)
	if err != nil {
		return fmt.Errorf("failed to check account: %w", err)
	}
	if !exists {
		return ErrAccountNotFound
	}
	return nil
}

// prepareCandidate applies the rules every committed row obeys regardless of what the reviewer sent back.
// The transfer flag and installment position are derived again from the final description,
// so edits made during review cannot keep a stale lock or plan.
func prepareCandidate(schema string, candidate *models.ImportCandidate) {
	candidate.Description = strings.TrimSpace(candidate.Description)
	if candidate.Description == "" {
		candidate.Description = importer.NoDescription
	}

	candidate.Transfer = importer.ClassifyTransfer(schema, candidate.Description)
	if candidate.Transfer.IsLocked() {
		candidate.CategoryLabel = models.CategoryInternalTransfer
	}
	if strings.TrimSpace(candidate.CategoryLabel) == "" {
		candidate.CategoryLabel = models.CategoryUncategorized
	}

	candidate.Date = models.NormalizeDate(candidate.Date)
	candidate.Amount = candidate.Amount.Abs().Round(2)

	if installment, ok := importer.ExtractInstallment(candidate.Description); ok {
		candidate.SetInstallment(installment.Current, installment.Total)
	} else {
		candidate.ClearInstallment()
	}
}
