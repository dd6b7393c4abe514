package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"statement-importer/internal/models"
	"statement-importer/internal/repositories"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
)

type dedupGuard struct {
	transactionRepo repositories.TransactionRepositoryInterface
	maxDistance     int
	logger          *slog.Logger
}

// NewDedupGuard creates a guard that treats rows as duplicates only on an exact
// account, description, amount and date match. maxDistance bounds the edit distance
// reported by NearDuplicates; zero disables the lookup.
func NewDedupGuard(transactionRepo repositories.TransactionRepositoryInterface, maxDistance int, logger *slog.Logger) DedupGuardInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &dedupGuard{
		transactionRepo: transactionRepo,
		maxDistance:     maxDistance,
		logger:          logger,
	}
}

func (g *dedupGuard) IsDuplicate(ctx context.Context, accountID uuid.UUID, candidate *models.ImportCandidate) (bool, error) {
	exists, err := g.transactionRepo.ExistsExact(accountID, candidate.Description, candidate.Amount, candidate.Date)
	if err != nil {
		return false, fmt.Errorf("failed to check for duplicate: %w", err)
	}

	if exists {
		g.logger.DebugContext(ctx, "Exact duplicate found",
			"account_id", accountID,
			"description", candidate.Description,
			"date", candidate.DateString(),
		)
	}

	return exists, nil
}

// NearDuplicates lists same-day, same-amount transactions whose description is within the configured edit distance
func (g *dedupGuard) NearDuplicates(ctx context.Context, accountID uuid.UUID, candidate *models.ImportCandidate) ([]models.PossibleDuplicate, error) {
	if g.maxDistance <= 0 {
		return nil, nil
	}

	sameDay, err := g.transactionRepo.FindSameDayAmount(accountID, candidate.Amount, candidate.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to look up near duplicates: %w", err)
	}

	description := strings.ToLower(candidate.Description)

	var found []models.PossibleDuplicate
	for i := range sameDay {
		existing := &sameDay[i]
		if existing.Description == candidate.Description {
			continue
		}

		distance := levenshtein.ComputeDistance(description, strings.ToLower(existing.Description))
		if distance > g.maxDistance {
			continue
		}

		found = append(found, models.PossibleDuplicate{
			Row:                 candidate.RowNumber,
			Description:         candidate.Description,
			ExistingID:          existing.ID,
			ExistingDescription: existing.Description,
			Amount:              candidate.Amount,
			Date:                candidate.Date,
			Distance:            distance,
		})
	}

	return found, nil
}
