package services

import (
	"statement-importer/internal/importer"
	"statement-importer/internal/models"
)

type installmentProjector struct{}

func NewInstallmentProjector() InstallmentProjectorInterface {
	return &installmentProjector{}
}

// Project synthesizes installments current+1..total, one calendar month apart,
// each with the original amount. Non-installment candidates yield nothing.
func (p *installmentProjector) Project(candidate *models.ImportCandidate) []*models.ImportCandidate {
	if !candidate.HasInstallments() {
		return nil
	}

	current, total := *candidate.InstallmentCurrent, *candidate.InstallmentTotal
	if current >= total {
		return nil
	}

	projected := make([]*models.ImportCandidate, 0, total-current)
	for i := current + 1; i <= total; i++ {
		next := &models.ImportCandidate{
			RowNumber:     candidate.RowNumber,
			Date:          models.NormalizeDate(importer.AddMonthsClamped(candidate.Date, i-current)),
			Description:   importer.ReplaceInstallment(candidate.Description, i, total),
			Amount:        candidate.Amount,
			Kind:          candidate.Kind,
			CategoryLabel: candidate.CategoryLabel,
			Tags:          candidate.Tags,
			Transfer:      models.TransferNone,
		}
		next.SetInstallment(i, total)
		projected = append(projected, next)
	}

	return projected
}
