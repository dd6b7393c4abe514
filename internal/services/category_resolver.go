package services

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"statement-importer/internal/models"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoKeywordRules     = errors.New("keyword rule file defines no rules")
	ErrInvalidKeywordRule = errors.New("keyword rule needs a keyword and a category")
)

type categoryResolver struct {
	rules  []models.KeywordRule
	logger *slog.Logger
}

// keywordRuleFile is the YAML layout of IMPORT_KEYWORD_RULES_FILE
type keywordRuleFile struct {
	Rules []models.KeywordRule `yaml:"rules"`
}

// NewCategoryResolver creates a resolver with the given keyword table, or the default one when rules is empty
func NewCategoryResolver(rules []models.KeywordRule, logger *slog.Logger) CategoryResolverInterface {
	if len(rules) == 0 {
		rules = DefaultKeywordRules()
	}
	if logger == nil {
		logger = slog.Default()
	}

	normalized := make([]models.KeywordRule, 0, len(rules))
	for _, rule := range rules {
		normalized = append(normalized, models.KeywordRule{
			Keyword:  strings.ToLower(strings.TrimSpace(rule.Keyword)),
			Category: strings.TrimSpace(rule.Category),
		})
	}

	return &categoryResolver{
		rules:  normalized,
		logger: logger,
	}
}

// DefaultKeywordRules is the fallback keyword table, checked in order
func DefaultKeywordRules() []models.KeywordRule {
	return []models.KeywordRule{
		{Keyword: "transfer", Category: models.CategoryInternalTransfer},
		{Keyword: "refund", Category: models.CategoryInternalTransfer},
		{Keyword: "yield", Category: models.CategoryInvestmentIncome},
		{Keyword: "invoice payment", Category: models.CategoryInternalTransfer},
		{Keyword: "payment received", Category: models.CategoryInternalTransfer},
		{Keyword: "transferência", Category: models.CategoryInternalTransfer},
		{Keyword: "resgate", Category: models.CategoryInternalTransfer},
		{Keyword: "rendimento", Category: models.CategoryInvestmentIncome},
		{Keyword: "pagamento de fatura", Category: models.CategoryInternalTransfer},
		{Keyword: "pagamento recebido", Category: models.CategoryInternalTransfer},
	}
}

// LoadKeywordRules reads an ordered keyword table from a YAML file
func LoadKeywordRules(path string) ([]models.KeywordRule, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword rules: %w", err)
	}

	var file keywordRuleFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse keyword rules %s: %w", path, err)
	}

	if len(file.Rules) == 0 {
		return nil, ErrNoKeywordRules
	}

	for i, rule := range file.Rules {
		if strings.TrimSpace(rule.Keyword) == "" || strings.TrimSpace(rule.Category) == "" {
			return nil, fmt.Errorf("%w: rule %d", ErrInvalidKeywordRule, i+1)
		}
	}

	return file.Rules, nil
}

func (r *categoryResolver) Rules() []models.KeywordRule {
	rules := make([]models.KeywordRule, len(r.rules))
	copy(rules, r.rules)
	return rules
}

// Resolve applies the classification history first and the keyword table second.
// A category other than Uncategorized and non-empty tags are never overwritten.
func (r *categoryResolver) Resolve(candidate *models.ImportCandidate, history *models.ClassificationHistory) models.ResolutionResult {
	if strings.TrimSpace(candidate.CategoryLabel) == "" {
		candidate.CategoryLabel = models.CategoryUncategorized
	}

	result := models.ResolutionResult{
		Category: candidate.CategoryLabel,
		Tags:     candidate.Tags,
		Method:   models.ResolutionMethodNone,
	}

	description := models.NormalizeDescription(candidate.Description)
	if description == "" {
		return result
	}

	for _, entry := range history.Entries() {
		if !strings.Contains(description, entry.Key) && !strings.Contains(entry.Key, description) {
			continue
		}

		if candidate.IsUncategorized() && entry.CategoryLabel != "" && entry.CategoryLabel != candidate.CategoryLabel {
			candidate.CategoryLabel = entry.CategoryLabel
			result.CategoryChanged = true
		}
		if strings.TrimSpace(candidate.Tags) == "" && entry.Tags != "" {
			candidate.Tags = entry.Tags
			result.TagsChanged = true
		}

		result.Method = models.ResolutionMethodHistory
		result.MatchedPattern = entry.Key
		break
	}

	if candidate.IsUncategorized() {
		for _, rule := range r.rules {
			if rule.Keyword == "" || !strings.Contains(description, rule.Keyword) {
				continue
			}
			candidate.CategoryLabel = rule.Category
			result.CategoryChanged = true
			result.Method = models.ResolutionMethodKeyword
			result.MatchedPattern = rule.Keyword
			break
		}
	}

	result.Category = candidate.CategoryLabel
	result.Tags = candidate.Tags

	r.logger.Debug("Candidate resolved",
		"row", candidate.RowNumber,
		"method", result.Method,
		"pattern", result.MatchedPattern,
		"category", result.Category,
	)

	return result
}
