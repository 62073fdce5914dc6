package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/aris-health/aris-backend/internal/models"
	"github.com/aris-health/aris-backend/internal/types"
)

// SymptomService owns the symptom catalog listings.
type SymptomService struct {
	db *gorm.DB
}

var _ ISymptomService = (*SymptomService)(nil)

func NewSymptomService(db *gorm.DB) *SymptomService {
	return &SymptomService{db: db}
}

// Brief returns a filtered, sorted page of symptom projections plus the
// total count matching the filter. Sorting is by localized name unless the
// caller asks for severity.
func (s *SymptomService) Brief(ctx context.Context, q types.BriefQuery) ([]models.SymptomBrief, int, error) {
	query := s.db.WithContext(ctx)
	if q.Type != "" {
		query = query.Where("organ_system = ?", q.Type)
	}

	var records []models.Symptom
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, err
	}

	lang := q.Lang
	if lang == "" {
		lang = "en"
	}

	briefs := make([]models.SymptomBrief, 0, len(records))
	needle := strings.ToLower(q.Name)
	for _, sym := range records {
		brief := sym.Brief(lang)
		if needle != "" && !strings.Contains(strings.ToLower(brief.Name), needle) {
			continue
		}
		briefs = append(briefs, brief)
	}

	total := len(briefs)

	desc := q.Dir == "desc"
	switch q.Sort {
	case "severity":
		sort.SliceStable(briefs, func(i, j int) bool {
			if desc {
				return briefs[i].Severity > briefs[j].Severity
			}
			return briefs[i].Severity < briefs[j].Severity
		})
	default:
		sort.SliceStable(briefs, func(i, j int) bool {
			if desc {
				return briefs[i].Name > briefs[j].Name
			}
			return briefs[i].Name < briefs[j].Name
		})
	}

	return pageSlice(briefs, q.Page, q.Limit), total, nil
}
