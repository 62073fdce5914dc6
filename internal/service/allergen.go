package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/aris-health/aris-backend/internal/models"
	"github.com/aris-health/aris-backend/internal/store"
	"github.com/aris-health/aris-backend/internal/types"
)

// BriefPageSize is the fixed page size of brief listings unless the caller
// passes an explicit limit.
const BriefPageSize = 100

// AllergenService owns the allergen catalog: brief listings, detail views
// with resolved cross-reactivity, and per-user derived queries.
type AllergenService struct {
	db        *gorm.DB
	allergens *store.Store[models.Allergen]
	allergies *store.Store[models.Allergy]
	paps      *store.Store[models.PAP]
}

var _ IAllergenService = (*AllergenService)(nil)

func NewAllergenService(db *gorm.DB) *AllergenService {
	return &AllergenService{
		db:        db,
		allergens: store.New[models.Allergen](db),
		allergies: store.New[models.Allergy](db),
		paps:      store.New[models.PAP](db),
	}
}

// Brief returns a filtered, sorted page of allergen projections plus the
// total count of rows matching the filter (the count ignores paging so the
// client can render pagination).
func (s *AllergenService) Brief(ctx context.Context, q types.BriefQuery) ([]models.AllergenBrief, int, error) {
	query := s.db.WithContext(ctx)
	if q.Type != "" {
		query = query.Where("type = ?", q.Type)
	}

	var records []models.Allergen
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, err
	}

	lang := q.Lang
	if lang == "" {
		lang = "en"
	}

	briefs := make([]models.AllergenBrief, 0, len(records))
	needle := strings.ToLower(q.Name)
	for _, a := range records {
		brief := a.Brief(lang)
		if needle != "" && !strings.Contains(strings.ToLower(brief.Name), needle) {
			continue
		}
		briefs = append(briefs, brief)
	}

	total := len(briefs)

	desc := q.Dir == "desc"
	sort.SliceStable(briefs, func(i, j int) bool {
		if desc {
			return briefs[i].Name > briefs[j].Name
		}
		return briefs[i].Name < briefs[j].Name
	})

	return pageSlice(briefs, q.Page, q.Limit), total, nil
}

// Detail fetches the allergen together with its cross-reactive allergens:
// the union of co-members across every grouping that contains it, excluding
// the allergen itself.
func (s *AllergenService) Detail(ctx context.Context, id string) (*models.Allergen, []models.Allergen, error) {
	allergen, err := s.allergens.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	cross, err := s.CrossSensitivityByAllergen(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return allergen, cross, nil
}

// CrossSensitivityByAllergen collects the other members of every grouping
// containing the allergen. De-duplication is set-based; there is no defined
// ordering.
func (s *AllergenService) CrossSensitivityByAllergen(ctx context.Context, allergenID string) ([]models.Allergen, error) {
	groupings, err := s.allergies.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	related := make(map[string]struct{})
	for _, grouping := range groupings {
		if !grouping.Contains(allergenID) {
			continue
		}
		for _, memberID := range grouping.AllergenIDs {
			if memberID != allergenID {
				related[memberID] = struct{}{}
			}
		}
	}

	return s.allergens.ListByIDs(ctx, setToSlice(related))
}

// CrossSensitivityByUser reads the user's profile, unions the cross lists of
// its allergens, and subtracts everything the profile already contains.
func (s *AllergenService) CrossSensitivityByUser(ctx context.Context, userID string) ([]models.Allergen, error) {
	var pap models.PAP
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&pap).Error; err != nil {
		return nil, err
	}

	owned := make(map[string]struct{})
	for _, id := range pap.AllergenIDs() {
		owned[id] = struct{}{}
	}

	ownedAllergens, err := s.allergens.ListByIDs(ctx, pap.AllergenIDs())
	if err != nil {
		return nil, err
	}

	candidates := make(map[string]struct{})
	for _, allergen := range ownedAllergens {
		for _, crossID := range allergen.CrossAllergenIDs {
			if _, has := owned[crossID]; !has {
				candidates[crossID] = struct{}{}
			}
		}
	}

	return s.allergens.ListByIDs(ctx, setToSlice(candidates))
}

// Remaining returns allergens absent from the user's profile, with an
// optional localized name filter.
func (s *AllergenService) Remaining(ctx context.Context, userID, name, lang string) ([]models.Allergen, error) {
	var pap models.PAP
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&pap).Error; err != nil {
		return nil, err
	}

	all, err := s.allergens.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if lang == "" {
		lang = "en"
	}
	needle := strings.ToLower(name)

	remaining := make([]models.Allergen, 0, len(all))
	for _, allergen := range all {
		if pap.HasAllergen(allergen.ID) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(allergen.Name.In(lang)), needle) {
			continue
		}
		remaining = append(remaining, allergen)
	}
	return remaining, nil
}

func setToSlice(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}

// pageSlice applies 1-based page numbering with the brief default page size.
func pageSlice[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		limit = BriefPageSize
	}
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
