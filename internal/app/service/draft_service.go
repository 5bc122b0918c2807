package service

import (
	"errors"
	"sync"

	"github.com/dcwlabs/candleworks-backend/internal/app/model"
	"github.com/dcwlabs/candleworks-backend/internal/app/repository"
	"github.com/dcwlabs/candleworks-backend/pkg/logger"
)

var ErrDraftNotFound = errors.New("no draft staged for slug")

// PublishFailure identifies where a publish run stopped.
type PublishFailure struct {
	Slug  string `json:"slug"`
	Error string `json:"error"`
}

// PublishReport states exactly which drafts are now committed and which
// remain staged after a publish-all run. The run is fail-fast and never
// rolls back: everything before the failure is committed, the failing slug
// and everything after stay staged.
type PublishReport struct {
	Published []string        `json:"published"`
	Failed    *PublishFailure `json:"failed,omitempty"`
	Remaining []string        `json:"remaining,omitempty"`
}

// DraftService is the local staging overlay: whole-record product edits
// held in memory, keyed by slug, until published to the record store or
// discarded. Staged edits win over server state in the merged view.
type DraftService interface {
	Stage(product model.Product) error
	Discard(slug string)
	Get(slug string) (*model.Product, bool)
	List() []model.Product
	MergedView() ([]model.Product, error)
	PublishOne(slug string) error
	PublishAll() (PublishReport, error)
	StagedCount() int
}

type draftService struct {
	productRepo repository.ProductRepository

	mu     sync.Mutex
	drafts map[string]model.Product
	order  []string // staged slugs in first-staged order
}

func NewDraftService(productRepo repository.ProductRepository) DraftService {
	return &draftService{
		productRepo: productRepo,
		drafts:      make(map[string]model.Product),
	}
}

// Stage validates the slug and inserts or wholly replaces the draft for it.
// Restaging keeps the slug's original position in the publish order.
func (s *draftService) Stage(product model.Product) error {
	if !ValidSlug(product.Slug) {
		return ErrInvalidSlug
	}
	if product.Price <= 0 {
		return ErrInvalidPrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.drafts[product.Slug]; !exists {
		s.order = append(s.order, product.Slug)
	}
	s.drafts[product.Slug] = product

	logger.Info("Draft staged", map[string]interface{}{
		"slug":   product.Slug,
		"staged": len(s.drafts),
	})
	return nil
}

// Discard drops the draft without contacting the record store. Unknown
// slugs are a no-op.
func (s *draftService) Discard(slug string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discardLocked(slug)
}

func (s *draftService) discardLocked(slug string) {
	if _, exists := s.drafts[slug]; !exists {
		return
	}
	delete(s.drafts, slug)
	for i, sl := range s.order {
		if sl == slug {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *draftService) Get(slug string) (*model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[slug]
	if !ok {
		return nil, false
	}
	return &draft, true
}

// List returns the staged drafts in publish order.
func (s *draftService) List() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Product, 0, len(s.order))
	for _, slug := range s.order {
		out = append(out, s.drafts[slug])
	}
	return out
}

// MergedView overlays the staged drafts on the authoritative records:
// server order first with drafts substituted in place, then drafts for
// slugs the server does not know yet, in publish order.
func (s *draftService) MergedView() ([]model.Product, error) {
	serverProducts, err := s.productRepo.FindAll()
	if err != nil {
		logger.Error("Failed to load products for merged view", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	onServer := make(map[string]bool, len(serverProducts))
	merged := make([]model.Product, 0, len(serverProducts)+len(s.order))
	for _, p := range serverProducts {
		onServer[p.Slug] = true
		if draft, ok := s.drafts[p.Slug]; ok {
			merged = append(merged, draft)
			continue
		}
		merged = append(merged, p)
	}
	for _, slug := range s.order {
		if !onServer[slug] {
			merged = append(merged, s.drafts[slug])
		}
	}
	return merged, nil
}

// PublishOne sends the staged draft to the record store, creating or
// updating depending on whether the slug exists there. Success removes the
// draft; failure leaves it staged with the error surfaced verbatim. No
// automatic retry.
func (s *draftService) PublishOne(slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.publishLocked(slug)
}

func (s *draftService) publishLocked(slug string) error {
	draft, ok := s.drafts[slug]
	if !ok {
		return ErrDraftNotFound
	}

	exists, err := s.productRepo.ExistsBySlug(slug)
	if err != nil {
		return err
	}

	if exists {
		existing, err := s.productRepo.FindBySlug(slug)
		if err != nil {
			return err
		}
		draft.ID = existing.ID
		if draft.Code == "" {
			draft.Code = existing.Code
		}
		err = s.productRepo.Update(&draft)
		if err != nil {
			logger.Warn("Draft publish failed, draft remains staged", map[string]interface{}{
				"slug":  slug,
				"error": err.Error(),
			})
			return err
		}
	} else {
		draft.ID = 0
		if err := s.productRepo.Create(&draft); err != nil {
			logger.Warn("Draft publish failed, draft remains staged", map[string]interface{}{
				"slug":  slug,
				"error": err.Error(),
			})
			return err
		}
	}

	s.discardLocked(slug)
	logger.Info("Draft published", map[string]interface{}{
		"slug":    slug,
		"created": !exists,
	})
	return nil
}

// PublishAll publishes the staged drafts sequentially in publish order and
// stops at the first failure. The report lists the committed slugs, the
// failure point, and the slugs still staged.
func (s *draftService) PublishAll() (PublishReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := PublishReport{}
	pending := make([]string, len(s.order))
	copy(pending, s.order)

	for i, slug := range pending {
		if err := s.publishLocked(slug); err != nil {
			report.Failed = &PublishFailure{Slug: slug, Error: err.Error()}
			report.Remaining = pending[i:]
			logger.Warn("Publish run stopped at first failure", map[string]interface{}{
				"published": len(report.Published),
				"failed":    slug,
				"remaining": len(report.Remaining),
			})
			return report, err
		}
		report.Published = append(report.Published, slug)
	}

	logger.Info("All drafts published", map[string]interface{}{
		"published": len(report.Published),
	})
	return report, nil
}

func (s *draftService) StagedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}
