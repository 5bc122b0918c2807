package service

import (
	"fmt"
	"testing"

	"github.com/dcwlabs/candleworks-backend/internal/app/model"
	"github.com/dcwlabs/candleworks-backend/internal/app/repository"
	"github.com/dcwlabs/candleworks-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDraftServiceTest(t *testing.T) (DraftService, repository.ProductRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	productRepo := repository.NewProductRepository(testDB)
	return NewDraftService(productRepo), productRepo
}

func draftProduct(slug string, price float64) model.Product {
	return model.Product{Slug: slug, Name: slug, Price: price}
}

func TestDraftService_StageValidation(t *testing.T) {
	draftService, _ := setupDraftServiceTest(t)

	tests := []struct {
		name    string
		product model.Product
		wantErr error
	}{
		{
			name:    "Valid draft",
			product: draftProduct("desert-rose", 24.0),
			wantErr: nil,
		},
		{
			name:    "Uppercase slug rejected",
			product: draftProduct("Desert-Rose", 24.0),
			wantErr: ErrInvalidSlug,
		},
		{
			name:    "Double hyphen rejected",
			product: draftProduct("desert--rose", 24.0),
			wantErr: ErrInvalidSlug,
		},
		{
			name:    "Zero price rejected",
			product: draftProduct("zero-price", 0),
			wantErr: ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := draftService.Stage(tt.product)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	// Rejected drafts never enter the overlay
	assert.Equal(t, 1, draftService.StagedCount())
	_, ok := draftService.Get("Desert-Rose")
	assert.False(t, ok)
}

func TestDraftService_RestageReplacesWholeRecord(t *testing.T) {
	draftService, _ := setupDraftServiceTest(t)

	first := draftProduct("cactus-bloom", 18.0)
	first.Description = "first pass"
	require.NoError(t, draftService.Stage(first))

	second := draftProduct("cactus-bloom", 22.0)
	require.NoError(t, draftService.Stage(second))

	assert.Equal(t, 1, draftService.StagedCount())
	draft, ok := draftService.Get("cactus-bloom")
	require.True(t, ok)
	assert.Equal(t, 22.0, draft.Price)
	// Whole-record replacement: fields absent from the restage are gone
	assert.Empty(t, draft.Description)
}

func TestDraftService_MergedViewAndDiscard(t *testing.T) {
	draftService, productRepo := setupDraftServiceTest(t)

	published := draftProduct("mesa-sunset", 20.0)
	published.Description = "published copy"
	require.NoError(t, productRepo.Create(&published))

	// Stage an edit of the published product and a brand-new product
	edit := draftProduct("mesa-sunset", 26.0)
	edit.Description = "draft copy"
	require.NoError(t, draftService.Stage(edit))
	require.NoError(t, draftService.Stage(draftProduct("night-air", 19.0)))

	merged, err := draftService.MergedView()
	require.NoError(t, err)
	require.Len(t, merged, 2)
	assert.Equal(t, "mesa-sunset", merged[0].Slug)
	assert.Equal(t, "draft copy", merged[0].Description)
	assert.Equal(t, "night-air", merged[1].Slug)

	// Discard reverts the edit; the new product disappears entirely
	draftService.Discard("mesa-sunset")
	draftService.Discard("night-air")

	merged, err = draftService.MergedView()
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, "published copy", merged[0].Description)

	// Discarding an unknown slug is a no-op
	draftService.Discard("never-staged")
}

func TestDraftService_PublishOne(t *testing.T) {
	draftService, productRepo := setupDraftServiceTest(t)

	existing := draftProduct("pinyon-smoke", 21.0)
	existing.Code = "DCW-0007"
	require.NoError(t, productRepo.Create(&existing))

	edit := draftProduct("pinyon-smoke", 25.0)
	require.NoError(t, draftService.Stage(edit))
	require.NoError(t, draftService.Stage(draftProduct("new-arrival", 17.0)))

	require.NoError(t, draftService.PublishOne("pinyon-smoke"))

	// Update path keeps the existing code and row identity
	updated, err := productRepo.FindBySlug("pinyon-smoke")
	require.NoError(t, err)
	assert.Equal(t, 25.0, updated.Price)
	assert.Equal(t, "DCW-0007", updated.Code)
	assert.Equal(t, existing.ID, updated.ID)

	require.NoError(t, draftService.PublishOne("new-arrival"))
	created, err := productRepo.FindBySlug("new-arrival")
	require.NoError(t, err)
	assert.Equal(t, 17.0, created.Price)

	assert.Equal(t, 0, draftService.StagedCount())
	assert.ErrorIs(t, draftService.PublishOne("pinyon-smoke"), ErrDraftNotFound)
}

// flakyProductRepo fails every write for slugs in failOn, otherwise
// delegates to the real repository.
type flakyProductRepo struct {
	repository.ProductRepository
	failOn map[string]bool
}

func (r *flakyProductRepo) Create(product *model.Product) error {
	if r.failOn[product.Slug] {
		return fmt.Errorf("simulated write failure for %s", product.Slug)
	}
	return r.ProductRepository.Create(product)
}

func (r *flakyProductRepo) Update(product *model.Product) error {
	if r.failOn[product.Slug] {
		return fmt.Errorf("simulated write failure for %s", product.Slug)
	}
	return r.ProductRepository.Update(product)
}

func TestDraftService_PublishAllStopsAtFirstFailure(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	realRepo := repository.NewProductRepository(testDB)
	flaky := &flakyProductRepo{ProductRepository: realRepo, failOn: map[string]bool{"second": true}}
	draftService := NewDraftService(flaky)

	require.NoError(t, draftService.Stage(draftProduct("first", 10.0)))
	require.NoError(t, draftService.Stage(draftProduct("second", 11.0)))
	require.NoError(t, draftService.Stage(draftProduct("third", 12.0)))

	report, err := draftService.PublishAll()
	require.Error(t, err)

	// Fail-fast, no rollback: first is committed, second and third staged
	assert.Equal(t, []string{"first"}, report.Published)
	require.NotNil(t, report.Failed)
	assert.Equal(t, "second", report.Failed.Slug)
	assert.Equal(t, []string{"second", "third"}, report.Remaining)

	_, findErr := realRepo.FindBySlug("first")
	assert.NoError(t, findErr)
	_, findErr = realRepo.FindBySlug("third")
	assert.Error(t, findErr)

	assert.Equal(t, 2, draftService.StagedCount())

	// Clearing the blockage lets the rest go through
	flaky.failOn = nil
	report, err = draftService.PublishAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "third"}, report.Published)
	assert.Equal(t, 0, draftService.StagedCount())
}

func TestDraftService_PublishAllEmptyOverlay(t *testing.T) {
	draftService, _ := setupDraftServiceTest(t)

	report, err := draftService.PublishAll()
	require.NoError(t, err)
	assert.Empty(t, report.Published)
	assert.Nil(t, report.Failed)

	assert.ErrorIs(t, draftService.PublishOne("anything"), ErrDraftNotFound)
}
