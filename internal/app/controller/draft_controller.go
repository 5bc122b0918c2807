package controller

import (
	"errors"
	"net/http"

	"github.com/dcwlabs/candleworks-backend/internal/app/service"
	apperrors "github.com/dcwlabs/candleworks-backend/internal/errors"
	"github.com/dcwlabs/candleworks-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// DraftController manages the staging overlay: product edits held in memory
// until explicitly published to the catalog.
type DraftController struct {
	draftService service.DraftService
}

func NewDraftController(draftService service.DraftService) *DraftController {
	return &DraftController{draftService: draftService}
}

// GET /api/v1/drafts
func (ctrl *DraftController) ListDrafts(c *gin.Context) {
	drafts := ctrl.draftService.List()
	c.JSON(http.StatusOK, gin.H{"drafts": drafts, "count": len(drafts)})
}

// PUT /api/v1/drafts/:slug
func (ctrl *DraftController) StageDraft(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	slug := c.Param("slug")

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}
	if req.Slug != slug {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Body slug must match URL slug")
		return
	}
	if fields := req.validateStocks(); fields != nil {
		apperrors.RespondWithValidationError(c, fields)
		return
	}

	product := req.ToModel()
	if err := ctrl.draftService.Stage(product); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSlug):
			apperrors.BadRequest(c, apperrors.ValidationInvalidSlug, err.Error())
		case errors.Is(err, service.ErrInvalidPrice):
			apperrors.BadRequest(c, apperrors.ValidationInvalidRange, err.Error())
		default:
			log.Error("Failed to stage draft", err, map[string]interface{}{
				"slug": slug,
			})
			apperrors.InternalError(c, "Failed to stage draft")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"staged": slug, "staged_count": ctrl.draftService.StagedCount()})
}

// DELETE /api/v1/drafts/:slug
func (ctrl *DraftController) DiscardDraft(c *gin.Context) {
	slug := c.Param("slug")
	if _, ok := ctrl.draftService.Get(slug); !ok {
		apperrors.NotFound(c, apperrors.DraftNotFound, "No draft staged for this product")
		return
	}
	ctrl.draftService.Discard(slug)
	c.JSON(http.StatusOK, gin.H{"discarded": slug, "staged_count": ctrl.draftService.StagedCount()})
}

// POST /api/v1/drafts/:slug/publish
func (ctrl *DraftController) PublishDraft(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	slug := c.Param("slug")

	if err := ctrl.draftService.PublishOne(slug); err != nil {
		if errors.Is(err, service.ErrDraftNotFound) {
			apperrors.NotFound(c, apperrors.DraftNotFound, "No draft staged for this product")
			return
		}
		log.Error("Failed to publish draft", err, map[string]interface{}{
			"slug": slug,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError,
			apperrors.DraftPublishFailed, "Failed to publish draft")
		return
	}

	c.JSON(http.StatusOK, gin.H{"published": slug, "staged_count": ctrl.draftService.StagedCount()})
}

// POST /api/v1/drafts/publish
//
// Publishes staged drafts in staging order and stops at the first failure.
// Drafts published before the failure stay committed; the failing draft and
// everything after it remain staged. The report spells out all three sets.
func (ctrl *DraftController) PublishAll(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	report, err := ctrl.draftService.PublishAll()
	if err != nil {
		log.Error("Publish-all stopped on failure", err, map[string]interface{}{
			"published": len(report.Published),
			"remaining": len(report.Remaining),
		})
		c.JSON(http.StatusMultiStatus, gin.H{"report": report})
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}
