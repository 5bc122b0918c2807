package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL.
// The admin UI maps these codes to display messages.

const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"
	ValidationInvalidSlug   = "VALIDATION_INVALID_SLUG"
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT"
	ValidationInvalidRange  = "VALIDATION_INVALID_RANGE"
	ValidationRequired      = "VALIDATION_REQUIRED"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Products (PRODUCT_) ====================
	ProductNotFound      = "PRODUCT_NOT_FOUND"
	ProductSlugExists    = "PRODUCT_SLUG_EXISTS"
	ProductNoVariants    = "PRODUCT_NO_VARIANTS"
	ProductInvalidStock  = "PRODUCT_INVALID_STOCK"

	// ==================== Materials (MATERIAL_) ====================
	MaterialNotFound  = "MATERIAL_NOT_FOUND"
	MaterialKeyExists = "MATERIAL_KEY_EXISTS"
	ScentNotFound     = "SCENT_NOT_FOUND"
	ContainerNotFound = "CONTAINER_NOT_FOUND"

	// ==================== Batch (BATCH_) ====================
	BatchScentMismatch = "BATCH_SCENT_MISMATCH"
	BatchItemNotFound  = "BATCH_ITEM_NOT_FOUND"
	BatchNotEmpty      = "BATCH_NOT_EMPTY"

	// ==================== Drafts (DRAFT_) ====================
	DraftNotFound      = "DRAFT_NOT_FOUND"
	DraftPublishFailed = "DRAFT_PUBLISH_FAILED"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
