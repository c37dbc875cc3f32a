package constants

const (
	MAX_PAGE_SIZE           = 100
	DEFAULT_PAGE_SIZE       = 25
	MAX_UPLOAD_FILES        = 10
	DEFAULT_MAX_UPLOAD_SIZE = int64(32 << 20) // bytes
	MAX_SUPPLY_CHANGE       = int64(1_000_000_000)
	PROPERTY_IMAGE_FIELD    = "image"
	PROPERTY_MEDIA_FIELD    = "media"
	CONTENT_FILE_FIELD      = "file"
	HEALTH_SERVICE_NAME     = "proptoken-api"
)
