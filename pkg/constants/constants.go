package constants

const (
	CHANNEL_SIZE               = 100 // per-subscriber event buffer
	REDIS_TIMEOUT              = 30  // cache ttl (minutes)
	REFRESH_TOKEN_EXPIRY_HOURS = 168 // 7 days
	SEARCH_LIMIT               = 10  // max profiles returned by user search
	HISTORY_LIMIT              = 50  // max call records per history fetch
	INVITE_CODE_LENGTH         = 8
	INVITE_CODE_RETRIES        = 3
)

// Redis key prefixes
const (
	SESSION_TOKEN_PREFIX = "user_token:"      // + userId -> current token id
	CONTACT_IDS_PREFIX   = "contact_ids:"     // + userId -> set of contact ids
	CONTACT_VER_PREFIX   = "contact_ids_ver:" // + userId -> bumped on every add
)

// Gate targets
const (
	AUTH_PATH      = "/auth"
	DASHBOARD_PATH = "/dashboard"
)
