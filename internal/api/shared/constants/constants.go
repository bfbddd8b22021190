package constants

const (
	MAX_USER_ADS_PER_BOARD = 100
	SERVICE_NAME           = "evoq-api"
	REQUEST_ID_HEADER      = "X-Request-ID"
)
