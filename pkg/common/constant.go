package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyHomeDBType string = "HOME_DB_TYPE"
	EnvKeyHomeDBPath string = "HOME_DB_PATH"

	EnvKeyHomeHTTPHostPort string = "HOME_HTTP_HOST_PORT"
	EnvKeyCORSOrigins      string = "CORS_ORIGINS"

	EnvKeyHomeDefaultRate  string = "HOME_DEFAULT_RATE"
	EnvKeyHomeDefaultBurst string = "HOME_DEFAULT_BURST"

	LoggerNameHomeCore      string = "home_core"
	LoggerNameRestfulServer string = "restful_server"

	LoggerFieldCategory string = "category"

	LoggerCategoryRoom        string = "room"
	LoggerCategoryDevice      string = "device"
	LoggerCategorySecurity    string = "security"
	LoggerCategoryEnergy      string = "energy"
	LoggerCategoryMedia       string = "media"
	LoggerCategoryPreferences string = "preferences"
	LoggerCategorySeed        string = "seed"
)
