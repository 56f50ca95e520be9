package config

import (
	"padron-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "padron.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "padron_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:      utils.GetEnvString("APP_ENV", "development"),
			Version:  utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone: utils.GetEnvString("APP_TIMEZONE", "America/Argentina/Buenos_Aires"),
		},
		FHIR: FHIR{
			BaseUrl:                 utils.GetEnvString("FHIR_BASE_URL", "http://hapi.fhir.org/baseR4"),
			RequestTimeoutInSeconds: utils.GetEnvInt("FHIR_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
	}
}
