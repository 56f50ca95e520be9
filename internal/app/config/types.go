package config

type (
	InternalConfig struct {
		App  App
		FHIR FHIR
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env      string
		Version  string
		Timezone string
	}

	FHIR struct {
		BaseUrl                 string
		RequestTimeoutInSeconds int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
