package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"padron-service/internal/app/config"
	"padron-service/internal/app/delivery/console"
	"padron-service/internal/app/drivers/logger"
	"padron-service/internal/app/services/coverages"
	fhircoverages "padron-service/internal/app/services/fhir_hapi/coverages"
	fhirpatients "padron-service/internal/app/services/fhir_hapi/patients"
	"padron-service/internal/app/services/patients"
	"padron-service/internal/pkg/constvars"
	"padron-service/internal/pkg/utils"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewBootstrapLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	requestTimeout := time.Duration(internalConfig.FHIR.RequestTimeoutInSeconds) * time.Second
	patientFhirClient := fhirpatients.NewPatientFhirClient(internalConfig.FHIR.BaseUrl, requestTimeout, zapLogger)
	coverageFhirClient := fhircoverages.NewCoverageFhirClient(internalConfig.FHIR.BaseUrl, requestTimeout, zapLogger)

	prompter := console.NewPrompter(os.Stdin, os.Stdout)

	patientUsecase := patients.NewPatientUsecase(
		patientFhirClient,
		prompter,
		constvars.FhirNationalIDSystem,
		zapLogger,
	)
	coverageUsecase := coverages.NewCoverageUsecase(
		coverageFhirClient,
		patientFhirClient,
		prompter,
		constvars.FhirNationalIDSystem,
		utils.NewCoverageDefaults(),
		zapLogger,
	)

	menu := console.NewMenu(patientUsecase, coverageUsecase, prompter, os.Stdout, zapLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infof("Console started against %s", internalConfig.FHIR.BaseUrl)
	if err := menu.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Console terminated: %v", err)
	}
	log.Info("Console closed")
}
