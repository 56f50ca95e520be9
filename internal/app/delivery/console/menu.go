package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"padron-service/internal/app/contracts"
	"padron-service/internal/pkg/constvars"
	"padron-service/internal/pkg/dto/responses"
	"padron-service/internal/pkg/exceptions"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Menu struct {
	PatientUsecase  contracts.PatientUsecase
	CoverageUsecase contracts.CoverageUsecase
	Prompter        *Prompter
	Out             io.Writer
	Log             *zap.Logger

	success *color.Color
	failure *color.Color
	notice  *color.Color
}

func NewMenu(
	patientUsecase contracts.PatientUsecase,
	coverageUsecase contracts.CoverageUsecase,
	prompter *Prompter,
	out io.Writer,
	logger *zap.Logger,
) *Menu {
	return &Menu{
		PatientUsecase:  patientUsecase,
		CoverageUsecase: coverageUsecase,
		Prompter:        prompter,
		Out:             out,
		Log:             logger,
		success:         color.New(color.FgGreen),
		failure:         color.New(color.FgRed),
		notice:          color.New(color.FgYellow),
	}
}

// Run drives the operator loop until exit is chosen, input ends, or the
// context is cancelled. A failed operation is reported and the loop keeps
// offering the menu; nothing propagates past the current operation.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.Out, "Patient and coverage registry console")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(m.Out, "\nSelect an option:")
		fmt.Fprintln(m.Out, "1. Create or edit a patient")
		fmt.Fprintln(m.Out, "2. Search a patient by national identifier")
		fmt.Fprintln(m.Out, "3. Add, edit or remove a patient's coverage")
		fmt.Fprintln(m.Out, "4. List a patient's coverages")
		fmt.Fprintln(m.Out, "5. Exit")

		choice, err := m.Prompter.readLine("Enter your choice (1-5): ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		opCtx := context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, uuid.NewString())
		switch choice {
		case "1":
			m.report(m.upsertPatient(opCtx))
		case "2":
			m.report(m.searchPatient(opCtx))
		case "3":
			m.report(m.upsertCoverage(opCtx))
		case "4":
			m.report(m.listCoverages(opCtx))
		case "5":
			fmt.Fprintln(m.Out, "Leaving the console...")
			return nil
		default:
			m.notice.Fprintln(m.Out, "Invalid option, try again.")
		}
	}
}

// report shows the outcome of one menu operation. Input ending aborts the
// whole loop upstream; every other error is shown and swallowed here.
func (m *Menu) report(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, io.EOF) {
		return
	}
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		m.failure.Fprintln(m.Out, customErr.ClientMessage)
		m.Log.Error("menu operation failed", zap.Error(err))
		return
	}
	m.failure.Fprintln(m.Out, "The operation failed.")
	m.Log.Error("menu operation failed", zap.Error(err))
}

func (m *Menu) upsertPatient(ctx context.Context) error {
	nationalID, err := m.Prompter.InputNationalID()
	if err != nil {
		return err
	}

	outcome, err := m.PatientUsecase.UpsertPatient(ctx, nationalID)
	if err != nil {
		return err
	}

	switch outcome.Action {
	case responses.ActionAborted:
		m.notice.Fprintln(m.Out, "Operation cancelled, nothing was changed.")
	case responses.ActionCreated:
		m.success.Fprintln(m.Out, "Patient created successfully.")
		RenderResourceDetails(m.Out, outcome.Patient)
	case responses.ActionUpdated:
		m.success.Fprintln(m.Out, "Patient updated successfully.")
		RenderResourceDetails(m.Out, outcome.Patient)
	}
	return nil
}

func (m *Menu) searchPatient(ctx context.Context) error {
	nationalID, err := m.Prompter.InputNationalID()
	if err != nil {
		return err
	}

	patients, err := m.PatientUsecase.SearchPatientByNationalID(ctx, nationalID)
	if err != nil {
		return err
	}

	switch {
	case len(patients) == 0:
		m.notice.Fprintf(m.Out, "No patient found with identifier %s.\n", nationalID)
	case len(patients) > 1:
		m.notice.Fprintf(m.Out, "Multiple patients found with identifier %s:\n", nationalID)
		RenderPatients(m.Out, patients)
	default:
		m.success.Fprintf(m.Out, "Patient found with identifier %s:\n", nationalID)
		RenderPatients(m.Out, patients)
	}
	return nil
}

func (m *Menu) upsertCoverage(ctx context.Context) error {
	nationalID, err := m.Prompter.InputNationalID()
	if err != nil {
		return err
	}

	outcome, err := m.CoverageUsecase.UpsertCoverage(ctx, nationalID)
	if err != nil {
		return err
	}

	switch outcome.Action {
	case responses.ActionDeleted:
		m.success.Fprintf(m.Out, "Coverage %s deleted successfully.\n", outcome.DeletedCoverageID)
	case responses.ActionCreated:
		m.success.Fprintln(m.Out, "Coverage created successfully.")
		RenderResourceDetails(m.Out, outcome.Coverage)
	case responses.ActionUpdated:
		m.success.Fprintln(m.Out, "Coverage updated successfully.")
		RenderResourceDetails(m.Out, outcome.Coverage)
	}
	return nil
}

func (m *Menu) listCoverages(ctx context.Context) error {
	nationalID, err := m.Prompter.InputNationalID()
	if err != nil {
		return err
	}

	coverages, err := m.CoverageUsecase.ListCoveragesForPatient(ctx, nationalID)
	if err != nil {
		return err
	}

	if len(coverages) == 0 {
		m.notice.Fprintf(m.Out, "No coverages found for the patient with identifier %s.\n", nationalID)
		return nil
	}
	m.success.Fprintf(m.Out, "Coverages for the patient with identifier %s:\n", nationalID)
	RenderCoverages(m.Out, coverages)
	return nil
}
