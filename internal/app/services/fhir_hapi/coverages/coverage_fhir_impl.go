package coverages

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"padron-service/internal/app/contracts"
	"padron-service/internal/pkg/constvars"
	"padron-service/internal/pkg/exceptions"
	"padron-service/internal/pkg/fhir_dto"
	"padron-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	coverageFhirClientInstance contracts.CoverageFhirClient
	onceCoverageFhirClient     sync.Once
)

type coverageFhirClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewCoverageFhirClient(baseUrl string, requestTimeout time.Duration, logger *zap.Logger) contracts.CoverageFhirClient {
	onceCoverageFhirClient.Do(func() {
		coverageFhirClientInstance = &coverageFhirClient{
			BaseUrl:    fmt.Sprintf("%s/%s", baseUrl, constvars.ResourceCoverage),
			HTTPClient: &http.Client{Timeout: requestTimeout},
			Log:        logger,
		}
	})
	return coverageFhirClientInstance
}

func (c *coverageFhirClient) CreateCoverage(ctx context.Context, request *fhir_dto.Coverage) (*fhir_dto.Coverage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("coverageFhirClient.CreateCoverage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("coverageFhirClient.CreateCoverage error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, sendError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated && resp.StatusCode != constvars.StatusOK {
		return nil, c.failure(requestID, "coverageFhirClient.CreateCoverage", resp)
	}

	coverageFhir := new(fhir_dto.Coverage)
	if err := json.NewDecoder(resp.Body).Decode(coverageFhir); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceCoverage)
	}

	c.Log.Info("coverageFhirClient.CreateCoverage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCoverageIDKey, coverageFhir.ID),
	)
	return coverageFhir, nil
}

func (c *coverageFhirClient) UpdateCoverage(ctx context.Context, request *fhir_dto.Coverage) (*fhir_dto.Coverage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("coverageFhirClient.UpdateCoverage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCoverageIDKey, request.ID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPut, fmt.Sprintf("%s/%s", c.BaseUrl, request.ID), bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("coverageFhirClient.UpdateCoverage error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, sendError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, c.failure(requestID, "coverageFhirClient.UpdateCoverage", resp)
	}

	coverageFhir := new(fhir_dto.Coverage)
	if err := json.NewDecoder(resp.Body).Decode(coverageFhir); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceCoverage)
	}

	c.Log.Info("coverageFhirClient.UpdateCoverage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCoverageIDKey, coverageFhir.ID),
	)
	return coverageFhir, nil
}

func (c *coverageFhirClient) DeleteCoverageByID(ctx context.Context, coverageID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("coverageFhirClient.DeleteCoverageByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCoverageIDKey, coverageID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodDelete, fmt.Sprintf("%s/%s", c.BaseUrl, coverageID), nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("coverageFhirClient.DeleteCoverageByID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return sendError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusNoContent {
		return c.failure(requestID, "coverageFhirClient.DeleteCoverageByID", resp)
	}

	c.Log.Info("coverageFhirClient.DeleteCoverageByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCoverageIDKey, coverageID),
	)
	return nil
}

func (c *coverageFhirClient) FindCoverageByID(ctx context.Context, coverageID string) (*fhir_dto.Coverage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("coverageFhirClient.FindCoverageByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCoverageIDKey, coverageID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", c.BaseUrl, coverageID), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("coverageFhirClient.FindCoverageByID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, sendError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.failure(requestID, "coverageFhirClient.FindCoverageByID", resp)
	}

	coverageFhir := new(fhir_dto.Coverage)
	if err := json.NewDecoder(resp.Body).Decode(coverageFhir); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceCoverage)
	}

	return coverageFhir, nil
}

func (c *coverageFhirClient) FindCoverageByBeneficiary(ctx context.Context, beneficiaryType, beneficiaryID string) ([]fhir_dto.Coverage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("coverageFhirClient.FindCoverageByBeneficiary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, beneficiaryID),
	)

	searchURL := fmt.Sprintf("%s?beneficiary=%s", c.BaseUrl, url.QueryEscape(fmt.Sprintf("%s/%s", beneficiaryType, beneficiaryID)))
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, searchURL, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("coverageFhirClient.FindCoverageByBeneficiary error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, sendError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.failure(requestID, "coverageFhirClient.FindCoverageByBeneficiary", resp)
	}

	var bundle fhir_dto.Bundle
	if err := json.NewDecoder(resp.Body).Decode(&bundle); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceCoverage)
	}

	coverages := make([]fhir_dto.Coverage, 0, len(bundle.Entry))
	for i, entry := range bundle.Entry {
		coverage, ok := c.decodeEntry(requestID, i, entry.Resource)
		if !ok {
			continue
		}
		coverages = append(coverages, coverage)
	}

	c.Log.Info("coverageFhirClient.FindCoverageByBeneficiary succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCoverageCountKey, len(coverages)),
	)
	return coverages, nil
}

// sendError distinguishes a blown timeout from other transport failures so
// the operator is told the repository was slow rather than broken.
func sendError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return exceptions.ErrSendHTTPRequest(err)
}

// decodeEntry parses a single bundle entry. Entries without a kind are
// repaired to kind "insurance" before decoding; entries that still fail to
// parse or fail schema validation are dropped from the listing instead of
// failing it.
func (c *coverageFhirClient) decodeEntry(requestID string, index int, raw json.RawMessage) (fhir_dto.Coverage, bool) {
	var fieldSet map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fieldSet); err != nil {
		c.Log.Warn("coverageFhirClient.FindCoverageByBeneficiary skipping unreadable entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int("entry_index", index),
			zap.Error(err),
		)
		return fhir_dto.Coverage{}, false
	}

	if _, hasKind := fieldSet["kind"]; !hasKind {
		fieldSet["kind"] = json.RawMessage(strconv.Quote(constvars.FhirCoverageKindInsurance))
	}

	repaired, err := json.Marshal(fieldSet)
	if err != nil {
		return fhir_dto.Coverage{}, false
	}

	var coverage fhir_dto.Coverage
	if err := json.Unmarshal(repaired, &coverage); err != nil {
		c.Log.Warn("coverageFhirClient.FindCoverageByBeneficiary skipping malformed entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int("entry_index", index),
			zap.Error(err),
		)
		return fhir_dto.Coverage{}, false
	}
	if err := utils.ValidateStruct(coverage); err != nil {
		c.Log.Warn("coverageFhirClient.FindCoverageByBeneficiary skipping invalid entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int("entry_index", index),
			zap.Error(err),
		)
		return fhir_dto.Coverage{}, false
	}
	return coverage, true
}

func (c *coverageFhirClient) failure(requestID, operation string, resp *http.Response) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrReadResponseBody(err)
	}

	detail := string(bodyBytes)
	var outcome fhir_dto.OperationOutcome
	if err := json.Unmarshal(bodyBytes, &outcome); err == nil && len(outcome.Issue) > 0 {
		detail = outcome.Issue[0].Diagnostics
	}

	c.Log.Error(operation+" repository rejected the request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.String("detail", detail),
	)
	return exceptions.ErrUnexpectedStatus(constvars.ResourceCoverage, resp.StatusCode, detail)
}
