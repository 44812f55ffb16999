// Package hospital provides HTTP clients for the remote REST services
// the record collection is assembled from: appointments, patients,
// billing and doctors. The package owns no state beyond the HTTP
// client; retries and refresh policy belong to the store's scheduler.
package hospital

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/chartgrep/chartgrep/pkg/config"
	"github.com/chartgrep/chartgrep/pkg/log"
	"github.com/chartgrep/chartgrep/pkg/records"
)

// ErrNoBilling is returned by Billing when the billing service has no
// bill for an appointment. The assembler substitutes a pending
// zero-amount placeholder in that case.
var ErrNoBilling = errors.New("no billing record for appointment")

// Client talks to the four hospital services.
type Client struct {
	services config.ServicesConfig
	client   *http.Client
	logger   *log.Logger
}

// NewClient creates a client for the configured service base URLs.
func NewClient(services config.ServicesConfig, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		services: services,
		client:   &http.Client{Timeout: timeout},
		logger:   log.ForService("hospital"),
	}
}

// Appointments fetches every encounter from the appointments service.
// The payload carries the prescription data but no billing sub-record;
// the assembler attaches billing separately.
func (c *Client) Appointments(ctx context.Context) ([]records.Record, error) {
	var recs []records.Record
	u := c.services.AppointmentsURL + "/api/appointments"
	if err := c.getJSON(ctx, u, &recs); err != nil {
		return nil, fmt.Errorf("fetching appointments: %w", err)
	}
	c.logger.Debugf("fetched %d appointments", len(recs))
	return recs, nil
}

// Billing looks up the bill for one appointment. Returns ErrNoBilling
// when the billing service answers 404.
func (c *Client) Billing(ctx context.Context, appointmentID string) (records.Billing, error) {
	var bill records.Billing
	u := c.services.BillingURL + "/api/billing/appointment/" + url.PathEscape(appointmentID)
	err := c.getJSON(ctx, u, &bill)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return records.Billing{}, ErrNoBilling
		}
		return records.Billing{}, fmt.Errorf("fetching billing for %s: %w", appointmentID, err)
	}
	return bill, nil
}

// Patient looks up one patient by ID from the patients service.
func (c *Client) Patient(ctx context.Context, patientID string) (records.Patient, error) {
	var patient records.Patient
	u := c.services.PatientsURL + "/api/patients/" + url.PathEscape(patientID)
	if err := c.getJSON(ctx, u, &patient); err != nil {
		return records.Patient{}, fmt.Errorf("fetching patient %s: %w", patientID, err)
	}
	return patient, nil
}

// Doctors fetches the doctor directory used by the filter controls.
func (c *Client) Doctors(ctx context.Context) ([]records.Doctor, error) {
	var doctors []records.Doctor
	u := c.services.DoctorsURL + "/api/doctors"
	if err := c.getJSON(ctx, u, &doctors); err != nil {
		return nil, fmt.Errorf("fetching doctors: %w", err)
	}
	return doctors, nil
}

// errNotFound distinguishes 404 responses so callers can map them to
// domain errors like ErrNoBilling.
var errNotFound = errors.New("not found")

func (c *Client) getJSON(ctx context.Context, rawURL string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", rawURL, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("closing response body: %v", err)
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response from %s: %w", rawURL, err)
	}
	return nil
}
