// Package assemble builds the in-memory record collection by merging
// the appointment feed with per-encounter billing lookups.
package assemble

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/chartgrep/chartgrep/pkg/config"
	"github.com/chartgrep/chartgrep/pkg/hospital"
	"github.com/chartgrep/chartgrep/pkg/log"
	"github.com/chartgrep/chartgrep/pkg/records"
)

// Assembler merges appointments and billing into complete records and
// stamps the hospital identity on each one.
type Assembler struct {
	client   *hospital.Client
	hospital config.HospitalInfo
	logger   *log.Logger
}

// NewAssembler creates an assembler over the given hospital client.
func NewAssembler(client *hospital.Client, info config.HospitalInfo) *Assembler {
	return &Assembler{
		client:   client,
		hospital: info,
		logger:   log.ForService("assemble"),
	}
}

// Assemble fetches every appointment, attaches its bill (or a pending
// zero-amount placeholder when the billing service has none) and
// returns the ordered collection. Records failing the required-field
// contract are skipped with a warning instead of aborting the refresh.
func (a *Assembler) Assemble(ctx context.Context) ([]records.Record, error) {
	appts, err := a.client.Appointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("assembling records: %w", err)
	}

	out := make([]records.Record, 0, len(appts))
	for i := range appts {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		r := appts[i]
		if err := r.Validate(); err != nil {
			a.logger.Warnf("skipping malformed appointment: %v", err)
			continue
		}

		bill, err := a.client.Billing(ctx, r.ID)
		switch {
		case errors.Is(err, hospital.ErrNoBilling):
			bill = records.DefaultBilling("BILL-"+uuid.NewString(), r.Date)
		case err != nil:
			return nil, fmt.Errorf("assembling records: %w", err)
		}
		r.Billing = bill

		r.HospitalName = a.hospital.Name
		r.HospitalAddress = a.hospital.Address
		r.HospitalPhone = a.hospital.Phone

		out = append(out, r)
	}

	a.logger.Infof("assembled %d records from %d appointments", len(out), len(appts))
	return out, nil
}
