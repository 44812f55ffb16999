package search

import (
	"strings"

	"github.com/chartgrep/chartgrep/pkg/records"
)

// Matcher decides whether a record matches a free-text search term.
// The term is pre-lowercased and trimmed by the caller.
//
// SubstringMatcher is the default implementation; the interface exists
// so a large deployment can swap in an index-backed matcher without
// touching the Service contract.
type Matcher interface {
	Matches(r *records.Record, term string) bool
}

// SubstringMatcher matches a term as a case-insensitive substring
// across a fixed, ordered set of record fields. The scan short-circuits
// on the first hit; there is no weighting or ranking.
type SubstringMatcher struct{}

// NewSubstringMatcher returns the default field matcher.
func NewSubstringMatcher() *SubstringMatcher {
	return &SubstringMatcher{}
}

// contains reports whether field contains term, case-insensitively.
// An empty (absent) field never contains a non-empty term, so optional
// fields need no special handling here.
func contains(field, term string) bool {
	return strings.Contains(strings.ToLower(field), term)
}

func anyContains(fields []string, term string) bool {
	for _, f := range fields {
		if contains(f, term) {
			return true
		}
	}
	return false
}

// Matches scans the record's searchable fields in a fixed order:
// identifiers and status, doctor, patient, insurance, history and
// allergies, clinical text and codes, vital signs, lab results,
// medications, pharmacy, billing identifiers, hospital contact.
func (m *SubstringMatcher) Matches(r *records.Record, term string) bool {
	// Identifiers and status. The date is matched as a raw substring,
	// not parsed; date-literal queries never reach the matcher.
	if contains(r.PrescriptionNumber, term) ||
		contains(r.Date, term) ||
		contains(r.Time, term) ||
		contains(r.Status, term) ||
		contains(r.Priority, term) ||
		contains(r.AppointmentType, term) ||
		contains(r.VisitReason, term) ||
		contains(r.OfficeID, term) ||
		contains(r.AppointmentNumber, term) {
		return true
	}

	d := &r.Doctor
	if contains(d.Name, term) ||
		contains(d.Department, term) ||
		contains(d.Specialization, term) ||
		contains(d.Qualification, term) ||
		contains(d.RegNo, term) ||
		contains(d.PhoneNumber, term) ||
		contains(d.Email, term) {
		return true
	}

	p := &r.Patient
	if contains(p.Name, term) ||
		contains(p.ID, term) ||
		contains(p.Email, term) ||
		contains(p.Phone, term) ||
		contains(p.Gender, term) ||
		contains(p.BloodGroup, term) ||
		contains(p.DateOfBirth, term) ||
		contains(p.Address.Street, term) ||
		contains(p.Address.City, term) ||
		contains(p.Address.State, term) ||
		contains(p.Address.ZipCode, term) {
		return true
	}

	if contains(p.Insurance.Provider, term) ||
		contains(p.Insurance.PolicyNumber, term) ||
		contains(p.Insurance.GroupNumber, term) {
		return true
	}

	if anyContains(p.MedicalHistory, term) || anyContains(p.Allergies, term) {
		return true
	}

	if contains(r.Diagnosis, term) ||
		anyContains(r.ICDCodes, term) ||
		contains(r.ClinicalNotes, term) ||
		contains(r.TreatmentPlan, term) ||
		contains(r.Notes, term) ||
		contains(r.ReferredBy, term) ||
		contains(r.FollowUpInstructions, term) {
		return true
	}

	v := &r.VitalSigns
	if contains(v.BloodPressure, term) ||
		contains(v.HeartRate, term) ||
		contains(v.Temperature, term) ||
		contains(v.Weight, term) ||
		contains(v.Height, term) ||
		contains(v.OxygenSaturation, term) {
		return true
	}

	for i := range r.LabResults {
		lr := &r.LabResults[i]
		if contains(lr.Test, term) || contains(lr.Value, term) || contains(lr.Status, term) {
			return true
		}
	}

	for i := range r.Medications {
		med := &r.Medications[i]
		if contains(med.Name, term) ||
			contains(med.GenericName, term) ||
			contains(med.Dosage, term) ||
			contains(med.Frequency, term) ||
			contains(med.Instructions, term) ||
			contains(med.Manufacturer, term) ||
			contains(med.LotNumber, term) {
			return true
		}
	}

	if contains(r.PharmacyName, term) ||
		contains(r.PharmacyAddress, term) ||
		contains(r.PharmacyPhone, term) ||
		contains(r.DispensedBy, term) {
		return true
	}

	b := &r.Billing
	if contains(b.BillID, term) ||
		contains(b.PaymentStatus, term) ||
		contains(b.PaymentMethod, term) ||
		contains(b.TransactionID, term) {
		return true
	}

	return contains(r.HospitalName, term) ||
		contains(r.HospitalAddress, term) ||
		contains(r.HospitalPhone, term)
}
