// Package records defines the medical record model searched by chartgrep.
//
// A Record is one patient encounter/appointment together with its
// prescription and billing data, assembled from the remote hospital
// services. Records are immutable from the engine's point of view:
// search and filtering only ever select subsets, they never modify a
// record in place.
//
// Field conventions:
//   - Dates are ISO calendar date strings (YYYY-MM-DD). Times are
//     free-form display strings.
//   - Vital signs are display strings with units embedded ("120/80",
//     "98.6 F") because they are matched as substrings, not compared
//     numerically.
//   - Optional fields are plain strings whose zero value means absent.
//     An absent field never matches a search term and never errors.
package records

import "fmt"

// Payment status values used by the billing service.
const (
	PaymentPaid    = "paid"
	PaymentPending = "pending"
	PaymentOverdue = "overdue"
)

// Record represents a single patient encounter with its associated
// prescription and billing data.
type Record struct {
	ID                 string `json:"id"`
	PrescriptionNumber string `json:"prescriptionNumber"`
	AppointmentNumber  string `json:"appointmentNumber"`
	OfficeID           string `json:"officeId"`

	// Date is an ISO calendar date (YYYY-MM-DD). Time is free-form.
	Date string `json:"date"`
	Time string `json:"time"`

	Status          string `json:"status"`
	Priority        string `json:"priority"`
	AppointmentType string `json:"appointmentType"`
	VisitReason     string `json:"visitReason"`

	Doctor  Doctor  `json:"doctor"`
	Patient Patient `json:"patient"`

	Diagnosis            string   `json:"diagnosis"`
	ClinicalNotes        string   `json:"clinicalNotes,omitempty"`
	TreatmentPlan        string   `json:"treatmentPlan,omitempty"`
	Notes                string   `json:"notes,omitempty"`
	ReferredBy           string   `json:"referredBy"`
	FollowUpInstructions string   `json:"followUpInstructions,omitempty"`
	ICDCodes             []string `json:"icdCodes"`

	VitalSigns  VitalSigns   `json:"vitalSigns"`
	LabResults  []LabResult  `json:"labResults"`
	Medications []Medication `json:"medications"`

	PharmacyName    string `json:"pharmacyName,omitempty"`
	PharmacyAddress string `json:"pharmacyAddress,omitempty"`
	PharmacyPhone   string `json:"pharmacyPhone,omitempty"`
	DispensedBy     string `json:"dispensedBy,omitempty"`

	Billing Billing `json:"billing"`

	HospitalName    string `json:"hospitalName"`
	HospitalAddress string `json:"hospitalAddress"`
	HospitalPhone   string `json:"hospitalPhone"`
}

// Doctor identifies the treating doctor. Many records reference the
// same doctor; the relationship is by ID, not ownership.
type Doctor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Department     string `json:"department"`
	Specialization string `json:"specialization"`
	Qualification  string `json:"mbbs"`
	RegNo          string `json:"regNo"`
	PhoneNumber    string `json:"phoneNumber"`
	Email          string `json:"email"`
}

// Patient holds the patient demographics embedded in a record.
type Patient struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Gender         string    `json:"gender"`
	BloodGroup     string    `json:"bloodGroup"`
	DateOfBirth    string    `json:"dateOfBirth"`
	Address        Address   `json:"address"`
	Insurance      Insurance `json:"insurance"`
	MedicalHistory []string  `json:"medicalHistory"`
	Allergies      []string  `json:"allergies"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

type Insurance struct {
	Provider     string `json:"provider"`
	PolicyNumber string `json:"policyNumber"`
	GroupNumber  string `json:"groupNumber"`
}

// VitalSigns are display strings with units embedded, matched as
// substrings rather than parsed.
type VitalSigns struct {
	BloodPressure    string `json:"bloodPressure"`
	HeartRate        string `json:"heartRate"`
	Temperature      string `json:"temperature"`
	Weight           string `json:"weight"`
	Height           string `json:"height"`
	OxygenSaturation string `json:"oxygenSaturation"`
}

type LabResult struct {
	Test   string `json:"test"`
	Value  string `json:"value"`
	Status string `json:"status"`
}

// Medication is one prescribed item on the record.
type Medication struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	GenericName      string  `json:"genericName"`
	Dosage           string  `json:"dosage"`
	Frequency        string  `json:"frequency"`
	Instructions     string  `json:"instructions"`
	Manufacturer     string  `json:"manufacturer"`
	LotNumber        string  `json:"lotNumber"`
	Quantity         int     `json:"quantity"`
	Duration         string  `json:"duration"`
	RefillsRemaining int     `json:"refillsRemaining"`
	ExpiryDate       string  `json:"expiryDate"`
	TotalPrice       float64 `json:"totalPrice"`
}

// Billing is the billing sub-record for an encounter. When the billing
// service has no bill for an encounter, the assembler substitutes a
// pending zero-amount placeholder (see DefaultBilling).
type Billing struct {
	BillID          string  `json:"billId"`
	BillDate        string  `json:"billDate"`
	ConsultationFee float64 `json:"consultationFee"`
	MedicationTotal float64 `json:"medicationTotal"`
	Subtotal        float64 `json:"subtotal"`
	Discount        float64 `json:"discount"`
	Tax             float64 `json:"tax"`
	FinalAmount     float64 `json:"finalAmount"`
	PaymentStatus   string  `json:"paymentStatus"`
	PaymentMethod   string  `json:"paymentMethod,omitempty"`
	PaymentDate     string  `json:"paymentDate,omitempty"`
	TransactionID   string  `json:"transactionId,omitempty"`
}

// DefaultBilling returns the pending zero-amount billing sub-record
// substituted when no bill exists for an encounter.
func DefaultBilling(billID, billDate string) Billing {
	return Billing{
		BillID:        billID,
		BillDate:      billDate,
		PaymentStatus: PaymentPending,
	}
}

// Validate enforces the required-field contract at the data-model
// boundary. Records missing a required identifier are rejected when
// the collection is assembled, so the search engine never has to
// defend against them. Optional fields are not checked; their zero
// value simply never matches.
func (r *Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("record missing id")
	}
	if r.Date == "" {
		return fmt.Errorf("record %s: missing date", r.ID)
	}
	if r.Doctor.ID == "" {
		return fmt.Errorf("record %s: missing doctor id", r.ID)
	}
	if r.Patient.ID == "" {
		return fmt.Errorf("record %s: missing patient id", r.ID)
	}
	return nil
}

// NewCollection validates records at the boundary and returns them as
// an ordered collection. Order is preserved; the engine relies on it
// for stable search results.
func NewCollection(recs []Record) ([]Record, error) {
	for i := range recs {
		if err := recs[i].Validate(); err != nil {
			return nil, fmt.Errorf("building collection: %w", err)
		}
	}
	return recs, nil
}

// Summary returns a concise one-line description of the record for
// compact listings.
func (r *Record) Summary() string {
	return fmt.Sprintf("%s %s %s with %s (%s)", r.Date, r.Time, r.Patient.Name, r.Doctor.Name, r.Doctor.Department)
}
