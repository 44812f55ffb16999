package search

import "github.com/chartgrep/chartgrep/pkg/records"

// sampleRecords returns a small collection exercising the field groups
// the matcher scans. Order matters: tests assert that search results
// preserve it.
func sampleRecords() []records.Record {
	return []records.Record{
		{
			ID:                 "rx-001",
			PrescriptionNumber: "RX-2025-001",
			AppointmentNumber:  "APT-1001",
			OfficeID:           "OFF-NORTH",
			Date:               "2025-07-26",
			Time:               "09:30 AM",
			Status:             "completed",
			Priority:           "routine",
			AppointmentType:    "consultation",
			VisitReason:        "chest pain",
			Doctor: records.Doctor{
				ID:             "doc-1",
				Name:           "Dr. Asha Rao",
				Department:     "Cardiology",
				Specialization: "Interventional Cardiology",
				Qualification:  "MBBS, MD",
				RegNo:          "REG-4411",
				PhoneNumber:    "555-0101",
				Email:          "asha.rao@stmarys.example",
			},
			Patient: records.Patient{
				ID:          "pat-1",
				Name:        "John Mercer",
				Email:       "john.mercer@example.com",
				Phone:       "555-0199",
				Gender:      "male",
				BloodGroup:  "O+",
				DateOfBirth: "1980-03-14",
				Address: records.Address{
					Street:  "12 Elm Street",
					City:    "Springfield",
					State:   "IL",
					ZipCode: "62704",
				},
				Insurance: records.Insurance{
					Provider:     "Acme Health",
					PolicyNumber: "POL-889900",
					GroupNumber:  "GRP-77",
				},
				MedicalHistory: []string{"hypertension", "type 2 diabetes"},
				Allergies:      []string{"penicillin"},
			},
			Diagnosis:     "stable angina",
			ClinicalNotes: "ECG shows minor ST depression",
			TreatmentPlan: "start beta blocker, review in 4 weeks",
			ReferredBy:    "Dr. Olsen",
			ICDCodes:      []string{"I20.9"},
			VitalSigns: records.VitalSigns{
				BloodPressure:    "140/90 mmHg",
				HeartRate:        "88 bpm",
				Temperature:      "98.6 F",
				Weight:           "82 kg",
				Height:           "178 cm",
				OxygenSaturation: "97%",
			},
			LabResults: []records.LabResult{
				{Test: "Troponin I", Value: "0.02 ng/mL", Status: "normal"},
			},
			Medications: []records.Medication{
				{
					ID: "med-1", Name: "Atenolol 50mg", GenericName: "atenolol",
					Dosage: "50mg", Frequency: "once daily",
					Instructions: "take with food", Manufacturer: "Cipla",
					LotNumber: "LOT-A1", Quantity: 30, Duration: "30 days",
					RefillsRemaining: 2, ExpiryDate: "2026-01-01", TotalPrice: 12.50,
				},
			},
			PharmacyName: "Springfield Central Pharmacy",
			Billing: records.Billing{
				BillID: "BILL-001", BillDate: "2025-07-26",
				ConsultationFee: 150, Subtotal: 162.50, Tax: 13,
				FinalAmount: 175.50, PaymentStatus: records.PaymentPaid,
				PaymentMethod: "card", TransactionID: "TXN-9001",
			},
			HospitalName:    "St. Mary's General",
			HospitalAddress: "1 Hospital Way, Springfield",
			HospitalPhone:   "555-0100",
		},
		{
			ID:                 "rx-002",
			PrescriptionNumber: "RX-2025-002",
			AppointmentNumber:  "APT-1002",
			OfficeID:           "OFF-SOUTH",
			Date:               "2025-07-27",
			Time:               "02:15 PM",
			Status:             "completed",
			Priority:           "urgent",
			AppointmentType:    "follow-up",
			VisitReason:        "fever and headache",
			Doctor: records.Doctor{
				ID:             "doc-2",
				Name:           "Dr. Ben Ward",
				Department:     "General Medicine",
				Specialization: "Internal Medicine",
				Qualification:  "MBBS",
				RegNo:          "REG-5522",
				PhoneNumber:    "555-0102",
				Email:          "ben.ward@stmarys.example",
			},
			Patient: records.Patient{
				ID:          "pat-2",
				Name:        "Lena Ortiz",
				Email:       "lena.ortiz@example.com",
				Phone:       "555-0244",
				Gender:      "female",
				BloodGroup:  "A-",
				DateOfBirth: "1992-11-02",
				Address: records.Address{
					Street:  "88 Oak Avenue",
					City:    "Riverton",
					State:   "IL",
					ZipCode: "62561",
				},
				Insurance: records.Insurance{
					Provider:     "Unity Care",
					PolicyNumber: "POL-112233",
					GroupNumber:  "GRP-12",
				},
				Allergies: []string{"sulfa drugs"},
			},
			// ClinicalNotes deliberately absent: optional-field safety.
			Diagnosis:  "viral fever",
			ReferredBy: "walk-in",
			ICDCodes:   []string{"R50.9"},
			VitalSigns: records.VitalSigns{
				BloodPressure:    "118/76 mmHg",
				HeartRate:        "96 bpm",
				Temperature:      "101.2 F",
				Weight:           "61 kg",
				Height:           "165 cm",
				OxygenSaturation: "98%",
			},
			Medications: []records.Medication{
				{
					ID: "med-2", Name: "Paracetamol 500mg", GenericName: "acetaminophen",
					Dosage: "500mg", Frequency: "every 6 hours",
					Instructions: "max 4 doses per day", Manufacturer: "GSK",
					LotNumber: "LOT-B7", Quantity: 20, Duration: "5 days",
					RefillsRemaining: 0, ExpiryDate: "2027-05-01", TotalPrice: 4.20,
				},
			},
			Billing: records.Billing{
				BillID: "BILL-002", BillDate: "2025-07-27",
				ConsultationFee: 90, Subtotal: 94.20, Tax: 7.50,
				FinalAmount: 101.70, PaymentStatus: records.PaymentPending,
			},
			HospitalName:    "St. Mary's General",
			HospitalAddress: "1 Hospital Way, Springfield",
			HospitalPhone:   "555-0100",
		},
		{
			ID:                 "rx-003",
			PrescriptionNumber: "RX-2025-003",
			AppointmentNumber:  "APT-1003",
			OfficeID:           "OFF-NORTH",
			Date:               "2025-08-02",
			Time:               "11:00 AM",
			Status:             "completed",
			Priority:           "routine",
			AppointmentType:    "consultation",
			VisitReason:        "palpitations",
			Doctor: records.Doctor{
				ID:             "doc-1",
				Name:           "Dr. Asha Rao",
				Department:     "Cardiology",
				Specialization: "Interventional Cardiology",
				Qualification:  "MBBS, MD",
				RegNo:          "REG-4411",
				PhoneNumber:    "555-0101",
				Email:          "asha.rao@stmarys.example",
			},
			Patient: records.Patient{
				ID:          "pat-3",
				Name:        "Maya Chen",
				Email:       "maya.chen@example.com",
				Phone:       "555-0355",
				Gender:      "female",
				BloodGroup:  "B+",
				DateOfBirth: "1975-06-21",
				Address: records.Address{
					Street:  "5 Pine Court",
					City:    "Springfield",
					State:   "IL",
					ZipCode: "62704",
				},
				Insurance: records.Insurance{
					Provider:     "Acme Health",
					PolicyNumber: "POL-445566",
					GroupNumber:  "GRP-77",
				},
				MedicalHistory: []string{"asthma"},
			},
			Diagnosis: "benign arrhythmia",
			// Notes mentions the ISO date of rx-001 so tests can prove
			// that a date-literal query ignores substring hits.
			Notes:      "compare against episode on 2025-07-26",
			ReferredBy: "Dr. Ward",
			ICDCodes:   []string{"I49.9"},
			VitalSigns: records.VitalSigns{
				BloodPressure:    "122/80 mmHg",
				HeartRate:        "102 bpm",
				Temperature:      "98.4 F",
				Weight:           "58 kg",
				Height:           "160 cm",
				OxygenSaturation: "99%",
			},
			LabResults: []records.LabResult{
				{Test: "TSH", Value: "2.1 mIU/L", Status: "normal"},
			},
			Billing: records.Billing{
				BillID: "BILL-003", BillDate: "2025-08-02",
				ConsultationFee: 150, Subtotal: 150, Tax: 12,
				FinalAmount: 162, PaymentStatus: records.PaymentOverdue,
			},
			HospitalName:    "St. Mary's General",
			HospitalAddress: "1 Hospital Way, Springfield",
			HospitalPhone:   "555-0100",
		},
	}
}

func recordIDs(recs []records.Record) []string {
	ids := make([]string, len(recs))
	for i := range recs {
		ids[i] = recs[i].ID
	}
	return ids
}

func sameIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
