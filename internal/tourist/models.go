package tourist

import "time"

// VerificationStatus tracks the KYC lifecycle of a tourist record. The two
// terminal states are never left once entered.
type VerificationStatus string

const (
	StatusPending  VerificationStatus = "pending"
	StatusVerified VerificationStatus = "verified"
	StatusRejected VerificationStatus = "rejected"
)

// DocumentType enumerates the accepted KYC document kinds.
type DocumentType string

const (
	DocumentAadhaar  DocumentType = "aadhaar"
	DocumentPassport DocumentType = "passport"
)

// ValidDocumentType reports whether dt is an accepted value. The empty string
// is allowed because the document fields are optional at registration.
func ValidDocumentType(dt DocumentType) bool {
	switch dt {
	case "", DocumentAadhaar, DocumentPassport:
		return true
	}
	return false
}

// Tourist is a registered applicant and their verification lifecycle. The
// uploaded document itself is out of scope; only its filename is retained.
type Tourist struct {
	ID                    string             `json:"id"`
	Name                  string             `json:"name"`
	Email                 string             `json:"email"`
	Phone                 string             `json:"phone,omitempty"`
	Itinerary             string             `json:"itinerary,omitempty"`
	EmergencyContactName  string             `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string             `json:"emergencyContactPhone,omitempty"`
	DocumentType          DocumentType       `json:"documentType,omitempty"`
	DocumentNumber        string             `json:"documentNumber,omitempty"`
	DocumentFileName      string             `json:"documentFileName,omitempty"`
	VerificationStatus    VerificationStatus `json:"verificationStatus"`
	BlockchainID          string             `json:"blockchainId,omitempty"`
	ApplicationDate       time.Time          `json:"applicationDate"`
}

// Registration carries the validated registration input. Name and Email are
// required; everything else is optional free text.
type Registration struct {
	Name                  string
	Email                 string
	Phone                 string
	Itinerary             string
	EmergencyContactName  string
	EmergencyContactPhone string
	DocumentType          DocumentType
	DocumentNumber        string
	DocumentFileName      string
}
