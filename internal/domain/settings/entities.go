package settings

import "context"

// Settings is the platform-wide configuration document the admin screen
// edits. Field names mirror the collaborator's wire contract.
type Settings struct {
	// Loan parameters
	MinLoanAmount       float64 `json:"minLoanAmount" validate:"gt=0"`
	MaxLoanAmount       float64 `json:"maxLoanAmount" validate:"gtefield=MinLoanAmount"`
	MinLoanDuration     int     `json:"minLoanDuration" validate:"gte=1"`
	MaxLoanDuration     int     `json:"maxLoanDuration" validate:"gtefield=MinLoanDuration"`
	DefaultInterestRate float64 `json:"defaultInterestRate" validate:"gte=0"`
	MaxInterestRate     float64 `json:"maxInterestRate" validate:"gtefield=DefaultInterestRate"`

	// Score parameters
	DefaultTrustScore       int `json:"defaultTrustScore" validate:"gte=0,lte=100"`
	MinTrustScoreForLending int `json:"minTrustScoreForLending" validate:"gte=0,lte=100"`
	RepaymentScoreImpact    int `json:"repaymentScoreImpact" validate:"gte=0"`
	LatePaymentPenalty      int `json:"latePaymentPenalty" validate:"gte=0"`

	// Verification
	RequireIDVerification    bool `json:"requireIdVerification"`
	RequireFaceVerification  bool `json:"requireFaceVerification"`
	AutoApproveVerifiedUsers bool `json:"autoApproveVerifiedUsers"`

	// Notifications
	EnableEmailNotifications bool `json:"enableEmailNotifications"`
	EnableSmsNotifications   bool `json:"enableSmsNotifications"`
	ReminderDaysBeforeDue    int  `json:"reminderDaysBeforeDue" validate:"gte=0"`

	// Platform
	PlatformFeePercent    float64 `json:"platformFeePercent" validate:"gte=0,lte=100"`
	MaintenanceMode       bool    `json:"maintenanceMode"`
	AllowNewRegistrations bool    `json:"allowNewRegistrations"`
}

// Defaults returns the document the platform ships with; a fetched partial
// document is merged over these.
func Defaults() Settings {
	return Settings{
		MinLoanAmount:       1000,
		MaxLoanAmount:       500000,
		MinLoanDuration:     7,
		MaxLoanDuration:     365,
		DefaultInterestRate: 10,
		MaxInterestRate:     36,

		DefaultTrustScore:       50,
		MinTrustScoreForLending: 30,
		RepaymentScoreImpact:    5,
		LatePaymentPenalty:      10,

		RequireIDVerification:   true,
		RequireFaceVerification: true,

		EnableEmailNotifications: true,
		ReminderDaysBeforeDue:    3,

		PlatformFeePercent:    1,
		AllowNewRegistrations: true,
	}
}

// API is the admin surface of the platform collaborator. Get unmarshals the
// fetched document into the provided value so absent fields keep whatever the
// caller seeded (the merge-over-defaults contract).
type API interface {
	Get(ctx context.Context, credential string, into *Settings) error
	Update(ctx context.Context, credential string, s Settings) (*Settings, error)
}
