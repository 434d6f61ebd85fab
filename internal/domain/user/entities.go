package user

type Role string

const (
	RoleBorrower Role = "borrower"
	RoleLender   Role = "lender"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBorrower, RoleLender, RoleAdmin:
		return true
	}
	return false
}

// DefaultScore is what the platform assumes for a profile whose trust or
// repayment score has not been computed yet.
const DefaultScore = 50

// Profile is the platform's view of a user. Scores and ratings are optional:
// the upstream omits them for fresh accounts, so absent values carry the
// platform default instead of zero.
type Profile struct {
	ID                   string   `json:"id"`
	Email                string   `json:"email"`
	FirstName            string   `json:"firstName"`
	LastName             string   `json:"lastName"`
	Role                 Role     `json:"role"`
	Phone                string   `json:"phone,omitempty"`
	Whatsapp             string   `json:"whatsapp,omitempty"`
	City                 string   `json:"city,omitempty"`
	State                string   `json:"state,omitempty"`
	ProfilePhoto         string   `json:"profilePhoto,omitempty"`
	TrustScore           *int     `json:"trustScore,omitempty"`
	RepaymentScore       *int     `json:"repaymentScore,omitempty"`
	AverageRating        *float64 `json:"averageRating,omitempty"`
	TotalRatings         int      `json:"totalRatings,omitempty"`
	IsIDVerified         bool     `json:"isIdVerified"`
	IsFaceVerified       bool     `json:"isFaceVerified"`
	IsOnboardingComplete bool     `json:"isOnboardingComplete"`
}

func (p *Profile) TrustScoreValue() int {
	if p == nil || p.TrustScore == nil {
		return DefaultScore
	}
	return *p.TrustScore
}

func (p *Profile) RepaymentScoreValue() int {
	if p == nil || p.RepaymentScore == nil {
		return DefaultScore
	}
	return *p.RepaymentScore
}

func (p *Profile) AverageRatingValue() float64 {
	if p == nil || p.AverageRating == nil {
		return 0
	}
	return *p.AverageRating
}
