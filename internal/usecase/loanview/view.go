// Package loanview derives everything a loan screen shows from a loan record
// and the viewer's role: status badge, permitted actions, score bands and
// display fields. It is pure derivation; nothing here mutates loan state.
package loanview

import (
	"peerlend-gateway/internal/domain/loan"
	"peerlend-gateway/internal/domain/user"
)

// Badge is the display label and severity class for a loan status.
type Badge struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

var statusBadges = map[loan.Status]Badge{
	loan.StatusPending:    {Label: "Pending", Class: "badge-warning"},
	loan.StatusAccepted:   {Label: "Accepted", Class: "badge-info"},
	loan.StatusInProgress: {Label: "In Progress", Class: "badge-primary"},
	loan.StatusCompleted:  {Label: "Completed", Class: "badge-success"},
	loan.StatusOverdue:    {Label: "Overdue", Class: "badge-danger"},
	loan.StatusDefaulted:  {Label: "Defaulted", Class: "badge-danger"},
	loan.StatusDisputed:   {Label: "Disputed", Class: "badge-danger"},
	loan.StatusRejected:   {Label: "Rejected", Class: "badge-gray"},
}

// StatusBadge maps a status to its badge. Unknown statuses get the neutral
// gray class with the raw status as label; this never fails.
func StatusBadge(s loan.Status) Badge {
	if b, ok := statusBadges[s]; ok {
		return b
	}
	return Badge{Label: string(s), Class: "badge-gray"}
}

// Band is the three-level display emphasis for any 0-100 score.
type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

func ScoreBand(score int) Band {
	switch {
	case score >= 70:
		return BandHigh
	case score >= 40:
		return BandMedium
	default:
		return BandLow
	}
}

// Actions are the controls a viewer may trigger for a loan. Each true flag
// maps to exactly one upstream call.
type Actions struct {
	CanAccept          bool `json:"canAccept"`
	CanMarkFulfilled   bool `json:"canMarkFulfilled"`
	CanRecordRepayment bool `json:"canRecordRepayment"`
	CanRate            bool `json:"canRate"`
}

// PermittedActions gates every action on the exact status and role pair.
// Rating additionally requires the viewer's own rating slot to be empty:
// the lender rates the borrower (borrowerRating), and vice versa.
func PermittedActions(r *loan.Record, viewer user.Role) Actions {
	a := Actions{
		CanAccept:          viewer == user.RoleLender && r.Status == loan.StatusPending,
		CanMarkFulfilled:   viewer == user.RoleBorrower && r.Status == loan.StatusAccepted,
		CanRecordRepayment: viewer == user.RoleLender && r.Status == loan.StatusInProgress,
	}
	if r.Status == loan.StatusCompleted {
		switch viewer {
		case user.RoleLender:
			a.CanRate = r.BorrowerRating == nil
		case user.RoleBorrower:
			a.CanRate = r.LenderRating == nil
		}
	}
	return a
}
