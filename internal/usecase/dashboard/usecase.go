// Package dashboard aggregates the borrower's loans and notifications into
// the dashboard screen state.
package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"peerlend-gateway/internal/domain/loan"
	"peerlend-gateway/internal/domain/notification"
	"peerlend-gateway/internal/domain/user"
	"peerlend-gateway/internal/usecase/loanview"
	"peerlend-gateway/pkg/money"
)

const recentLimit = 5

// Stats are the raw aggregates over the borrower's loans.
type Stats struct {
	TotalBorrowed    float64
	TotalRepaid      float64
	ActiveBorrowings int
	PendingRequests  int
	OverdueCount     int
}

// Aggregate computes the dashboard stats. Records with a zero amount (the
// decode boundary maps malformed amounts to zero and logs them) simply
// contribute nothing to the sums; aggregation itself never fails.
func Aggregate(records []loan.Record) Stats {
	var s Stats
	for _, r := range records {
		switch r.Status {
		case loan.StatusInProgress:
			s.ActiveBorrowings++
			s.TotalBorrowed += r.Amount
		case loan.StatusPending:
			s.PendingRequests++
		case loan.StatusCompleted:
			s.TotalRepaid += r.Amount
			s.TotalBorrowed += r.Amount
		case loan.StatusOverdue:
			s.OverdueCount++
		}
	}
	return s
}

type StatsView struct {
	TotalBorrowed    string `json:"totalBorrowed"`
	TotalRepaid      string `json:"totalRepaid"`
	ActiveBorrowings int    `json:"activeBorrowings"`
	PendingRequests  int    `json:"pendingRequests"`
	OverdueCount     int    `json:"overdueCount"`
}

type RecentLoan struct {
	ID        string         `json:"id"`
	Amount    string         `json:"amount"`
	Purpose   string         `json:"purpose"`
	Badge     loanview.Badge `json:"badge"`
	CreatedAt time.Time      `json:"createdAt"`
}

type ScoreCard struct {
	Value int           `json:"value"`
	Band  loanview.Band `json:"band"`
}

// View is the borrower dashboard screen state.
type View struct {
	Stats          StatsView                   `json:"stats"`
	TrustScore     ScoreCard                   `json:"trustScore"`
	RepaymentScore ScoreCard                   `json:"repaymentScore"`
	Recent         []RecentLoan                `json:"recentLoans"`
	Notifications  []notification.Notification `json:"notifications"`
}

type Usecase struct {
	loans  loan.API
	notifs notification.API
	lg     *zap.Logger
}

func NewUsecase(loans loan.API, notifs notification.API, lg *zap.Logger) *Usecase {
	return &Usecase{loans: loans, notifs: notifs, lg: lg}
}

// Borrower fetches loans and notifications concurrently and derives the
// dashboard. Collaborator order is preserved for the recent list (newest
// first upstream).
func (u *Usecase) Borrower(ctx context.Context, credential string, viewer *user.Profile) (*View, error) {
	var (
		records []loan.Record
		notifs  []notification.Notification
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = u.loans.MyBorrowings(gctx, credential)
		return err
	})
	g.Go(func() error {
		var err error
		notifs, err = u.notifs.All(gctx, credential)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := Aggregate(records)
	v := &View{
		Stats: StatsView{
			TotalBorrowed:    money.FormatINR(stats.TotalBorrowed),
			TotalRepaid:      money.FormatINR(stats.TotalRepaid),
			ActiveBorrowings: stats.ActiveBorrowings,
			PendingRequests:  stats.PendingRequests,
			OverdueCount:     stats.OverdueCount,
		},
		TrustScore: ScoreCard{
			Value: viewer.TrustScoreValue(),
			Band:  loanview.ScoreBand(viewer.TrustScoreValue()),
		},
		RepaymentScore: ScoreCard{
			Value: viewer.RepaymentScoreValue(),
			Band:  loanview.ScoreBand(viewer.RepaymentScoreValue()),
		},
		Recent:        make([]RecentLoan, 0, recentLimit),
		Notifications: notifs,
	}
	for i, r := range records {
		if i == recentLimit {
			break
		}
		v.Recent = append(v.Recent, RecentLoan{
			ID:        r.ID,
			Amount:    money.FormatINR(r.Amount),
			Purpose:   r.Purpose,
			Badge:     loanview.StatusBadge(r.Status),
			CreatedAt: r.CreatedAt,
		})
	}
	if len(v.Notifications) > recentLimit {
		v.Notifications = v.Notifications[:recentLimit]
	}
	if v.Notifications == nil {
		v.Notifications = []notification.Notification{}
	}
	return v, nil
}
