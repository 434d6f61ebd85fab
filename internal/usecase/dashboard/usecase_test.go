package dashboard

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"peerlend-gateway/internal/domain/loan"
	"peerlend-gateway/internal/domain/notification"
	"peerlend-gateway/internal/domain/user"
	"peerlend-gateway/internal/testutil/upstreammock"
	"peerlend-gateway/pkg/money"
)

func TestAggregate_EmptyListYieldsZeros(t *testing.T) {
	got := Aggregate(nil)
	if got != (Stats{}) {
		t.Fatalf("Aggregate(nil) = %+v, want zero stats", got)
	}
	if got = Aggregate([]loan.Record{}); got != (Stats{}) {
		t.Fatalf("Aggregate(empty) = %+v", got)
	}
}

func TestAggregate_PerStatusBuckets(t *testing.T) {
	records := []loan.Record{
		{Amount: 1000, Status: loan.StatusInProgress},
		{Amount: 2000, Status: loan.StatusInProgress},
		{Amount: 3000, Status: loan.StatusCompleted},
		{Amount: 400, Status: loan.StatusPending},
		{Amount: 500, Status: loan.StatusOverdue},
		{Amount: 600, Status: loan.StatusRejected},
		{Amount: 700, Status: loan.Status("mystery")},
	}
	got := Aggregate(records)
	want := Stats{
		TotalBorrowed:    6000, // completed + in_progress
		TotalRepaid:      3000, // completed only
		ActiveBorrowings: 2,
		PendingRequests:  1,
		OverdueCount:     1,
	}
	if got != want {
		t.Fatalf("Aggregate = %+v, want %+v", got, want)
	}
}

func TestAggregate_ZeroedAmountsContributeNothing(t *testing.T) {
	records := []loan.Record{
		{Amount: 0, Status: loan.StatusCompleted}, // malformed upstream amount, decoded to zero
		{Amount: 2500, Status: loan.StatusCompleted},
	}
	got := Aggregate(records)
	if got.TotalRepaid != 2500 || got.TotalBorrowed != 2500 {
		t.Fatalf("Aggregate = %+v", got)
	}
}

func newDashUsecase(loans *upstreammock.Loans, notifs *upstreammock.Notifications) *Usecase {
	return NewUsecase(loans, notifs, zap.NewNop())
}

func TestBorrower_ComposesViewAndLimitsRecent(t *testing.T) {
	records := make([]loan.Record, 7)
	for i := range records {
		records[i] = loan.Record{ID: string(rune('a' + i)), Amount: 100, Status: loan.StatusPending}
	}
	loans := &upstreammock.Loans{
		MyBorrowingsFn: func(ctx context.Context, credential string) ([]loan.Record, error) {
			if credential != "cred" {
				t.Fatalf("credential = %q", credential)
			}
			return records, nil
		},
	}
	notifs := &upstreammock.Notifications{
		AllFn: func(ctx context.Context, credential string) ([]notification.Notification, error) {
			out := make([]notification.Notification, 8)
			for i := range out {
				out[i] = notification.Notification{ID: string(rune('0' + i))}
			}
			return out, nil
		},
	}

	score := 75
	viewer := &user.Profile{ID: "u1", Role: user.RoleBorrower, TrustScore: &score}
	v, err := newDashUsecase(loans, notifs).Borrower(context.Background(), "cred", viewer)
	if err != nil {
		t.Fatalf("Borrower: %v", err)
	}
	if len(v.Recent) != 5 {
		t.Fatalf("recent = %d, want 5", len(v.Recent))
	}
	// order preserved: newest-first is the collaborator's contract
	if v.Recent[0].ID != "a" || v.Recent[4].ID != "e" {
		t.Fatalf("recent order = %+v", v.Recent)
	}
	if len(v.Notifications) != 5 {
		t.Fatalf("notifications = %d, want 5", len(v.Notifications))
	}
	if v.Stats.PendingRequests != 7 {
		t.Fatalf("pending = %d", v.Stats.PendingRequests)
	}
	if v.TrustScore.Value != 75 || v.TrustScore.Band != "high" {
		t.Fatalf("trust card = %+v", v.TrustScore)
	}
	// no repayment score reported: default applies
	if v.RepaymentScore.Value != user.DefaultScore {
		t.Fatalf("repayment card = %+v", v.RepaymentScore)
	}
}

func TestBorrower_EmptyEverything(t *testing.T) {
	loans := &upstreammock.Loans{
		MyBorrowingsFn: func(ctx context.Context, credential string) ([]loan.Record, error) {
			return nil, nil
		},
	}
	notifs := &upstreammock.Notifications{
		AllFn: func(ctx context.Context, credential string) ([]notification.Notification, error) {
			return nil, nil
		},
	}

	v, err := newDashUsecase(loans, notifs).Borrower(context.Background(), "cred", &user.Profile{})
	if err != nil {
		t.Fatalf("Borrower: %v", err)
	}
	if v.Stats.ActiveBorrowings != 0 || v.Stats.TotalBorrowed != money.FormatINR(0) {
		t.Fatalf("stats = %+v", v.Stats)
	}
	if len(v.Recent) != 0 || len(v.Notifications) != 0 {
		t.Fatalf("lists not empty: %+v", v)
	}
}

func TestBorrower_FetchFailureSurfaces(t *testing.T) {
	sentinel := errors.New("upstream down")
	loans := &upstreammock.Loans{
		MyBorrowingsFn: func(ctx context.Context, credential string) ([]loan.Record, error) {
			return nil, sentinel
		},
	}
	notifs := &upstreammock.Notifications{
		AllFn: func(ctx context.Context, credential string) ([]notification.Notification, error) {
			return nil, nil
		},
	}

	if _, err := newDashUsecase(loans, notifs).Borrower(context.Background(), "cred", &user.Profile{}); !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want sentinel", err)
	}
}
