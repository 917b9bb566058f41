package entities

import (
	"testing"
	"time"
)

func TestDeriveProjectStatus(t *testing.T) {
	completedVisit := &SiteVisitApplication{ID: "v-1", Status: VisitStatusCompleted}
	pendingVisit := &SiteVisitApplication{ID: "v-1", Status: VisitStatusPending}
	cancelledVisit := &SiteVisitApplication{ID: "v-1", Status: VisitStatusPending, Cancelled: true}
	bid := &ContractorQuote{ID: "q-1", Status: QuoteStatusSubmitted}

	cases := []struct {
		name    string
		request QuoteRequest
		visit   *SiteVisitApplication
		bid     *ContractorQuote
		want    ProjectStatus
	}{
		{
			name:    "winner sees selected even with completed visit and bid",
			request: QuoteRequest{Status: RequestStatusCompleted, SelectedContractorID: "c-1"},
			visit:   completedVisit,
			bid:     bid,
			want:    ProjectStatusSelected,
		},
		{
			name:    "loser sees not-selected",
			request: QuoteRequest{Status: RequestStatusCompleted, SelectedContractorID: "c-other"},
			visit:   completedVisit,
			bid:     bid,
			want:    ProjectStatusNotSelected,
		},
		{
			name:    "open bidding shows bidding even after submitting",
			request: QuoteRequest{Status: RequestStatusBidding},
			visit:   completedVisit,
			bid:     bid,
			want:    ProjectStatusBidding,
		},
		{
			name:    "closed with visit but no bid is failed-bid",
			request: QuoteRequest{Status: RequestStatusBiddingClosed},
			visit:   completedVisit,
			want:    ProjectStatusFailedBid,
		},
		{
			name:    "closed with bid on file is quote-submitted",
			request: QuoteRequest{Status: RequestStatusBiddingClosed},
			visit:   completedVisit,
			bid:     bid,
			want:    ProjectStatusQuoteSubmitted,
		},
		{
			name:    "completed visit before bidding opens",
			request: QuoteRequest{Status: RequestStatusSiteVisitPending},
			visit:   completedVisit,
			want:    ProjectStatusSiteVisitCompleted,
		},
		{
			name:    "pending application",
			request: QuoteRequest{Status: RequestStatusSiteVisitPending},
			visit:   pendingVisit,
			want:    ProjectStatusSiteVisitApplied,
		},
		{
			name:    "cancelled application falls back to approved",
			request: QuoteRequest{Status: RequestStatusSiteVisitPending},
			visit:   cancelledVisit,
			want:    ProjectStatusApproved,
		},
		{
			name:    "no engagement during visit phase",
			request: QuoteRequest{Status: RequestStatusSiteVisitPending},
			want:    ProjectStatusApproved,
		},
		{
			name:    "raw passthrough for pending",
			request: QuoteRequest{Status: RequestStatusPending},
			want:    ProjectStatus(RequestStatusPending),
		},
		{
			name:    "raw passthrough for cancelled",
			request: QuoteRequest{Status: RequestStatusCancelled},
			want:    ProjectStatus(RequestStatusCancelled),
		},
		{
			name:    "active visit survives cancellation of the request",
			request: QuoteRequest{Status: RequestStatusCancelled},
			visit:   pendingVisit,
			want:    ProjectStatusSiteVisitApplied,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveProjectStatus("c-1", tc.request, tc.visit, tc.bid)
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestDeriveProjectStatus_IsPure(t *testing.T) {
	r := QuoteRequest{Status: RequestStatusBidding}
	visit := &SiteVisitApplication{ID: "v-1", Status: VisitStatusCompleted}
	first := DeriveProjectStatus("c-1", r, visit, nil)
	second := DeriveProjectStatus("c-1", r, visit, nil)
	if first != second {
		t.Fatalf("expected identical derivations, got %s then %s", first, second)
	}
	if visit.Status != VisitStatusCompleted || r.Status != RequestStatusBidding {
		t.Fatalf("derivation must not mutate its inputs")
	}
}

func TestSiteVisitApplication_Missed(t *testing.T) {
	proposed := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	after := proposed.Add(24 * time.Hour)
	before := proposed.Add(-24 * time.Hour)

	pending := SiteVisitApplication{Status: VisitStatusPending}
	if !pending.Missed(proposed, after) {
		t.Fatalf("pending visit past its date should be missed")
	}
	if pending.Missed(proposed, before) {
		t.Fatalf("future visit should not be missed")
	}

	completed := SiteVisitApplication{Status: VisitStatusCompleted}
	if completed.Missed(proposed, after) {
		t.Fatalf("completed visit is never missed")
	}

	cancelled := SiteVisitApplication{Status: VisitStatusPending, Cancelled: true}
	if cancelled.Missed(proposed, after) {
		t.Fatalf("cancelled visit is never missed")
	}
}
