package entities

// ProjectStatus is the per-(request, contractor) display state the dashboard
// renders. It is derived fresh on every read and never persisted.

type ProjectStatus string

const (
	ProjectStatusSelected           ProjectStatus = "selected"
	ProjectStatusNotSelected        ProjectStatus = "not-selected"
	ProjectStatusBidding            ProjectStatus = "bidding"
	ProjectStatusFailedBid          ProjectStatus = "failed-bid"
	ProjectStatusQuoteSubmitted     ProjectStatus = "quote-submitted"
	ProjectStatusSiteVisitCompleted ProjectStatus = "site-visit-completed"
	ProjectStatusSiteVisitApplied   ProjectStatus = "site-visit-applied"
	ProjectStatusApproved           ProjectStatus = "approved"
)

// DeriveProjectStatus reduces a request plus the viewing contractor's own
// visit application and bid (either may be nil) to one display status.
//
// The evaluation order is load-bearing and must not be reordered: a
// contractor who both completed a visit and won the selection must see
// "selected", not "site-visit-completed". First match wins:
//
//  1. selected          - the viewer is the chosen contractor
//  2. not-selected      - someone else was chosen
//  3. bidding           - the request is open for quotes
//  4. failed-bid        - bidding closed, visit completed, no bid submitted
//  5. quote-submitted   - the viewer has a bid on file
//  6. site-visit-completed
//  7. site-visit-applied
//  8. approved          - visits are open but the viewer has not engaged yet
//  9. raw request status passthrough (pending, completed, cancelled, rejected)
func DeriveProjectStatus(contractorID string, r QuoteRequest, visit *SiteVisitApplication, bid *ContractorQuote) ProjectStatus {
	switch {
	case r.Decided() && r.SelectedContractorID == contractorID:
		return ProjectStatusSelected
	case r.Decided():
		return ProjectStatusNotSelected
	case r.Status == RequestStatusBidding:
		return ProjectStatusBidding
	case r.Status == RequestStatusBiddingClosed && visit != nil && visit.CompletedVisit() && bid == nil:
		return ProjectStatusFailedBid
	case bid != nil:
		return ProjectStatusQuoteSubmitted
	case visit != nil && visit.CompletedVisit():
		return ProjectStatusSiteVisitCompleted
	case visit != nil && visit.Active():
		return ProjectStatusSiteVisitApplied
	case r.Status == RequestStatusSiteVisitPending:
		return ProjectStatusApproved
	default:
		return ProjectStatus(r.Status)
	}
}
