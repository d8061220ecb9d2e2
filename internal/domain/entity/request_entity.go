package entity

// RequestStatus is the donation request lifecycle state mirrored from the
// server. The server is the sole enforcer of transitions; the client only
// uses these predicates to decide which controls to render.
type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusInProgress RequestStatus = "inprogress"
	StatusDone       RequestStatus = "done"
	StatusCanceled   RequestStatus = "canceled"
)

// RequestStatuses lists all statuses in filter order.
var RequestStatuses = []RequestStatus{StatusPending, StatusInProgress, StatusDone, StatusCanceled}

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone, StatusCanceled:
		return true
	}
	return false
}

// Terminal reports whether the status is absorbing.
func (s RequestStatus) Terminal() bool {
	return s == StatusDone || s == StatusCanceled
}

// CanTransition reports whether the server's state machine admits from -> to:
// pending -> inprogress (donate), inprogress -> done|canceled.
func CanTransition(from, to RequestStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusInProgress
	case StatusInProgress:
		return to == StatusDone || to == StatusCanceled
	}
	return false
}

// Recipient is the person the blood is requested for.
type Recipient struct {
	Name     string `json:"name"`
	District string `json:"district"`
	Upazila  string `json:"upazila"`
}

// PartyRef references a platform user attached to a request (requester or
// assigned donor) together with display fields denormalized by the API.
type PartyRef struct {
	User  string `json:"user"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DonationRequest is the client-side projection of a request. The canonical
// contract is the nested recipient shape; flat recipientName fields are a
// legacy variant the client does not emit.
type DonationRequest struct {
	ID             string        `json:"_id"`
	AltID          string        `json:"id"`
	Recipient      Recipient     `json:"recipient"`
	HospitalName   string        `json:"hospitalName"`
	FullAddress    string        `json:"fullAddress"`
	BloodGroup     string        `json:"bloodGroup"`
	DonationDate   string        `json:"donationDate"` // YYYY-MM-DD
	DonationTime   string        `json:"donationTime"` // HH:MM, 24h
	RequestMessage string        `json:"requestMessage"`
	Status         RequestStatus `json:"status"`
	Requester      PartyRef      `json:"requester"`
	Donor          *PartyRef     `json:"donor,omitempty"`
	CreatedAt      string        `json:"createdAt"`
}

// Key returns the canonical identifier regardless of which field the API used.
func (r DonationRequest) Key() string {
	if r.ID != "" {
		return r.ID
	}
	return r.AltID
}

// IsOwner reports whether the viewer created the request.
func (r *DonationRequest) IsOwner(u *User) bool {
	return r != nil && u != nil && r.Requester.User != "" && r.Requester.User == u.Key()
}

// IsAssignedDonor reports whether the viewer is the assigned donor.
func (r *DonationRequest) IsAssignedDonor(u *User) bool {
	return r != nil && u != nil && r.Donor != nil && r.Donor.User != "" && r.Donor.User == u.Key()
}

// RequestActions says which controls a screen should render for a viewer.
// These are presentation hints only; the server may still reject an action,
// in which case the rejection message is surfaced unchanged.
type RequestActions struct {
	CanDonate   bool
	CanEdit     bool
	CanDelete   bool
	CanMarkDone bool
	CanCancel   bool
}

// ActionsFor computes the controls to render for the given viewer. A nil
// viewer is an anonymous visitor and gets no actions.
func ActionsFor(r *DonationRequest, u *User) RequestActions {
	if r == nil || u == nil {
		return RequestActions{}
	}
	owner := r.IsOwner(u)
	donor := r.IsAssignedDonor(u)
	elevated := u.HasRole(RoleVolunteer, RoleAdmin)

	var a RequestActions
	// Donor assignment only happens while pending. The client does not block
	// self-donation; the server enforces that.
	a.CanDonate = r.Status == StatusPending
	a.CanEdit = r.Status == StatusPending && owner
	a.CanDelete = owner || u.IsAdmin()
	if r.Status == StatusInProgress && (owner || donor || elevated) {
		a.CanMarkDone = true
		a.CanCancel = true
	}
	return a
}
