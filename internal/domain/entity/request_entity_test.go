package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to RequestStatus
		want     bool
	}{
		{StatusPending, StatusInProgress, true},
		{StatusInProgress, StatusDone, true},
		{StatusInProgress, StatusCanceled, true},
		{StatusPending, StatusDone, false},
		{StatusPending, StatusCanceled, false},
		{StatusDone, StatusInProgress, false},
		{StatusDone, StatusCanceled, false},
		{StatusCanceled, StatusDone, false},
		{StatusInProgress, StatusPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusInProgress.Terminal())
	assert.True(t, StatusDone.Terminal())
	assert.True(t, StatusCanceled.Terminal())
}

func TestKeyPrefersMongoID(t *testing.T) {
	assert.Equal(t, "abc", DonationRequest{ID: "abc", AltID: "def"}.Key())
	assert.Equal(t, "def", DonationRequest{AltID: "def"}.Key())
	assert.Equal(t, "", DonationRequest{}.Key())
}

func donorUser(id string) *User { return &User{ID: id, Role: RoleDonor} }
func adminUser(id string) *User { return &User{ID: id, Role: RoleAdmin} }
func volunteer(id string) *User { return &User{ID: id, Role: RoleVolunteer} }

func TestActionsForAnonymous(t *testing.T) {
	r := &DonationRequest{ID: "r1", Status: StatusPending}
	assert.Equal(t, RequestActions{}, ActionsFor(r, nil))
	assert.Equal(t, RequestActions{}, ActionsFor(nil, donorUser("u1")))
}

func TestActionsForPendingOwner(t *testing.T) {
	r := &DonationRequest{ID: "r1", Status: StatusPending, Requester: PartyRef{User: "u1"}}
	a := ActionsFor(r, donorUser("u1"))

	assert.True(t, a.CanDonate)
	assert.True(t, a.CanEdit)
	assert.True(t, a.CanDelete)
	assert.False(t, a.CanMarkDone)
	assert.False(t, a.CanCancel)
}

func TestActionsForPendingStranger(t *testing.T) {
	r := &DonationRequest{ID: "r1", Status: StatusPending, Requester: PartyRef{User: "u1"}}
	a := ActionsFor(r, donorUser("u2"))

	// Any signed-in user may volunteer to donate while pending.
	assert.True(t, a.CanDonate)
	assert.False(t, a.CanEdit)
	assert.False(t, a.CanDelete)
	assert.False(t, a.CanMarkDone)
	assert.False(t, a.CanCancel)
}

func TestActionsForPendingAdmin(t *testing.T) {
	r := &DonationRequest{ID: "r1", Status: StatusPending, Requester: PartyRef{User: "u1"}}
	a := ActionsFor(r, adminUser("u9"))

	assert.False(t, a.CanEdit, "editing stays with the owner")
	assert.True(t, a.CanDelete)
}

func TestActionsForInProgress(t *testing.T) {
	r := &DonationRequest{
		ID:        "r1",
		Status:    StatusInProgress,
		Requester: PartyRef{User: "u1"},
		Donor:     &PartyRef{User: "u2"},
	}

	owner := ActionsFor(r, donorUser("u1"))
	assert.True(t, owner.CanMarkDone)
	assert.True(t, owner.CanCancel)
	assert.False(t, owner.CanEdit, "editing stops once a donor is assigned")
	assert.False(t, owner.CanDonate)

	assigned := ActionsFor(r, donorUser("u2"))
	assert.True(t, assigned.CanMarkDone)
	assert.True(t, assigned.CanCancel)
	assert.False(t, assigned.CanDelete)

	stranger := ActionsFor(r, donorUser("u3"))
	assert.False(t, stranger.CanMarkDone)
	assert.False(t, stranger.CanCancel)

	vol := ActionsFor(r, volunteer("u4"))
	assert.True(t, vol.CanMarkDone)
	assert.True(t, vol.CanCancel)
}

func TestActionsForTerminal(t *testing.T) {
	r := &DonationRequest{ID: "r1", Status: StatusDone, Requester: PartyRef{User: "u1"}}
	a := ActionsFor(r, donorUser("u1"))

	assert.False(t, a.CanDonate)
	assert.False(t, a.CanEdit)
	assert.False(t, a.CanMarkDone)
	assert.False(t, a.CanCancel)
	assert.True(t, a.CanDelete, "owners can always clean up their own requests")
}

func TestIsOwnerIgnoresEmptyIDs(t *testing.T) {
	r := &DonationRequest{ID: "r1", Status: StatusPending}
	u := &User{Role: RoleDonor} // no id
	assert.False(t, r.IsOwner(u))
	assert.False(t, r.IsAssignedDonor(u))
}
