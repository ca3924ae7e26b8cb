package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	b := &Booking{ID: "b1", CreatedBy: "owner-uid"}

	cases := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"owner", Actor{ID: "owner-uid", Role: "user"}, true},
		{"admin non-owner", Actor{ID: "admin-uid", Role: "admin"}, true},
		{"admin owner", Actor{ID: "owner-uid", Role: "admin"}, true},
		{"other user", Actor{ID: "other-uid", Role: "user"}, false},
		{"missing actor", Actor{}, false},
		{"role without id", Actor{Role: "admin"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanMutate(b, tc.actor))
		})
	}
}

func TestCanMutateNilBooking(t *testing.T) {
	assert.False(t, CanMutate(nil, Actor{ID: "admin-uid", Role: "admin"}))
}

func TestCanViewMatchesCanMutate(t *testing.T) {
	b := &Booking{ID: "b1", CreatedBy: "owner-uid"}

	for _, actor := range []Actor{
		{ID: "owner-uid", Role: "user"},
		{ID: "admin-uid", Role: "admin"},
		{ID: "other-uid", Role: "user"},
		{},
	} {
		assert.Equal(t, CanMutate(b, actor), CanView(b, actor))
	}
}
