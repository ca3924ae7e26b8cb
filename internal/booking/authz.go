package booking

// CanMutate reports whether the actor may edit or cancel the booking:
// the owner may, and admins bypass the ownership check. A zero-value
// actor is never authorized.
func CanMutate(b *Booking, actor Actor) bool {
	if b == nil || actor.ID == "" {
		return false
	}
	return actor.ID == b.CreatedBy || actor.IsAdmin()
}

// CanView decides single-booking visibility. List visibility is enforced
// upstream by the owner filter in the list query, so viewing an individual
// booking follows the same rule as mutation.
func CanView(b *Booking, actor Actor) bool {
	return CanMutate(b, actor)
}
