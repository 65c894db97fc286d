package application

import "github.com/danukusuma/campgrounds-api/internal/domain/apperr"

// Authorize is the single-owner ownership check: pure comparison, no I/O.
// An empty callerID means the request carried no identity. Every mutating
// operation on a campground or review must pass this before any side effect.
func Authorize(callerID, ownerID string) error {
	if callerID == "" || callerID != ownerID {
		return apperr.ErrForbidden
	}
	return nil
}
