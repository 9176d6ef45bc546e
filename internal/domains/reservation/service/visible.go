package service

import (
	"slices"
	"strings"
	"time"

	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/reservation/model"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/constant"
)

// Visible narrows reservations to the ones an admin asked for and orders
// them newest reservation date first. The search term matches the guest
// name, phone, or email without case sensitivity. A status of "all" or an
// empty status keeps every state. Rows whose date does not parse sort
// after every dated row, keeping their relative order.
func Visible(reservations []model.Reservation, search, status string) []model.Reservation {
	query := strings.ToLower(strings.TrimSpace(search))

	visible := make([]model.Reservation, 0, len(reservations))

	for _, resv := range reservations {
		if query != "" &&
			!strings.Contains(strings.ToLower(resv.Name), query) &&
			!strings.Contains(strings.ToLower(resv.Phone), query) &&
			!strings.Contains(strings.ToLower(resv.Email), query) {
			continue
		}

		if status != "" && status != model.StatusAll && resv.Status != status {
			continue
		}

		visible = append(visible, resv)
	}

	slices.SortStableFunc(visible, func(left, right model.Reservation) int {
		leftDate, leftErr := time.Parse(constant.DateOnlyFormat, left.Date)
		rightDate, rightErr := time.Parse(constant.DateOnlyFormat, right.Date)

		switch {
		case leftErr != nil && rightErr != nil:
			return 0
		case leftErr != nil:
			return 1
		case rightErr != nil:
			return -1
		}

		return rightDate.Compare(leftDate)
	})

	return visible
}
