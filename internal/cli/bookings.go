package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/skillshare/skilladmin/internal/models"
)

func (a *App) listBookings(term string) error {
	matched := a.bookings.workflow.Filter(func(b models.Booking) bool {
		if term == "" {
			return true
		}
		t := strings.ToLower(term)
		return strings.Contains(strings.ToLower(b.Student.Name), t) ||
			strings.Contains(strings.ToLower(b.Instructor.Name), t) ||
			strings.Contains(strings.ToLower(b.Skill.Name), t) ||
			strings.Contains(strings.ToLower(string(b.Status)), t)
	})

	for _, b := range matched {
		printlnFn(fmt.Sprintf("%s  %-16s %-16s %-16s %-10s %s",
			b.ID, b.Student.Display(), b.Instructor.Display(), b.Skill.Display(),
			b.Status, b.Date.Format("2006-01-02 15:04")))
	}
	printlnFn(fmt.Sprintf("%d of %d bookings", len(matched), a.bookings.workflow.Len()))
	return nil
}

func (a *App) transitionBooking(ctx context.Context, id string, approve bool) error {
	target := models.StatusRejected
	if approve {
		target = models.StatusApproved
	}

	updated, err := a.bookings.workflow.RequestTransition(ctx, id, target)
	if err != nil {
		a.printErr(err)
		return err
	}

	printlnFn(fmt.Sprintf("Booking %s is now %s", updated.ID, updated.Status))
	return nil
}
