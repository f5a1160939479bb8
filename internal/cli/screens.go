package cli

import (
	"context"

	"github.com/skillshare/skilladmin/internal/nav"
)

// Screen command dispatch. Each command applies to the currently rendered
// screen; commands without a screen nudge the user to open one.

func (a *App) List(ctx context.Context) error {
	switch a.path {
	case nav.PathUsers:
		return a.listUsers("")
	case nav.PathSkills:
		return a.listSkills("")
	case nav.PathBookings:
		return a.listBookings("")
	default:
		printlnFn("Open a screen first: open <users|skills|bookings>")
		return nil
	}
}

func (a *App) Search(ctx context.Context, term string) error {
	switch a.path {
	case nav.PathUsers:
		return a.listUsers(term)
	case nav.PathSkills:
		return a.listSkills(term)
	case nav.PathBookings:
		return a.listBookings(term)
	default:
		printlnFn("Open a screen first: open <users|skills|bookings>")
		return nil
	}
}

func (a *App) Add(ctx context.Context) error {
	switch a.path {
	case nav.PathUsers:
		return a.addUser(ctx)
	case nav.PathSkills:
		return a.addSkill(ctx)
	case nav.PathBookings:
		printlnFn("Bookings are created by students; this console only approves or rejects them.")
		return nil
	default:
		printlnFn("Open a screen first: open <users|skills>")
		return nil
	}
}

func (a *App) Edit(ctx context.Context, id string) error {
	switch a.path {
	case nav.PathUsers:
		return a.editUser(ctx, id)
	case nav.PathSkills:
		return a.editSkill(ctx, id)
	case nav.PathBookings:
		printlnFn("Bookings cannot be edited; use approve <id> or reject <id>.")
		return nil
	default:
		printlnFn("Open a screen first: open <users|skills>")
		return nil
	}
}

func (a *App) Delete(ctx context.Context, id string) error {
	switch a.path {
	case nav.PathUsers:
		return a.deleteUser(ctx, id)
	case nav.PathSkills:
		return a.deleteSkill(ctx, id)
	default:
		printlnFn("Open a screen first: open <users|skills>")
		return nil
	}
}

func (a *App) Approve(ctx context.Context, id string) error {
	if a.path != nav.PathBookings {
		printlnFn("Open the bookings screen first: open bookings")
		return nil
	}
	return a.transitionBooking(ctx, id, true)
}

func (a *App) Reject(ctx context.Context, id string) error {
	if a.path != nav.PathBookings {
		printlnFn("Open the bookings screen first: open bookings")
		return nil
	}
	return a.transitionBooking(ctx, id, false)
}
