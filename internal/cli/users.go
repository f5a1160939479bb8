package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/skillshare/skilladmin/internal/collection"
	"github.com/skillshare/skilladmin/internal/models"
)

func (a *App) listUsers(term string) error {
	matched := a.users.store.Filter(func(u models.User) bool {
		if term == "" {
			return true
		}
		t := strings.ToLower(term)
		return strings.Contains(strings.ToLower(u.Name), t) ||
			strings.Contains(strings.ToLower(u.Email), t)
	})

	for _, u := range matched {
		printlnFn(fmt.Sprintf("%s  %-20s %-28s %-12s %s", u.ID, u.Name, u.Email, u.Role, u.Mobile))
	}
	printlnFn(fmt.Sprintf("%d of %d users", len(matched), a.users.store.Len()))
	return nil
}

// promptUser collects user fields, prefilled from current for edits.
func (a *App) promptUser(current models.User) (models.User, bool, error) {
	name, err := getSimpleText(a.reader, "Name ["+current.Name+"]", os.Stdout)
	if err != nil {
		return models.User{}, false, err
	}
	email, err := getSimpleText(a.reader, "Email ["+current.Email+"]", os.Stdout)
	if err != nil {
		return models.User{}, false, err
	}
	mobile, err := getSimpleText(a.reader, "Mobile ["+current.Mobile+"]", os.Stdout)
	if err != nil {
		return models.User{}, false, err
	}
	role, err := getSimpleText(a.reader, "Role ["+current.Role+"]", os.Stdout)
	if err != nil {
		return models.User{}, false, err
	}

	u := current
	if name != "" {
		u.Name = name
	}
	if email != "" {
		u.Email = email
	}
	if mobile != "" {
		u.Mobile = mobile
	}
	if role != "" {
		u.Role = role
	}

	if u.Name == "" || u.Email == "" || u.Role == "" {
		printlnFn("Name, email, and role are required.")
		return models.User{}, false, nil
	}
	return u, true, nil
}

func (a *App) addUser(ctx context.Context) error {
	if a.users.draft != nil {
		printlnFn("Another edit is already in progress on this screen.")
		return nil
	}

	payload, ok, err := a.promptUser(models.User{Role: "admin"})
	if err != nil || !ok {
		return err
	}
	payload.ID = ""

	a.users.draft = collection.NewCreateDraft(payload)
	created, err := a.users.draft.Submit(ctx, a.users.store)
	a.users.draft = nil
	if err != nil {
		a.printErr(err)
		return err
	}

	printlnFn("Created user", created.ID)
	return nil
}

func (a *App) editUser(ctx context.Context, id string) error {
	if a.users.draft != nil {
		printlnFn("Another edit is already in progress on this screen.")
		return nil
	}

	current, ok := a.users.store.Get(id)
	if !ok {
		printlnFn("No user with id", id)
		return nil
	}

	payload, ok, err := a.promptUser(current)
	if err != nil || !ok {
		return err
	}

	a.users.draft = collection.NewEditDraft(id, payload)
	updated, err := a.users.draft.Submit(ctx, a.users.store)
	a.users.draft = nil
	if err != nil {
		a.printErr(err)
		return err
	}

	printlnFn("Updated user", updated.ID)
	return nil
}

func (a *App) deleteUser(ctx context.Context, id string) error {
	if err := a.users.store.Delete(ctx, id); err != nil {
		a.printErr(err)
		return err
	}
	printlnFn("Deleted user", id)
	return nil
}
