package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/skillshare/skilladmin/internal/collection"
	"github.com/skillshare/skilladmin/internal/models"
)

func (a *App) listSkills(term string) error {
	matched := a.skills.store.Filter(func(s models.Skill) bool {
		if term == "" {
			return true
		}
		t := strings.ToLower(term)
		return strings.Contains(strings.ToLower(s.Name), t) ||
			strings.Contains(strings.ToLower(s.Description), t)
	})

	for _, s := range matched {
		printlnFn(fmt.Sprintf("%s  %-20s %s", s.ID, s.Name, s.Description))
	}
	printlnFn(fmt.Sprintf("%d of %d skills", len(matched), a.skills.store.Len()))
	return nil
}

func (a *App) promptSkill(current models.Skill) (models.Skill, bool, error) {
	name, err := getSimpleText(a.reader, "Name ["+current.Name+"]", os.Stdout)
	if err != nil {
		return models.Skill{}, false, err
	}
	description, err := getSimpleText(a.reader, "Description ["+current.Description+"]", os.Stdout)
	if err != nil {
		return models.Skill{}, false, err
	}

	s := current
	if name != "" {
		s.Name = name
	}
	if description != "" {
		s.Description = description
	}

	if s.Name == "" {
		printlnFn("Name is required.")
		return models.Skill{}, false, nil
	}
	return s, true, nil
}

func (a *App) addSkill(ctx context.Context) error {
	if a.skills.draft != nil {
		printlnFn("Another edit is already in progress on this screen.")
		return nil
	}

	payload, ok, err := a.promptSkill(models.Skill{})
	if err != nil || !ok {
		return err
	}

	a.skills.draft = collection.NewCreateDraft(payload)
	created, err := a.skills.draft.Submit(ctx, a.skills.store)
	a.skills.draft = nil
	if err != nil {
		a.printErr(err)
		return err
	}

	printlnFn("Created skill", created.ID)
	return nil
}

func (a *App) editSkill(ctx context.Context, id string) error {
	if a.skills.draft != nil {
		printlnFn("Another edit is already in progress on this screen.")
		return nil
	}

	current, ok := a.skills.store.Get(id)
	if !ok {
		printlnFn("No skill with id", id)
		return nil
	}

	payload, ok, err := a.promptSkill(current)
	if err != nil || !ok {
		return err
	}

	a.skills.draft = collection.NewEditDraft(id, payload)
	updated, err := a.skills.draft.Submit(ctx, a.skills.store)
	a.skills.draft = nil
	if err != nil {
		a.printErr(err)
		return err
	}

	printlnFn("Updated skill", updated.ID)
	return nil
}

func (a *App) deleteSkill(ctx context.Context, id string) error {
	if err := a.skills.store.Delete(ctx, id); err != nil {
		a.printErr(err)
		return err
	}
	printlnFn("Deleted skill", id)
	return nil
}
