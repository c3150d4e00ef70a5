package goals

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"coursework/internal/console"
)

// App is the interactive goal tracker menu.
type App struct {
	p           *console.Prompter
	m           *Manager
	defaultPath string
}

// NewApp returns an App over m; defaultPath is offered for save and load.
func NewApp(p *console.Prompter, m *Manager, defaultPath string) *App {
	return &App{p: p, m: m, defaultPath: defaultPath}
}

// Run shows the menu until Quit or end of input.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.p.Println()
		a.p.Divider("=", 36)
		a.p.Title("        Eternal Quest Menu")
		a.p.Divider("=", 36)
		a.p.Printf("Score: %d | Level: %d\n", a.m.Score(), a.m.Level())
		a.p.Println("1. Create New Goal")
		a.p.Println("2. List Goals")
		a.p.Println("3. Save Goals")
		a.p.Println("4. Load Goals")
		a.p.Println("5. Record Event")
		a.p.Println("6. Quit")

		choice, err := a.p.ReadInt("Select an option: ")
		if err != nil {
			return ignoreClosed(err)
		}
		switch choice {
		case 1:
			err = a.create()
		case 2:
			a.list()
		case 3:
			err = a.save()
		case 4:
			err = a.load()
		case 5:
			err = a.record()
		case 6:
			a.p.Println("Goodbye, adventurer!")
			return nil
		default:
			a.p.Warn("Invalid choice. Please enter a number 1-6.")
		}
		if err != nil {
			return ignoreClosed(err)
		}
	}
}

func (a *App) create() error {
	a.p.Println("\nSelect goal type:")
	a.p.Println("1. Simple Goal")
	a.p.Println("2. Eternal Goal")
	a.p.Println("3. Checklist Goal")

	var spec Spec
	for spec.Kind == "" {
		n, err := a.p.ReadInt("Goal type: ")
		if err != nil {
			return err
		}
		switch n {
		case 1:
			spec.Kind = KindSimple
		case 2:
			spec.Kind = KindEternal
		case 3:
			spec.Kind = KindChecklist
		default:
			a.p.Warn("Please choose 1, 2 or 3.")
		}
	}

	var err error
	if spec.Name, err = a.p.ReadLine("Enter short name: "); err != nil {
		return err
	}
	if spec.Description, err = a.p.ReadLine("Enter description: "); err != nil {
		return err
	}
	if spec.Points, err = a.p.ReadInt("Enter points: "); err != nil {
		return err
	}
	if spec.Kind == KindChecklist {
		if spec.Target, err = a.p.ReadInt("Enter target count: "); err != nil {
			return err
		}
		if spec.Bonus, err = a.p.ReadInt("Enter bonus points: "); err != nil {
			return err
		}
	}

	g, err := New(spec)
	if err != nil {
		a.p.Warn(err.Error())
		return nil
	}
	a.m.Add(g)
	a.p.Success("Goal created successfully!")
	return nil
}

func (a *App) list() {
	a.p.Println("\nYour Goals:")
	if len(a.m.Goals()) == 0 {
		a.p.Println("(No goals yet!)")
		return
	}
	for i, g := range a.m.Goals() {
		check := "[ ]"
		if g.IsComplete() {
			check = "[X]"
		}
		a.p.Printf("%d. %s %s\n", i+1, check, g.Details())
	}
}

func (a *App) record() error {
	if len(a.m.Goals()) == 0 {
		a.p.Println("No goals to record yet!")
		return nil
	}
	a.list()
	n, err := a.p.ReadInt("Enter goal number to record: ")
	if err != nil {
		return err
	}

	res, err := a.m.Record(n - 1)
	switch {
	case errors.Is(err, ErrInvalidGoalIndex):
		a.p.Warn("Invalid goal number.")
		return nil
	case errors.Is(err, ErrAlreadyComplete):
		a.p.Warn("That goal is already complete.")
		return nil
	case err != nil:
		return err
	}

	a.p.Success(res.Award.Message)
	if res.LevelsUp > 0 {
		a.p.Success(fmt.Sprintf("You leveled up! Welcome to Level %d!", res.Level))
	}
	a.p.Println(res.Motivation)
	return nil
}

func (a *App) askPath(verb string) (string, error) {
	prompt := "Enter filename to " + verb
	if a.defaultPath != "" {
		prompt += " (blank for " + a.defaultPath + ")"
	}
	path, err := a.p.ReadLine(prompt + ": ")
	if err != nil {
		return "", err
	}
	if path = strings.TrimSpace(path); path == "" {
		path = a.defaultPath
	}
	return path, nil
}

func (a *App) save() error {
	path, err := a.askPath("save")
	if err != nil {
		return err
	}
	if path == "" {
		a.p.Warn("No filename given.")
		return nil
	}
	if err := a.m.SaveFile(path); err != nil {
		a.p.Warn(err.Error())
		return nil
	}
	a.p.Success("Goals saved successfully!")
	return nil
}

func (a *App) load() error {
	path, err := a.askPath("load")
	if err != nil {
		return err
	}
	diags, err := a.m.LoadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) || path == "":
		a.p.Warn("File not found.")
		return nil
	case err != nil:
		a.p.Warn(err.Error())
		return nil
	}
	for _, d := range diags {
		a.p.Warn(d.String())
	}
	a.p.Success("Goals loaded successfully!")
	return nil
}

func ignoreClosed(err error) error {
	if errors.Is(err, console.ErrInputClosed) {
		return nil
	}
	return err
}
