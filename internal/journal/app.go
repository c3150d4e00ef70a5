package journal

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"time"

	"coursework/internal/console"
	"coursework/internal/logging"
	"coursework/internal/rng"
)

// Options configures an App.
type Options struct {
	Prompts     []string
	DefaultPath string // offered when the filename answer is blank
	Markdown    bool
	Style       string // glamour style for markdown display
	Src         rng.Source
	Now         func() time.Time
	StoreFor    func(path string) Store
}

// App is the interactive journal menu.
type App struct {
	p       *console.Prompter
	opts    Options
	journal Journal
}

// NewApp returns an App with an empty journal.
func NewApp(p *console.Prompter, opts Options) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.StoreFor == nil {
		opts.StoreFor = StoreFor
	}
	return &App{p: p, opts: opts}
}

// Journal returns the in-memory journal.
func (a *App) Journal() *Journal { return &a.journal }

// Run shows the menu until Exit or end of input.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.p.Clear()
		a.p.Title("==== Journal Menu ====")
		a.p.Println("1. Write a new entry")
		a.p.Println("2. Display all entries")
		a.p.Println("3. Save journal to a file")
		a.p.Println("4. Load journal from a file")
		a.p.Println("5. Exit")

		choice, err := a.p.ReadLine("\nChoose an option (1-5): ")
		if err != nil {
			return ignoreClosed(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = a.write()
		case "2":
			err = a.display()
		case "3":
			err = a.save(ctx)
		case "4":
			err = a.load(ctx)
		case "5":
			a.p.Clear()
			a.p.Println("Goodbye!")
			return nil
		default:
			a.p.Warn("\nInvalid choice, please pick 1-5.")
			continue
		}
		if err != nil {
			return ignoreClosed(err)
		}
		a.p.Pause()
	}
}

func (a *App) write() error {
	a.p.Clear()
	prompt := PickPrompt(a.opts.Src, a.opts.Prompts)

	a.p.Title("New Journal Entry")
	a.p.Divider("-", 23)
	a.p.Printf("Your prompt is:\n%s\n", prompt)

	title, err := a.p.ReadLine("\nGive this entry a short title: ")
	if err != nil {
		return err
	}
	mood, err := a.p.ReadLine("How are you feeling today (1-5)? ")
	if err != nil {
		return err
	}
	response, err := a.p.ReadLine("\nYour response: ")
	if err != nil {
		return err
	}

	e := NewEntry(a.opts.Now(), prompt, response, title, mood)
	a.journal.Add(e)
	logging.Journal("Added entry %s %q", e.ID, e.Title)
	a.p.Success("\nYour entry has been saved!")
	return nil
}

func (a *App) display() error {
	a.p.Clear()
	a.p.Title("All Journal Entries")
	a.p.Divider("-", 23)
	if a.opts.Markdown {
		return WriteMarkdown(a.p.Out(), a.journal.Entries(), a.opts.Style)
	}
	WriteText(a.p.Out(), a.journal.Entries())
	return nil
}

func (a *App) askPath(verb string) (string, error) {
	prompt := "Enter a filename to " + verb
	if a.opts.DefaultPath != "" {
		prompt += " (blank for " + a.opts.DefaultPath + ")"
	}
	path, err := a.p.ReadLine(prompt + ": ")
	if err != nil {
		return "", err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		path = a.opts.DefaultPath
	}
	return path, nil
}

func (a *App) save(ctx context.Context) error {
	a.p.Clear()
	path, err := a.askPath("save")
	if err != nil {
		return err
	}
	if path == "" {
		a.p.Warn("\nNo filename given.")
		return nil
	}
	if err := a.opts.StoreFor(path).Save(ctx, a.journal.Entries()); err != nil {
		logging.Get(logging.CategoryJournal).Error("Save to %s failed: %v", path, err)
		a.p.Warn("\nCould not save the journal: " + err.Error())
		return nil
	}
	a.p.Success("\nJournal saved to " + path)
	return nil
}

func (a *App) load(ctx context.Context) error {
	a.p.Clear()
	path, err := a.askPath("load")
	if err != nil {
		return err
	}
	if path == "" {
		a.p.Warn("\nThat file does not exist.")
		return nil
	}
	entries, err := a.opts.StoreFor(path).Load(ctx)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		a.p.Warn("\nThat file does not exist.")
	case err != nil:
		logging.Get(logging.CategoryJournal).Error("Load from %s failed: %v", path, err)
		a.p.Warn("\nCould not load the journal: " + err.Error())
	default:
		a.journal.Replace(entries)
		a.p.Success("\nJournal loaded from " + path)
	}
	return nil
}

func ignoreClosed(err error) error {
	if errors.Is(err, console.ErrInputClosed) {
		return nil
	}
	return err
}
