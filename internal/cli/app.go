package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/skillshare/skilladmin/internal/api"
	"github.com/skillshare/skilladmin/internal/booking"
	"github.com/skillshare/skilladmin/internal/collection"
	"github.com/skillshare/skilladmin/internal/config"
	"github.com/skillshare/skilladmin/internal/credstore"
	"github.com/skillshare/skilladmin/internal/logging"
	"github.com/skillshare/skilladmin/internal/models"
	"github.com/skillshare/skilladmin/internal/nav"
	"github.com/skillshare/skilladmin/internal/session"
	"github.com/skillshare/skilladmin/internal/shared"

	_ "modernc.org/sqlite"
)

// Screen state. Each screen owns its collection store and at most one
// outstanding edit draft.
type usersScreen struct {
	store *collection.Store[models.User]
	draft *collection.Draft[models.User]
}

type skillsScreen struct {
	store *collection.Store[models.Skill]
	draft *collection.Draft[models.Skill]
}

type bookingsScreen struct {
	workflow *booking.Workflow
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	session *session.Manager
	api     *api.Client
	db      *sql.DB
	reader  *bufio.Reader

	// path is the currently rendered screen; "" before the first open.
	path     string
	users    *usersScreen
	skills   *skillsScreen
	bookings *bookingsScreen
}

func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := credstore.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "initializing credential database", "error", err.Error())
		return nil, err
	}

	sess := session.NewManager(credstore.NewSQLiteStore(db), logger)
	if err := sess.Refresh(ctx); err != nil {
		db.Close()
		return nil, err
	}

	apiClient := api.New(cfg.ServerEndpointAddr, cfg.RequestTimeout, sess.Token, logger)

	return &App{
		config:  cfg,
		logger:  logger,
		session: sess,
		api:     apiClient,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	s := ""
	if id, ok := a.session.CurrentIdentity(); ok {
		s = id.Name
	}
	if a.path != "" {
		if s != "" {
			s += " "
		}
		s += a.path
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// screenAliases maps REPL shorthand to navigation paths.
var screenAliases = map[string]string{
	"users":     nav.PathUsers,
	"skills":    nav.PathSkills,
	"bookings":  nav.PathBookings,
	"analytics": nav.PathAnalytics,
	"login":     nav.PathLogin,
	"signup":    nav.PathSignup,
}

// Open navigates to the target screen. The route guard decides first; a
// redirect to /login is surfaced to the user instead of rendered, and the
// root redirect is followed to the landing screen.
func (a *App) Open(ctx context.Context, target string) error {
	path := target
	if alias, ok := screenAliases[target]; ok {
		path = alias
	}

	d := nav.Resolve(path, a.session.IsAuthenticated())
	if d.Redirect {
		if d.Path == nav.PathLogin {
			printlnFn("Redirected to /login, please log in first.")
			a.path = ""
			return nil
		}
		// Root forwards to the landing screen; follow it.
		return a.Open(ctx, d.Path)
	}

	return a.activate(ctx, d.Path)
}

// activate renders a screen: it loads the backing collection once per
// activation, so the visible list starts from confirmed server state.
func (a *App) activate(ctx context.Context, path string) error {
	switch path {
	case nav.PathLogin, nav.PathSignup:
		a.path = path
		printlnFn("On " + path + ". Use the login or signup command.")
		return nil

	case nav.PathUsers:
		if a.users == nil {
			a.users = &usersScreen{store: collection.NewStore[models.User](
				api.NewResource[models.User](a.api, "/api/users").WithCreatePath("/api/users/create"),
				a.logger.With("screen", "users"),
			)}
		}
		if err := a.users.store.Load(ctx); err != nil {
			a.printErr(err)
			return err
		}
		a.path = path
		printlnFn(fmt.Sprintf("%s: %d users", path, a.users.store.Len()))
		return nil

	case nav.PathSkills:
		if a.skills == nil {
			a.skills = &skillsScreen{store: collection.NewStore[models.Skill](
				api.NewResource[models.Skill](a.api, "/api/skills"),
				a.logger.With("screen", "skills"),
			)}
		}
		if err := a.skills.store.Load(ctx); err != nil {
			a.printErr(err)
			return err
		}
		a.path = path
		printlnFn(fmt.Sprintf("%s: %d skills", path, a.skills.store.Len()))
		return nil

	case nav.PathBookings:
		if a.bookings == nil {
			store := collection.NewStore[models.Booking](
				api.NewResource[models.Booking](a.api, "/api/bookings"),
				a.logger.With("screen", "bookings"),
			)
			a.bookings = &bookingsScreen{workflow: booking.NewWorkflow(store, a.api, a.logger)}
		}
		if err := a.bookings.workflow.Load(ctx); err != nil {
			a.printErr(err)
			return err
		}
		a.path = path
		printlnFn(fmt.Sprintf("%s: %d bookings", path, a.bookings.workflow.Len()))
		return nil

	case nav.PathAnalytics:
		a.path = path
		return a.renderAnalytics(ctx)

	default:
		printlnFn("Unknown screen:", path)
		return nil
	}
}

// printErr renders a failure for the user. Server rejections surface the
// backend's message verbatim; transport failures get a generic connectivity
// message.
func (a *App) printErr(err error) {
	switch {
	case errors.Is(err, shared.ErrUnavailable):
		printlnFn("Cannot reach the server. Check your connection and try again.")
	case errors.Is(err, shared.ErrIllegalTransition):
		printlnFn("Not allowed:", err.Error())
	case errors.Is(err, shared.ErrNotFound):
		printlnFn("Not found:", err.Error())
	default:
		printlnFn("Error:", err.Error())
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("skilladmin console (type 'help' for commands)")
	if id, ok := a.session.CurrentIdentity(); ok {
		printlnFn("Welcome back,", id.Name)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
