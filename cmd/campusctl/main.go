// campusctl - консольный клиент API кампуса: вход, инциденты, объявления, отзывы.
// Сессия хранится тем же бэкендом, что и у шлюза (по умолчанию файл в домашнем каталоге).
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/shenikar/campus_connect/internal/apierr"
	"github.com/shenikar/campus_connect/internal/app"
	"github.com/shenikar/campus_connect/internal/config"
	"github.com/shenikar/campus_connect/internal/controller"
	v1 "github.com/shenikar/campus_connect/internal/handler/http/v1"
	"github.com/shenikar/campus_connect/internal/models"
	"github.com/shenikar/campus_connect/internal/service"
	"github.com/shenikar/campus_connect/pkg/logger"
	"github.com/sirupsen/logrus"
)

const usage = `Usage: campusctl <command> [flags]

Commands:
  register   create an account (--first-name --last-name --phone --email --password --campus-id)
  login      open a session (--email --password)
  logout     close the session
  whoami     print the stored profile
  campuses   list campuses
  incidents  list incidents, or one with --id
  report     report an incident (--title --description --type [--location] [--media FILE]...)
  notices    list notices, or one with --slug
  feedback   send feedback (--name --email --message --rating 1..5)
`

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	log := logger.NewWithOutput(cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger, args []string, out io.Writer) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprint(out, usage)
		return nil
	}
	command, args := args[0], args[1:]

	res, err := app.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer res.Close()

	cmd := &cli{
		portal:  service.NewPortalService(app.NewClient(cfg, res.Store, log, nil), res.Store, log, cfg, nil),
		baseURL: cfg.APIBaseURL,
		log:     log.WithField("command", command),
		out:     out,
	}

	switch command {
	case "register":
		return cmd.register(ctx, args)
	case "login":
		return cmd.login(ctx, args)
	case "logout":
		return cmd.logout(ctx)
	case "whoami":
		return cmd.whoami(ctx)
	case "campuses":
		return cmd.campuses(ctx)
	case "incidents":
		return cmd.incidents(ctx, args)
	case "report":
		return cmd.report(ctx, args)
	case "notices":
		return cmd.notices(ctx, args)
	case "feedback":
		return cmd.feedback(ctx, args)
	}
	return fmt.Errorf("unknown command %q\n\n%s", command, usage)
}

type cli struct {
	portal  service.PortalService
	baseURL string
	log     *logrus.Entry
	out     io.Writer
}

func newFlagSet(name string) *pflag.FlagSet {
	return pflag.NewFlagSet("campusctl "+name, pflag.ContinueOnError)
}

func (c *cli) register(ctx context.Context, args []string) error {
	var reg models.Registration
	flags := newFlagSet("register")
	flags.StringVar(&reg.FirstName, "first-name", "", "first name")
	flags.StringVar(&reg.LastName, "last-name", "", "last name")
	flags.StringVar(&reg.PhoneNumber, "phone", "", "phone number")
	flags.StringVar(&reg.Email, "email", "", "email")
	flags.StringVar(&reg.Password, "password", "", "password")
	flags.Int64Var(&reg.CampusID, "campus-id", 0, "campus id (see campusctl campuses)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if err := c.portal.Register(ctx, reg); err != nil {
		return userError(err)
	}
	return c.print(map[string]string{"status": "registered", "next": "campusctl login"})
}

func (c *cli) login(ctx context.Context, args []string) error {
	var creds models.Credentials
	flags := newFlagSet("login")
	flags.StringVar(&creds.Email, "email", "", "email")
	flags.StringVar(&creds.Password, "password", os.Getenv("CAMPUS_PASSWORD"), "password (default $CAMPUS_PASSWORD)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	sess, err := c.portal.Login(ctx, creds)
	if err != nil {
		return userError(err)
	}
	return c.print(v1.ModelToUserResponse(sess.User))
}

func (c *cli) logout(ctx context.Context) error {
	if err := c.portal.Logout(ctx); err != nil {
		return err
	}
	return c.print(map[string]string{"status": "logged out"})
}

func (c *cli) whoami(ctx context.Context) error {
	sess, err := c.portal.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if sess == nil {
		return userError(&apierr.AuthRequiredError{})
	}
	return c.print(v1.ModelToUserResponse(sess.User))
}

func (c *cli) campuses(ctx context.Context) error {
	campuses, err := data(c.portal.Campuses(ctx))
	if err != nil {
		return err
	}
	return c.print(v1.ModelsToCampusResponses(campuses, c.baseURL))
}

func (c *cli) incidents(ctx context.Context, args []string) error {
	var id int64
	flags := newFlagSet("incidents")
	flags.Int64Var(&id, "id", 0, "show a single incident")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if id != 0 {
		incident, err := data(c.portal.Incident(ctx, id))
		if err != nil {
			return err
		}
		return c.print(v1.ModelToIncidentResponse(*incident, c.baseURL, c.log))
	}

	incidents, err := data(c.portal.Incidents(ctx))
	if err != nil {
		return err
	}
	return c.print(v1.ModelsToIncidentResponses(incidents, c.baseURL, c.log))
}

func (c *cli) report(ctx context.Context, args []string) error {
	var (
		report      models.IncidentReport
		incidentTyp string
		mediaPaths  []string
	)
	flags := newFlagSet("report")
	flags.StringVar(&report.Title, "title", "", "title")
	flags.StringVar(&report.Description, "description", "", "description")
	flags.StringVar(&incidentTyp, "type", "", "incident type: theft, harassment, accident, fire, vandalism, medical, natural_disaster, lost_item, stolen_item, other")
	flags.StringVar(&report.Location, "location", "", "where it happened")
	flags.StringArrayVar(&mediaPaths, "media", nil, "photo or video to attach; repeat to keep order")
	if err := flags.Parse(args); err != nil {
		return err
	}
	report.IncidentType = models.IncidentType(incidentTyp)

	for _, path := range mediaPaths {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read media file: %w", err)
		}
		report.MediaFiles = append(report.MediaFiles, models.MediaFile{Name: filepath.Base(path), Content: content})
	}

	created, err := c.portal.ReportIncident(ctx, report)
	if err != nil {
		return userError(err)
	}
	if created == nil {
		return c.print(map[string]string{"status": "reported"})
	}
	return c.print(v1.ModelToIncidentResponse(*created, c.baseURL, c.log))
}

func (c *cli) notices(ctx context.Context, args []string) error {
	var slug string
	flags := newFlagSet("notices")
	flags.StringVar(&slug, "slug", "", "show a single notice")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if slug != "" {
		notice, err := data(c.portal.Notice(ctx, slug))
		if err != nil {
			return err
		}
		return c.print(v1.ModelToNoticeResponse(*notice, c.baseURL, c.log))
	}

	notices, err := data(c.portal.Notices(ctx))
	if err != nil {
		return err
	}
	return c.print(v1.ModelsToNoticeResponses(notices, c.baseURL, c.log))
}

func (c *cli) feedback(ctx context.Context, args []string) error {
	var feedback models.Feedback
	flags := newFlagSet("feedback")
	flags.StringVar(&feedback.Name, "name", "", "your name")
	flags.StringVar(&feedback.Email, "email", "", "your email")
	flags.StringVarP(&feedback.Message, "message", "m", "", "message")
	flags.IntVar(&feedback.Rating, "rating", 0, "rating from 1 to 5")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if err := c.portal.SubmitFeedback(ctx, feedback); err != nil {
		return userError(err)
	}
	return c.print(map[string]string{"status": "submitted"})
}

func (c *cli) print(v any) error {
	encoder := json.NewEncoder(c.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// data достает результат готового состояния или ошибку для пользователя
func data[T any](state controller.State[T]) (T, error) {
	if state.Phase == controller.Ready {
		return state.Data, nil
	}
	var zero T
	if state.Err != nil {
		return zero, userError(state.Err)
	}
	return zero, errors.New(state.Message)
}

// userError переводит ошибку в текст для терминала
func userError(err error) error {
	var valErr *apierr.ValidationError
	switch {
	case apierr.KindOf(err) == apierr.KindAuthRequired:
		return errors.New("not logged in; run campusctl login")
	case errors.As(err, &valErr) && len(valErr.Fields) > 0:
		return fmt.Errorf("%s (fields: %v)", valErr.Message, valErr.Fields)
	}
	return errors.New(apierr.Message(err))
}
