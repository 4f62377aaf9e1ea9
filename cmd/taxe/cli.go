package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/piresc/taxe/internal/pkg/apierror"
	appctx "github.com/piresc/taxe/internal/pkg/context"
	"github.com/piresc/taxe/internal/pkg/decoder"
	"github.com/piresc/taxe/internal/pkg/logger"
	"github.com/piresc/taxe/internal/pkg/models"
	"github.com/piresc/taxe/internal/pkg/session"
	"github.com/piresc/taxe/internal/pkg/validation"
	"github.com/piresc/taxe/services/bookings"
	"github.com/piresc/taxe/services/users"
)

const usage = `usage: taxe <command> [arguments]

commands:
  login <email> <password>
  register <name> <email> <password>
  logout
  profile
  password <old> <new>
  available <true|false>
  resign
  bookings [-active] [-limit n]
  booking <id>
  latest
  active
  book -pickup <place> -destination <place> -time <yy-MM-ddTHH:mm:ss.SSSZ> [-passengers n] [-note text]...
  cancel <id>
  note <id> <text>...
`

var errUsage = errors.New("invalid arguments")

// cli runs one command against the usecases and renders failures through the
// classifier's recovery actions
type cli struct {
	users      users.UserUC
	bookings   bookings.BookingUC
	classifier *apierror.Classifier
	out        io.Writer
}

func newCLI(userUC users.UserUC, bookingUC bookings.BookingUC, classifier *apierror.Classifier, out io.Writer) *cli {
	return &cli{users: userUC, bookings: bookingUC, classifier: classifier, out: out}
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(c.out, usage)
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	ctx = appctx.NewActionContext(ctx, cmd)
	var err error
	switch cmd {
	case "login":
		err = c.login(ctx, rest)
	case "register":
		err = c.register(ctx, rest)
	case "logout":
		err = c.users.Logout(ctx)
		if err == nil {
			fmt.Fprintln(c.out, "Signed out.")
		}
	case "profile":
		err = c.profile(ctx)
	case "password":
		err = c.password(ctx, rest)
	case "available":
		err = c.available(ctx, rest)
	case "resign":
		err = c.resign(ctx)
	case "bookings":
		err = c.list(ctx, rest)
	case "booking":
		err = c.booking(ctx, rest)
	case "latest":
		err = c.latest(ctx)
	case "active":
		err = c.active(ctx)
	case "book":
		err = c.book(ctx, rest)
	case "cancel":
		err = c.cancel(ctx, rest)
	case "note":
		err = c.note(ctx, rest)
	default:
		fmt.Fprint(c.out, usage)
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
	return c.report(ctx, apierror.Operation(cmd), err)
}

// report prints err for the user. The returned error only drives the exit code.
func (c *cli) report(ctx context.Context, op apierror.Operation, err error) error {
	if err == nil {
		return nil
	}

	ve, invalid := validation.IsValidationError(err)
	var decodeErr *decoder.DecodeError
	switch {
	case invalid:
		logger.Debug("Rejected input", logger.Op(string(op)), logger.String("fields", strings.Join(ve.Fields(), ",")))
		for _, fe := range ve.Errors {
			fmt.Fprintf(c.out, "%s: %s\n", fe.Field, fe.Message)
		}
	case errors.Is(err, session.ErrNoToken), errors.Is(err, session.ErrNoUser):
		fmt.Fprintln(c.out, "You are not signed in. Run: taxe login <email> <password>")
	case errors.Is(err, errUsage):
	case errors.As(err, &decodeErr):
		fmt.Fprintln(c.out, apierror.MessageFor(apierror.ReasonInternalError))
	default:
		if _, ok := apierror.AsResult(err); ok {
			c.classifier.Dispatch(ctx, op, err, c)
		} else {
			fmt.Fprintln(c.out, err)
		}
	}
	return err
}

// NavigateToAuth implements apierror.Recovery
func (c *cli) NavigateToAuth(r apierror.Result) {
	fmt.Fprintln(c.out, r.Message)
	fmt.Fprintln(c.out, "Run: taxe login <email> <password>")
}

func (c *cli) MarkInvalidFields(r apierror.Result) {
	fmt.Fprintf(c.out, "%s (check: %s)\n", r.Message, strings.Join(r.InvalidFields, ", "))
}

func (c *cli) ShowMessage(r apierror.Result) {
	fmt.Fprintln(c.out, r.Message)
}

func (c *cli) ShowConnectionNotice(r apierror.Result) {
	fmt.Fprintln(c.out, r.Message)
}

func (c *cli) ShowGenericFailure(r apierror.Result) {
	fmt.Fprintln(c.out, r.Message)
}

func (c *cli) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	profile, err := c.users.Login(ctx, models.LoginRequest{Email: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Signed in as %s (%s).\n", profile.Name, profile.Role)
	return nil
}

func (c *cli) register(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errUsage
	}
	resp, err := c.users.Register(ctx, models.NewUser{Name: args[0], Email: args[1], Password: args[2]})
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, resp.Message)
	return nil
}

func (c *cli) profile(ctx context.Context) error {
	p, err := c.users.Profile(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "id\t%s\n", p.ID)
	fmt.Fprintf(w, "name\t%s\n", p.Name)
	fmt.Fprintf(w, "email\t%s\n", p.Email)
	fmt.Fprintf(w, "role\t%s\n", p.Role)
	if p.Company != "" {
		fmt.Fprintf(w, "company\t%s\n", p.Company)
	}
	if p.Role == models.RoleDriver {
		fmt.Fprintf(w, "available\t%t\n", p.Available)
	}
	fmt.Fprintf(w, "bookings\t%d\n", len(p.Bookings))
	return w.Flush()
}

func (c *cli) password(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	resp, err := c.users.ChangePassword(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, resp.Message)
	return nil
}

func (c *cli) available(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	available, err := strconv.ParseBool(args[0])
	if err != nil {
		return errUsage
	}
	resp, err := c.users.SetAvailability(ctx, available)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, resp.Message)
	return nil
}

func (c *cli) resign(ctx context.Context) error {
	resp, err := c.users.ResignFromCompany(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, resp.Message)
	return nil
}

func (c *cli) list(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bookings", flag.ContinueOnError)
	fs.SetOutput(c.out)
	active := fs.Bool("active", false, "only active bookings")
	limit := fs.Int("limit", 0, "maximum number of bookings")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	list, err := c.bookings.ListBookings(ctx, models.BookingQuery{Limit: *limit, Active: *active})
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(c.out, "No bookings.")
		return nil
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTIME\tFROM\tTO")
	for _, b := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", b.ID, b.Status, models.FormatTime(b.ScheduledTime), b.PickupLocation, b.Destination)
	}
	return w.Flush()
}

func (c *cli) booking(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	b, err := c.bookings.GetBooking(ctx, args[0])
	if err != nil {
		return err
	}
	c.printBooking(b)
	return nil
}

func (c *cli) latest(ctx context.Context) error {
	b, err := c.bookings.MostRecentBooking(ctx)
	if err != nil {
		return err
	}
	if b == nil {
		fmt.Fprintln(c.out, "No bookings.")
		return nil
	}
	c.printBooking(*b)
	return nil
}

func (c *cli) active(ctx context.Context) error {
	b, err := c.bookings.ActiveBooking(ctx)
	if err != nil {
		return err
	}
	if b == nil {
		fmt.Fprintln(c.out, "No active booking.")
		return nil
	}
	c.printBooking(*b)
	return nil
}

type notesFlag []string

func (n *notesFlag) String() string { return strings.Join(*n, "; ") }

func (n *notesFlag) Set(v string) error {
	*n = append(*n, v)
	return nil
}

func (c *cli) book(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	fs.SetOutput(c.out)
	pickup := fs.String("pickup", "", "pickup location")
	destination := fs.String("destination", "", "destination")
	at := fs.String("time", "", "pickup time")
	passengers := fs.Int("passengers", 1, "number of passengers")
	var notes notesFlag
	fs.Var(&notes, "note", "note for the driver, repeatable")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	resp, err := c.bookings.CreateBooking(ctx, models.BookingRequest{
		PickupLocation: *pickup,
		Destination:    *destination,
		Time:           *at,
		PassengerCount: *passengers,
		Notes:          notes,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, resp.Message)
	if resp.ID != "" {
		fmt.Fprintf(c.out, "Booking id: %s\n", resp.ID)
	}
	return nil
}

func (c *cli) cancel(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	b, err := c.bookings.GetBooking(ctx, args[0])
	if err != nil {
		return err
	}
	resp, err := c.bookings.CancelBooking(ctx, b)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, resp.Message)
	return nil
}

// note appends notes for the driver to an existing booking
func (c *cli) note(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errUsage
	}
	b, err := c.bookings.GetBooking(ctx, args[0])
	if err != nil {
		return err
	}
	notes := append(append([]string{}, b.Notes...), args[1:]...)
	resp, err := c.bookings.EditBooking(ctx, b.ID, b.WithNotes(notes).Request())
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, resp.Message)
	return nil
}

func (c *cli) printBooking(b models.Booking) {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "id\t%s\n", b.ID)
	fmt.Fprintf(w, "status\t%s\n", b.Status)
	fmt.Fprintf(w, "time\t%s\n", models.FormatTime(b.ScheduledTime))
	fmt.Fprintf(w, "from\t%s\n", b.PickupLocation)
	fmt.Fprintf(w, "to\t%s\n", b.Destination)
	fmt.Fprintf(w, "passengers\t%d\n", b.PassengerCount)
	fmt.Fprintf(w, "customer\t%s\n", describeRef(b.Customer))
	if b.HasDriver() {
		fmt.Fprintf(w, "driver\t%s\n", describeRef(*b.Driver))
	} else {
		fmt.Fprintln(w, "driver\tnot assigned")
	}
	for _, n := range b.Notes {
		fmt.Fprintf(w, "note\t%s\n", n)
	}
	w.Flush()
}

func describeRef(r models.UserRef) string {
	if name := r.Name(); name != "" {
		return fmt.Sprintf("%s (%s)", name, r.ID())
	}
	return r.ID()
}
