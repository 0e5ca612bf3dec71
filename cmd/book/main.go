package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	bk "github.com/catalinarubies/field-booking/booking"
	"github.com/catalinarubies/field-booking/config"
	"github.com/catalinarubies/field-booking/fieldsapi"
	"github.com/catalinarubies/field-booking/logging"
	"github.com/catalinarubies/field-booking/reservation"
	"github.com/catalinarubies/field-booking/session"
)

const usage = `usage:
  book create -field ID -date YYYY-MM-DD -start HH:MM -end HH:MM
  book list
  book show ID`

const submitTimeout = 15 * time.Second

type app struct {
	client   *fieldsapi.Client
	sessions *session.Store
	coord    *reservation.Coordinator
	clock    bk.Clock
	out      io.Writer
	logger   *slog.Logger
}

func newApp(apiURL, token string, clock bk.Clock, out io.Writer) *app {
	client := fieldsapi.NewClient(apiURL)
	sessions := session.NewStore()

	a := &app{
		client:   client,
		sessions: sessions,
		coord:    reservation.NewCoordinator(client, sessions),
		clock:    clock,
		out:      out,
		logger:   slog.Default().With("component", "cli"),
	}

	if sess, err := session.FromToken(token); err == nil {
		sessions.Save(sess)
	} else if !errors.Is(err, session.ErrNoSession) {
		a.logger.Warn("ignoring unreadable BOOKING_TOKEN", "err", err)
	}

	return a
}

func main() {
	cfg, err := config.LoadClient()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, closeLog := logging.New(logging.Options{Format: cfg.LogFormat, File: cfg.LogFile, Level: slog.LevelWarn})
	defer closeLog()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(cfg.APIURL, cfg.Token, bk.ZonedClock{Location: cfg.Location()}, os.Stdout)

	if err := a.run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	switch args[0] {
	case "create":
		return a.create(ctx, args[1:])
	case "list":
		return a.list(ctx)
	case "show":
		if len(args) != 2 {
			return errors.New(usage)
		}
		return a.show(ctx, args[1])
	default:
		return errors.New(usage)
	}
}

func (a *app) create(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(a.out)
	fieldID := fs.String("field", "", "field id")
	date := fs.String("date", "", "booking date (YYYY-MM-DD)")
	start := fs.String("start", "", "start time (HH:MM)")
	end := fs.String("end", "", "end time (HH:MM)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// a missing session leaves the user id empty, which Build reports
	sess, _ := a.sessions.Current()

	req, err := bk.Build(*fieldID, sess.UserID, *date, *start, *end, a.clock.Now())

	if err != nil {
		return err
	}

	field, err := a.client.GetField(ctx, sess.Token, req.FieldID())

	if err != nil {
		return fmt.Errorf("could not load field '%v': %w", req.FieldID(), err)
	}

	if !field.Available {
		return bk.ErrFieldUnavailable
	}

	priced, ok := bk.Quote(req, field.PricePerHour)

	if !ok {
		return fmt.Errorf("field '%v' has no valid price", field.ID)
	}

	fmt.Fprintf(a.out, "%v (%v), %v %v-%v, %d min: %v\n",
		field.Name, field.Sport, req.Date(), req.StartTime(), req.EndTime(),
		priced.DurationMinutes, formatAmount(priced.TotalPrice))

	submitCtx, cancel := context.WithTimeout(ctx, submitTimeout)
	defer cancel()

	select {
	case outcome := <-a.coord.SubmitAsync(submitCtx, sess, req):
		return a.report(outcome, priced)
	case <-ctx.Done():
		return errors.New("booking abandoned, check 'book list' before trying again")
	}
}

func (a *app) report(outcome bk.Outcome, priced bk.PricedBooking) error {
	switch o := outcome.(type) {
	case bk.Accepted:
		total := o.Booking.TotalPrice
		if total == 0 {
			total = priced.TotalPrice
		}

		if len(o.ConfirmationID) == 0 {
			fmt.Fprintf(a.out, "Booking confirmed, total %v\n", formatAmount(total))
		} else {
			fmt.Fprintf(a.out, "Booking confirmed (%v), total %v\n", o.ConfirmationID, formatAmount(total))
		}
		return nil
	case bk.Rejected:
		return errors.New(o.UserMessage())
	default:
		return fmt.Errorf("unexpected outcome %T", outcome)
	}
}

func (a *app) list(ctx context.Context) error {
	sess, err := a.sessions.Current()

	if err != nil {
		return bk.ErrMissingIdentity
	}

	bookings, err := a.client.ListUserBookings(ctx, sess.Token, sess.UserID)

	if err != nil {
		return a.lookupError(err)
	}

	if len(bookings) == 0 {
		fmt.Fprintln(a.out, "No bookings yet.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFIELD\tDATE\tTIME\tTOTAL\tSTATUS")

	for _, b := range bookings {
		fmt.Fprintf(w, "%v\t%v\t%v\t%v-%v\t%v\t%v\n",
			b.ID, b.FieldID, b.Date, b.StartTime, b.EndTime, formatAmount(b.TotalPrice), b.Status)
	}

	return w.Flush()
}

func (a *app) show(ctx context.Context, id string) error {
	sess, err := a.sessions.Current()

	if err != nil {
		return bk.ErrMissingIdentity
	}

	b, err := a.client.GetBooking(ctx, sess.Token, id)

	if err != nil {
		return a.lookupError(err)
	}

	fmt.Fprintf(a.out, "%v: field %v on %v %v-%v, total %v, %v\n",
		b.ID, b.FieldID, b.Date, b.StartTime, b.EndTime, formatAmount(b.TotalPrice), b.Status)

	return nil
}

func (a *app) lookupError(err error) error {
	var resErr *fieldsapi.ResponseError

	if errors.As(err, &resErr) {
		switch resErr.StatusCode {
		case http.StatusUnauthorized:
			a.sessions.Clear()
			return errors.New(bk.Rejected{Reason: bk.SessionExpired}.UserMessage())
		case http.StatusNotFound:
			return bk.ErrBookingNotFound
		}
	}

	return err
}

// formatAmount prints whole currency units, the unit prices are quoted in.
func formatAmount(amount int64) string {
	return fmt.Sprintf("$%d", amount)
}
