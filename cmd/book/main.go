package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"pet-care-booking/internal/bookingform"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "book",
		Usage: "book pet care from the command line",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api-url", Value: "http://localhost:5000", EnvVars: []string{"BOOK_API_URL"}},
			&cli.DurationFlag{Name: "timeout", Value: 10 * time.Second},
			&cli.StringFlag{Name: "name"},
			&cli.StringFlag{Name: "email"},
			&cli.StringFlag{Name: "phone"},
			&cli.StringFlag{Name: "pet", Value: string(bookingform.PetTypeDog), Usage: "Dog or Cat"},
			&cli.StringFlag{Name: "count", Value: "1", Usage: "number of pets"},
			&cli.StringFlag{Name: "start", Usage: "YYYY-MM-DD (default today)"},
			&cli.StringFlag{Name: "end", Usage: "YYYY-MM-DD (default tomorrow)"},
			&cli.StringFlag{Name: "time", Usage: "daily visit window, e.g. 9-10am"},
			&cli.StringFlag{Name: "description"},
			&cli.BoolFlag{Name: "dry-run", Usage: "only print days and estimated cost"},
		},
		Action: book,
	}
}

func book(c *cli.Context) error {
	form, err := formFromFlags(c, time.Now())
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%d day(s), %d %s, estimated cost $%.2f\n",
		form.Days(), form.PetCount, form.PetType, form.EstimatedCost())
	if c.Bool("dry-run") {
		return nil
	}

	client, err := bookingform.NewClient(c.String("api-url"), c.Duration("timeout"))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
	defer cancel()

	// Sin API no tiene sentido armar la reserva.
	if _, err := client.Ping(ctx); err != nil {
		return errors.Wrapf(err, "api not reachable at %s", c.String("api-url"))
	}

	b := bookingform.NewBooking(client, time.Now)
	if err := b.Update(func(f *bookingform.Form) { *f = form }); err != nil {
		return err
	}

	if err := b.Submit(ctx); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "booking confirmed, order #%d\n", b.OrderID())
	return nil
}

func formFromFlags(c *cli.Context, now time.Time) (bookingform.Form, error) {
	f := bookingform.NewForm(now)

	pt, err := bookingform.ParsePetType(c.String("pet"))
	if err != nil {
		return f, err
	}
	count, err := bookingform.ParsePetCount(c.String("count"))
	if err != nil {
		return f, err
	}
	f.PetType = pt
	f.PetCount = count

	if s := c.String("start"); s != "" {
		if f.StartDate, err = bookingform.ParseDate(s); err != nil {
			return f, err
		}
		if c.String("end") == "" {
			f.EndDate = f.StartDate.AddDate(0, 0, 1)
		}
	}
	if s := c.String("end"); s != "" {
		if f.EndDate, err = bookingform.ParseDate(s); err != nil {
			return f, err
		}
	}

	f.Name = c.String("name")
	f.Email = c.String("email")
	f.Phone = c.String("phone")
	f.DailyTime = c.String("time")
	f.Description = c.String("description")
	return f, nil
}
