package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"restful_booker/internal/adapters/booker"
	"restful_booker/internal/domain"
	"restful_booker/internal/fixtures"
	"restful_booker/internal/randdata"
)

// call is one request whose status alone decides the outcome.
type call func(ctx context.Context, cl *booker.Client) (*booker.Response, error)

func status(want int, c call) Check {
	return func(ctx context.Context, r *Runner) (int, error) {
		resp, err := c(ctx, r.Client)
		return expectStatus(resp, err, want)
	}
}

func slug(s string) string { return strings.ReplaceAll(s, " ", "-") }

// Scenarios returns every check in a stable order.
func Scenarios() []Scenario {
	var all []Scenario
	all = append(all, authScenarios()...)
	all = append(all, brandingScenarios()...)
	all = append(all, reportScenarios()...)
	all = append(all, messageScenarios()...)
	all = append(all, roomScenarios()...)
	all = append(all, bookingScenarios()...)
	all = append(all, endToEndScenarios()...)
	return all
}

// ---- auth ----

func authScenarios() []Scenario {
	return []Scenario{
		{Name: "auth/login", Run: func(ctx context.Context, r *Runner) (int, error) {
			resp, err := r.Client.Auth.Login(ctx)
			if code, err := expectStatus(resp, err, http.StatusOK); err != nil {
				return code, err
			}
			var t domain.Token
			if err := resp.JSON(&t); err != nil {
				return resp.StatusCode, err
			}
			if len(t.Token) != domain.TokenLength {
				return resp.StatusCode, fmt.Errorf("%w: token %q is not %d characters", ErrMismatch, t.Token, domain.TokenLength)
			}
			return resp.StatusCode, nil
		}},
		{Name: "auth/login-invalid", Run: status(http.StatusForbidden, func(ctx context.Context, cl *booker.Client) (*booker.Response, error) {
			return cl.Auth.LoginWith(ctx, "admin", randdata.AlphaNumeric(12))
		})},
		{Name: "auth/logout", Run: withToken(func(ctx context.Context, cl *booker.Client, tok string) (*booker.Response, error) {
			return cl.Auth.Logout(ctx, tok)
		}, http.StatusOK)},
		{Name: "auth/validate", Run: withToken(func(ctx context.Context, cl *booker.Client, tok string) (*booker.Response, error) {
			return cl.Auth.Validate(ctx, tok)
		}, http.StatusOK)},
		{Name: "auth/validate-unknown", Run: withToken(func(ctx context.Context, cl *booker.Client, tok string) (*booker.Response, error) {
			other := randdata.AlphaNumeric(domain.TokenLength)
			for other == tok {
				other = randdata.AlphaNumeric(domain.TokenLength)
			}
			return cl.Auth.Validate(ctx, other)
		}, http.StatusForbidden)},
		{Name: "auth/logout-then-validate", Run: withToken(func(ctx context.Context, cl *booker.Client, tok string) (*booker.Response, error) {
			resp, err := cl.Auth.Logout(ctx, tok)
			if _, err := expectStatus(resp, err, http.StatusOK); err != nil {
				return nil, err
			}
			return cl.Auth.Validate(ctx, tok)
		}, http.StatusForbidden)},
	}
}

// withToken logs in first and hands the fresh token to c.
func withToken(c func(ctx context.Context, cl *booker.Client, tok string) (*booker.Response, error), want int) Check {
	return func(ctx context.Context, r *Runner) (int, error) {
		tok, err := r.Client.Auth.Token(ctx)
		if err != nil {
			return 0, err
		}
		resp, err := c(ctx, r.Client, tok)
		return expectStatus(resp, err, want)
	}
}

// ---- branding ----

func getBranding(ctx context.Context, cl *booker.Client) (domain.Branding, error) {
	resp, err := cl.Branding.Get(ctx)
	if _, err := expectStatus(resp, err, http.StatusOK); err != nil {
		return domain.Branding{}, err
	}
	var b domain.Branding
	if err := resp.JSON(&b); err != nil {
		return domain.Branding{}, err
	}
	return b, nil
}

func brandingScenarios() []Scenario {
	out := []Scenario{
		{Name: "branding/get", Run: status(http.StatusOK, func(ctx context.Context, cl *booker.Client) (*booker.Response, error) {
			return cl.Branding.Get(ctx)
		})},
		{Name: "branding/empty-token", Run: status(http.StatusForbidden, func(ctx context.Context, cl *booker.Client) (*booker.Response, error) {
			return cl.Branding.UpdateWithToken(ctx, "", booker.NewBranding())
		})},
	}
	for _, f := range fixtures.ValidBranding() {
		out = append(out, Scenario{Name: "branding/valid/" + slug(f.Name), Run: brandingChanges(f)})
	}
	for _, f := range fixtures.InvalidBranding() {
		out = append(out, Scenario{Name: "branding/invalid/" + slug(f.Name), Run: brandingRejected(f)})
	}
	return out
}

// brandingChanges sends the fixture and checks the stored name follows it.
func brandingChanges(f fixtures.Branding) Check {
	return func(ctx context.Context, r *Runner) (int, error) {
		want := booker.NewBranding(f.Options...)
		resp, err := r.Client.Branding.Put(ctx, want)
		code, err := expectStatus(resp, err, f.WantStatus)
		if err != nil {
			return code, err
		}
		got, err := getBranding(ctx, r.Client)
		if err != nil {
			return code, err
		}
		if got.Name != want.Name || got.Contact.Address != want.Contact.Address {
			return code, fmt.Errorf("%w: branding not updated, name %q want %q", ErrMismatch, got.Name, want.Name)
		}
		return code, nil
	}
}

// brandingRejected sends the fixture and checks branding did not move.
func brandingRejected(f fixtures.Branding) Check {
	return func(ctx context.Context, r *Runner) (int, error) {
		before, err := getBranding(ctx, r.Client)
		if err != nil {
			return 0, err
		}
		resp, err := r.Client.Branding.Update(ctx, f.Options...)
		code, err := expectStatus(resp, err, f.WantStatus)
		if err != nil {
			return code, err
		}
		after, err := getBranding(ctx, r.Client)
		if err != nil {
			return code, err
		}
		if after != before {
			return code, fmt.Errorf("%w: rejected update changed branding to %+v", ErrMismatch, after)
		}
		return code, nil
	}
}

// ---- report ----

func reportScenarios() []Scenario {
	return []Scenario{
		{Name: "report/all", Run: status(http.StatusOK, func(ctx context.Context, cl *booker.Client) (*booker.Response, error) {
			return cl.Report.AllRooms(ctx)
		})},
		{Name: "report/room-1", Run: status(http.StatusOK, func(ctx context.Context, cl *booker.Client) (*booker.Response, error) {
			return cl.Report.Room(ctx, 1)
		})},
	}
}

// ---- message ----

func messageScenarios() []Scenario {
	out := []Scenario{
		{Name: "message/list", Run: status(http.StatusOK, func(ctx context.Context, cl *booker.Client) (*booker.Response, error) {
			return cl.Message.List(ctx)
		})},
		{Name: "message/count", Run: status(http.StatusOK, func(ctx context.Context, cl *booker.Client) (*booker.Response, error) {
			return cl.Message.Count(ctx)
		})},
		{Name: "message/get-1", Run: status(http.StatusOK, func(ctx context.Context, cl *booker.Client) (*booker.Response, error) {
			return cl.Message.Get(ctx, 1)
		})},
		{Name: "message/read-1", Run: withToken(func(ctx context.Context, cl *booker.Client, tok string) (*booker.Response, error) {
			return cl.Message.MarkRead(ctx, 1, tok)
		}, http.StatusOK)},
		{Name: "message/delete-without-token", Run: status(http.StatusForbidden, func(ctx context.Context, cl *booker.Client) (*booker.Response, error) {
			return cl.Message.Delete(ctx, 1, "")
		})},
	}
	for _, f := range append(fixtures.ValidMessage(), fixtures.InvalidMessage()...) {
		kind := "valid"
		if f.WantStatus != http.StatusOK {
			kind = "invalid"
		}
		send := func(ctx context.Context, cl *booker.Client) (*booker.Response, error) {
			return cl.Message.Create(ctx, f.Options...)
		}
		out = append(out, Scenario{Name: "message/" + kind + "/" + slug(f.Name), Run: status(f.WantStatus, send)})
	}
	return out
}

// ---- room ----

func roomScenarios() []Scenario {
	return []Scenario{
		{Name: "room/list", Run: status(http.StatusOK, func(ctx context.Context, cl *booker.Client) (*booker.Response, error) {
			return cl.Room.List(ctx)
		})},
		{Name: "room/create", Run: status(http.StatusOK, func(ctx context.Context, cl *booker.Client) (*booker.Response, error) {
			return cl.Room.Create(ctx)
		})},
		{Name: "room/create-and-list", Run: func(ctx context.Context, r *Runner) (int, error) {
			number := randdata.IntBetween(1000, 99999)
			resp, err := r.Client.Room.Create(ctx, booker.RoomNumber(number))
			code, err := expectStatus(resp, err, http.StatusOK)
			if err != nil {
				return code, err
			}
			rooms, err := listRooms(ctx, r.Client)
			if err != nil {
				return code, err
			}
			for _, rm := range rooms {
				if rm.RoomNumber == number {
					return code, nil
				}
			}
			return code, fmt.Errorf("%w: room number %d not listed", ErrMismatch, number)
		}},
		{Name: "room/delete", Run: func(ctx context.Context, r *Runner) (int, error) {
			resp, err := r.Client.Room.Create(ctx, booker.RoomNumber(randdata.IntBetween(1000, 99999)))
			if code, err := expectStatus(resp, err, http.StatusOK); err != nil {
				return code, err
			}
			id, err := r.Client.Room.CreatedID(resp)
			if err != nil {
				return resp.StatusCode, err
			}
			tok, err := r.Client.Auth.Token(ctx)
			if err != nil {
				return 0, err
			}
			resp, err = r.Client.Room.Delete(ctx, id, tok)
			code, err := expectStatus(resp, err, http.StatusOK)
			if err != nil {
				return code, err
			}
			rooms, err := listRooms(ctx, r.Client)
			if err != nil {
				return code, err
			}
			for _, rm := range rooms {
				if rm.RoomID == id {
					return code, fmt.Errorf("%w: room %d still listed after delete", ErrMismatch, id)
				}
			}
			return code, nil
		}},
	}
}

func listRooms(ctx context.Context, cl *booker.Client) ([]domain.Room, error) {
	resp, err := cl.Room.List(ctx)
	if _, err := expectStatus(resp, err, http.StatusOK); err != nil {
		return nil, err
	}
	var body struct {
		Rooms []domain.Room `json:"rooms"`
	}
	if err := resp.JSON(&body); err != nil {
		return nil, err
	}
	return body.Rooms, nil
}

// ---- booking ----

func bookingScenarios() []Scenario {
	return []Scenario{
		{Name: "booking/list-room-1", Run: status(http.StatusOK, func(ctx context.Context, cl *booker.Client) (*booker.Response, error) {
			return cl.Booking.List(ctx, 1)
		})},
		{Name: "booking/create", Run: func(ctx context.Context, r *Runner) (int, error) {
			in, out := r.Stays.Next(2)
			resp, err := r.Client.Booking.Create(ctx, in, out, 1)
			return expectStatus(resp, err, http.StatusOK)
		}},
		{Name: "booking/round-trip", Run: bookingRoundTrip},
	}
}

// bookingRoundTrip creates, reads, updates and deletes one booking.
func bookingRoundTrip(ctx context.Context, r *Runner) (int, error) {
	cl := r.Client
	in, out := r.Stays.Next(3)
	resp, err := cl.Booking.Create(ctx, in, out, 1)
	if code, err := expectStatus(resp, err, http.StatusOK); err != nil {
		return code, err
	}
	id, err := cl.Booking.CreatedID(resp)
	if err != nil {
		return resp.StatusCode, err
	}

	resp, err = cl.Booking.Get(ctx, id)
	if code, err := expectStatus(resp, err, http.StatusOK); err != nil {
		return code, err
	}
	var bk domain.Booking
	if err := resp.JSON(&bk); err != nil {
		return resp.StatusCode, err
	}

	tok, err := cl.Auth.Token(ctx)
	if err != nil {
		return 0, err
	}
	bk.Firstname = randdata.Alpha(8)
	resp, err = cl.Booking.Update(ctx, id, bk, tok)
	if code, err := expectStatus(resp, err, http.StatusOK); err != nil {
		return code, err
	}
	resp, err = cl.Booking.Get(ctx, id)
	if code, err := expectStatus(resp, err, http.StatusOK); err != nil {
		return code, err
	}
	var got domain.Booking
	if err := resp.JSON(&got); err != nil {
		return resp.StatusCode, err
	}
	if got.Firstname != bk.Firstname {
		return resp.StatusCode, fmt.Errorf("%w: firstname %q want %q", ErrMismatch, got.Firstname, bk.Firstname)
	}

	resp, err = cl.Booking.Delete(ctx, id, tok)
	if code, err := expectStatus(resp, err, http.StatusOK); err != nil {
		return code, err
	}
	resp, err = cl.Booking.Get(ctx, id)
	return expectStatus(resp, err, http.StatusNotFound)
}

// ---- end to end ----

func endToEndScenarios() []Scenario {
	return []Scenario{
		{Name: "e2e/booking", Run: changes(func(ctx context.Context, r *Runner) (*booker.Response, error) {
			in, out := r.Stays.Next(2)
			return r.Client.Booking.Create(ctx, in, out, 1)
		}, bookingsPart, reportPart)},
		{Name: "e2e/room", Run: changes(func(ctx context.Context, r *Runner) (*booker.Response, error) {
			return r.Client.Room.Create(ctx, booker.RoomNumber(randdata.IntBetween(1000, 99999)))
		}, roomsPart)},
		{Name: "e2e/message", Run: changes(func(ctx context.Context, r *Runner) (*booker.Response, error) {
			msg := booker.NewMessage()
			msg.Subject = "run " + r.RunID[:8]
			return r.Client.Message.Send(ctx, msg)
		}, messagesPart)},
	}
}

type snapshotPart struct {
	name string
	of   func(Snapshot) string
}

var (
	bookingsPart = snapshotPart{"bookings", func(s Snapshot) string { return s.Bookings }}
	roomsPart    = snapshotPart{"rooms", func(s Snapshot) string { return s.Rooms }}
	messagesPart = snapshotPart{"messages", func(s Snapshot) string { return s.Messages }}
	reportPart   = snapshotPart{"report", func(s Snapshot) string { return s.Report }}
)

// changes snapshots, performs write, snapshots again and requires every
// listed part to differ.
func changes(write func(ctx context.Context, r *Runner) (*booker.Response, error), parts ...snapshotPart) Check {
	return func(ctx context.Context, r *Runner) (int, error) {
		before, err := TakeSnapshot(ctx, r.Client, 1)
		if err != nil {
			return 0, err
		}
		resp, err := write(ctx, r)
		code, err := expectStatus(resp, err, http.StatusOK)
		if err != nil {
			return code, err
		}
		after, err := TakeSnapshot(ctx, r.Client, 1)
		if err != nil {
			return code, err
		}
		for _, p := range parts {
			if p.of(before) == p.of(after) {
				return code, fmt.Errorf("%w: %s unchanged after write", ErrMismatch, p.name)
			}
		}
		return code, nil
	}
}
