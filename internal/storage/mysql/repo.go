package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"restful_booker/internal/domain"
)

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

type Repo struct{ db *sql.DB }

var _ domain.Store = (*Repo)(nil)

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface{ Scan(dest ...any) error }

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// touched maps "no rows affected" to ErrNotFound. MySQL reports zero affected
// rows for updates that change nothing, so existence is checked separately.
func (r *Repo) touched(ctx context.Context, res sql.Result, err error, table string, id int) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil || n > 0 {
		return err
	}
	var one int
	err = r.db.QueryRowContext(ctx, "SELECT 1 FROM "+table+" WHERE id = ?", id).Scan(&one)
	return notFound(err)
}

// ---- branding ----

func (r *Repo) GetBranding(ctx context.Context) (domain.Branding, error) {
	var b domain.Branding
	err := r.db.QueryRowContext(ctx, getBrandingSQL).Scan(
		&b.Name, &b.Map.Latitude, &b.Map.Longitude, &b.LogoURL, &b.Description,
		&b.Contact.Name, &b.Contact.Address, &b.Contact.Phone, &b.Contact.Email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Branding{}, nil
	}
	return b, err
}

func (r *Repo) PutBranding(ctx context.Context, b domain.Branding) error {
	_, err := r.db.ExecContext(ctx, upsertBrandingSQL,
		b.Name, b.Map.Latitude, b.Map.Longitude, b.LogoURL, b.Description,
		b.Contact.Name, b.Contact.Address, b.Contact.Phone, b.Contact.Email,
	)
	return err
}

// ---- rooms ----

func scanRoom(s scanner) (domain.Room, error) {
	var rm domain.Room
	var features []byte
	if err := s.Scan(&rm.RoomID, &rm.RoomNumber, &rm.Type, &rm.Accessible, &rm.Image,
		&rm.Description, &features, &rm.RoomPrice); err != nil {
		return domain.Room{}, err
	}
	if err := json.Unmarshal(features, &rm.Features); err != nil {
		return domain.Room{}, fmt.Errorf("room %d features: %w", rm.RoomID, err)
	}
	return rm, nil
}

func roomArgs(rm domain.Room) []any {
	features := rm.Features
	if features == nil {
		features = []string{}
	}
	fj, _ := json.Marshal(features)
	return []any{rm.RoomNumber, string(rm.Type), rm.Accessible, rm.Image, rm.Description, string(fj), rm.RoomPrice}
}

func (r *Repo) ListRooms(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Room{}
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *Repo) GetRoom(ctx context.Context, id int) (domain.Room, error) {
	rm, err := scanRoom(r.db.QueryRowContext(ctx, getRoomSQL, id))
	return rm, notFound(err)
}

func (r *Repo) CreateRoom(ctx context.Context, rm domain.Room) (domain.Room, error) {
	res, err := r.db.ExecContext(ctx, insertRoomSQL, roomArgs(rm)...)
	if err != nil {
		return domain.Room{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Room{}, err
	}
	rm.RoomID = int(id)
	return rm, nil
}

func (r *Repo) UpdateRoom(ctx context.Context, id int, rm domain.Room) (domain.Room, error) {
	res, err := r.db.ExecContext(ctx, updateRoomSQL, append(roomArgs(rm), id)...)
	if err := r.touched(ctx, res, err, "rooms", id); err != nil {
		return domain.Room{}, err
	}
	rm.RoomID = id
	return rm, nil
}

func (r *Repo) DeleteRoom(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteRoomSQL, id)
	return r.touched(ctx, res, err, "rooms", id)
}

// ---- bookings ----

func scanBooking(s scanner) (domain.Booking, error) {
	var b domain.Booking
	var email, phone sql.NullString
	if err := s.Scan(&b.BookingID, &b.RoomID, &b.Firstname, &b.Lastname, &b.DepositPaid,
		&email, &phone, &b.BookingDates.Checkin, &b.BookingDates.Checkout); err != nil {
		return domain.Booking{}, err
	}
	b.Email = email.String
	b.Phone = phone.String
	return b, nil
}

func bookingArgs(b domain.Booking) []any {
	return []any{b.RoomID, b.Firstname, b.Lastname, b.DepositPaid, valStr(b.Email), valStr(b.Phone),
		b.BookingDates.Checkin, b.BookingDates.Checkout}
}

func (r *Repo) ListBookings(ctx context.Context, roomID int) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, listBookingsSQL, roomID, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) GetBooking(ctx context.Context, id int) (domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRowContext(ctx, getBookingSQL, id))
	return b, notFound(err)
}

func (r *Repo) CreateBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	res, err := r.db.ExecContext(ctx, insertBookingSQL, bookingArgs(b)...)
	if err != nil {
		return domain.Booking{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Booking{}, err
	}
	b.BookingID = int(id)
	return b, nil
}

func (r *Repo) UpdateBooking(ctx context.Context, id int, b domain.Booking) (domain.Booking, error) {
	res, err := r.db.ExecContext(ctx, updateBookingSQL, append(bookingArgs(b), id)...)
	if err := r.touched(ctx, res, err, "bookings", id); err != nil {
		return domain.Booking{}, err
	}
	b.BookingID = id
	return b, nil
}

func (r *Repo) DeleteBooking(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteBookingSQL, id)
	return r.touched(ctx, res, err, "bookings", id)
}

// ---- messages ----

func scanMessage(s scanner) (domain.Message, error) {
	var m domain.Message
	err := s.Scan(&m.MessageID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Description, &m.Read)
	return m, err
}

func (r *Repo) ListMessages(ctx context.Context) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx, listMessagesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *Repo) GetMessage(ctx context.Context, id int) (domain.Message, error) {
	m, err := scanMessage(r.db.QueryRowContext(ctx, getMessageSQL, id))
	return m, notFound(err)
}

func (r *Repo) CreateMessage(ctx context.Context, m domain.Message) (domain.Message, error) {
	res, err := r.db.ExecContext(ctx, insertMessageSQL, m.Name, m.Email, m.Phone, m.Subject, m.Description)
	if err != nil {
		return domain.Message{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Message{}, err
	}
	m.MessageID = int(id)
	m.Read = false
	return m, nil
}

func (r *Repo) MarkMessageRead(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, markReadSQL, id)
	return r.touched(ctx, res, err, "messages", id)
}

func (r *Repo) DeleteMessage(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteMessageSQL, id)
	return r.touched(ctx, res, err, "messages", id)
}

func (r *Repo) CountUnread(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, countUnreadSQL).Scan(&n)
	return n, err
}
