package mysql

const upsertBrandingSQL = `
INSERT INTO branding
  (id, name, latitude, longitude, logo_url, description,
   contact_name, contact_address, contact_phone, contact_email)
VALUES
  (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name            = VALUES(name),
  latitude        = VALUES(latitude),
  longitude       = VALUES(longitude),
  logo_url        = VALUES(logo_url),
  description     = VALUES(description),
  contact_name    = VALUES(contact_name),
  contact_address = VALUES(contact_address),
  contact_phone   = VALUES(contact_phone),
  contact_email   = VALUES(contact_email)
`

const getBrandingSQL = `
SELECT name, latitude, longitude, logo_url, description,
       contact_name, contact_address, contact_phone, contact_email
FROM branding
WHERE id = 1
`

// -----------------------------------------------------------------------------
// ROOMS
// -----------------------------------------------------------------------------

const roomColumns = `id, room_number, type, accessible, image, description, features, room_price`

const listRoomsSQL = `SELECT ` + roomColumns + ` FROM rooms ORDER BY id`

const getRoomSQL = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ?`

const insertRoomSQL = `
INSERT INTO rooms (room_number, type, accessible, image, description, features, room_price)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

const updateRoomSQL = `
UPDATE rooms
SET room_number = ?, type = ?, accessible = ?, image = ?, description = ?, features = ?, room_price = ?
WHERE id = ?
`

const deleteRoomSQL = `DELETE FROM rooms WHERE id = ?`

// -----------------------------------------------------------------------------
// BOOKINGS
// -----------------------------------------------------------------------------

const bookingColumns = `id, room_id, firstname, lastname, deposit_paid, email, phone, checkin, checkout`

// A zero room id matches every booking.
const listBookingsSQL = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE (? = 0 OR room_id = ?)
ORDER BY id
`

const getBookingSQL = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`

const insertBookingSQL = `
INSERT INTO bookings (room_id, firstname, lastname, deposit_paid, email, phone, checkin, checkout)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

const updateBookingSQL = `
UPDATE bookings
SET room_id = ?, firstname = ?, lastname = ?, deposit_paid = ?, email = ?, phone = ?, checkin = ?, checkout = ?
WHERE id = ?
`

const deleteBookingSQL = `DELETE FROM bookings WHERE id = ?`

// -----------------------------------------------------------------------------
// MESSAGES
// -----------------------------------------------------------------------------

const messageColumns = `id, name, email, phone, subject, description, is_read`

const listMessagesSQL = `SELECT ` + messageColumns + ` FROM messages ORDER BY id`

const getMessageSQL = `SELECT ` + messageColumns + ` FROM messages WHERE id = ?`

const insertMessageSQL = `
INSERT INTO messages (name, email, phone, subject, description)
VALUES (?, ?, ?, ?, ?)
`

const markReadSQL = `UPDATE messages SET is_read = TRUE WHERE id = ?`

const deleteMessageSQL = `DELETE FROM messages WHERE id = ?`

const countUnreadSQL = `SELECT COUNT(*) FROM messages WHERE is_read = FALSE`
