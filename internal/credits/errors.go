package credits

import "errors"

var ErrNoBookings = errors.New("no bookings to credit")
