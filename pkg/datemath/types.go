package datemath

import "errors"

// Layouts accepted for absolute dates, tried in order.
var absoluteLayouts = []string{
	DateLayout,
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// DateLayout is the wire and storage format of a calendar date.
const DateLayout = "2006-01-02"

const hoursPerDay = 24

var ErrInvalidDate = errors.New("invalid date")
