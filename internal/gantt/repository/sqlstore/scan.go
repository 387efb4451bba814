package sqlstore

import (
	"database/sql"
	"time"

	"project-management/pkg/datemath"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
}

// parseDate converts a nullable DATE column to a calendar date; NULL gives the zero time.
// Drivers hand DATE back either as text or as time.Time, which database/sql renders as RFC 3339.
func parseDate(ns sql.NullString) (time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return time.Time{}, nil
	}
	return datemath.ParseAbsolute(ns.String)
}

// parseTimestamp is best effort: created_at only orders rows, which the query already did.
func parseTimestamp(ns sql.NullString) time.Time {
	if !ns.Valid {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ns.String); err == nil {
			return t
		}
	}
	return time.Time{}
}
