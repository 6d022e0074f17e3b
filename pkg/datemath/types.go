package datemath

// ISODate is the layout of resolved dates (YYYY-MM-DD).
const ISODate = "2006-01-02"

// weekdays is Monday-first and scanned in this order; the first matching
// phrase wins.
var weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}
