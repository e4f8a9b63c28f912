package answer

import "time"

// TimestampLayout is the ISO-8601 layout used on the wire.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Answer is the support agent's reply to a single question.
type Answer struct {
	Question  string
	Answer    string
	Category  string
	Timestamp time.Time
}

// FormatTimestamp renders the timestamp in UTC with millisecond precision.
func (a Answer) FormatTimestamp() string {
	return a.Timestamp.UTC().Format(TimestampLayout)
}
