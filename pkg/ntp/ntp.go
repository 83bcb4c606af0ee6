// Package ntp converts wall-clock instants to NTP epoch seconds for
// the session id and version of the SDP origin (o=) line.
package ntp

import "time"

// epoch is the offset in seconds between the Unix epoch
// (1970-01-01) and the NTP epoch (1900-01-01).
const epoch = 2208988800

// Seconds returns the number of NTP epoch seconds corresponding to t,
// as a real number. Specification: RFC 3550, section 4.
func Seconds(t time.Time) float64 {
	return float64(t.Unix()) + epoch
}
