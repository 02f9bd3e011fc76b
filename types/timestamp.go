package types

import (
	"math"
	"time"
)

// UnixEpochLVSeconds is the Unix epoch expressed in seconds of the host
// epoch (1904-01-01 00:00:00 UTC), for shifting timestamps between them.
const UnixEpochLVSeconds int64 = 2082844800

// LVTime mirrors the host's 128-bit timestamp: whole seconds since the
// 1904 epoch and a 64-bit binary fraction of a second. Field order matches
// the little-endian in-memory layout, fraction first.
type LVTime struct {
	fraction uint64
	seconds  int64
}

// TimeFromParts builds a timestamp from whole seconds (1904 epoch) and the
// binary fraction.
func TimeFromParts(seconds int64, fraction uint64) LVTime {
	return LVTime{fraction: fraction, seconds: seconds}
}

// Parts returns the whole seconds (1904 epoch) and binary fraction.
func (t LVTime) Parts() (seconds int64, fraction uint64) {
	return t.seconds, t.fraction
}

// Seconds returns the whole seconds since the 1904 epoch.
func (t LVTime) Seconds() int64 {
	return t.seconds
}

// SubSeconds returns the fractional second as a float.
func (t LVTime) SubSeconds() float64 {
	return float64(t.fraction) / float64(math.MaxUint64)
}

// TimeFromLVEpoch builds a timestamp from fractional seconds since the
// 1904 epoch.
func TimeFromLVEpoch(seconds float64) LVTime {
	whole, frac := math.Modf(seconds)
	return TimeFromParts(int64(whole), uint64(frac*float64(math.MaxUint64)))
}

// ToLVEpoch returns fractional seconds since the 1904 epoch.
func (t LVTime) ToLVEpoch() float64 {
	return float64(t.seconds) + t.SubSeconds()
}

// TimeFromUnixEpoch builds a timestamp from fractional seconds since the
// Unix epoch.
func TimeFromUnixEpoch(seconds float64) LVTime {
	return TimeFromLVEpoch(seconds + float64(UnixEpochLVSeconds))
}

// ToUnixEpoch returns fractional seconds since the Unix epoch.
func (t LVTime) ToUnixEpoch() float64 {
	return t.ToLVEpoch() - float64(UnixEpochLVSeconds)
}

// TimeFrom converts a Go time to the host representation.
func TimeFrom(v time.Time) LVTime {
	seconds := v.Unix() + UnixEpochLVSeconds
	fraction := uint64(float64(v.Nanosecond()) / 1e9 * float64(math.MaxUint64))
	return TimeFromParts(seconds, fraction)
}

// Time converts to a Go time in UTC.
func (t LVTime) Time() time.Time {
	nanos := int64(t.SubSeconds() * 1e9)
	return time.Unix(t.seconds-UnixEpochLVSeconds, nanos).UTC()
}
