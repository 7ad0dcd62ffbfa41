package timer

import "fmt"

// Seconds extracts the seconds part from a span given in seconds.
func Seconds(t uint64) uint64 {
	return t % 60
}

// Minutes extracts the minutes part from a span given in seconds.
func Minutes(t uint64) uint64 {
	return (t % 3600) / 60
}

// Hours extracts the hours part from a span given in seconds.
func Hours(t uint64) uint64 {
	return t / 3600
}

// FormatClock renders a span of seconds as a HH:MM:SS clock face.
func FormatClock(t uint64) string {
	return fmt.Sprintf("%02d:%02d:%02d", Hours(t), Minutes(t), Seconds(t))
}
