// Package timezone provides application-timezone clock and formatting helpers.
//
//	now := timezone.Now()                   // current time in the app timezone
//	local := timezone.ToAppTime(someTime)   // convert any time to the app timezone
//	s := timezone.Format(t, time.RFC3339)   // format in the app timezone
//	t, err := timezone.Parse("2006-01-02", "2025-01-01")
//
// The timezone is configured via the APP_TIMEZONE environment variable using
// standard IANA names ("UTC", "Asia/Seoul", "Europe/London") and is loaded
// when the package is imported. Unknown names fall back to UTC.
package timezone
