package scheduling

import "fmt"

// FormatMinutes renders a minute offset since midnight as a zero-padded
// 24-hour HH:MM string. The hour component is not clamped to 23; cursor
// arithmetic is expected to stay within a single day's practical range.
func FormatMinutes(totalMinutes int) string {
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}
