package elimination

import (
	"github.com/bloops-games/colorparty/internal/strpool"
)

// FormatWinners joins names the way the winner announcement reads:
// "A", "A and B", "A, B, and C".
func FormatWinners(names []string) string {
	sb := strpool.Get()
	defer strpool.Put(sb)

	switch len(names) {
	case 0:
		return ""
	case 1:
		sb.WriteString(names[0])
	case 2:
		sb.WriteString(names[0])
		sb.WriteString(" and ")
		sb.WriteString(names[1])
	default:
		for i, name := range names[:len(names)-1] {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(name)
		}
		sb.WriteString(", and ")
		sb.WriteString(names[len(names)-1])
	}

	return sb.String()
}

// WinnerAnnouncement returns the line broadcast when the match is won, empty without winners.
func WinnerAnnouncement(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return FormatWinners(names) + " WON THE GAME!"
}
