package metrics

import "strings"

// StatusOther is the label for statuses outside the tracked set.
const StatusOther = "other"

var DefaultTrackedStatuses = []string{"pending", "chargeable", "paid", "failed", "cancelled", "unknown"}

// StatusLabeler folds gateway-supplied statuses into a bounded label set.
type StatusLabeler struct {
	known map[string]struct{}
}

func NewStatusLabeler(statuses ...string) StatusLabeler {
	known := make(map[string]struct{}, len(statuses))
	for _, s := range statuses {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			known[s] = struct{}{}
		}
	}
	return StatusLabeler{known: known}
}

func (l StatusLabeler) Label(status string) string {
	status = strings.ToLower(strings.TrimSpace(status))
	if _, ok := l.known[status]; ok {
		return status
	}
	return StatusOther
}
