package dispatcher

import (
	"fmt"
	"strings"
)

// Snapshot renders the full dispatcher state as display lines: the
// clock and next visited queue, the menu sorted by item name, then
// every queue in creation order with its occupancy, skip marker and
// head-to-tail task list. It is a pure read and is also appended
// automatically once per turn.
func (s *Service) Snapshot() []string {
	next := "None"
	if len(s.order) > 0 {
		next = s.order[s.cursor%len(s.order)]
	}
	lines := []string{fmt.Sprintf("display time=%d next=%s", s.clock.Now(), next)}

	entries := s.menu.Entries()
	items := make([]string, 0, len(entries))
	for _, entry := range entries {
		items = append(items, fmt.Sprintf("%s:%d", entry.Name, entry.Cost))
	}
	lines = append(lines, fmt.Sprintf("display menu=[%s]", strings.Join(items, ",")))

	for _, id := range s.order {
		q := s.queues[id]
		skip := ""
		if q.skip {
			skip = " skip"
		}
		var tasks []string
		for task := range q.ring.Items() {
			tasks = append(tasks, fmt.Sprintf("%s:%d", task.ID, task.Remaining))
		}
		lines = append(lines, fmt.Sprintf("display %s [%d/%d]%s -> [%s]",
			id, q.ring.Len(), q.ring.Cap(), skip, strings.Join(tasks, ",")))
	}
	return lines
}
