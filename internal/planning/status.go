package planning

import "planboard/internal/models"

// DeriveStatus maps progress and the blocked flag to the task lifecycle
// state. Recomputed on every edit; only the derived value is stored.
//
// Completed takes priority over blocked: once progress reaches 100 the
// blocked flag is ignored (and the task service clears it on save), so a
// task can never read as both finished and stuck.
func DeriveStatus(progress int, blocked bool) models.TaskStatus {
	switch {
	case progress >= 100:
		return models.StatusCompleted
	case blocked:
		return models.StatusBlocked
	case progress > 0:
		return models.StatusInProgress
	default:
		return models.StatusNotStarted
	}
}
