package metrics

import "time"

// RecordStorageOperation records an image storage call (save, delete, exists)
func (m *Metrics) RecordStorageOperation(driver, operation string, duration time.Duration, err error) {
	m.safeExecute("RecordStorageOperation", func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		m.StorageOperationsTotal.WithLabelValues(driver, operation, status).Inc()
		m.StorageOperationDuration.WithLabelValues(driver, operation).Observe(duration.Seconds())
	})
}
