package metrics

// IncrementUserRegistered increments the registration counter
func (m *Metrics) IncrementUserRegistered() {
	m.safeExecute("IncrementUserRegistered", func() {
		m.UsersRegisteredTotal.Inc()
	})
}

// IncrementAccommodationCreated increments the accommodation creation counter
func (m *Metrics) IncrementAccommodationCreated() {
	m.safeExecute("IncrementAccommodationCreated", func() {
		m.AccommodationsCreatedTotal.Inc()
	})
}

// IncrementVoteCast counts a vote submission; created distinguishes a new
// vote from an overwritten one
func (m *Metrics) IncrementVoteCast(created bool) {
	m.safeExecute("IncrementVoteCast", func() {
		result := "updated"
		if created {
			result = "created"
		}
		m.VotesCastTotal.WithLabelValues(result).Inc()
	})
}

// IncrementCommentCreated increments the comment creation counter
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentsCreatedTotal.Inc()
	})
}

// IncrementImageUploaded increments the image upload counter
func (m *Metrics) IncrementImageUploaded() {
	m.safeExecute("IncrementImageUploaded", func() {
		m.ImagesUploadedTotal.Inc()
	})
}

// SetUsersTotal sets the users gauge
func (m *Metrics) SetUsersTotal(count int64) {
	m.safeExecute("SetUsersTotal", func() {
		m.UsersTotal.Set(float64(count))
	})
}

// SetAccommodationsTotal sets the accommodations gauge
func (m *Metrics) SetAccommodationsTotal(count int64) {
	m.safeExecute("SetAccommodationsTotal", func() {
		m.AccommodationsTotal.Set(float64(count))
	})
}

// SetVotesTotal sets the votes gauge
func (m *Metrics) SetVotesTotal(count int64) {
	m.safeExecute("SetVotesTotal", func() {
		m.VotesTotal.Set(float64(count))
	})
}

// SetCommentsTotal sets the comments gauge
func (m *Metrics) SetCommentsTotal(count int64) {
	m.safeExecute("SetCommentsTotal", func() {
		m.CommentsTotal.Set(float64(count))
	})
}
