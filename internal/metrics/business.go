package metrics

import "github.com/dondr1/lastminparty/internal/domain"

// IncrementEventCreated increments the event creation counter
func (m *Metrics) IncrementEventCreated() {
	m.safeExecute("IncrementEventCreated", func() {
		m.EventCreatedTotal.Inc()
	})
}

// IncrementSwipeRecorded increments the swipe counter for a decision
func (m *Metrics) IncrementSwipeRecorded(decision domain.SwipeDecision) {
	m.safeExecute("IncrementSwipeRecorded", func() {
		m.SwipeRecordedTotal.WithLabelValues(string(decision)).Inc()
	})
}

// IncrementInviteCreated increments the invite creation counter
func (m *Metrics) IncrementInviteCreated() {
	m.safeExecute("IncrementInviteCreated", func() {
		m.InviteCreatedTotal.Inc()
	})
}

// IncrementInviteResolved increments the invite resolution counter for a terminal status
func (m *Metrics) IncrementInviteResolved(status domain.InviteStatus) {
	m.safeExecute("IncrementInviteResolved", func() {
		m.InviteResolvedTotal.WithLabelValues(string(status)).Inc()
	})
}

// IncrementParticipantJoined increments the confirmed join counter
func (m *Metrics) IncrementParticipantJoined() {
	m.safeExecute("IncrementParticipantJoined", func() {
		m.ParticipantJoinedTotal.Inc()
	})
}

// IncrementParticipantRemoved increments the eviction counter
func (m *Metrics) IncrementParticipantRemoved() {
	m.safeExecute("IncrementParticipantRemoved", func() {
		m.ParticipantRemovedTotal.Inc()
	})
}

// IncrementParticipantReconciled increments the reconcile repair counter
func (m *Metrics) IncrementParticipantReconciled() {
	m.safeExecute("IncrementParticipantReconciled", func() {
		m.ParticipantReconciledTotal.Inc()
	})
}

// SetEventsTotal sets the total events gauge
func (m *Metrics) SetEventsTotal(count int64) {
	m.safeExecute("SetEventsTotal", func() {
		m.EventsTotal.Set(float64(count))
	})
}

// SetInvitesPendingTotal sets the pending invites gauge
func (m *Metrics) SetInvitesPendingTotal(count int64) {
	m.safeExecute("SetInvitesPendingTotal", func() {
		m.InvitesPendingTotal.Set(float64(count))
	})
}
