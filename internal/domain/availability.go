package domain

// AvailabilityResult represents the answer to an availability check
type AvailabilityResult struct {
	Available bool
	Slot      TimeSlot

	// Alternatives отсортированы по удалённости от запрошенного времени,
	// при равной удалённости - более раннее время первым
	Alternatives []TimeSlot

	RemainingCapacity int
}
