package milestones

// Crossed returns, in ascending order, every threshold t in the table with
// lastCheckedSeconds < t <= currentSeconds. A delayed evaluation that jumped
// past several milestones gets all of them, not just the highest.
//
// Callers keep their own high-water mark: the live ticker advances it every
// tick, the sweep always passes 0 and leans on the award transaction's
// idempotency instead.
func Crossed(table []Milestone, lastCheckedSeconds, currentSeconds int64) []int64 {
	var crossed []int64
	for _, m := range table {
		if m.Seconds > currentSeconds {
			break
		}
		if m.Seconds > lastCheckedSeconds {
			crossed = append(crossed, m.Seconds)
		}
	}
	return crossed
}
