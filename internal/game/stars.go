package game

// Stars rates a finished session from its drop counters and the city goal.
func Stars(correct, wrong, goal int) int {
	total := correct + wrong
	accuracy := 0.0
	if total > 0 {
		accuracy = float64(correct) / float64(total)
	}
	collected := float64(correct)
	target := float64(goal)

	switch {
	case accuracy >= 0.9 && collected >= target*0.8:
		return 3
	case accuracy >= 0.7 && collected >= target*0.5:
		return 2
	case correct >= 3:
		return 1
	default:
		return 0
	}
}

// Result is the end-of-session summary handed to persistence.
type Result struct {
	CityID          string
	Score           int
	Correct         int
	Wrong           int
	RemainingLitter int
	RemainingTime   int
	Stars           int
	HitsTaken       int
	ShieldBlocks    int
	NPCsStunned     int
}

// Coins is the currency earned by the session, one per score point.
func (r Result) Coins() int {
	return max(r.Score, 0)
}

// Result summarizes the session. It is meaningful at any time but is
// normally read once the session is over.
func (s *Session) Result() Result {
	return Result{
		CityID:          s.city.ID,
		Score:           s.score,
		Correct:         s.correct,
		Wrong:           s.wrong,
		RemainingLitter: len(s.litter),
		RemainingTime:   s.remaining,
		Stars:           Stars(s.correct, s.wrong, s.city.TrashCount),
		HitsTaken:       s.hitsTaken,
		ShieldBlocks:    s.shieldBlocks,
		NPCsStunned:     s.stunned,
	}
}
