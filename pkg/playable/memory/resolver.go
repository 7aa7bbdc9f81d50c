package memory

// Outcome is the result of revealing a card
type Outcome int

// outcome constants
const (
	// OutcomeIgnored means the reveal was not allowed and nothing changed
	OutcomeIgnored Outcome = iota
	// OutcomeFirst means the card is the first of the turn
	OutcomeFirst
	// OutcomeMatch means the card completed a pair
	OutcomeMatch
	// OutcomeMismatch means the card did not match, and both will be hidden again
	OutcomeMismatch
	// OutcomeWon means the card completed the last pair
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeFirst:
		return "first"
	case OutcomeMatch:
		return "match"
	case OutcomeMismatch:
		return "mismatch"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// MarshalText encodes the outcome by name
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// CanReveal returns true if revealing the position would change the state
func (s State) CanReveal(position int) bool {
	if s.won || len(s.revealed) >= 2 {
		return false
	}

	if position < 0 || position >= s.deck.Len() {
		return false
	}

	return !s.matched[position] && !s.IsRevealed(position)
}

// Reveal turns the card at position face up
// Requests that aren't allowed (see CanReveal) return the state unchanged with OutcomeIgnored.
// The second card of a turn is compared immediately: a pair is moved to the matched set,
// a mismatch is left face up until Hide is applied.
func Reveal(s State, position int) (State, Outcome) {
	if !s.CanReveal(position) {
		return s, OutcomeIgnored
	}

	next := s.clone()
	next.running = true
	next.revealed = append(next.revealed, position)

	if len(next.revealed) == 1 {
		return next, OutcomeFirst
	}

	return resolveTurn(next)
}

// resolveTurn must only be called with exactly two revealed cards
func resolveTurn(s State) (State, Outcome) {
	s.moves++

	first := s.deck.Cards[s.revealed[0]]
	second := s.deck.Cards[s.revealed[1]]
	if !first.Matches(second) {
		return s, OutcomeMismatch
	}

	for _, position := range s.revealed {
		s.matched[position] = true
	}
	s.matchedCount += 2
	s.revealed = nil

	if s.matchedCount == s.deck.Len() {
		s.won = true
		s.running = false
		return s, OutcomeWon
	}

	return s, OutcomeMatch
}

// Hide turns a mismatched pair face down again
// Outside of PhaseReverting the state is returned unchanged.
func Hide(s State) State {
	if s.Phase() != PhaseReverting {
		return s
	}

	next := s.clone()
	next.revealed = nil
	return next
}
