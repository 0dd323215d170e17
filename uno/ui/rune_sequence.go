package ui

const initialRune = 'A'

// runeSequence labels hand positions A, B, C and so on, then wraps to a.
type runeSequence struct {
	currentRune rune
}

func (s *runeSequence) next() rune {
	if s.currentRune == 0 {
		s.currentRune = initialRune
	}
	currentRune := s.currentRune
	switch s.currentRune {
	case 'Z':
		s.currentRune = 'a'
	case 'z':
		s.currentRune = initialRune
	default:
		s.currentRune++
	}
	return currentRune
}
