package draft

// ExcludedSet returns the champion ids currently locked out of the pool: the
// union of both teams' bans and picks. It is recomputed from state on every
// call; the draft mutates on every action, so a cache would need
// invalidation coupled 1:1 to mutation for no win at this data size.
func (s *State) ExcludedSet() map[string]struct{} {
	excluded := make(map[string]struct{}, len(s.Actions))
	for _, slots := range [][TeamSize]string{s.Blue.Bans, s.Red.Bans, s.Blue.Picks, s.Red.Picks} {
		for _, id := range slots {
			if id != "" {
				excluded[id] = struct{}{}
			}
		}
	}
	return excluded
}

// IsAvailable reports whether a champion is in neither team's bans nor picks.
func (s *State) IsAvailable(championID string) bool {
	_, taken := s.ExcludedSet()[championID]
	return !taken
}
