package store

import "sort"

// Follow records that followerID follows targetID. Both directions of the
// edge are written under one lock so the indexes never disagree. Repeat
// calls are no-ops.
func (s *Store) Follow(followerID, targetID string) {
	s.followMu.Lock()
	addEdge(s.following, followerID, targetID)
	addEdge(s.followers, targetID, followerID)
	s.followMu.Unlock()
}

// Unfollow removes the edge from both indexes. Unfollowing someone never
// followed is a no-op.
func (s *Store) Unfollow(followerID, targetID string) {
	s.followMu.Lock()
	delete(s.following[followerID], targetID)
	delete(s.followers[targetID], followerID)
	s.followMu.Unlock()
}

// Followers returns who follows userID, sorted for stable output.
func (s *Store) Followers(userID string) []string {
	s.followMu.RLock()
	out := setToSlice(s.followers[userID])
	s.followMu.RUnlock()
	sort.Strings(out)
	return out
}

// Following returns whom userID follows, sorted for stable output.
func (s *Store) Following(userID string) []string {
	s.followMu.RLock()
	out := setToSlice(s.following[userID])
	s.followMu.RUnlock()
	sort.Strings(out)
	return out
}

func (s *Store) IsFollowing(followerID, targetID string) bool {
	s.followMu.RLock()
	_, ok := s.following[followerID][targetID]
	s.followMu.RUnlock()
	return ok
}

func addEdge(index map[string]map[string]struct{}, from, to string) {
	set := index[from]
	if set == nil {
		set = make(map[string]struct{})
		index[from] = set
	}
	set[to] = struct{}{}
}

func setToSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}
