package engine

// Remove removes paths from the session. Paths are resolved against CWD the
// same way Add resolves them, without glob expansion.
func (e *Engine) Remove(req *RemoveRequest) (*RemoveResult, error) {
	if len(req.Paths) == 0 {
		return nil, ErrNoCandidates
	}

	sess, err := e.OpenSession(req.Session)
	if err != nil {
		return nil, err
	}

	result := &RemoveResult{Session: sess.Name}
	for _, p := range req.Paths {
		abs := absPath(req.CWD, p)
		if sess.Store.RemovePaths([]string{abs}) == 0 {
			result.NotFound = append(result.NotFound, p)
			continue
		}
		result.Removed++
	}

	if result.Removed > 0 {
		if err := e.Commit(sess); err != nil {
			return nil, err
		}
	}

	result.Total = sess.Store.Len()
	return result, nil
}

// Clear empties the session.
func (e *Engine) Clear(name string) (*ClearResult, error) {
	sess, err := e.OpenSession(name)
	if err != nil {
		return nil, err
	}

	cleared := sess.Store.Len()
	sess.Store.Clear()
	if err := e.Commit(sess); err != nil {
		return nil, err
	}

	return &ClearResult{Session: sess.Name, Cleared: cleared}, nil
}
