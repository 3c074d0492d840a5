package engine

// List describes every path in the session and whether its text would be
// embedded on save.
func (e *Engine) List(name string) (*ListResult, error) {
	sess, err := e.OpenSession(name)
	if err != nil {
		return nil, err
	}

	result := &ListResult{
		Session:      sess.Name,
		LastDocument: sess.LastDocument(),
		Entries:      make([]Inspection, 0, sess.Store.Len()),
	}
	for _, p := range sess.Store.Paths() {
		result.Entries = append(result.Entries, sess.Store.Inspect(p))
	}

	return result, nil
}
