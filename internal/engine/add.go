package engine

import (
	"fmt"

	"github.com/danieljhkim/projxml/internal/droplist"
)

// Add resolves the request arguments and adds the resulting paths to the session.
func (e *Engine) Add(req *AddRequest) (*AddResult, error) {
	if len(req.Args) == 0 {
		return nil, ErrNoCandidates
	}

	res, err := e.ResolveCandidates(req.CWD, req.Args, req.Glob)
	if err != nil {
		return nil, err
	}

	result, err := e.addPaths(req.Session, res.Paths)
	if err != nil {
		return nil, err
	}
	result.Unmatched = res.Unmatched
	return result, nil
}

// Drop splits a drag-and-drop payload and adds the listed paths to the session.
// Dropped paths are taken literally; no glob expansion is applied.
func (e *Engine) Drop(req *DropRequest) (*AddResult, error) {
	items, err := droplist.Split(req.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to parse drop payload: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrNoCandidates
	}

	res, err := e.ResolveCandidates(req.CWD, items, false)
	if err != nil {
		return nil, err
	}

	return e.addPaths(req.Session, res.Paths)
}

func (e *Engine) addPaths(name string, candidates []string) (*AddResult, error) {
	sess, err := e.OpenSession(name)
	if err != nil {
		return nil, err
	}

	added := sess.Store.AddPaths(candidates)
	if added > 0 {
		if err := e.Commit(sess); err != nil {
			return nil, err
		}
	}

	return &AddResult{
		Session:    sess.Name,
		Candidates: candidates,
		Added:      added,
		Total:      sess.Store.Len(),
	}, nil
}
