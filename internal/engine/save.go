package engine

import (
	"github.com/danieljhkim/projxml/internal/projectdoc"
)

// Save exports the session to an XML project document.
//
// An empty session fails with ErrEmptyStore and writes nothing. A write
// failure returns *ExportIOError and leaves the session unchanged.
func (e *Engine) Save(req *SaveRequest) (*SaveResult, error) {
	sess, err := e.OpenSession(req.Session)
	if err != nil {
		return nil, err
	}

	if req.MaxContentBytes > 0 {
		sess.Store.opts.MaxContentBytes = req.MaxContentBytes
	}
	sess.Store.opts.Atomic = req.Atomic

	dest := documentPath(req.CWD, req.Dest)
	doc, err := sess.Store.export(dest)
	if err != nil {
		return nil, err
	}

	sess.state.LastDocument = dest
	if err := e.Commit(sess); err != nil {
		return nil, err
	}

	result := &SaveResult{
		Session:   sess.Name,
		Path:      dest,
		Documents: len(doc.Documents),
	}
	for _, d := range doc.Documents {
		if d.HasContent() {
			result.WithContent++
		}
	}
	return result, nil
}

// Show builds the document Save would write without writing it.
func (e *Engine) Show(name string) (*projectdoc.Project, error) {
	sess, err := e.OpenSession(name)
	if err != nil {
		return nil, err
	}
	if sess.Store.Len() == 0 {
		return nil, ErrEmptyStore
	}
	return sess.Store.Document(), nil
}
