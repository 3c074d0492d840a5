package engine

import (
	"github.com/danieljhkim/projxml/internal/config"
)

// Open replaces the session's paths with the sources listed in an XML
// project document.
//
// By default the document is parsed before the session is touched, so a
// failure keeps the previous paths. With Destructive (or importMode:
// destructive) the session is emptied first and stays empty on failure.
func (e *Engine) Open(req *OpenRequest) (*OpenResult, error) {
	mode := ""
	if req.Destructive {
		mode = config.ImportDestructive
	}

	sess, err := e.openSession(req.Session, mode)
	if err != nil {
		return nil, err
	}

	src := absPath(req.CWD, req.Source)
	loaded, importErr := sess.Store.ImportXML(src)
	if importErr != nil {
		// A destructive import has already emptied the set; persist that
		if sess.Store.Options().ImportMode == config.ImportDestructive {
			if err := e.Commit(sess); err != nil {
				return nil, err
			}
		}
		return nil, importErr
	}

	sess.state.LastDocument = src
	if err := e.Commit(sess); err != nil {
		return nil, err
	}

	return &OpenResult{
		Session: sess.Name,
		Path:    src,
		Loaded:  loaded,
	}, nil
}
