package runtime

// WriteBackCallback patches previously-deferred bytes into parent at the
// position its WriteBackHandler anchors to — typically a length or offset
// prefix computed from a now-closed child stream.
type WriteBackCallback func(parent *Stream)

type writeBackHandler struct {
	anchor   int64
	callback WriteBackCallback
}

// SetWriteBackHandler installs the single deferred write-back callback for
// this stream, anchored at the given absolute position in whatever stream
// ultimately becomes its parent. Consumed exactly once, during flush.
func (s *Stream) SetWriteBackHandler(anchor int64, callback WriteBackCallback) {
	s.writeBack = &writeBackHandler{anchor: anchor, callback: callback}
}

// AddChildStream registers a sub-stream created during the write phase of
// the containing structure. Order mirrors creation order and determines
// write-back order.
func (s *Stream) AddChildStream(child *Stream) {
	s.children = append(s.children, child)
}

// WriteBackChildStreams walks this stream's child tree depth-first,
// post-order: grandchildren are patched into their parents before those
// parents are in turn patched into grandparents. Call with parent == nil on
// a root stream once its structure has been fully serialized.
func (s *Stream) WriteBackChildStreams(parent *Stream) {
	savedPos := s.backend.Position()

	for _, child := range s.children {
		child.WriteBackChildStreams(s)
	}
	s.children = nil

	s.backend.Seek(savedPos)

	if parent != nil && s.writeBack != nil {
		parent.backend.Seek(s.writeBack.anchor)
		s.writeBack.callback(parent)
	}
}
