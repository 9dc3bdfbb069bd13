package aseprite

// attachKind is the current UserData attachment target (spec.md §4.4.2).
type attachKind int

const (
	attachNone attachKind = iota
	attachLayer
	attachCel
	attachSlice
	attachTileset
	attachSprite
)

type tilesetPhase int

const (
	phaseTilesetUD tilesetPhase = iota
	phaseTileUD
)

type tilesetCursor struct {
	tilesetIdx int
	phase      tilesetPhase
	tileIndex  int
}

type tagsCursor struct {
	i int
}

// streamInterpreter resolves the wire format's implicit attachments: which
// entity a UserData chunk belongs to, and the post-Tags / post-Tileset
// cursors (spec.md §4.4). It is deliberately separate from both the
// byte-level decoder and the typed model so its rules can be unit-tested
// on their own (spec.md §9).
type streamInterpreter struct {
	file *File

	frameIdx int
	curFrame *Frame

	attachTarget   attachKind
	attachLayerIdx int
	attachCelIdx   int
	attachSliceIdx int
	attachTilesetIdx int

	lastCelIdx int // index into curFrame.Cels, for CelExtra attachment

	pendingTags      *tagsCursor
	pendingTagsTotal int
	pendingTileset   *tilesetCursor
}

func newStreamInterpreter(f *File) *streamInterpreter {
	return &streamInterpreter{file: f, lastCelIdx: -1}
}

func (s *streamInterpreter) beginFrame(idx int, frame *Frame) {
	s.frameIdx = idx
	s.curFrame = frame
	s.lastCelIdx = -1
}

func (s *streamInterpreter) clearCursors() {
	s.attachTarget = attachNone
	s.pendingTags = nil
	s.pendingTileset = nil
}

func (s *streamInterpreter) onLayer(idx int) {
	s.attachTarget = attachLayer
	s.attachLayerIdx = idx
	s.pendingTags = nil
	s.pendingTileset = nil
}

func (s *streamInterpreter) onCel(celIdx int) {
	s.attachTarget = attachCel
	s.attachCelIdx = celIdx
	s.lastCelIdx = celIdx
	s.pendingTags = nil
	s.pendingTileset = nil
}

func (s *streamInterpreter) onSlice(idx int) {
	s.attachTarget = attachSlice
	s.attachSliceIdx = idx
	s.pendingTags = nil
	s.pendingTileset = nil
}

func (s *streamInterpreter) onTileset(idx int) {
	s.attachTarget = attachTileset
	s.attachTilesetIdx = idx
	s.pendingTileset = &tilesetCursor{tilesetIdx: idx, phase: phaseTilesetUD}
	s.pendingTags = nil
}

func (s *streamInterpreter) onTags(numTags int) {
	s.pendingTags = &tagsCursor{i: 0}
	s.attachTarget = attachNone
	s.pendingTileset = nil
	s.pendingTagsTotal = numTags
}

// onOther handles Palette / OldPalette / ColorProfile / ExternalFiles
// chunks, all of which clear both the attach target and sub-cursors.
func (s *streamInterpreter) onOther() {
	s.clearCursors()
}

// onUserData applies the attachment rules of spec.md §4.4.2 in order and
// returns whether the chunk was attached anywhere.
func (s *streamInterpreter) onUserData(ud *UserData) bool {
	if s.pendingTags != nil && s.pendingTags.i < s.pendingTagsTotal {
		s.file.Tags[s.pendingTags.i].UserData = ud
		s.pendingTags.i++
		return true
	}

	if s.pendingTileset != nil {
		ts := &s.file.Tilesets[s.pendingTileset.tilesetIdx]
		switch s.pendingTileset.phase {
		case phaseTilesetUD:
			ts.UserData = ud
			s.pendingTileset.phase = phaseTileUD
			s.pendingTileset.tileIndex = 0
		default:
			idx := s.pendingTileset.tileIndex
			for len(ts.TileUserData) <= idx {
				ts.TileUserData = append(ts.TileUserData, nil)
			}
			ts.TileUserData[idx] = ud
			s.pendingTileset.tileIndex++
		}
		return true
	}

	switch s.attachTarget {
	case attachLayer:
		s.file.Layers[s.attachLayerIdx].UserData = ud
		return true
	case attachCel:
		s.curFrame.Cels[s.attachCelIdx].UserData = ud
		return true
	case attachSlice:
		s.file.Slices[s.attachSliceIdx].UserData = ud
		return true
	case attachTileset:
		s.file.Tilesets[s.attachTilesetIdx].UserData = ud
		return true
	}

	if s.frameIdx == 0 && s.attachTarget == attachNone {
		s.file.UserData = ud
		return true
	}

	return false
}
