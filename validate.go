package aseprite

import "fmt"

// Severity classifies a validation Issue (spec.md §4.9).
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// IssueCode identifies the rule that produced an Issue.
type IssueCode string

const (
	IssueBadDimensions       IssueCode = "bad-dimensions"
	IssueBadColorDepth       IssueCode = "bad-color-depth"
	IssueFrameCountMismatch  IssueCode = "frame-count-mismatch"
	IssueCelLayerOutOfRange  IssueCode = "cel-layer-out-of-range"
	IssueLinkedCelOutOfRange IssueCode = "linked-cel-out-of-range"
	IssueLinkedCelNotEarlier IssueCode = "linked-cel-not-earlier"
	IssueMissingPalette      IssueCode = "missing-palette"
	IssueBadTagRange         IssueCode = "bad-tag-range"
	IssueBadSliceKey         IssueCode = "bad-slice-key"
	IssueDuplicateTilesetID  IssueCode = "duplicate-tileset-id"
	IssueChildLevelJump      IssueCode = "child-level-jump"
)

// Location pinpoints what an Issue is about, in whichever of its fields
// apply; the rest are left at their zero value.
type Location struct {
	FrameIndex int
	LayerIndex int
	TagIndex   int
	SliceIndex int
	CelIndex   int
	HasFrame   bool
	HasLayer   bool
	HasTag     bool
	HasSlice   bool
	HasCel     bool
}

// Issue is one finding from Validate (spec.md §4.9, §6.2).
type Issue struct {
	Severity Severity
	Code     IssueCode
	Message  string
	Location Location
}

// Validate runs the post-decode structural checks of spec.md §4.9 over a
// decoded File and returns every finding; it never mutates file and never
// returns an error itself, since an unparseable File never reaches here.
func Validate(file *File) []Issue {
	var issues []Issue

	if file.Header.Width == 0 || file.Header.Height == 0 {
		issues = append(issues, Issue{
			Severity: SeverityError, Code: IssueBadDimensions,
			Message: fmt.Sprintf("sprite dimensions must be positive, got %dx%d", file.Header.Width, file.Header.Height),
		})
	}

	switch file.Header.ColorDepth {
	case 8, 16, 32:
	default:
		issues = append(issues, Issue{
			Severity: SeverityError, Code: IssueBadColorDepth,
			Message: fmt.Sprintf("color depth must be 8, 16, or 32, got %d", file.Header.ColorDepth),
		})
	}

	if int(file.Header.FrameCount) != len(file.Frames) {
		issues = append(issues, Issue{
			Severity: SeverityWarning, Code: IssueFrameCountMismatch,
			Message: fmt.Sprintf("header declares %d frames but %d were decoded", file.Header.FrameCount, len(file.Frames)),
		})
	}

	if file.Header.ColorDepth == 8 && file.Palette == nil {
		issues = append(issues, Issue{
			Severity: SeverityError, Code: IssueMissingPalette,
			Message: "indexed-mode file has no palette",
		})
	}

	numLayers := len(file.Layers)
	for fi := range file.Frames {
		for ci := range file.Frames[fi].Cels {
			cel := &file.Frames[fi].Cels[ci]
			loc := Location{FrameIndex: fi, HasFrame: true, CelIndex: ci, HasCel: true}

			if int(cel.LayerIndex) >= numLayers {
				issues = append(issues, Issue{
					Severity: SeverityError, Code: IssueCelLayerOutOfRange,
					Message:  fmt.Sprintf("cel references layer %d but file has %d layers", cel.LayerIndex, numLayers),
					Location: loc,
				})
			}

			if cel.Variant == CelLinked {
				target := int(cel.LinkedFrameIndex)
				if target < 0 || target >= len(file.Frames) {
					issues = append(issues, Issue{
						Severity: SeverityError, Code: IssueLinkedCelOutOfRange,
						Message:  fmt.Sprintf("linked cel targets frame %d, file has %d frames", target, len(file.Frames)),
						Location: loc,
					})
				} else if target >= fi {
					issues = append(issues, Issue{
						Severity: SeverityWarning, Code: IssueLinkedCelNotEarlier,
						Message:  fmt.Sprintf("linked cel at frame %d targets frame %d, which is not earlier", fi, target),
						Location: loc,
					})
				}
			}
		}
	}

	for ti := range file.Tags {
		t := &file.Tags[ti]
		loc := Location{TagIndex: ti, HasTag: true}
		if int(t.From) >= len(file.Frames) || int(t.To) >= len(file.Frames) || t.From > t.To {
			issues = append(issues, Issue{
				Severity: SeverityError, Code: IssueBadTagRange,
				Message:  fmt.Sprintf("tag %q has range [%d,%d], file has %d frames", t.Name, t.From, t.To, len(file.Frames)),
				Location: loc,
			})
		}
	}

	for si := range file.Slices {
		sl := &file.Slices[si]
		for ki := range sl.Keys {
			k := &sl.Keys[ki]
			loc := Location{SliceIndex: si, HasSlice: true}
			if int(k.FrameIndex) >= len(file.Frames) {
				issues = append(issues, Issue{
					Severity: SeverityError, Code: IssueBadSliceKey,
					Message:  fmt.Sprintf("slice %q key %d targets frame %d, file has %d frames", sl.Name, ki, k.FrameIndex, len(file.Frames)),
					Location: loc,
				})
			}
			if k.Width == 0 || k.Height == 0 {
				issues = append(issues, Issue{
					Severity: SeverityError, Code: IssueBadSliceKey,
					Message:  fmt.Sprintf("slice %q key %d has non-positive dimensions %dx%d", sl.Name, ki, k.Width, k.Height),
					Location: loc,
				})
			}
		}
	}

	seenTilesetID := map[uint32]bool{}
	for i := range file.Tilesets {
		id := file.Tilesets[i].ID
		if seenTilesetID[id] {
			issues = append(issues, Issue{
				Severity: SeverityError, Code: IssueDuplicateTilesetID,
				Message: fmt.Sprintf("tileset id %d appears more than once", id),
			})
		}
		seenTilesetID[id] = true
	}

	maxChildLevel := uint16(0)
	for li := range file.Layers {
		cl := file.Layers[li].ChildLevel
		if cl > maxChildLevel+1 {
			issues = append(issues, Issue{
				Severity: SeverityWarning, Code: IssueChildLevelJump,
				Message:  fmt.Sprintf("layer %d child-level %d jumps more than one past running maximum %d", li, cl, maxChildLevel),
				Location: Location{LayerIndex: li, HasLayer: true},
			})
		}
		if cl > maxChildLevel {
			maxChildLevel = cl
		}
	}

	return issues
}
