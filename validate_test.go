package aseprite

import "testing"

func hasIssue(issues []Issue, code IssueCode) bool {
	for _, i := range issues {
		if i.Code == code {
			return true
		}
	}
	return false
}

func TestValidateCleanFile(t *testing.T) {
	file := &File{
		Header: Header{Width: 16, Height: 16, ColorDepth: 32, FrameCount: 1},
		Frames: []Frame{{}},
		Layers: []Layer{{Name: "Layer 1"}},
	}
	issues := Validate(file)
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}

func TestValidateBadDimensions(t *testing.T) {
	file := &File{Header: Header{Width: 0, Height: 16, ColorDepth: 32}}
	issues := Validate(file)
	if !hasIssue(issues, IssueBadDimensions) {
		t.Fatalf("expected bad-dimensions issue, got %+v", issues)
	}
}

func TestValidateBadColorDepth(t *testing.T) {
	file := &File{Header: Header{Width: 1, Height: 1, ColorDepth: 12}}
	issues := Validate(file)
	if !hasIssue(issues, IssueBadColorDepth) {
		t.Fatalf("expected bad-color-depth issue, got %+v", issues)
	}
}

func TestValidateMissingPaletteOnIndexedMode(t *testing.T) {
	file := &File{Header: Header{Width: 1, Height: 1, ColorDepth: 8}}
	issues := Validate(file)
	if !hasIssue(issues, IssueMissingPalette) {
		t.Fatalf("expected missing-palette issue, got %+v", issues)
	}
}

func TestValidateCelLayerOutOfRange(t *testing.T) {
	file := &File{
		Header: Header{Width: 1, Height: 1, ColorDepth: 32, FrameCount: 1},
		Frames: []Frame{{Cels: []Cel{{LayerIndex: 5}}}},
	}
	issues := Validate(file)
	if !hasIssue(issues, IssueCelLayerOutOfRange) {
		t.Fatalf("expected cel-layer-out-of-range issue, got %+v", issues)
	}
}

func TestValidateLinkedCelNotEarlierWarns(t *testing.T) {
	file := &File{
		Header: Header{Width: 1, Height: 1, ColorDepth: 32, FrameCount: 2},
		Layers: []Layer{{}},
		Frames: []Frame{
			{Cels: []Cel{{Variant: CelLinked, LinkedFrameIndex: 1}}},
			{},
		},
	}
	issues := Validate(file)
	if !hasIssue(issues, IssueLinkedCelNotEarlier) {
		t.Fatalf("expected linked-cel-not-earlier issue, got %+v", issues)
	}
}

func TestValidateBadTagRange(t *testing.T) {
	file := &File{
		Header: Header{Width: 1, Height: 1, ColorDepth: 32, FrameCount: 2},
		Frames: []Frame{{}, {}},
		Tags:   []Tag{{From: 1, To: 0}},
	}
	issues := Validate(file)
	if !hasIssue(issues, IssueBadTagRange) {
		t.Fatalf("expected bad-tag-range issue, got %+v", issues)
	}
}

func TestValidateDuplicateTilesetID(t *testing.T) {
	file := &File{
		Header:   Header{Width: 1, Height: 1, ColorDepth: 32},
		Tilesets: []Tileset{{ID: 1}, {ID: 1}},
	}
	issues := Validate(file)
	if !hasIssue(issues, IssueDuplicateTilesetID) {
		t.Fatalf("expected duplicate-tileset-id issue, got %+v", issues)
	}
}

func TestValidateChildLevelJump(t *testing.T) {
	file := &File{
		Header: Header{Width: 1, Height: 1, ColorDepth: 32},
		Layers: []Layer{{ChildLevel: 0}, {ChildLevel: 2}},
	}
	issues := Validate(file)
	if !hasIssue(issues, IssueChildLevelJump) {
		t.Fatalf("expected child-level-jump issue, got %+v", issues)
	}
}
