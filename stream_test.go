package aseprite

import "testing"

func TestStreamInterpreterUserDataOnTags(t *testing.T) {
	file := &File{Tags: []Tag{{Name: "a"}, {Name: "b"}, {Name: "c"}}}
	interp := newStreamInterpreter(file)
	interp.beginFrame(0, &Frame{})
	interp.onTags(len(file.Tags))

	ud0 := &UserData{}
	ud1 := &UserData{}
	if !interp.onUserData(ud0) {
		t.Fatal("expected first UserData to attach")
	}
	if !interp.onUserData(ud1) {
		t.Fatal("expected second UserData to attach")
	}

	if file.Tags[0].UserData != ud0 {
		t.Fatalf("tags[0].UserData = %v, want %v", file.Tags[0].UserData, ud0)
	}
	if file.Tags[1].UserData != ud1 {
		t.Fatalf("tags[1].UserData = %v, want %v", file.Tags[1].UserData, ud1)
	}
	if file.Tags[2].UserData != nil {
		t.Fatalf("tags[2].UserData = %v, want nil", file.Tags[2].UserData)
	}

	ud2 := &UserData{}
	if !interp.onUserData(ud2) {
		t.Fatal("expected third UserData to attach to remaining tag slot")
	}
	if file.Tags[2].UserData != ud2 {
		t.Fatalf("tags[2].UserData = %v, want %v", file.Tags[2].UserData, ud2)
	}
}

func TestStreamInterpreterAttachesLayerThenCel(t *testing.T) {
	file := &File{Layers: []Layer{{Name: "bg"}}}
	interp := newStreamInterpreter(file)
	frame := &Frame{Cels: []Cel{{LayerIndex: 0}}}
	interp.beginFrame(0, frame)

	interp.onLayer(0)
	layerUD := &UserData{}
	if !interp.onUserData(layerUD) {
		t.Fatal("expected layer attachment")
	}
	if file.Layers[0].UserData != layerUD {
		t.Fatal("layer user data not attached")
	}

	interp.onCel(0)
	celUD := &UserData{}
	if !interp.onUserData(celUD) {
		t.Fatal("expected cel attachment")
	}
	if frame.Cels[0].UserData != celUD {
		t.Fatal("cel user data not attached")
	}
}

func TestStreamInterpreterSpriteLevelFallback(t *testing.T) {
	file := &File{}
	interp := newStreamInterpreter(file)
	interp.beginFrame(0, &Frame{})

	ud := &UserData{}
	if !interp.onUserData(ud) {
		t.Fatal("expected sprite-level fallback attachment")
	}
	if file.UserData != ud {
		t.Fatal("sprite-level user data not attached")
	}
}

func TestStreamInterpreterUnattachedAfterFrameZero(t *testing.T) {
	file := &File{}
	interp := newStreamInterpreter(file)
	interp.beginFrame(1, &Frame{})

	if interp.onUserData(&UserData{}) {
		t.Fatal("expected no attachment on later frame with no pending target")
	}
}
