package domain

import "testing"

func TestTempFileSet_PreservesOrder(t *testing.T) {
	set := NewTempFileSet()
	if set.Len() != 0 {
		t.Fatal("new set should be empty")
	}

	set.Add("/tmp/a_scene_1.mp3")
	set.Add("/tmp/a_scene_1.mp4")
	set.Add("/tmp/a_scene_2.mp4")

	paths := set.Paths()
	if len(paths) != 3 {
		t.Fatalf("expected 3 paths, got %d", len(paths))
	}
	if paths[0] != "/tmp/a_scene_1.mp3" || paths[2] != "/tmp/a_scene_2.mp4" {
		t.Fatalf("paths out of order: %v", paths)
	}
}
