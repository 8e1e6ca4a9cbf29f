package mock_services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/faizurrehmandel/ai-video-generator-v1/application/ports/outbound"
	"github.com/faizurrehmandel/ai-video-generator-v1/domain"
	"github.com/faizurrehmandel/ai-video-generator-v1/infrastructure/adapters"
)

func TestStubScriptGenerator_ScenesAreUsable(t *testing.T) {
	generator := NewStubScriptGenerator(adapters.NewZerologWrapper())

	scenes, err := generator.Generate(context.Background(), "deep sea creatures")
	if err != nil {
		t.Fatal("stub should never fail:", err)
	}
	if len(scenes) == 0 {
		t.Fatal("stub should return at least one scene")
	}
	for _, scene := range scenes {
		if strings.TrimSpace(scene.Keywords) == "" {
			t.Fatalf("scene %d has no keywords, the pipeline would reject it", scene.Index)
		}
		if scene.Index == 0 {
			t.Fatal("scene indexes should be assigned")
		}
	}
	if !strings.Contains(scenes[0].Narration, "deep sea creatures") {
		t.Fatalf("narration should mention the topic: %q", scenes[0].Narration)
	}
}

func TestStubSpeechSynthesizer_WritesFile(t *testing.T) {
	synth := NewStubSpeechSynthesizer(adapters.NewZerologWrapper())
	dest := filepath.Join(t.TempDir(), "scene_1.mp3")

	err := synth.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text:     "hello",
		DestPath: dest,
	})
	if err != nil {
		t.Fatal("stub should never fail:", err)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Fatal("stub should write a file to the destination path:", err)
	}
}

func TestStubFootageSource_WritesFile(t *testing.T) {
	source := NewStubFootageSource(adapters.NewZerologWrapper())
	dest := filepath.Join(t.TempDir(), "scene_1.mp4")

	err := source.Fetch(context.Background(), outbound.FetchFootageRequest{
		Keywords: "ocean",
		DestPath: dest,
	})
	if err != nil {
		t.Fatal("stub should never fail:", err)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Fatal("stub should write a file to the destination path:", err)
	}
}

func TestStubVideoAssembler_ConcatenatesScenes(t *testing.T) {
	dir := t.TempDir()
	sceneOne := filepath.Join(dir, "scene_1.mp4")
	sceneTwo := filepath.Join(dir, "scene_2.mp4")
	if err := os.WriteFile(sceneOne, []byte("first"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(sceneTwo, []byte("second"), 0644); err != nil {
		t.Fatal(err)
	}

	dest := filepath.Join(dir, "final.mp4")
	assembler := NewStubVideoAssembler(adapters.NewZerologWrapper())
	err := assembler.Assemble([]domain.SceneAsset{
		{VideoPath: sceneOne},
		{VideoPath: sceneTwo},
	}, dest)
	if err != nil {
		t.Fatal("stub should assemble readable scene files:", err)
	}

	payload, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal("stub should produce an artifact:", err)
	}
	if string(payload) != "firstsecond" {
		t.Fatalf("artifact should contain every scene in order, got %q", payload)
	}
}

func TestStubVideoAssembler_MissingSceneFile(t *testing.T) {
	dir := t.TempDir()
	assembler := NewStubVideoAssembler(adapters.NewZerologWrapper())

	err := assembler.Assemble([]domain.SceneAsset{
		{VideoPath: filepath.Join(dir, "missing.mp4")},
	}, filepath.Join(dir, "final.mp4"))
	if err == nil {
		t.Fatal("expected an error for a missing scene file")
	}
}
