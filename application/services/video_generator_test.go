package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/faizurrehmandel/ai-video-generator-v1/application/ports/inbound"
	"github.com/faizurrehmandel/ai-video-generator-v1/application/ports/outbound"
	"github.com/faizurrehmandel/ai-video-generator-v1/domain"
	"github.com/faizurrehmandel/ai-video-generator-v1/infrastructure/adapters"
)

type fakeScriptGenerator struct {
	scenes []domain.Scene
	err    error
	calls  int
}

func (f *fakeScriptGenerator) Generate(_ context.Context, _ string) ([]domain.Scene, error) {
	f.calls++
	return f.scenes, f.err
}

type fakeSynthesizer struct {
	err   error
	calls []string
}

func (f *fakeSynthesizer) Synthesize(_ context.Context, req outbound.SynthesizeSpeechRequest) error {
	f.calls = append(f.calls, req.DestPath)
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(req.DestPath, []byte("audio"), 0644)
}

type fakeFootageSource struct {
	err   error
	calls []string
}

func (f *fakeFootageSource) Fetch(_ context.Context, req outbound.FetchFootageRequest) error {
	f.calls = append(f.calls, req.DestPath)
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(req.DestPath, []byte("footage"), 0644)
}

type fakeAssembler struct {
	err    error
	assets []domain.SceneAsset
	calls  int
}

func (f *fakeAssembler) Assemble(assets []domain.SceneAsset, destPath string) error {
	f.calls++
	f.assets = assets
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(destPath, []byte("final"), 0644)
}

type fakePublisher struct{}

func (f *fakePublisher) Publish(_ context.Context, req outbound.PublishArtifactRequest) (string, error) {
	return "http://localhost:5000/static/videos/" + req.FileName, nil
}

type pipelineFixture struct {
	generator *videoGenerator
	script    *fakeScriptGenerator
	synth     *fakeSynthesizer
	footage   *fakeFootageSource
	assembler *fakeAssembler
	tempDir   string
	videoDir  string
}

func newPipelineFixture(t *testing.T, scenes []domain.Scene) *pipelineFixture {
	t.Helper()
	fixture := &pipelineFixture{
		script:    &fakeScriptGenerator{scenes: scenes},
		synth:     &fakeSynthesizer{},
		footage:   &fakeFootageSource{},
		assembler: &fakeAssembler{},
		tempDir:   t.TempDir(),
		videoDir:  t.TempDir(),
	}
	fixture.generator = NewVideoGenerator(adapters.NewZerologWrapper(), fixture.script, fixture.synth,
		fixture.footage, fixture.assembler, &fakePublisher{}, fixture.tempDir, fixture.videoDir).(*videoGenerator)
	return fixture
}

func (p *pipelineFixture) tempFileCount(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir(p.tempDir)
	if err != nil {
		t.Fatal("failed to read temp dir:", err)
	}
	return len(entries)
}

func twoScenes() []domain.Scene {
	return []domain.Scene{
		{Narration: "The empire rises.", Keywords: "rome, colosseum", Index: 1},
		{Narration: "The empire falls.", Keywords: "ruins, sunset", Index: 2},
	}
}

func TestVideoGenerator_Success(t *testing.T) {
	fixture := newPipelineFixture(t, twoScenes())

	res, err := fixture.generator.Generate(context.Background(), inbound.GenerateVideoParams{
		RequestID: "req-1",
		Topic:     "The history of the Roman Empire",
	})
	if err != nil {
		t.Fatal("expected success, got:", err)
	}
	if !strings.Contains(res.VideoURL, "req-1.mp4") {
		t.Fatalf("unexpected video URL: %s", res.VideoURL)
	}

	if len(fixture.synth.calls) != 2 {
		t.Fatalf("expected 2 audio files, got %d", len(fixture.synth.calls))
	}
	if len(fixture.footage.calls) != 2 {
		t.Fatalf("expected 2 footage files, got %d", len(fixture.footage.calls))
	}
	if len(fixture.assembler.assets) != 2 {
		t.Fatalf("expected 2 scene assets, got %d", len(fixture.assembler.assets))
	}

	if count := fixture.tempFileCount(t); count != 0 {
		t.Fatalf("expected all temp files cleaned up, %d left", count)
	}
	if _, err := os.Stat(filepath.Join(fixture.videoDir, "req-1.mp4")); err != nil {
		t.Fatal("output artifact should survive cleanup:", err)
	}
}

func TestVideoGenerator_EmptyScript(t *testing.T) {
	fixture := newPipelineFixture(t, []domain.Scene{})

	_, err := fixture.generator.Generate(context.Background(), inbound.GenerateVideoParams{
		RequestID: "req-2",
		Topic:     "anything",
	})
	if !errors.Is(err, domain.ErrScriptGenerationFailed) {
		t.Fatal("expected script generation failure, got:", err)
	}
	if len(fixture.synth.calls) != 0 || len(fixture.footage.calls) != 0 {
		t.Fatal("no scene processing should happen for an empty script")
	}
}

func TestVideoGenerator_ScriptError(t *testing.T) {
	fixture := newPipelineFixture(t, nil)
	fixture.script.err = errors.New("model unavailable")

	_, err := fixture.generator.Generate(context.Background(), inbound.GenerateVideoParams{
		RequestID: "req-3",
		Topic:     "anything",
	})
	if !errors.Is(err, domain.ErrScriptGenerationFailed) {
		t.Fatal("expected script generation failure, got:", err)
	}
}

func TestVideoGenerator_MissingKeywordsAbortsMidway(t *testing.T) {
	scenes := []domain.Scene{
		{Narration: "one", Keywords: "city", Index: 1},
		{Narration: "two", Keywords: "   ", Index: 2},
		{Narration: "three", Keywords: "ocean", Index: 3},
	}
	fixture := newPipelineFixture(t, scenes)

	_, err := fixture.generator.Generate(context.Background(), inbound.GenerateVideoParams{
		RequestID: "req-4",
		Topic:     "anything",
	})
	if !errors.Is(err, domain.ErrMissingSceneKeywords) {
		t.Fatal("expected missing keywords failure, got:", err)
	}
	if !strings.Contains(err.Error(), "scene 2") {
		t.Fatalf("error should name the offending scene: %v", err)
	}

	// Scene 1 was fully processed, scene 2's audio was synthesized
	// before the keyword check, scene 3 never started.
	if len(fixture.footage.calls) != 1 {
		t.Fatalf("expected footage fetched for scene 1 only, got %d calls", len(fixture.footage.calls))
	}
	if fixture.assembler.calls != 0 {
		t.Fatal("assembly should not run after an aborted scene loop")
	}
	if count := fixture.tempFileCount(t); count != 0 {
		t.Fatalf("cleanup should still remove scene 1 files, %d left", count)
	}
}

func TestVideoGenerator_SynthesisFailure(t *testing.T) {
	fixture := newPipelineFixture(t, twoScenes())
	fixture.synth.err = errors.New("voice service down")

	_, err := fixture.generator.Generate(context.Background(), inbound.GenerateVideoParams{
		RequestID: "req-5",
		Topic:     "anything",
	})
	if !errors.Is(err, domain.ErrAssetAcquisitionFailed) {
		t.Fatal("expected asset acquisition failure, got:", err)
	}
	if count := fixture.tempFileCount(t); count != 0 {
		t.Fatalf("expected temp dir drained, %d left", count)
	}
}

func TestVideoGenerator_NarrationOptional(t *testing.T) {
	scenes := []domain.Scene{
		{Narration: "", Keywords: "mountains", Index: 1},
	}
	fixture := newPipelineFixture(t, scenes)

	_, err := fixture.generator.Generate(context.Background(), inbound.GenerateVideoParams{
		RequestID: "req-6",
		Topic:     "anything",
	})
	if err != nil {
		t.Fatal("missing narration should not fail the request:", err)
	}
	if len(fixture.synth.calls) != 0 {
		t.Fatal("audio generation should be skipped without narration")
	}
	if fixture.assembler.assets[0].AudioPath != "" {
		t.Fatal("scene asset should carry an empty audio path")
	}
}

func TestVideoGenerator_AssemblyFailure(t *testing.T) {
	fixture := newPipelineFixture(t, twoScenes())
	fixture.assembler.err = errors.New("encoder crashed")

	_, err := fixture.generator.Generate(context.Background(), inbound.GenerateVideoParams{
		RequestID: "req-7",
		Topic:     "anything",
	})
	if !errors.Is(err, domain.ErrAssemblyFailed) {
		t.Fatal("expected assembly failure, got:", err)
	}
	if count := fixture.tempFileCount(t); count != 0 {
		t.Fatalf("expected temp dir drained, %d left", count)
	}
}

func TestVideoGenerator_CleanupIdempotent(t *testing.T) {
	fixture := newPipelineFixture(t, nil)

	set := domain.NewTempFileSet()
	set.Add(filepath.Join(fixture.tempDir, "never_created.mp3"))
	set.Add(filepath.Join(fixture.tempDir, "also_missing.mp4"))

	// Must not panic or error on paths that were never written.
	fixture.generator.cleanup("req-8", set)
	fixture.generator.cleanup("req-8", set)
}
