package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/mazetower/pkg/algorithms"
	"github.com/matzehuels/mazetower/pkg/cache"
	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/maze"
	"github.com/matzehuels/mazetower/pkg/observability"
	"github.com/matzehuels/mazetower/pkg/render"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"txt", false},
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"dot", false},
		{"SVG", true},
		{"gif", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ValidateFormat(%q) code = %v, want INVALID_FORMAT", tt.format, errors.GetCode(err))
			}
		})
	}
}

func TestValidateView(t *testing.T) {
	tests := []struct {
		view    string
		wantErr bool
	}{
		{ViewWalls, false},
		{ViewNodelink, false},
		{"tower", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			if err := ValidateView(tt.view); (err != nil) != tt.wantErr {
				t.Errorf("ValidateView(%q) error = %v, wantErr %v", tt.view, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAlgorithm(t *testing.T) {
	for _, name := range algorithms.Names() {
		if err := ValidateAlgorithm(name); err != nil {
			t.Errorf("ValidateAlgorithm(%q) error = %v", name, err)
		}
	}
	for _, name := range []string{"", "Eller", "dfs"} {
		err := ValidateAlgorithm(name)
		if !errors.Is(err, errors.ErrCodeInvalidAlgorithm) {
			t.Errorf("ValidateAlgorithm(%q) error = %v, want INVALID_ALGORITHM", name, err)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}

	if opts.Algorithm != DefaultAlgorithm {
		t.Errorf("Algorithm = %q, want %q", opts.Algorithm, DefaultAlgorithm)
	}
	if opts.Size != DefaultSize {
		t.Errorf("Size = %d, want %d", opts.Size, DefaultSize)
	}
	if opts.MaxSize != DefaultMaxSize {
		t.Errorf("MaxSize = %d, want %d", opts.MaxSize, DefaultMaxSize)
	}
	if opts.View != DefaultView {
		t.Errorf("View = %q, want %q", opts.View, DefaultView)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.CellSize != DefaultCellSize {
		t.Errorf("CellSize = %d, want %d", opts.CellSize, DefaultCellSize)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %g, want %g", opts.Scale, DefaultScale)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
	if opts.Seed != 0 {
		t.Errorf("Seed = %d, want 0 to be kept", opts.Seed)
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Algorithm: "prim", Size: 8}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first call error: %v", err)
	}
	first := opts
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call error: %v", err)
	}
	if opts.Algorithm != first.Algorithm || opts.Size != first.Size || opts.View != first.View {
		t.Errorf("second call changed options: %+v -> %+v", first, opts)
	}
}

func TestOptionsValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"negative size", Options{Size: -1}, errors.ErrCodeInvalidSize},
		{"over max", Options{Size: DefaultMaxSize + 1}, errors.ErrCodeInvalidSize},
		{"over custom max", Options{Size: 20, MaxSize: 10}, errors.ErrCodeInvalidSize},
		{"unknown algorithm", Options{Algorithm: "dfs"}, errors.ErrCodeInvalidAlgorithm},
		{"bad format", Options{Formats: []string{"svg", "bmp"}}, errors.ErrCodeInvalidFormat},
		{"bad view", Options{View: "tower"}, errors.ErrCodeInvalidInput},
		{"tiny cells", Options{CellSize: 1}, errors.ErrCodeInvalidInput},
		{"negative scale", Options{Scale: -1}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("ValidateAndSetDefaults() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestOptionsNeedsConverter(t *testing.T) {
	tests := []struct {
		formats []string
		want    bool
	}{
		{[]string{"svg", "json"}, false},
		{[]string{"svg", "png"}, true},
		{[]string{"pdf"}, true},
	}
	for _, tt := range tests {
		opts := Options{Formats: tt.formats}
		if got := opts.NeedsConverter(); got != tt.want {
			t.Errorf("NeedsConverter(%v) = %v, want %v", tt.formats, got, tt.want)
		}
	}
}

func TestGenerate(t *testing.T) {
	for _, name := range algorithms.Names() {
		t.Run(name, func(t *testing.T) {
			opts := Options{Algorithm: name, Size: 7, Seed: 3}
			if err := opts.ValidateForGenerate(); err != nil {
				t.Fatal(err)
			}
			g, steps, err := Generate(context.Background(), opts)
			if err != nil {
				t.Fatalf("Generate() error: %v", err)
			}
			if g.Size() != 7 {
				t.Errorf("Size() = %d, want 7", g.Size())
			}
			if steps == 0 {
				t.Error("Generate() reported zero steps")
			}
			if err := maze.Verify(g); err != nil {
				t.Errorf("Verify() error: %v", err)
			}
		})
	}
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := Options{Algorithm: "recdesc", Size: 64}
	if err := opts.ValidateForGenerate(); err != nil {
		t.Fatal(err)
	}
	_, steps, err := Generate(ctx, opts)
	if err != context.Canceled {
		t.Fatalf("Generate() error = %v, want context.Canceled", err)
	}
	if steps != ctxCheckInterval {
		t.Errorf("steps = %d, want %d", steps, ctxCheckInterval)
	}
}

func TestRunnerExecute(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{
		Algorithm: "eller",
		Size:      5,
		Seed:      9,
		Formats:   []string{FormatTXT, FormatSVG, FormatJSON, FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.RunID == "" {
		t.Error("RunID is empty")
	}
	if result.Algorithm != "eller" || result.Seed != 9 {
		t.Errorf("result = %s/%d, want eller/9", result.Algorithm, result.Seed)
	}
	if result.Stats.Passages != 24 {
		t.Errorf("Passages = %d, want 24", result.Stats.Passages)
	}
	if result.Stats.Steps != 5 {
		t.Errorf("Steps = %d, want 5 rows", result.Stats.Steps)
	}
	if result.GridHash != GridHash(result.Grid) {
		t.Error("GridHash does not match the grid")
	}

	txt := string(result.Artifacts[FormatTXT])
	if !strings.HasPrefix(txt, " _________") {
		t.Errorf("txt artifact starts with %q", strings.SplitN(txt, "\n", 2)[0])
	}
	if !bytes.HasPrefix(result.Artifacts[FormatSVG], []byte("<svg")) {
		t.Error("svg artifact is not SVG")
	}
	if !bytes.Contains(result.Artifacts[FormatSVG], []byte("eller 5x5")) {
		t.Error("svg artifact is missing its title")
	}
	if !bytes.Contains(result.Artifacts[FormatJSON], []byte(result.RunID)) {
		t.Error("json artifact is missing the run id")
	}
	if !bytes.HasPrefix(result.Artifacts[FormatDOT], []byte("graph G {")) {
		t.Error("dot artifact is not a DOT graph")
	}
}

func TestRunnerExecuteInvalid(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), Options{Formats: []string{"gif"}})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Execute() error = %v, want INVALID_FORMAT", err)
	}
}

func TestRunnerGenerateCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, cache.NewDefaultKeyer("test"), nil)
	ctx := context.Background()
	opts := Options{Algorithm: "kruskal", Size: 9, Seed: 5}

	first, hit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		t.Fatalf("first Generate() error: %v", err)
	}
	if hit {
		t.Error("first run should miss the cache")
	}

	second, hit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		t.Fatalf("second Generate() error: %v", err)
	}
	if !hit {
		t.Error("second run should hit the cache")
	}
	if !second.Grid.Equal(first.Grid) || second.GridHash != first.GridHash {
		t.Error("cached grid differs from generated grid")
	}
	if second.RunID == first.RunID {
		t.Error("each run should get its own id")
	}

	opts.Refresh = true
	if _, hit, _ := r.GenerateWithCacheInfo(ctx, opts); hit {
		t.Error("refresh should bypass the cache")
	}
}

func TestRunnerDeterministic(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	ctx := context.Background()
	opts := Options{Algorithm: "prim", Size: 10, Seed: 77}

	a, err := r.Generate(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Generate(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if a.GridHash != b.GridHash {
		t.Error("same seed produced different grids")
	}

	opts.Seed = 78
	c, err := r.Generate(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if a.GridHash == c.GridHash {
		t.Error("different seeds produced identical 10x10 grids")
	}
}

func TestRenderNodelinkDOT(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	result, err := r.Execute(context.Background(), Options{
		Size:    3,
		View:    ViewNodelink,
		Labels:  true,
		Formats: []string{FormatDOT, FormatTXT},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	dot := string(result.Artifacts[FormatDOT])
	if got := strings.Count(dot, " -- "); got != 8 {
		t.Errorf("DOT has %d edges, want 8", got)
	}
	if !strings.Contains(dot, "shape=circle") {
		t.Error("labelled DOT should use circle nodes")
	}
	if len(result.Artifacts[FormatTXT]) == 0 {
		t.Error("txt artifact missing in nodelink view")
	}
}

func TestRenderConverted(t *testing.T) {
	if !render.Available() {
		t.Skip("rsvg-convert not installed")
	}
	r := NewRunner(nil, nil, nil)
	result, err := r.Execute(context.Background(), Options{
		Size:    4,
		Formats: []string{FormatPNG, FormatPDF},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !bytes.HasPrefix(result.Artifacts[FormatPNG], []byte("\x89PNG")) {
		t.Error("png artifact is not a PNG")
	}
	if !bytes.HasPrefix(result.Artifacts[FormatPDF], []byte("%PDF")) {
		t.Error("pdf artifact is not a PDF")
	}
}

func TestResultFromJSON(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	result, err := r.Execute(context.Background(), Options{
		Algorithm: "sidewinder",
		Size:      6,
		Seed:      12,
		Formats:   []string{FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	loaded, err := ResultFromJSON(result.Artifacts[FormatJSON])
	if err != nil {
		t.Fatalf("ResultFromJSON() error: %v", err)
	}
	if !loaded.Grid.Equal(result.Grid) {
		t.Error("loaded grid differs")
	}
	if loaded.Algorithm != "sidewinder" || loaded.Seed != 12 || loaded.RunID != result.RunID {
		t.Errorf("loaded metadata = %s/%d/%s", loaded.Algorithm, loaded.Seed, loaded.RunID)
	}
	if loaded.Stats.Passages != 35 {
		t.Errorf("Passages = %d, want 35", loaded.Stats.Passages)
	}

	if _, err := ResultFromJSON([]byte("{")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ResultFromJSON(bad) error = %v, want INVALID_FORMAT", err)
	}
}

func TestGridHash(t *testing.T) {
	a := maze.NewGrid(2)
	b := maze.NewGrid(2)
	if GridHash(a) != GridHash(b) {
		t.Error("equal grids should hash equally")
	}
	b.Carve(0, 0, maze.East)
	if GridHash(a) == GridHash(b) {
		t.Error("different grids should hash differently")
	}
	if GridHash(maze.NewGrid(1)) == GridHash(maze.NewGrid(0)) {
		t.Error("size should be part of the hash")
	}
}

type recordingHooks struct {
	observability.NoopGeneratorHooks
	observability.NoopRenderHooks

	generated []string
	steps     int
	rendered  [][]string
}

func (h *recordingHooks) OnGenerateComplete(_ context.Context, algorithm string, _ int, steps int, _ time.Duration, err error) {
	if err == nil {
		h.generated = append(h.generated, algorithm)
		h.steps = steps
	}
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, formats []string, _ time.Duration, err error) {
	if err == nil {
		h.rendered = append(h.rendered, formats)
	}
}

func TestRunnerEmitsHooks(t *testing.T) {
	observability.Reset()
	t.Cleanup(observability.Reset)

	hooks := &recordingHooks{}
	observability.SetGeneratorHooks(hooks)
	observability.SetRenderHooks(hooks)

	r := NewRunner(nil, nil, nil)
	if _, err := r.Execute(context.Background(), Options{
		Algorithm: "binarytree",
		Size:      4,
		Formats:   []string{FormatTXT},
	}); err != nil {
		t.Fatal(err)
	}

	if len(hooks.generated) != 1 || hooks.generated[0] != "binarytree" {
		t.Errorf("generate hooks = %v, want [binarytree]", hooks.generated)
	}
	if hooks.steps == 0 {
		t.Error("generate hook should report steps")
	}
	if len(hooks.rendered) != 1 || hooks.rendered[0][0] != FormatTXT {
		t.Errorf("render hooks = %v, want [[txt]]", hooks.rendered)
	}
}
