package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quaver.click/internal/fs"
)

// writeWAV encodes interleaved 16-bit samples into a WAV file on memFS
func writeWAV(t *testing.T, memFS afero.Fs, path string, rate, channels, frames int) {
	t.Helper()
	f, err := memFS.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()

	samples := make([]int, frames*channels)
	for i := range samples {
		samples[i] = i % 100
	}
	enc := wav.NewEncoder(f, rate, 16, channels, 1)
	if err := enc.Write(&audio.IntBuffer{
		Data:           samples,
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		SourceBitDepth: 16,
	}); err != nil {
		t.Fatalf("Failed to encode %s: %v", path, err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Failed to finish %s: %v", path, err)
	}
}

// run executes the CLI against memFS and returns exit code, stdout and stderr
func run(t *testing.T, memFS afero.Fs, args ...string) (int, string, string) {
	t.Helper()
	cli := NewCLIWithFilesystem(memFS)
	var stdout, stderr bytes.Buffer
	code := cli.Run(append([]string{"quaver"}, args...), strings.NewReader(""), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func newSoundFS(t *testing.T) afero.Fs {
	t.Helper()
	memFS := fs.NewDefaultFactory().Memory()
	require.NoError(t, memFS.MkdirAll("/snd", 0755))
	writeWAV(t, memFS, "/snd/click.wav", 44100, 2, 4410)
	writeWAV(t, memFS, "/snd/fallback.wav", 8000, 1, 800)
	require.NoError(t, afero.WriteFile(memFS, "/snd/readme.wav", []byte("not audio at all"), 0644))
	return memFS
}

func TestCLI(t *testing.T) {
	cli := NewCLI()
	if cli == nil {
		t.Fatal("NewCLI returned nil")
	}
	if cli.rootCmd == nil || cli.rootCmd.Use != "quaver" {
		t.Fatal("Expected a cobra root command named quaver")
	}
	if _, ok := cli.resources.(*afero.ReadOnlyFs); !ok {
		t.Errorf("Expected resources to be resolved on a read-only filesystem, got %T", cli.resources)
	}
}

func TestResourcesAreReadOnly(t *testing.T) {
	memFS := afero.NewMemMapFs()
	cli := NewCLIWithFilesystem(memFS)

	if _, err := cli.resources.Create("/snd/new.wav"); err == nil {
		t.Error("Expected resource filesystem to refuse writes")
	}
	require.NoError(t, afero.WriteFile(memFS, "/snd/a.wav", []byte("x"), 0644))
	exists, err := afero.Exists(cli.resources, "/snd/a.wav")
	require.NoError(t, err)
	assert.True(t, exists, "resources see the underlying filesystem")
}

func TestVersionFlag(t *testing.T) {
	code, stdout, _ := run(t, afero.NewMemMapFs(), "--version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "quaver version "+Version+"\n", stdout)
}

func TestUnknownCommand(t *testing.T) {
	code, _, stderr := run(t, afero.NewMemMapFs(), "dance")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown command")
}

func TestTablesCommand(t *testing.T) {
	code, stdout, _ := run(t, afero.NewMemMapFs(), "--no-journal", "tables", "channel-configs")
	require.Equal(t, 0, code)

	assert.Contains(t, stdout, "channel-configs\tStereo\t0x1501\n")
	assert.Contains(t, stdout, "channel-configs\t7.1 Surround\t0x1506\n")
	assert.NotContains(t, stdout, "sample-types")

	code, stdout, _ = run(t, afero.NewMemMapFs(), "--no-journal", "tables")
	require.Equal(t, 0, code)
	for _, kind := range tableKinds {
		assert.Contains(t, stdout, kind+"\t")
	}
	assert.Contains(t, stdout, "context-attributes\tfrequency\t0x1007\n")

	code, _, stderr := run(t, afero.NewMemMapFs(), "--no-journal", "tables", "colors")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `unknown table "colors"`)
}

func TestPresetsCommand(t *testing.T) {
	code, stdout, _ := run(t, afero.NewMemMapFs(), "--no-journal", "presets")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Len(t, lines, 113)
	assert.Contains(t, lines, "GENERIC")

	code, stdout, _ = run(t, afero.NewMemMapFs(), "--no-journal", "presets", "GENERIC")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "decay_time\t1.4900\n")
	assert.Contains(t, stdout, "decay_hf_limit\ttrue\n")

	code, stdout, _ = run(t, afero.NewMemMapFs(), "--no-journal", "presets", "GENERIC", "--json")
	require.Equal(t, 0, code)
	var props map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &props))
	assert.InDelta(t, 1.49, props["DecayTime"], 1e-6)

	code, _, stderr := run(t, afero.NewMemMapFs(), "--no-journal", "presets", "BATHTUB")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown reverb preset")
}

func TestAttrsCommand(t *testing.T) {
	memFS := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFS, "/quaver.json", []byte(`{
		"context_attributes": {"frequency": 48000, "hrtf": 1},
		"distance_model": "linear"
	}`), 0644))

	code, stdout, stderr := run(t, memFS, "--no-journal", "--config", "/quaver.json", "attrs")
	require.Equal(t, 0, code, stderr)

	assert.Equal(t, strings.Join([]string{
		"frequency\t0x1007\t48000",
		"hrtf\t0x1992\t1",
		"(end)\t0x0000\t0",
		"distance model\t0xD003\tlinear",
		"reverb preset\t\tGENERIC",
	}, "\n")+"\n", stdout)
}

func TestProbeCommand(t *testing.T) {
	memFS := newSoundFS(t)

	code, stdout, stderr := run(t, memFS, "--no-journal", "--search-path", "/snd", "probe", "click", "readme", "nothing")
	assert.Equal(t, 1, code)

	assert.Contains(t, stdout, "/snd/click.wav\tWAV\t44100\tStereo\tSigned 16-bit\t4410\t100ms\t-\t")
	assert.Contains(t, stderr, "readme: ")
	assert.Contains(t, stderr, "nothing: ")
	assert.Contains(t, stderr, "2 of 3 resources failed")
}

func TestLoadCommandJournalsEvents(t *testing.T) {
	memFS := newSoundFS(t)
	require.NoError(t, afero.WriteFile(memFS, "/quaver.json", []byte(`{
		"search_paths": ["/snd"],
		"substitutes": {"missing": "fallback"}
	}`), 0644))
	dbPath := filepath.Join(t.TempDir(), "journal.db")

	code, stdout, stderr := run(t, memFS, "--config", "/quaver.json", "--journal-db", dbPath,
		"load", "--notify-stop", "click", "missing")
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "click\tclick\t4410\t100ms\t-\t18 kB\n")
	assert.Contains(t, stdout, "missing\tfallback\t800\t100ms\t-\t1.6 kB\n")
	assert.Contains(t, stderr, "journal session ")

	code, stdout, stderr = run(t, memFS, "--config", "/quaver.json", "--journal-db", dbPath,
		"load", "--notify-force-stop", "click")
	require.Equal(t, 0, code, stderr)

	code, stdout, stderr = run(t, memFS, "--config", "/quaver.json", "--journal-db", dbPath,
		"events", "--kind", "source_force_stopped")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, 1, strings.Count(stdout, "\n"))
	assert.Contains(t, stdout, "\tsource_force_stopped\tsource#1\t")
	assert.Contains(t, stdout, `"buffer":"click"`)

	code, stdout, stderr = run(t, memFS, "--config", "/quaver.json", "--journal-db", dbPath,
		"events", "--kind", "buffer_loading", "--limit", "2")
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "\tbuffer_loading\tclick\t")
	assert.Contains(t, lines[0], `"sample_rate":44100`)
	assert.Contains(t, lines[1], "\tbuffer_loading\tfallback\t")

	code, stdout, stderr = run(t, memFS, "--config", "/quaver.json", "--journal-db", dbPath,
		"events", "--since", "1 hour ago")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "\tresource_not_found\tmissing\t")
	assert.Contains(t, stdout, "\tsource_stopped\tsource#1\t")
	assert.Contains(t, stdout, "\tsource_stopped\tsource#2\t")
	assert.Contains(t, stdout, "\tsource_force_stopped\tsource#1\t")
	assert.Equal(t, 7, strings.Count(stdout, "\n"))

	code, stdout, _ = run(t, memFS, "--config", "/quaver.json", "--journal-db", dbPath,
		"events", "--subject", "fallback", "--limit", "1")
	require.Equal(t, 0, code)
	assert.Equal(t, 1, strings.Count(stdout, "\n"))
}

func TestToneCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")

	code, stdout, stderr := run(t, afero.NewMemMapFs(), "--journal-db", dbPath,
		"tonegen", "--waveform", "triangle", "--duration", "250ms", "--frequency", "220", "--name", "beep", "--notify-stop")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "beep\t44100\tMono\t32-bit float\t11025\t250ms\t44 kB\n", stdout)
	assert.Contains(t, stderr, "journal session ")

	code, stdout, stderr = run(t, afero.NewMemMapFs(), "--journal-db", dbPath, "events")
	require.Equal(t, 0, code, stderr)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "\tsource_stopped\tsource#1\t")
	assert.Contains(t, lines[1], "\tbuffer_loading\tbeep\t")
	assert.Contains(t, lines[1], `"sample_type":"32-bit float"`)

	code, stdout, _ = run(t, afero.NewMemMapFs(), "--no-journal", "tonegen", "--types")
	require.Equal(t, 0, code)
	assert.Equal(t, "impulse\nsawtooth\nsine\nsquare\ntriangle\nwhite-noise\n", stdout)

	code, _, stderr = run(t, afero.NewMemMapFs(), "--no-journal", "tonegen", "--waveform", "chirp")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown waveform")
}

func TestLoadCommandFailures(t *testing.T) {
	memFS := newSoundFS(t)

	code, stdout, stderr := run(t, memFS, "--no-journal", "--search-path", "/snd", "load", "readme", "gone")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "unsupported audio format")
	assert.Contains(t, stderr, "resource not found")
	assert.Contains(t, stderr, "2 of 2 loads failed")
	assert.NotContains(t, stderr, "journal session")
}

func TestEventsRequiresJournal(t *testing.T) {
	code, _, stderr := run(t, afero.NewMemMapFs(), "--no-journal", "events")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "journal is not enabled")
}

func TestEventsRejectsBadInput(t *testing.T) {
	code, _, stderr := run(t, afero.NewMemMapFs(), "--journal-db", ":memory:", "events", "--kind", "explosion")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown event kind")
}

func TestConfigCommands(t *testing.T) {
	memFS := afero.NewMemMapFs()

	code, stdout, stderr := run(t, memFS, "--no-journal", "config", "init", "/etc/quaver.json")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "wrote /etc/quaver.json\n", stdout)

	code, _, stderr = run(t, memFS, "--no-journal", "config", "init", "/etc/quaver.json")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "already exists")

	code, _, _ = run(t, memFS, "--no-journal", "config", "init", "--force", "/etc/quaver.json")
	assert.Equal(t, 0, code)

	code, stdout, stderr = run(t, memFS, "--config", "/etc/quaver.json", "--log-level", "error",
		"--search-path", "/a", "--search-path", "/b", "--no-journal", "config", "show")
	require.Equal(t, 0, code, stderr)

	var shown map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &shown))
	assert.Equal(t, "error", shown["log_level"])
	assert.Equal(t, []any{"/a", "/b"}, shown["search_paths"])
	assert.Equal(t, false, shown["journal"].(map[string]any)["enabled"])
}

func TestInvalidConfigFails(t *testing.T) {
	memFS := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFS, "/bad.json", []byte(`{"reverb_preset": "BATHTUB"}`), 0644))

	code, _, stderr := run(t, memFS, "--config", "/bad.json", "tables")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown reverb preset")

	code, _, stderr = run(t, afero.NewMemMapFs(), "--no-journal", "--log-level", "chatty", "tables")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid log level")
}

func TestDotEnvOverrides(t *testing.T) {
	memFS := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFS, "/work/.env", []byte("QUAVER_REVERB_PRESET=CAVE\n"), 0644))
	// registers restoration before the dotenv file sets it
	t.Setenv("QUAVER_REVERB_PRESET", "")
	require.NoError(t, os.Unsetenv("QUAVER_REVERB_PRESET"))

	code, stdout, stderr := run(t, memFS, "--env-file", "/work/.env", "--no-journal", "config", "show")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, `"reverb_preset": "CAVE"`)
}
