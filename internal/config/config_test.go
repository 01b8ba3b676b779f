package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, root, body string) {
	t.Helper()
	dir := filepath.Join(root, "input", "artifact_mark")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
}

func TestLoad_FileThenFlags(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
profiles: input/artifact_mark/profiles.yaml
input: input/artifact_mark/records.json
chars: [Hu Tao, " Xingqiu "]
workers: 2
logLevel: debug
`)

	cfg, err := Load(root, []string{"-workers", "8", "-char", "Bennett"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "input", "artifact_mark", "profiles.yaml"), cfg.ProfilesPath)
	assert.Equal(t, filepath.Join(root, "input", "artifact_mark", "records.json"), cfg.InputPath)
	assert.Equal(t, []string{"Bennett"}, cfg.Chars)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_NoFileUsesFlags(t *testing.T) {
	root := t.TempDir()
	cfg, err := Load(root, []string{"-profiles", "p.yaml", "-enka", "snap.json", "-xlsx", "out.xlsx"})
	require.NoError(t, err)

	assert.Equal(t, "p.yaml", cfg.ProfilesPath)
	assert.Equal(t, "snap.json", cfg.EnkaPath)
	assert.Empty(t, cfg.InputPath)
	assert.Equal(t, "out.xlsx", cfg.XLSXPath)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "profiles: a.yaml\ninput: r.json\nworkers: 2\n")
	t.Setenv("ARTIFACT_MARK_WORKERS", "6")
	t.Setenv("ARTIFACT_MARK_CHARS", "Hu Tao, Yelan")

	cfg, err := Load(root, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Workers)
	assert.Equal(t, []string{"Hu Tao", "Yelan"}, cfg.Chars)

	cfg, err = Load(root, []string{"-workers", "1"})
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Workers)
}

func TestLoad_DotEnv(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"),
		[]byte("ARTIFACT_MARK_LOG_FORMAT=json\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("ARTIFACT_MARK_LOG_FORMAT") })

	cfg, err := Load(root, []string{"-profiles", "p.yaml", "-input", "r.json"})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "profiles: p.yaml\ninput: r.json\nbogus: 1\n")

	_, err := Load(root, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config yaml")
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"missing profiles", []string{"-input", "r.json"}, "missing profiles"},
		{"no source", []string{"-profiles", "p.yaml"}, "exactly one"},
		{"both sources", []string{"-profiles", "p.yaml", "-input", "r.json", "-enka", "s.json"}, "exactly one"},
		{"zero workers", []string{"-profiles", "p.yaml", "-input", "r.json", "-workers", "0"}, "workers"},
		{"xlsx extension", []string{"-profiles", "p.yaml", "-input", "r.json", "-xlsx", "out.csv"}, ".xlsx"},
		{"log format", []string{"-profiles", "p.yaml", "-input", "r.json", "-log-format", "xml"}, "log format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(t.TempDir(), tc.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoad_BadWorkersFlag(t *testing.T) {
	_, err := Load(t.TempDir(), []string{"-workers", "many"})
	require.Error(t, err)
}

func TestLoad_UseExamples(t *testing.T) {
	root := filepath.Join("..", "..")
	cfg, err := Load(root, []string{"-useExamples"})
	require.NoError(t, err)

	for _, p := range []string{cfg.ProfilesPath, cfg.InputPath} {
		_, err := os.Stat(p)
		assert.NoError(t, err, p)
	}
	assert.Empty(t, cfg.EnkaPath)
	assert.Empty(t, cfg.Chars)
}

func TestLoad_SourceFlagReplacesFileSource(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "profiles: p.yaml\ninput: r.json\n")

	cfg, err := Load(root, []string{"-enka", "snap.json"})
	require.NoError(t, err)
	assert.Equal(t, "snap.json", cfg.EnkaPath)
	assert.Empty(t, cfg.InputPath)

	writeConfig(t, root, "profiles: p.yaml\nenka: s.json\n")
	cfg, err = Load(root, []string{"-input", "records.json"})
	require.NoError(t, err)
	assert.Equal(t, "records.json", cfg.InputPath)
	assert.Empty(t, cfg.EnkaPath)
}

func TestLoad_SourceEnvReplacesFileSource(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "profiles: p.yaml\ninput: r.json\n")
	t.Setenv("ARTIFACT_MARK_ENKA", "snap.json")

	cfg, err := Load(root, nil)
	require.NoError(t, err)
	assert.Equal(t, "snap.json", cfg.EnkaPath)
	assert.Empty(t, cfg.InputPath)
}
