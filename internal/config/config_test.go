package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/ganzhi/pkg/errors"
	"github.com/matzehuels/ganzhi/pkg/rules"
	"github.com/matzehuels/ganzhi/pkg/transit"
)

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
anhe = "mangpai"
xing = "loose"
options = "xiaoyun,liunian"
years = 20
`))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Anhe:    rules.AnheMangpai,
		Xing:    rules.XingLoose,
		Options: transit.OptXiaoyun | transit.OptLiunian,
		Years:   20,
	}, cfg)
	assert.Len(t, cfg.RelationOptions(), 2)
}

func TestDecodeKeepsDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`xing = "loose"`))
	require.NoError(t, err)

	want := Default()
	want.Xing = rules.XingLoose
	assert.Equal(t, want, cfg)
}

func TestDecodeRejects(t *testing.T) {
	tests := map[string]string{
		"syntax":      `anhe = `,
		"unknown key": `colour = "red"`,
		"anhe":        `anhe = "wide"`,
		"options":     `options = "xiaoyun,dayun"`,
		"years":       `years = 0`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(in))
			require.Error(t, err)
			assert.NotEmpty(t, errors.GetCode(err))
		})
	}

	_, err := Decode(strings.NewReader(`years = -1`))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	_, err = Decode(strings.NewReader(`colour = "red"`))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ganzhi", "config.toml"), p)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg, "missing default file")

	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(`years = 3`), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Years)

	_, err = Load(filepath.Join(dir, "nope.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`years = 0`), 0o644))
	_, err = Load(bad)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	assert.Contains(t, err.Error(), "bad.toml")
}

func TestEncodeRoundTrip(t *testing.T) {
	want := Default()
	want.Anhe = rules.AnheNormal
	want.Options = transit.OptLiunian

	var buf bytes.Buffer
	require.NoError(t, want.Encode(&buf))
	assert.Contains(t, buf.String(), `options = "liunian"`)

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
