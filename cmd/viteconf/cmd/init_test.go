package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bianoble/viteconf/internal/schema"
)

func TestInitScaffold(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		force    bool
		wantErr  string
		want     string
	}{
		{name: "fresh project", want: initTemplate},
		{name: "existing file kept", existing: "server:\n  port: 1\n", wantErr: "already exists", want: "server:\n  port: 1\n"},
		{name: "force replaces", existing: "server:\n  port: 1\n", force: true, want: initTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overrides := filepath.Join(t.TempDir(), "vite.yaml")
			if tt.existing != "" {
				require.NoError(t, os.WriteFile(overrides, []byte(tt.existing), 0644))
			}

			oldConfig, oldQuiet := configPath, quiet
			configPath, quiet, initForce = overrides, true, tt.force
			t.Cleanup(func() { configPath, quiet, initForce = oldConfig, oldQuiet, false })

			err := initCmd.RunE(initCmd, nil)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			data, err := os.ReadFile(overrides)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestInitTemplateIsValidConfig(t *testing.T) {
	cfg, err := schema.Parse([]byte(initTemplate))
	require.NoError(t, err)
	require.NotNil(t, cfg.Resolve)
	require.Len(t, cfg.Resolve.Alias, 1)
	assert.Equal(t, "~", cfg.Resolve.Alias[0].Find.Str())
}

func TestInitThenRender(t *testing.T) {
	web := setupProject(t, "")
	require.NoError(t, os.Remove(configPath))

	require.NoError(t, initCmd.RunE(initCmd, nil))
	require.NoError(t, renderCmd.RunE(renderCmd, nil))

	data, err := os.ReadFile(filepath.Join(web, "vite.config.js"))
	require.NoError(t, err)
	text := string(data)

	tilde := `{ find: "~", replacement: fileURLToPath(new URL("./app", import.meta.url)) }`
	dollar := `{ find: "$", replacement: fileURLToPath(new URL("./", import.meta.url)) }`
	assert.Contains(t, text, tilde)
	assert.Contains(t, text, dollar)
	assert.Less(t, strings.Index(text, dollar), strings.Index(text, tilde), "template alias should follow the built-in ones")
	assert.Contains(t, text, "clientFiles: ['./app/root.jsx']")
	assert.Contains(t, text, "sourcemap: false")
	assert.Contains(t, text, "port: process.env.PORT")
}
