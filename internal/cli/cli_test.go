package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chtl/nametags/internal/cli"
	"github.com/chtl/nametags/layout"
)

const form = `{"labels": [{"title": "Sam Wolfson", "subtitle": "he/him", "print": true}, {}, {}, {"title": "Ada", "print": true}]}`

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	for _, k := range []string{"PORT", "LOG_LEVEL", "NAMETAGS_TEMPLATE", "NAMETAGS_LOGO",
		"NAMETAGS_FONT_REGULAR", "NAMETAGS_FONT_SEMIBOLD", "NAMETAGS_MAX_BODY"} {
		t.Setenv(k, "")
	}
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCommand(&errOut)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRenderToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "form.json")
	outPath := filepath.Join(dir, "tags.pdf")
	require.NoError(t, os.WriteFile(in, []byte(form), 0o644))

	_, stderr, err := run(t, "", "render", "-i", in, "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Contains(t, stderr, "sheet written")
}

func TestRenderStdinToStdout(t *testing.T) {
	stdout, _, err := run(t, form, "render", "-o", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "%PDF-"))
}

func TestRenderBackgroundWithoutTemplate(t *testing.T) {
	_, _, err := run(t, form, "render", "-o", "-", "--background")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no template")
}

func TestRenderBadForm(t *testing.T) {
	_, _, err := run(t, `{"labels": [{},{},{},{},{},{},{}]}`, "render", "-o", "-")
	require.ErrorContains(t, err, "too many labels")
}

func TestLayoutJSON(t *testing.T) {
	stdout, _, err := run(t, form, "layout", "--json")
	require.NoError(t, err)

	var placements []layout.TagPlacement
	require.NoError(t, json.Unmarshal([]byte(stdout), &placements))
	require.Len(t, placements, 2)
	assert.Equal(t, layout.Coordinate{Column: 0, Row: 0}, placements[0].Cell)
	assert.Equal(t, layout.Coordinate{Column: 1, Row: 1}, placements[1].Cell)
	assert.Equal(t, 272.0, placements[1].Title.Y)
}

func TestLayoutTable(t *testing.T) {
	stdout, _, err := run(t, form, "layout")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Sam Wolfson")
	assert.Contains(t, stdout, "(1,1)")
	assert.Contains(t, stdout, "semibold")
}

func TestConfigFileGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nametags.toml")
	require.NoError(t, os.WriteFile(path, []byte("[geometry]\ntop_band = 3\n"), 0o644))

	stdout, _, err := run(t, form, "--config", path, "layout", "--json")
	require.NoError(t, err)

	var placements []layout.TagPlacement
	require.NoError(t, json.Unmarshal([]byte(stdout), &placements))
	require.NotEmpty(t, placements)
	assert.Equal(t, 554.0+64, placements[0].Logo.Y)
}
