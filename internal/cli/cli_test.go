package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"alertacordon/internal/domain/alert"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetIn(strings.NewReader(stdin))

	err = cmd.Execute()

	return outBuf.String(), errBuf.String(), err
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "known corner", args: []string{"resolve", "18 de Julio y Ejido"}, want: "-34.905,-56.169\texact\n"},
		{name: "substring", args: []string{"resolve", "frente", "al", "abitab", "rivera", "y", "paullier"}, want: "-34.9077,-56.1662\tsubstring\n"},
		{name: "coordinates", args: []string{"resolve", "--", "-34.91, -56.17"}, want: "-34.91,-56.17\tcoordinates\n"},
		{name: "empty", args: []string{"resolve"}, want: "-34.9075,-56.1668\tdefault\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestResolveJSONWithKnownLocationsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locations:\n  - name: feria de tristán narvaja\n    lat: -34.9041\n    lng: -56.1652\n"), 0o600))

	out, _, err := execute(t, "", "resolve", "--json", "--known-locations", path, "Feria de Tristán Narvaja")
	require.NoError(t, err)

	var got resolveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, -34.9041, got.Latitude, 1e-9)
	assert.InDelta(t, -56.1652, got.Longitude, 1e-9)
	assert.Equal(t, "exact", string(got.Source))
}

func TestResolveMissingKnownLocationsFile(t *testing.T) {
	_, _, err := execute(t, "", "resolve", "--known-locations", filepath.Join(t.TempDir(), "nope.yaml"), "cordón")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load known locations")
}

func TestPreview(t *testing.T) {
	out, errOut, err := execute(t, "",
		"preview", "--id", "12", "--location", "Rivera y Paullier", "--category", "robo", "--description", "Arrebato de celular")
	require.NoError(t, err)

	want := "🚨 ALERTA CORDÓN #12: Rivera y Paullier (Robo/Atraco) - Arrebato de celular #AlertaCordon"
	assert.Equal(t, want+"\n", out)
	assert.Equal(t, "88/280 characters\n", errOut)
	assert.Equal(t, 88, utf8.RuneCountInString(want))
}

func TestPreviewTruncatesLongDescription(t *testing.T) {
	out, _, err := execute(t, "",
		"preview", "--location", "cordón", "--description", strings.Repeat("x", 400))
	require.NoError(t, err)

	status := strings.TrimSuffix(out, "\n")
	assert.Equal(t, alert.MaxStatusLength, utf8.RuneCountInString(status))
	assert.True(t, strings.HasSuffix(status, "..."+alert.Hashtag))
}

func TestPreviewRequiresFlags(t *testing.T) {
	_, _, err := execute(t, "", "preview", "--location", "cordón")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description")
}

func TestCategories(t *testing.T) {
	out, _, err := execute(t, "", "categories")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[0], "KEY"))
	assert.Contains(t, lines[1], "robo")
	assert.Contains(t, lines[1], "#ef4444")
}

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{name: "argument", args: []string{"hash-password", "--cost", "4", "vecina-segura"}},
		{name: "stdin", stdin: "vecina-segura\n", args: []string{"hash-password", "--cost", "4"}},
		{name: "stdin without newline", stdin: "vecina-segura", args: []string{"hash-password", "--cost", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)

			hash := strings.TrimSpace(out)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("vecina-segura")))
		})
	}
}

func TestHashPasswordRejectsShortPassword(t *testing.T) {
	_, _, err := execute(t, "", "hash-password", "--cost", "4", "corta")
	require.Error(t, err)
}
