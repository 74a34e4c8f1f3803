package transfer_test

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

	"github.com/aretw0/flashdeck/pkg/adapters/memory"
	"github.com/aretw0/flashdeck/pkg/core"
	"github.com/aretw0/flashdeck/pkg/transfer"
)

func seededStore(t *testing.T) (*core.Store, *memory.Slot) {
	t.Helper()
	ctx := context.Background()
	slot := memory.NewSlot()
	s := core.NewStore(slot)
	require.NoError(t, s.Hydrate(ctx))
	_, err := s.Add(ctx, "Q1", "A1", core.CategoryStudy, []string{"math", "exam"})
	require.NoError(t, err)
	_, err = s.Add(ctx, "Q2", "A2", core.CategoryDaily, nil)
	require.NoError(t, err)
	_, err = s.Add(ctx, "Q3", "A3", core.CategoryWork, []string{"ops"})
	require.NoError(t, err)
	return s, slot
}

func TestExport_PrettyJSON(t *testing.T) {
	s, _ := seededStore(t)

	var buf bytes.Buffer
	require.NoError(t, transfer.Export(&buf, s.Entries(), transfer.FormatJSON))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[\n  {\n    \"id\": "), "unexpected layout:\n%s", out)
	assert.True(t, strings.HasSuffix(out, "]\n"))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)
	for _, field := range []string{"front", "back", "category", "tags"} {
		assert.Contains(t, decoded[0], field)
	}
	assert.Equal(t, []any{}, decoded[1]["tags"], "empty tags are exported as an array")
}

func TestExport_EmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, transfer.Export(&buf, nil, transfer.FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []transfer.Format{transfer.FormatJSON, transfer.FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			s, _ := seededStore(t)
			before := s.Entries()

			var buf bytes.Buffer
			require.NoError(t, transfer.Export(&buf, before, f))

			imported, err := transfer.Import(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, before, imported)
		})
	}
}

func TestImportInto_ReplacesAndPersists(t *testing.T) {
	ctx := context.Background()
	s, slot := seededStore(t)
	writes := slot.Writes()

	payload := `[{"front":"New","back":"Card","category":"Work","tags":["a"]}]`
	n, err := transfer.ImportInto(ctx, s, strings.NewReader(payload), transfer.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "New", entries[0].Front)
	assert.NotEmpty(t, entries[0].ID)
	assert.Equal(t, writes+1, slot.Writes(), "import persists immediately")

	reopened := core.NewStore(slot)
	require.NoError(t, reopened.Hydrate(ctx))
	assert.Equal(t, entries, reopened.Entries())
}

func TestImportInto_MalformedLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()

	for name, payload := range map[string]string{
		"syntax":        "{not json",
		"empty":         "",
		"object":        `{"front":"a","back":"b"}`,
		"null":          "null",
		"wrong types":   `[{"front":1,"back":"b"}]`,
		"tags not list": `[{"front":"a","back":"b","tags":"x"}]`,
	} {
		t.Run(name, func(t *testing.T) {
			s, slot := seededStore(t)
			before := s.Entries()
			writes := slot.Writes()

			_, err := transfer.ImportInto(ctx, s, strings.NewReader(payload), transfer.FormatJSON)
			assert.ErrorIs(t, err, transfer.ErrParse)
			assert.Equal(t, before, s.Entries())
			assert.Equal(t, 3, s.Len())
			assert.Equal(t, writes, slot.Writes())
		})
	}
}

func TestImport_Normalization(t *testing.T) {
	payload := `[
		{"front":" a ","back":"b"},
		{"id":"keep","front":"c","back":"d","category":"Misc","tags":["x","x"," y",""]},
		{"front":"e","back":"f","category":null,"tags":null},
		{"id":"keep","front":"g","back":"h"}
	]`

	entries, err := transfer.Import(strings.NewReader(payload), transfer.FormatJSON)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, "a", entries[0].Front)
	assert.NotEmpty(t, entries[0].ID)
	assert.Equal(t, core.CategoryGeneral, entries[0].Category)
	assert.Equal(t, []string{}, entries[0].Tags, "missing tags become an empty list")

	assert.Equal(t, "keep", entries[1].ID)
	assert.Equal(t, core.CategoryGeneral, entries[1].Category)
	assert.Equal(t, []string{"x", "y"}, entries[1].Tags)

	assert.Equal(t, []string{}, entries[2].Tags)
	assert.NotEqual(t, entries[0].ID, entries[2].ID)

	assert.Equal(t, "g", entries[3].Front)
	assert.NotEmpty(t, entries[3].ID)
	assert.NotEqual(t, "keep", entries[3].ID, "a repeated id gets a fresh one")
}

func TestImportInto_RepeatedIDsStayDeletable(t *testing.T) {
	ctx := context.Background()
	s, _ := seededStore(t)

	payload := `[{"id":"x","front":"a","back":"b"},{"id":"x","front":"c","back":"d"}]`
	n, err := transfer.ImportInto(ctx, s, strings.NewReader(payload), transfer.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	removed, err := s.DeleteByID(ctx, "x")
	require.NoError(t, err)
	require.True(t, removed)

	remaining := s.Entries()
	require.Len(t, remaining, 1)
	assert.Equal(t, "c", remaining[0].Front)
	assert.NotEqual(t, "x", remaining[0].ID)
}

func TestImport_RejectsBlankEntries(t *testing.T) {
	ctx := context.Background()
	s, _ := seededStore(t)

	payload := `[{"front":"ok","back":"ok"},{"front":"   ","back":"b"}]`
	_, err := transfer.ImportInto(ctx, s, strings.NewReader(payload), transfer.FormatJSON)
	assert.ErrorIs(t, err, transfer.ErrInvalidEntry)
	assert.Contains(t, err.Error(), "position 1")
	assert.Equal(t, 3, s.Len())
}

func TestImport_YAML(t *testing.T) {
	payload := `
- front: Q
  back: A
  category: Study
  tags: [go]
`
	entries, err := transfer.Import(strings.NewReader(payload), transfer.FormatYAML)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, core.CategoryStudy, entries[0].Category)
	assert.Equal(t, []string{"go"}, entries[0].Tags)

	_, err = transfer.Import(strings.NewReader("front: [unclosed"), transfer.FormatYAML)
	assert.ErrorIs(t, err, transfer.ErrParse)
}

func TestExportImportFile(t *testing.T) {
	s, _ := seededStore(t)
	dir := t.TempDir()

	for _, name := range []string{transfer.DefaultFilename, "deck.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, transfer.ExportFile(path, s.Entries()))

		_, err := os.Stat(path)
		require.NoError(t, err)

		imported, err := transfer.ImportFile(path)
		require.NoError(t, err)
		assert.Equal(t, s.Entries(), imported, name)
	}

	_, err := transfer.ImportFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, transfer.ErrParse)
}

func TestParseFormat(t *testing.T) {
	f, err := transfer.ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, transfer.FormatYAML, f)
	assert.Equal(t, "application/yaml", f.MIMEType())

	f, err = transfer.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, transfer.FormatJSON, f)
	assert.Equal(t, transfer.MIMEType, f.MIMEType())

	_, err = transfer.ParseFormat("csv")
	assert.ErrorIs(t, err, transfer.ErrUnsupportedFormat)

	assert.Equal(t, transfer.FormatYAML, transfer.FormatFromPath("x/deck.YAML"))
	assert.Equal(t, transfer.FormatJSON, transfer.FormatFromPath("flashcards.json"))
}
