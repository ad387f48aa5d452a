package integration

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ropa/arrear-calculator/cmd/ropa-arrear/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIProjectFromConfig(t *testing.T) {
	dir := t.TempDir()
	root := cmd.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--config", "../testdata/example_config.yaml", "project", "--output-dir", dir})
	require.NoError(t, root.Execute())

	content := out.String()
	assert.Contains(t, content, "GP 6600 entry level")
	assert.Contains(t, content, "Total Arrear: ₹ 116,286")

	var written string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "Wrote ") {
			written = strings.TrimPrefix(line, "Wrote ")
		}
	}
	require.NotEmpty(t, written, "detailed-csv from config should be written")
	assert.Equal(t, dir, filepath.Dir(written))
	assert.True(t, strings.HasSuffix(written, ".detailed.csv"))
}
