package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const suggestRunFile = `
advisor: asset-class
accounts:
  - id: retirement
activity:
  - account: retirement
    deposit:
      amount: "1000"
      transfer_date: 2022-01-03
quotes:
  - currency: USD
    price: "1"
  - symbol: VTI
    price: "200"
classes:
  - currency: USD
    class: Cash
  - symbol: VTI
    class: US Stocks
preferred:
  - currency: USD
  - symbol: VTI
class_targets:
  retirement:
    - class: Cash
      percent: "0.1"
    - class: US Stocks
      percent: "0.9"
`

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSuggestCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(suggestRunFile), 0o644))

	out, err := runCommand(t, "suggest", path)
	require.NoError(t, err)

	// 1000 cash against a 100/900 split: sell 900 of cash, buy 900 of VTI.
	assert.Contains(t, out, "retirement:")
	assert.Contains(t, out, "sell USD 900")
	assert.Contains(t, out, "buy VTI 900")
}

func TestSuggestCommandMissingFile(t *testing.T) {
	_, err := runCommand(t, "suggest", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestSuggestCommandBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("advisor: oracle\n"), 0o644))

	_, err := runCommand(t, "suggest", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown advisor")
}
