package cmd

import (
	"bytes"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchCmd(t *testing.T) {
	cmd := newSearchCmd()

	assert.Equal(t, "search [query]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	typeFlag := cmd.Flags().Lookup("type")
	require.NotNil(t, typeFlag)
	assert.Equal(t, "all", typeFlag.DefValue)

	pagesFlag := cmd.Flags().Lookup("pages")
	require.NotNil(t, pagesFlag)
	assert.Equal(t, "1", pagesFlag.DefValue)
}

func TestRunSearch_EmptyQuery(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	runSearch("   ", "all", 1)

	assert.Contains(t, buf.String(), "Search query cannot be empty")
}

func TestNewBrowseCmd(t *testing.T) {
	cmd := newBrowseCmd()

	uses := make(map[string]bool)
	for _, subcmd := range cmd.Commands() {
		uses[subcmd.Use] = true
	}

	for _, use := range []string{"releases", "featured", "categories", "category [id]"} {
		assert.True(t, uses[use], "%s subcommand should be present", use)
	}
}

func TestNewPlayCmd(t *testing.T) {
	cmd := newPlayCmd()

	uses := make(map[string]bool)
	for _, subcmd := range cmd.Commands() {
		uses[subcmd.Use] = true
	}

	for _, use := range []string{"track [id]", "album [id]", "playlist [id]"} {
		assert.True(t, uses[use], "%s subcommand should be present", use)
	}
}
