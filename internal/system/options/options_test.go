package options

import (
	"testing"

	"github.com/docopt/docopt-go"
	"github.com/stretchr/testify/require"
)

func parser() *docopt.Parser {
	return &docopt.Parser{HelpHandler: docopt.NoHelpHandler}
}

func TestParseCommand(t *testing.T) {
	require.NoError(t, parse(parser(), []string{"-n", "-c", "H2 + O2 -> H2O"}, true))

	require.Equal(t, "H2 + O2 -> H2O", Command())
	require.True(t, Compact())
	require.False(t, Interactive())
	require.False(t, Matrix())
	require.False(t, Retry())
}

func TestParseInteractive(t *testing.T) {
	require.NoError(t, parse(parser(), []string{}, true))
	require.True(t, Interactive())

	require.NoError(t, parse(parser(), []string{}, false))
	require.False(t, Interactive())

	require.NoError(t, parse(parser(), []string{"-i", "-m", "-r"}, true))
	require.False(t, Interactive())
	require.True(t, Matrix())
	require.True(t, Retry())

	require.NoError(t, parse(parser(), []string{"--interactive"}, false))
	require.True(t, Interactive())
}

func TestParseRejectsUnknownOptions(t *testing.T) {
	require.Error(t, parse(parser(), []string{"-s"}, false))
	require.Error(t, parse(parser(), []string{"--stdin"}, false))
}
