package docs_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/etnz/ecotrack/cmd"
	"github.com/etnz/ecotrack/docs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ecoCommand matches a line of code that runs an eco subcommand.
var ecoCommand = regexp.MustCompile(`^(?:! )?(?:ECOTRACK_\w+=\S+ )*eco (?:-\w+(?: [a-z]+)? )*([a-z][a-z-]+)`)

// codeLines returns the lines of the fenced code blocks and the inline code
// of a markdown document. Prose is left out.
func codeLines(source []byte) []string {
	var lines []string
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.FencedCodeBlock:
			for i := 0; i < n.Lines().Len(); i++ {
				line := n.Lines().At(i)
				lines = append(lines, strings.TrimRight(string(line.Value(source)), "\n"))
			}
		case *ast.CodeSpan:
			var b strings.Builder
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					b.Write(t.Segment.Value(source))
				}
			}
			lines = append(lines, b.String())
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return lines
}

// documentedCommands lists the subcommands run by the code of source.
func documentedCommands(source []byte) []string {
	var names []string
	for _, line := range codeLines(source) {
		if m := ecoCommand.FindStringSubmatch(line); m != nil {
			names = append(names, m[1])
		}
	}
	return names
}

func TestDocumentedCommands(t *testing.T) {
	source := []byte("# Title\n\n" +
		"eco tracks things, eco keeps them.\n\n" +
		"Run `eco -home other dashboard` or `eco add-tx -d x -a 1`.\n\n" +
		"```bash run\n" +
		"ECOTRACK_RISK_LOW=10 eco -raw risk -g 1 -r 2\n" +
		"! eco sell 42\n" +
		"echo eco\n" +
		"```\n")
	assert.Equal(t, []string{"dashboard", "add-tx", "risk", "sell"}, documentedCommands(source))
}

// TestDocumentedCommandsExist checks that the manual only runs real
// subcommands.
func TestDocumentedCommandsExist(t *testing.T) {
	known := map[string]bool{}
	for _, c := range cmd.Commands {
		known[c.Name()] = true
	}

	files, err := filepath.Glob("*.md")
	require.NoError(t, err)
	for _, file := range files {
		content, err := os.ReadFile(file)
		require.NoError(t, err)
		for _, name := range documentedCommands(content) {
			assert.True(t, known[name], "%s: unknown command %q", file, name)
		}
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := docs.GetAllTopics()
	require.NoError(t, err)
	assert.Equal(t, []string{"getting-started", "migration", "risk", "shops", "storage"}, topics)

	all, err := docs.GetTopic("*")
	require.NoError(t, err)
	assert.Contains(t, all, "# Migration")
	assert.NotContains(t, all, "Topics:")

	_, err = docs.GetTopic("nope")
	assert.Error(t, err)
}
