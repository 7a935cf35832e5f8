package docs

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fenced code blocks with one of these infos are run by TestCodeBlocks.
const (
	bashSetup    = "bash setup"    // starts a scenario in an empty folder
	bashRun      = "bash run"      // output is compared by the next console check
	bashCheck    = "bash check"    // must exit successfully
	consoleCheck = "console check" // expected output of the last bash run
)

// topicEntry matches the "* name: description" lines of readme.md.
var topicEntry = regexp.MustCompile(`^\*\s+([^:]+):.*$`)

// TestReadmeListsEveryTopic keeps readme.md and the topic files in sync.
func TestReadmeListsEveryTopic(t *testing.T) {
	f, err := os.Open("readme.md")
	require.NoError(t, err)
	defer f.Close()

	var listed []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if m := topicEntry.FindStringSubmatch(sc.Text()); m != nil {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	require.NoError(t, sc.Err())

	for _, topic := range listed {
		_, err := GetTopic(topic)
		assert.NoError(t, err, "readme.md lists %q", topic)
	}

	files, err := filepath.Glob("*.md")
	require.NoError(t, err)
	for _, file := range files {
		topic := strings.TrimSuffix(filepath.Base(file), ".md")
		if topic == readme {
			continue
		}
		assert.True(t, slices.Contains(listed, topic), "%s is missing from readme.md", file)
	}
}

// TestCodeBlocks runs the examples of the manual and of the README against a
// freshly built eco binary.
func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	require.NoError(t, err)
	files = append(files, "../README.md")

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			runBlocks(t, file)
		})
	}
}

// Block is a runnable fenced code block.
type Block struct {
	Type    string
	Content string
	File    string
	Line    int
}

func (b *Block) String() string { return fmt.Sprintf("%s:%d: %s", b.File, b.Line, b.Type) }

// buildEco compiles the eco command into dir and returns its path.
func buildEco(t *testing.T, dir string) string {
	t.Helper()
	bin := filepath.Join(dir, "eco")
	out, err := exec.Command("go", "build", "-o", bin, "../eco/").CombinedOutput()
	require.NoError(t, err, "building eco:\n%s", out)
	return bin
}

// parseMarkdown returns the runnable blocks of file, in document order.
func parseMarkdown(t *testing.T, file string) []*Block {
	t.Helper()
	source, err := os.ReadFile(file)
	require.NoError(t, err)

	var blocks []*Block
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		info := string(fcb.Info.Segment.Value(source))
		switch info {
		case bashSetup, bashRun, bashCheck, consoleCheck:
		default:
			return ast.WalkContinue, nil
		}
		var content strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			content.Write(line.Value(source))
		}
		blocks = append(blocks, &Block{
			Type:    info,
			Content: content.String(),
			File:    file,
			Line:    lineAt(source, fcb.Info.Segment.Start),
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// lineAt returns the 1-based line of offset in source.
func lineAt(source []byte, offset int) int {
	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}

// blockRunner runs the blocks of one document, in order.
type blockRunner struct {
	env     []string
	dir     string // working folder of the current scenario
	lastRun string // output of the last bash run
}

func (r *blockRunner) runBlock(t *testing.T, b *Block) {
	t.Helper()

	if b.Type == consoleCheck {
		want := strings.TrimSpace(b.Content)
		got := strings.ReplaceAll(strings.TrimSpace(r.lastRun), "\t", "        ")
		if want != got {
			t.Errorf("%v: output mismatch:\ngot:\n\n%s\n\nwant:\n\n%s\n\ngot :%q\nwant:%q", b, got, want, got, want)
		}
		return
	}
	if b.Type == bashSetup {
		r.dir = t.TempDir()
	}

	sh := exec.Command("bash", "-c", "set -e; "+b.Content)
	sh.Dir = r.dir
	sh.Env = r.env
	out, err := sh.CombinedOutput()
	if b.Type == bashRun {
		r.lastRun = string(out)
	}
	if err == nil {
		return
	}
	if b.Type == bashCheck {
		t.Errorf("%v failed: %v\n%s", b, err, out)
		return
	}
	t.Fatalf("%v failed: %v\n%s", b, err, out)
}

// runBlocks runs every block of file. Documents without runnable blocks do
// not build eco.
func runBlocks(t *testing.T, file string) {
	t.Helper()
	blocks := parseMarkdown(t, file)
	if len(blocks) == 0 {
		return
	}

	binDir := filepath.Dir(buildEco(t, t.TempDir()))
	// Later entries win over the caller's environment. The frozen clock keeps
	// dates and ids stable.
	env := append(os.Environ(),
		fmt.Sprintf("PATH=%s%c%s", binDir, os.PathListSeparator, os.Getenv("PATH")),
		"ECOTRACK_TESTING_NOW=2023-10-02 15:04:05",
		"ECOTRACK_HOME=.ecotrack",
		"ECOTRACK_BACKEND=file",
		"ECOTRACK_KEY=ecotrack",
		"ECOTRACK_LOG_LEVEL=error",
	)

	r := blockRunner{env: env, dir: t.TempDir()}
	for _, b := range blocks {
		r.runBlock(t, b)
	}
}
