package docs_test

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/etnz/leverage/cmd"
	"github.com/etnz/leverage/docs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics returns the topics listed in readme.md.
func readmeTopics(t *testing.T) []string {
	t.Helper()
	file, err := os.Open("readme.md")
	require.NoError(t, err)
	defer file.Close()

	var topics []string
	item := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := item.FindStringSubmatch(scanner.Text()); m != nil {
			topics = append(topics, strings.TrimSpace(m[1]))
		}
	}
	require.NoError(t, scanner.Err())
	return topics
}

func TestTopics(t *testing.T) {
	listed := readmeTopics(t)
	all, err := docs.All()
	require.NoError(t, err)

	// every file is listed in the readme, and every listed topic exists.
	assert.ElementsMatch(t, all, listed)
	for _, topic := range listed {
		_, err := docs.Topic(topic)
		assert.NoError(t, err, topic)
	}

	_, err = docs.Topic("nope")
	assert.Error(t, err)

	everything, err := docs.Topics("*")
	require.NoError(t, err)
	for _, topic := range listed {
		content, _ := docs.Topic(topic)
		assert.Contains(t, everything, content)
	}
}

// consoleLines returns the lines of the "console" code blocks of a markdown file.
func consoleLines(t *testing.T, file string) []string {
	t.Helper()
	content, err := os.ReadFile(file)
	require.NoError(t, err)

	var lines []string
	root := goldmark.DefaultParser().Parse(text.NewReader(content))
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || string(fcb.Language(content)) != "console" {
			return ast.WalkContinue, nil
		}
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			lines = append(lines, strings.TrimSpace(string(line.Value(content))))
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	return lines
}

func TestCommandExamples(t *testing.T) {
	known := map[string]bool{"help": true, "topic": true}
	for _, c := range cmd.Commands {
		known[c.Name()] = true
	}
	files, err := filepath.Glob("*.md")
	require.NoError(t, err)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			for _, line := range consoleLines(t, file) {
				if !strings.HasPrefix(line, "$ ") {
					continue
				}
				words := strings.Fields(line)
				// skip environment assignments and global flags.
				i := 1
				for i < len(words) && strings.Contains(words[i], "=") {
					i++
				}
				require.Less(t, i, len(words), line)
				require.Equal(t, "lev", words[i], line)
				i++
				for i < len(words) && strings.HasPrefix(words[i], "-") {
					i += 2
				}
				require.Less(t, i, len(words), line)
				assert.True(t, known[words[i]], "%s: unknown command in %q", file, line)
			}
		})
	}
}
