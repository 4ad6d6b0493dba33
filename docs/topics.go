// Package docs holds the lev user manual, one markdown file per topic.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var manual embed.FS

// index is the topic listing all the others. It is not a topic itself.
const index = "readme"

// Topic returns the markdown content of a topic.
func Topic(name string) (string, error) {
	content, err := manual.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics concatenates the given topics. "*" expands to every topic.
func Topics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		expanded := []string{name}
		if name == "*" {
			all, err := All()
			if err != nil {
				return "", err
			}
			expanded = all
		}
		for _, n := range expanded {
			content, err := Topic(n)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// All returns the names of the topics, sorted, without the index.
func All() ([]string, error) {
	entries, err := fs.Glob(manual, "*.md")
	if err != nil {
		return nil, err
	}
	topics := make([]string, 0, len(entries))
	for _, e := range entries {
		if name := strings.TrimSuffix(e, ".md"); name != index {
			topics = append(topics, name)
		}
	}
	sort.Strings(topics)
	return topics, nil
}
