package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md loads, and every .md file but the
	// readme is listed.
	file, err := os.Open("readme.md")
	require.NoError(t, err)
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(m[1]))
		}
	}
	require.NoError(t, scanner.Err())

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			_, err := GetTopic(topic)
			assert.NoError(t, err)
		})
	}

	files, err := filepath.Glob("*.md")
	require.NoError(t, err)
	for _, f := range files {
		base := strings.TrimSuffix(filepath.Base(f), ".md")
		if base == Index {
			continue
		}
		assert.Contains(t, topicsInReadme, base, "topic %q is not listed in readme.md", base)
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	require.NoError(t, err)
	assert.True(t, slices.IsSorted(topics))
	assert.NotContains(t, topics, Index)
	assert.Contains(t, topics, "goal")
}

func TestGetTopic_Star(t *testing.T) {
	all, err := GetTopic("*")
	require.NoError(t, err)
	goal, err := GetTopic("goal")
	require.NoError(t, err)
	assert.Contains(t, all, goal)
}

func TestGetTopic_Missing(t *testing.T) {
	_, err := GetTopic("nope")
	assert.ErrorContains(t, err, `docs: topic "nope" not found`)
}

func TestTitle(t *testing.T) {
	topics, err := GetAllTopics()
	require.NoError(t, err)
	for _, topic := range append(topics, Index) {
		title, err := Title(topic)
		if assert.NoError(t, err, topic) {
			assert.NotEmpty(t, title, topic)
		}
	}

	title, err := Title("tax")
	require.NoError(t, err)
	assert.Equal(t, "세금 계산", title)
}
