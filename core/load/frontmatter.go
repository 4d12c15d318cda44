// Package load enumerates and parses the raw content sources: board
// documents, per-system report documents, bulk others.yml files and the
// shared category metadata.
package load

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/panglars/VeRForTe/internal/contract"
)

// frontmatterDelimiter marks the start and end of the metadata block.
const frontmatterDelimiter = "---"

// ExtractFrontmatter locates the delimited YAML block at the start of a
// document and parses it into a flat string map. Scalar values are
// stringified; empty strings are normalized to absent. The second return
// is false when the document has no block or the block is unparsable;
// a malformed document is a warning for the caller, never an error.
func ExtractFrontmatter(content []byte) (map[string]string, bool) {
	block, _, ok := splitFrontmatter(string(content))
	if !ok {
		return nil, false
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(block), &doc); err != nil {
		contract.LogWarn("unparsable front-matter block", err)
		return nil, false
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, false
	}

	// Scalar values keep their literal text so version-like fields such as
	// "23.10" do not collapse into floats.
	mapping := doc.Content[0]
	fields := make(map[string]string, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		value := mapping.Content[i+1]
		if value.Kind != yaml.ScalarNode || value.Tag == "!!null" {
			continue
		}
		s := strings.TrimSpace(value.Value)
		if s == "" {
			continue // blank values are treated as absent
		}
		fields[key] = s
	}
	return fields, true
}

// splitFrontmatter separates a document into its delimited block and the
// remaining body. The opening delimiter must be alone on the first line;
// the block ends at the next delimiter line.
func splitFrontmatter(content string) (block, body string, ok bool) {
	rest, found := strings.CutPrefix(content, frontmatterDelimiter)
	if !found {
		return "", content, false
	}
	nl := strings.IndexByte(rest, '\n')
	if nl < 0 || strings.TrimSpace(rest[:nl]) != "" {
		return "", content, false
	}
	rest = rest[nl+1:]

	end := strings.Index(rest, "\n"+frontmatterDelimiter)
	if end < 0 {
		return "", content, false
	}
	block = rest[:end]

	body = rest[end+1+len(frontmatterDelimiter):]
	if bodyNL := strings.IndexByte(body, '\n'); bodyNL >= 0 {
		body = body[bodyNL+1:]
	} else {
		body = ""
	}
	return block, body, true
}

// DocumentBody returns the document text after the front-matter block, or
// the whole document when no block is present.
func DocumentBody(content []byte) string {
	_, body, ok := splitFrontmatter(string(content))
	if !ok {
		return string(content)
	}
	return strings.TrimLeft(body, "\n")
}
