package load

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

// SystemMetadata reads the shared category metadata document: a mapping of
// category name to a sequence of single-key {id: display name} objects.
// Document order is preserved. The customized category is merged into
// linux and the arches category is dropped. Unlike the per-board loaders,
// an unreadable metadata document fails the whole load.
func SystemMetadata(src contract.ContentSource) (*schema.SystemMetadata, error) {
	content, err := src.ReadFile(contract.MetadataDocPath)
	if err != nil {
		return nil, fmt.Errorf("read system metadata: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse system metadata: %w", err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("system metadata is not a mapping")
	}

	categories := parseCategories(doc.Content[0])
	categories = mergeCustomized(categories)

	names := make(map[string]string)
	for _, cat := range categories {
		for _, entry := range cat.Systems {
			names[entry.ID] = entry.Name
		}
	}

	return &schema.SystemMetadata{Categories: categories, Names: names}, nil
}

// parseCategories walks the top-level mapping node, keeping document order.
func parseCategories(mapping *yaml.Node) []schema.Category {
	var categories []schema.Category
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		name := mapping.Content[i].Value
		value := mapping.Content[i+1]
		if name == schema.ArchesCategory {
			continue // unused
		}
		if value.Kind != yaml.SequenceNode {
			contract.LogWarn("metadata category "+name+" is not a sequence", nil)
			continue
		}

		entries := make([]schema.SystemEntry, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.MappingNode || len(item.Content) < 2 {
				continue
			}
			// Each item is a single-key mapping: {id: display name}.
			entries = append(entries, schema.SystemEntry{
				ID:   item.Content[0].Value,
				Name: item.Content[1].Value,
			})
		}
		categories = append(categories, schema.Category{ID: name, Systems: entries})
	}
	return categories
}

// mergeCustomized appends customized entries to the linux category and
// removes the customized key, creating linux if it did not exist.
func mergeCustomized(categories []schema.Category) []schema.Category {
	customizedIdx := -1
	linuxIdx := -1
	for i, cat := range categories {
		switch cat.ID {
		case schema.CustomizedCategory:
			customizedIdx = i
		case schema.LinuxCategory:
			linuxIdx = i
		}
	}
	if customizedIdx < 0 {
		return categories
	}

	customized := categories[customizedIdx]
	out := make([]schema.Category, 0, len(categories))
	for i, cat := range categories {
		if i == customizedIdx {
			continue
		}
		out = append(out, cat)
	}

	if linuxIdx < 0 {
		return append(out, schema.Category{ID: schema.LinuxCategory, Systems: customized.Systems})
	}
	for i := range out {
		if out[i].ID == schema.LinuxCategory {
			merged := make([]schema.SystemEntry, 0, len(out[i].Systems)+len(customized.Systems))
			merged = append(merged, out[i].Systems...)
			merged = append(merged, customized.Systems...)
			out[i].Systems = merged
		}
	}
	return out
}
