package openapi

import (
	"fmt"
	"sort"
)

type objectSchema struct {
	properties map[string]any
	required   []string
}

func (s *objectSchema) toMap() map[string]any {
	result := map[string]any{
		"type":       "object",
		"properties": s.properties,
	}
	if len(s.required) > 0 {
		required := append([]string{}, s.required...)
		sort.Strings(required)
		result["required"] = required
	}
	return result
}

type documentBuilder struct {
	config generatorConfig
}

func newDocumentBuilder(config generatorConfig) *documentBuilder {
	return &documentBuilder{config: config}
}

func (b *documentBuilder) build(order []string, components map[string]*objectSchema) (map[string]any, error) {
	document := map[string]any{
		"openapi": b.config.openAPIVersion,
		"info":    b.buildInfo(),
		"paths":   map[string]any{},
	}

	if len(order) > 0 {
		schemas := make(map[string]any, len(order))
		for _, name := range order {
			schemas[name] = components[name].toMap()
		}
		document["components"] = map[string]any{
			"schemas": schemas,
		}
	}

	if err := validateDocument(document); err != nil {
		return nil, err
	}
	return document, nil
}

func (b *documentBuilder) buildInfo() map[string]any {
	info := map[string]any{
		"title":   b.config.info.Title,
		"version": b.config.info.Version,
	}
	if b.config.info.Description != "" {
		info["description"] = b.config.info.Description
	}
	return info
}

func validateDocument(document map[string]any) error {
	if document == nil {
		return fmt.Errorf("openapi: document cannot be nil")
	}
	openapi, _ := document["openapi"].(string)
	if openapi == "" {
		return fmt.Errorf("openapi: document missing version string")
	}
	info, _ := document["info"].(map[string]any)
	if info == nil {
		return fmt.Errorf("openapi: document missing info section")
	}
	if title, _ := info["title"].(string); title == "" {
		return fmt.Errorf("openapi: info.title must be set")
	}
	if version, _ := info["version"].(string); version == "" {
		return fmt.Errorf("openapi: info.version must be set")
	}
	return nil
}
