package options

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const jsonMediaType = "application/json"

// NewOpenAPIResolver extracts option lists from an OpenAPI document. Each GET
// operation whose 200 JSON response declares an enum (directly or on array
// items) becomes a source keyed by its path without the leading slash, so
// "/api/v1/departments" serves the "api/v1/departments" source.
func NewOpenAPIResolver(ctx context.Context, raw []byte) (Static, error) {
	if len(raw) == 0 {
		return nil, errors.New("options: openapi document is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("options: load openapi document: %w", err)
	}

	out := make(Static)
	if doc.Paths == nil {
		return out, nil
	}

	paths := doc.Paths.Map()
	keys := make([]string, 0, len(paths))
	for path := range paths {
		keys = append(keys, path)
	}
	sort.Strings(keys)

	for _, path := range keys {
		item := paths[path]
		if item == nil || item.Get == nil || item.Get.Responses == nil {
			continue
		}
		values, ok := enumFromResponse(item.Get.Responses.Status(200))
		if !ok {
			continue
		}
		out[strings.TrimPrefix(path, "/")] = values
	}
	return out, nil
}

func enumFromResponse(ref *openapi3.ResponseRef) ([]string, bool) {
	if ref == nil || ref.Value == nil {
		return nil, false
	}
	media := ref.Value.Content.Get(jsonMediaType)
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, false
	}
	schema := media.Schema.Value
	if len(schema.Enum) == 0 && schema.Items != nil && schema.Items.Value != nil {
		schema = schema.Items.Value
	}
	if len(schema.Enum) == 0 {
		return nil, false
	}
	values := make([]string, 0, len(schema.Enum))
	for _, v := range schema.Enum {
		values = append(values, fmt.Sprint(v))
	}
	return values, true
}
