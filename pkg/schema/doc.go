// Package schema defines the declarative form description consumed by the
// form engine: sections of typed fields plus submission metadata. Documents
// are accepted as JSON or YAML using the snake_case keys of the existing
// configuration corpus (screen_name, submit_button, section_name,
// control_name, api). Parsing strips markup from display strings and rejects
// unknown field types so configuration mistakes surface at load time.
package schema
