// Package prompt fills a form.State interactively in a terminal. Values are
// collected through a PromptDriver (survey by default), pushed into the form
// engine and re-asked while the engine reports an error for the field.
package prompt
