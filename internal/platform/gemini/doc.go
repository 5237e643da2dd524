// Package gemini implements the generation.TermGenerator interface using
// Google's Gemini API. It builds the instruction prompt from a template,
// invokes the model with a bounded output length, and validates the raw
// output against the term-list contract before handing phrases to the
// orchestration layer.
package gemini
