// Package transfer moves a collection across the process boundary as a
// file.
//
// Export writes the whole collection as a pretty-printed JSON array
// (or YAML, selected by file extension). Import parses such a file,
// checks its shape against a JSON Schema and normalizes every entry:
// missing tags become an empty list, unknown categories become General
// and missing ids are generated. A file that is not a collection fails
// with ErrParse; an entry with a blank front or back fails with
// ErrInvalidEntry. In both cases nothing is replaced.
package transfer
