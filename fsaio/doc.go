// Package fsaio parses the textual five-field automaton record and renders
// result reports — the thin collaborator the core packages stay free of.
//
// What
//
//   - ParseRecord(lines) expects, after blank-line removal, exactly five
//     fields in fixed order and fixed literal shape:
//
//     states=[q0,q1]
//     alpha=[a,b]
//     initial=[q0]
//     accepting=[q1]
//     trans=[q0>a>q1,q1>b>q1]
//
//     Any structural deviation is ErrMalformedInput — a failure class kept
//     strictly apart from validation errors.
//   - FormatReport(res) renders the advisory outcome: an "Error:" block, or
//     the "FSA is complete"/"FSA is incomplete" line followed by a
//     "Warning:" block when warnings exist.
//   - FormatError(err) renders any other failure as the same error block.
//
// File handling, command-line wiring and raw text splitting stay with the
// caller; this package maps between lines and values only.
//
// Errors
//
//   - ErrMalformedInput   wrapped with the offending detail; match with
//     errors.Is.
package fsaio
