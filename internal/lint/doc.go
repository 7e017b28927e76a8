// Package lint implements the checks that run over percent-format
// operations found in Python source.
//
// The central check, bad-string-format-type (E1307), decides whether the
// conversion directives of a format string are compatible with the types
// of the supplied arguments. Both directives and literal values are
// classified into a small semantic lattice (DataType) and compared through
// a single compatibility relation.
//
// Every check is fail-open: whenever the argument shape cannot be resolved
// statically — a bare name, a computed key, a count mismatch that Python
// would reject at runtime anyway — the check stays silent. A linter that
// runs over many codebases earns trust through precision, not recall.
//
// Checks never evaluate expressions, never resolve variables, and keep no
// state between invocations; one Context in, at most one diagnostic out.
package lint
