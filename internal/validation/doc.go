// Package validation implements the project-scaffolding checks for the
// retention-predictor repository layout.
//
// Five checkers run in a fixed order: project structure, notebook JSON,
// pipeline layer documentation, requirements manifest, and ignore
// patterns. Each is a pure function of the filesystem at call time and
// returns a Result; nothing is shared between checkers and nothing is
// written to disk.
//
// Known inconsistency, preserved on purpose: the pipeline-layout checker
// reports per-layer misses with failure markers but still passes, and
// the ignore-pattern checker warns without failing. Both have always
// behaved this way; checks.strict opts in to promoting their misses to
// real failures.
package validation
