// Command projval validates the scaffolding of the e-commerce
// retention predictor project: expected directories and files, notebook
// JSON structure, per-layer documentation placeholders, the dependency
// manifest, and ignore patterns. It exits 0 when every check passes and
// 1 otherwise.
package main
