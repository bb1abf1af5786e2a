// Package security classifies candidate shell commands before execution.
//
// The classifier sits between the intent resolvers and the command executor
// and assigns every candidate command one of three verdicts:
//
//   - Safe: run without interaction
//   - Confirm: destructive but user-intended, run only after confirmation
//   - Forbidden: never run
//
// Classification scans the whole literal command string, so a dangerous
// sub-pattern buried in a pipeline is still caught. It does not parse shell
// syntax, which means obfuscated commands can evade it; see Classifier.
package security
