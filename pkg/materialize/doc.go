// Package materialize turns a parsed template tree into directories and
// files on disk, recording a per-path outcome for everything it visits.
//
// A run has two independent safety gates: the root guard (CheckRoot),
// which refuses to start into a non-empty output directory, and the
// per-file force flag, which decides whether write-mode files may
// replace existing ones. Per-path failures never abort a run; they are
// recorded and sibling subtrees continue.
//
// Preview performs the same walk without filesystem access, which is
// what the show-structure command and --dry-run render.
package materialize
