// Package blockfile implements the idempotent configuration-block
// editor at the heart of outfit.
//
// A block is a title line plus the content lines a caller wants
// present (Insert) or absent (Remove) in the section that title owns.
// A section runs from the line after the title to the next title line
// or end of file. The editor works on whole text lines only and never
// reorders or rewrites lines it was not asked about, so it is safe to
// point at files other tools also write to: shell profiles, apt
// sources, git config, /etc/environment.
//
// Repeated application converges: inserting a block twice yields the
// same file as inserting it once, and removing a freshly inserted
// block restores the previous content byte for byte.
//
// All writes go through a transactional writer that asks the
// configured confirmation policy first, then replaces the target
// atomically via a temp file and rename. When the direct write is
// denied by filesystem permissions the writer defers to the
// privilege elevator instead.
package blockfile
