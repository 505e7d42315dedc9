// Package display renders materialization reports and preview trees
// for the terminal. It owns no engine behavior: commands hand it
// outcomes and preview entries, it hands back strings.
package display
