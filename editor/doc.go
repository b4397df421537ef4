// Package editor provides a Bubble Tea component that hosts a textbox session
// in a terminal.
//
// Terminal cells are the physical units of the session: the component lays
// text out with layout.Cells, translates key and mouse messages into
// textbox host events and renders the visible window of the layout with
// lipgloss styles.
package editor
