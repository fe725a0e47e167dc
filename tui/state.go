package tui

type state int

const (
	editState state = iota
	snippetsState
	importState
	exportState
)
