package main

import (
	"errors"
	"strconv"
	"strings"
)

type commandKind int

const (
	commandPlay commandKind = iota
	commandRestart
	commandQuit
)

type command struct {
	kind  commandKind
	index int
}

var errUnknownCommand = errors.New("unknown command")

// parseCommand reads one input line: a cell number, "r" or "q".
func parseCommand(line string) (command, error) {
	switch s := strings.ToLower(strings.TrimSpace(line)); s {
	case "q", "quit", "exit":
		return command{kind: commandQuit}, nil
	case "r", "restart":
		return command{kind: commandRestart}, nil
	default:
		index, err := strconv.Atoi(s)
		if err != nil {
			return command{}, errUnknownCommand
		}
		// Range is checked by the game.
		return command{kind: commandPlay, index: index}, nil
	}
}
