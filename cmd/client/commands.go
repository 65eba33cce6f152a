package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cbodonnell/saltclient/pkg/game/types"
)

var ErrUnknownCommand = errors.New("unknown command")

type CommandKind int

const (
	CommandEndTurn CommandKind = iota
	CommandSummon
	CommandSlot
	CommandState
	CommandHelp
	CommandQuit
)

// Command is one parsed line of player input.
type Command struct {
	Kind CommandKind
	Card types.CardInstanceID
	// Opponent selects a slot on the opponent's side of the board.
	Opponent bool
	Row      types.RowID
	Index    int
}

const usage = `commands:
  end                              end the turn
  summon <card-id> <row> <index>   summon a creature from hand to your board
  slot [opp] <row> <index>         answer a prompt with a slot
  state                            print the current state
  help                             print this help
  quit                             leave the game`

func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}

	switch name, args := strings.ToLower(fields[0]), fields[1:]; name {
	case "end":
		return Command{Kind: CommandEndTurn}, expectArgs(name, args, 0)
	case "state":
		return Command{Kind: CommandState}, expectArgs(name, args, 0)
	case "help", "?":
		return Command{Kind: CommandHelp}, nil
	case "quit", "exit":
		return Command{Kind: CommandQuit}, nil
	case "summon":
		if err := expectArgs(name, args, 3); err != nil {
			return Command{}, err
		}
		card, err := types.ParseCardInstanceID(args[0])
		if err != nil {
			return Command{}, err
		}
		row, index, err := parseSlot(args[1], args[2])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CommandSummon, Card: card, Row: row, Index: index}, nil
	case "slot":
		cmd := Command{Kind: CommandSlot}
		if len(args) > 0 && strings.EqualFold(args[0], "opp") {
			cmd.Opponent = true
			args = args[1:]
		}
		if err := expectArgs(name, args, 2); err != nil {
			return Command{}, err
		}
		row, index, err := parseSlot(args[0], args[1])
		if err != nil {
			return Command{}, err
		}
		cmd.Row = row
		cmd.Index = index
		return cmd, nil
	default:
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
}

func expectArgs(name string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s takes %d arguments, got %d", name, n, len(args))
	}
	return nil
}

func parseSlot(rawRow, rawIndex string) (types.RowID, int, error) {
	row, err := types.ParseRowID(strings.ToLower(rawRow))
	if err != nil {
		return "", 0, err
	}
	index, err := strconv.Atoi(rawIndex)
	if err != nil || index < 0 {
		return "", 0, fmt.Errorf("invalid slot index %q", rawIndex)
	}
	return row, index, nil
}
