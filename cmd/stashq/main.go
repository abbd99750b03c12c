package main

import (
	"fmt"
	"os"
)

const usage = `stashq - query a StashQ data-collection service from the terminal

Usage:
  stashq <command> [arguments]

Commands:
  get <collection>           Read rows matching the given filters
  find <collection> <id>     Read a single row by id
  count <collection>         Count rows matching the given filters
  create <collection> <json> Insert a document
  remove <collection> <id>   Delete a single row by id
  drop <collection>          Delete an entire collection (irreversible)

Options:
  -h, --help    Show this help message

Configuration is read from stashq.ini ([service] url/token) in the working
directory or $HOME/.config/stashq/, overridable with STASHQ_URL and
STASHQ_TOKEN.

Run 'stashq <command> --help' for more information on a specific command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "-h", "--help", "help":
		fmt.Print(usage)
		os.Exit(0)

	case "get":
		getCmd(args)

	case "find":
		findCmd(args)

	case "count":
		countCmd(args)

	case "create":
		createCmd(args)

	case "remove":
		removeCmd(args)

	case "drop":
		dropCmd(args)

	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}
