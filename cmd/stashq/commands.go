package main

import (
	"context"
	"encoding/json"
	"flag"
	"strings"

	"github.com/stashq/stashq-go/cli"
	"github.com/stashq/stashq-go/collection"
)

// stringList collects a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// openCollection resolves configuration and returns a builder for name.
func openCollection(name string) *collection.Collection {
	c, err := newClient(loadConfig()).Collection(name)
	if err != nil {
		cli.FatalErr("opening collection", err)
	}
	return c
}

// applyWhere parses a -w flag of the form field=value or field:op=value and
// adds the clause. Values stay strings; the service coerces them.
func applyWhere(c *collection.Collection, raw string) {
	cond, value, ok := strings.Cut(raw, "=")
	if !ok {
		cli.Fatal("invalid -w filter (want field=value or field:op=value): " + raw)
	}
	if field, op, ok := strings.Cut(cond, ":"); ok {
		c.WhereOp(field, op, value)
		return
	}
	c.Where(cond, value)
}

// applySort parses a -s flag of the form field or field:desc.
func applySort(c *collection.Collection, raw string) {
	if field, dir, ok := strings.Cut(raw, ":"); ok {
		c.Sort(field, dir)
		return
	}
	c.Sort(raw)
}

func getCmd(args []string) {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	var wheres, sorts stringList
	fs.Var(&wheres, "w", "filter, field=value or field:op=value (repeatable)")
	fs.Var(&sorts, "s", "sort key, field or field:desc (repeatable)")
	limit := fs.Int("l", 0, "maximum number of rows")
	offset := fs.Int("o", 0, "number of rows to skip")
	selectCols := fs.String("select", "", "comma-separated projection fields")
	fs.Parse(args)

	if fs.NArg() != 1 {
		cli.Fatal("usage: stashq get <collection> [flags]")
	}

	c := openCollection(fs.Arg(0))
	for _, w := range wheres {
		applyWhere(c, w)
	}
	for _, s := range sorts {
		applySort(c, s)
	}
	if *limit > 0 {
		c.Limit(*limit)
	}
	if *offset > 0 {
		c.Offset(*offset)
	}
	if *selectCols != "" {
		c.Select(strings.Split(*selectCols, ",")...)
	}

	docs, err := c.Get(context.Background())
	if err != nil {
		cli.FatalErr("get failed", err)
	}
	cli.JSON(docs)
}

func findCmd(args []string) {
	fs := flag.NewFlagSet("find", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 2 {
		cli.Fatal("usage: stashq find <collection> <id>")
	}

	doc, err := openCollection(fs.Arg(0)).Find(context.Background(), fs.Arg(1))
	if err != nil {
		cli.FatalErr("find failed", err)
	}
	cli.JSON(doc)
}

func countCmd(args []string) {
	fs := flag.NewFlagSet("count", flag.ExitOnError)
	var wheres stringList
	fs.Var(&wheres, "w", "filter, field=value or field:op=value (repeatable)")
	fs.Parse(args)

	if fs.NArg() != 1 {
		cli.Fatal("usage: stashq count <collection> [flags]")
	}

	c := openCollection(fs.Arg(0))
	for _, w := range wheres {
		applyWhere(c, w)
	}

	n, err := c.Count(context.Background())
	if err != nil {
		cli.FatalErr("count failed", err)
	}
	cli.Infof("%d", int64(n))
}

func createCmd(args []string) {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 2 {
		cli.Fatal("usage: stashq create <collection> <json>")
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(fs.Arg(1)), &data); err != nil {
		cli.FatalErr("parsing document", err)
	}

	doc, err := openCollection(fs.Arg(0)).Create(context.Background(), data)
	if err != nil {
		cli.FatalErr("create failed", err)
	}
	cli.JSON(doc)
}

func removeCmd(args []string) {
	fs := flag.NewFlagSet("remove", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 2 {
		cli.Fatal("usage: stashq remove <collection> <id>")
	}

	if err := openCollection(fs.Arg(0)).Remove(context.Background(), fs.Arg(1)); err != nil {
		cli.FatalErr("remove failed", err)
	}
	cli.Info("removed " + fs.Arg(1))
}

func dropCmd(args []string) {
	fs := flag.NewFlagSet("drop", flag.ExitOnError)
	yes := fs.Bool("y", false, "skip confirmation")
	fs.Parse(args)
	if fs.NArg() != 1 {
		cli.Fatal("usage: stashq drop <collection> [-y]")
	}

	name := fs.Arg(0)
	if !*yes {
		cli.Fatal("dropping deletes the whole collection; re-run with -y to confirm")
	}

	if err := openCollection(name).Drop(context.Background()); err != nil {
		cli.FatalErr("drop failed", err)
	}
	cli.Info("dropped " + name)
}
