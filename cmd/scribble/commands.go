package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/osse101/scribble/internal/bootstrap"
	"github.com/osse101/scribble/internal/dice"
	"github.com/osse101/scribble/internal/domain"
	"github.com/osse101/scribble/internal/enemy"
	"github.com/osse101/scribble/internal/inventory"
	"github.com/osse101/scribble/internal/repository"
	"github.com/osse101/scribble/internal/search"
	"github.com/osse101/scribble/internal/stats"
	"github.com/osse101/scribble/internal/utils"
	"github.com/osse101/scribble/internal/validation"
)

// env is what every command runs against
type env struct {
	app *bootstrap.App
	out io.Writer
	in  io.Reader
}

func newFlagSet(e *env, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.out)
	return fs
}

// validateRequest checks a request struct and reports every bad field at once
func validateRequest(req interface{}) error {
	if err := validation.ValidateStruct(req); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, validation.SummarizeValidationError(err))
	}
	return nil
}

// AddItemCommand adds or merges an inventory item
type AddItemCommand struct{ e *env }

func (c *AddItemCommand) Name() string        { return "add-item" }
func (c *AddItemCommand) Description() string { return "Add an item, or add to the count of an existing one" }

func (c *AddItemCommand) Run(ctx context.Context, args []string) error {
	fs := newFlagSet(c.e, c.Name())
	var req inventory.AddItemRequest
	var activity, key string
	fs.StringVar(&req.Name, "name", "", "item name")
	fs.StringVar(&req.Description, "description", "", "item description (new items only)")
	fs.IntVar(&req.Count, "count", 1, "number of items to add")
	fs.StringVar(&activity, "active", "", "Active or Passive (new items only)")
	fs.StringVar(&key, "key", "", "Key or NotKey (new items only)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	req.Activity = domain.Activity(activity)
	req.Key = domain.KeyFlag(key)

	if err := validateRequest(req); err != nil {
		return err
	}

	res, err := c.e.app.Services.Inventory.AddOrMerge(ctx, req)
	if err != nil {
		return err
	}
	if res.Merged {
		printSuccess(c.e.out, "Added %d to %s (now %d)", req.Count, res.Item.Name, res.Item.Count)
	} else {
		printSuccess(c.e.out, "Added %s x%d", res.Item.Name, res.Item.Count)
	}
	return nil
}

// RemoveItemCommand decrements or deletes inventory items
type RemoveItemCommand struct{ e *env }

func (c *RemoveItemCommand) Name() string { return "remove-item" }
func (c *RemoveItemCommand) Description() string {
	return "Remove items by name (-count -1 deletes the record)"
}

func (c *RemoveItemCommand) Run(ctx context.Context, args []string) error {
	fs := newFlagSet(c.e, c.Name())
	var req inventory.RemoveItemRequest
	fs.StringVar(&req.Name, "name", "", "item name")
	fs.IntVar(&req.Count, "count", 1, "number to remove; negative deletes, zero empties")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateRequest(req); err != nil {
		return err
	}

	res, err := c.e.app.Services.Inventory.RemoveOrDecrement(ctx, req)
	if res != nil {
		for _, it := range res.Removed {
			printSuccess(c.e.out, "Removed %s", it.Name)
		}
		for _, it := range res.Updated {
			printSuccess(c.e.out, "%s count is now %d", it.Name, it.Count)
		}
		for _, it := range res.Protected {
			printWarning(c.e.out, "%s is a key item and was kept", it.Name)
		}
	}
	return err
}

// AddEnemyCommand logs an enemy
type AddEnemyCommand struct{ e *env }

func (c *AddEnemyCommand) Name() string        { return "add-enemy" }
func (c *AddEnemyCommand) Description() string { return "Log an enemy encounter" }

func (c *AddEnemyCommand) Run(ctx context.Context, args []string) error {
	fs := newFlagSet(c.e, c.Name())
	var req enemy.AddEnemyRequest
	fs.StringVar(&req.Name, "name", "", "enemy name")
	fs.StringVar(&req.Description, "description", "", "enemy description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateRequest(req); err != nil {
		return err
	}

	logged, err := c.e.app.Services.Enemies.Add(ctx, req)
	if err != nil {
		return err
	}
	printSuccess(c.e.out, "Logged %s", logged.Name)
	return nil
}

// RollCommand rolls dice from NdM notation or -count/-sides
type RollCommand struct{ e *env }

func (c *RollCommand) Name() string        { return "roll" }
func (c *RollCommand) Description() string { return "Roll dice, e.g. roll 3d6 or roll -count 1 -sides 20" }

func (c *RollCommand) Run(ctx context.Context, args []string) error {
	fs := newFlagSet(c.e, c.Name())
	countText := fs.String("count", "1", "number of dice")
	sidesText := fs.String("sides", "20", "sides per die")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var req dice.RollRequest
	var err error
	if fs.NArg() > 0 {
		req.Count, req.Sides, err = dice.ParseExpression(fs.Arg(0))
	} else {
		req.Count, req.Sides, err = dice.ParseInts(*countText, *sidesText)
	}
	if err != nil {
		return err
	}
	if err := validateRequest(req); err != nil {
		return err
	}

	res, err := c.e.app.Services.Dice.Roll(req.Count, req.Sides)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.e.out, renderRoll(res))
	return nil
}

// SearchCommand finds records by exact name
type SearchCommand struct{ e *env }

func (c *SearchCommand) Name() string        { return "search" }
func (c *SearchCommand) Description() string { return "Find records by name in inventory, enemies or stats" }

func (c *SearchCommand) Run(ctx context.Context, args []string) error {
	fs := newFlagSet(c.e, c.Name())
	var req search.Request
	fs.StringVar(&req.Collection, "collection", string(domain.CollectionInventory), "inventory, enemies or stats")
	fs.StringVar(&req.Name, "name", "", "record name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if req.Name == "" && fs.NArg() > 0 {
		req.Name = strings.Join(fs.Args(), " ")
	}
	if err := validateRequest(req); err != nil {
		return err
	}

	records, err := c.e.app.Services.Search.FindByName(ctx, domain.CollectionID(req.Collection), req.Name)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.e.out, renderRecords(records))
	return nil
}

// ListCommand prints a whole collection
type ListCommand struct{ e *env }

func (c *ListCommand) Name() string        { return "list" }
func (c *ListCommand) Description() string { return "List a collection (inventory, enemies or stats)" }

func (c *ListCommand) Run(ctx context.Context, args []string) error {
	id := domain.CollectionInventory
	if len(args) > 0 {
		var err error
		if id, err = domain.ParseCollectionID(strings.TrimSpace(args[0])); err != nil {
			return err
		}
	}

	printHeader(c.e.out, utils.TitleCase(string(id)))
	svc := c.e.app.Services
	switch id {
	case domain.CollectionEnemies:
		enemies, err := svc.Enemies.List(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.e.out, renderEnemies(enemies))
	case domain.CollectionStats:
		list, err := svc.Stats.List(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.e.out, renderStats(list))
	default:
		items, err := svc.Inventory.List(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.e.out, renderItems(items))
	}
	return nil
}

// StatCommand changes character stats
type StatCommand struct{ e *env }

func (c *StatCommand) Name() string { return "stat" }
func (c *StatCommand) Description() string {
	return "Change character stats: stat adjust|set|remove -name NAME [-by N | -value N]"
}

func (c *StatCommand) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: stat needs an action: adjust, set or remove", domain.ErrInvalidInput)
	}
	action := args[0]

	fs := newFlagSet(c.e, c.Name()+" "+action)
	name := fs.String("name", "", "stat name")
	delta := fs.Int("by", 1, "amount to adjust by (negative to decrease)")
	value := fs.Int("value", 0, "value to set")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	svc := c.e.app.Services.Stats
	switch action {
	case "adjust":
		req := stats.AdjustStatRequest{Name: *name, Delta: *delta}
		if err := validateRequest(req); err != nil {
			return err
		}
		st, err := svc.Adjust(ctx, req.Name, req.Delta)
		if err != nil {
			return err
		}
		printSuccess(c.e.out, "%s is now %d", st.Name, st.Value)
	case "set":
		req := stats.SetStatRequest{Name: *name, Value: *value}
		if err := validateRequest(req); err != nil {
			return err
		}
		st, err := svc.Set(ctx, req.Name, req.Value)
		if err != nil {
			return err
		}
		printSuccess(c.e.out, "%s is now %d", st.Name, st.Value)
	case "remove":
		if err := svc.Remove(ctx, *name); err != nil {
			return err
		}
		printSuccess(c.e.out, "Removed %s", strings.TrimSpace(*name))
	default:
		return fmt.Errorf("%w: unknown stat action %q", domain.ErrInvalidInput, action)
	}
	return nil
}

// CheckCommand validates the data files on disk without modifying them
type CheckCommand struct{ e *env }

func (c *CheckCommand) Name() string        { return "check" }
func (c *CheckCommand) Description() string { return "Validate the data files against their schemas" }

func (c *CheckCommand) Run(_ context.Context, _ []string) error {
	store := repository.NewFileStore(c.e.app.Config.DataDir)
	v := validation.NewSchemaValidator()

	printHeader(c.e.out, store.Dir())
	var bad int
	for _, id := range domain.Collections {
		path := store.Path(id)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			printInfo(c.e.out, "%s: missing, will be created empty", id.FileName())
			continue
		}
		schema, _ := repository.SchemaFor(id)
		if err := v.ValidateFile(path, schema); err != nil {
			bad++
			printError(c.e.out, "%s: %v", id.FileName(), err)
			continue
		}
		printSuccess(c.e.out, "%s: ok", id.FileName())
	}

	if bad > 0 {
		return fmt.Errorf("%w: %d data file(s) failed validation", domain.ErrInvalidInput, bad)
	}
	return nil
}
