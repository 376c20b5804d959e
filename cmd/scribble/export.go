package main

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/osse101/scribble/internal/domain"
	"github.com/osse101/scribble/internal/utils"
)

// Export formats
const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// ExportCommand writes a collection as YAML or JSON
type ExportCommand struct{ e *env }

func (c *ExportCommand) Name() string        { return "export" }
func (c *ExportCommand) Description() string { return "Export a collection as yaml or json" }

func (c *ExportCommand) Run(ctx context.Context, args []string) error {
	fs := newFlagSet(c.e, c.Name())
	collection := fs.String("collection", string(domain.CollectionInventory), "inventory, enemies or stats")
	format := fs.String("format", formatYAML, "yaml or json")
	output := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := domain.ParseCollectionID(*collection)
	if err != nil {
		return err
	}
	records, err := c.load(ctx, id)
	if err != nil {
		return err
	}
	data, err := encodeExport(records, *format)
	if err != nil {
		return err
	}

	if *output == "" {
		_, err = c.e.out.Write(data)
		return err
	}
	if err := utils.WriteFileAtomic(*output, data); err != nil {
		return err
	}
	printSuccess(c.e.out, "Exported %s to %s", id, *output)
	return nil
}

func (c *ExportCommand) load(ctx context.Context, id domain.CollectionID) (interface{}, error) {
	svc := c.e.app.Services
	switch id {
	case domain.CollectionEnemies:
		return svc.Enemies.List(ctx)
	case domain.CollectionStats:
		return svc.Stats.List(ctx)
	default:
		return svc.Inventory.List(ctx)
	}
}

func encodeExport(records interface{}, format string) ([]byte, error) {
	switch format {
	case formatYAML:
		return yaml.Marshal(records)
	case formatJSON:
		return utils.MarshalIndent(records)
	}
	return nil, fmt.Errorf("%w: unknown export format %q (use yaml or json)", domain.ErrInvalidInput, format)
}
