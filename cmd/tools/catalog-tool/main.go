// cmd/tools/catalog-tool/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"magnet-factory/pkg/catalog"
)

const defaultPath = "configs/formats.json"

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)

	exportPath := exportCmd.String("path", defaultPath, "Destination file")
	force := exportCmd.Bool("force", false, "Overwrite an existing file")

	validatePath := validateCmd.String("path", defaultPath, "Path to catalog file")

	updatePath := updateCmd.String("path", defaultPath, "Path to catalog file")
	id := updateCmd.String("id", "", "Format ID (e.g., carousel)")
	field := updateCmd.String("field", "", "Field to update (displayName, description, bestFor, maxTokens)")
	value := updateCmd.String("value", "", "New value for the field")

	listPath := listCmd.String("path", "", "Path to catalog file (built-in catalog when empty)")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		if err := exportCatalog(*exportPath, *force); err != nil {
			fmt.Printf("Error exporting catalog: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported built-in catalog to %s\n", *exportPath)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		n, err := validateCatalog(*validatePath)
		if err != nil {
			fmt.Printf("Catalog validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Catalog validation passed. Found %d formats.\n", n)

	case "update":
		updateCmd.Parse(os.Args[2:])
		if *id == "" || *field == "" || *value == "" {
			fmt.Println("Error: id, field, and value are required for update.")
			updateCmd.Usage()
			os.Exit(1)
		}
		if err := updateFormat(*updatePath, *id, *field, *value); err != nil {
			fmt.Printf("Error updating format: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Updated format %s, field %s to %s\n", *id, *field, *value)

	case "list":
		listCmd.Parse(os.Args[2:])
		c, err := catalog.LoadOrDefault(*listPath)
		if err != nil {
			fmt.Printf("Error loading catalog: %v\n", err)
			os.Exit(1)
		}
		for _, f := range c.Formats {
			fmt.Printf("%-12s %-28s %5d tokens  %s\n", f.ID, f.DisplayName, f.MaxTokens, f.TitleKey)
		}

	case "help":
		fallthrough
	default:
		help()
	}
}

func exportCatalog(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use -force to overwrite)", path)
		}
	}
	return catalog.Default().Save(path)
}

func validateCatalog(path string) (int, error) {
	c, err := catalog.LoadCatalog(path)
	if err != nil {
		return 0, fmt.Errorf("failed to load catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return len(c.Formats), nil
}

func updateFormat(path, id, field, value string) error {
	c, err := catalog.LoadCatalog(path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	found := false
	for i := range c.Formats {
		if c.Formats[i].ID != id {
			continue
		}
		found = true
		switch field {
		case "displayName":
			c.Formats[i].DisplayName = value
		case "description":
			c.Formats[i].Description = value
		case "bestFor":
			c.Formats[i].BestFor = value
		case "maxTokens":
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid maxTokens value: %w", err)
			}
			c.Formats[i].MaxTokens = n
		default:
			return fmt.Errorf("unknown field: %s", field)
		}
		break
	}

	if !found {
		return fmt.Errorf("format with ID %s not found", id)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	return c.Save(path)
}

func help() {
	fmt.Print(`
Usage: catalog-tool <command> [flags]

Commands:
  export    Write the built-in format catalog to a JSON file
  validate  Validate a catalog file
  update    Update a field of one format in a catalog file
  list      Print the formats of a catalog
  help      Show this help message

Examples:
  catalog-tool export -path configs/formats.json
  catalog-tool update -path configs/formats.json -id carousel -field bestFor -value "LinkedIn, Instagram"
  catalog-tool validate -path configs/formats.json
  catalog-tool list

Use 'catalog-tool <command> -h' for more information about a command.
` + "\n")
}
