// Command gqlvalidate checks a GraphQL executable document against a
// type-system document and reports whether it satisfies the static
// validation rules. It is a thin embedding host over the validate
// package: all of the actual checking lives there.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	gqlast "github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	adapter "github.com/shyptr/gqlvalidate/adapter/gqlparser"
	"github.com/shyptr/gqlvalidate/schema"
	"github.com/shyptr/gqlvalidate/validate"
)

const rootUsage = `gqlvalidate -schema <file> -query <file>

Validates a GraphQL executable document against a type-system document.

Flags:
  -schema string   path to the type-system document (SDL)
  -query  string   path to the executable document to validate
  -v               enable verbose logging
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("gqlvalidate", flag.ExitOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, rootUsage) }

	schemaPath := fs.String("schema", "", "path to the type-system document (SDL)")
	queryPath := fs.String("query", "", "path to the executable document to validate")
	verbose := fs.Bool("v", false, "enable verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *schemaPath == "" || *queryPath == "" {
		fs.Usage()
		return fmt.Errorf("gqlvalidate: both -schema and -query are required")
	}

	verbosity := 0
	if *verbose {
		verbosity = 1
	}
	logger := stdr.New(log.Default())
	stdr.SetVerbosity(verbosity)
	ctx := logr.NewContext(context.Background(), logger)

	return validateFiles(ctx, *schemaPath, *queryPath)
}

func validateFiles(ctx context.Context, schemaPath, queryPath string) error {
	logger := logr.FromContextOrDiscard(ctx)

	schemaSrc, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("gqlvalidate: reading schema: %w", err)
	}
	querySrc, err := os.ReadFile(queryPath)
	if err != nil {
		return fmt.Errorf("gqlvalidate: reading query: %w", err)
	}

	schemaDoc, gqlErr := parser.ParseSchema(&gqlast.Source{Name: schemaPath, Input: string(schemaSrc)})
	if gqlErr != nil {
		return fmt.Errorf("gqlvalidate: parsing schema: %w", gqlErr)
	}
	queryDoc, gqlErr := parser.ParseQuery(&gqlast.Source{Name: queryPath, Input: string(querySrc)})
	if gqlErr != nil {
		return fmt.Errorf("gqlvalidate: parsing query: %w", gqlErr)
	}

	logger.V(1).Info("parsed documents", "schema", schemaPath, "query", queryPath)

	sc, err := schema.Build(adapter.SchemaDocument(schemaDoc))
	if err != nil {
		return fmt.Errorf("gqlvalidate: building schema: %w", err)
	}

	_, errs := validate.Validate(adapter.Document(queryDoc), sc)
	if errs == nil {
		fmt.Println("ok")
		return nil
	}
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	return fmt.Errorf("gqlvalidate: %d validation error(s)", len(errs))
}
