// Command generate writes the generated enumeration sources of the module.
//
// It is run through go:generate from the package that owns each file:
//
//	go run ../internal/cmd/generate kinds --out kind_gen.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/damedic/datetime-toolbox-go/internal/generate"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "generate",
		Short:         "Generate enumeration sources",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(enumCmd("kinds", "datetime", generate.Kinds))
	rootCmd.AddCommand(enumCmd("ops", "dtexpr", generate.Operators))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func enumCmd(use, pkgName string, e generate.Enum) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Generate the %s enumeration of package %s", e.Type, pkgName),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			pkg, _ := cmd.Flags().GetString("package")

			log.Printf("generating %s...", e.Type)
			f, err := generate.Generate(pkg, e, generate.DefaultGenerators...)
			if err != nil {
				return err
			}

			log.Printf("writing %s...", out)
			if err := f.Save(out); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			return nil
		},
	}
	cmd.Flags().StringP("out", "o", use+"_gen.go", "Output file")
	cmd.Flags().String("package", pkgName, "Package name of the generated file")
	return cmd
}
