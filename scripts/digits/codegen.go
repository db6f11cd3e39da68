package main

import (
	"bufio"
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"text/template"
)

const (
	tableSize = 128 // ASCII
	rowWidth  = 16
)

type table struct {
	Size  int
	Width int
	Rows  [][]int8
}

func main() {
	// Read the alphabet constant from the package source
	alphabet, err := readAlphabet("digits.go")
	if err != nil {
		panic(fmt.Errorf("error reading alphabet: %v", err))
	}

	// Build the reverse lookup table
	tab, err := buildTable(alphabet)
	if err != nil {
		panic(fmt.Errorf("error building table: %v", err))
	}

	// Generate Go code from the table using a template
	code, err := generateGoCode(filepath.Join("scripts", "digits", "digits_table.tmpl"), tab)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("digits_table.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readAlphabet(filename string) (string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, 0)
	if err != nil {
		return "", err
	}
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}
		for _, spec := range gen.Specs {
			vs := spec.(*ast.ValueSpec)
			for i, name := range vs.Names {
				if name.Name != "alphabet" || i >= len(vs.Values) {
					continue
				}
				lit, ok := vs.Values[i].(*ast.BasicLit)
				if !ok || lit.Kind != token.STRING {
					return "", fmt.Errorf("alphabet is not a string literal")
				}
				return strconv.Unquote(lit.Value)
			}
		}
	}
	return "", fmt.Errorf("alphabet constant not found in %v", filename)
}

func buildTable(alphabet string) (table, error) {
	values := make([]int8, tableSize)
	for i := range values {
		values[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if c >= tableSize {
			return table{}, fmt.Errorf("symbol %q is not ASCII", c)
		}
		if values[c] != -1 {
			return table{}, fmt.Errorf("duplicate symbol %q", c)
		}
		values[c] = int8(i) //nolint:gosec
	}
	tab := table{Size: tableSize, Width: rowWidth}
	for i := 0; i < tableSize; i += rowWidth {
		tab.Rows = append(tab.Rows, values[i:i+rowWidth])
	}
	return tab, nil
}

func generateGoCode(filename string, tab table) ([]byte, error) {
	// Create a new template object from the template file
	fmap := template.FuncMap{
		"mul": func(a, b int) int { return a * b },
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, tab)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	return writer.Flush()
}
