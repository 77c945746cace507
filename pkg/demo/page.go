// Package demo renders the calculator demo page and serves it over HTTP.
package demo

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
	"github.com/sunfmin/mcp-go-calculator/pkg/greeter"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

// Input is one calculation to show on the page
type Input struct {
	Op   calculator.Operation
	A, B calculator.Number
}

// DefaultInputs are the calculations shown on every page
var DefaultInputs = []Input{
	{calculator.OpAdd, calculator.Int(5), calculator.Int(3)},
	{calculator.OpSubtract, calculator.Int(10), calculator.Int(4)},
	{calculator.OpMultiply, calculator.Int(7), calculator.Int(6)},
	{calculator.OpDivide, calculator.Int(20), calculator.Int(4)},
}

// Calculation is a rendered row
type Calculation struct {
	Operation  string
	Expression string
	Result     string
	Error      string
}

// Page is the template data
type Page struct {
	Title        string
	Greeting     string
	Version      string
	Calculations []Calculation
}

// Renderer builds and renders demo pages
type Renderer struct {
	calc    *calculator.Calculator
	title   string
	version string
}

// NewRenderer returns a Renderer using title for the page heading
func NewRenderer(title, version string) *Renderer {
	return &Renderer{
		calc:    calculator.New(),
		title:   title,
		version: version,
	}
}

// Calculate evaluates inputs in order. A failing input becomes a row with
// Error set rather than failing the page.
func (r *Renderer) Calculate(inputs []Input) []Calculation {
	rows := make([]Calculation, 0, len(inputs))
	for _, in := range inputs {
		row := Calculation{
			Operation:  string(in.Op),
			Expression: fmt.Sprintf("%s %s %s", in.A, in.Op.Symbol(), in.B),
		}
		result, err := r.calc.Apply(in.Op, in.A, in.B)
		if err != nil {
			row.Error = err.Error()
		} else {
			row.Result = result.String()
		}
		rows = append(rows, row)
	}
	return rows
}

// Page builds the template data for the default calculations plus extra
func (r *Renderer) Page(name string, extra ...Input) Page {
	if name == "" {
		name = "World"
	}
	inputs := append(append([]Input{}, DefaultInputs...), extra...)
	return Page{
		Title:        r.title,
		Greeting:     greeter.Greet(name),
		Version:      r.version,
		Calculations: r.Calculate(inputs),
	}
}

// Render writes the page as HTML
func (r *Renderer) Render(w io.Writer, page Page) error {
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render demo page: %w", err)
	}
	return nil
}
